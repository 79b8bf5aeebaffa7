package unix

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"gopkg.in/yaml.v3"
)

// ExitCode and WaitStatus serialize as their bare integer. JSON needs no
// help since both are named integer types; YAML and protobuf are wired here.

var (
	_ yaml.Marshaler   = ExitCode(0)
	_ yaml.Unmarshaler = (*ExitCode)(nil)
	_ yaml.Marshaler   = WaitStatus(0)
	_ yaml.Unmarshaler = (*WaitStatus)(nil)
)

// MarshalYAML implements yaml.Marshaler.
func (c ExitCode) MarshalYAML() (any, error) {
	return uint8(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ExitCode) UnmarshalYAML(value *yaml.Node) error {
	var n uint64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("decoding exit code: %w", err)
	}
	if n > math.MaxUint8 {
		return fmt.Errorf("exit code %d out of range", n)
	}
	*c = ExitCode(n)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s WaitStatus) MarshalYAML() (any, error) {
	return int32(s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *WaitStatus) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("decoding wait status: %w", err)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return fmt.Errorf("wait status %d out of range", n)
	}
	*s = WaitStatus(n)
	return nil
}

// MarshalProto encodes c as a google.protobuf.UInt32Value.
func (c ExitCode) MarshalProto() ([]byte, error) {
	return proto.Marshal(wrapperspb.UInt32(uint32(c)))
}

// UnmarshalProto decodes a google.protobuf.UInt32Value into c.
func (c *ExitCode) UnmarshalProto(b []byte) error {
	var v wrapperspb.UInt32Value
	if err := proto.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decoding exit code: %w", err)
	}
	if v.GetValue() > math.MaxUint8 {
		return fmt.Errorf("exit code %d out of range", v.GetValue())
	}
	*c = ExitCode(v.GetValue())
	return nil
}

// MarshalProto encodes s as a google.protobuf.Int32Value.
func (s WaitStatus) MarshalProto() ([]byte, error) {
	return proto.Marshal(wrapperspb.Int32(int32(s)))
}

// UnmarshalProto decodes a google.protobuf.Int32Value into s.
func (s *WaitStatus) UnmarshalProto(b []byte) error {
	var v wrapperspb.Int32Value
	if err := proto.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decoding wait status: %w", err)
	}
	*s = WaitStatus(v.GetValue())
	return nil
}
