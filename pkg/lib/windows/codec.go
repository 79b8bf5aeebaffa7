package windows

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = ExitCode(0)
	_ yaml.Unmarshaler = (*ExitCode)(nil)
)

// MarshalYAML implements yaml.Marshaler. The code is emitted as a bare
// integer.
func (c ExitCode) MarshalYAML() (any, error) {
	return uint32(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ExitCode) UnmarshalYAML(value *yaml.Node) error {
	var n uint64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("decoding exit code: %w", err)
	}
	if n > math.MaxUint32 {
		return fmt.Errorf("exit code %d out of range", n)
	}
	*c = ExitCode(n)
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
	*c = ExitCode(v.GetValue())
	return nil
}
