package unix

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	sysunix "golang.org/x/sys/unix"
)

func TestSignalNamesMatchHost(t *testing.T) {
	for _, sig := range KnownSignals() {
		name, _ := sig.Name()
		assert.Equal(t, sysunix.SignalName(syscall.Signal(sig)), name)
	}
}
