//go:build !unix && !windows

package runner

import (
	"errors"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

func killProcessGroup(pid int) error {
	return errors.ErrUnsupported
}

func interruptProcessGroup(pid int) error {
	return errors.ErrUnsupported
}
