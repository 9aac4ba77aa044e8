//go:build linux

package vt

import (
	"golang.org/x/sys/unix"

	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/internal/linux"
)

type fileDevice struct {
	fd   int
	name string
}

var _ Device = (*fileDevice)(nil)

// OpenDevice opens the VT device node at path.
func OpenDevice(path string) (Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.WrapPrefix(err, `open `+path, 0)
	}
	return &fileDevice{fd: fd, name: path}, nil
}

func (d *fileDevice) Name() string { return d.name }

func (d *fileDevice) Write(b []byte) (int, error) {
	if d == nil || d.fd < 0 {
		return 0, errors.NilReceiver()
	}
	return unix.Write(d.fd, b)
}

func (d *fileDevice) GetMode() (Mode, error) {
	if d == nil || d.fd < 0 {
		return Mode{}, errors.NilReceiver()
	}
	return linux.VTGetMode(uintptr(d.fd))
}

func (d *fileDevice) SetMode(m Mode) error {
	if d == nil || d.fd < 0 {
		return errors.NilReceiver()
	}
	return linux.VTSetMode(uintptr(d.fd), m)
}

func (d *fileDevice) GetState() (State, error) {
	if d == nil || d.fd < 0 {
		return State{}, errors.NilReceiver()
	}
	return linux.VTGetState(uintptr(d.fd))
}

func (d *fileDevice) OpenQuery() (int, error) {
	if d == nil || d.fd < 0 {
		return 0, errors.NilReceiver()
	}
	return linux.VTOpenQuery(uintptr(d.fd))
}

func (d *fileDevice) ReleaseDisplay(arg int) error {
	if d == nil || d.fd < 0 {
		return errors.NilReceiver()
	}
	return linux.VTRelDisp(uintptr(d.fd), arg)
}

func (d *fileDevice) Activate(vt int) error {
	if d == nil || d.fd < 0 {
		return errors.NilReceiver()
	}
	return linux.VTActivate(uintptr(d.fd), vt)
}

func (d *fileDevice) WaitActive(vt int) error {
	if d == nil || d.fd < 0 {
		return errors.NilReceiver()
	}
	return linux.VTWaitActive(uintptr(d.fd), vt)
}

func (d *fileDevice) KDGetMode() (KDMode, error) {
	if d == nil || d.fd < 0 {
		return -1, errors.NilReceiver()
	}
	mode, isConsole, err := linux.KDGetMode(uintptr(d.fd))
	if err != nil {
		return -1, err
	}
	if !isConsole {
		return -1, unix.ENOTTY
	}
	return mode, nil
}

func (d *fileDevice) KDSetMode(mode KDMode) error {
	if d == nil || d.fd < 0 {
		return errors.NilReceiver()
	}
	return linux.KDSetMode(uintptr(d.fd), mode)
}

// Close ...
func (d *fileDevice) Close() error {
	if d == nil || d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	if err != nil {
		return errors.WrapPrefix(err, `close `+d.name, 0)
	}
	return nil
}
