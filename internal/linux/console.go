//go:build linux

package linux

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/srlehn/termvt/internal/errors"
)

// the ioctl wrappers return the bare unix.Errno so callers can check for EINTR

func KDGetMode(fd uintptr) (mode KDMode, isLinuxConsole bool, _ error) {
	m, err := unix.IoctlGetInt(int(fd), KDGETMODE)
	mode = KDMode(m)
	if err == nil {
		return mode, true, nil
	}
	if errors.Is(err, unix.ENOTTY) {
		return -1, false, nil
	}
	return -1, false, err
}

func KDSetMode(fd uintptr, mode KDMode) error {
	return unix.IoctlSetInt(int(fd), KDSETMODE, int(mode))
}

func VTGetMode(fd uintptr) (VTMode, error) {
	var m VTMode
	err := ioctlPtr(fd, VT_GETMODE, unsafe.Pointer(&m))
	return m, err
}

func VTSetMode(fd uintptr, m VTMode) error {
	return ioctlPtr(fd, VT_SETMODE, unsafe.Pointer(&m))
}

func VTGetState(fd uintptr) (VTStat, error) {
	var st VTStat
	err := ioctlPtr(fd, VT_GETSTATE, unsafe.Pointer(&st))
	return st, err
}

// VTOpenQuery returns the first unopened VT or -1 if there is none.
func VTOpenQuery(fd uintptr) (int, error) {
	var vt int32
	err := ioctlPtr(fd, VT_OPENQRY, unsafe.Pointer(&vt))
	return int(vt), err
}

func VTRelDisp(fd uintptr, arg int) error {
	return unix.IoctlSetInt(int(fd), VT_RELDISP, arg)
}

func VTActivate(fd uintptr, vt int) error {
	return unix.IoctlSetInt(int(fd), VT_ACTIVATE, vt)
}

func VTWaitActive(fd uintptr, vt int) error {
	return unix.IoctlSetInt(int(fd), VT_WAITACTIVE, vt)
}

func ioctlPtr(fd uintptr, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
