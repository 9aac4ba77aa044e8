//go:build !linux

package vt

import (
	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/internal/errors"
)

// OpenDevice opens the VT device node at path.
func OpenDevice(path string) (Device, error) {
	return nil, errors.WrapPrefix(consts.ErrPlatformNotSupported, `open `+path, 0)
}
