package consts

import (
	"errors"
)

var (
	ErrNilParam             = errors.New(`nil parameter`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)
	ErrInvalidVT            = errors.New(`invalid VT number`)
	ErrNoVT                 = errors.New(`no VT available`)
	ErrHandshakePartial     = errors.New(`VT switch signal handlers installed, but VT_PROCESS mode not set`)
)

const (
	// InvalidVT is returned instead of a VT number on failure.
	InvalidVT = -1

	MasterDevice = `/dev/tty0`
	VTPathFormat = `/dev/tty%d`
)
