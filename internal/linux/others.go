//go:build !linux

package linux

import (
	"github.com/srlehn/termvt/internal/consts"
)

func KDGetMode(fd uintptr) (mode KDMode, isLinuxConsole bool, _ error) {
	return -1, false, consts.ErrPlatformNotSupported
}
func KDSetMode(fd uintptr, mode KDMode) error { return consts.ErrPlatformNotSupported }
func VTGetMode(fd uintptr) (VTMode, error) { return VTMode{}, consts.ErrPlatformNotSupported }
func VTSetMode(fd uintptr, m VTMode) error { return consts.ErrPlatformNotSupported }
func VTGetState(fd uintptr) (VTStat, error) { return VTStat{}, consts.ErrPlatformNotSupported }
func VTOpenQuery(fd uintptr) (int, error) { return -1, consts.ErrPlatformNotSupported }
func VTRelDisp(fd uintptr, arg int) error { return consts.ErrPlatformNotSupported }
func VTActivate(fd uintptr, vt int) error { return consts.ErrPlatformNotSupported }
func VTWaitActive(fd uintptr, vt int) error { return consts.ErrPlatformNotSupported }
