package termvt

import (
	"sync"

	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/vt"
)

// InvalidVT is returned by FetchAvailableVT and SetUpNewVT on failure.
const InvalidVT = consts.InvalidVT

var (
	switcherOnce   sync.Once
	switcherActive *vt.Switcher
	switcherErr    error
)

// Switcher returns the Switcher used by the package level functions,
// configured with vt.DefaultConfig.
func Switcher() (*vt.Switcher, error) {
	switcherOnce.Do(func() { switcherActive, switcherErr = vt.New() })
	return switcherActive, switcherErr
}

// FetchAvailableVT returns the active VT or, without one, the first unopened VT.
func FetchAvailableVT() (int, error) {
	sw, err := Switcher()
	if err != nil {
		return InvalidVT, err
	}
	return sw.FetchAvailableVT()
}

// SetUpNewVT returns the first unopened VT or, without one, the active VT.
func SetUpNewVT() (int, error) {
	sw, err := Switcher()
	if err != nil {
		return InvalidVT, err
	}
	return sw.SetUpNewVT()
}

// JumpToVT activates vt and waits for the switch. Failures are not reported,
// use a vt.Switcher with a logger for diagnostics.
func JumpToVT(vtNum int, vtAuto bool) {
	sw, err := Switcher()
	if err != nil {
		return
	}
	sw.JumpToVT(vtNum, vtAuto)
}
