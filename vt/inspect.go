package vt

import (
	"fmt"

	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/internal/linux"
)

// Status is a snapshot of the kernel VT state.
type Status struct {
	VT        int // inspected VT, the active one if 0 was requested
	Active    int
	Mode      Mode
	KDMode    KDMode
	OpenQuery int // first unopened VT, -1 if there is none
}

// Stuck reports the VT_AUTO + KD_GRAPHICS combination repaired by FixVTMode.
func (st *Status) Stuck() bool {
	return st != nil && st.Mode.Mode == ModeAuto && st.KDMode != KDText
}

func (st *Status) String() string {
	if st == nil {
		return `<nil>`
	}
	return fmt.Sprintf(
		`vt=%d active=%d mode=%s relsig=%d acqsig=%d kd_mode=%s next_free=%d stuck=%t`,
		st.VT, st.Active, linux.ModeString(st.Mode.Mode), st.Mode.RelSig, st.Mode.AcqSig,
		st.KDMode.String(), st.OpenQuery, st.Stuck(),
	)
}

// Inspect queries the state of vt without modifying it. For vt <= 0 the
// active VT is inspected through the master device.
func (s *Switcher) Inspect(vt int) (*Status, error) {
	if s == nil {
		return nil, errors.NilReceiver()
	}
	master, err := s.openMaster()
	if err != nil {
		return nil, err
	}
	defer s.closeDevice(master)

	st := &Status{OpenQuery: -1}
	state, err := master.GetState()
	if err != nil {
		return nil, errors.WrapPrefix(err, `VT_GETSTATE`, 0)
	}
	st.Active = int(state.Active)
	if free, err := master.OpenQuery(); err == nil && free > 0 {
		st.OpenQuery = free
	}

	dev := master
	st.VT = st.Active
	if vt > 0 && vt != st.Active {
		target, err := s.open(s.vtPath(vt))
		if err != nil {
			return nil, err
		}
		defer s.closeDevice(target)
		dev = target
		st.VT = vt
	}
	if st.Mode, err = dev.GetMode(); err != nil {
		return nil, errors.WrapPrefix(err, `VT_GETMODE`, 0)
	}
	if st.KDMode, err = dev.KDGetMode(); err != nil {
		return nil, errors.WrapPrefix(err, `KDGETMODE`, 0)
	}
	return st, nil
}
