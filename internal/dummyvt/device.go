package dummyvt

import (
	"golang.org/x/sys/unix"

	"github.com/srlehn/termvt/vt"
)

type device struct {
	kernel *Kernel
	path   string
	vt     int
	closed bool
}

var _ vt.Device = (*device)(nil)

func (d *device) Name() string { return d.path }

// current resolves the master device to the active VT. kernel lock held.
func (d *device) current() int {
	if d.vt == 0 {
		return d.kernel.active
	}
	return d.vt
}

func (d *device) Write(b []byte) (int, error) {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.request(d, OpWrite, len(b)); err != nil {
		return 0, err
	}
	k.written[d.path] = append(k.written[d.path], b...)
	return len(b), nil
}

func (d *device) GetMode() (vt.Mode, error) {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.request(d, OpGetMode, 0); err != nil {
		return vt.Mode{}, err
	}
	return k.modes[d.current()], nil
}

func (d *device) SetMode(m vt.Mode) error {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.request(d, OpSetMode, int(m.Mode)); err != nil {
		return err
	}
	k.modes[d.current()] = m
	return nil
}

func (d *device) GetState() (vt.State, error) {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.request(d, OpGetState, 0); err != nil {
		return vt.State{}, err
	}
	return vt.State{Active: uint16(k.active)}, nil
}

func (d *device) OpenQuery() (int, error) {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.request(d, OpOpenQuery, 0); err != nil {
		return 0, err
	}
	return k.nextFree, nil
}

func (d *device) ReleaseDisplay(arg int) error {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.request(d, OpRelDisp, arg)
}

func (d *device) Activate(num int) error {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.request(d, OpActivate, num); err != nil {
		return err
	}
	if num <= 0 {
		return unix.ENXIO
	}
	if num != k.active && k.stuck(k.active) {
		// the switch stays pending, VT_WAITACTIVE never returns
		return nil
	}
	k.active = num
	return nil
}

func (d *device) WaitActive(num int) error {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.request(d, OpWaitActive, num); err != nil {
		return err
	}
	if k.active != num {
		// a real kernel would block here
		return unix.EDEADLK
	}
	return nil
}

func (d *device) KDGetMode() (vt.KDMode, error) {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.request(d, OpKDGetMode, 0); err != nil {
		return -1, err
	}
	return k.kdModes[d.current()], nil
}

func (d *device) KDSetMode(mode vt.KDMode) error {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.request(d, OpKDSetMode, int(mode)); err != nil {
		return err
	}
	k.kdModes[d.current()] = mode
	return nil
}

func (d *device) Close() error {
	k := d.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.request(d, OpClose, 0); err != nil {
		return err
	}
	d.closed = true
	k.open--
	return nil
}
