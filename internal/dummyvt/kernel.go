// Package dummyvt is an in-memory stand-in for the kernel VT interface that
// records every request.
package dummyvt

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/vt"
)

const (
	OpOpen       = `open`
	OpClose      = `close`
	OpWrite      = `write`
	OpGetMode    = `VT_GETMODE`
	OpSetMode    = `VT_SETMODE`
	OpGetState   = `VT_GETSTATE`
	OpOpenQuery  = `VT_OPENQRY`
	OpRelDisp    = `VT_RELDISP`
	OpActivate   = `VT_ACTIVATE`
	OpWaitActive = `VT_WAITACTIVE`
	OpKDGetMode  = `KDGETMODE`
	OpKDSetMode  = `KDSETMODE`
)

// Call is a recorded request on the device node Device.
type Call struct {
	Device string
	Op     string
	Arg    int
}

// Kernel keeps the VT state shared by all devices opened through Open.
type Kernel struct {
	mu       sync.Mutex
	active   int
	nextFree int
	modes    map[int]vt.Mode
	kdModes  map[int]vt.KDMode
	written  map[string][]byte
	calls    []Call
	failOpen map[string]error
	failNext map[string][]error
	open     int
}

// NewKernel returns a kernel with VT active in VT_AUTO + KD_TEXT.
// nextFree is the answer to VT_OPENQRY.
func NewKernel(active, nextFree int) *Kernel {
	return &Kernel{
		active:   active,
		nextFree: nextFree,
		modes:    make(map[int]vt.Mode),
		kdModes:  make(map[int]vt.KDMode),
		written:  make(map[string][]byte),
		failOpen: make(map[string]error),
		failNext: make(map[string][]error),
	}
}

// Open is a vt.DeviceOpener.
func (k *Kernel) Open(path string) (vt.Device, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.calls = append(k.calls, Call{Device: path, Op: OpOpen})
	if err, ok := k.failOpen[path]; ok {
		return nil, errors.WrapPrefix(err, `open `+path, 0)
	}
	num, err := vtOfPath(path)
	if err != nil {
		return nil, err
	}
	k.open++
	return &device{kernel: k, path: path, vt: num}, nil
}

// FailOpen makes opening path fail with err.
func (k *Kernel) FailOpen(path string, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.failOpen[path] = err
}

// FailNext queues errors returned by the next requests of op, one per request.
func (k *Kernel) FailNext(op string, errs ...error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.failNext[op] = append(k.failNext[op], errs...)
}

// SetVTState sets the VT switch mode and display mode of VT num.
func (k *Kernel) SetVTState(num int, mode vt.Mode, kdMode vt.KDMode) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.modes[num] = mode
	k.kdModes[num] = kdMode
}

func (k *Kernel) VTState(num int) (vt.Mode, vt.KDMode) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.modes[num], k.kdModes[num]
}

func (k *Kernel) Active() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.active
}

// OpenHandles is the number of opened and not yet closed devices.
func (k *Kernel) OpenHandles() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.open
}

func (k *Kernel) Written(path string) string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return string(k.written[path])
}

// Calls returns the recorded requests, all of them if no ops are given.
func (k *Kernel) Calls(ops ...string) []Call {
	k.mu.Lock()
	defer k.mu.Unlock()
	var ret []Call
	for _, c := range k.calls {
		if len(ops) == 0 || contains(ops, c.Op) {
			ret = append(ret, c)
		}
	}
	return ret
}

// ResetCalls forgets the recorded requests.
func (k *Kernel) ResetCalls() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.calls = nil
}

// request records a call and pops a queued error for op.
func (k *Kernel) request(d *device, op string, arg int) error {
	k.calls = append(k.calls, Call{Device: d.path, Op: op, Arg: arg})
	if d.closed {
		return unix.EBADF
	}
	if errs := k.failNext[op]; len(errs) > 0 {
		k.failNext[op] = errs[1:]
		return errs[0]
	}
	return nil
}

// stuck reports whether VT num is in VT_AUTO with KD_GRAPHICS, which the
// kernel cannot switch away from. kernel lock held.
func (k *Kernel) stuck(num int) bool {
	return k.modes[num].Mode == vt.ModeAuto && k.kdModes[num] == vt.KDGraphics
}

func vtOfPath(path string) (int, error) {
	if path == consts.MasterDevice {
		return 0, nil
	}
	numStr, ok := strings.CutPrefix(path, `/dev/tty`)
	if !ok {
		return 0, unix.ENOENT
	}
	num, err := strconv.Atoi(numStr)
	if err != nil || num <= 0 {
		return 0, unix.ENOENT
	}
	return num, nil
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}
