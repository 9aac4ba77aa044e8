package vt

import (
	"github.com/srlehn/termvt/internal/linux"
)

// Device is an open VT device node (the master /dev/tty0 or a /dev/ttyN).
// All kernel VT requests go through it. The opener owns it and must Close it.
type Device interface {
	Name() string
	Write(b []byte) (int, error)
	GetMode() (Mode, error)
	SetMode(m Mode) error
	GetState() (State, error)
	OpenQuery() (int, error)
	ReleaseDisplay(arg int) error
	Activate(vt int) error
	WaitActive(vt int) error
	KDGetMode() (KDMode, error)
	KDSetMode(mode KDMode) error
	Close() error
}

// DeviceOpener opens a VT device node read/write without making it the
// controlling terminal.
type DeviceOpener func(path string) (Device, error)

type (
	Mode   = linux.VTMode
	State  = linux.VTStat
	KDMode = linux.KDMode
)

const (
	ModeAuto    = linux.VT_AUTO
	ModeProcess = linux.VT_PROCESS
	AckAcquire  = linux.VT_ACKACQ

	KDText     = linux.KD_TEXT
	KDGraphics = linux.KD_GRAPHICS
)
