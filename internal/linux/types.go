package linux

import "fmt"

// <linux/vt.h>

// VTMode mirrors struct vt_mode.
type VTMode struct {
	Mode   int8  // vt mode
	WaitV  int8  // if set, hang on writes if not active
	RelSig int16 // signal to raise on release req
	AcqSig int16 // signal to raise on acquisition
	FrSig  int16 // unused (set to 0)
}

// VTStat mirrors struct vt_stat.
type VTStat struct {
	Active uint16 // active vt
	Signal uint16 // signal to send
	State  uint16 // vt bitmask
}

const (
	VT_OPENQRY    = 0x5600 // find available vt
	VT_GETMODE    = 0x5601 // get mode of active vt
	VT_SETMODE    = 0x5602 // set mode of active vt
	VT_GETSTATE   = 0x5603 // get global vt state info
	VT_RELDISP    = 0x5605 // release display
	VT_ACTIVATE   = 0x5606 // make vt active
	VT_WAITACTIVE = 0x5607 // wait for vt active

	VT_AUTO    = 0x00 // auto vt switching
	VT_PROCESS = 0x01 // process controls switching
	VT_ACKACQ  = 0x02 // acknowledge switch
)

// <linux/kd.h>

type KDMode int

const (
	KDSETMODE = 0x4B3A // set text/graphics mode
	KDGETMODE = 0x4B3B // get current mode

	KD_TEXT     KDMode = 0x00
	KD_GRAPHICS KDMode = 0x01
	KD_TEXT0    KDMode = 0x02 // obsolete
	KD_TEXT1    KDMode = 0x03 // obsolete
)

func (k KDMode) String() string {
	switch k {
	case KD_TEXT:
		return `KD_TEXT`
	case KD_GRAPHICS:
		return `KD_GRAPHICS`
	case KD_TEXT0:
		return `KD_TEXT0`
	case KD_TEXT1:
		return `KD_TEXT1`
	}
	if k >= 0 {
		return fmt.Sprintf(`0x%x`, int(k))
	} else {
		return fmt.Sprintf(`-0x%x`, -int(k))
	}
}

func ModeString(mode int8) string {
	switch mode {
	case VT_AUTO:
		return `VT_AUTO`
	case VT_PROCESS:
		return `VT_PROCESS`
	case VT_ACKACQ:
		return `VT_ACKACQ`
	}
	return fmt.Sprintf(`0x%x`, mode)
}
