package machine

import "sync/atomic"

// PortSet is a minimal stand-in for the Space Invaders I/O board: a 16-bit
// shift register at ports 2 (offset)/3 (read)/4 (write), three fixed input
// latches at ports 0/1/2, and a discard sink for the sound/watchdog ports
// (3/5/6 on write). This is the default wiring cmd/i8080 plugs in so `run`
// has something to drive against, not a claim about the one true cabinet
// behavior.
type PortSet struct {
	Inputs0, Inputs1, Inputs2 atomic.Uint32 // bit latches, host-writable

	shiftReg    atomic.Uint32 // 16-bit shift register
	shiftOffset atomic.Uint32 // 0-7
}

// NewPortSet returns a PortSet with the bits that are conventionally tied
// high on real Space Invaders cabinets (unused switches, "always 1" bits).
func NewPortSet() *PortSet {
	p := &PortSet{}
	p.Inputs0.Store(0x0E)
	p.Inputs1.Store(0x08)
	p.Inputs2.Store(0x00)
	return p
}

// In implements bus.IO.
func (p *PortSet) In(port uint8) uint8 {
	switch port {
	case 0:
		return uint8(p.Inputs0.Load())
	case 1:
		return uint8(p.Inputs1.Load())
	case 2:
		return uint8(p.Inputs2.Load())
	case 3:
		v := p.shiftReg.Load()
		off := p.shiftOffset.Load()
		return uint8(v >> (8 - off))
	default:
		return 0
	}
}

// Out implements bus.IO.
func (p *PortSet) Out(port uint8, value uint8) {
	switch port {
	case 2:
		p.shiftOffset.Store(uint32(value) & 0x7)
	case 4:
		old := p.shiftReg.Load()
		next := (old >> 8) | (uint32(value) << 8)
		p.shiftReg.Store(next)
	default:
		// Sound banks (3, 5) and the watchdog (6) are peripherals this
		// core has no opinion about; a host that cares replaces PortSet.
	}
}
