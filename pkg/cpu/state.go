package cpu

import "github.com/oisee/i8080/pkg/bus"

// CPU is the 8080 register file plus the control latches and cycle counter
// that make up processor state. Registers are stored as individual fields;
// 16-bit register-pair views (BC, DE, HL, PSW) are computed accessors, never
// separately stored, so they can never be observed torn.
type CPU struct {
	A, B, C, D, E, H, L, F uint8
	PC, SP                 uint16

	IFF       bool // interrupt-enable latch
	EIPending bool // one-instruction EI delay: EI takes effect after the instruction that follows it
	Halted    bool

	Cycles uint64

	pendingOp  uint8
	hasPending bool

	Mem *bus.Memory

	regs [8]*uint8 // indexed by the 3-bit rrr/sss field; index 6 is (HL), handled specially
}

// Flag bit positions within F. Bit 1 is always 1; bits 3 and 5 always 0.
const (
	FlagC uint8 = 0x01
	flagBit1    = 0x02 // constant 1
	FlagP uint8 = 0x04
	flagBit3    = 0x08 // constant 0
	FlagA uint8 = 0x10
	flagBit5    = 0x20 // constant 0
	FlagZ uint8 = 0x40
	FlagS uint8 = 0x80
)

const flagMask = flagBit3 | flagBit5 // always-zero bits, masked off every write

// New creates a CPU with PC=0, SP=0, all registers zero, F=0x02, IFF=false,
// wired to the given bus.
func New(mem *bus.Memory) *CPU {
	c := &CPU{F: flagBit1, Mem: mem}
	c.regs = [8]*uint8{&c.B, &c.C, &c.D, &c.E, &c.H, &c.L, nil, &c.A}
	return c
}

// setF writes F, forcing the constant-bit invariant F&0x2A==0x02.
func (c *CPU) setF(v uint8) {
	c.F = (v &^ flagMask) | flagBit1
}

// BC, DE, HL, PSW are the 16-bit register-pair views.
func (c *CPU) BC() uint16 { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) DE() uint16 { return uint16(c.D)<<8 | uint16(c.E) }
func (c *CPU) HL() uint16 { return uint16(c.H)<<8 | uint16(c.L) }
func (c *CPU) PSW() uint16 { return uint16(c.A)<<8 | uint16(c.F) }

func (c *CPU) setBC(v uint16) { c.B, c.C = uint8(v>>8), uint8(v) }
func (c *CPU) setDE(v uint16) { c.D, c.E = uint8(v>>8), uint8(v) }
func (c *CPU) setHL(v uint16) { c.H, c.L = uint8(v>>8), uint8(v) }
func (c *CPU) setPSW(v uint16) {
	c.A = uint8(v >> 8)
	c.setF(uint8(v))
}

// ReadMemory and WriteMemory are the host-visible memory accessors.
func (c *CPU) ReadMemory(addr uint16) uint8     { return c.Mem.ReadByte(addr) }
func (c *CPU) WriteMemory(addr uint16, v uint8) { c.Mem.WriteByte(addr, v) }

// Load copies a byte block into memory at offset (e.g. a ROM image).
func (c *CPU) Load(b []byte, offset uint16) { c.Mem.Load(b, offset) }

// Snapshot is the byte-serializable debug state of a CPU: every register,
// latch, and the full memory image.
type Snapshot struct {
	PC, SP                 uint16
	A, B, C, D, E, H, L, F uint8
	IFF, Halted            bool
	Cycles                 uint64
	Memory                 []byte
}

// Snapshot captures the full architectural state, including memory.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		PC: c.PC, SP: c.SP,
		A: c.A, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L, F: c.F,
		IFF: c.IFF, Halted: c.Halted, Cycles: c.Cycles,
		Memory: append([]byte(nil), c.Mem.Slice(0, bus.MemSize)...),
	}
}
