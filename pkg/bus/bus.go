// Package bus implements the 8080's flat 64 KiB address space and the
// 8-bit IN/OUT port mechanism used to reach host-supplied peripherals.
package bus

// MemSize is the full 8080 address space.
const MemSize = 1 << 16

// IO is the capability a host passes in to receive IN/OUT traffic. The bus
// never interprets port numbers; it only forwards them.
type IO interface {
	In(port uint8) uint8
	Out(port uint8, value uint8)
}

// NullIO answers every IN with 0 and discards every OUT. It is the default
// used when a caller has no peripherals to wire up yet.
type NullIO struct{}

func (NullIO) In(uint8) uint8   { return 0 }
func (NullIO) Out(uint8, uint8) {}

// Memory is the 8080's linear byte array plus its I/O ports. Region
// conventions ($0000-$1FFF ROM, $2000-$23FF RAM, $2400-$3FFF video RAM,
// $4000+ mirror) are documented, not enforced: a write to a ROM address
// succeeds here exactly as it would be physically wired away on real
// hardware, not rejected by software.
type Memory struct {
	data [MemSize]byte
	io   IO
}

// New creates a zeroed bus with the given I/O callback. A nil io is
// replaced with NullIO.
func New(io IO) *Memory {
	if io == nil {
		io = NullIO{}
	}
	return &Memory{io: io}
}

// SetIO swaps the I/O callback after construction.
func (m *Memory) SetIO(io IO) {
	if io == nil {
		io = NullIO{}
	}
	m.io = io
}

// ReadByte returns the byte at addr, wrapped modulo 65536.
func (m *Memory) ReadByte(addr uint16) uint8 {
	return m.data[addr]
}

// WriteByte stores v at addr, wrapped modulo 65536.
func (m *Memory) WriteByte(addr uint16, v uint8) {
	m.data[addr] = v
}

// ReadWord reads a little-endian 16-bit value at addr, addr+1 (wrapping).
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.data[addr]
	hi := m.data[addr+1]
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord stores a little-endian 16-bit value at addr, addr+1 (wrapping).
func (m *Memory) WriteWord(addr uint16, v uint16) {
	m.data[addr] = uint8(v)
	m.data[addr+1] = uint8(v >> 8)
}

// Load copies bytes into memory starting at offset, wrapping addresses
// modulo 65536 the same way single-byte accesses do.
func (m *Memory) Load(bytes []byte, offset uint16) {
	for i, b := range bytes {
		m.data[offset+uint16(i)] = b
	}
}

// Slice returns a read-only view of [start, start+length) for callers (such
// as the video sampler) that need to scan a region without going through
// per-byte ReadByte calls. The caller must not retain or mutate it.
func (m *Memory) Slice(start uint16, length int) []byte {
	end := int(start) + length
	if end <= MemSize {
		return m.data[start:end]
	}
	// Wrap around $0000 — callers scanning near the top of the address
	// space get a copy instead of a second aliasing slice.
	out := make([]byte, length)
	n := copy(out, m.data[start:])
	copy(out[n:], m.data[:length-n])
	return out
}

// In reads one byte from the given port via the host callback.
func (m *Memory) In(port uint8) uint8 {
	return m.io.In(port)
}

// Out writes one byte to the given port via the host callback.
func (m *Memory) Out(port uint8, value uint8) {
	m.io.Out(port, value)
}
