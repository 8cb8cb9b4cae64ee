package cpu

// Precomputed per-byte flag tables: a lookup is cheaper than recomputing
// sign/zero/parity inline at every ALU op, and it keeps the "how many 1
// bits" loop in one place.
var (
	// szpTable holds the Sign, Zero and Parity flags for every possible
	// 8-bit result. Auxiliary-carry and Carry are never part of it: the
	// 8080's auxiliary-carry rule differs per operation family (see
	// addFlags/subFlags below) and cannot be a function of the result byte
	// alone.
	szpTable [256]uint8
)

func init() {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		var f uint8
		if v&0x80 != 0 {
			f |= FlagS
		}
		if v == 0 {
			f |= FlagZ
		}
		if evenParity(v) {
			f |= FlagP
		}
		szpTable[i] = f
	}
}

func evenParity(v uint8) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}

// szp returns the S, Z, P bits for result, leaving A and C at 0.
func szp(result uint8) uint8 {
	return szpTable[result]
}

// addFlags computes the full flag byte for an 8-bit add (ADD/ADC), where
// cin is the incoming carry (0 or 1 for ADC, always 0 for ADD). Auxiliary
// carry is the carry out of bit 3, computed from the actual operands and
// cin, never guessed from the result magnitude.
func addFlags(a, b, cin uint8) (result uint8, f uint8) {
	sum := uint16(a) + uint16(b) + uint16(cin)
	result = uint8(sum)
	f = szp(result)
	if (a&0xF)+(b&0xF)+cin > 0xF {
		f |= FlagA
	}
	if sum > 0xFF {
		f |= FlagC
	}
	return result, f
}

// subFlags computes the full flag byte for an 8-bit subtract (SUB/SBB/CMP),
// where cin is the incoming borrow (0 or 1). Borrow out of bit 3 is the
// auxiliary-carry rule for the subtract family: set when the low nibble of
// a is less than the low nibble of b plus the incoming borrow.
func subFlags(a, b, cin uint8) (result uint8, f uint8) {
	diff := int16(a) - int16(b) - int16(cin)
	result = uint8(diff)
	f = szp(result)
	if int16(a&0xF) < int16(b&0xF)+int16(cin) {
		f |= FlagA
	}
	if diff < 0 {
		f |= FlagC
	}
	return result, f
}

// logicFlags computes S, Z, P from result; Carry is always cleared for
// ANA/XRA/ORA. auxC is the documented hardware quirk for ANA (see alu.go);
// XRA/ORA always pass auxC=false.
func logicFlags(result uint8, auxC bool) uint8 {
	f := szp(result)
	if auxC {
		f |= FlagA
	}
	return f
}
