package cpu

// Register index 6 means "(HL)" in every rrr/sss/ddd encoding; there is no
// backing register, so getReg/setReg special-case it against memory.

func (c *CPU) getReg(idx uint8) uint8 {
	if idx == 6 {
		return c.Mem.ReadByte(c.HL())
	}
	return *c.regs[idx]
}

func (c *CPU) setReg(idx uint8, v uint8) {
	if idx == 6 {
		c.Mem.WriteByte(c.HL(), v)
		return
	}
	*c.regs[idx] = v
}

// Register-pair index 0..3 -> BC, DE, HL, SP (the rp encoding used by LXI,
// INX, DCX, DAD).
func (c *CPU) getRP(rp uint8) uint16 {
	switch rp {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) setRP(rp uint8, v uint16) {
	switch rp {
	case 0:
		c.setBC(v)
	case 1:
		c.setDE(v)
	case 2:
		c.setHL(v)
	default:
		c.SP = v
	}
}

// Register-pair index 0..3 -> BC, DE, HL, PSW (the rp encoding used by PUSH
// and POP, where index 3 means the A/F pair instead of SP).
func (c *CPU) getRPPush(rp uint8) uint16 {
	if rp == 3 {
		return c.PSW()
	}
	return c.getRP(rp)
}

func (c *CPU) setRPPush(rp uint8, v uint16) {
	if rp == 3 {
		c.setPSW(v)
		return
	}
	c.setRP(rp, v)
}

// condition evaluates one of the 8 branch conditions (NZ,Z,NC,C,PO,PE,P,M)
// named by the 3-bit ccc field extracted from conditional JCC/CCC/RCC
// opcodes.
func (c *CPU) condition(ccc uint8) bool {
	switch ccc {
	case 0: // NZ
		return c.F&FlagZ == 0
	case 1: // Z
		return c.F&FlagZ != 0
	case 2: // NC
		return c.F&FlagC == 0
	case 3: // C
		return c.F&FlagC != 0
	case 4: // PO
		return c.F&FlagP == 0
	case 5: // PE
		return c.F&FlagP != 0
	case 6: // P (sign clear)
		return c.F&FlagS == 0
	default: // M (sign set)
		return c.F&FlagS != 0
	}
}

// call pushes the return address (the address following the 3-byte
// instruction, already in PC after fetch16) and jumps to dest.
func (c *CPU) call(dest uint16) {
	c.push16(c.PC)
	c.PC = dest
}

// ret pops PC from the stack.
func (c *CPU) ret() {
	c.PC = c.pop16()
}
