package cpu

// opTable is a flat 256-entry dispatch table indexed directly by the
// fetched opcode byte, avoiding a 256-arm switch since 8080 encodings are
// already small dense integers. Each entry executes the instruction against
// the current CPU and returns its tabulated cycle cost (taking the
// taken/untaken branch into account for conditional RET/JMP/CALL).
var opTable [256]func(*CPU) int

func init() {
	// --- MOV r,r' (64 combinations), HLT replacing MOV M,M (0x76) ---
	for d := uint8(0); d < 8; d++ {
		for s := uint8(0); s < 8; s++ {
			op := 0x40 + d<<3 + s
			if op == 0x76 {
				continue // HLT, installed below
			}
			dst, src := d, s
			cost := 5
			if dst == 6 || src == 6 {
				cost = 7
			}
			opTable[op] = func(c *CPU) int {
				c.setReg(dst, c.getReg(src))
				return cost
			}
		}
	}
	opTable[0x76] = func(c *CPU) int {
		c.Halted = true
		return 7
	}

	// --- ALU r|M: ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP (0x80-0xBF) ---
	type aluOp struct {
		base uint8
		fn   func(c *CPU, v uint8)
	}
	aluOps := []aluOp{
		{0x80, func(c *CPU, v uint8) { c.add(v, false) }},
		{0x88, func(c *CPU, v uint8) { c.add(v, true) }},
		{0x90, func(c *CPU, v uint8) { c.sub(v, false) }},
		{0x98, func(c *CPU, v uint8) { c.sub(v, true) }},
		{0xA0, func(c *CPU, v uint8) { c.ana(v) }},
		{0xA8, func(c *CPU, v uint8) { c.xra(v) }},
		{0xB0, func(c *CPU, v uint8) { c.ora(v) }},
		{0xB8, func(c *CPU, v uint8) { c.cmp(v) }},
	}
	for _, a := range aluOps {
		for r := uint8(0); r < 8; r++ {
			op := a.base + r
			reg := r
			fn := a.fn
			cost := 4
			if reg == 6 {
				cost = 7
			}
			opTable[op] = func(c *CPU) int {
				fn(c, c.getReg(reg))
				return cost
			}
		}
	}

	// --- ALU immediate: ADI/ACI/SUI/SBI/ANI/XRI/ORI/CPI ---
	immAlu := []struct {
		op uint8
		fn func(c *CPU, v uint8)
	}{
		{0xC6, func(c *CPU, v uint8) { c.add(v, false) }},
		{0xCE, func(c *CPU, v uint8) { c.add(v, true) }},
		{0xD6, func(c *CPU, v uint8) { c.sub(v, false) }},
		{0xDE, func(c *CPU, v uint8) { c.sub(v, true) }},
		{0xE6, func(c *CPU, v uint8) { c.ana(v) }},
		{0xEE, func(c *CPU, v uint8) { c.xra(v) }},
		{0xF6, func(c *CPU, v uint8) { c.ora(v) }},
		{0xFE, func(c *CPU, v uint8) { c.cmp(v) }},
	}
	for _, a := range immAlu {
		fn := a.fn
		opTable[a.op] = func(c *CPU) int {
			fn(c, c.fetch8())
			return 7
		}
	}

	// --- INR/DCR r|M ---
	for r := uint8(0); r < 8; r++ {
		reg := r
		cost := 5
		if reg == 6 {
			cost = 10
		}
		opTable[0x04+reg<<3] = func(c *CPU) int {
			c.setReg(reg, c.inr(c.getReg(reg)))
			return cost
		}
		opTable[0x05+reg<<3] = func(c *CPU) int {
			c.setReg(reg, c.dcr(c.getReg(reg)))
			return cost
		}
	}

	// --- MVI r,d8 ---
	for r := uint8(0); r < 8; r++ {
		reg := r
		cost := 7
		if reg == 6 {
			cost = 10
		}
		opTable[0x06+reg<<3] = func(c *CPU) int {
			c.setReg(reg, c.fetch8())
			return cost
		}
	}

	// --- LXI rp,d16 / INX rp / DCX rp / DAD rp ---
	for rp := uint8(0); rp < 4; rp++ {
		pair := rp
		opTable[0x01+pair<<4] = func(c *CPU) int {
			c.setRP(pair, c.fetch16())
			return 10
		}
		opTable[0x03+pair<<4] = func(c *CPU) int {
			c.setRP(pair, c.getRP(pair)+1)
			return 5
		}
		opTable[0x0B+pair<<4] = func(c *CPU) int {
			c.setRP(pair, c.getRP(pair)-1)
			return 5
		}
		opTable[0x09+pair<<4] = func(c *CPU) int {
			c.dad(c.getRP(pair))
			return 10
		}
	}

	// --- STAX/LDAX (rp in {0=B, 1=D} only) ---
	for rp := uint8(0); rp < 2; rp++ {
		pair := rp
		opTable[0x02+pair<<4] = func(c *CPU) int {
			c.Mem.WriteByte(c.getRP(pair), c.A)
			return 7
		}
		opTable[0x0A+pair<<4] = func(c *CPU) int {
			c.A = c.Mem.ReadByte(c.getRP(pair))
			return 7
		}
	}

	// --- PUSH/POP rp (rp=3 means PSW) ---
	for rp := uint8(0); rp < 4; rp++ {
		pair := rp
		opTable[0xC5+pair<<4] = func(c *CPU) int {
			c.push16(c.getRPPush(pair))
			return 11
		}
		opTable[0xC1+pair<<4] = func(c *CPU) int {
			c.setRPPush(pair, c.pop16())
			return 10
		}
	}

	// --- RST 0..7 ---
	for n := uint8(0); n < 8; n++ {
		vec := n
		opTable[0xC7+vec<<3] = func(c *CPU) int {
			c.call(uint16(vec) * 8)
			return 11
		}
	}

	// --- Conditional RET/JMP/CALL, 8 conditions each ---
	for ccc := uint8(0); ccc < 8; ccc++ {
		cond := ccc
		opTable[0xC0+cond<<3] = func(c *CPU) int { // RCC
			if c.condition(cond) {
				c.ret()
				return 11
			}
			return 5
		}
		opTable[0xC2+cond<<3] = func(c *CPU) int { // JCC
			dest := c.fetch16()
			if c.condition(cond) {
				c.PC = dest
			}
			return 10
		}
		opTable[0xC4+cond<<3] = func(c *CPU) int { // CCC
			dest := c.fetch16()
			if c.condition(cond) {
				c.call(dest)
				return 17
			}
			return 11
		}
	}

	// --- Unconditional NOP (and undocumented duplicate encodings) ---
	nop := func(c *CPU) int { return 4 }
	for _, op := range []uint8{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		opTable[op] = nop
	}

	// --- Rotates, flag ops, DAA, CMA ---
	opTable[0x07] = func(c *CPU) int { c.rlc(); return 4 }
	opTable[0x0F] = func(c *CPU) int { c.rrc(); return 4 }
	opTable[0x17] = func(c *CPU) int { c.ral(); return 4 }
	opTable[0x1F] = func(c *CPU) int { c.rar(); return 4 }
	opTable[0x27] = func(c *CPU) int { c.daa(); return 4 }
	opTable[0x2F] = func(c *CPU) int { c.A = ^c.A; return 4 } // CMA: complement A, no flags
	opTable[0x37] = func(c *CPU) int { c.setF(c.F | FlagC); return 4 }
	opTable[0x3F] = func(c *CPU) int { c.setF(c.F ^ FlagC); return 4 }

	// --- 16-bit load/store: SHLD, LHLD, STA, LDA ---
	opTable[0x22] = func(c *CPU) int {
		addr := c.fetch16()
		c.Mem.WriteWord(addr, c.HL())
		return 16
	}
	opTable[0x2A] = func(c *CPU) int {
		addr := c.fetch16()
		c.setHL(c.Mem.ReadWord(addr))
		return 16
	}
	opTable[0x32] = func(c *CPU) int {
		addr := c.fetch16()
		c.Mem.WriteByte(addr, c.A)
		return 13
	}
	opTable[0x3A] = func(c *CPU) int {
		addr := c.fetch16()
		c.A = c.Mem.ReadByte(addr)
		return 13
	}

	// --- Unconditional control flow ---
	opTable[0xC3] = func(c *CPU) int { c.PC = c.fetch16(); return 10 }
	opTable[0xCB] = opTable[0xC3] // duplicate JMP
	opTable[0xCD] = func(c *CPU) int {
		dest := c.fetch16()
		c.call(dest)
		return 17
	}
	opTable[0xDD] = opTable[0xCD] // duplicate CALL
	opTable[0xED] = opTable[0xCD]
	opTable[0xFD] = opTable[0xCD]
	opTable[0xC9] = func(c *CPU) int { c.ret(); return 10 }
	opTable[0xD9] = opTable[0xC9] // duplicate RET
	opTable[0xE9] = func(c *CPU) int { c.PC = c.HL(); return 5 } // PCHL

	// --- Stack/exchange misc ---
	opTable[0xE3] = func(c *CPU) int { // XTHL
		top := c.Mem.ReadWord(c.SP)
		c.Mem.WriteWord(c.SP, c.HL())
		c.setHL(top)
		return 18
	}
	opTable[0xF9] = func(c *CPU) int { c.SP = c.HL(); return 5 } // SPHL
	opTable[0xEB] = func(c *CPU) int {                           // XCHG
		h, l := c.H, c.L
		c.H, c.L = c.D, c.E
		c.D, c.E = h, l
		return 4
	}

	// --- I/O ---
	opTable[0xD3] = func(c *CPU) int { // OUT d8
		port := c.fetch8()
		c.Mem.Out(port, c.A)
		return 10
	}
	opTable[0xDB] = func(c *CPU) int { // IN d8
		port := c.fetch8()
		c.A = c.Mem.In(port)
		return 10
	}

	// --- Interrupt enable latch ---
	opTable[0xFB] = func(c *CPU) int { // EI: enabled after the *next* Step
		c.EIPending = true
		return 4
	}
	opTable[0xF3] = func(c *CPU) int { // DI
		c.IFF = false
		return 4
	}

	for op := range opTable {
		if opTable[op] == nil {
			panic("cpu: opcode table incomplete at 0x" + hexByte(uint8(op)))
		}
	}
}
