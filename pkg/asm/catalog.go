// Package asm is the static 8080 opcode catalog: mnemonic, encoded length,
// and tabulated cycle cost for every one of the 256 byte encodings. It is
// the disassembly-and-reporting counterpart to pkg/cpu's executable
// dispatch table, indexed directly by the real 8080 opcode byte since the
// byte value already is the index the decode table uses.
package asm

// Info is the static metadata for one opcode encoding.
type Info struct {
	Mnemonic string // e.g. "MOV B,C", "MVI A,d8", "JNZ a16"
	Length   int    // total encoded length in bytes, including the opcode
	Cycles   int    // tabulated cost; for conditional branches this is the untaken cost
	Branches bool   // true if Cycles varies by whether the branch/condition is taken
}

// Catalog maps every opcode byte to its Info.
var Catalog [256]Info

var regName = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var rpName = [4]string{"B", "D", "H", "SP"}
var rpPushName = [4]string{"B", "D", "H", "PSW"}
var condName = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

func init() {
	for d := uint8(0); d < 8; d++ {
		for s := uint8(0); s < 8; s++ {
			op := 0x40 + d<<3 + s
			if op == 0x76 {
				continue
			}
			cost := 5
			if d == 6 || s == 6 {
				cost = 7
			}
			Catalog[op] = Info{"MOV " + regName[d] + "," + regName[s], 1, cost, false}
		}
	}
	Catalog[0x76] = Info{"HLT", 1, 7, false}

	aluNames := []string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
	for i, name := range aluNames {
		base := uint8(0x80 + i*8)
		for r := uint8(0); r < 8; r++ {
			cost := 4
			if r == 6 {
				cost = 7
			}
			Catalog[base+r] = Info{name + " " + regName[r], 1, cost, false}
		}
	}

	immAluNames := []struct {
		op   uint8
		name string
	}{
		{0xC6, "ADI"}, {0xCE, "ACI"}, {0xD6, "SUI"}, {0xDE, "SBI"},
		{0xE6, "ANI"}, {0xEE, "XRI"}, {0xF6, "ORI"}, {0xFE, "CPI"},
	}
	for _, a := range immAluNames {
		Catalog[a.op] = Info{a.name + " d8", 2, 7, false}
	}

	for r := uint8(0); r < 8; r++ {
		cost := 5
		if r == 6 {
			cost = 10
		}
		Catalog[0x04+r<<3] = Info{"INR " + regName[r], 1, cost, false}
		Catalog[0x05+r<<3] = Info{"DCR " + regName[r], 1, cost, false}
		mvicost := 7
		if r == 6 {
			mvicost = 10
		}
		Catalog[0x06+r<<3] = Info{"MVI " + regName[r] + ",d8", 2, mvicost, false}
	}

	for rp := uint8(0); rp < 4; rp++ {
		Catalog[0x01+rp<<4] = Info{"LXI " + rpName[rp] + ",d16", 3, 10, false}
		Catalog[0x03+rp<<4] = Info{"INX " + rpName[rp], 1, 5, false}
		Catalog[0x0B+rp<<4] = Info{"DCX " + rpName[rp], 1, 5, false}
		Catalog[0x09+rp<<4] = Info{"DAD " + rpName[rp], 1, 10, false}
	}
	for rp := uint8(0); rp < 2; rp++ {
		Catalog[0x02+rp<<4] = Info{"STAX " + rpName[rp], 1, 7, false}
		Catalog[0x0A+rp<<4] = Info{"LDAX " + rpName[rp], 1, 7, false}
	}
	for rp := uint8(0); rp < 4; rp++ {
		Catalog[0xC5+rp<<4] = Info{"PUSH " + rpPushName[rp], 1, 11, false}
		Catalog[0xC1+rp<<4] = Info{"POP " + rpPushName[rp], 1, 10, false}
	}

	for n := uint8(0); n < 8; n++ {
		Catalog[0xC7+n<<3] = Info{"RST " + string(rune('0'+n)), 1, 11, false}
	}

	for ccc := uint8(0); ccc < 8; ccc++ {
		cond := condName[ccc]
		Catalog[0xC0+ccc<<3] = Info{"R" + cond, 1, 5, true}
		Catalog[0xC2+ccc<<3] = Info{"J" + cond + " a16", 3, 10, false}
		Catalog[0xC4+ccc<<3] = Info{"C" + cond + " a16", 3, 11, true}
	}

	for _, op := range []uint8{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		Catalog[op] = Info{"NOP", 1, 4, false}
	}

	Catalog[0x07] = Info{"RLC", 1, 4, false}
	Catalog[0x0F] = Info{"RRC", 1, 4, false}
	Catalog[0x17] = Info{"RAL", 1, 4, false}
	Catalog[0x1F] = Info{"RAR", 1, 4, false}
	Catalog[0x27] = Info{"DAA", 1, 4, false}
	Catalog[0x2F] = Info{"CMA", 1, 4, false}
	Catalog[0x37] = Info{"STC", 1, 4, false}
	Catalog[0x3F] = Info{"CMC", 1, 4, false}

	Catalog[0x22] = Info{"SHLD a16", 3, 16, false}
	Catalog[0x2A] = Info{"LHLD a16", 3, 16, false}
	Catalog[0x32] = Info{"STA a16", 3, 13, false}
	Catalog[0x3A] = Info{"LDA a16", 3, 13, false}

	Catalog[0xC3] = Info{"JMP a16", 3, 10, false}
	Catalog[0xCB] = Info{"JMP a16", 3, 10, false}
	Catalog[0xCD] = Info{"CALL a16", 3, 17, false}
	Catalog[0xDD] = Info{"CALL a16", 3, 17, false}
	Catalog[0xED] = Info{"CALL a16", 3, 17, false}
	Catalog[0xFD] = Info{"CALL a16", 3, 17, false}
	Catalog[0xC9] = Info{"RET", 1, 10, false}
	Catalog[0xD9] = Info{"RET", 1, 10, false}
	Catalog[0xE9] = Info{"PCHL", 1, 5, false}

	Catalog[0xE3] = Info{"XTHL", 1, 18, false}
	Catalog[0xF9] = Info{"SPHL", 1, 5, false}
	Catalog[0xEB] = Info{"XCHG", 1, 4, false}

	Catalog[0xD3] = Info{"OUT d8", 2, 10, false}
	Catalog[0xDB] = Info{"IN d8", 2, 10, false}

	Catalog[0xFB] = Info{"EI", 1, 4, false}
	Catalog[0xF3] = Info{"DI", 1, 4, false}

	for op := range Catalog {
		if Catalog[op].Mnemonic == "" {
			panic("asm: opcode catalog incomplete")
		}
	}
}
