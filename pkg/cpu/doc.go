// Package cpu implements the Intel 8080 instruction set: register file,
// flag semantics, ALU, decode/dispatch over the full 256-entry opcode
// space, stack discipline, and the interrupt-enable latch.
//
// Decode is a flat dispatch on the 8-bit opcode, covering:
//   - Data transfer: MOV r,r' (64 entries incl. MOV r,M / MOV M,r; MOV M,M
//     is replaced by HLT=0x76), MVI r,d8, LXI rp,d16, LDA, STA, LHLD, SHLD,
//     LDAX B/D, STAX B/D, XCHG.
//   - Arithmetic: ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r|M, immediate forms
//     ADI/ACI/SUI/SBI/ANI/XRI/ORI/CPI, INR/DCR r|M, INX/DCX rp, DAD rp.
//   - Rotate/flag: RLC, RRC, RAL, RAR, STC, CMC, CMA, DAA.
//   - Control: JMP, conditional JCC (8 conditions), CALL, conditional CCC,
//     RET, conditional RCC, PCHL, RST 0..7.
//   - Stack: PUSH/POP rp, XTHL, SPHL.
//   - Misc: NOP (and undocumented NOPs 0x08/0x10/0x18/0x20/0x28/0x30/0x38),
//     IN port, OUT port, EI, DI, HLT, duplicate JMP=0xCB, duplicate
//     CALL=0xDD/0xED/0xFD, duplicate RET=0xD9.
//
// Every one of the 256 byte encodings is populated; there is no reachable
// "unknown opcode" case (see assertUnreachable in exec.go).
package cpu
