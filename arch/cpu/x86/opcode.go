package x86

import "github.com/kformaniak/emu8086/set"

// handlerFunc executes one fully-decoded instruction body starting
// just past its opcode byte (and any ModR/M byte, for opcodes that
// decode one themselves).
type handlerFunc func(c *CPU) error

// opcodes maps every first opcode byte to its handler. Entries left
// nil are bytes the 8086 never defined (or that are consumed as
// prefixes before dispatch ever sees them); Step falls back to
// (*CPU).undefined for a nil entry.
var opcodes [256]handlerFunc

func init() {
	for family, op := range map[uint8]aluOp{
		0x00: aluADD, 0x08: aluOR, 0x10: aluADC, 0x18: aluSBB,
		0x20: aluAND, 0x28: aluSUB, 0x30: aluXOR, 0x38: aluCMP,
	} {
		op := op
		opcodes[family+0] = func(c *CPU) error { return c.aluEbGb(op) }
		opcodes[family+1] = func(c *CPU) error { return c.aluEvGv(op) }
		opcodes[family+2] = func(c *CPU) error { return c.aluGbEb(op) }
		opcodes[family+3] = func(c *CPU) error { return c.aluGvEv(op) }
		opcodes[family+4] = func(c *CPU) error { return c.aluALImm8(op) }
		opcodes[family+5] = func(c *CPU) error { return c.aluAXImm16(op) }
	}

	opcodes[0x06] = func(c *CPU) error { return c.pushSeg(SegES) }
	opcodes[0x07] = func(c *CPU) error { return c.popSeg(SegES) }
	opcodes[0x0E] = func(c *CPU) error { return c.pushSeg(SegCS) }
	opcodes[0x0F] = (*CPU).popCS // undocumented POP CS
	opcodes[0x16] = func(c *CPU) error { return c.pushSeg(SegSS) }
	opcodes[0x17] = func(c *CPU) error { return c.popSeg(SegSS) }
	opcodes[0x1E] = func(c *CPU) error { return c.pushSeg(SegDS) }
	opcodes[0x1F] = func(c *CPU) error { return c.popSeg(SegDS) }

	opcodes[0x27] = (*CPU).daaOpcode
	opcodes[0x2F] = (*CPU).dasOpcode
	opcodes[0x37] = (*CPU).aaaOpcode
	opcodes[0x3F] = (*CPU).aasOpcode

	for i := uint8(0); i < 8; i++ {
		i := i
		opcodes[0x40+i] = func(c *CPU) error { return c.incReg16(i) }
		opcodes[0x48+i] = func(c *CPU) error { return c.decReg16(i) }
		opcodes[0x50+i] = func(c *CPU) error { return c.pushReg16(i) }
		opcodes[0x58+i] = func(c *CPU) error { return c.popReg16(i) }
		opcodes[0xB0+i] = func(c *CPU) error { return c.movRegImm8(i) }
		opcodes[0xB8+i] = func(c *CPU) error { return c.movRegImm16(i) }
	}

	// 0x60-0x6F were undefined on real 8086 silicon; the part decodes
	// them as aliases of the 16 Jcc conditions at 0x70-0x7F.
	for i := uint8(0); i < 16; i++ {
		i := i
		cc := condition(i)
		opcodes[0x60+i] = func(c *CPU) error { return c.jcc(cc) }
		opcodes[0x70+i] = func(c *CPU) error { return c.jcc(cc) }
	}

	opcodes[0x80] = (*CPU).group1Op8
	opcodes[0x81] = func(c *CPU) error { return c.group1Op16(false) }
	opcodes[0x82] = (*CPU).group1Op8 // undocumented alias of 0x80
	opcodes[0x83] = func(c *CPU) error { return c.group1Op16(true) }
	opcodes[0x84] = (*CPU).testEbGb
	opcodes[0x85] = (*CPU).testEvGv
	opcodes[0x86] = (*CPU).xchgEbGb
	opcodes[0x87] = (*CPU).xchgEvGv
	opcodes[0x88] = (*CPU).movEbGb
	opcodes[0x89] = (*CPU).movEvGv
	opcodes[0x8A] = (*CPU).movGbEb
	opcodes[0x8B] = (*CPU).movGvEv
	opcodes[0x8C] = (*CPU).movEvSw
	opcodes[0x8D] = (*CPU).lea
	opcodes[0x8E] = (*CPU).movSwEv
	opcodes[0x8F] = (*CPU).popRM16

	opcodes[0x90] = (*CPU).nop
	for i := uint8(1); i < 8; i++ {
		i := i
		opcodes[0x90+i] = func(c *CPU) error { return c.xchgAXReg(i) }
	}
	opcodes[0x98] = (*CPU).cbw
	opcodes[0x99] = (*CPU).cwd
	opcodes[0x9A] = (*CPU).callFarDirect
	opcodes[0x9B] = (*CPU).nop // WAIT: no FPU state to synchronize on
	opcodes[0x9C] = (*CPU).pushf
	opcodes[0x9D] = (*CPU).popf
	opcodes[0x9E] = (*CPU).sahf
	opcodes[0x9F] = (*CPU).lahf

	opcodes[0xA0] = (*CPU).movALMoffs8
	opcodes[0xA1] = (*CPU).movAXMoffs16
	opcodes[0xA2] = (*CPU).movMoffs8AL
	opcodes[0xA3] = (*CPU).movMoffs16AX
	opcodes[0xA4] = (*CPU).movsb
	opcodes[0xA5] = (*CPU).movsw
	opcodes[0xA6] = (*CPU).cmpsb
	opcodes[0xA7] = (*CPU).cmpsw
	opcodes[0xA8] = (*CPU).testALImm8
	opcodes[0xA9] = (*CPU).testAXImm16
	opcodes[0xAA] = (*CPU).stosb
	opcodes[0xAB] = (*CPU).stosw
	opcodes[0xAC] = (*CPU).lodsb
	opcodes[0xAD] = (*CPU).lodsw
	opcodes[0xAE] = (*CPU).scasb
	opcodes[0xAF] = (*CPU).scasw

	// 0xC0/0xC1 (shift r/m, imm8) are an 80186 addition, out of scope
	// for this 8086-only implementation (see Non-goals); left nil so
	// they fall through to (*CPU).undefined, same as 0xC8/0xC9.
	opcodes[0xC2] = (*CPU).retNearImm
	opcodes[0xC3] = (*CPU).retNear
	opcodes[0xC4] = func(c *CPU) error { return c.loadFarPointer(SegES) }
	opcodes[0xC5] = func(c *CPU) error { return c.loadFarPointer(SegDS) }
	opcodes[0xC6] = (*CPU).movRMImm8
	opcodes[0xC7] = (*CPU).movRMImm16
	opcodes[0xCA] = (*CPU).retFarImm
	opcodes[0xCB] = (*CPU).retFar
	opcodes[0xCC] = (*CPU).int3
	opcodes[0xCD] = (*CPU).intImm8
	opcodes[0xCE] = (*CPU).into
	opcodes[0xCF] = (*CPU).iret

	opcodes[0xD0] = func(c *CPU) error { return c.group2Op8(countOne) }
	opcodes[0xD1] = func(c *CPU) error { return c.group2Op16(countOne) }
	opcodes[0xD2] = func(c *CPU) error { return c.group2Op8(countCL) }
	opcodes[0xD3] = func(c *CPU) error { return c.group2Op16(countCL) }
	opcodes[0xD4] = (*CPU).aamOpcode
	opcodes[0xD5] = (*CPU).aadOpcode
	opcodes[0xD7] = (*CPU).xlat
	for i := uint8(0xD8); i <= 0xDF; i++ {
		opcodes[i] = (*CPU).escapeFPU
	}

	opcodes[0xE0] = (*CPU).loopnz
	opcodes[0xE1] = (*CPU).loopz
	opcodes[0xE2] = (*CPU).loop
	opcodes[0xE3] = (*CPU).jcxz
	opcodes[0xE4] = func(c *CPU) error { return c.inAL(false) }
	opcodes[0xE5] = func(c *CPU) error { return c.inAX(false) }
	opcodes[0xE6] = func(c *CPU) error { return c.outAL(false) }
	opcodes[0xE7] = func(c *CPU) error { return c.outAX(false) }
	opcodes[0xE8] = (*CPU).callNear
	opcodes[0xE9] = (*CPU).jmpNear
	opcodes[0xEA] = (*CPU).jmpFarDirect
	opcodes[0xEB] = (*CPU).jmpShort
	opcodes[0xEC] = func(c *CPU) error { return c.inAL(true) }
	opcodes[0xED] = func(c *CPU) error { return c.inAX(true) }
	opcodes[0xEE] = func(c *CPU) error { return c.outAL(true) }
	opcodes[0xEF] = func(c *CPU) error { return c.outAX(true) }

	opcodes[0xF4] = (*CPU).hlt
	opcodes[0xF5] = (*CPU).cmc
	opcodes[0xF6] = (*CPU).group3Op8
	opcodes[0xF7] = (*CPU).group3Op16
	opcodes[0xF8] = (*CPU).clc
	opcodes[0xF9] = (*CPU).stc
	opcodes[0xFA] = (*CPU).cli
	opcodes[0xFB] = (*CPU).sti
	opcodes[0xFC] = (*CPU).cld
	opcodes[0xFD] = (*CPU).std
	opcodes[0xFE] = (*CPU).group4Op8
	opcodes[0xFF] = (*CPU).group5Op16
}

func (c *CPU) daaOpcode() error { c.daa(); return nil }
func (c *CPU) dasOpcode() error { c.das(); return nil }
func (c *CPU) aaaOpcode() error { c.aaa(); return nil }
func (c *CPU) aasOpcode() error { c.aas(); return nil }

// UndefinedOpcodes returns the set of first opcode bytes this CPU has no
// dispatch entry for, reachable only through (*CPU).undefined. A caller
// can use it to tell "this opcode is undefined on the 8086" apart from
// "this opcode is defined but its handler produced the wrong result";
// the conformance subcommand does not call it.
func UndefinedOpcodes() set.Set[uint8] {
	undefined := set.New[uint8]()
	for i := 0; i < len(opcodes); i++ {
		if opcodes[i] == nil {
			undefined.Add(uint8(i))
		}
	}
	return undefined
}
