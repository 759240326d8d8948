package x86

// aluOp identifies one of the eight ALU-family operations that share the
// 0x00-0x3D opcode block's Eb/Gb, Gb/Eb, AL-imm8 and AX-imm16 encodings.
type aluOp uint8

const (
	aluADD aluOp = iota
	aluOR
	aluADC
	aluSBB
	aluAND
	aluSUB
	aluXOR
	aluCMP
)

// apply8 performs op on a and b, updating flags, and returns the result
// (CMP's result is discarded by the caller).
func (c *CPU) apply8(op aluOp, a, b uint8) uint8 {
	switch op {
	case aluADD:
		return c.add8(a, b, false)
	case aluOR:
		return c.logic8(a | b)
	case aluADC:
		return c.add8(a, b, c.Flags.GetCarry())
	case aluSBB:
		return c.sub8(a, b, c.Flags.GetCarry())
	case aluAND:
		return c.logic8(a & b)
	case aluSUB, aluCMP:
		return c.sub8(a, b, false)
	case aluXOR:
		return c.logic8(a ^ b)
	default:
		return 0
	}
}

// apply16 is apply8 for 16-bit operands.
func (c *CPU) apply16(op aluOp, a, b uint16) uint16 {
	switch op {
	case aluADD:
		return c.add16(a, b, false)
	case aluOR:
		return c.logic16(a | b)
	case aluADC:
		return c.add16(a, b, c.Flags.GetCarry())
	case aluSBB:
		return c.sub16(a, b, c.Flags.GetCarry())
	case aluAND:
		return c.logic16(a & b)
	case aluSUB, aluCMP:
		return c.sub16(a, b, false)
	case aluXOR:
		return c.logic16(a ^ b)
	default:
		return 0
	}
}

// aluEbGb executes "op r/m8, r8" (opcode forms x0).
func (c *CPU) aluEbGb(op aluOp) error {
	m := c.decodeModRM()
	result := c.apply8(op, c.readRM8(m), c.readReg8(m.Reg))
	if op != aluCMP {
		c.writeRM8(m, result)
	}
	return nil
}

// aluEvGv executes "op r/m16, r16" (opcode forms x1).
func (c *CPU) aluEvGv(op aluOp) error {
	m := c.decodeModRM()
	result := c.apply16(op, c.readRM16(m), c.readReg16(m.Reg))
	if op != aluCMP {
		c.writeRM16(m, result)
	}
	return nil
}

// aluGbEb executes "op r8, r/m8" (opcode forms x2).
func (c *CPU) aluGbEb(op aluOp) error {
	m := c.decodeModRM()
	result := c.apply8(op, c.readReg8(m.Reg), c.readRM8(m))
	if op != aluCMP {
		c.writeReg8(m.Reg, result)
	}
	return nil
}

// aluGvEv executes "op r16, r/m16" (opcode forms x3).
func (c *CPU) aluGvEv(op aluOp) error {
	m := c.decodeModRM()
	result := c.apply16(op, c.readReg16(m.Reg), c.readRM16(m))
	if op != aluCMP {
		c.writeReg16(m.Reg, result)
	}
	return nil
}

// aluALImm8 executes "op AL, imm8" (opcode forms x4).
func (c *CPU) aluALImm8(op aluOp) error {
	imm := c.fetchByte()
	result := c.apply8(op, c.AL(), imm)
	if op != aluCMP {
		c.SetAL(result)
	}
	return nil
}

// aluAXImm16 executes "op AX, imm16" (opcode forms x5).
func (c *CPU) aluAXImm16(op aluOp) error {
	imm := c.fetchWord()
	result := c.apply16(op, c.AX, imm)
	if op != aluCMP {
		c.AX = result
	}
	return nil
}

// group1Op8 applies the Group 1 immediate ALU opcodes (0x80 and its
// undocumented alias 0x82) to an 8-bit r/m operand, reg field selecting
// the operation.
func (c *CPU) group1Op8() error {
	m := c.decodeModRM()
	imm := c.fetchByte()
	op := aluOp(m.Reg)
	result := c.apply8(op, c.readRM8(m), imm)
	if op != aluCMP {
		c.writeRM8(m, result)
	}
	return nil
}

// group1Op16 applies the Group 1 immediate ALU opcodes (0x81 imm16,
// 0x83 sign-extended imm8) to a 16-bit r/m operand.
func (c *CPU) group1Op16(signExtendByte bool) error {
	m := c.decodeModRM()
	var imm uint16
	if signExtendByte {
		imm = uint16(int16(int8(c.fetchByte())))
	} else {
		imm = c.fetchWord()
	}
	op := aluOp(m.Reg)
	result := c.apply16(op, c.readRM16(m), imm)
	if op != aluCMP {
		c.writeRM16(m, result)
	}
	return nil
}

// testEbGb implements TEST r/m8, r8 (0x84): AND without storing.
func (c *CPU) testEbGb() error {
	m := c.decodeModRM()
	c.logic8(c.readRM8(m) & c.readReg8(m.Reg))
	return nil
}

// testEvGv implements TEST r/m16, r16 (0x85).
func (c *CPU) testEvGv() error {
	m := c.decodeModRM()
	c.logic16(c.readRM16(m) & c.readReg16(m.Reg))
	return nil
}

// testALImm8 implements TEST AL, imm8 (0xA8).
func (c *CPU) testALImm8() error {
	imm := c.fetchByte()
	c.logic8(c.AL() & imm)
	return nil
}

// testAXImm16 implements TEST AX, imm16 (0xA9).
func (c *CPU) testAXImm16() error {
	imm := c.fetchWord()
	c.logic16(c.AX & imm)
	return nil
}

// incReg16 implements INC r16 (0x40-0x47), named by the low 3 bits of
// the opcode.
func (c *CPU) incReg16(reg uint8) error {
	c.writeReg16(reg, c.inc16(c.readReg16(reg)))
	return nil
}

// decReg16 implements DEC r16 (0x48-0x4F).
func (c *CPU) decReg16(reg uint8) error {
	c.writeReg16(reg, c.dec16(c.readReg16(reg)))
	return nil
}
