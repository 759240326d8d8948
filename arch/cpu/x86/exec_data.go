package x86

// movEbGb implements MOV r/m8, r8 (0x88).
func (c *CPU) movEbGb() error {
	m := c.decodeModRM()
	c.writeRM8(m, c.readReg8(m.Reg))
	return nil
}

// movEvGv implements MOV r/m16, r16 (0x89).
func (c *CPU) movEvGv() error {
	m := c.decodeModRM()
	c.writeRM16(m, c.readReg16(m.Reg))
	return nil
}

// movGbEb implements MOV r8, r/m8 (0x8A).
func (c *CPU) movGbEb() error {
	m := c.decodeModRM()
	c.writeReg8(m.Reg, c.readRM8(m))
	return nil
}

// movGvEv implements MOV r16, r/m16 (0x8B).
func (c *CPU) movGvEv() error {
	m := c.decodeModRM()
	c.writeReg16(m.Reg, c.readRM16(m))
	return nil
}

// movEvSw implements MOV r/m16, Sreg (0x8C).
func (c *CPU) movEvSw() error {
	m := c.decodeModRM()
	c.writeRM16(m, c.readSeg(m.Reg))
	return nil
}

// movSwEv implements MOV Sreg, r/m16 (0x8E).
func (c *CPU) movSwEv() error {
	m := c.decodeModRM()
	c.writeSeg(m.Reg, c.readRM16(m))
	return nil
}

// lea implements LEA r16, m (0x8D): loads the operand's effective
// offset, not its value. Using a register-direct ModR/M here is
// undefined on real hardware; this emulator leaves the register
// unmodified in that case.
func (c *CPU) lea() error {
	m := c.decodeModRM()
	if !m.IsMemory {
		return nil
	}
	c.writeReg16(m.Reg, m.EffOffset)
	return nil
}

// loadFarPointer implements LDS/LES r16, m16:16 (0xC5/0xC4): loads the
// offset into the named register and the segment into DS or ES.
func (c *CPU) loadFarPointer(seg Selector) error {
	m := c.decodeModRM()
	if !m.IsMemory {
		return ErrInvalidOperand
	}
	offset := c.memory.ReadWord(m.EffAddr)
	segment := c.memory.ReadWord(m.EffAddr + 2)
	c.writeReg16(m.Reg, offset)
	switch seg {
	case SegDS:
		c.DS = segment
	case SegES:
		c.ES = segment
	}
	return nil
}

// movRegImm8 implements MOV r8, imm8 (0xB0-0xB7), named by the low 3
// bits of the opcode.
func (c *CPU) movRegImm8(reg uint8) error {
	c.writeReg8(reg, c.fetchByte())
	return nil
}

// movRegImm16 implements MOV r16, imm16 (0xB8-0xBF).
func (c *CPU) movRegImm16(reg uint8) error {
	c.writeReg16(reg, c.fetchWord())
	return nil
}

// movRMImm8 implements MOV r/m8, imm8 (0xC6, Group 11 with reg field
// always 0 on the 8086).
func (c *CPU) movRMImm8() error {
	m := c.decodeModRM()
	imm := c.fetchByte()
	c.writeRM8(m, imm)
	return nil
}

// movRMImm16 implements MOV r/m16, imm16 (0xC7).
func (c *CPU) movRMImm16() error {
	m := c.decodeModRM()
	imm := c.fetchWord()
	c.writeRM16(m, imm)
	return nil
}

// movALMoffs8 implements MOV AL, moffs8 (0xA0): AL loaded from a
// direct DS-relative (or overridden) offset.
func (c *CPU) movALMoffs8() error {
	offset := c.fetchWord()
	addr := Phys(c.effectiveSegment(SegDS), offset)
	c.SetAL(c.memory.ReadByte(addr))
	return nil
}

// movAXMoffs16 implements MOV AX, moffs16 (0xA1).
func (c *CPU) movAXMoffs16() error {
	offset := c.fetchWord()
	addr := Phys(c.effectiveSegment(SegDS), offset)
	c.AX = c.memory.ReadWord(addr)
	return nil
}

// movMoffs8AL implements MOV moffs8, AL (0xA2).
func (c *CPU) movMoffs8AL() error {
	offset := c.fetchWord()
	addr := Phys(c.effectiveSegment(SegDS), offset)
	c.memory.WriteByte(addr, c.AL())
	return nil
}

// movMoffs16AX implements MOV moffs16, AX (0xA3).
func (c *CPU) movMoffs16AX() error {
	offset := c.fetchWord()
	addr := Phys(c.effectiveSegment(SegDS), offset)
	c.memory.WriteWord(addr, c.AX)
	return nil
}

// xchgAXReg implements XCHG AX, r16 (0x91-0x97).
func (c *CPU) xchgAXReg(reg uint8) error {
	v := c.readReg16(reg)
	c.writeReg16(reg, c.AX)
	c.AX = v
	return nil
}

// xchgEbGb implements XCHG r/m8, r8 (0x86).
func (c *CPU) xchgEbGb() error {
	m := c.decodeModRM()
	a, b := c.readRM8(m), c.readReg8(m.Reg)
	c.writeRM8(m, b)
	c.writeReg8(m.Reg, a)
	return nil
}

// xchgEvGv implements XCHG r/m16, r16 (0x87).
func (c *CPU) xchgEvGv() error {
	m := c.decodeModRM()
	a, b := c.readRM16(m), c.readReg16(m.Reg)
	c.writeRM16(m, b)
	c.writeReg16(m.Reg, a)
	return nil
}
