package x86

// push16 decrements SP by two and writes v at the new SS:SP.
func (c *CPU) push16(v uint16) {
	c.SP -= 2
	c.memory.WriteWord(Phys(c.SS, c.SP), v)
}

// pop16 reads the word at SS:SP and increments SP by two.
func (c *CPU) pop16() uint16 {
	v := c.memory.ReadWord(Phys(c.SS, c.SP))
	c.SP += 2
	return v
}

// pushReg16 implements PUSH r16 (0x50-0x57).
func (c *CPU) pushReg16(reg uint8) error {
	c.push16(c.readReg16(reg))
	return nil
}

// popReg16 implements POP r16 (0x58-0x5F).
func (c *CPU) popReg16(reg uint8) error {
	c.writeReg16(reg, c.pop16())
	return nil
}

// pushSeg implements PUSH Sreg (0x06/0x0E/0x16/0x1E).
func (c *CPU) pushSeg(sel Selector) error {
	c.push16(c.segmentValue(sel))
	return nil
}

// popSeg implements POP Sreg (0x07/0x17/0x1F). POP CS (the undocumented
// 0x0F encoding) is handled separately since it also loads IP.
func (c *CPU) popSeg(sel Selector) error {
	v := c.pop16()
	switch sel {
	case SegES:
		c.ES = v
	case SegSS:
		c.SS = v
	case SegDS:
		c.DS = v
	case SegCS:
		c.CS = v
	}
	return nil
}

// popCS implements the undocumented opcode 0x0F, an alias for POP CS
// identical in effect to popSeg(SegCS): real 8086 silicon decodes 0x0F
// as the two-operand form of POP with reg field forced to CS, because
// the two-byte-opcode escape was not yet defined.
func (c *CPU) popCS() error {
	c.CS = c.pop16()
	return nil
}

// popRM16 implements POP r/m16 (0x8F, Group 1A, reg field always 0).
func (c *CPU) popRM16() error {
	m := c.decodeModRM()
	c.writeRM16(m, c.pop16())
	return nil
}

// pushf implements PUSHF (0x9C).
func (c *CPU) pushf() error {
	c.push16(uint16(c.Flags))
	return nil
}

// popf implements POPF (0x9D): the full 16-bit FLAGS word is replaced
// with whatever was on the stack, reserved bits included (see
// DESIGN.md Decided Open Questions: only SAHF/LAHF force the fixed bits).
func (c *CPU) popf() error {
	c.Flags = Flags(c.pop16())
	return nil
}

// sahf implements SAHF (0x9E): loads SF/ZF/AF/PF/CF from AH into the
// low byte of FLAGS, forcing the reserved bits to their architectural
// values (bit 1 set, bits 3 and 5 clear).
func (c *CPU) sahf() error {
	ah := Flags(c.AH())&^(MaskReserved1|0x28) | MaskReserved1
	c.Flags = c.Flags&0xFF00 | ah
	return nil
}

// lahf implements LAHF (0x9F): stores SF/ZF/AF/PF/CF into AH, forcing
// the reserved bits to their architectural values (bit 1 set, bits 3
// and 5 clear) exactly as SAHF does on the way in.
func (c *CPU) lahf() error {
	ah := uint8(c.Flags)&^0x2A | 0x02
	c.SetAH(ah)
	return nil
}
