package x86

// group2Count identifies how many bit-positions a Group 2 shift/rotate
// opcode form shifts by. The 8086 only defines a count of 1 (D0/D1) or
// CL (D2/D3); an immediate count (what would be C0/C1) is an 80186
// addition and out of scope here.
type group2Count uint8

const (
	countOne group2Count = iota
	countCL
)

// group2Op8 dispatches a Group 2 shift/rotate on an 8-bit r/m operand
// (opcodes 0xD0, 0xD2).
func (c *CPU) group2Op8(kind group2Count) error {
	m := c.decodeModRM()
	count := c.group2CountFor(kind)
	c.writeRM8(m, c.shift8(shiftOp(m.Reg), c.readRM8(m), count))
	return nil
}

// group2Op16 is group2Op8 for a 16-bit r/m operand (0xD1, 0xD3).
func (c *CPU) group2Op16(kind group2Count) error {
	m := c.decodeModRM()
	count := c.group2CountFor(kind)
	c.writeRM16(m, c.shift16(shiftOp(m.Reg), c.readRM16(m), count))
	return nil
}

func (c *CPU) group2CountFor(kind group2Count) uint8 {
	if kind == countCL {
		return c.CL()
	}
	return 1
}

// group3Op8 dispatches Group 3 (TEST/NOT/NEG/MUL/IMUL/DIV/IDIV) on an
// 8-bit r/m operand (0xF6).
func (c *CPU) group3Op8() error {
	m := c.decodeModRM()
	switch m.Reg {
	case 0, 1: // TEST r/m8, imm8
		imm := c.fetchByte()
		c.logic8(c.readRM8(m) & imm)
	case 2: // NOT
		c.writeRM8(m, ^c.readRM8(m))
	case 3: // NEG
		c.writeRM8(m, c.sub8(0, c.readRM8(m), false))
	case 4: // MUL
		c.mul8(c.readRM8(m))
	case 5: // IMUL
		c.imul8(c.readRM8(m))
	case 6: // DIV
		return c.div8(c.readRM8(m))
	case 7: // IDIV
		return c.idiv8(c.readRM8(m))
	}
	return nil
}

// group3Op16 is group3Op8 for a 16-bit r/m operand (0xF7).
func (c *CPU) group3Op16() error {
	m := c.decodeModRM()
	switch m.Reg {
	case 0, 1:
		imm := c.fetchWord()
		c.logic16(c.readRM16(m) & imm)
	case 2:
		c.writeRM16(m, ^c.readRM16(m))
	case 3:
		c.writeRM16(m, c.sub16(0, c.readRM16(m), false))
	case 4:
		c.mul16(c.readRM16(m))
	case 5:
		c.imul16(c.readRM16(m))
	case 6:
		return c.div16(c.readRM16(m))
	case 7:
		return c.idiv16(c.readRM16(m))
	}
	return nil
}

// group4Op8 dispatches Group 4 (INC/DEC r/m8, 0xFE). Reg fields above 1
// are undefined on the 8086.
func (c *CPU) group4Op8() error {
	m := c.decodeModRM()
	switch m.Reg {
	case 0:
		c.writeRM8(m, c.inc8(c.readRM8(m)))
	case 1:
		c.writeRM8(m, c.dec8(c.readRM8(m)))
	default:
		return c.halted(ErrUndefinedOpcode)
	}
	return nil
}

// group5Op16 dispatches Group 5 (INC/DEC/CALL/CALLF/JMP/JMPF/PUSH
// r/m16, 0xFF).
func (c *CPU) group5Op16() error {
	m := c.decodeModRM()
	switch m.Reg {
	case 0:
		c.writeRM16(m, c.inc16(c.readRM16(m)))
	case 1:
		c.writeRM16(m, c.dec16(c.readRM16(m)))
	case 2:
		return c.callIndirect(m)
	case 3:
		return c.callFarIndirect(m)
	case 4:
		return c.jmpIndirect(m)
	case 5:
		return c.jmpFarIndirect(m)
	case 6:
		c.push16(c.readRM16(m))
	default:
		return c.halted(ErrUndefinedOpcode)
	}
	return nil
}
