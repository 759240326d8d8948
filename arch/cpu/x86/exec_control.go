package x86

// condition identifies one of the sixteen 8086 branch conditions.
type condition uint8

const (
	condO condition = iota
	condNO
	condB
	condNB
	condZ
	condNZ
	condBE
	condNBE
	condS
	condNS
	condP
	condNP
	condL
	condNL
	condLE
	condNLE
)

// test reports whether the condition currently holds.
func (c *CPU) test(cc condition) bool {
	f := c.Flags
	switch cc {
	case condO:
		return f.GetOverflow()
	case condNO:
		return !f.GetOverflow()
	case condB:
		return f.GetCarry()
	case condNB:
		return !f.GetCarry()
	case condZ:
		return f.GetZero()
	case condNZ:
		return !f.GetZero()
	case condBE:
		return f.GetCarry() || f.GetZero()
	case condNBE:
		return !f.GetCarry() && !f.GetZero()
	case condS:
		return f.GetSign()
	case condNS:
		return !f.GetSign()
	case condP:
		return f.GetParity()
	case condNP:
		return !f.GetParity()
	case condL:
		return f.GetSign() != f.GetOverflow()
	case condNL:
		return f.GetSign() == f.GetOverflow()
	case condLE:
		return f.GetZero() || f.GetSign() != f.GetOverflow()
	case condNLE:
		return !f.GetZero() && f.GetSign() == f.GetOverflow()
	default:
		return false
	}
}

// jcc implements the conditional short jumps Jcc rel8 (0x70-0x7F), and
// serves opcodes 0x60-0x6F too: the 8086 did not yet define those
// bytes, and real silicon decodes them as aliases of the same 16
// conditions (see SPEC_FULL.md supplemented features).
func (c *CPU) jcc(cc condition) error {
	disp := int8(c.fetchByte())
	if c.test(cc) {
		c.IP = uint16(int32(c.IP) + int32(disp))
	}
	return nil
}

// loop implements LOOP rel8 (0xE2): decrements CX and branches while
// CX != 0.
func (c *CPU) loop() error {
	disp := int8(c.fetchByte())
	c.CX--
	if c.CX != 0 {
		c.IP = uint16(int32(c.IP) + int32(disp))
	}
	return nil
}

// loopz implements LOOPZ/LOOPE rel8 (0xE1): decrements CX and branches
// while CX != 0 and ZF is set.
func (c *CPU) loopz() error {
	disp := int8(c.fetchByte())
	c.CX--
	if c.CX != 0 && c.Flags.GetZero() {
		c.IP = uint16(int32(c.IP) + int32(disp))
	}
	return nil
}

// loopnz implements LOOPNZ/LOOPNE rel8 (0xE0): decrements CX and
// branches while CX != 0 and ZF is clear.
func (c *CPU) loopnz() error {
	disp := int8(c.fetchByte())
	c.CX--
	if c.CX != 0 && !c.Flags.GetZero() {
		c.IP = uint16(int32(c.IP) + int32(disp))
	}
	return nil
}

// jcxz implements JCXZ rel8 (0xE3): branches if CX == 0.
func (c *CPU) jcxz() error {
	disp := int8(c.fetchByte())
	if c.CX == 0 {
		c.IP = uint16(int32(c.IP) + int32(disp))
	}
	return nil
}

// jmpShort implements JMP rel8 (0xEB).
func (c *CPU) jmpShort() error {
	disp := int8(c.fetchByte())
	c.IP = uint16(int32(c.IP) + int32(disp))
	return nil
}

// jmpNear implements JMP rel16 (0xE9).
func (c *CPU) jmpNear() error {
	disp := int16(c.fetchWord())
	c.IP = uint16(int32(c.IP) + int32(disp))
	return nil
}

// jmpFarDirect implements JMP ptr16:16 (0xEA).
func (c *CPU) jmpFarDirect() error {
	offset := c.fetchWord()
	segment := c.fetchWord()
	c.IP = offset
	c.CS = segment
	return nil
}

// jmpIndirect implements JMP r/m16 (0xFF /4): an indirect near jump
// through a register or memory operand.
func (c *CPU) jmpIndirect(m ModRM) error {
	c.IP = c.readRM16(m)
	return nil
}

// jmpFarIndirect implements JMP m16:16 (0xFF /5).
func (c *CPU) jmpFarIndirect(m ModRM) error {
	if !m.IsMemory {
		return ErrInvalidOperand
	}
	c.IP = c.memory.ReadWord(m.EffAddr)
	c.CS = c.memory.ReadWord(m.EffAddr + 2)
	return nil
}

// callNear implements CALL rel16 (0xE8).
func (c *CPU) callNear() error {
	disp := int16(c.fetchWord())
	c.push16(c.IP)
	c.IP = uint16(int32(c.IP) + int32(disp))
	return nil
}

// callFarDirect implements CALL ptr16:16 (0x9A).
func (c *CPU) callFarDirect() error {
	offset := c.fetchWord()
	segment := c.fetchWord()
	c.push16(c.CS)
	c.push16(c.IP)
	c.CS = segment
	c.IP = offset
	return nil
}

// callIndirect implements CALL r/m16 (0xFF /2): an indirect near call.
func (c *CPU) callIndirect(m ModRM) error {
	target := c.readRM16(m)
	c.push16(c.IP)
	c.IP = target
	return nil
}

// callFarIndirect implements CALL m16:16 (0xFF /3).
func (c *CPU) callFarIndirect(m ModRM) error {
	if !m.IsMemory {
		return ErrInvalidOperand
	}
	offset := c.memory.ReadWord(m.EffAddr)
	segment := c.memory.ReadWord(m.EffAddr + 2)
	c.push16(c.CS)
	c.push16(c.IP)
	c.CS = segment
	c.IP = offset
	return nil
}

// retNear implements RET (0xC3).
func (c *CPU) retNear() error {
	c.IP = c.pop16()
	return nil
}

// retNearImm implements RET imm16 (0xC2): pops IP, then additionally
// discards imm16 bytes of arguments from the stack.
func (c *CPU) retNearImm() error {
	imm := c.fetchWord()
	c.IP = c.pop16()
	c.SP += imm
	return nil
}

// retFar implements RETF (0xCB).
func (c *CPU) retFar() error {
	c.IP = c.pop16()
	c.CS = c.pop16()
	return nil
}

// retFarImm implements RETF imm16 (0xCA).
func (c *CPU) retFarImm() error {
	imm := c.fetchWord()
	c.IP = c.pop16()
	c.CS = c.pop16()
	c.SP += imm
	return nil
}

// interrupt pushes FLAGS, CS and IP (in that order) and loads CS:IP
// from the interrupt vector table entry for the given vector number,
// clearing IF and TF as real hardware does on vector entry.
func (c *CPU) interrupt(vector uint8) {
	c.push16(uint16(c.Flags))
	c.push16(c.CS)
	c.push16(c.IP)
	c.Flags.SetInterrupt(false)
	c.Flags.SetTrap(false)

	entry := uint32(vector) * 4
	c.IP = c.memory.ReadWord(entry)
	c.CS = c.memory.ReadWord(entry + 2)
}

// int3 implements INT 3 (0xCC), the one-byte breakpoint interrupt.
func (c *CPU) int3() error {
	c.interrupt(3)
	return nil
}

// intImm8 implements INT imm8 (0xCD).
func (c *CPU) intImm8() error {
	vector := c.fetchByte()
	c.interrupt(vector)
	return nil
}

// into implements INTO (0xCE): raises interrupt 4 if OF is set.
func (c *CPU) into() error {
	if c.Flags.GetOverflow() {
		c.interrupt(4)
	}
	return nil
}

// iret implements IRET (0xCF): the mirror image of interrupt entry.
func (c *CPU) iret() error {
	c.IP = c.pop16()
	c.CS = c.pop16()
	c.Flags = Flags(c.pop16())
	return nil
}
