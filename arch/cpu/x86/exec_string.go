package x86

// stringStep returns +1 or -1 according to the direction flag, for
// advancing SI/DI after each string-instruction iteration.
func (c *CPU) stringStep() uint16 {
	if c.Flags.GetDirection() {
		return 0xFFFF // -1, wrapping
	}
	return 1
}

// repeating reports whether the current instruction carries an active
// repeat prefix.
func (c *CPU) repeating() bool {
	return c.repPrefix != RepNone
}

// runString executes one or more iterations of a string instruction
// body, honoring the latched REP/REPE/REPNE prefix. MOVS/STOS/LODS
// simply repeat CX times regardless of flags; only CMPS/SCAS
// distinguish REPE (0xF3) from REPNE (0xF2) and stop early based on ZF,
// so callers for those set usesZF to apply that check.
func (c *CPU) runString(usesZF bool, body func()) {
	if !c.repeating() {
		body()
		return
	}

	for c.CX != 0 {
		body()
		c.CX--
		if c.CX == 0 {
			break
		}
		if !usesZF {
			continue
		}
		if c.repPrefix == RepE && !c.Flags.GetZero() {
			break
		}
		if c.repPrefix == RepNE && c.Flags.GetZero() {
			break
		}
	}
}

// movsb implements MOVSB (0xA4): copies [DS:SI] (overridable) to
// [ES:DI] (never overridable) and advances SI/DI by 1.
func (c *CPU) movsb() error {
	c.runString(false, func() {
		srcAddr := Phys(c.effectiveSegment(SegDS), c.SI)
		dstAddr := Phys(c.ES, c.DI)
		c.memory.WriteByte(dstAddr, c.memory.ReadByte(srcAddr))
		step := c.stringStep()
		c.SI += step
		c.DI += step
	})
	return nil
}

// movsw implements MOVSW (0xA5).
func (c *CPU) movsw() error {
	c.runString(false, func() {
		srcAddr := Phys(c.effectiveSegment(SegDS), c.SI)
		dstAddr := Phys(c.ES, c.DI)
		c.memory.WriteWord(dstAddr, c.memory.ReadWord(srcAddr))
		step := c.stringStep() * 2
		c.SI += step
		c.DI += step
	})
	return nil
}

// cmpsb implements CMPSB (0xA6): compares [DS:SI]-[ES:DI], sets flags
// as SUB would, and advances both pointers.
func (c *CPU) cmpsb() error {
	c.runString(true, func() {
		srcAddr := Phys(c.effectiveSegment(SegDS), c.SI)
		dstAddr := Phys(c.ES, c.DI)
		c.sub8(c.memory.ReadByte(srcAddr), c.memory.ReadByte(dstAddr), false)
		step := c.stringStep()
		c.SI += step
		c.DI += step
	})
	return nil
}

// cmpsw implements CMPSW (0xA7).
func (c *CPU) cmpsw() error {
	c.runString(true, func() {
		srcAddr := Phys(c.effectiveSegment(SegDS), c.SI)
		dstAddr := Phys(c.ES, c.DI)
		c.sub16(c.memory.ReadWord(srcAddr), c.memory.ReadWord(dstAddr), false)
		step := c.stringStep() * 2
		c.SI += step
		c.DI += step
	})
	return nil
}

// stosb implements STOSB (0xAA): stores AL to [ES:DI] and advances DI.
func (c *CPU) stosb() error {
	c.runString(false, func() {
		c.memory.WriteByte(Phys(c.ES, c.DI), c.AL())
		c.DI += c.stringStep()
	})
	return nil
}

// stosw implements STOSW (0xAB).
func (c *CPU) stosw() error {
	c.runString(false, func() {
		c.memory.WriteWord(Phys(c.ES, c.DI), c.AX)
		c.DI += c.stringStep() * 2
	})
	return nil
}

// lodsb implements LODSB (0xAC): loads AL from [DS:SI] (overridable)
// and advances SI. REP LODS is architecturally legal but rare; it is
// still honored here for consistency.
func (c *CPU) lodsb() error {
	c.runString(false, func() {
		c.SetAL(c.memory.ReadByte(Phys(c.effectiveSegment(SegDS), c.SI)))
		c.SI += c.stringStep()
	})
	return nil
}

// lodsw implements LODSW (0xAD).
func (c *CPU) lodsw() error {
	c.runString(false, func() {
		c.AX = c.memory.ReadWord(Phys(c.effectiveSegment(SegDS), c.SI))
		c.SI += c.stringStep() * 2
	})
	return nil
}

// scasb implements SCASB (0xAE): compares AL-[ES:DI] and advances DI.
func (c *CPU) scasb() error {
	c.runString(true, func() {
		c.sub8(c.AL(), c.memory.ReadByte(Phys(c.ES, c.DI)), false)
		c.DI += c.stringStep()
	})
	return nil
}

// scasw implements SCASW (0xAF).
func (c *CPU) scasw() error {
	c.runString(true, func() {
		c.sub16(c.AX, c.memory.ReadWord(Phys(c.ES, c.DI)), false)
		c.DI += c.stringStep() * 2
	})
	return nil
}
