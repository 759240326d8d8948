package x86

import "github.com/kformaniak/emu8086/set"

// Selector names one of the four segment registers, or "none" for the
// default-segment case.
type Selector uint8

// Segment selectors.
const (
	SegNone Selector = iota
	SegES
	SegCS
	SegSS
	SegDS
)

// RepMode is the latched repeat-prefix state for string instructions.
type RepMode uint8

// Repeat-prefix modes.
const (
	RepNone RepMode = iota
	RepNE           // 0xF2, repeat while not equal (for CMPS/SCAS)
	RepE            // 0xF3, repeat while equal (for CMPS/SCAS; plain repeat otherwise)
)

// prefixBytes recognizes the 8086 prefix bytes: four segment overrides,
// two repeat prefixes, and LOCK (which this single-core emulator treats
// as a no-op). Anything else ends the prefix run.
var prefixBytes = set.NewFromSlice([]uint8{0x26, 0x2E, 0x36, 0x3E, 0xF0, 0xF2, 0xF3})

// consumePrefixes accepts a run of prefix bytes at CS:IP, updating the
// segment-override and repeat-prefix latches with last-wins semantics,
// and advances IP past them.
func (c *CPU) consumePrefixes() {
	for prefixBytes.Contains(c.peekByte()) {
		switch c.fetchByte() {
		case 0x26:
			c.segOverride = SegES
		case 0x2E:
			c.segOverride = SegCS
		case 0x36:
			c.segOverride = SegSS
		case 0x3E:
			c.segOverride = SegDS
		case 0xF2:
			c.repPrefix = RepNE
		case 0xF3:
			c.repPrefix = RepE
		case 0xF0:
			// LOCK: no observable effect without a second bus master.
		}
	}
}

// clearPrefixes resets the ephemeral prefix latches. Called after every
// instruction completes, whether it succeeded or raised an error.
func (c *CPU) clearPrefixes() {
	c.segOverride = SegNone
	c.repPrefix = RepNone
}

// segmentValue returns the value of the named segment register.
func (c *CPU) segmentValue(sel Selector) uint16 {
	switch sel {
	case SegES:
		return c.ES
	case SegCS:
		return c.CS
	case SegSS:
		return c.SS
	case SegDS:
		return c.DS
	default:
		return c.DS
	}
}

// effectiveSegment returns the segment to use for a memory operand with
// the given structural default, honoring an active override prefix.
func (c *CPU) effectiveSegment(def Selector) uint16 {
	if c.segOverride != SegNone {
		return c.segmentValue(c.segOverride)
	}
	return c.segmentValue(def)
}

// ModRM is a decoded ModR/M byte. When Mod == 3, RM names a register of
// the operand's size directly; otherwise EffAddr is the physical address
// of the memory operand computed from the canonical rm base expression
// and default segment.
type ModRM struct {
	Mod, Reg, RM uint8
	IsMemory     bool
	EffOffset    uint16
	EffAddr      uint32
}

// decodeModRM fetches a ModR/M byte (and any displacement it implies)
// at CS:IP and resolves it to a register or memory operand.
func (c *CPU) decodeModRM() ModRM {
	b := c.fetchByte()
	m := ModRM{Mod: b >> 6, Reg: (b >> 3) & 7, RM: b & 7}
	if m.Mod == 3 {
		return m
	}
	m.IsMemory = true

	defSeg := SegDS
	var offset uint16

	switch m.RM {
	case 0:
		offset = c.BX + c.SI
	case 1:
		offset = c.BX + c.DI
	case 2:
		offset = c.BP + c.SI
		defSeg = SegSS
	case 3:
		offset = c.BP + c.DI
		defSeg = SegSS
	case 4:
		offset = c.SI
	case 5:
		offset = c.DI
	case 6:
		if m.Mod == 0 {
			offset = c.fetchWord() // direct address, no base register
		} else {
			offset = c.BP
			defSeg = SegSS
		}
	case 7:
		offset = c.BX
	}

	switch m.Mod {
	case 1:
		disp := int16(int8(c.fetchByte()))
		offset += uint16(disp)
	case 2:
		offset += c.fetchWord()
	}

	m.EffOffset = offset
	m.EffAddr = Phys(c.effectiveSegment(defSeg), offset)
	return m
}

// readReg8 reads an 8-bit register named by a ModR/M reg/rm field (0-7).
func (c *CPU) readReg8(n uint8) uint8 {
	switch n {
	case 0:
		return c.AL()
	case 1:
		return c.CL()
	case 2:
		return c.DL()
	case 3:
		return c.BL()
	case 4:
		return c.AH()
	case 5:
		return c.CH()
	case 6:
		return c.DH()
	default:
		return c.BH()
	}
}

// writeReg8 writes an 8-bit register named by a ModR/M reg/rm field.
func (c *CPU) writeReg8(n uint8, v uint8) {
	switch n {
	case 0:
		c.SetAL(v)
	case 1:
		c.SetCL(v)
	case 2:
		c.SetDL(v)
	case 3:
		c.SetBL(v)
	case 4:
		c.SetAH(v)
	case 5:
		c.SetCH(v)
	case 6:
		c.SetDH(v)
	default:
		c.SetBH(v)
	}
}

// readReg16 reads a 16-bit register named by a ModR/M reg/rm field.
func (c *CPU) readReg16(n uint8) uint16 {
	switch n {
	case 0:
		return c.AX
	case 1:
		return c.CX
	case 2:
		return c.DX
	case 3:
		return c.BX
	case 4:
		return c.SP
	case 5:
		return c.BP
	case 6:
		return c.SI
	default:
		return c.DI
	}
}

// writeReg16 writes a 16-bit register named by a ModR/M reg/rm field.
func (c *CPU) writeReg16(n uint8, v uint16) {
	switch n {
	case 0:
		c.AX = v
	case 1:
		c.CX = v
	case 2:
		c.DX = v
	case 3:
		c.BX = v
	case 4:
		c.SP = v
	case 5:
		c.BP = v
	case 6:
		c.SI = v
	default:
		c.DI = v
	}
}

// readSeg reads a segment register named by a ModR/M reg field (0-3).
func (c *CPU) readSeg(n uint8) uint16 {
	switch n & 3 {
	case 0:
		return c.ES
	case 1:
		return c.CS
	case 2:
		return c.SS
	default:
		return c.DS
	}
}

// writeSeg writes a segment register named by a ModR/M reg field (0-3).
// Writing CS this way is undocumented but architecturally valid on the
// 8086 (see POP CS, opcode 0x0F).
func (c *CPU) writeSeg(n uint8, v uint16) {
	switch n & 3 {
	case 0:
		c.ES = v
	case 1:
		c.CS = v
	case 2:
		c.SS = v
	default:
		c.DS = v
	}
}

// readRM8 reads the 8-bit operand named by a decoded ModR/M.
func (c *CPU) readRM8(m ModRM) uint8 {
	if !m.IsMemory {
		return c.readReg8(m.RM)
	}
	return c.memory.ReadByte(m.EffAddr)
}

// writeRM8 writes the 8-bit operand named by a decoded ModR/M.
func (c *CPU) writeRM8(m ModRM, v uint8) {
	if !m.IsMemory {
		c.writeReg8(m.RM, v)
		return
	}
	c.memory.WriteByte(m.EffAddr, v)
}

// readRM16 reads the 16-bit operand named by a decoded ModR/M.
func (c *CPU) readRM16(m ModRM) uint16 {
	if !m.IsMemory {
		return c.readReg16(m.RM)
	}
	return c.memory.ReadWord(m.EffAddr)
}

// writeRM16 writes the 16-bit operand named by a decoded ModR/M.
func (c *CPU) writeRM16(m ModRM, v uint16) {
	if !m.IsMemory {
		c.writeReg16(m.RM, v)
		return
	}
	c.memory.WriteWord(m.EffAddr, v)
}
