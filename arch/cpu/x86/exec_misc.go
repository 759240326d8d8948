package x86

import "fmt"

// hlt implements HLT (0xF4): stops the CPU. Unlike a fault, this is not
// recorded as a halt error; Running() simply becomes false.
func (c *CPU) hlt() error {
	c.running = false
	return nil
}

// clc/stc/cmc/cli/sti/cld/std implement the single-bit flag-control
// instructions (0xF8-0xFD).
func (c *CPU) clc() error { c.Flags.SetCarry(false); return nil }
func (c *CPU) stc() error { c.Flags.SetCarry(true); return nil }
func (c *CPU) cmc() error { c.Flags.SetCarry(!c.Flags.GetCarry()); return nil }
func (c *CPU) cli() error { c.Flags.SetInterrupt(false); return nil }
func (c *CPU) sti() error { c.Flags.SetInterrupt(true); return nil }
func (c *CPU) cld() error { c.Flags.SetDirection(false); return nil }
func (c *CPU) std() error { c.Flags.SetDirection(true); return nil }

// nop implements NOP (0x90), the canonical XCHG AX, AX no-op.
func (c *CPU) nop() error { return nil }

// cbw implements CBW (0x98): sign-extends AL into AH.
func (c *CPU) cbw() error {
	c.AX = uint16(int16(int8(c.AL())))
	return nil
}

// cwd implements CWD (0x99): sign-extends AX into DX:AX.
func (c *CPU) cwd() error {
	if c.AX&0x8000 != 0 {
		c.DX = 0xFFFF
	} else {
		c.DX = 0x0000
	}
	return nil
}

// xlat implements XLAT (0xD7): AL = [DS:BX+AL] (segment overridable).
func (c *CPU) xlat() error {
	addr := Phys(c.effectiveSegment(SegDS), c.BX+uint16(c.AL()))
	c.SetAL(c.memory.ReadByte(addr))
	return nil
}

// aamOpcode implements AAM (0xD4): the trailing byte is conventionally
// 0x0A but is read from the instruction stream as the actual divisor.
func (c *CPU) aamOpcode() error {
	base := c.fetchByte()
	return c.aam(base)
}

// aadOpcode implements AAD (0xD5).
func (c *CPU) aadOpcode() error {
	base := c.fetchByte()
	c.aad(base)
	return nil
}

// escapeFPU decodes and discards an FPU instruction (0xD8-0xDF): the
// ModR/M byte (and any displacement it implies) is consumed so IP
// advances past the whole encoding, but no floating-point state exists
// to update.
func (c *CPU) escapeFPU() error {
	c.decodeModRM()
	return nil
}

// undefined implements every opcode the 8086 leaves undefined: it halts
// the CPU rather than guessing at an effect, surfacing the offending
// opcode byte and the physical address it was fetched from.
func (c *CPU) undefined() error {
	addr := (c.physIP() - 1) & AddressMask
	opcode := c.memory.ReadByte(addr)
	return c.halted(fmt.Errorf("opcode 0x%02X at 0x%05X: %w", opcode, addr, ErrUndefinedOpcode))
}
