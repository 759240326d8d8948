package x86

// inAL implements IN AL, imm8/DX (0xE4/0xEC): this emulator models no
// I/O devices, so every port reads back all-ones.
func (c *CPU) inAL(fromDX bool) error {
	if fromDX {
		// port = c.DX, unused: no device backing exists.
	} else {
		c.fetchByte() // port immediate, unused
	}
	c.SetAL(0xFF)
	return nil
}

// inAX implements IN AX, imm8/DX (0xE5/0xED).
func (c *CPU) inAX(fromDX bool) error {
	if !fromDX {
		c.fetchByte()
	}
	c.AX = 0xFFFF
	return nil
}

// outAL implements OUT imm8/DX, AL (0xE6/0xEE): writes are accepted
// and discarded.
func (c *CPU) outAL(toDX bool) error {
	if !toDX {
		c.fetchByte()
	}
	return nil
}

// outAX implements OUT imm8/DX, AX (0xE7/0xEF).
func (c *CPU) outAX(toDX bool) error {
	if !toDX {
		c.fetchByte()
	}
	return nil
}
