package x86

import (
	"testing"

	"github.com/kformaniak/emu8086/assert"
	"github.com/kformaniak/emu8086/log"
)

func TestConsumePrefixes_LastWins(t *testing.T) {
	c := newTestCPU(t)
	c.Memory().LoadBytes(c.physIP(), []byte{0x2E, 0x3E, 0xF2, 0xF3, 0x90})

	c.consumePrefixes()

	assert.Equal(t, SegDS, c.segOverride)
	assert.Equal(t, RepE, c.repPrefix)
	assert.Equal(t, uint8(0x90), c.peekByte())
}

func TestClearPrefixes(t *testing.T) {
	c := newTestCPU(t)
	c.segOverride = SegES
	c.repPrefix = RepNE

	c.clearPrefixes()

	assert.Equal(t, SegNone, c.segOverride)
	assert.Equal(t, RepNone, c.repPrefix)
}

func TestEffectiveSegment_NoOverride(t *testing.T) {
	c := newTestCPU(t)
	c.DS = 0x1111
	c.SS = 0x2222

	assert.Equal(t, uint16(0x1111), c.effectiveSegment(SegDS))
	assert.Equal(t, uint16(0x2222), c.effectiveSegment(SegSS))
}

func TestEffectiveSegment_Override(t *testing.T) {
	c := newTestCPU(t)
	c.DS = 0x1111
	c.ES = 0x3333
	c.segOverride = SegES

	assert.Equal(t, uint16(0x3333), c.effectiveSegment(SegDS))
}

func TestDecodeModRM_RegisterDirect(t *testing.T) {
	c := newTestCPU(t)
	c.Memory().LoadBytes(c.physIP(), []byte{0xC3}) // mod=11 reg=000 rm=011

	m := c.decodeModRM()

	assert.Equal(t, uint8(3), m.Mod)
	assert.Equal(t, uint8(0), m.Reg)
	assert.Equal(t, uint8(3), m.RM)
	assert.False(t, m.IsMemory)
}

func TestDecodeModRM_Mod0_BXSI(t *testing.T) {
	c := newTestCPU(t)
	c.DS = 0x1000
	c.BX = 0x0010
	c.SI = 0x0002
	c.Memory().LoadBytes(c.physIP(), []byte{0x00}) // mod=00 reg=000 rm=000

	m := c.decodeModRM()

	assert.True(t, m.IsMemory)
	assert.Equal(t, uint16(0x0012), m.EffOffset)
	assert.Equal(t, Phys(0x1000, 0x0012), m.EffAddr)
}

func TestDecodeModRM_Mod0_RM6IsDirectAddress(t *testing.T) {
	c := newTestCPU(t)
	c.DS = 0x2000
	c.Memory().LoadBytes(c.physIP(), []byte{0x06, 0x34, 0x12}) // mod=00 rm=110, disp16=0x1234

	m := c.decodeModRM()

	assert.True(t, m.IsMemory)
	assert.Equal(t, uint16(0x1234), m.EffOffset)
	assert.Equal(t, Phys(0x2000, 0x1234), m.EffAddr)
	assert.Equal(t, uint16(0xFFF3), c.IP)
}

func TestDecodeModRM_Mod1_SignExtendedDisp8(t *testing.T) {
	c := newTestCPU(t)
	c.DS = 0x1000
	c.BX = 0x0100
	c.Memory().LoadBytes(c.physIP(), []byte{0x47, 0xFF}) // mod=01 rm=111 (BX), disp8=-1

	m := c.decodeModRM()

	assert.Equal(t, uint16(0x00FF), m.EffOffset)
}

func TestDecodeModRM_Mod2_BPUsesSSByDefault(t *testing.T) {
	c := newTestCPU(t)
	c.SS = 0x3000
	c.BP = 0x0010
	c.Memory().LoadBytes(c.physIP(), []byte{0x86, 0x00, 0x01}) // mod=10 rm=110 (BP), disp16=0x0100

	m := c.decodeModRM()

	assert.Equal(t, uint16(0x0110), m.EffOffset)
	assert.Equal(t, Phys(0x3000, 0x0110), m.EffAddr)
}

func TestReadWriteReg8(t *testing.T) {
	c := newTestCPU(t)
	c.writeReg8(0, 0x42) // AL
	c.writeReg8(4, 0x99) // AH

	assert.Equal(t, uint8(0x42), c.readReg8(0))
	assert.Equal(t, uint8(0x99), c.readReg8(4))
	assert.Equal(t, uint16(0x9942), c.AX)
}

func TestReadWriteReg16(t *testing.T) {
	c := newTestCPU(t)
	c.writeReg16(3, 0xBEEF) // BX

	assert.Equal(t, uint16(0xBEEF), c.readReg16(3))
	assert.Equal(t, uint16(0xBEEF), c.BX)
}

func TestReadWriteSeg(t *testing.T) {
	c := newTestCPU(t)
	c.writeSeg(1, 0xABCD) // CS, undocumented but valid

	assert.Equal(t, uint16(0xABCD), c.readSeg(1))
	assert.Equal(t, uint16(0xABCD), c.CS)
}

func TestReadWriteRM8_Memory(t *testing.T) {
	c := newTestCPU(t)
	c.DS = 0x1000
	c.BX = 0x0010
	m := ModRM{IsMemory: true, EffAddr: Phys(0x1000, 0x0010)}

	c.writeRM8(m, 0x55)
	assert.Equal(t, uint8(0x55), c.readRM8(m))
}

func TestReadWriteRM16_Register(t *testing.T) {
	c := newTestCPU(t)
	m := ModRM{RM: 2} // DX

	c.writeRM16(m, 0x1234)
	assert.Equal(t, uint16(0x1234), c.readRM16(m))
	assert.Equal(t, uint16(0x1234), c.DX)
}

func TestDecoder_NopLogger(t *testing.T) {
	c, err := New(NewMemory(log.NewNop()))
	assert.NoError(t, err)
	assert.NotNil(t, c)
}
