package x86

import (
	"fmt"

	"github.com/kformaniak/emu8086/log"
)

// MemorySize is the fixed 1 MiB flat address space of the 8086.
const MemorySize = 1 << 20

// AddressMask wraps any linear address into the 20-bit physical space.
const AddressMask = MemorySize - 1

// Memory is the 8086's flat, byte-addressable physical memory. Every
// address a caller supplies is masked to 20 bits before use, so an
// out-of-range access can never occur: wraparound, not a bounds error,
// is the architectural behavior.
type Memory struct {
	data   [MemorySize]byte
	logger *log.Logger
}

// NewMemory creates a zeroed 1 MiB memory image.
func NewMemory(logger *log.Logger) *Memory {
	return &Memory{logger: logger}
}

// Phys computes the 20-bit physical address of a segment:offset pair:
// (segment*16 + offset) mod 2^20.
func Phys(segment, offset uint16) uint32 {
	return (uint32(segment)<<4 + uint32(offset)) & AddressMask
}

// ReadByte reads a single byte at the given linear address.
func (m *Memory) ReadByte(addr uint32) uint8 {
	return m.data[addr&AddressMask]
}

// WriteByte writes a single byte at the given linear address.
func (m *Memory) WriteByte(addr uint32, v uint8) {
	m.data[addr&AddressMask] = v
}

// ReadWord reads a little-endian 16-bit word at the given linear address.
func (m *Memory) ReadWord(addr uint32) uint16 {
	lo := m.ReadByte(addr)
	hi := m.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian 16-bit word at the given linear address.
func (m *Memory) WriteWord(addr uint32, v uint16) {
	m.WriteByte(addr, uint8(v))
	m.WriteByte(addr+1, uint8(v>>8))
}

// LoadBytes copies data into memory starting at addr, wrapping around
// the 20-bit address space exactly as a sequence of WriteByte calls
// would. This is how an external collaborator (a BIOS image loader, a
// reference-test harness) seeds the image before stepping the CPU.
func (m *Memory) LoadBytes(addr uint32, data []byte) {
	for i, b := range data {
		m.WriteByte(addr+uint32(i), b)
	}
	if m.logger != nil {
		m.logger.Debug("loaded bytes into memory",
			log.String("address", fmt.Sprintf("0x%05X", addr&AddressMask)),
			log.Int("size", len(data)))
	}
}

// Bytes returns a copy of the full 1 MiB image, for a reference-test
// harness that compares final memory state byte by byte.
func (m *Memory) Bytes() []byte {
	out := make([]byte, MemorySize)
	copy(out, m.data[:])
	return out
}

// Dump renders a classic hex+ASCII debug dump of [start, end).
func (m *Memory) Dump(start, end uint32) string {
	start &= AddressMask
	if end > MemorySize {
		end = MemorySize
	}

	const perLine = 16
	out := make([]byte, 0, 80*((end-start)/perLine+1))
	for addr := start; addr < end; addr += perLine {
		out = append(out, fmt.Sprintf("%06X: ", addr)...)

		lineEnd := addr + perLine
		if lineEnd > end {
			lineEnd = end
		}

		for i := addr; i < addr+perLine; i++ {
			if i < lineEnd {
				out = append(out, fmt.Sprintf("%02X ", m.data[i])...)
			} else {
				out = append(out, "   "...)
			}
		}

		out = append(out, " |"...)
		for i := addr; i < lineEnd; i++ {
			b := m.data[i]
			if b >= 32 && b <= 126 {
				out = append(out, b)
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, "|\n"...)
	}
	return string(out)
}
