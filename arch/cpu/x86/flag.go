package x86

// Flags represents the 8086 FLAGS register. The 16-bit value is the
// source of truth; accessor methods test or set individual bits.
type Flags uint16

// Flag bit positions, matching the 8086 FLAGS layout.
const (
	FlagCarry     = 0  // CF - Carry flag
	FlagReserved1 = 1  // reserved, always reads 1
	FlagParity    = 2  // PF - Parity flag
	FlagReserved3 = 3  // reserved, always reads 0
	FlagAuxCarry  = 4  // AF - Auxiliary carry flag
	FlagReserved5 = 5  // reserved, always reads 0
	FlagZero      = 6  // ZF - Zero flag
	FlagSign      = 7  // SF - Sign flag
	FlagTrap      = 8  // TF - Trap flag (single step)
	FlagInterrupt = 9  // IF - Interrupt enable flag
	FlagDirection = 10 // DF - Direction flag
	FlagOverflow  = 11 // OF - Overflow flag
)

// Flag masks for easy manipulation.
const (
	MaskCarry     = 1 << FlagCarry
	MaskReserved1 = 1 << FlagReserved1
	MaskParity    = 1 << FlagParity
	MaskAuxCarry  = 1 << FlagAuxCarry
	MaskZero      = 1 << FlagZero
	MaskSign      = 1 << FlagSign
	MaskTrap      = 1 << FlagTrap
	MaskInterrupt = 1 << FlagInterrupt
	MaskDirection = 1 << FlagDirection
	MaskOverflow  = 1 << FlagOverflow
)

func (f Flags) get(mask Flags) bool {
	return f&mask != 0
}

func (f *Flags) set(mask Flags, value bool) {
	if value {
		*f |= mask
	} else {
		*f &^= mask
	}
}

// GetCarry returns the carry flag (CF).
func (f Flags) GetCarry() bool { return f.get(MaskCarry) }

// GetParity returns the parity flag (PF).
func (f Flags) GetParity() bool { return f.get(MaskParity) }

// GetAuxCarry returns the auxiliary carry flag (AF).
func (f Flags) GetAuxCarry() bool { return f.get(MaskAuxCarry) }

// GetZero returns the zero flag (ZF).
func (f Flags) GetZero() bool { return f.get(MaskZero) }

// GetSign returns the sign flag (SF).
func (f Flags) GetSign() bool { return f.get(MaskSign) }

// GetTrap returns the trap flag (TF).
func (f Flags) GetTrap() bool { return f.get(MaskTrap) }

// GetInterrupt returns the interrupt enable flag (IF).
func (f Flags) GetInterrupt() bool { return f.get(MaskInterrupt) }

// GetDirection returns the direction flag (DF).
func (f Flags) GetDirection() bool { return f.get(MaskDirection) }

// GetOverflow returns the overflow flag (OF).
func (f Flags) GetOverflow() bool { return f.get(MaskOverflow) }

// SetCarry sets or clears CF.
func (f *Flags) SetCarry(v bool) { f.set(MaskCarry, v) }

// SetParity sets or clears PF.
func (f *Flags) SetParity(v bool) { f.set(MaskParity, v) }

// SetAuxCarry sets or clears AF.
func (f *Flags) SetAuxCarry(v bool) { f.set(MaskAuxCarry, v) }

// SetZero sets or clears ZF.
func (f *Flags) SetZero(v bool) { f.set(MaskZero, v) }

// SetSign sets or clears SF.
func (f *Flags) SetSign(v bool) { f.set(MaskSign, v) }

// SetTrap sets or clears TF.
func (f *Flags) SetTrap(v bool) { f.set(MaskTrap, v) }

// SetInterrupt sets or clears IF.
func (f *Flags) SetInterrupt(v bool) { f.set(MaskInterrupt, v) }

// SetDirection sets or clears DF.
func (f *Flags) SetDirection(v bool) { f.set(MaskDirection, v) }

// SetOverflow sets or clears OF.
func (f *Flags) SetOverflow(v bool) { f.set(MaskOverflow, v) }

// flagLetters lists the named flags in the canonical dump order,
// O D I T S Z A P C, each paired with its bit mask.
var flagLetters = []struct {
	letter byte
	mask   Flags
}{
	{'O', MaskOverflow},
	{'D', MaskDirection},
	{'I', MaskInterrupt},
	{'T', MaskTrap},
	{'S', MaskSign},
	{'Z', MaskZero},
	{'A', MaskAuxCarry},
	{'P', MaskParity},
	{'C', MaskCarry},
}

// Format renders the flags register as "O D I T S Z A P C", uppercase
// when the flag is set and lowercase when clear.
func (f Flags) Format() string {
	buf := make([]byte, 0, len(flagLetters)*2-1)
	for i, fl := range flagLetters {
		if i > 0 {
			buf = append(buf, ' ')
		}
		ch := fl.letter
		if !f.get(fl.mask) {
			ch += 'a' - 'A'
		}
		buf = append(buf, ch)
	}
	return string(buf)
}
