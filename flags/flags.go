// Package flags defines the 6502 processor status register: eight
// independent condition bits packed into a single byte in hardware bit
// order. Other packages (alu, cpu) take a *Flags and mutate individual
// bits; this package only knows how to pack and unpack the byte form.
package flags

import "fmt"

// Bit positions within the packed status byte, LSB to MSB.
const (
	BitCarry            = 0x01
	BitZero             = 0x02
	BitInterruptDisable = 0x04
	BitDecimal          = 0x08
	BitBreak            = 0x10
	BitUnused           = 0x20
	BitOverflow         = 0x40
	BitNegative         = 0x80
)

// Flags holds the eight 6502 status bits as independent booleans.
// Unused is carried as a field for symmetry with the packed byte, but
// Pack always forces it to 1 regardless of its stored value.
type Flags struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Break            bool
	Unused           bool
	Overflow         bool
	Negative         bool
}

// New returns the power-on default: InterruptDisable and Unused set,
// everything else clear.
func New() Flags {
	return Flags{
		InterruptDisable: true,
		Unused:           true,
	}
}

// InvalidFlagsError is returned by Unpack when bit 5 of the source byte
// is clear, which can never happen on real hardware.
type InvalidFlagsError struct {
	Byte uint8
}

func (e *InvalidFlagsError) Error() string {
	return fmt.Sprintf("invalid flags byte: %#08b (bit 5 must be set)", e.Byte)
}

// Pack returns the byte representation of f. Bit 5 is always forced to
// 1 regardless of f.Unused.
func (f Flags) Pack() uint8 {
	var b uint8
	if f.Carry {
		b |= BitCarry
	}
	if f.Zero {
		b |= BitZero
	}
	if f.InterruptDisable {
		b |= BitInterruptDisable
	}
	if f.Decimal {
		b |= BitDecimal
	}
	if f.Break {
		b |= BitBreak
	}
	b |= BitUnused
	if f.Overflow {
		b |= BitOverflow
	}
	if f.Negative {
		b |= BitNegative
	}
	return b
}

// Unpack decodes a status byte into a Flags value. It fails if bit 5
// is clear since that can never be observed coming off real hardware.
func Unpack(b uint8) (Flags, error) {
	if b&BitUnused == 0 {
		return Flags{}, &InvalidFlagsError{Byte: b}
	}
	return Flags{
		Carry:            b&BitCarry != 0,
		Zero:             b&BitZero != 0,
		InterruptDisable: b&BitInterruptDisable != 0,
		Decimal:          b&BitDecimal != 0,
		Break:            b&BitBreak != 0,
		Unused:           true,
		Overflow:         b&BitOverflow != 0,
		Negative:         b&BitNegative != 0,
	}, nil
}

// UpdateZeroNegative sets Zero and Negative from val. It touches no
// other bit.
func (f *Flags) UpdateZeroNegative(val uint8) {
	f.Zero = val == 0
	f.Negative = val&BitNegative != 0
}
