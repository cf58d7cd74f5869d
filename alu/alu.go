// Package alu implements the 6502 arithmetic/logic primitives as pure
// functions over an operand (or two) and a *flags.Flags. None of these
// allocate or touch a bus; the engine is responsible for supplying
// operands and storing results.
package alu

import "github.com/chacon6502/core6502/flags"

// Add performs binary (or, if f.Decimal is set, BCD) addition with
// carry-in, mutating Carry, Overflow, Zero and Negative in f and
// returning the result byte.
func Add(a, m uint8, f *flags.Flags) uint8 {
	var carryIn uint16
	if f.Carry {
		carryIn = 1
	}

	wide := uint16(a) + uint16(m) + carryIn
	result := uint8(wide)

	if f.Decimal {
		adjust := uint16(0)
		if (a&0x0F)+(m&0x0F)+uint8(carryIn) > 9 {
			adjust += 0x06
		}
		if wide > 0x99 {
			adjust += 0x60
			f.Carry = true
		} else {
			f.Carry = false
		}
		result = uint8(wide + adjust)
	} else {
		f.Carry = wide > 0xFF
	}

	f.Overflow = (a^m)&0x80 == 0 && (a^result)&0x80 != 0
	f.UpdateZeroNegative(result)
	return result
}

// Sub performs binary (or, if f.Decimal is set, BCD) subtraction with
// borrow-in (modeled as the ones'-complement-plus-carry trick used by
// SBC on real hardware), mutating Carry, Overflow, Zero and Negative.
func Sub(a, m uint8, f *flags.Flags) uint8 {
	var carryIn uint16
	if f.Carry {
		carryIn = 1
	}

	wide := uint16(a) + uint16(^m) + carryIn
	result := uint8(wide)
	f.Carry = wide > 0xFF

	if f.Decimal {
		al := int16(a&0x0F) - int16(m&0x0F) - (1 - int16(carryIn))
		ah := int16(a>>4) - int16(m>>4)
		if al < 0 {
			al -= 6
			ah--
		}
		if ah < 0 {
			ah -= 6
		}
		result = uint8((ah << 4) | (al & 0x0F))
	}

	f.Overflow = (a^m)&0x80 != 0 && (a^result)&0x80 != 0
	f.UpdateZeroNegative(result)
	return result
}

// And is the bitwise AND of a and m; sets Zero/Negative from the result.
func And(a, m uint8, f *flags.Flags) uint8 {
	r := a & m
	f.UpdateZeroNegative(r)
	return r
}

// Ora is the bitwise OR of a and m; sets Zero/Negative from the result.
func Ora(a, m uint8, f *flags.Flags) uint8 {
	r := a | m
	f.UpdateZeroNegative(r)
	return r
}

// Eor is the bitwise exclusive-OR of a and m; sets Zero/Negative from
// the result.
func Eor(a, m uint8, f *flags.Flags) uint8 {
	r := a ^ m
	f.UpdateZeroNegative(r)
	return r
}

// Asl shifts v left by one bit. Carry takes the outgoing bit 7.
func Asl(v uint8, f *flags.Flags) uint8 {
	f.Carry = v&0x80 != 0
	r := v << 1
	f.UpdateZeroNegative(r)
	return r
}

// Lsr shifts v right by one bit. Carry takes the outgoing bit 0.
func Lsr(v uint8, f *flags.Flags) uint8 {
	f.Carry = v&0x01 != 0
	r := v >> 1
	f.UpdateZeroNegative(r)
	return r
}

// Rol rotates v left through Carry: the incoming bit 0 is the old
// Carry, and Carry takes the outgoing bit 7.
func Rol(v uint8, f *flags.Flags) uint8 {
	var in uint8
	if f.Carry {
		in = 1
	}
	f.Carry = v&0x80 != 0
	r := (v << 1) | in
	f.UpdateZeroNegative(r)
	return r
}

// Ror rotates v right through Carry: the incoming bit 7 is the old
// Carry, and Carry takes the outgoing bit 0.
func Ror(v uint8, f *flags.Flags) uint8 {
	var in uint8
	if f.Carry {
		in = 0x80
	}
	f.Carry = v&0x01 != 0
	r := (v >> 1) | in
	f.UpdateZeroNegative(r)
	return r
}

// Cmp computes a-m without touching a, setting Carry (a>=m), Zero
// (a==m) and Negative from bit 7 of the difference.
func Cmp(a, m uint8, f *flags.Flags) {
	wide := uint16(a) + uint16(^m) + 1
	result := uint8(wide)
	f.Carry = wide > 0xFF
	f.Zero = a == m
	f.Negative = result&0x80 != 0
}

// Bit implements the BIT test: Zero is (a&m)==0; Overflow and Negative
// come from bits 6 and 7 of m directly, not of the masked result. A is
// unchanged.
func Bit(a, m uint8, f *flags.Flags) {
	f.Zero = a&m == 0
	f.Overflow = m&0x40 != 0
	f.Negative = m&0x80 != 0
}

// BranchTarget sign-extends offset and adds it to pc, wrapping
// silently in 16 bits exactly as real hardware does. It never fails:
// the source this engine is modeled on has a dead bounds check here
// (comparing a widened i16 against i16::MAX, which a signed 8-bit
// offset added to a reset-vector-range pc can never reach) and this
// implementation omits it rather than carry it forward.
func BranchTarget(pc uint16, offset int8) uint16 {
	return uint16(int32(pc) + int32(offset))
}
