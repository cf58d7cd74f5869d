package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chacon6502/core6502/flags"
)

func TestAddBinary(t *testing.T) {
	tests := []struct {
		name           string
		a, m           uint8
		carryIn        bool
		want           uint8
		wantCarry      bool
		wantOverflow   bool
		wantNegative   bool
		wantZero       bool
	}{
		{"0x50+0x50 overflows into negative", 0x50, 0x50, false, 0xA0, false, true, true, false},
		{"simple no-carry", 0x01, 0x01, false, 0x02, false, false, false, false},
		{"carry out", 0xFF, 0x01, false, 0x00, true, false, false, true},
		{"carry-in propagates", 0x01, 0x01, true, 0x03, false, false, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := flags.New()
			f.Carry = tc.carryIn
			got := Add(tc.a, tc.m, &f)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantCarry, f.Carry)
			assert.Equal(t, tc.wantOverflow, f.Overflow)
			assert.Equal(t, tc.wantNegative, f.Negative)
			assert.Equal(t, tc.wantZero, f.Zero)
		})
	}
}

func TestAddDecimal(t *testing.T) {
	f := flags.New()
	f.Decimal = true
	f.Carry = false
	got := Add(0x09, 0x01, &f)
	assert.Equal(t, uint8(0x10), got)
	assert.False(t, f.Carry)
}

func TestAddDecimalCarryOut(t *testing.T) {
	f := flags.New()
	f.Decimal = true
	f.Carry = false
	got := Add(0x99, 0x01, &f)
	assert.Equal(t, uint8(0x00), got)
	assert.True(t, f.Carry)
}

// Sub(a, m, carryIn=c) computes a-m-(1-c) in two's complement; adding
// m back with carryIn=(1-c) exactly cancels the borrow regardless of
// the magnitudes of a and m, since every intermediate step is already
// reduced mod 256.
func TestSubAddRoundTripBinary(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for m := 0; m < 256; m += 23 {
			for _, c := range []bool{true, false} {
				f := flags.New()
				f.Carry = c
				diff := Sub(uint8(a), uint8(m), &f)

				f2 := flags.New()
				f2.Carry = !c
				back := Add(diff, uint8(m), &f2)
				assert.Equal(t, uint8(a), back, "Sub then Add should round-trip for a=%d m=%d c=%v", a, m, c)
			}
		}
	}
}

// The same round-trip identity holds in decimal mode for valid BCD
// operands: each nibble of a and m ranges over 0-9 only.
func TestSubAddRoundTripDecimal(t *testing.T) {
	bcdByte := func(tens, units int) uint8 { return uint8(tens<<4 | units) }

	for aTens := 0; aTens < 10; aTens++ {
		for aUnits := 0; aUnits < 10; aUnits++ {
			a := bcdByte(aTens, aUnits)
			for mTens := 0; mTens < 10; mTens += 3 {
				for mUnits := 0; mUnits < 10; mUnits += 3 {
					m := bcdByte(mTens, mUnits)
					for _, c := range []bool{true, false} {
						f := flags.New()
						f.Decimal = true
						f.Carry = c
						diff := Sub(a, m, &f)

						f2 := flags.New()
						f2.Decimal = true
						f2.Carry = !c
						back := Add(diff, m, &f2)
						assert.Equal(t, a, back, "decimal Sub then Add should round-trip for a=%#02x m=%#02x c=%v", a, m, c)
					}
				}
			}
		}
	}
}

func TestLogicOps(t *testing.T) {
	var f flags.Flags
	assert.Equal(t, uint8(0x0F), And(0xFF, 0x0F, &f))
	assert.Equal(t, uint8(0xFF), Ora(0xF0, 0x0F, &f))
	assert.Equal(t, uint8(0xFF), Eor(0xF0, 0x0F, &f))
	assert.Equal(t, uint8(0x00), Eor(0xAA, 0xAA, &f))
	assert.True(t, f.Zero)
}

func TestShiftsAndRotates(t *testing.T) {
	var f flags.Flags
	assert.Equal(t, uint8(0x02), Asl(0x01, &f))
	assert.False(t, f.Carry)
	assert.Equal(t, uint8(0x00), Asl(0x80, &f))
	assert.True(t, f.Carry)

	assert.Equal(t, uint8(0x40), Lsr(0x80, &f))
	assert.False(t, f.Carry)
	assert.Equal(t, uint8(0x00), Lsr(0x01, &f))
	assert.True(t, f.Carry)

	f = flags.Flags{Carry: true}
	assert.Equal(t, uint8(0x03), Rol(0x01, &f))
	assert.False(t, f.Carry)

	f = flags.Flags{Carry: true}
	assert.Equal(t, uint8(0xC0), Ror(0x80, &f))
	assert.False(t, f.Carry)
}

func TestCmp(t *testing.T) {
	var f flags.Flags
	Cmp(0x10, 0x10, &f)
	assert.True(t, f.Zero)
	assert.True(t, f.Carry)
	assert.False(t, f.Negative)

	Cmp(0x10, 0x20, &f)
	assert.False(t, f.Zero)
	assert.False(t, f.Carry)
}

func TestBit(t *testing.T) {
	var f flags.Flags
	a := uint8(0xFF)
	Bit(a, 0xC0, &f)
	assert.False(t, f.Zero)
	assert.True(t, f.Overflow)
	assert.True(t, f.Negative)

	Bit(a, 0x00, &f)
	assert.True(t, f.Zero)
	assert.False(t, f.Overflow)
	assert.False(t, f.Negative)
}

func TestBranchTargetWraps(t *testing.T) {
	assert.Equal(t, uint16(0x8104), BranchTarget(0x8100, 4))
	assert.Equal(t, uint16(0xFFFF), BranchTarget(0x0000, -1))
	assert.Equal(t, uint16(0x0000), BranchTarget(0xFFFF, 1))
}
