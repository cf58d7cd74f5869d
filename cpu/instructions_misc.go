package cpu

import "github.com/chacon6502/core6502/alu"

// BIT tests A & M without altering A, taking Overflow/Negative
// straight from bits 6/7 of M. NOP spends one idle cycle.

func bitSequences() map[AddressingMode][]MicroOp {
	apply := func(e *Engine, val uint8) { alu.Bit(e.Reg.A, val, &e.Flags) }
	return map[AddressingMode][]MicroOp{
		ZeroPage: {fetchOperandLow, readApply(apply)},
		Absolute: {fetchOperandLow, fetchOperandHigh, readApply(apply)},
	}
}

func nopSequence() []MicroOp {
	return []MicroOp{none}
}
