package cpu

import "github.com/chacon6502/core6502/alu"

// ADC/SBC delegate to the ALU with whatever Decimal is currently set
// to; AND/ORA/EOR are the bitwise family, same addressing shapes as
// the arithmetic one.

func arithSequences(apply func(e *Engine, val uint8)) map[AddressingMode][]MicroOp {
	return map[AddressingMode][]MicroOp{
		Immediate: {applyImmediate(apply)},
		ZeroPage:  {fetchOperandLow, readApply(apply)},
		ZeroPageX: {fetchOperandLow, addRegisterZeroPage(accX), readApply(apply)},
		Absolute:  {fetchOperandLow, fetchOperandHigh, readApply(apply)},
		AbsoluteX: {fetchOperandLow, fetchOperandHighIndexedPenalty(accX), readApplyIndexed(accX, apply)},
		AbsoluteY: {fetchOperandLow, fetchOperandHighIndexedPenalty(accY), readApplyIndexed(accY, apply)},
		IndirectX: {fetchOperandLow, addRegisterZeroPage(accX), readPointerLow, combineHighZeroPageWrap, readApply(apply)},
		IndirectY: {fetchOperandLow, readPointerLow, combineHighZeroPageWrapIndexedPenalty(accY), readApplyIndexed(accY, apply)},
	}
}

func adcSequences() map[AddressingMode][]MicroOp {
	return arithSequences(func(e *Engine, val uint8) {
		e.Reg.A = alu.Add(e.Reg.A, val, &e.Flags)
	})
}

func sbcSequences() map[AddressingMode][]MicroOp {
	return arithSequences(func(e *Engine, val uint8) {
		e.Reg.A = alu.Sub(e.Reg.A, val, &e.Flags)
	})
}

func andSequences() map[AddressingMode][]MicroOp {
	return arithSequences(func(e *Engine, val uint8) {
		e.Reg.A = alu.And(e.Reg.A, val, &e.Flags)
	})
}

func oraSequences() map[AddressingMode][]MicroOp {
	return arithSequences(func(e *Engine, val uint8) {
		e.Reg.A = alu.Ora(e.Reg.A, val, &e.Flags)
	})
}

func eorSequences() map[AddressingMode][]MicroOp {
	return arithSequences(func(e *Engine, val uint8) {
		e.Reg.A = alu.Eor(e.Reg.A, val, &e.Flags)
	})
}
