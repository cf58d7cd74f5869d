package cpu

import "github.com/chacon6502/core6502/alu"

// CMP/CPX/CPY share the ALU's cmp primitive; CPX/CPY only support the
// three simplest addressing modes.

func cmpSequences(reg func(e *Engine) uint8) map[AddressingMode][]MicroOp {
	apply := func(e *Engine, val uint8) { alu.Cmp(reg(e), val, &e.Flags) }
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

func cpxySequences(reg func(e *Engine) uint8) map[AddressingMode][]MicroOp {
	apply := func(e *Engine, val uint8) { alu.Cmp(reg(e), val, &e.Flags) }
	return map[AddressingMode][]MicroOp{
		Immediate: {applyImmediate(apply)},
		ZeroPage:  {fetchOperandLow, readApply(apply)},
		Absolute:  {fetchOperandLow, fetchOperandHigh, readApply(apply)},
	}
}
