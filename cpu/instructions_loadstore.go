package cpu

// Loads read an operand and copy it into a register, updating
// Zero/Negative. Stores compute an effective address and write a
// register there, never charging the indexed-addressing penalty.

func loadInto(reg *uint8) func(e *Engine, val uint8) {
	return func(e *Engine, val uint8) {
		*reg = val
		e.Flags.UpdateZeroNegative(val)
	}
}

func ldaSequences() map[AddressingMode][]MicroOp {
	apply := func(e *Engine, val uint8) { loadInto(&e.Reg.A)(e, val) }
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

func ldxSequences() map[AddressingMode][]MicroOp {
	apply := func(e *Engine, val uint8) { loadInto(&e.Reg.X)(e, val) }
	return map[AddressingMode][]MicroOp{
		Immediate: {applyImmediate(apply)},
		ZeroPage:  {fetchOperandLow, readApply(apply)},
		ZeroPageY: {fetchOperandLow, addRegisterZeroPage(accY), readApply(apply)},
		Absolute:  {fetchOperandLow, fetchOperandHigh, readApply(apply)},
		AbsoluteY: {fetchOperandLow, fetchOperandHighIndexedPenalty(accY), readApplyIndexed(accY, apply)},
	}
}

func ldySequences() map[AddressingMode][]MicroOp {
	apply := func(e *Engine, val uint8) { loadInto(&e.Reg.Y)(e, val) }
	return map[AddressingMode][]MicroOp{
		Immediate: {applyImmediate(apply)},
		ZeroPage:  {fetchOperandLow, readApply(apply)},
		ZeroPageX: {fetchOperandLow, addRegisterZeroPage(accX), readApply(apply)},
		Absolute:  {fetchOperandLow, fetchOperandHigh, readApply(apply)},
		AbsoluteX: {fetchOperandLow, fetchOperandHighIndexedPenalty(accX), readApplyIndexed(accX, apply)},
	}
}

func staSequences() map[AddressingMode][]MicroOp {
	value := func(e *Engine) uint8 { return e.Reg.A }
	return map[AddressingMode][]MicroOp{
		ZeroPage:  {fetchOperandLow, applyWrite(value)},
		ZeroPageX: {fetchOperandLow, addRegisterZeroPage(accX), applyWrite(value)},
		Absolute:  {fetchOperandLow, fetchOperandHigh, applyWrite(value)},
		AbsoluteX: {fetchOperandLow, fetchOperandHigh, addRegisterFull(accX), applyWrite(value)},
		AbsoluteY: {fetchOperandLow, fetchOperandHigh, addRegisterFull(accY), applyWrite(value)},
		IndirectX: {fetchOperandLow, addRegisterZeroPage(accX), readPointerLow, combineHighZeroPageWrap, applyWrite(value)},
		IndirectY: {fetchOperandLow, readPointerLow, combineHighZeroPageWrap, addRegisterFull(accY), applyWrite(value)},
	}
}

func stxSequences() map[AddressingMode][]MicroOp {
	value := func(e *Engine) uint8 { return e.Reg.X }
	return map[AddressingMode][]MicroOp{
		ZeroPage:  {fetchOperandLow, applyWrite(value)},
		ZeroPageY: {fetchOperandLow, addRegisterZeroPage(accY), applyWrite(value)},
		Absolute:  {fetchOperandLow, fetchOperandHigh, applyWrite(value)},
	}
}

func stySequences() map[AddressingMode][]MicroOp {
	value := func(e *Engine) uint8 { return e.Reg.Y }
	return map[AddressingMode][]MicroOp{
		ZeroPage:  {fetchOperandLow, applyWrite(value)},
		ZeroPageX: {fetchOperandLow, addRegisterZeroPage(accX), applyWrite(value)},
		Absolute:  {fetchOperandLow, fetchOperandHigh, applyWrite(value)},
	}
}
