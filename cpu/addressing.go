package cpu

// This file holds the small library of composable micro-ops the
// instruction table is built from: loading bytes of an address into
// tempAddress, indexing it by X or Y (with or without the zero-page
// wrap and with or without a page-boundary penalty check), reading or
// writing through it, and resolving the two kinds of indirect
// pointer this instruction set uses.
//
// Two of these deliberately differ from the reference implementation
// this engine is modeled on: the X/Y page-boundary check here compares
// the pre-index base's high byte against the post-index high byte (the
// reference compared an address to itself after mutating it, which
// can never observe a crossing), and the indirect-pointer index for
// (Indirect,X) wraps within page zero (the reference used the
// unwrapped 16-bit adder there instead of the zero-page one it
// correctly used everywhere else).

func pageCrossed(base, target uint16) bool {
	return base&0xFF00 != target&0xFF00
}

type regAccessor func(e *Engine) uint8

func accX(e *Engine) uint8 { return e.Reg.X }
func accY(e *Engine) uint8 { return e.Reg.Y }

// fetchOperandLow reads the byte at PC into the low byte of
// tempAddress, replacing whatever tempAddress held before.
func fetchOperandLow(e *Engine) (Result, error) {
	b, err := e.fetchOperand()
	if err != nil {
		return Result{}, err
	}
	e.tempAddress = uint16(b)
	return ContinueResult(), nil
}

// fetchOperandHigh reads the byte at PC and ORs it into the high byte
// of tempAddress, completing a non-indexed absolute address.
func fetchOperandHigh(e *Engine) (Result, error) {
	b, err := e.fetchOperand()
	if err != nil {
		return Result{}, err
	}
	e.tempAddress |= uint16(b) << 8
	return ContinueResult(), nil
}

// fetchOperandHighIndexedPenalty completes the absolute address as
// fetchOperandHigh does, then checks whether adding reg would cross a
// page. It never mutates tempAddress past the unindexed base — the
// caller's next micro-op is expected to add reg again before using the
// address, matching the real hardware's two-cycle absolute,X/Y read.
func fetchOperandHighIndexedPenalty(reg regAccessor) MicroOp {
	return func(e *Engine) (Result, error) {
		b, err := e.fetchOperand()
		if err != nil {
			return Result{}, err
		}
		base := e.tempAddress | uint16(b)<<8
		e.tempAddress = base
		target := base + uint16(reg(e))
		if pageCrossed(base, target) {
			return PenaltyResult(1), nil
		}
		return ContinueResult(), nil
	}
}

// addRegisterFull adds reg to tempAddress with full 16-bit wraparound
// and no page-boundary check; used by stores and read-modify-write
// variants, which never charge the penalty.
func addRegisterFull(reg regAccessor) MicroOp {
	return func(e *Engine) (Result, error) {
		e.tempAddress += uint16(reg(e))
		return ContinueResult(), nil
	}
}

// addRegisterZeroPage adds reg to tempAddress masked to page zero,
// used for ZeroPage,X/Y and for indexing an (Indirect,X) pointer.
func addRegisterZeroPage(reg regAccessor) MicroOp {
	return func(e *Engine) (Result, error) {
		e.tempAddress = (e.tempAddress + uint16(reg(e))) & 0x00FF
		return ContinueResult(), nil
	}
}

// readPointerLow reads the byte at tempAddress (a zero-page pointer
// address) into tempData, the first half of resolving an indirect
// pointer.
func readPointerLow(e *Engine) (Result, error) {
	v, err := e.busRead(e.tempAddress)
	if err != nil {
		return Result{}, err
	}
	e.tempData = v
	return ContinueResult(), nil
}

// combineHighZeroPageWrap reads the byte at (pointer+1)&0xFF — the
// zero-page pointer's high byte, wrapping within page zero — and
// combines it with tempData (set by readPointerLow) to form the
// resolved target address in tempAddress.
func combineHighZeroPageWrap(e *Engine) (Result, error) {
	ptr := e.tempAddress
	high, err := e.busRead((ptr + 1) & 0x00FF)
	if err != nil {
		return Result{}, err
	}
	e.tempAddress = uint16(e.tempData) | uint16(high)<<8
	return ContinueResult(), nil
}

// combineHighZeroPageWrapIndexedPenalty does what
// combineHighZeroPageWrap does, then additionally checks whether
// adding reg to the resolved base would cross a page, without
// committing that add — (Indirect),Y's read variants re-add reg in
// their final step. This is the (Indirect),Y counterpart to
// fetchOperandHighIndexedPenalty.
func combineHighZeroPageWrapIndexedPenalty(reg regAccessor) MicroOp {
	return func(e *Engine) (Result, error) {
		ptr := e.tempAddress
		high, err := e.busRead((ptr + 1) & 0x00FF)
		if err != nil {
			return Result{}, err
		}
		base := uint16(e.tempData) | uint16(high)<<8
		e.tempAddress = base
		target := base + uint16(reg(e))
		if pageCrossed(base, target) {
			return PenaltyResult(1), nil
		}
		return ContinueResult(), nil
	}
}

// combineHighPageWrapBug resolves a 16-bit pointer's high byte the way
// NMOS 6502 silicon actually does for JMP (Indirect): if the pointer's
// low byte is 0xFF, the high byte is fetched from the start of the
// same page rather than the start of the next one. This is preserved
// deliberately, not a bug in this engine.
func combineHighPageWrapBug(e *Engine) (Result, error) {
	ptr := e.tempAddress
	high, err := e.busRead((ptr & 0xFF00) | ((ptr + 1) & 0x00FF))
	if err != nil {
		return Result{}, err
	}
	e.tempAddress = uint16(e.tempData) | uint16(high)<<8
	return ContinueResult(), nil
}

// readApply reads the byte at tempAddress and hands it to apply; used
// by read addressing modes (ZeroPage, ZeroPage,X/Y, Absolute,
// (Indirect,X)) where tempAddress already holds the final address.
func readApply(apply func(e *Engine, val uint8)) MicroOp {
	return func(e *Engine) (Result, error) {
		v, err := e.busRead(e.tempAddress)
		if err != nil {
			return Result{}, err
		}
		apply(e, v)
		return ContinueResult(), nil
	}
}

// readApplyIndexed adds reg to tempAddress, reads the byte there, and
// hands it to apply — the final step of Absolute,X/Y and
// (Indirect),Y read variants, which re-add the index after the
// preceding penalty-check step left tempAddress at the unindexed base.
func readApplyIndexed(reg regAccessor, apply func(e *Engine, val uint8)) MicroOp {
	return func(e *Engine) (Result, error) {
		e.tempAddress += uint16(reg(e))
		v, err := e.busRead(e.tempAddress)
		if err != nil {
			return Result{}, err
		}
		apply(e, v)
		return ContinueResult(), nil
	}
}

// applyImmediate fetches the operand byte directly (Immediate mode
// never touches tempAddress) and hands it to apply.
func applyImmediate(apply func(e *Engine, val uint8)) MicroOp {
	return func(e *Engine) (Result, error) {
		v, err := e.fetchOperand()
		if err != nil {
			return Result{}, err
		}
		apply(e, v)
		return ContinueResult(), nil
	}
}

// applyWrite writes the byte produced by value to tempAddress; the
// final step of every store addressing mode.
func applyWrite(value func(e *Engine) uint8) MicroOp {
	return func(e *Engine) (Result, error) {
		return Result{}, e.busWrite(e.tempAddress, value(e))
	}
}

// readModifyWriteRead performs the read half of a read-modify-write
// micro-op, storing the byte into tempData for a following internal
// step to transform and a final step to write back.
func readModifyWriteRead(e *Engine) (Result, error) {
	v, err := e.busRead(e.tempAddress)
	if err != nil {
		return Result{}, err
	}
	e.tempData = v
	return ContinueResult(), nil
}

// rmwModify applies transform to tempData in place, modeling the
// internal cycle of a read-modify-write instruction.
func rmwModify(transform func(e *Engine, val uint8) uint8) MicroOp {
	return func(e *Engine) (Result, error) {
		e.tempData = transform(e, e.tempData)
		return ContinueResult(), nil
	}
}

// rmwWrite writes tempData back to tempAddress, the final step of a
// read-modify-write instruction.
func rmwWrite(e *Engine) (Result, error) {
	return Result{}, e.busWrite(e.tempAddress, e.tempData)
}

// none models an internal cycle that does no bus work at all — used
// wherever a real 6502 spends a cycle without a corresponding address
// computation (implied-mode instructions, the dead cycle before a
// stack pull, etc).
func none(e *Engine) (Result, error) {
	return ContinueResult(), nil
}
