package cpu

// JMP loads PC directly from the fetched (or pointer-resolved)
// address. JSR pushes the return address (the address of its own last
// byte) before jumping; RTS pulls it back and adds one.

func jmpAbsoluteSequence() []MicroOp {
	return []MicroOp{
		fetchOperandLow,
		func(e *Engine) (Result, error) {
			b, err := e.fetchOperand()
			if err != nil {
				return Result{}, err
			}
			e.tempAddress |= uint16(b) << 8
			e.Reg.PC = e.tempAddress
			return ContinueResult(), nil
		},
	}
}

func jmpIndirectSequence() []MicroOp {
	return []MicroOp{
		fetchOperandLow,
		fetchOperandHigh,
		readPointerLow,
		func(e *Engine) (Result, error) {
			if _, err := combineHighPageWrapBug(e); err != nil {
				return Result{}, err
			}
			e.Reg.PC = e.tempAddress
			return ContinueResult(), nil
		},
	}
}

func jsrSequence() []MicroOp {
	return []MicroOp{
		fetchOperandLow,
		fetchOperandHigh,
		pushStackByte(func(e *Engine) uint8 { return uint8((e.Reg.PC - 1) >> 8) }),
		pushStackByte(func(e *Engine) uint8 { return uint8(e.Reg.PC - 1) }),
		func(e *Engine) (Result, error) {
			e.Reg.PC = e.tempAddress
			return ContinueResult(), nil
		},
	}
}

func rtsSequence() []MicroOp {
	return []MicroOp{
		none,
		popStackPointer,
		pullStackApply(func(e *Engine, val uint8) error {
			e.tempAddress = uint16(val)
			return nil
		}),
		func(e *Engine) (Result, error) {
			e.popPointer()
			v, err := e.popByte()
			if err != nil {
				return Result{}, err
			}
			e.tempAddress |= uint16(v) << 8
			return ContinueResult(), nil
		},
		func(e *Engine) (Result, error) {
			e.Reg.PC = e.tempAddress + 1
			return ContinueResult(), nil
		},
	}
}
