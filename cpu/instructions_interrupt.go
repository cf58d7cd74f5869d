package cpu

// BRK pushes PC+1 (the byte after BRK's own signature byte) and the
// flags with Break forced set, then vectors through 0xFFFE/0xFFFF,
// setting InterruptDisable the way a real 6502 does after taking any
// interrupt. RTI is the mirror image with no address adjustment.

func brkSequence() []MicroOp {
	return []MicroOp{
		none,
		pushStackByte(func(e *Engine) uint8 { return uint8((e.Reg.PC + 1) >> 8) }),
		pushStackByte(func(e *Engine) uint8 { return uint8(e.Reg.PC + 1) }),
		pushStackByte(func(e *Engine) uint8 {
			f := e.Flags
			f.Break = true
			return f.Pack()
		}),
		func(e *Engine) (Result, error) {
			e.Flags.InterruptDisable = true
			lo, err := e.busRead(IRQVector)
			if err != nil {
				return Result{}, err
			}
			e.tempAddress = uint16(lo)
			return ContinueResult(), nil
		},
		func(e *Engine) (Result, error) {
			hi, err := e.busRead(IRQVector + 1)
			if err != nil {
				return Result{}, err
			}
			e.Reg.PC = e.tempAddress | uint16(hi)<<8
			return ContinueResult(), nil
		},
	}
}

func rtiSequence() []MicroOp {
	return []MicroOp{
		none,
		popStackPointer,
		pullStackApply(func(e *Engine, val uint8) error {
			f, err := unpackFlags(val)
			if err != nil {
				return err
			}
			e.Flags = f
			return nil
		}),
		func(e *Engine) (Result, error) {
			e.popPointer()
			v, err := e.popByte()
			if err != nil {
				return Result{}, err
			}
			e.tempAddress = uint16(v)
			return ContinueResult(), nil
		},
		func(e *Engine) (Result, error) {
			e.popPointer()
			v, err := e.popByte()
			if err != nil {
				return Result{}, err
			}
			e.Reg.PC = e.tempAddress | uint16(v)<<8
			return ContinueResult(), nil
		},
	}
}
