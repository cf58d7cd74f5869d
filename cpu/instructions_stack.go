package cpu

// PHA/PHP push; PLA/PLP pull. Each spends one internal cycle before
// touching the stack, matching the extra cycle real hardware takes
// past a plain implied-mode instruction.

func phaSequence() []MicroOp {
	return []MicroOp{none, pushStackByte(func(e *Engine) uint8 { return e.Reg.A })}
}

func phpSequence() []MicroOp {
	return []MicroOp{none, pushStackByte(func(e *Engine) uint8 {
		f := e.Flags
		f.Break = true
		return f.Pack()
	})}
}

func plaSequence() []MicroOp {
	return []MicroOp{
		none,
		popStackPointer,
		pullStackApply(func(e *Engine, val uint8) error {
			e.Reg.A = val
			e.Flags.UpdateZeroNegative(val)
			return nil
		}),
	}
}

func plpSequence() []MicroOp {
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
	}
}
