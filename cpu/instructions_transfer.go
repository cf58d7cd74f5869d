package cpu

// Register-to-register transfers. All of them update Zero/Negative
// from the destination except TXS, which moves into the stack
// pointer untouched.

func taxSequence() []MicroOp {
	return []MicroOp{func(e *Engine) (Result, error) {
		e.Reg.X = e.Reg.A
		e.Flags.UpdateZeroNegative(e.Reg.X)
		return ContinueResult(), nil
	}}
}

func taySequence() []MicroOp {
	return []MicroOp{func(e *Engine) (Result, error) {
		e.Reg.Y = e.Reg.A
		e.Flags.UpdateZeroNegative(e.Reg.Y)
		return ContinueResult(), nil
	}}
}

func tsxSequence() []MicroOp {
	return []MicroOp{func(e *Engine) (Result, error) {
		e.Reg.X = e.Reg.S
		e.Flags.UpdateZeroNegative(e.Reg.X)
		return ContinueResult(), nil
	}}
}

func txaSequence() []MicroOp {
	return []MicroOp{func(e *Engine) (Result, error) {
		e.Reg.A = e.Reg.X
		e.Flags.UpdateZeroNegative(e.Reg.A)
		return ContinueResult(), nil
	}}
}

func txsSequence() []MicroOp {
	return []MicroOp{func(e *Engine) (Result, error) {
		e.Reg.S = e.Reg.X
		return ContinueResult(), nil
	}}
}

func tyaSequence() []MicroOp {
	return []MicroOp{func(e *Engine) (Result, error) {
		e.Reg.A = e.Reg.Y
		e.Flags.UpdateZeroNegative(e.Reg.A)
		return ContinueResult(), nil
	}}
}
