package cpu

// CLC/CLD/CLI/CLV/SEC/SED/SEI are one-cycle bit operations on a
// single flag.

func setFlag(set func(f *Engine, v bool)) []MicroOp {
	return []MicroOp{func(e *Engine) (Result, error) {
		set(e, true)
		return ContinueResult(), nil
	}}
}

func clearFlag(set func(f *Engine, v bool)) []MicroOp {
	return []MicroOp{func(e *Engine) (Result, error) {
		set(e, false)
		return ContinueResult(), nil
	}}
}
