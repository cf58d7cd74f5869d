package cpu

import "github.com/chacon6502/core6502/flags"

// INC/DEC work on memory as a read-modify-write; INX/INY/DEX/DEY work
// directly on a register. Neither touches Carry or Overflow.

func incMemorySequences() map[AddressingMode][]MicroOp {
	return memoryRMWSequences(func(v uint8, f *flags.Flags) uint8 {
		r := v + 1
		f.UpdateZeroNegative(r)
		return r
	})
}

func decMemorySequences() map[AddressingMode][]MicroOp {
	return memoryRMWSequences(func(v uint8, f *flags.Flags) uint8 {
		r := v - 1
		f.UpdateZeroNegative(r)
		return r
	})
}

func regIncDec(reg func(e *Engine) *uint8, delta int8) []MicroOp {
	return []MicroOp{func(e *Engine) (Result, error) {
		p := reg(e)
		*p = uint8(int16(*p) + int16(delta))
		e.Flags.UpdateZeroNegative(*p)
		return ContinueResult(), nil
	}}
}
