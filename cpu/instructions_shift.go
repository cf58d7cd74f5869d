package cpu

import (
	"github.com/chacon6502/core6502/alu"
	"github.com/chacon6502/core6502/flags"
)

// ASL/LSR/ROL/ROR operate on the accumulator in one cycle or on
// memory as a three-cycle read-modify-write.

func accumulatorOp(op func(v uint8, f *flags.Flags) uint8) []MicroOp {
	return []MicroOp{func(e *Engine) (Result, error) {
		e.Reg.A = op(e.Reg.A, &e.Flags)
		return ContinueResult(), nil
	}}
}

func memoryRMWSequences(op func(v uint8, f *flags.Flags) uint8) map[AddressingMode][]MicroOp {
	transform := func(e *Engine, val uint8) uint8 { return op(val, &e.Flags) }
	return map[AddressingMode][]MicroOp{
		ZeroPage:  {fetchOperandLow, readModifyWriteRead, rmwModify(transform), rmwWrite},
		ZeroPageX: {fetchOperandLow, addRegisterZeroPage(accX), readModifyWriteRead, rmwModify(transform), rmwWrite},
		Absolute:  {fetchOperandLow, fetchOperandHigh, readModifyWriteRead, rmwModify(transform), rmwWrite},
		AbsoluteX: {fetchOperandLow, fetchOperandHigh, addRegisterFull(accX), readModifyWriteRead, rmwModify(transform), rmwWrite},
	}
}

func aslAccumulatorSequence() []MicroOp { return accumulatorOp(alu.Asl) }
func lsrAccumulatorSequence() []MicroOp { return accumulatorOp(alu.Lsr) }
func rolAccumulatorSequence() []MicroOp { return accumulatorOp(alu.Rol) }
func rorAccumulatorSequence() []MicroOp { return accumulatorOp(alu.Ror) }

func aslMemorySequences() map[AddressingMode][]MicroOp { return memoryRMWSequences(alu.Asl) }
func lsrMemorySequences() map[AddressingMode][]MicroOp { return memoryRMWSequences(alu.Lsr) }
func rolMemorySequences() map[AddressingMode][]MicroOp { return memoryRMWSequences(alu.Rol) }
func rorMemorySequences() map[AddressingMode][]MicroOp { return memoryRMWSequences(alu.Ror) }
