package cpu

import "github.com/chacon6502/core6502/alu"

// Every conditional branch always spends a cycle fetching the offset;
// if the condition fails that step returns Break, draining the
// sequence so the next tick starts a fresh opcode fetch. Otherwise the
// offset is applied to PC and a page crossing charges one extra tick.

func branchSequence(taken func(e *Engine) bool) []MicroOp {
	fetchOffset := func(e *Engine) (Result, error) {
		b, err := e.fetchOperand()
		if err != nil {
			return Result{}, err
		}
		e.tempData = b
		if !taken(e) {
			return BreakResult(), nil
		}
		return ContinueResult(), nil
	}
	applyOffset := func(e *Engine) (Result, error) {
		newPC := alu.BranchTarget(e.Reg.PC, int8(e.tempData))
		crossed := pageCrossed(e.instructionStart, newPC)
		e.Reg.PC = newPC
		if crossed {
			return PenaltyResult(1), nil
		}
		return ContinueResult(), nil
	}
	return []MicroOp{fetchOffset, applyOffset}
}
