// Package cpu implements the 6502 instruction-execution core: the
// register file, the 151-entry opcode table, and the cycle-stepped
// engine that walks each variant's micro-op sequence one tick at a
// time against an external bus.Device.
package cpu

import (
	"github.com/chacon6502/core6502/bus"
	"github.com/chacon6502/core6502/flags"
)

// Engine is the whole of the cycle-stepped core: registers, flags, the
// bus it executes against, and the handful of scratch fields that let
// one micro-op hand partial work to the next. It is not safe for
// concurrent use — the intended deployment is one Engine per emulated
// machine, driven by a single host loop.
type Engine struct {
	Reg   Registers
	Flags flags.Flags
	Bus   bus.Device

	variant *Variant
	cursor  int

	tempAddress uint16
	tempData    uint8

	// instructionStart is the address of the opcode byte currently
	// executing, captured at fetch time. Branches judge their
	// page-crossing penalty against this address rather than the
	// post-operand PC.
	instructionStart uint16

	pageBoundaryPenalty uint8
	cycles              uint64
}

// New constructs an Engine with power-on default registers and flags,
// wired to bus. Call Reset before stepping to load the program counter
// from the reset vector.
func New(b bus.Device) *Engine {
	return &Engine{
		Reg:     NewRegisters(),
		Flags:   flags.New(),
		Bus:     b,
		variant: defaultVariant,
	}
}

// Cycles returns the number of ticks this Engine has executed since
// construction or the last Reset.
func (e *Engine) Cycles() uint64 { return e.cycles }

// Variant returns the instruction variant currently being executed.
func (e *Engine) Variant() *Variant { return e.variant }

func (e *Engine) busRead(addr uint16) (uint8, error) {
	v, err := e.Bus.Read(addr)
	if err != nil {
		return 0, busFailure(err)
	}
	return v, nil
}

func (e *Engine) busWrite(addr uint16, val uint8) error {
	if err := e.Bus.Write(addr, val); err != nil {
		return busFailure(err)
	}
	return nil
}

// fetchOperand reads the byte at PC and advances PC, wrapping in 16
// bits.
func (e *Engine) fetchOperand() (uint8, error) {
	v, err := e.busRead(e.Reg.PC)
	if err != nil {
		return 0, err
	}
	e.Reg.PC++
	return v, nil
}

// Reset sets registers and flags to their power-on defaults, loads PC
// from the reset vector, zeros the cycle counter, and clears any
// in-flight instruction state. Any bus error reading the vector
// surfaces to the caller.
func (e *Engine) Reset() error {
	e.Reg = NewRegisters()
	e.Flags = flags.New()

	lo, err := e.busRead(ResetVector)
	if err != nil {
		return err
	}
	hi, err := e.busRead(ResetVector + 1)
	if err != nil {
		return err
	}
	e.Reg.PC = uint16(lo) | uint16(hi)<<8

	e.variant = defaultVariant
	e.cursor = 0
	e.tempAddress = 0
	e.tempData = 0
	e.pageBoundaryPenalty = 0
	e.cycles = 0
	return nil
}

// Step advances exactly one cycle: it either burns a pending
// page-boundary penalty tick, runs the next micro-op of the current
// instruction, or — if the current instruction is exhausted — fetches
// and decodes the next opcode. Errors from the bus or from an unknown
// opcode propagate immediately; the engine's internal state is left as
// it was at the point of failure.
func (e *Engine) Step() error {
	defer func() { e.cycles++ }()

	if e.pageBoundaryPenalty > 0 {
		e.pageBoundaryPenalty--
		return nil
	}

	if e.cursor < len(e.variant.Microcode) {
		op := e.variant.Microcode[e.cursor]
		e.cursor++
		result, err := op(e)
		if err != nil {
			return err
		}
		switch result.outcome {
		case Continue:
		case pageBoundaryPenaltyTag:
			e.pageBoundaryPenalty += result.penalty
		case Break:
			e.cursor = len(e.variant.Microcode)
		}
		return nil
	}

	e.instructionStart = e.Reg.PC
	opcode, err := e.fetchOperand()
	if err != nil {
		return err
	}
	v := variantByOpcode(opcode)
	if v == nil {
		return unknownInstruction()
	}
	e.variant = v
	e.cursor = 0
	return nil
}
