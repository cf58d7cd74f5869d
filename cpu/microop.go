package cpu

// Memory-map constants the engine itself depends on; everything else
// about the address space belongs to the bus.
const (
	// StackBase is the fixed base address of the hardware stack page.
	StackBase = 0x0100
	// ResetVector is the low byte address of the little-endian reset
	// vector; ResetVector+1 holds the high byte.
	ResetVector = 0xFFFC
	// IRQVector is the low byte address of the little-endian IRQ/BRK
	// vector; IRQVector+1 holds the high byte.
	IRQVector = 0xFFFE
)

// Outcome is what a micro-op reports back to step() about how to
// advance the instruction's cursor.
type Outcome int

const (
	// Continue advances to the next micro-op on the next tick.
	Continue Outcome = iota
	// pageBoundaryPenaltyTag marks a Result built by PenaltyResult,
	// which carries the pending tick count; use PenaltyResult instead
	// of this bare value.
	pageBoundaryPenaltyTag
	// Break aborts the remainder of the current sequence; the next
	// tick fetches a new opcode.
	Break
)

// Result is the full outcome of one micro-op: an Outcome tag plus,
// when the tag is a page-boundary penalty, the number of additional
// idle ticks to insert before the cursor advances.
type Result struct {
	outcome Outcome
	penalty uint8
}

// ContinueResult is the ordinary "keep going" outcome.
func ContinueResult() Result { return Result{outcome: Continue} }

// BreakResult aborts the remainder of the instruction's sequence.
func BreakResult() Result { return Result{outcome: Break} }

// PenaltyResult queues n additional idle ticks before the micro-op
// cursor advances to its next step.
func PenaltyResult(n uint8) Result { return Result{outcome: pageBoundaryPenaltyTag, penalty: n} }

// MicroOp is a single-cycle unit of work inside one instruction. The
// engine invokes exactly one of these per tick that is neither an idle
// penalty tick nor an opcode fetch.
type MicroOp func(e *Engine) (Result, error)
