package cpu

// The hardware stack lives at a fixed page; S always addresses the
// next free slot, wrapping silently at the page boundary.

func (e *Engine) stackAddr() uint16 {
	return StackBase | uint16(e.Reg.S)
}

// pushByte writes val at 0x0100+S then decrements S, wrapping.
func (e *Engine) pushByte(val uint8) error {
	if err := e.busWrite(e.stackAddr(), val); err != nil {
		return err
	}
	e.Reg.S--
	return nil
}

// popPointer increments S, wrapping, so the following read observes
// the top of stack.
func (e *Engine) popPointer() {
	e.Reg.S++
}

// popByte reads the byte at 0x0100+S. Callers call popPointer first.
func (e *Engine) popByte() (uint8, error) {
	return e.busRead(e.stackAddr())
}

// pushStackByte builds a MicroOp that pushes the byte value returns.
func pushStackByte(value func(e *Engine) uint8) MicroOp {
	return func(e *Engine) (Result, error) {
		return Result{}, e.pushByte(value(e))
	}
}

// popStackPointer builds a MicroOp that only advances S, modeling the
// dead cycle between a pull's internal step and its actual read.
func popStackPointer(e *Engine) (Result, error) {
	e.popPointer()
	return ContinueResult(), nil
}

// pullStackApply builds a MicroOp that reads the byte at the new top
// of stack and hands it to apply.
func pullStackApply(apply func(e *Engine, val uint8) error) MicroOp {
	return func(e *Engine) (Result, error) {
		v, err := e.popByte()
		if err != nil {
			return Result{}, err
		}
		if err := apply(e, v); err != nil {
			return Result{}, err
		}
		return ContinueResult(), nil
	}
}
