package cpu

// variants is the closed set of 151 documented opcode bytes this
// engine understands. It is built once at package init time from the
// per-mnemonic micro-op sequence builders in the other instructions_*
// files; variantByOpcode does a flat lookup against it.

func v(mnemonic Mnemonic, mode AddressingMode, opcode uint8, microcode []MicroOp) Variant {
	return Variant{Mnemonic: mnemonic, Mode: mode, Opcode: opcode, Microcode: microcode}
}

func fromModes(mnemonic Mnemonic, opcodes map[AddressingMode]uint8, seqs map[AddressingMode][]MicroOp) []Variant {
	out := make([]Variant, 0, len(opcodes))
	for mode, op := range opcodes {
		seq, ok := seqs[mode]
		if !ok {
			panic("core6502/cpu: missing microcode sequence for " + string(mnemonic) + " " + mode.String())
		}
		out = append(out, v(mnemonic, mode, op, seq))
	}
	return out
}

var variants = buildVariants()

var variantIndex = buildVariantIndex()

// defaultVariant is the engine's placeholder state before the first
// opcode fetch: empty microcode so the first Step after New or Reset
// goes straight to fetching the real opcode at PC instead of spending
// a cycle on a phantom instruction. The real NOP/0xEA table entry in
// buildVariants builds its own microcode via a separate nopSequence()
// call.
var defaultVariant = &Variant{Mnemonic: NOP, Mode: Implied, Opcode: 0xEA}

func buildVariantIndex() [256]*Variant {
	var idx [256]*Variant
	for i := range variants {
		vv := &variants[i]
		if idx[vv.Opcode] != nil {
			panic("core6502/cpu: duplicate opcode in instruction table")
		}
		idx[vv.Opcode] = vv
	}
	return idx
}

func variantByOpcode(opcode uint8) *Variant {
	return variantIndex[opcode]
}

func buildVariants() []Variant {
	var out []Variant

	out = append(out, fromModes(LDA, map[AddressingMode]uint8{
		Immediate: 0xA9, ZeroPage: 0xA5, ZeroPageX: 0xB5, Absolute: 0xAD,
		AbsoluteX: 0xBD, AbsoluteY: 0xB9, IndirectX: 0xA1, IndirectY: 0xB1,
	}, ldaSequences())...)

	out = append(out, fromModes(LDX, map[AddressingMode]uint8{
		Immediate: 0xA2, ZeroPage: 0xA6, ZeroPageY: 0xB6, Absolute: 0xAE, AbsoluteY: 0xBE,
	}, ldxSequences())...)

	out = append(out, fromModes(LDY, map[AddressingMode]uint8{
		Immediate: 0xA0, ZeroPage: 0xA4, ZeroPageX: 0xB4, Absolute: 0xAC, AbsoluteX: 0xBC,
	}, ldySequences())...)

	out = append(out, fromModes(STA, map[AddressingMode]uint8{
		ZeroPage: 0x85, ZeroPageX: 0x95, Absolute: 0x8D,
		AbsoluteX: 0x9D, AbsoluteY: 0x99, IndirectX: 0x81, IndirectY: 0x91,
	}, staSequences())...)

	out = append(out, fromModes(STX, map[AddressingMode]uint8{
		ZeroPage: 0x86, ZeroPageY: 0x96, Absolute: 0x8E,
	}, stxSequences())...)

	out = append(out, fromModes(STY, map[AddressingMode]uint8{
		ZeroPage: 0x84, ZeroPageX: 0x94, Absolute: 0x8C,
	}, stySequences())...)

	out = append(out, v(TAX, Implied, 0xAA, taxSequence()))
	out = append(out, v(TAY, Implied, 0xA8, taySequence()))
	out = append(out, v(TSX, Implied, 0xBA, tsxSequence()))
	out = append(out, v(TXA, Implied, 0x8A, txaSequence()))
	out = append(out, v(TXS, Implied, 0x9A, txsSequence()))
	out = append(out, v(TYA, Implied, 0x98, tyaSequence()))

	out = append(out, v(PHA, Implied, 0x48, phaSequence()))
	out = append(out, v(PHP, Implied, 0x08, phpSequence()))
	out = append(out, v(PLA, Implied, 0x68, plaSequence()))
	out = append(out, v(PLP, Implied, 0x28, plpSequence()))

	out = append(out, fromModes(DEC, map[AddressingMode]uint8{
		ZeroPage: 0xC6, ZeroPageX: 0xD6, Absolute: 0xCE, AbsoluteX: 0xDE,
	}, decMemorySequences())...)
	out = append(out, v(DEX, Implied, 0xCA, regIncDec(func(e *Engine) *uint8 { return &e.Reg.X }, -1)))
	out = append(out, v(DEY, Implied, 0x88, regIncDec(func(e *Engine) *uint8 { return &e.Reg.Y }, -1)))

	out = append(out, fromModes(INC, map[AddressingMode]uint8{
		ZeroPage: 0xE6, ZeroPageX: 0xF6, Absolute: 0xEE, AbsoluteX: 0xFE,
	}, incMemorySequences())...)
	out = append(out, v(INX, Implied, 0xE8, regIncDec(func(e *Engine) *uint8 { return &e.Reg.X }, 1)))
	out = append(out, v(INY, Implied, 0xC8, regIncDec(func(e *Engine) *uint8 { return &e.Reg.Y }, 1)))

	out = append(out, fromModes(ADC, map[AddressingMode]uint8{
		Immediate: 0x69, ZeroPage: 0x65, ZeroPageX: 0x75, Absolute: 0x6D,
		AbsoluteX: 0x7D, AbsoluteY: 0x79, IndirectX: 0x61, IndirectY: 0x71,
	}, adcSequences())...)

	out = append(out, fromModes(SBC, map[AddressingMode]uint8{
		Immediate: 0xE9, ZeroPage: 0xE5, ZeroPageX: 0xF5, Absolute: 0xED,
		AbsoluteX: 0xFD, AbsoluteY: 0xF9, IndirectX: 0xE1, IndirectY: 0xF1,
	}, sbcSequences())...)

	out = append(out, fromModes(AND, map[AddressingMode]uint8{
		Immediate: 0x29, ZeroPage: 0x25, ZeroPageX: 0x35, Absolute: 0x2D,
		AbsoluteX: 0x3D, AbsoluteY: 0x39, IndirectX: 0x21, IndirectY: 0x31,
	}, andSequences())...)

	out = append(out, fromModes(ORA, map[AddressingMode]uint8{
		Immediate: 0x09, ZeroPage: 0x05, ZeroPageX: 0x15, Absolute: 0x0D,
		AbsoluteX: 0x1D, AbsoluteY: 0x19, IndirectX: 0x01, IndirectY: 0x11,
	}, oraSequences())...)

	out = append(out, fromModes(EOR, map[AddressingMode]uint8{
		Immediate: 0x49, ZeroPage: 0x45, ZeroPageX: 0x55, Absolute: 0x4D,
		AbsoluteX: 0x5D, AbsoluteY: 0x59, IndirectX: 0x41, IndirectY: 0x51,
	}, eorSequences())...)

	out = append(out, v(ASL, Accumulator, 0x0A, aslAccumulatorSequence()))
	out = append(out, fromModes(ASL, map[AddressingMode]uint8{
		ZeroPage: 0x06, ZeroPageX: 0x16, Absolute: 0x0E, AbsoluteX: 0x1E,
	}, aslMemorySequences())...)

	out = append(out, v(LSR, Accumulator, 0x4A, lsrAccumulatorSequence()))
	out = append(out, fromModes(LSR, map[AddressingMode]uint8{
		ZeroPage: 0x46, ZeroPageX: 0x56, Absolute: 0x4E, AbsoluteX: 0x5E,
	}, lsrMemorySequences())...)

	out = append(out, v(ROL, Accumulator, 0x2A, rolAccumulatorSequence()))
	out = append(out, fromModes(ROL, map[AddressingMode]uint8{
		ZeroPage: 0x26, ZeroPageX: 0x36, Absolute: 0x2E, AbsoluteX: 0x3E,
	}, rolMemorySequences())...)

	out = append(out, v(ROR, Accumulator, 0x6A, rorAccumulatorSequence()))
	out = append(out, fromModes(ROR, map[AddressingMode]uint8{
		ZeroPage: 0x66, ZeroPageX: 0x76, Absolute: 0x6E, AbsoluteX: 0x7E,
	}, rorMemorySequences())...)

	out = append(out, v(CLC, Implied, 0x18, clearFlag(func(e *Engine, val bool) { e.Flags.Carry = val })))
	out = append(out, v(CLD, Implied, 0xD8, clearFlag(func(e *Engine, val bool) { e.Flags.Decimal = val })))
	out = append(out, v(CLI, Implied, 0x58, clearFlag(func(e *Engine, val bool) { e.Flags.InterruptDisable = val })))
	out = append(out, v(CLV, Implied, 0xB8, clearFlag(func(e *Engine, val bool) { e.Flags.Overflow = val })))
	out = append(out, v(SEC, Implied, 0x38, setFlag(func(e *Engine, val bool) { e.Flags.Carry = val })))
	out = append(out, v(SED, Implied, 0xF8, setFlag(func(e *Engine, val bool) { e.Flags.Decimal = val })))
	out = append(out, v(SEI, Implied, 0x78, setFlag(func(e *Engine, val bool) { e.Flags.InterruptDisable = val })))

	out = append(out, fromModes(CMP, map[AddressingMode]uint8{
		Immediate: 0xC9, ZeroPage: 0xC5, ZeroPageX: 0xD5, Absolute: 0xCD,
		AbsoluteX: 0xDD, AbsoluteY: 0xD9, IndirectX: 0xC1, IndirectY: 0xD1,
	}, cmpSequences(func(e *Engine) uint8 { return e.Reg.A }))...)

	out = append(out, fromModes(CPX, map[AddressingMode]uint8{
		Immediate: 0xE0, ZeroPage: 0xE4, Absolute: 0xEC,
	}, cpxySequences(func(e *Engine) uint8 { return e.Reg.X }))...)

	out = append(out, fromModes(CPY, map[AddressingMode]uint8{
		Immediate: 0xC0, ZeroPage: 0xC4, Absolute: 0xCC,
	}, cpxySequences(func(e *Engine) uint8 { return e.Reg.Y }))...)

	out = append(out, v(BCC, Relative, 0x90, branchSequence(func(e *Engine) bool { return !e.Flags.Carry })))
	out = append(out, v(BCS, Relative, 0xB0, branchSequence(func(e *Engine) bool { return e.Flags.Carry })))
	out = append(out, v(BEQ, Relative, 0xF0, branchSequence(func(e *Engine) bool { return e.Flags.Zero })))
	out = append(out, v(BMI, Relative, 0x30, branchSequence(func(e *Engine) bool { return e.Flags.Negative })))
	out = append(out, v(BNE, Relative, 0xD0, branchSequence(func(e *Engine) bool { return !e.Flags.Zero })))
	out = append(out, v(BPL, Relative, 0x10, branchSequence(func(e *Engine) bool { return !e.Flags.Negative })))
	out = append(out, v(BVC, Relative, 0x50, branchSequence(func(e *Engine) bool { return !e.Flags.Overflow })))
	out = append(out, v(BVS, Relative, 0x70, branchSequence(func(e *Engine) bool { return e.Flags.Overflow })))

	out = append(out, v(JMP, Absolute, 0x4C, jmpAbsoluteSequence()))
	out = append(out, v(JMP, Indirect, 0x6C, jmpIndirectSequence()))
	out = append(out, v(JSR, Absolute, 0x20, jsrSequence()))
	out = append(out, v(RTS, Implied, 0x60, rtsSequence()))

	out = append(out, v(BRK, Implied, 0x00, brkSequence()))
	out = append(out, v(RTI, Implied, 0x40, rtiSequence()))

	out = append(out, fromModes(BIT, map[AddressingMode]uint8{
		ZeroPage: 0x24, Absolute: 0x2C,
	}, bitSequences())...)

	out = append(out, v(NOP, Implied, 0xEA, nopSequence()))

	return out
}
