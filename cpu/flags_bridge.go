package cpu

import "github.com/chacon6502/core6502/flags"

// unpackFlags decodes a status byte pulled from the stack (PLP, RTI),
// wrapping a malformed byte (bit 5 clear, which never happens via the
// public API but can happen against hand-built test memory) as a cpu.Error.
func unpackFlags(b uint8) (flags.Flags, error) {
	f, err := flags.Unpack(b)
	if err != nil {
		return flags.Flags{}, &Error{Kind: Other, Detail: err.Error()}
	}
	return f, nil
}
