// Package bus defines the contract the execution engine consumes: a
// fallible byte-addressed read/write surface plus the handful of
// signals (tick, IRQ, NMI) a device map needs to stay in sync with
// the CPU. It also ships a minimal RAM device and an address router,
// since the engine has to be exercised against something concrete in
// tests and examples even though routing and device implementations
// sit outside the instruction-execution core.
package bus

// Device is anything the engine (or a router in front of several
// devices) can read from and write to. Tick lets a device advance any
// internal state it owns once per cycle; CheckIRQ/CheckNMI expose
// level-triggered interrupt lines a frontend may poll between
// instructions. The 151-entry instruction set in this module does not
// poll them itself beyond BRK, which never consults CheckIRQ/CheckNMI
// at all since BRK is a software interrupt.
type Device interface {
	// Read returns the byte at addr, or an error if addr can't be
	// satisfied (out of range, write-only, device-specific rejection).
	Read(addr uint16) (uint8, error)
	// Write stores val at addr, or returns an error (out of range,
	// read-only, device-specific rejection).
	Write(addr uint16, val uint8) error
	// Tick notifies the device that one clock cycle elapsed.
	Tick()
	// CheckIRQ reports whether this device is currently holding the
	// IRQ line low.
	CheckIRQ() bool
	// CheckNMI reports whether this device is currently holding the
	// NMI line low.
	CheckNMI() bool
}
