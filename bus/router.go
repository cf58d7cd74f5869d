package bus

import "github.com/chacon6502/core6502/irq"

// entry pairs an address range with the device that owns it. The
// range is inclusive on both ends.
type entry struct {
	start, end uint16
	device     Device
}

// Router maps address ranges onto Devices and itself implements
// Device, so the engine can be handed a Router wherever a single
// Device is expected. This mirrors the role the out-of-scope bus
// router plays relative to the core: something has to own the address
// map, but the engine only ever sees it through the Device contract.
//
// Some interrupt sources (a timer, a frame counter) raise IRQ or NMI
// without being memory-mapped at all; RegisterIRQSource and
// RegisterNMISource let those participate in CheckIRQ/CheckNMI
// alongside the address-mapped devices.
type Router struct {
	entries    []entry
	irqSources []irq.Sender
	nmiSources []irq.Sender
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{}
}

// Register claims [start, end] for device. It fails if the range
// overlaps one already registered.
func (r *Router) Register(start, end uint16, device Device) error {
	if end < start {
		return Otherf("invalid range: end %#04x before start %#04x", end, start)
	}
	for _, e := range r.entries {
		if start <= e.end && e.start <= end {
			return Otherf("range %#04x-%#04x overlaps existing %#04x-%#04x", start, end, e.start, e.end)
		}
	}
	r.entries = append(r.entries, entry{start: start, end: end, device: device})
	return nil
}

// RegisterIRQSource adds an interrupt source that is not itself
// address-mapped but should still be consulted by CheckIRQ.
func (r *Router) RegisterIRQSource(s irq.Sender) {
	r.irqSources = append(r.irqSources, s)
}

// RegisterNMISource adds an interrupt source that is not itself
// address-mapped but should still be consulted by CheckNMI.
func (r *Router) RegisterNMISource(s irq.Sender) {
	r.nmiSources = append(r.nmiSources, s)
}

func (r *Router) find(addr uint16) Device {
	for _, e := range r.entries {
		if addr >= e.start && addr <= e.end {
			return e.device
		}
	}
	return nil
}

// Read implements Device.
func (r *Router) Read(addr uint16) (uint8, error) {
	d := r.find(addr)
	if d == nil {
		return 0, OutOfRange(addr)
	}
	return d.Read(addr)
}

// Write implements Device.
func (r *Router) Write(addr uint16, val uint8) error {
	d := r.find(addr)
	if d == nil {
		return OutOfRange(addr)
	}
	return d.Write(addr, val)
}

// Tick implements Device, forwarding to every registered device.
func (r *Router) Tick() {
	for _, e := range r.entries {
		e.device.Tick()
	}
}

// CheckIRQ implements Device: true if any registered device or IRQ
// source asserts it.
func (r *Router) CheckIRQ() bool {
	for _, e := range r.entries {
		if e.device.CheckIRQ() {
			return true
		}
	}
	for _, s := range r.irqSources {
		if s.Raised() {
			return true
		}
	}
	return false
}

// CheckNMI implements Device: true if any registered device or NMI
// source asserts it.
func (r *Router) CheckNMI() bool {
	for _, e := range r.entries {
		if e.device.CheckNMI() {
			return true
		}
	}
	for _, s := range r.nmiSources {
		if s.Raised() {
			return true
		}
	}
	return false
}
