package bus

import "fmt"

// Error is the closed set of failures a Device can surface. The
// engine never inspects these beyond propagating them to its caller;
// they exist so a frontend can distinguish "no device there" from
// "device rejected the access" when deciding how to react.
type Error struct {
	Kind    ErrorKind
	Address uint16
	Detail  string
}

// ErrorKind enumerates the ways a bus access can fail.
type ErrorKind int

const (
	// AddressOutOfRange means no device claims this address.
	AddressOutOfRange ErrorKind = iota
	// ReadOnly means a write landed on a read-only region (ROM).
	ReadOnly
	// WriteOnly means a read landed on a write-only region.
	WriteOnly
	// DeviceNotFound means a device was expected but is absent.
	DeviceNotFound
	// InvalidData means the device rejected the payload.
	InvalidData
	// Other is a free-form failure not covered above.
	Other
)

func (e *Error) Error() string {
	switch e.Kind {
	case AddressOutOfRange:
		return fmt.Sprintf("address out of range: %#04x", e.Address)
	case ReadOnly:
		return fmt.Sprintf("read-only: %#04x", e.Address)
	case WriteOnly:
		return fmt.Sprintf("write-only: %#04x", e.Address)
	case DeviceNotFound:
		return fmt.Sprintf("device not found: %#04x", e.Address)
	case InvalidData:
		return fmt.Sprintf("invalid data at %#04x", e.Address)
	default:
		if e.Detail != "" {
			return e.Detail
		}
		return fmt.Sprintf("bus error at %#04x", e.Address)
	}
}

// OutOfRange builds an AddressOutOfRange Error for addr.
func OutOfRange(addr uint16) error { return &Error{Kind: AddressOutOfRange, Address: addr} }

// ReadOnlyErr builds a ReadOnly Error for addr.
func ReadOnlyErr(addr uint16) error { return &Error{Kind: ReadOnly, Address: addr} }

// WriteOnlyErr builds a WriteOnly Error for addr.
func WriteOnlyErr(addr uint16) error { return &Error{Kind: WriteOnly, Address: addr} }

// NotFound builds a DeviceNotFound Error for addr.
func NotFound(addr uint16) error { return &Error{Kind: DeviceNotFound, Address: addr} }

// Otherf builds a free-form Other Error.
func Otherf(format string, args ...interface{}) error {
	return &Error{Kind: Other, Detail: fmt.Sprintf(format, args...)}
}
