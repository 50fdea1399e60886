package circuit

import "errors"

var (
	// ErrDuplicateKey is returned when a bus or element name is already registered.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnknownBus is returned when an element references a bus the circuit does not own.
	ErrUnknownBus = errors.New("unknown bus reference")
	// ErrInvalidValue is returned when a circuit quantity violates its sign convention.
	ErrInvalidValue = errors.New("invalid value")
)
