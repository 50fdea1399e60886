package element

import (
	"fmt"

	"github.com/ohowland/dccircuit/internal/pkg/bus"
)

// VSource is an ideal DC voltage source energizing a single bus.
type VSource struct {
	identity
	bus1 bus.ID
	v    float64
}

// NewVSource returns a voltage source. Energizing the bus is the job of the
// circuit that wires it.
func NewVSource(name string, bus1 bus.ID, v float64) (VSource, error) {
	if !finite(v) {
		return VSource{}, fmt.Errorf("vsource %s: voltage must be finite, got %v: %w", name, v, ErrInvalidParameter)
	}

	id, err := newIdentity(name)
	if err != nil {
		return VSource{}, err
	}

	return VSource{id, bus1, v}, nil
}

// V returns the source voltage.
func (e VSource) V() float64 {
	return e.v
}

// Bus1 is the energized bus.
func (e VSource) Bus1() bus.ID {
	return e.bus1
}
