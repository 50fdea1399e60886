package element

import (
	"fmt"

	"github.com/ohowland/dccircuit/internal/pkg/bus"
)

// Resistor bridges two buses.
type Resistor struct {
	identity
	bus1 bus.ID
	bus2 bus.ID
	r    float64
	g    float64
}

// NewResistor returns a resistor with its conductance g = 1/r.
func NewResistor(name string, bus1, bus2 bus.ID, r float64) (Resistor, error) {
	if !(r > 0) || !finite(r) {
		return Resistor{}, fmt.Errorf("resistor %s: resistance must be positive, got %v: %w", name, r, ErrInvalidParameter)
	}

	id, err := newIdentity(name)
	if err != nil {
		return Resistor{}, err
	}

	return Resistor{
		identity: id,
		bus1:     bus1,
		bus2:     bus2,
		r:        r,
		g:        1.0 / r,
	}, nil
}

// R returns the resistance in ohms.
func (e Resistor) R() float64 {
	return e.r
}

// G returns the conductance in siemens.
func (e Resistor) G() float64 {
	return e.g
}

// Bus1 is the first terminal.
func (e Resistor) Bus1() bus.ID {
	return e.bus1
}

// Bus2 is the second terminal.
func (e Resistor) Bus2() bus.ID {
	return e.bus2
}
