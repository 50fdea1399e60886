package element

import (
	"fmt"

	"github.com/ohowland/dccircuit/internal/pkg/bus"
)

// Load is a fixed conductance from a bus to the common return, sized from a
// rated power at a reference voltage.
type Load struct {
	identity
	bus1 bus.ID
	p    float64
	v    float64
	g    float64
}

// NewLoad returns a load with its conductance g = p/v².
func NewLoad(name string, bus1 bus.ID, p, v float64) (Load, error) {
	if v == 0 || !finite(p, v) {
		return Load{}, fmt.Errorf("load %s: reference voltage must be non-zero, got %v: %w", name, v, ErrInvalidParameter)
	}

	id, err := newIdentity(name)
	if err != nil {
		return Load{}, err
	}

	return Load{
		identity: id,
		bus1:     bus1,
		p:        p,
		v:        v,
		g:        p / (v * v),
	}, nil
}

// P returns the rated power in watts.
func (e Load) P() float64 {
	return e.p
}

// V returns the reference voltage.
func (e Load) V() float64 {
	return e.v
}

// G returns the conductance in siemens.
func (e Load) G() float64 {
	return e.g
}

// Bus1 is the bus the load draws from.
func (e Load) Bus1() bus.ID {
	return e.bus1
}

// Bus2 is the implicit return.
func (e Load) Bus2() bus.ID {
	return bus.None
}
