// Package element holds the circuit elements that connect buses: series
// resistors, constant-power loads and the voltage source.
package element

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/ohowland/dccircuit/internal/pkg/bus"
)

// ErrInvalidParameter is returned when an element is constructed with a value
// for which its conductance is undefined.
var ErrInvalidParameter = errors.New("invalid element parameter")

// Conductor is implemented by every element with a conductance.
type Conductor interface {
	Name() string
	PID() uuid.UUID
	G() float64
	Bus1() bus.ID
	Bus2() bus.ID
}

type identity struct {
	pid  uuid.UUID
	name string
}

func newIdentity(name string) (identity, error) {
	pid, err := uuid.NewUUID()
	if err != nil {
		return identity{}, err
	}
	return identity{pid, name}, nil
}

// Name is an accessor for the element's configured name.
func (id identity) Name() string {
	return id.name
}

// PID is an accessor for the element's process id.
func (id identity) PID() uuid.UUID {
	return id.pid
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
