/*
bus.go Representation of a single DC circuit bus. A bus is a named node
holding one voltage. Elements reference buses through an ID handle issued by
the circuit that owns them.
*/

package bus

import (
	"errors"

	"github.com/google/uuid"
)

// ID is a handle into the bus arena of the owning circuit.
type ID int

// None is the zero handle; no bus is ever issued this ID.
const None ID = -1

// Bus represents a single electrical DC bus.
type Bus struct {
	pid    uuid.UUID
	name   string
	status Status
}

// Status is the mutable state of a bus.
type Status struct {
	Volts float64 `json:"Volts"`
}

// New returns a de-energized bus.
func New(name string) (*Bus, error) {
	if name == "" {
		return nil, errors.New("bus name cannot be empty")
	}

	pid, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}

	return &Bus{
		pid:    pid,
		name:   name,
		status: Status{},
	}, nil
}

// Name is an accessor for the bus's configured name.
func (b Bus) Name() string {
	return b.name
}

// PID is an accessor for the bus's process id.
func (b Bus) PID() uuid.UUID {
	return b.pid
}

// Volts returns the present bus voltage.
func (b Bus) Volts() float64 {
	return b.status.Volts
}

// SetVolts overwrites the bus voltage. Any value is accepted; voltage is set
// by source attachment or by the power flow solver, never by user input.
func (b *Bus) SetVolts(v float64) {
	b.status.Volts = v
}

// Status is an accessor for the bus status.
func (b Bus) Status() Status {
	return b.status
}
