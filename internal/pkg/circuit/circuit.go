/*
circuit.go Aggregate of the buses and elements of a single DC circuit. The
circuit owns every bus in an arena; elements hold bus.ID handles into it.
*/

package circuit

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/ohowland/dccircuit/internal/pkg/bus"
	"github.com/ohowland/dccircuit/internal/pkg/element"
)

// Circuit is a DC circuit of one voltage source, series resistors and loads.
// A Circuit is not safe for concurrent use.
type Circuit struct {
	pid       uuid.UUID
	name      string
	buses     []*bus.Bus
	busIndex  map[string]bus.ID
	elements  map[string]struct{}
	resistors []element.Resistor
	loads     []element.Load
	vsource   *element.VSource
	current   float64
}

// New returns an empty circuit.
func New(name string) (*Circuit, error) {
	pid, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}

	return &Circuit{
		pid:      pid,
		name:     name,
		buses:    make([]*bus.Bus, 0),
		busIndex: make(map[string]bus.ID),
		elements: make(map[string]struct{}),
	}, nil
}

// Name is an accessor for the circuit's configured name.
func (c Circuit) Name() string {
	return c.name
}

// PID is an accessor for the circuit's process id.
func (c Circuit) PID() uuid.UUID {
	return c.pid
}

// AddBus creates a de-energized bus and returns its handle.
func (c *Circuit) AddBus(name string) (bus.ID, error) {
	if _, exists := c.busIndex[name]; exists {
		return bus.None, fmt.Errorf("bus %s already exists in circuit: %w", name, ErrDuplicateKey)
	}

	b, err := bus.New(name)
	if err != nil {
		return bus.None, err
	}

	id := bus.ID(len(c.buses))
	c.buses = append(c.buses, b)
	c.busIndex[name] = id
	return id, nil
}

// AddResistor wires a series resistor between two buses.
func (c *Circuit) AddResistor(name string, bus1, bus2 bus.ID, r float64) (element.Resistor, error) {
	if err := c.checkElement(name, bus1, bus2); err != nil {
		return element.Resistor{}, err
	}

	res, err := element.NewResistor(name, bus1, bus2, r)
	if err != nil {
		return element.Resistor{}, err
	}

	c.elements[name] = struct{}{}
	c.resistors = append(c.resistors, res)
	return res, nil
}

// AddLoad wires a load from a bus to the common return.
func (c *Circuit) AddLoad(name string, bus1 bus.ID, p, v float64) (element.Load, error) {
	if err := c.checkElement(name, bus1); err != nil {
		return element.Load{}, err
	}

	load, err := element.NewLoad(name, bus1, p, v)
	if err != nil {
		return element.Load{}, err
	}

	c.elements[name] = struct{}{}
	c.loads = append(c.loads, load)
	return load, nil
}

// AddVSource registers the circuit's voltage source and energizes its bus.
func (c *Circuit) AddVSource(name string, bus1 bus.ID, v float64) error {
	if c.vsource != nil {
		return fmt.Errorf("vsource %s: circuit already has source %s: %w", name, c.vsource.Name(), ErrDuplicateKey)
	}

	if err := c.checkElement(name, bus1); err != nil {
		return err
	}

	vs, err := element.NewVSource(name, bus1, v)
	if err != nil {
		return err
	}

	c.elements[name] = struct{}{}
	c.vsource = &vs
	c.buses[bus1].SetVolts(vs.V())
	return nil
}

// SetCurrent stores the circuit current. Negative or non-finite current is
// rejected.
func (c *Circuit) SetCurrent(i float64) error {
	if i < 0 || math.IsNaN(i) || math.IsInf(i, 0) {
		return fmt.Errorf("circuit current must be finite and non-negative, got %v: %w", i, ErrInvalidValue)
	}
	c.current = i
	return nil
}

// Current returns the circuit current in amps.
func (c Circuit) Current() float64 {
	return c.current
}

// Bus looks up a bus handle by name.
func (c Circuit) Bus(name string) (bus.ID, bool) {
	id, ok := c.busIndex[name]
	return id, ok
}

// BusVoltage returns the voltage of the named bus.
func (c Circuit) BusVoltage(name string) (float64, error) {
	id, ok := c.busIndex[name]
	if !ok {
		return 0, fmt.Errorf("bus %s: %w", name, ErrUnknownBus)
	}
	return c.buses[id].Volts(), nil
}

// SetBusVolts overwrites the voltage of the bus behind a handle.
func (c *Circuit) SetBusVolts(id bus.ID, v float64) error {
	if !c.hasBus(id) {
		return fmt.Errorf("bus id %d: %w", id, ErrUnknownBus)
	}
	c.buses[id].SetVolts(v)
	return nil
}

// Buses returns a snapshot of every bus in insertion order.
func (c Circuit) Buses() []bus.Bus {
	buses := make([]bus.Bus, len(c.buses))
	for i, b := range c.buses {
		buses[i] = *b
	}
	return buses
}

// Resistors returns the series resistors in insertion order.
func (c Circuit) Resistors() []element.Resistor {
	return append([]element.Resistor(nil), c.resistors...)
}

// Loads returns the loads in insertion order.
func (c Circuit) Loads() []element.Load {
	return append([]element.Load(nil), c.loads...)
}

// VSource returns the voltage source, if one is wired.
func (c Circuit) VSource() (element.VSource, bool) {
	if c.vsource == nil {
		return element.VSource{}, false
	}
	return *c.vsource, true
}

func (c Circuit) hasBus(id bus.ID) bool {
	return id >= 0 && int(id) < len(c.buses)
}

// checkElement validates an element's name and bus references before any
// registration takes place.
func (c Circuit) checkElement(name string, buses ...bus.ID) error {
	for _, id := range buses {
		if !c.hasBus(id) {
			return fmt.Errorf("element %s: bus id %d: %w", name, id, ErrUnknownBus)
		}
	}
	if _, exists := c.elements[name]; exists {
		return fmt.Errorf("element %s already exists in circuit: %w", name, ErrDuplicateKey)
	}
	return nil
}
