/*
powerflow.go Steady-state solution of a series DC circuit. Every resistor and
load is treated as one series chain between the source bus and the common
return; all loads share a single downstream bus voltage.
*/

package powerflow

import (
	"errors"
	"fmt"
	"math"

	"github.com/ohowland/dccircuit/internal/pkg/circuit"
	"github.com/ohowland/dccircuit/internal/pkg/element"
)

var (
	// ErrEmptyCircuit is returned when there is no resistor or load to solve.
	ErrEmptyCircuit = errors.New("circuit must contain at least one resistor or load")
	// ErrNoSource is returned when the circuit has no voltage source.
	ErrNoSource = errors.New("circuit has no voltage source")
)

// Solution solves a circuit in place.
type Solution struct {
	circuit *circuit.Circuit
}

// New returns a Solution bound to c.
func New(c *circuit.Circuit) Solution {
	return Solution{circuit: c}
}

// Solve runs a single power flow against c.
func Solve(c *circuit.Circuit) error {
	return New(c).DoPowerFlow()
}

// SeriesResistance sums the chain end to end: Σ(1/g).
func SeriesResistance(elements ...element.Conductor) float64 {
	var r float64
	for _, e := range elements {
		r += 1 / e.G()
	}
	return r
}

// SeriesConductance combines conductances end to end: 1 / Σ(1/g).
func SeriesConductance(elements ...element.Conductor) float64 {
	return 1 / SeriesResistance(elements...)
}

// DoPowerFlow computes the circuit current and the bus voltages and writes
// them back to the circuit. Only resistors contribute to the voltage drop
// between the source bus and the load bus. Nothing is written if the solve
// fails.
func (s Solution) DoPowerFlow() error {
	c := s.circuit
	if c == nil {
		return errors.New("power flow: nil circuit")
	}

	resistors := c.Resistors()
	loads := c.Loads()

	chain := make([]element.Conductor, 0, len(resistors)+len(loads))
	for _, r := range resistors {
		chain = append(chain, r)
	}
	for _, l := range loads {
		chain = append(chain, l)
	}

	if len(chain) == 0 {
		return fmt.Errorf("power flow %s: %w", c.Name(), ErrEmptyCircuit)
	}

	vs, ok := c.VSource()
	if !ok {
		return fmt.Errorf("power flow %s: %w", c.Name(), ErrNoSource)
	}

	totalR := SeriesResistance(chain...)
	if totalR == 0 || math.IsNaN(totalR) {
		return fmt.Errorf("power flow %s: series resistance is %v: %w", c.Name(), totalR, circuit.ErrInvalidValue)
	}
	totalG := 1 / totalR

	current := vs.V() * totalG
	if math.IsInf(current, 0) || math.IsNaN(current) {
		return fmt.Errorf("power flow %s: current is %v: %w", c.Name(), current, circuit.ErrInvalidValue)
	}
	if err := c.SetCurrent(current); err != nil {
		return fmt.Errorf("power flow %s: %w", c.Name(), err)
	}

	var vDrop float64
	for _, r := range resistors {
		vDrop += current / r.G()
	}
	vBusB := vs.V() - vDrop

	if err := c.SetBusVolts(vs.Bus1(), vs.V()); err != nil {
		return err
	}

	for _, l := range loads {
		if err := c.SetBusVolts(l.Bus1(), vBusB); err != nil {
			return err
		}
	}

	return nil
}
