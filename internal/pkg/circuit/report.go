package circuit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Status is a snapshot of the solved state of a circuit.
type Status struct {
	PID     uuid.UUID   `json:"PID"`
	Name    string      `json:"Name"`
	Current float64     `json:"Current"`
	Buses   []BusStatus `json:"Buses"`
}

// BusStatus is the voltage of a single bus.
type BusStatus struct {
	PID   uuid.UUID `json:"PID"`
	Name  string    `json:"Name"`
	Volts float64   `json:"Volts"`
}

// Status returns the current circuit state.
func (c Circuit) Status() Status {
	buses := make([]BusStatus, 0, len(c.buses))
	for _, b := range c.buses {
		buses = append(buses, BusStatus{
			PID:   b.PID(),
			Name:  b.Name(),
			Volts: b.Status().Volts,
		})
	}

	return Status{
		PID:     c.pid,
		Name:    c.name,
		Current: c.current,
		Buses:   buses,
	}
}

// ReportVoltages writes the voltage of every bus.
func (c Circuit) ReportVoltages(w io.Writer) error {
	for _, b := range c.buses {
		if _, err := fmt.Fprintf(w, "Bus %s: %s V\n", b.Name(), formatReading(b.Volts())); err != nil {
			return err
		}
	}
	return nil
}

// ReportCurrent writes the circuit current.
func (c Circuit) ReportCurrent(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Circuit Current: %s A\n", formatReading(c.current))
	return err
}

// formatReading prints the shortest exact form of v, always with a decimal
// point: 100 -> "100.0", 100/15 -> "6.666666666666667".
func formatReading(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}
