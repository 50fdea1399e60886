package hmi

import (
	"strings"
	"testing"

	"github.com/ohowland/dccircuit/internal/pkg/circuit"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func solvedStatus() circuit.Status {
	return circuit.Status{
		Name:    "TEST_Simple DC Circuit",
		Current: 10,
		Buses: []circuit.BusStatus{
			{Name: "A", Volts: 100},
			{Name: "B", Volts: 50},
		},
	}
}

func TestSummary(t *testing.T) {
	out := Summary(solvedStatus())

	assert.Assert(t, is.Contains(out, "TEST_Simple DC Circuit"))
	assert.Assert(t, is.Contains(out, "Bus A"))
	assert.Assert(t, is.Contains(out, "100.0000 V"))
	assert.Assert(t, is.Contains(out, "50.0000 V"))
	assert.Assert(t, is.Contains(out, "10.0000 A"))

	// bus rows keep insertion order.
	assert.Assert(t, strings.Index(out, "Bus A") < strings.Index(out, "Bus B"))
}

func TestTable(t *testing.T) {
	table := Table(solvedStatus())

	assert.Equal(t, table.GetRowCount(), 4)
	assert.Equal(t, table.GetColumnCount(), 2)

	assert.Equal(t, table.GetCell(0, 0).Text, "Bus")
	assert.Equal(t, table.GetCell(1, 0).Text, "A")
	assert.Equal(t, table.GetCell(1, 1).Text, "100.0000")
	assert.Equal(t, table.GetCell(2, 0).Text, "B")
	assert.Equal(t, table.GetCell(2, 1).Text, "50.0000")
	assert.Equal(t, table.GetCell(3, 1).Text, "10.0000")
}

func TestTableNoBuses(t *testing.T) {
	table := Table(circuit.Status{Name: "TEST_Empty"})

	assert.Equal(t, table.GetRowCount(), 2)
	assert.Equal(t, table.GetCell(1, 1).Text, "0.0000")
}
