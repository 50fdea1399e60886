package circuit

import (
	"errors"
	"os"
	"testing"

	"github.com/ohowland/dccircuit/internal/pkg/element"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestLoadJSON(t *testing.T) {
	c, err := Load("./circuit_test_config.json")
	assert.NilError(t, err)

	assert.Equal(t, c.Name(), "TEST_Simple DC Circuit")
	assert.Assert(t, is.Len(c.Buses(), 2))
	assert.Assert(t, is.Len(c.Resistors(), 1))
	assert.Assert(t, is.Len(c.Loads(), 1))

	vs, ok := c.VSource()
	assert.Assert(t, ok)
	assert.Equal(t, vs.V(), 100.0)

	v, err := c.BusVoltage("A")
	assert.NilError(t, err)
	assert.Equal(t, v, 100.0)
}

func TestLoadYAML(t *testing.T) {
	c, err := Load("./circuit_test_config.yaml")
	assert.NilError(t, err)

	assert.Equal(t, c.Name(), "TEST_Multi Load Circuit")
	loads := c.Loads()
	assert.Assert(t, is.Len(loads, 2))
	assert.Equal(t, loads[0].Name(), "Lb1")
	assert.Equal(t, loads[1].Name(), "Lb2")

	b, _ := c.Bus("B")
	assert.Equal(t, loads[1].Bus1(), b)
}

func TestJSONAndYAMLAgree(t *testing.T) {
	jsonConfig, err := os.ReadFile("./circuit_test_config.json")
	assert.NilError(t, err)
	fromJSON, err := ParseConfig(jsonConfig, JSON)
	assert.NilError(t, err)

	yamlConfig := []byte(`
name: TEST_Simple DC Circuit
buses: [A, B]
vsource: {name: Va, bus: A, volts: 100}
resistors:
  - {name: Rab, bus1: A, bus2: B, ohms: 5}
loads:
  - {name: Lb, bus: B, watts: 2000, volts: 100}
`)
	fromYAML, err := ParseConfig(yamlConfig, YAML)
	assert.NilError(t, err)

	assert.DeepEqual(t, fromJSON, fromYAML)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("circuit.json")
	assert.NilError(t, err)
	assert.Equal(t, f, JSON)

	f, err = FormatOf("circuit.YML")
	assert.NilError(t, err)
	assert.Equal(t, f, YAML)

	_, err = FormatOf("circuit.toml")
	assert.ErrorContains(t, err, "unsupported circuit definition")
}

func TestParseConfigRejectsUnknownYAMLField(t *testing.T) {
	_, err := ParseConfig([]byte("name: x\nresistance: 5\n"), YAML)
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestBuildUnknownBus(t *testing.T) {
	cfg := Config{
		Name:  "TEST_Bad",
		Buses: []string{"A"},
		Resistors: []ResistorConfig{
			{Name: "Rab", Bus1: "A", Bus2: "B", Ohms: 5},
		},
	}

	_, err := Build(cfg)
	assert.Assert(t, errors.Is(err, ErrUnknownBus))
	assert.ErrorContains(t, err, "bus B")
}

func TestBuildDuplicateBus(t *testing.T) {
	_, err := Build(Config{Name: "TEST_Bad", Buses: []string{"A", "A"}})
	assert.Assert(t, errors.Is(err, ErrDuplicateKey))
}

func TestBuildInvalidResistance(t *testing.T) {
	cfg := Config{
		Name:      "TEST_Bad",
		Buses:     []string{"A", "B"},
		Resistors: []ResistorConfig{{Name: "Rab", Bus1: "A", Bus2: "B"}},
	}

	_, err := Build(cfg)
	assert.Assert(t, errors.Is(err, element.ErrInvalidParameter))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("./does_not_exist.json")
	assert.Assert(t, err != nil)
}
