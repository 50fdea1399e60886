package circuit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohowland/dccircuit/internal/pkg/bus"
	"gopkg.in/yaml.v3"
)

// Config describes a circuit to assemble. Buses are created first, then the
// source, resistors and loads in that order.
type Config struct {
	Name      string           `json:"Name" yaml:"name"`
	Buses     []string         `json:"Buses" yaml:"buses"`
	VSource   *VSourceConfig   `json:"VSource" yaml:"vsource"`
	Resistors []ResistorConfig `json:"Resistors" yaml:"resistors"`
	Loads     []LoadConfig     `json:"Loads" yaml:"loads"`
}

// VSourceConfig describes the voltage source.
type VSourceConfig struct {
	Name  string  `json:"Name" yaml:"name"`
	Bus   string  `json:"Bus" yaml:"bus"`
	Volts float64 `json:"Volts" yaml:"volts"`
}

// ResistorConfig describes a series resistor.
type ResistorConfig struct {
	Name string  `json:"Name" yaml:"name"`
	Bus1 string  `json:"Bus1" yaml:"bus1"`
	Bus2 string  `json:"Bus2" yaml:"bus2"`
	Ohms float64 `json:"Ohms" yaml:"ohms"`
}

// LoadConfig describes a load rated at P watts for a reference voltage.
type LoadConfig struct {
	Name  string  `json:"Name" yaml:"name"`
	Bus   string  `json:"Bus" yaml:"bus"`
	Watts float64 `json:"Watts" yaml:"watts"`
	Volts float64 `json:"Volts" yaml:"volts"`
}

// Format of a circuit definition.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf infers the definition format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported circuit definition %s", path)
}

// ParseConfig decodes a circuit definition.
func ParseConfig(data []byte, format Format) (Config, error) {
	cfg := Config{}
	switch format {
	case JSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported format %q", format)
	}
	return cfg, nil
}

// Load reads a circuit definition file and assembles the circuit.
func Load(configPath string) (*Circuit, error) {
	format, err := FormatOf(configPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg, err := ParseConfig(data, format)
	if err != nil {
		return nil, err
	}

	c, err := Build(cfg)
	if err != nil {
		return nil, err
	}

	log.Printf("[Config] Loaded circuit %q from %s: %d buses, %d resistors, %d loads",
		c.Name(), configPath, len(c.buses), len(c.resistors), len(c.loads))
	return c, nil
}

// Build assembles a circuit from a decoded definition.
func Build(cfg Config) (*Circuit, error) {
	c, err := New(cfg.Name)
	if err != nil {
		return nil, err
	}

	for _, name := range cfg.Buses {
		if _, err := c.AddBus(name); err != nil {
			return nil, err
		}
	}

	if vs := cfg.VSource; vs != nil {
		id, err := c.lookup(vs.Name, vs.Bus)
		if err != nil {
			return nil, err
		}
		if err := c.AddVSource(vs.Name, id, vs.Volts); err != nil {
			return nil, err
		}
	}

	for _, r := range cfg.Resistors {
		id1, err := c.lookup(r.Name, r.Bus1)
		if err != nil {
			return nil, err
		}
		id2, err := c.lookup(r.Name, r.Bus2)
		if err != nil {
			return nil, err
		}
		if _, err := c.AddResistor(r.Name, id1, id2, r.Ohms); err != nil {
			return nil, err
		}
	}

	for _, l := range cfg.Loads {
		id, err := c.lookup(l.Name, l.Bus)
		if err != nil {
			return nil, err
		}
		if _, err := c.AddLoad(l.Name, id, l.Watts, l.Volts); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c Circuit) lookup(elementName, busName string) (bus.ID, error) {
	id, ok := c.busIndex[busName]
	if !ok {
		return bus.None, fmt.Errorf("element %s: bus %s: %w", elementName, busName, ErrUnknownBus)
	}
	return id, nil
}
