package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ohowland/dccircuit/internal/pkg/circuit"
	"github.com/ohowland/dccircuit/internal/pkg/hmi"
	"github.com/ohowland/dccircuit/internal/pkg/powerflow"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("[Main] %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("dccircuit", flag.ContinueOnError)
	configPath := fs.String("config", "./config/circuit/simple_dc.json", "circuit definition (.json, .yaml)")
	format := fs.String("format", "text", "output format: text, summary or json")
	interactive := fs.Bool("hmi", false, "show results in an interactive table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log.Println("[Main] Building Circuit")
	c, err := circuit.Load(*configPath)
	if err != nil {
		return err
	}

	log.Println("[Main] Solving Power Flow")
	if err := powerflow.New(c).DoPowerFlow(); err != nil {
		return err
	}

	if *interactive {
		return hmi.Run(c.Status())
	}
	return report(c, *format, stdout)
}

func report(c *circuit.Circuit, format string, w io.Writer) error {
	switch format {
	case "text":
		if err := c.ReportVoltages(w); err != nil {
			return err
		}
		return c.ReportCurrent(w)
	case "summary":
		_, err := fmt.Fprintln(w, hmi.Summary(c.Status()))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c.Status())
	}
	return fmt.Errorf("unknown output format %q", format)
}
