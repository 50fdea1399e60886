// Package hmi presents solved circuit state to an operator, either as a
// styled text summary or as an interactive terminal table.
package hmi

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ohowland/dccircuit/internal/pkg/circuit"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Width(12)
	valueStyle = lipgloss.NewStyle().Align(lipgloss.Right).Width(14)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
)

// Summary renders bus voltages and the circuit current.
func Summary(s circuit.Status) string {
	rows := make([]string, 0, len(s.Buses)+1)
	for _, b := range s.Buses {
		rows = append(rows, row("Bus "+b.Name, fmt.Sprintf("%.4f V", b.Volts)))
	}
	rows = append(rows, row("Current", fmt.Sprintf("%.4f A", s.Current)))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(s.Name),
		boxStyle.Render(strings.Join(rows, "\n")),
	)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}
