package hmi

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/ohowland/dccircuit/internal/pkg/circuit"
	"github.com/rivo/tview"
)

// Table lays out a solved circuit with one row per bus and a trailing
// current row.
func Table(s circuit.Status) *tview.Table {
	table := tview.NewTable().
		SetBorders(true).
		SetFixed(1, 0)

	header := []string{"Bus", "Volts"}
	for col, text := range header {
		table.SetCell(0, col, tview.NewTableCell(text).
			SetTextColor(tcell.ColorYellow).
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
	}

	for i, b := range s.Buses {
		table.SetCell(i+1, 0, tview.NewTableCell(b.Name).
			SetTextColor(tcell.ColorWhite))
		table.SetCell(i+1, 1, tview.NewTableCell(fmt.Sprintf("%.4f", b.Volts)).
			SetTextColor(tcell.ColorWhite).
			SetAlign(tview.AlignRight))
	}

	last := len(s.Buses) + 1
	table.SetCell(last, 0, tview.NewTableCell("Current (A)").
		SetTextColor(tcell.ColorBlue))
	table.SetCell(last, 1, tview.NewTableCell(fmt.Sprintf("%.4f", s.Current)).
		SetTextColor(tcell.ColorBlue).
		SetAlign(tview.AlignRight))

	table.SetBorder(true).SetTitle(" " + s.Name + " ")
	return table
}

// Run shows the table until the operator presses Escape, Enter or q.
func Run(s circuit.Status) error {
	app := tview.NewApplication()
	table := Table(s)
	table.SetDoneFunc(func(key tcell.Key) {
		app.Stop()
	})
	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(table, true).Run()
}
