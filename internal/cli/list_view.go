package cli

import (
	"fmt"
	"strings"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/Flyrell/mealbook/internal/stats"
	"github.com/Flyrell/mealbook/internal/view"
	tea "github.com/charmbracelet/bubbletea"
)

// Lines used by the title, table header, separator and footer.
const listChromeLines = 5

// listModel is a scrollable record table.
type listModel struct {
	records    []meal.Record
	totals     stats.Totals
	offset     int
	termWidth  int
	termHeight int
}

func newListModel(records []meal.Record) listModel {
	return listModel{
		records:    records,
		totals:     stats.SumTotals(records),
		termWidth:  100,
		termHeight: 30,
	}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) visibleRows() int {
	rows := m.termHeight - listChromeLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m listModel) maxOffset() int {
	n := len(m.records) - m.visibleRows()
	if n < 0 {
		return 0
	}
	return n
}

func (m listModel) clampOffset() listModel {
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
	if m.offset < 0 {
		m.offset = 0
	}
	return m
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m = m.clampOffset()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m.offset++
		case "up", "k":
			m.offset--
		case "pgdown", " ", "f":
			m.offset += m.visibleRows()
		case "pgup", "b":
			m.offset -= m.visibleRows()
		case "home", "g":
			m.offset = 0
		case "end", "G":
			m.offset = m.maxOffset()
		}
		m = m.clampOffset()
	}
	return m, nil
}

func (m listModel) View() string {
	end := m.offset + m.visibleRows()
	if end > len(m.records) {
		end = len(m.records)
	}

	table := view.FormatTable(m.records[m.offset:end])

	var b strings.Builder
	b.WriteString(Title(statementsTitle))
	b.WriteString("\n")
	b.WriteString(table)
	b.WriteString(Silent(fmt.Sprintf("rows %d-%d of %d  total %d  (j/k scroll, q quit)",
		m.offset+1, end, len(m.records), m.totals.Grand)))
	return b.String()
}
