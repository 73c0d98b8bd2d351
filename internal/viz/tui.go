// Package viz is the interactive terminal front-end. It edits one
// decision record per period and calls the engine synchronously from its
// own event handling; the engine itself has no event-loop dependency.
package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/brand-d/tailorshop/internal/engine"
	"github.com/brand-d/tailorshop/internal/shop"
)

// field is one editable decision with its increment step.
type field struct {
	name string
	step float64
	get  func(d *shop.Decisions) float64
	set  func(d *shop.Decisions, v float64)
}

func decisionFields() []field {
	intField := func(get func(d *shop.Decisions) *int) (func(*shop.Decisions) float64, func(*shop.Decisions, float64)) {
		return func(d *shop.Decisions) float64 { return float64(*get(d)) },
			func(d *shop.Decisions, v float64) { *get(d) = int(v) }
	}
	hireGet, hireSet := intField(func(d *shop.Decisions) *int { return &d.HireWorkers })
	buyGet, buySet := intField(func(d *shop.Decisions) *int { return &d.BuyMachines })

	return []field{
		{"price", 2,
			func(d *shop.Decisions) float64 { return d.Price },
			func(d *shop.Decisions, v float64) { d.Price = v }},
		{"material order", 50,
			func(d *shop.Decisions) float64 { return d.MaterialOrder },
			func(d *shop.Decisions, v float64) { d.MaterialOrder = v }},
		{"advertising", 100,
			func(d *shop.Decisions) float64 { return d.Advertising },
			func(d *shop.Decisions, v float64) { d.Advertising = v }},
		{"wage", 100,
			func(d *shop.Decisions) float64 { return d.Wage },
			func(d *shop.Decisions, v float64) { d.Wage = v }},
		{"hire workers", 1, hireGet, hireSet},
		{"buy machines", 1, buyGet, buySet},
		{"maintenance", 100,
			func(d *shop.Decisions) float64 { return d.Maintenance },
			func(d *shop.Decisions, v float64) { d.Maintenance = v }},
	}
}

// Model is the bubbletea model wrapping one engine run.
type Model struct {
	engine    *engine.Engine
	decisions shop.Decisions
	fields    []field
	cursor    int
	graphVar  int
	width     int
	err       error
}

var graphVars = []struct {
	name  string
	value func(s *shop.State) float64
}{
	{"cash", func(s *shop.State) float64 { return s.Cash }},
	{"units sold", func(s *shop.State) float64 { return s.UnitsSold }},
	{"finished stock", func(s *shop.State) float64 { return s.FinishedStock }},
	{"profit", func(s *shop.State) float64 { return s.Profit }},
	{"company value", func(s *shop.State) float64 { return s.CompanyValue }},
}

func NewModel(e *engine.Engine, opening shop.Decisions) Model {
	return Model{
		engine:    e,
		decisions: opening,
		fields:    decisionFields(),
		width:     100,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "left", "h":
		f := m.fields[m.cursor]
		f.set(&m.decisions, f.get(&m.decisions)-f.step)
	case "right", "l":
		f := m.fields[m.cursor]
		f.set(&m.decisions, f.get(&m.decisions)+f.step)
	case "tab":
		m.graphVar = (m.graphVar + 1) % len(graphVars)
	case "enter", " ":
		if m.engine.Closed() {
			break
		}
		_, err := m.engine.Advance(m.decisions)
		m.err = err
		// deltas are one-shot decisions, spending carries over
		m.decisions.HireWorkers = 0
		m.decisions.BuyMachines = 0
	case "c":
		m.engine.Close()
	}
	return m, nil
}

func (m Model) View() string {
	s := m.engine.Current()

	var b strings.Builder
	title := fmt.Sprintf("tailorshop — period %d", s.Period)
	if m.engine.Closed() {
		title += closedStyle.Render("  [closed]")
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	left := m.renderDecisions()
	right := m.renderState(&s)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, panelStyle.Render(right)))

	b.WriteString(m.renderGraph())
	b.WriteString(m.renderWarnings(&s))

	if m.err != nil {
		b.WriteString("\n" + closedStyle.Render(m.err.Error()))
	}
	b.WriteString(helpStyle.Render("\n↑/↓ field · ←/→ adjust · enter advance · tab graph · c close · q quit"))
	return b.String()
}

func (m Model) renderDecisions() string {
	var b strings.Builder
	b.WriteString(valueStyle.Render("decisions") + "\n")
	for i, f := range m.fields {
		line := fmt.Sprintf("%s%s", labelStyle.Render(f.name), valueStyle.Render(fmt.Sprintf("%8.0f", f.get(&m.decisions))))
		if i == m.cursor {
			line = activeStyle.Render(fmt.Sprintf("%-18s%8.0f", f.name, f.get(&m.decisions)))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) renderState(s *shop.State) string {
	rows := []struct {
		label string
		value string
	}{
		{"cash", fmt.Sprintf("%.0f", s.Cash)},
		{"company value", fmt.Sprintf("%.0f", s.CompanyValue)},
		{"revenue / cost", fmt.Sprintf("%.0f / %.0f", s.Revenue, s.Cost)},
		{"profit", fmt.Sprintf("%.0f", s.Profit)},
		{"material stock", fmt.Sprintf("%.0f (price %.0f)", s.MaterialStock, s.MaterialPrice)},
		{"finished stock", fmt.Sprintf("%.0f", s.FinishedStock)},
		{"produced / sold", fmt.Sprintf("%.0f / %.0f", s.UnitsProduced, s.UnitsSold)},
		{"demand", fmt.Sprintf("%.0f", s.Demand)},
		{"workers", fmt.Sprintf("%d (motivation %.0f%%)", s.Workers, s.Motivation)},
		{"machines", fmt.Sprintf("%d (wear %.0f%%)", s.Machines, s.Wear)},
		{"awareness", fmt.Sprintf("%.0f", s.Awareness)},
	}

	var b strings.Builder
	b.WriteString(valueStyle.Render("state") + "\n")
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label) + valueStyle.Render(row.value) + "\n")
	}
	return b.String()
}

func (m Model) renderGraph() string {
	history := m.engine.History()
	if len(history) < 2 {
		return ""
	}
	gv := graphVars[m.graphVar]
	data := make([]float64, len(history))
	for i := range history {
		data[i] = gv.value(&history[i])
	}
	width := min(m.width-12, 80)
	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Caption(gv.name+" by period"),
	)
	return graphStyle.Render(graph)
}

func (m Model) renderWarnings(s *shop.State) string {
	if len(s.Warnings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, w := range s.Warnings {
		b.WriteString(warningStyle.Render("⚠ "+w.String()) + "\n")
	}
	return b.String()
}

// Run starts the interactive TUI on a fresh engine.
func Run(e *engine.Engine, opening shop.Decisions) error {
	p := tea.NewProgram(NewModel(e, opening))
	_, err := p.Run()
	return err
}
