package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
)

// SampleMsg carries one recorded sample into the live view.
type SampleMsg struct {
	Index  int
	T      float64
	Values []float64
}

// DoneMsg signals the trajectory finished.
type DoneMsg struct{}

// Forwarder adapts a bubbletea program to the trajectory Observer
// interface, pushing each sample into the running view.
type Forwarder struct {
	p *tea.Program
}

func NewForwarder(p *tea.Program) *Forwarder { return &Forwarder{p: p} }

func (f *Forwarder) OnSample(index int, t float64, values []float64) {
	vals := make([]float64, len(values))
	copy(vals, values)
	f.p.Send(SampleMsg{Index: index, T: t, Values: vals})
}

// LiveModel is a bubbletea model that plots observable series as samples
// stream in from a running trajectory.
type LiveModel struct {
	title  string
	names  []string
	series [][]float64
	t      float64
	count  int
	done   bool
	width  int
}

func NewLiveModel(title string, names []string) LiveModel {
	return LiveModel{
		title:  title,
		names:  names,
		series: make([][]float64, len(names)),
		width:  plotWidth,
	}
}

func (m LiveModel) Init() tea.Cmd { return nil }

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.width = msg.Width - 10
			if m.width > plotWidth {
				m.width = plotWidth
			}
		}
	case SampleMsg:
		for i := range m.series {
			if i < len(msg.Values) {
				m.series[i] = append(m.series[i], msg.Values[i])
			}
		}
		m.t = msg.T
		m.count++
	case DoneMsg:
		m.done = true
	}
	return m, nil
}

func (m LiveModel) View() string {
	var b strings.Builder

	status := StatusRunning.Render("running")
	if m.done {
		status = StatusDone.Render("done")
	}
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(status)
	b.WriteString(LabelStyle.Render(fmt.Sprintf("  t=%.3f  samples=%d", m.t, m.count)))
	b.WriteString("\n\n")

	for i, name := range m.names {
		if len(m.series[i]) < 2 {
			continue
		}
		graph := asciigraph.Plot(m.series[i],
			asciigraph.Height(8),
			asciigraph.Width(m.width),
			asciigraph.Caption(name),
		)
		b.WriteString(PanelStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(KeyHint.Render("q to quit"))
	b.WriteString("\n")
	return b.String()
}
