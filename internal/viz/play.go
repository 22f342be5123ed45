package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/edgaromeroc/bioslurry-simulator/internal/metrics"
	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

const (
	maxSpeed   = 64
	graphWidth = 46
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model replays a precomputed trajectory like a tape deck.
type Model struct {
	params   reactor.Params
	traj     sim.Trajectory
	summary  *metrics.Summary
	playHead int
	speed    int // snapshots consumed per tick
	running  bool
	showHelp bool
}

func NewModel(p reactor.Params, traj sim.Trajectory, summary *metrics.Summary) Model {
	return Model{
		params:  p,
		traj:    traj,
		summary: summary,
		speed:   1,
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.playHead >= m.lastIndex() {
				m.playHead = 0
			}
			m.running = !m.running
		case "r":
			m.playHead = 0
			m.running = true
		case "[":
			m.running = false
			m.scrub(-1)
		case "]":
			m.running = false
			m.scrub(1)
		case "{":
			m.running = false
			m.scrub(-m.jumpSize())
		case "}":
			m.running = false
			m.scrub(m.jumpSize())
		case "+", "=":
			if m.speed < maxSpeed {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.playHead += m.speed
			if m.playHead >= m.lastIndex() {
				m.playHead = m.lastIndex()
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) scrub(delta int) {
	m.playHead += delta
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead > m.lastIndex() {
		m.playHead = m.lastIndex()
	}
}

func (m Model) lastIndex() int {
	if len(m.traj) == 0 {
		return 0
	}
	return len(m.traj) - 1
}

func (m Model) jumpSize() int {
	n := len(m.traj) / 10
	if n < 1 {
		n = 1
	}
	return n
}

func (m Model) View() string {
	if len(m.traj) == 0 {
		return "no trajectory to play\n"
	}

	snap := m.traj[m.playHead]

	status := StatusPaused.Render("PAUSED")
	if m.playHead >= m.lastIndex() {
		status = StatusDone.Render("DONE")
	} else if m.running {
		status = StatusRunning.Render(fmt.Sprintf("PLAYING x%d", m.speed))
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("BIOSLURRY GLYPHOSATE REACTOR") + "\n")
	s.WriteString(fmt.Sprintf("%s  day %.2f of %.0f\n", status, snap.TimeDays, m.params.Duration/24))

	if m.playHead > 0 {
		removal, _ := m.traj[:m.playHead+1].Column("removal")
		chart := asciigraph.Plot(removal,
			asciigraph.Height(6),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("removal %"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Time", fmt.Sprintf("%.1f h", snap.TimeHours)},
		{"Aqueous", fmt.Sprintf("%.3f mg/L", snap.Aqueous)},
		{"Sorbed", fmt.Sprintf("%.3f mg/kg", snap.Sorbed)},
		{"AMPA", fmt.Sprintf("%.3f mg/L", snap.AMPA)},
		{"Biomass", fmt.Sprintf("%.3f mg/L", snap.Biomass)},
		{"Total", fmt.Sprintf("%.3f mg/L", snap.Total)},
		{"Removal", fmt.Sprintf("%.2f %%", snap.Removal)},
		{"Monod", fmt.Sprintf("%.4f", snap.Monod)},
		{"Degradation", fmt.Sprintf("%.4f mg/L/h", snap.DegradationRate)},
		{"Sorption", fmt.Sprintf("%+.4f mg/L/h", snap.SorptionRate)},
	}
	for _, row := range rows {
		s.WriteString(labelStyle.Render(row.label) + valueStyle.Render(row.value) + "\n")
	}

	progress := 1.0
	if m.lastIndex() > 0 {
		progress = float64(m.playHead) / float64(m.lastIndex())
	}
	s.WriteString("\n" + ProgressBar(progress, graphWidth) + fmt.Sprintf(" %3.0f%%\n", progress*100))

	if m.summary != nil && m.playHead >= m.lastIndex() {
		t90 := "not reached"
		if m.summary.T90Reached {
			t90 = fmt.Sprintf("day %.2f", m.summary.T90Days)
		}
		s.WriteString("\n" + Separator(graphWidth) + "\n")
		s.WriteString(labelStyle.Render("Removal") + MetricValue.Render(fmt.Sprintf("%.2f %%", m.summary.FinalRemoval)) + "\n")
		s.WriteString(labelStyle.Render("T90") + MetricValue.Render(t90) + "\n")
		s.WriteString(labelStyle.Render("Peak biomass") + MetricValue.Render(
			fmt.Sprintf("%.2f mg/L (day %.2f)", m.summary.PeakBiomass, m.summary.PeakBiomassDay)) + "\n")
		s.WriteString(labelStyle.Render("Peak AMPA") + MetricValue.Render(
			fmt.Sprintf("%.2f mg/L (day %.2f)", m.summary.PeakAMPA, m.summary.PeakAMPADay)) + "\n")
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Restart Q:Quit\n[ ]:Step { }:Jump +/-:Speed ?:Help"))

	view := panelStyle.Render(s.String())
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Restart from day zero    ║
║  [ / ]    - Step one snapshot        ║
║  { / }    - Jump a tenth of the run  ║
║  + / -    - Double/halve speed       ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n" + view
	}
	return view
}
