package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sensordash/core"
	"sensordash/host/sim"
)

const (
	nudgeStep   = 10
	refreshRate = 100 * time.Millisecond
	barWidth    = 32
)

// TUI model
type simModel struct {
	runner   *sim.Runner
	ctx      context.Context
	cancel   context.CancelFunc
	snap     sim.Snapshot
	runErr   error
	running  bool
	width    int
	height   int
	quitting bool
}

// Messages
type refreshMsg time.Time
type runDoneMsg struct {
	err error
}

func newSimModel(r *sim.Runner) simModel {
	ctx, cancel := context.WithCancel(context.Background())
	return simModel{
		runner:  r,
		ctx:     ctx,
		cancel:  cancel,
		snap:    r.Snapshot(),
		running: true,
		width:   80,
		height:  24,
	}
}

func (m simModel) Init() tea.Cmd {
	return tea.Batch(refreshCmd(), m.runCmd())
}

func refreshCmd() tea.Cmd {
	return tea.Tick(refreshRate, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// runCmd drives the loop until the model cancels it or the loop faults.
func (m simModel) runCmd() tea.Cmd {
	r, ctx := m.runner, m.ctx
	return func() tea.Msg {
		return runDoneMsg{err: r.Run(ctx)}
	}
}

func (m simModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		case "up", "k":
			m.runner.Sensor.Nudge(nudgeStep)
		case "down", "j":
			m.runner.Sensor.Nudge(-nudgeStep)
		case "e":
			m.runner.Edge()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case refreshMsg:
		m.snap = m.runner.Snapshot()
		return m, refreshCmd()

	case runDoneMsg:
		m.running = false
		m.runErr = msg.err
		m.snap = m.runner.Snapshot()
	}

	return m, nil
}

func (m simModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Foreground(lipgloss.Color("14")).
		Background(lipgloss.Color("0"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	snap := m.snap
	sc := m.runner.Scenario()

	var s strings.Builder
	s.WriteString(titleStyle.Render("DASHTOOL - SENSOR DASHBOARD SIMULATOR"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("Scenario: %s | Waveform: %s | up/down nudge, e edge, q quit",
		sc.Name, sc.Sensor.Waveform)))
	s.WriteString("\n\n")

	s.WriteString(panelStyle.Render(panelText(snap.Lines, m.width-2)))
	s.WriteString("\n")

	var stats strings.Builder
	stats.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("Sample:"), valueStyle.Render(fmt.Sprintf("%d", snap.Sample)),
		labelStyle.Render("Nudge:"), valueStyle.Render(fmt.Sprintf("%+d", snap.Offset)),
		labelStyle.Render("State:"), valueStyle.Render(snap.State.String()),
	))
	stats.WriteString(fmt.Sprintf("%s %s %s\n",
		labelStyle.Render("Actuator:"), valueStyle.Render(levelBar(snap.Level, barWidth)),
		valueStyle.Render(fmt.Sprintf("%d/255", snap.Level)),
	))
	stats.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		labelStyle.Render("Timer:"), valueStyle.Render(fmt.Sprintf("%d", snap.Timer)),
		labelStyle.Render("External:"), valueStyle.Render(fmt.Sprintf("%d", snap.External)),
	))
	stats.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s",
		labelStyle.Render("Passes:"), valueStyle.Render(fmt.Sprintf("%d", snap.Stats.Iterations)),
		labelStyle.Render("Refreshes:"), valueStyle.Render(fmt.Sprintf("%d/%d", snap.Stats.SensorRefreshes, snap.Stats.CounterRefreshes)),
		labelStyle.Render("Bus failures:"), func() string {
			if snap.BusFailures > 0 {
				return errorStyle.Render(fmt.Sprintf("%d", snap.BusFailures))
			}
			return valueStyle.Render("0")
		}(),
	))
	s.WriteString(boxStyle.Render(stats.String()))
	s.WriteString("\n")

	switch {
	case snap.Fault != nil:
		s.WriteString(errorStyle.Render("FAULT: " + snap.Fault.Error()))
		s.WriteString("\n")
	case m.runErr != nil:
		s.WriteString(errorStyle.Render("Stopped: " + m.runErr.Error()))
		s.WriteString("\n")
	case !m.running:
		s.WriteString(headerStyle.Render("Stopped"))
		s.WriteString("\n")
	}

	return s.String()
}

// panelText pads each page line to the panel width, cropped to max columns.
func panelText(lines []string, max int) string {
	width := sim.PanelColumns
	if max > 0 && max < width {
		width = max
	}
	rows := make([]string, len(lines))
	for i, line := range lines {
		if len(line) > width {
			line = line[:width]
		}
		rows[i] = line + strings.Repeat(" ", width-len(line))
	}
	return strings.Join(rows, "\n")
}

// levelBar draws v as a bar of width cells.
func levelBar(v core.PWMValue, width int) string {
	filled := int(v) * width / 255
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
