package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmtabor/studyarc/internal/cli/formatter"
)

// timerModel is a full-screen countdown for one focus block. It does not
// persist anything itself; the command inspects the final state and decides
// whether to log a session.
type timerModel struct {
	timer    timer.Model
	progress progress.Model
	total    time.Duration
	label    string

	finished bool // ran to zero or finished early
	aborted  bool // quit without logging
}

func newTimerModel(label string, total time.Duration) timerModel {
	p := progress.New(
		progress.WithGradient(string(formatter.ColorBlue), string(formatter.ColorGreen)),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	return timerModel{
		timer:    timer.NewWithInterval(total, time.Second),
		progress: p,
		total:    total,
		label:    label,
	}
}

// Elapsed returns how much of the block was actually spent.
func (m timerModel) Elapsed() time.Duration {
	return m.total - m.timer.Timeout
}

func (m timerModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		m.finished = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "f":
			m.finished = true
			return m, tea.Quit
		case " ", "p":
			return m, m.timer.Toggle()
		}
	}

	return m, nil
}

func (m timerModel) View() string {
	if m.finished || m.aborted {
		return ""
	}

	remaining := m.timer.Timeout.Round(time.Second)
	clock := fmt.Sprintf("%02d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)
	pct := 1 - float64(m.timer.Timeout)/float64(m.total)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  " + formatter.StyleHeader.Render(m.label) + "\n\n")
	sb.WriteString("  " + formatter.Bold(clock))
	if !m.timer.Running() {
		sb.WriteString("  " + formatter.StyleYellow.Render("paused"))
	}
	sb.WriteString("\n\n")
	sb.WriteString("  " + m.progress.ViewAs(pct) + "\n\n")
	sb.WriteString("  " + formatter.Dim("space: pause  f: finish early  q: abandon") + "\n")
	return sb.String()
}
