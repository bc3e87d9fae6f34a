// internal/tui/progress.go
//
// Live progress view for a pipeline run, built on bubbletea's
// model/update/view loop. The controller pushes Progress snapshots into a
// channel; this model drains it and renders a one-screen status board.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dirvine/four-word-networking/internal/logbook"
	"github.com/dirvine/four-word-networking/internal/pipeline"
)

const logTailLines = 6

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	logStyle    = lipgloss.NewStyle().Faint(true)
	stateStyles = map[pipeline.State]lipgloss.Style{
		pipeline.StateGrowing:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		pipeline.StateStalled:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		pipeline.StateRelaxing:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		pipeline.StateConverged: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		pipeline.StateAborted:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
)

type progressMsg pipeline.Progress

type doneMsg struct{}

// Model renders pipeline progress. It is a value type; bubbletea copies it
// on every update.
type Model struct {
	spinner spinner.Model
	bar     progress.Model
	updates <-chan pipeline.Progress
	book    *logbook.Logbook

	latest pipeline.Progress
	seen   bool
	done   bool
	width  int
}

// New builds a progress model reading snapshots from updates. The logbook
// is optional; when present its tail is shown under the status board.
func New(updates <-chan pipeline.Progress, book *logbook.Logbook) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient()),
		updates: updates,
		book:    book,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForUpdate(m.updates))
}

func waitForUpdate(updates <-chan pipeline.Progress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return progressMsg(p)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case progressMsg:
		m.latest = pipeline.Progress(msg)
		m.seen = true
		return m, waitForUpdate(m.updates)
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("wordset pipeline"))
	b.WriteString("\n\n")

	if !m.seen {
		b.WriteString(m.spinner.View())
		b.WriteString(" waiting for first pass...\n")
		return b.String()
	}

	p := m.latest
	stateStyle, ok := stateStyles[p.State]
	if !ok {
		stateStyle = labelStyle
	}
	if m.done {
		b.WriteString(stateStyle.Render(string(p.State)))
	} else {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(stateStyle.Render(string(p.State)))
	}
	b.WriteString("\n\n")

	frac := 0.0
	if p.Target > 0 {
		frac = float64(p.Accepted) / float64(p.Target)
	}
	if frac > 1 {
		frac = 1
	}
	b.WriteString(m.bar.ViewAs(frac))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("accepted "))
	b.WriteString(fmt.Sprintf("%d / %d", p.Accepted, p.Target))
	b.WriteString(labelStyle.Render("   pass "))
	b.WriteString(fmt.Sprintf("%d", p.Pass))
	b.WriteString(labelStyle.Render("   threshold "))
	b.WriteString(fmt.Sprintf("%.2f", p.Threshold))
	b.WriteString(labelStyle.Render("   pool "))
	b.WriteString(fmt.Sprintf("%d", p.PoolSize))
	b.WriteString("\n")

	if m.book != nil {
		b.WriteString("\n")
		for _, line := range m.book.Tail(logTailLines) {
			b.WriteString(logStyle.Render(line))
			b.WriteString("\n")
		}
	}
	if !m.done {
		b.WriteString(logStyle.Render("\nq to quit\n"))
	}
	return b.String()
}

// Run drives the progress view until the updates channel closes or the
// user quits. It must run on the goroutine that owns the terminal.
func Run(updates <-chan pipeline.Progress, book *logbook.Logbook) error {
	if _, err := tea.NewProgram(New(updates, book)).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
