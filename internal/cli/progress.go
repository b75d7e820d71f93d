package cli

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmeierlab/pepsweep/internal/sweep"
)

const pollInterval = time.Second

// Theme holds the color scheme for the progress display.
type Theme struct {
	Status     lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Hint       lipgloss.Color
	ProgressBg lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Status:     lipgloss.Color("#5FAFD7"), // light blue
	Success:    lipgloss.Color("#00D787"), // green
	Error:      lipgloss.Color("#FF005F"), // red
	Hint:       lipgloss.Color("#6C6C6C"), // dim gray
	ProgressBg: lipgloss.Color("#3A3A3A"), // dark gray
}

// Style functions for dynamic theming
func (t Theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Status)
}

func (t Theme) completedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// tickMsg triggers polling the sweep tracker
type tickMsg time.Time

// sweepModel is the bubbletea model for sweep progress.
type sweepModel struct {
	tracker  *sweep.Tracker
	status   sweep.Status
	progress progress.Model
	theme    Theme
	quitting bool
}

// newSweepModel creates a new sweep progress model.
func newSweepModel(tracker *sweep.Tracker) sweepModel {
	prog := progress.New(
		progress.WithDefaultBlend(),
		progress.WithWidth(40),
	)

	return sweepModel{
		tracker:  tracker,
		status:   tracker.Snapshot(),
		progress: prog,
		theme:    defaultTheme,
	}
}

// Init returns the initial command (start polling).
func (m sweepModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		m.progress.Init(),
	)
}

// Update handles messages and returns the updated model.
func (m sweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		m.status = m.tracker.Snapshot()
		if m.status.Done {
			return m, tea.Quit
		}
		return m, tickCmd()

	case progress.FrameMsg:
		// Update progress bar animation
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the progress display.
func (m sweepModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

// renderContent builds the display string.
func (m sweepModel) renderContent() string {
	if m.quitting {
		return m.theme.hintStyle().Render("\nProgress display detached; the sweep continues.\n")
	}
	if m.status.Done {
		return ""
	}

	var pct float64
	if m.status.TotalRuns > 0 {
		pct = float64(m.status.DoneRuns) / float64(m.status.TotalRuns)
	}

	current := "starting..."
	if m.status.CurrentSpecies != "" {
		current = fmt.Sprintf("%s %s%d", m.status.CurrentSpecies, sweep.PointPrefix, m.status.CurrentThreads)
	}
	status := m.theme.statusStyle().Render(fmt.Sprintf("[%s]", current))

	progressBar := m.progress.ViewAs(pct)
	counts := fmt.Sprintf("%d/%d runs", m.status.DoneRuns, m.status.TotalRuns)
	if m.status.DoneRuns > 0 {
		counts += fmt.Sprintf(" (last %ds)", m.status.LastElapsedSeconds)
	}

	hint := m.theme.hintStyle().Render("Press Ctrl+C to detach; the sweep keeps running")

	return fmt.Sprintf("%s %s %s\n%s\n", status, progressBar, counts, hint)
}

// tickCmd returns a command that sends a tick after the poll interval.
func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// RunSweepProgress runs the interactive progress display until the tracked
// sweep finishes or the user detaches. The sweep itself runs elsewhere; this
// only observes its tracker.
func RunSweepProgress(tracker *sweep.Tracker) error {
	model := newSweepModel(tracker)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("progress display error: %w", err)
	}
	return nil
}
