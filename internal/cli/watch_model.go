package cli

import (
	"github.com/alexanderramin/lancer/internal/cli/formatter"
	"github.com/alexanderramin/lancer/internal/live"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type snapshot = live.Snapshot

// snapshotMsg carries a fresh mirror snapshot into the watch view.
type snapshotMsg snapshot

// watchModel is the bubbletea model behind "dashboard --watch": the
// current snapshot, re-rendered whenever the mirror pushes a new one.
type watchModel struct {
	snap    snapshot
	spinner spinner.Model
}

func newWatchModel(snap snapshot) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	return watchModel{snap: snap, spinner: sp}
}

func (m watchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = snapshot(msg)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	if !m.snap.Ready {
		return "\n  " + m.spinner.View() + " Loading dashboard...\n"
	}

	view := formatter.FormatDashboard(m.snap.Stats)
	if len(m.snap.Projects) > 0 {
		shown := m.snap.Projects
		if len(shown) > 5 {
			shown = shown[:5]
		}
		view += "\n" + formatter.FormatProjectList(shown)
	}
	view += "\n" + formatter.Dim("  live · q to quit") + "\n"
	return view
}
