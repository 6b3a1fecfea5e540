package cli

import (
	"testing"

	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/alexanderramin/lancer/internal/live"
	"github.com/alexanderramin/lancer/internal/stats"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestWatchModel_LoadingUntilReady(t *testing.T) {
	m := newWatchModel(live.Snapshot{})
	assert.Contains(t, m.View(), "Loading dashboard")
}

func TestWatchModel_RendersSnapshot(t *testing.T) {
	m := newWatchModel(live.Snapshot{})

	snap := live.Snapshot{
		Ready:    true,
		Projects: []*domain.Project{{ID: "p1", Title: "Website Redesign", Status: domain.ProjectOngoing}},
		Stats:    stats.DashboardStats{TotalProjects: 1, OngoingProjects: 1},
	}
	updated, _ := m.Update(snapshotMsg(snap))
	m = updated.(watchModel)

	view := m.View()
	assert.Contains(t, view, "DASHBOARD")
	assert.Contains(t, view, "Website Redesign")
	assert.NotContains(t, view, "Loading")
}

func TestWatchModel_QuitKeys(t *testing.T) {
	m := newWatchModel(live.Snapshot{Ready: true})

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch key {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := m.Update(msg)
		assert.NotNil(t, cmd, "key %q quits", key)
	}
}
