package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeckham/jiratrack/internal/session"
)

func TestBuildColumnsFlexTakesRemainder(t *testing.T) {
	cols := buildColumns(100)
	require.Len(t, cols, 4)

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	assert.Equal(t, []string{"Key", "Status", "Time Spent", "Summary"}, titles)

	// 100 - fixed (12+14+10) - padding (4*2)
	assert.Equal(t, 56, cols[3].Width)
	assert.Equal(t, 12, cols[0].Width)
}

func TestBuildColumnsNarrowKeepsMinimum(t *testing.T) {
	cols := buildColumns(30)
	assert.Equal(t, 20, cols[3].Width)
}

func TestIssuesToRowsMarksTimer(t *testing.T) {
	issues := []session.Issue{
		{Key: "IMG-1", Summary: "Fix login redirect", Status: "To Do", TimeSpent: "0h"},
		{Key: "IMG-2", Summary: "Import invoices", Status: "In Progress", TimeSpent: "2h"},
	}

	rows := issuesToRows(issues, "IMG-2")
	assert.Equal(t, []table.Row{
		{"IMG-1", "To Do", "0h", "Fix login redirect"},
		{timerMark + "IMG-2", "In Progress", "2h", "Import invoices"},
	}, rows)

	rows = issuesToRows(issues, "")
	assert.Equal(t, "IMG-2", rows[1][0])
}

func TestHelpForMode(t *testing.T) {
	k := defaultKeyMap()

	assert.Equal(t, modeHelp{k.Quit}, k.helpFor(session.View{Mode: session.ModeLoading}))
	assert.Nil(t, k.helpFor(session.View{Mode: session.ModeConfirming}))
	assert.Contains(t, k.helpFor(session.View{Mode: session.ModeComposing}), k.Submit)

	browsing := k.helpFor(session.View{Mode: session.ModeBrowsing})
	assert.Contains(t, browsing, k.Log)
	assert.NotContains(t, browsing, k.FilterClear)

	filtered := k.helpFor(session.View{Mode: session.ModeBrowsing, Filter: "post"})
	assert.Contains(t, filtered, k.FilterClear)

	editing := k.helpFor(session.View{Mode: session.ModeBrowsing, FilterEditing: true})
	assert.Contains(t, editing, k.FilterApply)
	assert.NotContains(t, editing, k.Log)
}
