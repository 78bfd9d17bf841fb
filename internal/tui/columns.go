package tui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/jbeckham/jiratrack/internal/session"
)

// columnDef holds display metadata for an issue list column.
type columnDef struct {
	title    string
	minWidth int
	flex     bool // if true, absorbs remaining space
}

// issueColumns are the columns of the issue list, in order.
var issueColumns = []columnDef{
	{title: "Key", minWidth: 12},
	{title: "Status", minWidth: 14},
	{title: "Time Spent", minWidth: 10},
	{title: "Summary", minWidth: 20, flex: true},
}

// timerMark prefixes the key of the issue with a running timer.
const timerMark = "● "

// buildColumns creates bubbles table columns auto-sized to totalWidth.
func buildColumns(totalWidth int) []table.Column {
	cols := make([]table.Column, len(issueColumns))
	fixedTotal := 0
	flexCount := 0

	for i, def := range issueColumns {
		cols[i] = table.Column{Title: def.title, Width: def.minWidth}
		if def.flex {
			flexCount++
		} else {
			fixedTotal += def.minWidth
		}
	}

	// Distribute remaining width to flex columns
	if flexCount > 0 {
		// Reserve a small gap per column for padding
		padding := len(issueColumns) * 2
		remaining := totalWidth - fixedTotal - padding
		perFlex := remaining / flexCount
		if perFlex < 20 {
			perFlex = 20
		}
		for i, def := range issueColumns {
			if def.flex {
				cols[i].Width = perFlex
			}
		}
	}

	return cols
}

// issuesToRows converts issues to table rows. timerKey marks the issue with
// a running timer ("" for none).
func issuesToRows(issues []session.Issue, timerKey string) []table.Row {
	rows := make([]table.Row, len(issues))
	for i, issue := range issues {
		key := issue.Key
		if timerKey != "" && issue.Key == timerKey {
			key = timerMark + key
		}
		rows[i] = table.Row{key, issue.Status, issue.TimeSpent, issue.Summary}
	}
	return rows
}
