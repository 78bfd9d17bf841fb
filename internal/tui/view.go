package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jbeckham/jiratrack/internal/session"
)

// View implements tea.Model.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "Loading..."
	}

	v := a.state.View()
	sections := []string{a.renderHeader(v)}

	if v.Filter != "" || v.FilterEditing {
		sections = append(sections, a.renderFilterBar(v))
	}

	switch v.Mode {
	case session.ModeComposing, session.ModeConfirming:
		sections = append(sections, a.renderForm(v))
	default:
		sections = append(sections, a.renderList(v))
	}

	sections = append(sections, a.renderStatusBar(v))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader draws the title and the running timer, if any.
func (a App) renderHeader(v session.View) string {
	header := titleStyle.Render("jiratrack")
	if v.Timer != nil {
		elapsed := session.FormatMinutes(v.Timer.Elapsed(a.now()))
		header += timerStyle.Render(fmt.Sprintf("● %s  %s", v.Timer.IssueKey, elapsed))
	}
	return headerStyle.Render(header)
}

// renderFilterBar draws the search query and the match count.
func (a App) renderFilterBar(v session.View) string {
	query := v.Filter
	if v.FilterEditing {
		query += "█"
	}
	bar := filterPromptStyle.Render("/ ") + query
	count := filterCountStyle.Render(
		fmt.Sprintf("  %d of %d issues", len(v.Issues), v.TotalIssues),
	)
	return filterBarStyle.Render(bar + count)
}

// renderList draws the issue table, or what stands in for it.
func (a App) renderList(v session.View) string {
	loading := v.Mode == session.ModeLoading
	switch {
	case loading && v.TotalIssues == 0:
		return loadingStyle.Render(a.spinner.View() + " Loading issues...")
	case v.TotalIssues == 0:
		return emptyStyle.Render("No issues assigned to you")
	case len(v.Issues) == 0:
		return emptyStyle.Render("No issues match the search")
	}

	parts := []string{a.table.View()}
	if loading {
		parts = append(parts, loadingStyle.Render(a.spinner.View()+" Refreshing..."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderForm draws the worklog form for the draft.
func (a App) renderForm(v session.View) string {
	d := v.Draft
	if d == nil {
		return ""
	}

	label := func(f session.Field, text string) string {
		if v.Mode == session.ModeComposing && v.Focus == f {
			return formFocusedLabelStyle.Render(text)
		}
		return formLabelStyle.Render(text)
	}

	duration := d.DurationText
	if v.Mode == session.ModeComposing && v.Focus == session.FieldDuration {
		duration += "█"
	}
	if d.Minutes > 0 {
		duration += helpStyle.Render(fmt.Sprintf("  (%s)", session.FormatMinutes(d.Minutes)))
	}

	lines := []string{
		formTitleStyle.Render(fmt.Sprintf("Log time on %s", d.IssueKey)),
		d.IssueSummary,
		"",
		label(session.FieldDuration, "Duration") + duration,
		label(session.FieldComment, "Comment") + a.comment.View(),
		formLabelStyle.Render("Started") + d.StartedAt.Format("Mon Jan 2 15:04"),
	}

	if v.Mode == session.ModeConfirming {
		lines = append(lines, formHintStyle.Render(a.spinner.View()+" Submitting worklog..."))
	} else {
		lines = append(lines, formHintStyle.Render("Duration as 1h 30m or 90"))
	}

	width := min(max(a.width-4, 40), 80)
	return formBorderStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderStatusBar draws the bottom status and help line.
func (a App) renderStatusBar(v session.View) string {
	var parts []string
	switch {
	case v.Error != "":
		parts = append(parts, errorStyle.Render(v.Error))
	case v.Notice != "":
		parts = append(parts, successStyle.Render(v.Notice))
	}
	if h := a.help.View(a.keys.helpFor(v)); h != "" {
		parts = append(parts, h)
	}
	return strings.Join(parts, helpStyle.Render("  │  "))
}
