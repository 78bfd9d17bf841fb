package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbeckham/jiratrack/internal/jira"
	"github.com/jbeckham/jiratrack/internal/session"
)

// run turns a session command into a tea.Cmd. bubbletea executes each Cmd
// on its own goroutine, so none of these block key handling.
func (a App) run(command session.Command) tea.Cmd {
	switch c := command.(type) {
	case nil:
		return nil
	case session.Quit:
		return tea.Quit
	case session.FetchIssues:
		return a.cmdFetchIssues()
	case session.SubmitWorklog:
		return a.cmdSubmitWorklog(c.Draft)
	case session.SaveTimer:
		return a.cmdSaveTimer(c.Timer)
	case session.CopyText:
		return a.cmdCopy(c.Text)
	}
	slog.Error("Unhandled session command", "command", command)
	return nil
}

// cmdFetchIssues lists the issues assigned to the user.
func (a App) cmdFetchIssues() tea.Cmd {
	if a.client == nil {
		return nil
	}
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		issues, err := client.FetchAssignedIssues(ctx)
		return issuesLoadedMsg{issues: issues, err: err}
	}
}

// cmdSubmitWorklog posts the draft as a worklog.
func (a App) cmdSubmitWorklog(d session.Draft) tea.Cmd {
	if a.client == nil {
		return nil
	}
	client := a.client
	req := jira.WorklogRequest{
		IssueKey: d.IssueKey,
		Minutes:  d.Minutes,
		Comment:  d.Comment,
		Started:  d.StartedAt,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		slog.Info("Submitting worklog", "issue", req.IssueKey, "minutes", req.Minutes)
		id, err := client.SubmitWorklog(ctx, req)
		return worklogSubmittedMsg{worklogID: id, err: err}
	}
}

// cmdSaveTimer persists (or clears) the running timer.
func (a App) cmdSaveTimer(t *session.Timer) tea.Cmd {
	save := a.saveTimer
	return func() tea.Msg {
		return timerSavedMsg{err: save(t)}
	}
}

// cmdCopy writes text to the clipboard.
func (a App) cmdCopy(text string) tea.Cmd {
	write := a.writeClipboard
	return func() tea.Msg {
		return clipboardMsg{text: text, err: write(text)}
	}
}

// toIssues converts API issues to session issues.
func toIssues(issues []jira.Issue) []session.Issue {
	out := make([]session.Issue, len(issues))
	for i, issue := range issues {
		out[i] = session.Issue{
			Key:       issue.Key,
			Summary:   issue.Fields.Summary,
			Status:    issue.StatusName(),
			TimeSpent: issue.TimeSpent(),
		}
	}
	return out
}

// toFailure classifies a Jira error for the session. nil stays nil.
func toFailure(err error) *session.Failure {
	if err == nil {
		return nil
	}
	f := &session.Failure{Detail: err.Error()}
	var jerr *jira.Error
	if errors.As(err, &jerr) && jerr.Message != "" {
		f.Detail = jerr.Message
	}
	switch jira.KindOf(err) {
	case jira.KindAuth:
		f.Kind = session.FailureAuth
	case jira.KindRejected:
		f.Kind = session.FailureRejected
	case jira.KindMalformed:
		f.Kind = session.FailureMalformed
	default:
		f.Kind = session.FailureNetwork
	}
	return f
}
