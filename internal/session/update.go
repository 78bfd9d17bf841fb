package session

import (
	"fmt"
	"unicode/utf8"
)

// durationStep is the AdjustDuration increment bound to +/- keys.
const durationStep = 15

// Update applies ev to s and returns the next state and, optionally, a
// command to run. Events that are not legal in the current mode leave the
// state unchanged.
func Update(s State, ev Event) (State, Command) {
	if _, ok := ev.(QuitRequested); ok {
		return s, Quit{}
	}

	// Transient messages last until the next user action.
	if isUserInput(ev) {
		s.errMsg = ""
		s.notice = ""
	}

	// Side-effect results that are valid in any mode.
	switch ev := ev.(type) {
	case TimerSaved:
		if ev.Err != nil {
			s.errMsg = "Could not save timer: " + ev.Err.Error()
		}
		return s, nil
	case TextCopied:
		if ev.Err != nil {
			s.errMsg = "Clipboard unavailable"
		} else {
			s.notice = "Copied " + ev.Text
		}
		return s, nil
	}

	switch s.mode {
	case ModeLoading:
		return s.updateLoading(ev)
	case ModeBrowsing:
		return s.updateBrowsing(ev)
	case ModeComposing:
		return s.updateComposing(ev)
	case ModeConfirming:
		return s.updateConfirming(ev)
	}
	return s, nil
}

func isUserInput(ev Event) bool {
	switch ev.(type) {
	case IssuesFetched, WorklogSubmitted, TimerSaved, TextCopied:
		return false
	}
	return true
}

// --- Loading ---

func (s State) updateLoading(ev Event) (State, Command) {
	msg, ok := ev.(IssuesFetched)
	if !ok {
		return s, nil
	}

	s.mode = ModeBrowsing
	if msg.Failure != nil {
		s.issues = nil
		s.errMsg = fetchFailureMessage(*msg.Failure)
	} else {
		s.issues = append([]Issue(nil), msg.Issues...)
	}
	s.setVisible()
	return s, nil
}

// --- Browsing ---

func (s State) updateBrowsing(ev Event) (State, Command) {
	switch ev := ev.(type) {
	case MoveUp:
		if s.highlight > 0 {
			s.highlight--
		}

	case MoveDown:
		if s.highlight >= 0 && s.highlight < len(s.visible)-1 {
			s.highlight++
		}

	case Refresh:
		// The current list stays on screen until the fetch resolves.
		s.mode = ModeLoading
		s.filterEditing = false
		return s, FetchIssues{}

	case BeginLog:
		issue, ok := s.Highlighted()
		if !ok {
			return s, nil
		}
		d := Draft{
			IssueKey:     issue.Key,
			IssueSummary: issue.Summary,
			StartedAt:    ev.Now,
			EndedAt:      ev.Now,
		}
		if s.timer != nil && s.timer.IssueKey == issue.Key {
			d.Minutes = s.timer.Elapsed(ev.Now)
			d.StartedAt = s.timer.StartedAt
		}
		if d.Minutes > MaxMinutes {
			d.Minutes = MaxMinutes
		}
		if d.Minutes > 0 {
			d.DurationText = FormatMinutes(d.Minutes)
		}
		s.draft = &d
		s.focus = FieldDuration
		s.filterEditing = false
		s.mode = ModeComposing

	case ToggleTimer:
		issue, ok := s.Highlighted()
		if !ok {
			return s, nil
		}
		if s.timer != nil && s.timer.IssueKey != issue.Key {
			// Moving the timer would drop the time tracked so far.
			s.errMsg = fmt.Sprintf("Timer is running on %s (%s); stop it or log its time first",
				s.timer.IssueKey, FormatMinutes(s.timer.Elapsed(ev.Now)))
			return s, nil
		}
		if s.timer != nil {
			s.notice = fmt.Sprintf("Stopped timer on %s after %s", issue.Key, FormatMinutes(s.timer.Elapsed(ev.Now)))
			s.timer = nil
			return s, SaveTimer{}
		}
		t := Timer{IssueKey: issue.Key, StartedAt: ev.Now}
		s.timer = &t
		s.notice = "Timer started on " + issue.Key
		return s, SaveTimer{Timer: &Timer{IssueKey: t.IssueKey, StartedAt: t.StartedAt}}

	case CopyIssue:
		issue, ok := s.Highlighted()
		if !ok {
			return s, nil
		}
		return s, CopyText{Text: fmt.Sprintf("[%s] %s", issue.Key, issue.Summary)}

	case OpenFilter:
		s.filterEditing = true

	case EditFilter:
		if !s.filterEditing {
			return s, nil
		}
		s.filter = ev.Query
		s.setVisible()

	case ApplyFilter:
		s.filterEditing = false
		if s.filter == "" {
			s.setVisible()
		}

	case ClearFilter:
		s.filterEditing = false
		if s.filter != "" {
			s.filter = ""
			s.setVisible()
		}
	}
	return s, nil
}

// --- Composing ---

func (s State) updateComposing(ev Event) (State, Command) {
	switch ev := ev.(type) {
	case EditDuration:
		minutes, ok := ParseMinutes(ev.Text)
		if !ok {
			return s, nil
		}
		d := *s.draft
		d.setMinutes(minutes)
		d.DurationText = ev.Text
		s.draft = &d

	case AdjustDuration:
		minutes := s.draft.Minutes + ev.Delta
		if minutes < 0 || minutes > MaxMinutes {
			return s, nil
		}
		d := *s.draft
		d.setMinutes(minutes)
		d.DurationText = FormatMinutes(minutes)
		s.draft = &d

	case EditComment:
		if utf8.RuneCountInString(ev.Text) > MaxCommentLength {
			return s, nil
		}
		d := *s.draft
		d.Comment = ev.Text
		s.draft = &d

	case SwitchField:
		if s.focus == FieldDuration {
			s.focus = FieldComment
		} else {
			s.focus = FieldDuration
		}

	case Confirm:
		if s.draft.Minutes <= 0 {
			return s, nil
		}
		s.mode = ModeConfirming
		return s, SubmitWorklog{Draft: *s.draft}

	case Cancel:
		s.draft = nil
		s.focus = FieldDuration
		s.mode = ModeBrowsing
	}
	return s, nil
}

// --- Confirming ---

// updateConfirming only reacts to the submission result; the draft cannot
// change while it is in flight.
func (s State) updateConfirming(ev Event) (State, Command) {
	msg, ok := ev.(WorklogSubmitted)
	if !ok {
		return s, nil
	}

	if msg.Failure != nil {
		s.mode = ModeComposing
		s.errMsg = submitFailureMessage(*msg.Failure)
		return s, nil
	}

	d := *s.draft
	s.draft = nil
	s.focus = FieldDuration
	s.mode = ModeBrowsing
	s.notice = fmt.Sprintf("Logged %s on %s", FormatMinutes(d.Minutes), d.IssueKey)
	if msg.WorklogID != "" {
		s.notice += " (worklog " + msg.WorklogID + ")"
	}

	if s.timer != nil && s.timer.IssueKey == d.IssueKey {
		s.timer = nil
		return s, SaveTimer{}
	}
	return s, nil
}

// --- Messages ---

func fetchFailureMessage(f Failure) string {
	switch f.Kind {
	case FailureAuth:
		return "Jira rejected the credentials; check user_email and user_api_token (r: retry)"
	case FailureMalformed:
		return withDetail("Unexpected response from Jira", f.Detail) + " (r: retry)"
	case FailureRejected:
		return withDetail("Jira refused the issue search", f.Detail) + " (r: retry)"
	}
	return withDetail("Could not reach Jira", f.Detail) + " (r: retry)"
}

func submitFailureMessage(f Failure) string {
	switch f.Kind {
	case FailureAuth:
		return "Jira rejected the credentials; worklog not saved"
	case FailureMalformed:
		return withDetail("Unexpected response from Jira; the worklog may have been saved", f.Detail)
	case FailureRejected:
		return withDetail("Jira refused the worklog", f.Detail)
	}
	return withDetail("Could not reach Jira; worklog not saved", f.Detail)
}

func withDetail(msg, detail string) string {
	if detail == "" {
		return msg
	}
	return msg + ": " + detail
}
