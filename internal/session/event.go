package session

import "time"

// Event is anything Update reacts to: user input or the outcome of a
// Command.
type Event interface {
	isEvent()
}

// User input.
type (
	// MoveUp moves the highlight one issue up, stopping at the first.
	MoveUp struct{}
	// MoveDown moves the highlight one issue down, stopping at the last.
	MoveDown struct{}
	// Refresh refetches the issue list.
	Refresh struct{}
	// BeginLog starts a draft for the highlighted issue.
	BeginLog struct{ Now time.Time }
	// EditDuration replaces the duration text of the draft.
	EditDuration struct{ Text string }
	// AdjustDuration adds Delta minutes to the draft duration.
	AdjustDuration struct{ Delta int }
	// EditComment replaces the comment of the draft.
	EditComment struct{ Text string }
	// SwitchField moves input focus to the other draft field.
	SwitchField struct{}
	// Confirm submits the draft.
	Confirm struct{}
	// Cancel discards the draft.
	Cancel struct{}
	// ToggleTimer starts a timer on the highlighted issue, or stops it if
	// it is already running there.
	ToggleTimer struct{ Now time.Time }
	// CopyIssue copies "[KEY] summary" of the highlighted issue.
	CopyIssue struct{}
	// OpenFilter starts editing the quick filter.
	OpenFilter struct{}
	// EditFilter replaces the quick filter query.
	EditFilter struct{ Query string }
	// ApplyFilter stops editing and keeps the current query.
	ApplyFilter struct{}
	// ClearFilter removes the quick filter.
	ClearFilter struct{}
	// QuitRequested asks to end the program.
	QuitRequested struct{}
)

// Command outcomes.
type (
	// IssuesFetched carries the result of FetchIssues.
	IssuesFetched struct {
		Issues  []Issue
		Failure *Failure
	}
	// WorklogSubmitted carries the result of SubmitWorklog.
	WorklogSubmitted struct {
		WorklogID string
		Failure   *Failure
	}
	// TimerSaved carries the result of SaveTimer.
	TimerSaved struct{ Err error }
	// TextCopied carries the result of CopyText.
	TextCopied struct {
		Text string
		Err  error
	}
)

func (MoveUp) isEvent()         {}
func (MoveDown) isEvent()       {}
func (Refresh) isEvent()        {}
func (BeginLog) isEvent()       {}
func (EditDuration) isEvent()   {}
func (AdjustDuration) isEvent() {}
func (EditComment) isEvent()    {}
func (SwitchField) isEvent()    {}
func (Confirm) isEvent()        {}
func (Cancel) isEvent()         {}
func (ToggleTimer) isEvent()    {}
func (CopyIssue) isEvent()      {}
func (OpenFilter) isEvent()     {}
func (EditFilter) isEvent()     {}
func (ApplyFilter) isEvent()    {}
func (ClearFilter) isEvent()    {}
func (QuitRequested) isEvent()  {}

func (IssuesFetched) isEvent()    {}
func (WorklogSubmitted) isEvent() {}
func (TimerSaved) isEvent()       {}
func (TextCopied) isEvent()       {}

// FailureKind classifies a failed Jira call.
type FailureKind int

const (
	FailureNetwork FailureKind = iota
	FailureAuth
	FailureRejected
	FailureMalformed
)

// Failure describes why a fetch or submission did not succeed.
type Failure struct {
	Kind   FailureKind
	Detail string
}
