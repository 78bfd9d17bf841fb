// Package session holds the interactive time-tracking session: which issues
// are listed, which one is highlighted, and the worklog being composed.
//
// State is a plain value. Update is a pure function from (State, Event) to
// (State, Command); it performs no I/O. Whoever drives the session runs the
// returned Command and feeds its outcome back in as another Event.
package session

import "time"

// Mode is the phase of the session that decides which events are legal.
type Mode int

const (
	// ModeLoading means an issue fetch is outstanding.
	ModeLoading Mode = iota
	// ModeBrowsing means the user is moving through the issue list.
	ModeBrowsing
	// ModeComposing means a draft is being edited.
	ModeComposing
	// ModeConfirming means the draft has been sent and the result is pending.
	ModeConfirming
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeBrowsing:
		return "browsing"
	case ModeComposing:
		return "composing"
	case ModeConfirming:
		return "confirming"
	}
	return "unknown"
}

// Issue is a Jira issue as shown in the list. Issues are replaced as a whole
// on every fetch.
type Issue struct {
	Key       string
	Summary   string
	Status    string
	TimeSpent string
}

// Field is the draft field receiving input while composing.
type Field int

const (
	FieldDuration Field = iota
	FieldComment
)

// Draft is the worklog entry being composed.
type Draft struct {
	IssueKey     string
	IssueSummary string
	Minutes      int
	DurationText string // what the user typed; parses to Minutes
	Comment      string
	StartedAt    time.Time
	EndedAt      time.Time // when composing began; edits keep StartedAt = EndedAt - Minutes
}

// setMinutes changes the duration and moves StartedAt back from EndedAt.
func (d *Draft) setMinutes(minutes int) {
	d.Minutes = minutes
	d.StartedAt = d.EndedAt.Add(-time.Duration(minutes) * time.Minute)
}

// Timer tracks time spent on one issue until a worklog is composed for it.
type Timer struct {
	IssueKey  string
	StartedAt time.Time
}

// Elapsed returns the whole minutes between the timer start and now.
func (t Timer) Elapsed(now time.Time) int {
	d := now.Sub(t.StartedAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// State is the whole session. The zero value is not usable; call New.
type State struct {
	mode Mode

	issues    []Issue // as fetched
	visible   []Issue // issues after the quick filter
	highlight int     // index into visible, -1 when visible is empty

	filter        string
	filterEditing bool

	draft *Draft
	focus Field

	timer *Timer

	errMsg string
	notice string
}

// New returns the initial Loading state together with the command that
// fetches the first issue list. timer may be nil.
func New(timer *Timer) (State, Command) {
	s := State{
		mode:      ModeLoading,
		highlight: -1,
	}
	if timer != nil {
		t := *timer
		s.timer = &t
	}
	return s, FetchIssues{}
}

// Mode returns the current mode.
func (s State) Mode() Mode { return s.mode }

// Highlighted returns the highlighted issue, or false when none is.
func (s State) Highlighted() (Issue, bool) {
	if s.highlight < 0 || s.highlight >= len(s.visible) {
		return Issue{}, false
	}
	return s.visible[s.highlight], true
}

// Draft returns a copy of the active draft, or false outside Composing and
// Confirming.
func (s State) Draft() (Draft, bool) {
	if s.draft == nil {
		return Draft{}, false
	}
	return *s.draft, true
}

// View is the read-only snapshot a renderer draws from.
type View struct {
	Mode          Mode
	Issues        []Issue // visible issues
	TotalIssues   int
	Highlighted   int // -1 when there is nothing to highlight
	Filter        string
	FilterEditing bool
	Draft         *Draft
	Focus         Field
	Timer         *Timer
	Error         string
	Notice        string
}

// View builds the renderer snapshot. Nothing in it aliases State.
func (s State) View() View {
	v := View{
		Mode:          s.mode,
		Issues:        append([]Issue(nil), s.visible...),
		TotalIssues:   len(s.issues),
		Highlighted:   s.highlight,
		Filter:        s.filter,
		FilterEditing: s.filterEditing,
		Focus:         s.focus,
		Error:         s.errMsg,
		Notice:        s.notice,
	}
	if s.draft != nil {
		d := *s.draft
		v.Draft = &d
	}
	if s.timer != nil {
		t := *s.timer
		v.Timer = &t
	}
	return v
}
