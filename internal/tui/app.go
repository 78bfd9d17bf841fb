// Package tui drives the session: it turns terminal input and finished Jira
// calls into session events, runs the commands the session asks for, and
// renders the session view.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbeckham/jiratrack/internal/jira"
	"github.com/jbeckham/jiratrack/internal/session"
)

// Tracker is the part of the Jira client the app needs.
type Tracker interface {
	FetchAssignedIssues(ctx context.Context) ([]jira.Issue, error)
	SubmitWorklog(ctx context.Context, req jira.WorklogRequest) (string, error)
}

// requestTimeout bounds every Jira call started by the app.
const requestTimeout = 30 * time.Second

// timerRefresh is how often the running timer display is redrawn.
const timerRefresh = 30 * time.Second

// --- Messages ---

// issuesLoadedMsg delivers fetched issues (or an error).
type issuesLoadedMsg struct {
	issues []jira.Issue
	err    error
}

// worklogSubmittedMsg is sent when a worklog POST completes.
type worklogSubmittedMsg struct {
	worklogID string
	err       error
}

// timerSavedMsg is sent after the timer state file was written or removed.
type timerSavedMsg struct {
	err error
}

// clipboardMsg reports the outcome of a clipboard write.
type clipboardMsg struct {
	text string
	err  error
}

// timerTickMsg redraws the elapsed time of a running timer.
type timerTickMsg struct{}

// --- App model ---

// Option configures an App.
type Option func(*App)

// WithTimer restores a timer saved by a previous run.
func WithTimer(t *session.Timer) Option {
	return func(a *App) {
		a.initialTimer = t
	}
}

// WithTimerStore sets the function that persists the running timer.
// A nil timer means "no timer running".
func WithTimerStore(save func(*session.Timer) error) Option {
	return func(a *App) {
		a.saveTimer = save
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *App) {
		a.writeClipboard = write
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// App is the root bubbletea model for jiratrack.
type App struct {
	width  int
	height int
	ready  bool

	client Tracker
	state  session.State
	keys   keyMap

	table   table.Model
	comment textinput.Model
	spinner spinner.Model
	help    help.Model

	spinning bool // a spinner tick is in flight
	ticking  bool // a timer tick is in flight
	quitting bool

	initialTimer   *session.Timer
	saveTimer      func(*session.Timer) error
	writeClipboard func(string) error
	now            func() time.Time
	startCmd       session.Command
}

// NewApp creates a new App model.
// Pass nil client to run without Jira connection (for testing).
func NewApp(client Tracker, opts ...Option) App {
	a := App{
		client:         client,
		keys:           defaultKeyMap(),
		saveTimer:      func(*session.Timer) error { return nil },
		writeClipboard: clipboard.WriteAll,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(&a)
	}

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10), // will be resized
		table.WithColumns(buildColumns(80)),
	)
	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = tableSelectedStyle
	s.Cell = tableCellStyle
	t.SetStyles(s)
	a.table = t

	ti := textinput.New()
	ti.Placeholder = "what did you work on?"
	ti.CharLimit = session.MaxCommentLength
	ti.Width = 50
	a.comment = ti

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle
	a.spinner = sp

	a.help = help.New()

	a.state, a.startCmd = session.New(a.initialTimer)
	// Init starts both loops.
	a.spinning = client != nil
	a.ticking = client != nil && a.initialTimer != nil
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.client == nil {
		return nil
	}
	cmds := []tea.Cmd{a.run(a.startCmd), a.spinner.Tick}
	if a.ticking {
		cmds = append(cmds, scheduleTimerTick())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.resize()

	case spinner.TickMsg:
		if !a.busy() {
			a.spinning = false
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case timerTickMsg:
		a.ticking = false
		cmd := a.tickTimer()
		return a, cmd

	case issuesLoadedMsg:
		ev := session.IssuesFetched{Failure: toFailure(msg.err)}
		if msg.err != nil {
			slog.Warn("Fetching issues failed", "err", msg.err)
		} else {
			ev.Issues = toIssues(msg.issues)
		}
		return a.step(ev)

	case worklogSubmittedMsg:
		if msg.err != nil {
			slog.Warn("Submitting worklog failed", "err", msg.err)
		}
		return a.step(session.WorklogSubmitted{WorklogID: msg.worklogID, Failure: toFailure(msg.err)})

	case timerSavedMsg:
		return a.step(session.TimerSaved{Err: msg.err})

	case clipboardMsg:
		return a.step(session.TextCopied{Text: msg.text, Err: msg.err})

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// step feeds one event through the session and starts whatever it asks for.
func (a App) step(ev session.Event) (tea.Model, tea.Cmd) {
	from := a.state.Mode()
	next, command := session.Update(a.state, ev)
	a.state = next
	if to := next.Mode(); to != from {
		slog.Debug("Session transition", "event", fmt.Sprintf("%T", ev), "from", from, "to", to)
	}

	if _, ok := command.(session.Quit); ok {
		a.quitting = true
		return a, tea.Quit
	}
	a.sync()

	cmds := []tea.Cmd{a.run(command)}
	if a.busy() && !a.spinning {
		a.spinning = true
		cmds = append(cmds, a.spinner.Tick)
	}
	cmds = append(cmds, a.tickTimer())
	if a.state.Mode() == session.ModeComposing && a.state.View().Focus == session.FieldComment {
		cmds = append(cmds, textinput.Blink)
	}
	return a, tea.Batch(cmds...)
}

// busy reports whether a Jira call is outstanding.
func (a App) busy() bool {
	m := a.state.Mode()
	return m == session.ModeLoading || m == session.ModeConfirming
}

// tickTimer schedules the next timer redraw while a timer runs.
func (a *App) tickTimer() tea.Cmd {
	if a.ticking || a.state.View().Timer == nil {
		return nil
	}
	a.ticking = true
	return scheduleTimerTick()
}

func scheduleTimerTick() tea.Cmd {
	return tea.Tick(timerRefresh, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// sync copies the session view into the widgets that keep their own state.
func (a *App) sync() {
	v := a.state.View()

	timerKey := ""
	if v.Timer != nil {
		timerKey = v.Timer.IssueKey
	}
	a.table.SetRows(issuesToRows(v.Issues, timerKey))
	if v.Highlighted >= 0 {
		a.table.SetCursor(v.Highlighted)
	} else {
		a.table.SetCursor(0)
	}

	if v.Draft == nil {
		a.comment.Reset()
		a.comment.Blur()
		return
	}
	if a.comment.Value() != v.Draft.Comment {
		a.comment.SetValue(v.Draft.Comment)
	}
	if v.Mode == session.ModeComposing && v.Focus == session.FieldComment {
		a.comment.Focus()
	} else {
		a.comment.Blur()
	}
}

// resize fits the table to the window.
func (a *App) resize() {
	a.table.SetColumns(buildColumns(a.width))
	a.table.SetWidth(a.width)
	a.table.SetHeight(a.tableHeight())
	a.help.Width = a.width
	a.comment.Width = min(max(a.width-30, 20), 60)
}

// tableHeight returns the height available for the issue table.
func (a App) tableHeight() int {
	// Reserve: header (1) + margin (1) + search bar (1) + status line (1) + margin (1)
	h := a.height - 5
	if h < 3 {
		h = 3
	}
	return h
}

// handleKey maps a key press to a session event for the current mode.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if ev := a.keyEvent(msg); ev != nil {
		return a.step(ev)
	}
	return a, nil
}

// keyEvent translates msg, returning nil for keys with no meaning in the
// current mode. Comment typing is forwarded to the text input here.
func (a *App) keyEvent(msg tea.KeyMsg) session.Event {
	k := a.keys
	if key.Matches(msg, k.ForceQ) {
		return session.QuitRequested{}
	}

	v := a.state.View()
	switch v.Mode {
	case session.ModeLoading, session.ModeConfirming:
		if key.Matches(msg, k.Quit) {
			return session.QuitRequested{}
		}
		return nil

	case session.ModeComposing:
		return a.composingKey(msg, v)
	}

	if v.FilterEditing {
		return filterKey(msg, k, v.Filter)
	}

	switch {
	case key.Matches(msg, k.Quit):
		return session.QuitRequested{}
	case key.Matches(msg, k.Up):
		return session.MoveUp{}
	case key.Matches(msg, k.Down):
		return session.MoveDown{}
	case key.Matches(msg, k.Log):
		return session.BeginLog{Now: a.now()}
	case key.Matches(msg, k.Refresh):
		return session.Refresh{}
	case key.Matches(msg, k.Timer):
		return session.ToggleTimer{Now: a.now()}
	case key.Matches(msg, k.Copy):
		return session.CopyIssue{}
	case key.Matches(msg, k.Filter):
		return session.OpenFilter{}
	case key.Matches(msg, k.FilterClear):
		return session.ClearFilter{}
	}
	return nil
}

func (a *App) composingKey(msg tea.KeyMsg, v session.View) session.Event {
	k := a.keys
	switch {
	case key.Matches(msg, k.Submit):
		return session.Confirm{}
	case key.Matches(msg, k.Cancel):
		return session.Cancel{}
	case key.Matches(msg, k.SwitchField):
		return session.SwitchField{}
	}

	if v.Focus == session.FieldComment {
		a.comment, _ = a.comment.Update(msg)
		return session.EditComment{Text: a.comment.Value()}
	}

	switch {
	case key.Matches(msg, k.More):
		return session.AdjustDuration{Delta: 15}
	case key.Matches(msg, k.Less):
		return session.AdjustDuration{Delta: -15}
	case key.Matches(msg, k.Backspace):
		return session.EditDuration{Text: dropLastRune(v.Draft.DurationText)}
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		return session.EditDuration{Text: v.Draft.DurationText + string(msg.Runes)}
	}
	return nil
}

func filterKey(msg tea.KeyMsg, k keyMap, query string) session.Event {
	switch {
	case key.Matches(msg, k.FilterApply):
		return session.ApplyFilter{}
	case key.Matches(msg, k.FilterClear):
		return session.ClearFilter{}
	case msg.Type == tea.KeyUp:
		return session.MoveUp{}
	case msg.Type == tea.KeyDown:
		return session.MoveDown{}
	case key.Matches(msg, k.Backspace):
		return session.EditFilter{Query: dropLastRune(query)}
	case msg.Type == tea.KeyRunes:
		return session.EditFilter{Query: query + string(msg.Runes)}
	case msg.Type == tea.KeySpace:
		return session.EditFilter{Query: query + " "}
	}
	return nil
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
