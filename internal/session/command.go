package session

// Command is a side effect requested by Update. The driver runs it and
// reports back with the matching event.
type Command interface {
	isCommand()
}

// FetchIssues lists the user's issues. Reply: IssuesFetched.
type FetchIssues struct{}

// SubmitWorklog creates a worklog from Draft. Reply: WorklogSubmitted.
type SubmitWorklog struct{ Draft Draft }

// SaveTimer persists Timer, or clears the stored timer when nil.
// Reply: TimerSaved.
type SaveTimer struct{ Timer *Timer }

// CopyText puts Text on the clipboard. Reply: TextCopied.
type CopyText struct{ Text string }

// Quit ends the program.
type Quit struct{}

func (FetchIssues) isCommand()   {}
func (SubmitWorklog) isCommand() {}
func (SaveTimer) isCommand()     {}
func (CopyText) isCommand()      {}
func (Quit) isCommand()          {}
