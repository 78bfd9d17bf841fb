package session

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// randomEvent draws from every event kind, including command outcomes that
// arrive in the "wrong" mode.
func randomEvent(r *rand.Rand) Event {
	pool := [][]Issue{nil, {issueA}, {issueA, issueB, issueC}, {issueC, issueB}}
	durations := []string{"", "0", "30", "1h", "abc", "-5", "2h15m", "9999h"}
	failures := []*Failure{nil, {Kind: FailureNetwork}, {Kind: FailureAuth}, {Kind: FailureRejected, Detail: "nope"}}
	at := now.Add(time.Duration(r.Intn(300)) * time.Minute)

	switch r.Intn(19) {
	case 0, 1:
		return MoveUp{}
	case 2, 3:
		return MoveDown{}
	case 4:
		return Refresh{}
	case 5:
		return BeginLog{Now: at}
	case 6:
		return EditDuration{Text: durations[r.Intn(len(durations))]}
	case 7:
		return AdjustDuration{Delta: []int{-15, 15}[r.Intn(2)]}
	case 8:
		return EditComment{Text: fmt.Sprintf("note %d", r.Intn(10))}
	case 9:
		return SwitchField{}
	case 10:
		return Confirm{}
	case 11:
		return Cancel{}
	case 12:
		return IssuesFetched{Issues: pool[r.Intn(len(pool))], Failure: failures[r.Intn(2)]}
	case 13:
		return WorklogSubmitted{WorklogID: "1", Failure: failures[r.Intn(len(failures))]}
	case 14:
		return ToggleTimer{Now: at}
	case 15:
		return OpenFilter{}
	case 16:
		return EditFilter{Query: []string{"", "img", "post", "zz"}[r.Intn(4)]}
	case 17:
		return ApplyFilter{}
	default:
		return ClearFilter{}
	}
}

func checkInvariants(t *testing.T, s State, step int, ev Event) {
	t.Helper()
	v := s.View()
	at := fmt.Sprintf("step %d (%T)", step, ev)

	if len(v.Issues) == 0 {
		require.Equal(t, -1, v.Highlighted, "%s: highlight on empty list", at)
	} else {
		require.GreaterOrEqual(t, v.Highlighted, 0, "%s: highlight below range", at)
		require.Less(t, v.Highlighted, len(v.Issues), "%s: highlight past the list", at)
	}

	hasDraft := v.Draft != nil
	wantDraft := v.Mode == ModeComposing || v.Mode == ModeConfirming
	require.Equal(t, wantDraft, hasDraft, "%s: mode %s with draft=%v", at, v.Mode, hasDraft)

	if hasDraft {
		require.GreaterOrEqual(t, v.Draft.Minutes, 0, "%s: negative duration", at)
	}
	if v.Mode == ModeConfirming {
		require.Positive(t, v.Draft.Minutes, "%s: confirming without a duration", at)
	}
}

func TestRandomEventSequencesKeepInvariants(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		r := rand.New(rand.NewSource(seed))
		s, _ := New(nil)
		checkInvariants(t, s, 0, nil)

		for step := 1; step <= 300; step++ {
			ev := randomEvent(r)
			prevMode := s.Mode()
			prevDraft, _ := s.Draft()

			next, cmd := Update(s, ev)
			checkInvariants(t, next, step, ev)

			// Commands only start when entering Loading or Confirming.
			at := fmt.Sprintf("seed %d step %d", seed, step)
			switch c := cmd.(type) {
			case FetchIssues:
				require.Equal(t, ModeLoading, next.Mode(), "%s: fetch started outside Loading", at)
				require.NotEqual(t, ModeLoading, prevMode, "%s: second fetch while loading", at)
			case SubmitWorklog:
				require.Equal(t, ModeConfirming, next.Mode(), "%s: submit started outside Confirming", at)
				require.Equal(t, ModeComposing, prevMode, "%s: submit started from %s", at, prevMode)
				require.Positive(t, c.Draft.Minutes, "%s: submitted duration", at)
			}

			// Submission outcomes.
			if ws, ok := ev.(WorklogSubmitted); ok && prevMode == ModeConfirming {
				if ws.Failure == nil {
					require.Equal(t, ModeBrowsing, next.Mode(), "%s: success", at)
					require.Nil(t, next.View().Draft, "%s: draft kept after success", at)
				} else {
					d, ok := next.Draft()
					require.Equal(t, ModeComposing, next.Mode(), "%s: failure", at)
					require.True(t, ok, "%s: draft lost on failure", at)
					require.Equal(t, prevDraft.IssueKey, d.IssueKey, "%s: draft changed on failure", at)
					require.Equal(t, prevDraft.Comment, d.Comment, "%s: draft changed on failure", at)
				}
			}

			// Entering Composing targets the highlighted issue.
			if _, ok := ev.(BeginLog); ok && prevMode == ModeBrowsing && next.Mode() == ModeComposing {
				h, _ := s.Highlighted()
				d, _ := next.Draft()
				require.Equal(t, h.Key, d.IssueKey, "%s: draft targets another issue", at)
			}

			// A running timer is never replaced by one on another issue.
			if _, ok := ev.(ToggleTimer); ok {
				before, after := s.View().Timer, next.View().Timer
				if before != nil && after != nil {
					require.Equal(t, *before, *after, "%s: timer replaced", at)
				}
			}

			s = next
		}
	}
}
