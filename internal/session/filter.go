package session

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// filterIssues returns the issues matching query, best match first.
// An empty query keeps every issue in fetch order.
func filterIssues(issues []Issue, query string) []Issue {
	query = strings.TrimSpace(query)
	if query == "" {
		return issues
	}

	targets := make([]string, len(issues))
	for i, issue := range issues {
		targets[i] = issue.Key + " " + issue.Summary
	}

	matches := fuzzy.Find(query, targets)
	result := make([]Issue, 0, len(matches))
	for _, m := range matches {
		result = append(result, issues[m.Index])
	}
	return result
}

// setVisible recomputes the visible list and resets the highlight to the top.
func (s *State) setVisible() {
	s.visible = filterIssues(s.issues, s.filter)
	if len(s.visible) == 0 {
		s.highlight = -1
	} else {
		s.highlight = 0
	}
}
