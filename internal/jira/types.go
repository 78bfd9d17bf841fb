package jira

import "time"

// Issue represents a Jira issue as returned by search.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

// IssueFields contains the fields jiratrack requests for an issue.
type IssueFields struct {
	Summary      string        `json:"summary"`
	Status       *Status       `json:"status"`
	TimeTracking *TimeTracking `json:"timetracking"`
}

// Status represents a Jira status.
type Status struct {
	Name           string          `json:"name"`
	ID             string          `json:"id"`
	StatusCategory *StatusCategory `json:"statusCategory"`
}

// StatusCategory represents a Jira status category.
type StatusCategory struct {
	ID   int    `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// TimeTracking holds the time tracking summary of an issue.
type TimeTracking struct {
	TimeSpent        string `json:"timeSpent"`
	TimeSpentSeconds int64  `json:"timeSpentSeconds"`
}

// StatusName returns the status label, or "" when the field was not returned.
func (i Issue) StatusName() string {
	if i.Fields.Status == nil {
		return ""
	}
	return i.Fields.Status.Name
}

// TimeSpent returns the logged time in Jira notation, "0h" when none.
func (i Issue) TimeSpent() string {
	if i.Fields.TimeTracking == nil || i.Fields.TimeTracking.TimeSpent == "" {
		return "0h"
	}
	return i.Fields.TimeTracking.TimeSpent
}

// searchResult represents the response from the enhanced JQL search.
type searchResult struct {
	Issues        []Issue `json:"issues"`
	NextPageToken string  `json:"nextPageToken"`
	IsLast        bool    `json:"isLast"`
}

// searchRequest is the POST body for /rest/api/3/search/jql.
type searchRequest struct {
	JQL           string   `json:"jql"`
	MaxResults    int      `json:"maxResults"`
	Fields        []string `json:"fields"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// WorklogRequest describes a worklog to create.
type WorklogRequest struct {
	IssueKey string
	Minutes  int
	Comment  string
	Started  time.Time
}

// worklogCreation is the POST body for /rest/api/3/issue/{key}/worklog.
type worklogCreation struct {
	Started          string         `json:"started"`
	TimeSpentSeconds int64          `json:"timeSpentSeconds"`
	Comment          map[string]any `json:"comment,omitempty"`
}

// Worklog is the subset of the created worklog jiratrack reads back.
type Worklog struct {
	ID               string `json:"id"`
	IssueID          string `json:"issueId"`
	Started          string `json:"started"`
	TimeSpentSeconds int64  `json:"timeSpentSeconds"`
}

// errorBody is Jira's standard error payload.
type errorBody struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}
