package jira

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorKind classifies a failed Jira call.
type ErrorKind int

const (
	// KindNetwork means the request never produced an HTTP response.
	KindNetwork ErrorKind = iota
	// KindAuth means Jira rejected the credentials (401/403).
	KindAuth
	// KindRejected means Jira answered with any other 4xx/5xx status.
	KindRejected
	// KindMalformed means a 2xx response body could not be decoded.
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindRejected:
		return "rejected"
	case KindMalformed:
		return "malformed"
	}
	return "unknown"
}

// Error is returned by every Client method.
type Error struct {
	Op         string // e.g. "searching issues"
	Kind       ErrorKind
	StatusCode int    // 0 when no response was received
	Message    string // message extracted from the Jira error body
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": API error %d", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf classifies err. Errors not produced by this package count as
// network failures.
func KindOf(err error) ErrorKind {
	var jerr *Error
	if errors.As(err, &jerr) {
		return jerr.Kind
	}
	return KindNetwork
}

// maxMessageRunes caps a raw error body shown to the user.
const maxMessageRunes = 200

// statusError builds the Error for a >= 400 response.
func statusError(op string, status int, body []byte) *Error {
	kind := KindRejected
	if status == 401 || status == 403 {
		kind = KindAuth
	}
	return &Error{Op: op, Kind: kind, StatusCode: status, Message: errorMessage(body)}
}

// errorMessage pulls a readable message out of a Jira error body, falling
// back to the raw (trimmed) body.
func errorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		parts := append([]string{}, eb.ErrorMessages...)
		fields := make([]string, 0, len(eb.Errors))
		for field := range eb.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			parts = append(parts, field+": "+eb.Errors[field])
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	msg := strings.TrimSpace(string(body))
	if r := []rune(msg); len(r) > maxMessageRunes {
		msg = string(r[:maxMessageRunes]) + "…"
	}
	return msg
}
