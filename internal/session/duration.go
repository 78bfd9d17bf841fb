package session

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxMinutes is the longest single worklog accepted (one week).
const MaxMinutes = 7 * 24 * 60

// MaxCommentLength is the longest comment accepted, in runes.
const MaxCommentLength = 1000

// durationPattern accepts "90", "45m", "2h", "1h30m", "1h 30" and every
// prefix of those, so the field can be typed one key at a time.
var durationPattern = regexp.MustCompile(`^(?:(\d+)\s*h)?\s*(?:(\d+)\s*m?)?$`)

// ParseMinutes converts duration text to whole minutes. Empty text is zero.
// Negative, non-numeric and out-of-range input is reported as !ok.
func ParseMinutes(text string) (minutes int, ok bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0, true
	}
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	total := 0
	if m[1] != "" {
		h, err := strconv.Atoi(m[1])
		if err != nil || h > MaxMinutes/60 {
			return 0, false
		}
		total += h * 60
	}
	if m[2] != "" {
		mins, err := strconv.Atoi(m[2])
		if err != nil || mins > MaxMinutes {
			return 0, false
		}
		total += mins
	}
	if total > MaxMinutes {
		return 0, false
	}
	return total, true
}

// FormatMinutes renders minutes the way Jira does ("1h 30m", "45m", "2h").
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
