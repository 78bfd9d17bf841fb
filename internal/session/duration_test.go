package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"", 0, true},
		{"  ", 0, true},
		{"0", 0, true},
		{"30", 30, true},
		{"45m", 45, true},
		{"2h", 120, true},
		{"1h30m", 90, true},
		{"1h 30m", 90, true},
		{"1H 30", 90, true},
		{"1h3", 63, true},
		{"168h", 10080, true},
		{"169h", 0, false},
		{"10081", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"1.5h", 0, false},
		{"h", 0, false},
		{"30m5", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMinutes(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{-3, "0m"},
		{45, "45m"},
		{60, "1h"},
		{95, "1h 35m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.in))

		mins, ok := ParseMinutes(FormatMinutes(tt.in))
		assert.True(t, ok, "FormatMinutes(%d) does not parse back", tt.in)
		if tt.in > 0 {
			assert.Equal(t, tt.in, mins)
		}
	}
}
