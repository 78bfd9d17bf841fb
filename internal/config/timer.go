package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimerState is the running timer stored between runs.
type TimerState struct {
	IssueKey  string    `json:"active_issue"`
	StartedAt time.Time `json:"activated_on"`
}

// DefaultStatePath returns ~/.local/share/jiratrack/state.json.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "jiratrack", "state.json"), nil
}

// LoadTimer reads the timer state file. Returns nil, nil if the file
// does not exist or holds no running timer.
func LoadTimer(path string) (*TimerState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no timer, not an error
		}
		return nil, fmt.Errorf("reading timer state: %w", err)
	}

	var state TimerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing timer state: %w", err)
	}
	if state.IssueKey == "" || state.StartedAt.IsZero() {
		return nil, nil
	}
	return &state, nil
}

// SaveTimer writes the timer state file. A nil state clears it.
func SaveTimer(path string, state *TimerState) error {
	if state == nil {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clearing timer state: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling timer state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing timer state: %w", err)
	}
	return nil
}
