package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeckham/jiratrack/internal/config"
	"github.com/jbeckham/jiratrack/internal/session"
)

func TestInitWritesSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jiratrack", "config.yaml")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "--init"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.SampleYAMLConfig, string(data))

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "--init"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "already exists")
}

func TestMissingConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--init")
}

func TestRejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"IMG-1"})
	assert.Error(t, cmd.Execute())
}

func TestToTimerState(t *testing.T) {
	assert.Nil(t, toTimerState(nil))

	started := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	got := toTimerState(&session.Timer{IssueKey: "IMG-1", StartedAt: started})
	assert.Equal(t, &config.TimerState{IssueKey: "IMG-1", StartedAt: started}, got)
}
