package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jbeckham/jiratrack/internal/config"
	"github.com/jbeckham/jiratrack/internal/jira"
	"github.com/jbeckham/jiratrack/internal/session"
	"github.com/jbeckham/jiratrack/internal/tui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jiratrack: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		initConfig bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:           "jiratrack",
		Short:         "Log time against your assigned Jira issues",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				p, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				configPath = p
			}

			if initConfig {
				return runInit(cmd.OutOrStdout(), configPath)
			}
			return run(configPath, debug)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (.toml or .yaml)")
	cmd.Flags().BoolVar(&initConfig, "init", false, "write a sample config file and exit")
	cmd.Flags().BoolVar(&debug, "debug", false, "write debug logs to jiratrack.log")
	return cmd
}

func runInit(w io.Writer, path string) error {
	created, err := config.Init(path)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(w, "%s already exists\n", path)
		return nil
	}
	fmt.Fprintf(w, "Created %s\n\n", path)
	fmt.Fprintln(w, "To get started:")
	fmt.Fprintln(w, "  1. Set atlassian_url, user_email and user_api_token")
	fmt.Fprintln(w, "     (generate a token at https://id.atlassian.com/manage-profile/security/api-tokens)")
	fmt.Fprintln(w, "  2. Run jiratrack again")
	return nil
}

func run(configPath string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile, debug)
	if err != nil {
		return err
	}
	defer closeLog()

	statePath, err := config.DefaultStatePath()
	if err != nil {
		return err
	}
	saved, err := config.LoadTimer(statePath)
	if err != nil {
		// A broken state file only loses the timer.
		slog.Warn("Ignoring timer state", "path", statePath, "err", err)
	}

	client := jira.NewClient(cfg.AtlassianURL, cfg.UserEmail, cfg.UserAPIToken,
		jira.WithJQL(cfg.IssueJQL()))

	opts := []tui.Option{
		tui.WithTimerStore(func(t *session.Timer) error {
			return config.SaveTimer(statePath, toTimerState(t))
		}),
	}
	if saved != nil {
		opts = append(opts, tui.WithTimer(&session.Timer{IssueKey: saved.IssueKey, StartedAt: saved.StartedAt}))
	}

	slog.Info("Starting jiratrack", "url", client.BaseURL(), "jql", cfg.IssueJQL())
	p := tea.NewProgram(tui.NewApp(client, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// setupLogging routes slog to a file while the UI owns the terminal.
// Without a log file or --debug, logs are discarded.
func setupLogging(logFile string, debug bool) (func(), error) {
	if logFile == "" && !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}
	if logFile == "" {
		logFile = "jiratrack.log"
	}

	f, err := tea.LogToFile(logFile, "jiratrack")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() { f.Close() }, nil
}

func toTimerState(t *session.Timer) *config.TimerState {
	if t == nil {
		return nil
	}
	return &config.TimerState{IssueKey: t.IssueKey, StartedAt: t.StartedAt}
}
