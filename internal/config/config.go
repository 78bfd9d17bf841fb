// Package config handles loading and validating jiratrack configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultJQL selects the open issues assigned to the authenticated user.
const DefaultJQL = "assignee = currentUser() AND statusCategory != Done ORDER BY updated DESC"

// Config holds the application configuration.
// The same keys are accepted from TOML and YAML files.
type Config struct {
	AtlassianURL string `toml:"atlassian_url" yaml:"atlassian_url"`
	UserEmail    string `toml:"user_email" yaml:"user_email"`
	UserAPIToken string `toml:"user_api_token" yaml:"user_api_token"`
	Project      string `toml:"project" yaml:"project,omitempty"`
	JQL          string `toml:"jql" yaml:"jql,omitempty"`
	LogFile      string `toml:"log_file" yaml:"log_file,omitempty"`
}

// DefaultConfigDir returns ~/.config/jiratrack.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "jiratrack"), nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads, parses and validates the config file at path.
// The decoder is picked from the file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s (run with --init to create one)", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (use .toml or .yaml)", ext)
	}

	cfg.AtlassianURL = strings.TrimRight(strings.TrimSpace(cfg.AtlassianURL), "/")
	cfg.Project = strings.TrimSpace(cfg.Project)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required config fields are set.
func (c *Config) Validate() error {
	if c.AtlassianURL == "" {
		return fmt.Errorf("atlassian_url is required")
	}
	u, err := url.Parse(c.AtlassianURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("atlassian_url must be an http(s) URL, got %q", c.AtlassianURL)
	}
	if c.UserEmail == "" {
		return fmt.Errorf("user_email is required")
	}
	if c.UserAPIToken == "" {
		return fmt.Errorf("user_api_token is required")
	}
	return nil
}

// IssueJQL returns the query used to list the user's issues.
func (c *Config) IssueJQL() string {
	if c.JQL != "" {
		return c.JQL
	}
	if c.Project != "" {
		return fmt.Sprintf("project = %q AND %s", c.Project, DefaultJQL)
	}
	return DefaultJQL
}
