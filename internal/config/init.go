package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SampleConfig is the default config.toml written by Init.
const SampleConfig = `# jiratrack configuration
# Generate an API token at:
#   https://id.atlassian.com/manage-profile/security/api-tokens

atlassian_url = "https://yourcompany.atlassian.net"
user_email = "you@yourcompany.com"
user_api_token = "your-api-token-here"

# Optional: only list issues from this project.
# project = "PROJ"

# Optional: replace the issue query entirely.
# jql = "assignee = currentUser() AND sprint in openSprints()"

# Optional: write debug logs here.
# log_file = "/tmp/jiratrack.log"
`

// SampleYAMLConfig is written instead of SampleConfig for .yaml/.yml paths.
const SampleYAMLConfig = `# jiratrack configuration
atlassian_url: https://yourcompany.atlassian.net
user_email: you@yourcompany.com
user_api_token: your-api-token-here
# project: PROJ
`

// Init writes a sample config file at path. An existing file is left
// untouched and reported through created=false.
func Init(path string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating config dir: %w", err)
	}

	content := SampleConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		content = SampleYAMLConfig
	}
	return writeIfNotExists(path, content)
}

func writeIfNotExists(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil // never overwrite
	}
	// The file carries an API token.
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return false, fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
