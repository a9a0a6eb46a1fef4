// Package config loads the prreport YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/spiffcs/prreport/internal/triage"
)

// Config represents the application configuration. Flags override any value
// set here.
type Config struct {
	// Token is the GitHub personal access token. The GITHUB_TOKEN
	// environment variable takes precedence when set.
	Token string `yaml:"token,omitempty"`

	// Repo is the default owner/name repository to triage.
	Repo string `yaml:"repo,omitempty"`

	// ReviewOwner is the login whose approval signals "ready to merge".
	ReviewOwner string `yaml:"review_owner,omitempty"`

	// PriorityLabels override the built-in high-priority label fragments.
	PriorityLabels []string `yaml:"priority_labels,omitempty"`

	// BotLogins are automation accounts matched exactly by the comment
	// filter, in addition to the bot-substring heuristic.
	BotLogins []string `yaml:"bot_logins,omitempty"`

	// ProlificThreshold is the human comment count at which a commenter
	// is considered prolific. Zero means the default (3).
	ProlificThreshold int `yaml:"prolific_threshold,omitempty"`

	DefaultFormat string `yaml:"default_format,omitempty"`
	Workers       int    `yaml:"workers,omitempty"`
}

// ConfigPath returns the global config file location.
func ConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "prreport", "config.yaml")
}

// Load reads the global config file, if present, merged onto defaults.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config file at path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DefaultFormat == "" {
		c.DefaultFormat = "markdown"
	}
	if c.Workers == 0 {
		c.Workers = 10
	}
	if c.ProlificThreshold == 0 {
		c.ProlificThreshold = triage.DefaultProlificThreshold
	}
}

// GetGitHubToken returns the token, preferring the environment variable.
func (c *Config) GetGitHubToken() string {
	if env := os.Getenv("GITHUB_TOKEN"); env != "" {
		return env
	}
	return c.Token
}

// Engine builds a triage engine from the configured knobs. reviewOwner, when
// non-empty, overrides the configured value (flag precedence).
func (c *Config) Engine(reviewOwner string) *triage.Engine {
	if reviewOwner == "" {
		reviewOwner = c.ReviewOwner
	}
	e := triage.NewEngine(reviewOwner)
	e.PriorityLabels = c.PriorityLabels
	e.ProlificThreshold = c.ProlificThreshold
	if len(c.BotLogins) > 0 {
		e.Bots = &triage.BotDetector{KnownLogins: c.BotLogins}
	}
	return e
}
