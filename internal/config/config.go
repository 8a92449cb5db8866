package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Lint   LintConfig   `toml:"lint"`
	Hook   HookConfig   `toml:"hook"`
	Update UpdateConfig `toml:"update"`

	// Compiled regex from Lint.ScopePattern (not serialized)
	scopeRegex *regexp.Regexp
}

type LintConfig struct {
	Types             []string `toml:"types"`
	MaxSubjectLength  int      `toml:"max_subject_length"`
	WarnSubjectLength int      `toml:"warn_subject_length"`
	RequireScope      bool     `toml:"require_scope"`
	ScopePattern      string   `toml:"scope_pattern"`
	FooterKeys        []string `toml:"footer_keys"`
}

type HookConfig struct {
	Strict bool `toml:"strict"`
}

type UpdateConfig struct {
	Enabled        bool      `toml:"enabled"`
	LastCheck      time.Time `toml:"last_check"`
	SkippedVersion string    `toml:"skipped_version"`
	Repo           string    `toml:"repo"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Lint: LintConfig{
			Types: []string{
				"feat", "fix", "docs", "style", "refactor",
				"perf", "test", "build", "ci", "chore", "revert",
			},
			MaxSubjectLength:  72,
			WarnSubjectLength: 50,
			RequireScope:      false,
			ScopePattern:      "[a-z0-9]+(-[a-z0-9]+)*",
			FooterKeys: []string{
				"Closes", "Refs", "Relates-to", "BREAKING CHANGE", "Co-authored-by",
			},
		},
		Hook: HookConfig{
			Strict: false,
		},
		Update: UpdateConfig{
			Enabled: true,
			Repo:    "wahlandcase/attuned.commitcheck",
		},
	}
	// Default pattern is a known-good constant
	_ = cfg.compileRegex()
	return cfg
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attcc.toml"), nil
}

func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		cfg := DefaultConfig()
		if err := cfg.compileRegex(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := cfg.compileRegex(); err != nil {
				return nil, err
			}
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.compileRegex(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) compileRegex() error {
	// Empty pattern = any scope accepted
	if c.Lint.ScopePattern == "" {
		c.scopeRegex = nil
		return nil
	}
	re, err := regexp.Compile("^(" + c.Lint.ScopePattern + ")$")
	if err != nil {
		return fmt.Errorf("invalid lint.scope_pattern %q: %w", c.Lint.ScopePattern, err)
	}
	c.scopeRegex = re
	return nil
}

// ScopeRegex returns the compiled scope pattern regex (nil if any scope is accepted)
func (c *Config) ScopeRegex() *regexp.Regexp {
	// Safe even if compileRegex() was never called
	return c.scopeRegex
}

func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// AllowsType reports whether the type token is in the configured set
func (c *Config) AllowsType(t string) bool {
	for _, allowed := range c.Lint.Types {
		if t == allowed {
			return true
		}
	}
	return false
}

// AllowsFooterKey reports whether the footer key is in the allow-list.
// The hyphenated breaking change spelling is accepted alongside the spaced one.
func (c *Config) AllowsFooterKey(key string) bool {
	for _, allowed := range c.Lint.FooterKeys {
		if key == allowed {
			return true
		}
		if allowed == "BREAKING CHANGE" && key == "BREAKING-CHANGE" {
			return true
		}
	}
	return false
}

// ShouldCheckForUpdate returns true if update check is enabled and 24h since last check
func (c *Config) ShouldCheckForUpdate() bool {
	if !c.Update.Enabled {
		return false
	}
	return time.Since(c.Update.LastCheck) > 24*time.Hour
}

// RecordUpdateCheck updates the last check time
func (c *Config) RecordUpdateCheck() {
	c.Update.LastCheck = time.Now()
}
