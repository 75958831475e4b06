// Package config provides YAML-based configuration loading for applegrid.
//
// Board size, collectible count and the random seed are fixed by the game
// and deliberately absent here.
package config

import (
	"fmt"
	"time"
)

// Config is the full applegrid configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Messages MessagesConfig `yaml:"messages"`
	Theme    ThemeConfig    `yaml:"theme"`
	Log      LogConfig      `yaml:"log"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// InvalidPolicy decides what happens when a line does not decode to a move.
type InvalidPolicy string

const (
	// InvalidSkip ignores the line and waits for the next one.
	InvalidSkip InvalidPolicy = "skip"
	// InvalidWarn prints the invalid-move message, then waits.
	InvalidWarn InvalidPolicy = "warn"
)

// InputConfig controls input handling.
type InputConfig struct {
	Invalid InvalidPolicy `yaml:"invalid"`
}

// MessagesConfig holds the text shown to the player.
type MessagesConfig struct {
	Welcome   string `yaml:"welcome"`
	Prompt    string `yaml:"prompt"`
	Moved     string `yaml:"moved"` // Formatted with the direction name
	Blocked   string `yaml:"blocked"`
	Collected string `yaml:"collected"`
	Won       string `yaml:"won"`
	Invalid   string `yaml:"invalid"`
}

// ThemeConfig holds lipgloss colors (ANSI codes or hex) per cell kind.
type ThemeConfig struct {
	Player      string `yaml:"player"`
	Collectible string `yaml:"collectible"`
	Wall        string `yaml:"wall"`
	Empty       string `yaml:"empty"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SSHConfig configures the serve command.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Input.Invalid {
	case InvalidSkip, InvalidWarn:
	default:
		return fmt.Errorf("config: unknown input.invalid policy %q (want %q or %q)",
			c.Input.Invalid, InvalidSkip, InvalidWarn)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}

	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh.idle_timeout_minutes must not be negative, got %d", c.SSH.IdleTimeoutMinutes)
	}
	return nil
}
