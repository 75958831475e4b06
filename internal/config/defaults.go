package config

import (
	_ "embed"
)

//go:embed defaults/applegrid.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			Invalid: InvalidSkip,
		},
		Messages: MessagesConfig{
			Welcome:   "Eat all the apples! Move with w/a/s/d.",
			Prompt:    "> ",
			Moved:     "You moved %s!",
			Blocked:   "",
			Collected: "Apple eaten!",
			Won:       "Congrats! Y O U  W O N!!!",
			Invalid:   "Invalid move!",
		},
		Theme: ThemeConfig{
			Player:      "11",
			Collectible: "9",
			Wall:        "245",
			Empty:       "240",
		},
		Log: LogConfig{
			Level: "warn",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			HostKey:            "",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// fillDefaults restores defaults for keys explicitly set to an empty value
// where empty makes no sense. Empty messages are kept: an empty message
// means "print nothing".
func fillDefaults(cfg *Config) {
	def := Default()

	if cfg.Input.Invalid == "" {
		cfg.Input.Invalid = def.Input.Invalid
	}
	if cfg.Theme.Player == "" {
		cfg.Theme.Player = def.Theme.Player
	}
	if cfg.Theme.Collectible == "" {
		cfg.Theme.Collectible = def.Theme.Collectible
	}
	if cfg.Theme.Wall == "" {
		cfg.Theme.Wall = def.Theme.Wall
	}
	if cfg.Theme.Empty == "" {
		cfg.Theme.Empty = def.Theme.Empty
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.SSH.Address == "" {
		cfg.SSH.Address = def.SSH.Address
	}
	if cfg.SSH.IdleTimeoutMinutes == 0 {
		cfg.SSH.IdleTimeoutMinutes = def.SSH.IdleTimeoutMinutes
	}
}
