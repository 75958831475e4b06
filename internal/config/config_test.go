package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("input:\n  invalid: warn\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Input.Invalid != InvalidWarn {
		t.Errorf("Input.Invalid = %q, expected %q", cfg.Input.Invalid, InvalidWarn)
	}
	if cfg.Messages.Invalid != Default().Messages.Invalid {
		t.Errorf("Messages.Invalid = %q, expected default", cfg.Messages.Invalid)
	}
	if cfg.Theme != Default().Theme {
		t.Errorf("Theme = %+v, expected defaults", cfg.Theme)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Parse(nil) = %+v, expected defaults", cfg)
	}
}

func TestParseEmptyMessageSilences(t *testing.T) {
	cfg, err := Parse([]byte("messages:\n  moved: \"\"\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Messages.Moved != "" {
		t.Errorf("Messages.Moved = %q, expected empty", cfg.Messages.Moved)
	}
}

func TestParseEmptyThemeRestored(t *testing.T) {
	cfg, err := Parse([]byte("theme:\n  wall: \"\"\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Theme.Wall != Default().Theme.Wall {
		t.Errorf("Theme.Wall = %q, expected default %q", cfg.Theme.Wall, Default().Theme.Wall)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown policy", "input:\n  invalid: loop\n", "input.invalid"},
		{"unknown level", "log:\n  level: loud\n", "log.level"},
		{"negative timeout", "ssh:\n  idle_timeout_minutes: -1\n", "idle_timeout_minutes"},
		{"unknown key", "board:\n  size: 10\n", "board"},
		{"bad yaml", "input: [\n", "yaml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("messages:\n  won: \"Victory\"\nlog:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Messages.Won != "Victory" {
		t.Errorf("Messages.Won = %q, expected %q", cfg.Messages.Won, "Victory")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected %q", cfg.Log.Level, "debug")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("round trip changed config:\n%+v\n%+v", cfg, Default())
	}
}

func TestIdleTimeout(t *testing.T) {
	s := SSHConfig{IdleTimeoutMinutes: 5}
	if s.IdleTimeout() != 5*time.Minute {
		t.Errorf("IdleTimeout() = %v, expected 5m", s.IdleTimeout())
	}
}
