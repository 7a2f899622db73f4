package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if fromYAML != Default() {
		t.Errorf("embedded defaults drifted from Default():\n yaml: %+v\n code: %+v", fromYAML, Default())
	}
}

func TestParsePartialDocumentKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 1.2\nplayer:\n  starting_lives: 7\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("gravity = %v, expected 1.2", cfg.Physics.Gravity)
	}
	if cfg.Player.StartingLives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Player.StartingLives)
	}
	if cfg.Physics.TerminalVelocity != 20 {
		t.Errorf("untouched terminal_velocity = %v, expected default 20", cfg.Physics.TerminalVelocity)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero fps", "window:\n  fps: 0\n"},
		{"positive jump", "physics:\n  jump_velocity: 3\n"},
		{"no lives", "player:\n  starting_lives: 0\n"},
		{"malformed", "window: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  speed: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Enemy.Speed != 3 {
		t.Errorf("enemy speed = %v, expected 3", cfg.Enemy.Speed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in        string
		preset    DifficultyPreset
		lives     int
		expectErr bool
	}{
		{"", DifficultyNormal, 3, false},
		{"easy", DifficultyEasy, 5, false},
		{"HARD", DifficultyHard, 2, false},
		{"normal", DifficultyNormal, 3, false},
		{"nightmare", "", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParsePreset(tc.in)
			if tc.expectErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePreset: %v", err)
			}
			if p != tc.preset {
				t.Errorf("preset = %q, expected %q", p, tc.preset)
			}
			cfg := Default()
			ApplyPreset(&cfg, p)
			if cfg.Player.StartingLives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Player.StartingLives, tc.lives)
			}
		})
	}
}
