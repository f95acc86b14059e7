package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	src := "rules:\n  player_survives_blast: true\nanimation:\n  move_ms: 80\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Rules.PlayerSurvivesBlast {
		t.Error("rule not loaded")
	}
	if cfg.Animation.MoveMs != 80 {
		t.Errorf("move_ms = %d, want 80", cfg.Animation.MoveMs)
	}
	// Unset timing values fall back to defaults.
	if cfg.Animation.WaveMs != Default().Animation.WaveMs {
		t.Errorf("wave_ms = %d, want default", cfg.Animation.WaveMs)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg Config
	cfg = withDefaults(cfg)
	if cfg.Animation.TickMs <= 0 {
		t.Error("defaults must set a tick interval")
	}
	if Default().Rules.PlayerSurvivesBlast {
		t.Error("blast must be lethal by default")
	}
}
