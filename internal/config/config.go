// Package config provides YAML-based configuration loading for the
// game: resolution rules, animation timing, level sources, and progress
// storage.
package config

import "time"

// Config contains all runtime configuration.
type Config struct {
	Rules     RulesConfig     `yaml:"rules"`
	Animation AnimationConfig `yaml:"animation"`
	Levels    LevelsConfig    `yaml:"levels"`
	Storage   StorageConfig   `yaml:"storage"`
}

// RulesConfig tunes the turn resolution rules.
type RulesConfig struct {
	// PlayerSurvivesBlast spares the player caught next to an explosion.
	PlayerSurvivesBlast bool `yaml:"player_survives_blast"`
}

// AnimationConfig defines playback timing in milliseconds.
type AnimationConfig struct {
	MoveMs int `yaml:"move_ms"` // duration of one movement stage
	WaveMs int `yaml:"wave_ms"` // duration of one zap/explosion wave
	TickMs int `yaml:"tick_ms"` // UI tick interval
}

// MoveDuration returns the movement stage duration.
func (a AnimationConfig) MoveDuration() time.Duration {
	return time.Duration(a.MoveMs) * time.Millisecond
}

// WaveDuration returns the hazard wave stage duration.
func (a AnimationConfig) WaveDuration() time.Duration {
	return time.Duration(a.WaveMs) * time.Millisecond
}

// TickInterval returns the UI tick interval.
func (a AnimationConfig) TickInterval() time.Duration {
	return time.Duration(a.TickMs) * time.Millisecond
}

// LevelsConfig selects where levels come from.
type LevelsConfig struct {
	// Dir points at a directory of level YAML files. Empty means the
	// embedded campaign.
	Dir string `yaml:"dir"`
}

// StorageConfig locates the progress database.
type StorageConfig struct {
	// Path to the SQLite file. Empty means ~/.infestation/progress.db.
	Path string `yaml:"path"`
}
