package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			PlayerSurvivesBlast: false,
		},
		Animation: AnimationConfig{
			MoveMs: 150,
			WaveMs: 120,
			TickMs: 33,
		},
	}
}
