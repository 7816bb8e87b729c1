package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/klokkia.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			WinScore:  100,
			TickRate:  30,
			MoveSpeed: 5,
			Bound:     45,
			Spawn:     Point{X: 0, Z: 15},
		},
		Challenge: ChallengeConfig{
			MaxAttempts:     3,
			ProximityRadius: 5,
			CorrectDelay:    2 * time.Second,
			RevealDelay:     3 * time.Second,
			RewardCorrect:   10,
			RewardWithHint:  1,
		},
		Predators: PredatorConfig{
			Enabled:     true,
			SpeedMin:    4,
			SpeedMax:    6,
			Lifetime:    35 * time.Second,
			CatchRadius: 3,
			Penalty:     5,
			SpawnEdge:   50,
			SpawnSpread: 20,
			Roster: []PredatorEntry{
				{Kind: "lion", Name: "Leeuw", After: 60 * time.Second},
				{Kind: "tiger", Name: "Tijger", After: 120 * time.Second},
				{Kind: "wolf", Name: "Wolf", After: 180 * time.Second},
				{Kind: "polar_bear", Name: "IJsbeer", After: 300 * time.Second},
				{Kind: "monster", Name: "Monster", After: 600 * time.Second},
			},
		},
		Speech: SpeechConfig{
			Enabled: true,
			Voice:   "nl",
			Rate:    149,
		},
		Storage: StorageConfig{
			Path: "~/.klokkia/scores.db",
		},
		Server: ServerConfig{
			HTTPAddr:    ":8080",
			SSHAddr:     ":2222",
			HostKeyPath: ".ssh/klokkia_ed25519",
		},
	}
}
