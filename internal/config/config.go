// Package config provides YAML-based configuration loading, environment
// overrides and difficulty presets for klokkia.
package config

import "time"

// Config contains all configuration for klokkia.
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Challenge ChallengeConfig `yaml:"challenge"`
	Predators PredatorConfig  `yaml:"predators"`
	Speech    SpeechConfig    `yaml:"speech"`
	Storage   StorageConfig   `yaml:"storage"`
	Server    ServerConfig    `yaml:"server"`
}

// GameConfig defines session-wide rules and player movement.
type GameConfig struct {
	WinScore  int     `yaml:"win_score" env:"WIN_SCORE"`
	TickRate  int     `yaml:"tick_rate" env:"FPS"`
	MoveSpeed float64 `yaml:"move_speed"`
	Bound     float64 `yaml:"bound"`
	Spawn     Point   `yaml:"spawn"`
}

// Point is a position on the arena floor.
type Point struct {
	X float64 `yaml:"x" env:"SPAWN_X"`
	Z float64 `yaml:"z" env:"SPAWN_Z"`
}

// ChallengeConfig defines the clock challenge rules.
type ChallengeConfig struct {
	MaxAttempts     int           `yaml:"max_attempts" env:"MAX_ATTEMPTS"`
	ProximityRadius float64       `yaml:"proximity_radius"`
	CorrectDelay    time.Duration `yaml:"correct_delay"`
	RevealDelay     time.Duration `yaml:"reveal_delay"`
	RewardCorrect   int           `yaml:"reward_correct"`
	RewardWithHint  int           `yaml:"reward_with_hint"`
}

// PredatorConfig defines the predator schedule.
type PredatorConfig struct {
	Enabled     bool            `yaml:"enabled" env:"PREDATORS"`
	SpeedMin    float64         `yaml:"speed_min"`
	SpeedMax    float64         `yaml:"speed_max"`
	Lifetime    time.Duration   `yaml:"lifetime" env:"PREDATOR_LIFETIME"`
	CatchRadius float64         `yaml:"catch_radius"`
	Penalty     int             `yaml:"penalty"`
	SpawnEdge   float64         `yaml:"spawn_edge"`
	SpawnSpread float64         `yaml:"spawn_spread"`
	Roster      []PredatorEntry `yaml:"roster"`
}

// PredatorEntry is one predator type in the roster.
type PredatorEntry struct {
	Kind  string        `yaml:"kind"`
	Name  string        `yaml:"name"`
	After time.Duration `yaml:"after"`
}

// SpeechConfig selects the pronunciation backend.
type SpeechConfig struct {
	Enabled bool   `yaml:"enabled" env:"SPEECH"`
	Engine  string `yaml:"engine" env:"SPEECH_ENGINE"` // empty means autodetect
	Voice   string `yaml:"voice"`
	Rate    int    `yaml:"rate"`
}

// StorageConfig locates the leaderboard database.
type StorageConfig struct {
	Path string `yaml:"path" env:"DB"`
}

// ServerConfig defines the addresses used by `klokkia serve`.
type ServerConfig struct {
	HTTPAddr    string `yaml:"http_addr" env:"HTTP_ADDR"`
	SSHAddr     string `yaml:"ssh_addr" env:"SSH_ADDR"`
	HostKeyPath string `yaml:"host_key_path" env:"SSH_HOST_KEY"`
}
