package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCalm   DifficultyPreset = "calm" // no predators
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCalm}

// ApplyPreset modifies the predator schedule for a difficulty preset.
// Easy gives the player twice as long before each predator and slows them
// down; hard does the opposite; calm disables predators.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	switch preset {
	case "", DifficultyNormal:
	case DifficultyEasy:
		scaleSchedule(&cfg.Predators, 2, 0.75)
	case DifficultyHard:
		scaleSchedule(&cfg.Predators, 0.5, 1.25)
	case DifficultyCalm:
		cfg.Predators.Enabled = false
	default:
		return fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or calm)", ErrInvalid, preset)
	}
	return nil
}

func scaleSchedule(p *PredatorConfig, after, speed float64) {
	roster := make([]PredatorEntry, len(p.Roster))
	for i, e := range p.Roster {
		e.After = time.Duration(float64(e.After) * after)
		roster[i] = e
	}
	p.Roster = roster
	p.SpeedMin *= speed
	p.SpeedMax *= speed
}
