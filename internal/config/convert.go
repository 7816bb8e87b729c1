package config

import (
	"github.com/vovakirdan/klokkia/internal/challenge"
	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/game"
	"github.com/vovakirdan/klokkia/internal/predator"
	"github.com/vovakirdan/klokkia/internal/session"
)

// Session converts the configuration into session rules.
func (c Config) Session() session.Config {
	spawn := core.V(c.Game.Spawn.X, c.Game.Spawn.Z)

	ch := challenge.DefaultConfig()
	ch.MaxAttempts = c.Challenge.MaxAttempts
	ch.ProximityRadius = c.Challenge.ProximityRadius
	ch.CorrectDelay = c.Challenge.CorrectDelay
	ch.RevealDelay = c.Challenge.RevealDelay
	ch.RewardCorrect = uint(c.Challenge.RewardCorrect)
	ch.RewardWithHint = uint(c.Challenge.RewardWithHint)
	ch.WinScore = c.Game.WinScore

	pr := predator.DefaultConfig()
	pr.SpeedMin = c.Predators.SpeedMin
	pr.SpeedMax = c.Predators.SpeedMax
	pr.Lifetime = c.Predators.Lifetime
	pr.CatchRadius = c.Predators.CatchRadius
	pr.Penalty = uint(c.Predators.Penalty)
	pr.SpawnDistance = c.Predators.SpawnEdge
	pr.SpawnSpread = c.Predators.SpawnSpread
	pr.ResetPoint = spawn
	pr.Roster = make([]predator.RosterEntry, len(c.Predators.Roster))
	for i, e := range c.Predators.Roster {
		pr.Roster[i] = predator.RosterEntry{Kind: e.Kind, Name: e.Name, Threshold: e.After}
	}

	return session.Config{
		Challenge:        ch,
		Predator:         pr,
		PredatorsEnabled: c.Predators.Enabled,
		Spawn:            spawn,
	}
}

// GameOptions converts the configuration into terminal game options.
func (c Config) GameOptions(deps session.Deps) game.Options {
	return game.Options{
		Session:   c.Session(),
		Deps:      deps,
		MoveSpeed: c.Game.MoveSpeed,
		Bound:     c.Game.Bound,
	}
}

// Runtime returns the runtime configuration for a terminal of the given size.
func (c Config) Runtime(w, h int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: c.Game.TickRate, Seed: seed}
}
