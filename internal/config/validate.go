package config

import (
	"errors"
	"fmt"
)

// ErrInvalid marks configuration values that cannot be used.
var ErrInvalid = errors.New("invalid config")

// Validate reports every unusable value at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Game.WinScore > 0, "game.win_score must be positive, got %d", c.Game.WinScore)
	check(c.Game.TickRate > 0 && c.Game.TickRate <= 120, "game.tick_rate must be in 1..120, got %d", c.Game.TickRate)
	check(c.Game.MoveSpeed > 0, "game.move_speed must be positive")
	check(c.Game.Bound > 0, "game.bound must be positive")

	check(c.Challenge.MaxAttempts > 0, "challenge.max_attempts must be positive, got %d", c.Challenge.MaxAttempts)
	check(c.Challenge.ProximityRadius > 0, "challenge.proximity_radius must be positive")
	check(c.Challenge.CorrectDelay >= 0 && c.Challenge.RevealDelay >= 0, "challenge delays must not be negative")
	check(c.Challenge.RewardCorrect >= 0 && c.Challenge.RewardWithHint >= 0, "challenge rewards must not be negative")

	p := c.Predators
	check(p.SpeedMin > 0 && p.SpeedMax > p.SpeedMin, "predators: need 0 < speed_min < speed_max, got %g..%g", p.SpeedMin, p.SpeedMax)
	check(p.Lifetime > 0, "predators.lifetime must be positive")
	check(p.CatchRadius > 0, "predators.catch_radius must be positive")
	check(p.Penalty >= 0, "predators.penalty must not be negative")
	seen := make(map[string]bool)
	for i, e := range p.Roster {
		check(e.Kind != "", "predators.roster[%d].kind is empty", i)
		check(!seen[e.Kind], "predators.roster[%d]: duplicate kind %q", i, e.Kind)
		check(e.After >= 0, "predators.roster[%d].after must not be negative", i)
		seen[e.Kind] = true
	}

	return errors.Join(errs...)
}
