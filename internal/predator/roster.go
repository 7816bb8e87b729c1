package predator

import "time"

// RosterEntry describes one predator type and when it enters the arena.
type RosterEntry struct {
	Kind      string        `yaml:"kind" json:"kind"`
	Name      string        `yaml:"name" json:"name"`
	Threshold time.Duration `yaml:"threshold" json:"threshold"`
}

// DefaultRoster lists the predators in ascending threshold order.
var DefaultRoster = []RosterEntry{
	{Kind: "lion", Name: "Leeuw", Threshold: 60 * time.Second},
	{Kind: "tiger", Name: "Tijger", Threshold: 120 * time.Second},
	{Kind: "wolf", Name: "Wolf", Threshold: 180 * time.Second},
	{Kind: "polar_bear", Name: "IJsbeer", Threshold: 300 * time.Second},
	{Kind: "monster", Name: "Monster", Threshold: 600 * time.Second},
}
