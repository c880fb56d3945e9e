package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/galactic-wrench/parameter"
)

// Config holds runtime simulation settings populated from command-line flags
type Config struct {
	// TickInterval is both the game-time advance per step and the real-time tick period
	TickInterval time.Duration

	// Seed feeds the simulation random source, 0 selects a time-based seed
	Seed uint64

	// SnapshotBulletDamage makes bullets deal the damage of the weapon that fired them
	// instead of the currently equipped weapon
	SnapshotBulletDamage bool
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		TickInterval: parameter.TickInterval,
	}
}

// Validate rejects settings the scheduler cannot run with
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	return nil
}
