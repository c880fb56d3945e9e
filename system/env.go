package system

import (
	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// Env carries the mutable services a step draws from
// State is never stored here; it flows through Step by value
type Env struct {
	Config engine.Config
	Rand   *vmath.Rand
	IDs    *core.IDSource
}

// NewEnv builds an Env seeded from cfg
func NewEnv(cfg engine.Config, ids *core.IDSource) Env {
	return Env{
		Config: cfg,
		Rand:   vmath.NewRand(cfg.Seed),
		IDs:    ids,
	}
}
