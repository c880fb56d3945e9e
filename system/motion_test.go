package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/galactic-wrench/component"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

func TestPlayerStaysInBounds(t *testing.T) {
	starts := []vmath.Vec2{
		{X: parameter.PlayerMinX, Y: parameter.PlayerMinY},
		{X: parameter.PlayerMaxX, Y: parameter.PlayerMaxY},
		{X: parameter.PlayerMinX, Y: parameter.PlayerMaxY},
		{X: 400, Y: 300},
	}
	for keys := engine.Keys(0); keys < 16; keys++ {
		for _, start := range starts {
			s := newPlayingState()
			s.Player.Pos = start
			in := engine.Input{Keys: keys}
			for i := 0; i < 200; i++ {
				s = movePlayer(s, in)
				p := s.Player.Pos
				if !vmath.Within(p, parameter.PlayerMinX, parameter.PlayerMinY, parameter.PlayerMaxX, parameter.PlayerMaxY) {
					t.Fatalf("keys %04b from %+v left bounds at %+v", keys, start, p)
				}
			}
		}
	}
}

func TestDiagonalMoveNotNormalized(t *testing.T) {
	s := newPlayingState()
	next := movePlayer(s, engine.Input{Keys: engine.KeyUp | engine.KeyRight})

	if next.Player.Pos.X != 405 || next.Player.Pos.Y != 295 {
		t.Errorf("Pos = %+v, want (405,295)", next.Player.Pos)
	}
}

func TestAimUsesMovedPosition(t *testing.T) {
	s := newPlayingState()
	in := engine.Input{Keys: engine.KeyRight, Cursor: vmath.Vec2{X: 405, Y: 400}}

	next := aimPlayer(movePlayer(s, in), in)

	if math.Abs(next.Player.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("Angle = %v, want pi/2", next.Player.Angle)
	}
}

func TestBulletRemovedOnTickItLeaves(t *testing.T) {
	env := newTestEnv(10)
	s := newPlayingState()
	s, keep := addBullet(s, env, 780, 300, 0)
	s, gone := addBullet(s, env, 815, 300, 0) // 815 + 18 > 820

	next := Step(s, engine.NewInput(), env)

	if _, ok := lookup(next.Bullets, gone); ok {
		t.Error("out-of-bounds bullet still present")
	}
	if b, ok := lookup(next.Bullets, keep); !ok || b.Pos.X != 798 {
		t.Errorf("in-bounds bullet = %+v (present %v), want x=798", b.Pos, ok)
	}
}

func TestEnemiesSteerTowardMovedPlayer(t *testing.T) {
	env := newTestEnv(11)
	s := newPlayingState()
	s, id := addEnemy(s, env, parameter.EnemyDrone, 100, 305, 20)

	in := engine.NewInput()
	in.Keys = engine.KeyDown
	next := Step(s, in, env)

	e, _ := lookup(next.Enemies, id)
	want := vmath.AngleTo(vmath.Vec2{X: 100, Y: 305}, vmath.Vec2{X: 400, Y: 305})
	if math.Abs(e.Angle-want) > 1e-9 {
		t.Errorf("Angle = %v, want %v (toward moved player)", e.Angle, want)
	}
	if math.Abs(e.Pos.X-101.5) > 1e-9 {
		t.Errorf("Pos.X = %v, want 101.5", e.Pos.X)
	}
}

func TestParticleLifetime(t *testing.T) {
	env := newTestEnv(12)
	s := newPlayingState()
	id := env.IDs.Next()
	s.Particles = s.Particles.Append(id, component.ParticleComponent{
		Pos: vmath.Vec2{X: 10, Y: 10}, Vel: vmath.Vec2{X: 4}, Life: 40, Size: 5,
	})

	prevSize := 5.0
	for tick := 1; tick <= 39; tick++ {
		s = Step(s, engine.NewInput(), env)
		p, ok := lookup(s.Particles, id)
		if !ok {
			t.Fatalf("particle gone after tick %d", tick)
		}
		if p.Size > prevSize {
			t.Fatalf("size grew at tick %d", tick)
		}
		prevSize = p.Size
	}

	s = Step(s, engine.NewInput(), env)
	if _, ok := lookup(s.Particles, id); ok {
		t.Error("particle present after tick 40")
	}
}

func TestParticleDamping(t *testing.T) {
	s := newPlayingState()
	s.Particles = s.Particles.Append(1, component.ParticleComponent{Vel: vmath.Vec2{X: 10}, Life: 5, Size: 4})

	p, _ := lookup(updateParticles(s).Particles, 1)

	if p.Pos.X != 10 || math.Abs(p.Vel.X-9.5) > 1e-9 || p.Life != 4 || math.Abs(p.Size-3.88) > 1e-9 {
		t.Errorf("particle = %+v, want pos 10, vel 9.5, life 4, size 3.88", p)
	}
}

func TestExplosionExpires(t *testing.T) {
	env := newTestEnv(13)
	s := newPlayingState()
	s.Explosions = s.Explosions.Append(env.IDs.Next(), component.ExplosionComponent{})

	for i := 1; i < parameter.ExplosionFrames; i++ {
		s = Step(s, engine.NewInput(), env)
	}
	if s.Explosions.Len() != 1 {
		t.Fatalf("explosion gone before frame %d", parameter.ExplosionFrames)
	}
	s = Step(s, engine.NewInput(), env)
	if s.Explosions.Len() != 0 {
		t.Error("explosion present at frame 10")
	}
}
