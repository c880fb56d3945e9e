package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

func TestFireCooldown(t *testing.T) {
	env := newTestEnv(20)
	s := newPlayingState()
	in := engine.NewInput()
	in.Fire = true
	in.Cursor = vmath.Vec2{X: 400, Y: 0}

	shots := 0
	for tick := 1; tick <= 11; tick++ {
		s = Step(s, in, env)
		shots += countEvents(s, event.EventShotFired)
		if tick == 1 && shots != 1 {
			t.Fatalf("no shot on first tick")
		}
	}

	// Combustor: 150ms, so tick 1 and tick 11 (160ms later)
	if shots != 2 {
		t.Errorf("shots = %d, want 2", shots)
	}
	if s.Bullets.Len() != 2 {
		t.Errorf("Bullets.Len() = %d, want 2", s.Bullets.Len())
	}
}

func TestFireSpawnsAtMuzzle(t *testing.T) {
	env := newTestEnv(21)
	s := newPlayingState()
	s.Weapon = 1
	s.Player.Angle = 0

	next := fire(s, engine.Input{Fire: true}, env)

	items := next.Bullets.Items()
	if len(items) != 1 {
		t.Fatalf("Bullets.Len() = %d, want 1", len(items))
	}
	b := items[0].Value
	w := parameter.WeaponAt(1)
	if math.Abs(b.Pos.X-425) > 1e-9 || math.Abs(b.Pos.Y-300) > 1e-9 {
		t.Errorf("Pos = %+v, want (425,300)", b.Pos)
	}
	if b.Speed != w.Speed || b.Weapon != 1 || b.Damage != w.Damage {
		t.Errorf("bullet = %+v, want speed %v weapon 1 damage %d", b, w.Speed, w.Damage)
	}
	if next.Particles.Len() != parameter.MuzzleParticles {
		t.Errorf("Particles.Len() = %d, want %d", next.Particles.Len(), parameter.MuzzleParticles)
	}
	for _, p := range next.Particles.Values() {
		if p.Color != w.Color {
			t.Errorf("muzzle particle color = %s, want %s", p.Color, w.Color)
		}
	}
	if !next.HasFired || next.LastShot != s.GameTime {
		t.Error("last shot not recorded")
	}
}

func TestWeaponSelectLastValidWins(t *testing.T) {
	tests := []struct {
		name    string
		selects []int
		want    int
	}{
		{"None", nil, 0},
		{"Single", []int{2}, 2},
		{"LastWins", []int{1, 3}, 3},
		{"InvalidIgnored", []int{1, 7, -1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := selectWeapon(newPlayingState(), engine.Input{WeaponSelect: tt.selects})
			if s.Weapon != tt.want {
				t.Errorf("Weapon = %d, want %d", s.Weapon, tt.want)
			}
		})
	}
}
