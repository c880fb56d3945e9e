package system

import (
	"testing"

	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/parameter"
)

func TestBulletHitsSwarm(t *testing.T) {
	env := newTestEnv(1)
	s := newPlayingState()
	s, enemy := addEnemy(s, env, parameter.EnemySwarm, 105, 100, 30)
	s, _ = addBullet(s, env, 100, 100, 0)

	next := resolveBulletHits(s, env)

	e, ok := lookup(next.Enemies, enemy)
	if !ok {
		t.Fatal("swarm removed, want survivor")
	}
	want := 30 - parameter.WeaponAt(0).Damage
	if e.Health != want {
		t.Errorf("Health = %d, want %d", e.Health, want)
	}
	if next.Bullets.Len() != 0 {
		t.Errorf("Bullets.Len() = %d, want 0", next.Bullets.Len())
	}
	if next.Particles.Len() != parameter.ImpactParticles {
		t.Errorf("Particles.Len() = %d, want %d", next.Particles.Len(), parameter.ImpactParticles)
	}
	if countEvents(next, event.EventEnemyHit) != 1 {
		t.Errorf("EnemyHit events = %d, want 1", countEvents(next, event.EventEnemyHit))
	}
	if s.Bullets.Len() != 1 {
		t.Error("previous state mutated")
	}
}

func TestBulletDamageSource(t *testing.T) {
	tests := []struct {
		name       string
		snapshot   bool
		wantHealth int // 0 = killed
	}{
		{"EquippedWeaponParity", false, 40 - parameter.WeaponAt(0).Damage},
		{"SnapshotAtFire", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(2)
			env.Config.SnapshotBulletDamage = tt.snapshot
			s := newPlayingState()
			s.Weapon = 0
			s, enemy := addEnemy(s, env, parameter.EnemyDrone, 200, 200, 40)
			s, _ = addBullet(s, env, 200, 200, 3) // RYNO bullet, Combustor equipped

			next := resolveBulletHits(s, env)

			e, ok := lookup(next.Enemies, enemy)
			if tt.wantHealth == 0 {
				if ok {
					t.Errorf("enemy alive with %d health, want killed", e.Health)
				}
				return
			}
			if !ok || e.Health != tt.wantHealth {
				t.Errorf("Health = %d (alive %v), want %d", e.Health, ok, tt.wantHealth)
			}
		})
	}
}

func TestKilledEnemyExcludedFromLaterBullets(t *testing.T) {
	env := newTestEnv(3)
	s := newPlayingState()
	s, weak := addEnemy(s, env, parameter.EnemyDrone, 300, 300, 5)
	s, strong := addEnemy(s, env, parameter.EnemyDrone, 300, 300, 100)
	s, _ = addBullet(s, env, 300, 300, 0)
	s, _ = addBullet(s, env, 300, 300, 0)

	next := resolveBulletHits(s, env)

	if _, ok := lookup(next.Enemies, weak); ok {
		t.Error("weak enemy survived")
	}
	e, ok := lookup(next.Enemies, strong)
	if !ok || e.Health != 100-parameter.WeaponAt(0).Damage {
		t.Errorf("strong enemy health = %d, want %d", e.Health, 100-parameter.WeaponAt(0).Damage)
	}
	if next.Kills != 1 {
		t.Errorf("Kills = %d, want 1", next.Kills)
	}
	if next.Score != parameter.EnemyArchetypeByType(parameter.EnemyDrone).Points {
		t.Errorf("Score = %d, want drone points", next.Score)
	}
	if next.Explosions.Len() != 1 {
		t.Errorf("Explosions.Len() = %d, want 1", next.Explosions.Len())
	}
	if !next.Shake.Active() {
		t.Error("kill did not trigger shake")
	}
	if _, ok := next.Timeline.Pending(engine.TimerShakeReset); !ok {
		t.Error("shake reset not scheduled")
	}
}

func TestBulletMissOutsideRadius(t *testing.T) {
	env := newTestEnv(4)
	s := newPlayingState()
	// Swarm radius is 8; a bullet exactly 8 away does not hit
	s, enemy := addEnemy(s, env, parameter.EnemySwarm, 108, 100, 20)
	s, _ = addBullet(s, env, 100, 100, 0)

	next := resolveBulletHits(s, env)

	if e, _ := lookup(next.Enemies, enemy); e.Health != 20 {
		t.Errorf("Health = %d, want 20", e.Health)
	}
	if next.Bullets.Len() != 1 {
		t.Errorf("Bullets.Len() = %d, want 1", next.Bullets.Len())
	}
}

func TestCollisionWithNothingLeavesScalars(t *testing.T) {
	env := newTestEnv(5)
	s := newPlayingState()
	s.Score, s.Kills, s.Bolts, s.Health = 120, 3, 7, 60

	next := collectPickups(resolvePlayerContacts(resolveBulletHits(s, env), env))

	if next.Score != 120 || next.Kills != 3 || next.Bolts != 7 || next.Health != 60 || next.Wave != 1 {
		t.Errorf("scalars changed: score %d kills %d bolts %d health %d wave %d",
			next.Score, next.Kills, next.Bolts, next.Health, next.Wave)
	}
	if len(next.Events) != 0 {
		t.Errorf("Events = %v, want none", next.Events)
	}
}

func TestContactDamageEveryEnemy(t *testing.T) {
	env := newTestEnv(6)
	s := newPlayingState()
	p := s.Player.Pos
	s, _ = addEnemy(s, env, parameter.EnemyDrone, p.X+10, p.Y, 20)
	s, _ = addEnemy(s, env, parameter.EnemyTank, p.X, p.Y+30, 60)
	s, _ = addEnemy(s, env, parameter.EnemySwarm, p.X+100, p.Y, 10)

	next := resolvePlayerContacts(s, env)

	if want := parameter.PlayerMaxHealth - 2*parameter.ContactDamage; next.Health != want {
		t.Errorf("Health = %d, want %d", next.Health, want)
	}
	if countEvents(next, event.EventPlayerHit) != 2 {
		t.Errorf("PlayerHit events = %d, want 2", countEvents(next, event.EventPlayerHit))
	}
}

func TestContactDamageEndsSession(t *testing.T) {
	env := newTestEnv(7)
	s := newPlayingState()
	s.Health = 15
	p := s.Player.Pos
	s, _ = addEnemy(s, env, parameter.EnemyDrone, p.X, p.Y, 20)
	s, _ = addEnemy(s, env, parameter.EnemyDrone, p.X, p.Y, 20)
	s, _ = addEnemy(s, env, parameter.EnemyDrone, p.X, p.Y, 20)

	next := resolvePlayerContacts(s, env)

	if next.Health != 0 {
		t.Errorf("Health = %d, want 0", next.Health)
	}
	if next.Phase != core.PhaseGameOver {
		t.Errorf("Phase = %v, want GameOver", next.Phase)
	}
	if next.Timeline.Len() != 0 {
		t.Errorf("Timeline.Len() = %d, want 0", next.Timeline.Len())
	}
	if countEvents(next, event.EventGameOver) != 1 {
		t.Errorf("GameOver events = %d, want 1", countEvents(next, event.EventGameOver))
	}
}

func TestGameOverStopsShake(t *testing.T) {
	env := newTestEnv(17)
	s := newPlayingState()
	s.Health = parameter.ContactDamage
	p := s.Player.Pos
	s, _ = addEnemy(s, env, parameter.EnemyDrone, p.X, p.Y, 20)

	s = Step(s, engine.NewInput(), env)
	if s.Phase != core.PhaseGameOver {
		t.Fatalf("Phase = %v, want GameOver", s.Phase)
	}
	if s.Shake.Active() {
		t.Errorf("shake offset = %+v after game over, want zero", s.Shake.Offset)
	}

	for i := 0; i < 100; i++ {
		s = Step(s, engine.NewInput(), env)
	}
	if s.Shake.Active() {
		t.Errorf("shake offset = %+v after 100 idle ticks, want zero", s.Shake.Offset)
	}
	if menu := s.ToMenu(); menu.Shake.Active() {
		t.Errorf("menu shake offset = %+v, want zero", menu.Shake.Offset)
	}
}

func TestCollectPickups(t *testing.T) {
	env := newTestEnv(8)
	s := newPlayingState()
	p := s.Player.Pos
	s.Pickups = s.Pickups.
		Append(env.IDs.Next(), componentPickup(p.X+10, p.Y, 10)).
		Append(env.IDs.Next(), componentPickup(p.X+50, p.Y, 25))

	next := collectPickups(s)

	if next.Bolts != 10 {
		t.Errorf("Bolts = %d, want 10", next.Bolts)
	}
	if next.Pickups.Len() != 1 {
		t.Errorf("Pickups.Len() = %d, want 1", next.Pickups.Len())
	}
}
