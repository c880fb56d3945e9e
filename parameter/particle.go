package parameter

// Particle burst distribution
const (
	ParticleMinSpeed = 2.0
	ParticleMaxSpeed = 8.0

	// ParticleMinLife and ParticleMaxLife bound lifetime in ticks, max exclusive
	ParticleMinLife = 30
	ParticleMaxLife = 60

	ParticleMinSize = 2.0
	ParticleMaxSize = 6.0
)

// Particle integration per tick
const (
	// ParticleDamping is the velocity multiplier applied every tick
	ParticleDamping = 0.95

	// ParticleShrink is the size multiplier applied every tick
	ParticleShrink = 0.97
)
