package parameter

import "time"

// Contact damage
const (
	// ContactDamage is health lost per overlapping enemy per tick
	ContactDamage = 10

	// ContactPadding is added to the archetype radius for player contact
	ContactPadding = 15.0

	// PickupRadius is the collection distance for bolt pickups
	PickupRadius = 30.0
)

// Drops and effects on hit/kill
const (
	// BoltDropChance is the probability a killed enemy drops a pickup
	BoltDropChance = 0.7

	// BoltValueDivisor converts archetype points into pickup value
	BoltValueDivisor = 10

	// BoltScatter is the half-width of the random drop offset per axis
	BoltScatter = 10.0

	// MuzzleParticles is the burst size on firing
	MuzzleParticles = 3

	// ImpactParticles is the burst size on a bullet hit
	ImpactParticles = 5

	// DeathParticles is the burst size on an enemy kill
	DeathParticles = 15
)

// Screen shake
const (
	// ShakeKill is the pulse intensity when an enemy dies
	ShakeKill = 8.0

	// ShakeContact is the pulse intensity when the player takes contact damage
	ShakeContact = 15.0

	// ShakeDuration is how long an offset persists before it is zeroed
	ShakeDuration = 100 * time.Millisecond
)

// Explosion
const (
	// ExplosionFrames is the explosion lifetime in ticks
	ExplosionFrames = 10
)
