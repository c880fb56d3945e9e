package parameter

import "time"

// Enemy spawning
const (
	// SpawnBasePeriod is divided by min(wave, SpawnMaxTier) to get the timer period
	SpawnBasePeriod = 2000 * time.Millisecond

	// SpawnMaxTier caps both archetype unlocks and cadence scaling
	SpawnMaxTier = 3

	// SpawnMaxBatch caps enemies per timer firing
	SpawnMaxBatch = 5

	// SpawnPopulationCap skips a firing when this many enemies are alive
	SpawnPopulationCap = 15

	// HealthPerWave is added to archetype base health for every wave number
	HealthPerWave = 5

	// KillsPerWave is the kill count step that advances the wave
	KillsPerWave = 10
)

// SpawnPeriod returns the spawn timer period for a wave
func SpawnPeriod(wave int) time.Duration {
	return SpawnBasePeriod / time.Duration(SpawnTier(wave))
}

// SpawnBatch returns how many enemies one firing adds
func SpawnBatch(wave int) int {
	return min(wave+1, SpawnMaxBatch)
}

// SpawnTier returns min(wave, SpawnMaxTier), at least 1
func SpawnTier(wave int) int {
	return max(1, min(wave, SpawnMaxTier))
}
