package event

// EventType identifies an outbound simulation notification
// Events are informational: collaborators react (audio, HUD flashes) but never feed back into the tick
type EventType int

const (
	// EventGameStarted signals a session reset into Playing
	// Trigger: Menu→Playing or GameOver→Playing | Payload: nil
	EventGameStarted EventType = iota

	// EventShotFired signals a bullet left the muzzle
	// Trigger: fire step | Payload: *ShotPayload
	EventShotFired

	// EventEnemyHit signals a bullet damaged an enemy that survived
	// Trigger: bullet collision | Payload: *EnemyPayload
	EventEnemyHit

	// EventEnemyKilled signals an enemy reached zero health
	// Trigger: bullet collision | Payload: *EnemyPayload
	EventEnemyKilled

	// EventPlayerHit signals contact damage on the player
	// Trigger: player collision | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventBoltCollected signals a pickup was absorbed
	// Trigger: pickup collision | Payload: *BoltPayload
	EventBoltCollected

	// EventWaveAdvanced signals the wave counter moved up
	// Trigger: progression | Payload: *WavePayload
	EventWaveAdvanced

	// EventGameOver signals health reached zero
	// Trigger: player collision | Payload: *GameOverPayload
	EventGameOver
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventGameStarted:
		return "GameStarted"
	case EventShotFired:
		return "ShotFired"
	case EventEnemyHit:
		return "EnemyHit"
	case EventEnemyKilled:
		return "EnemyKilled"
	case EventPlayerHit:
		return "PlayerHit"
	case EventBoltCollected:
		return "BoltCollected"
	case EventWaveAdvanced:
		return "WaveAdvanced"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Simulation tick that produced the event
}
