package core

// GamePhase is the top-level session state
type GamePhase uint8

const (
	PhaseMenu GamePhase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the name of the phase for debugging
func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
