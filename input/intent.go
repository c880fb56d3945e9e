package input

// IntentType discriminates non-gameplay actions returned to the main loop
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // Q, Ctrl+C, Ctrl+Q
	IntentStart      // Enter: new game from menu or game over
	IntentEscape     // Esc: back to menu after game over
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event
)

// String returns the intent name for logging
func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "None"
	case IntentQuit:
		return "Quit"
	case IntentStart:
		return "Start"
	case IntentEscape:
		return "Escape"
	case IntentToggleMute:
		return "ToggleMute"
	case IntentResize:
		return "Resize"
	default:
		return "Unknown"
	}
}
