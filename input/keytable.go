package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galactic-wrench/engine"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone   KeyBehavior = iota
	BehaviorMove               // Held movement direction
	BehaviorFire               // Held trigger
	BehaviorWeapon             // One-shot weapon selection
	BehaviorSystem             // Returns an intent to the main loop
)

// KeyEntry describes a key's behavior
type KeyEntry struct {
	Behavior KeyBehavior
	Keys     engine.Keys // BehaviorMove
	Weapon   int         // BehaviorWeapon, catalog index
	Intent   IntentType  // BehaviorSystem
}

// KeyTable maps terminal keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Behavior: BehaviorSystem, Intent: IntentQuit},
			tcell.KeyCtrlC:  {Behavior: BehaviorSystem, Intent: IntentQuit},
			tcell.KeyCtrlS:  {Behavior: BehaviorSystem, Intent: IntentToggleMute},
			tcell.KeyEscape: {Behavior: BehaviorSystem, Intent: IntentEscape},
			tcell.KeyEnter:  {Behavior: BehaviorSystem, Intent: IntentStart},
			tcell.KeyUp:     {Behavior: BehaviorMove, Keys: engine.KeyUp},
			tcell.KeyDown:   {Behavior: BehaviorMove, Keys: engine.KeyDown},
			tcell.KeyLeft:   {Behavior: BehaviorMove, Keys: engine.KeyLeft},
			tcell.KeyRight:  {Behavior: BehaviorMove, Keys: engine.KeyRight},
		},
		Runes: map[rune]KeyEntry{
			'w': {Behavior: BehaviorMove, Keys: engine.KeyUp},
			's': {Behavior: BehaviorMove, Keys: engine.KeyDown},
			'a': {Behavior: BehaviorMove, Keys: engine.KeyLeft},
			'd': {Behavior: BehaviorMove, Keys: engine.KeyRight},
			' ': {Behavior: BehaviorFire},
			'1': {Behavior: BehaviorWeapon, Weapon: 0},
			'2': {Behavior: BehaviorWeapon, Weapon: 1},
			'3': {Behavior: BehaviorWeapon, Weapon: 2},
			'4': {Behavior: BehaviorWeapon, Weapon: 3},
			'q': {Behavior: BehaviorSystem, Intent: IntentQuit},
		},
	}
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		entry, ok := kt.Runes[r]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}
