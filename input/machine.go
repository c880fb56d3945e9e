package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/render"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// held tracks one emulated held key
type held struct {
	until time.Time // Released once now passes this
	since time.Time // First press of the current hold
}

// press extends the hold; a press while still held is autorepeat
func (h *held) press(now time.Time) {
	if !now.Before(h.until) {
		h.since = now
		h.until = now.Add(parameter.KeyHoldInitial)
		return
	}
	h.until = now.Add(parameter.KeyHoldRepeat)
	if floor := h.since.Add(parameter.KeyHoldInitial); h.until.Before(floor) {
		h.until = floor
	}
}

func (h *held) release() {
	h.until = time.Time{}
}

func (h *held) active(now time.Time) bool {
	return now.Before(h.until)
}

// Machine translates tcell events into engine.Input and main-loop intents
// Not safe for concurrent use; owned by the event loop goroutine
type Machine struct {
	keyTable *KeyTable
	viewport render.Viewport

	dirs      [4]held // Indexed by direction bit position
	fireKey   held
	mouseFire bool
	cursor    vmath.Vec2
	weapons   []int
}

// NewMachine creates a new input machine with the cursor at field centre
func NewMachine(viewport render.Viewport) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		viewport: viewport,
		cursor:   engine.NewInput().Cursor,
	}
}

// SetViewport updates the cell to field mapping after a resize
func (m *Machine) SetViewport(v render.Viewport) {
	m.viewport = v
}

// Reset releases every held key and drops pending selections
func (m *Machine) Reset() {
	for i := range m.dirs {
		m.dirs[i].release()
	}
	m.fireKey.release()
	m.mouseFire = false
	m.weapons = m.weapons[:0]
}

// Process consumes one terminal event and returns the main-loop intent, if any
func (m *Machine) Process(ev tcell.Event, now time.Time) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev, now)
	case *tcell.EventMouse:
		m.processMouse(ev)
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

func (m *Machine) processKey(ev *tcell.EventKey, now time.Time) IntentType {
	entry, ok := m.keyTable.Lookup(ev)
	if !ok {
		return IntentNone
	}

	switch entry.Behavior {
	case BehaviorMove:
		idx := dirIndex(entry.Keys)
		m.dirs[idx].press(now)
		// Reversing direction releases the opposite key immediately
		m.dirs[dirIndex(opposite(entry.Keys))].release()
	case BehaviorFire:
		m.fireKey.press(now)
	case BehaviorWeapon:
		m.weapons = append(m.weapons, entry.Weapon)
	case BehaviorSystem:
		return entry.Intent
	}
	return IntentNone
}

func (m *Machine) processMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	m.cursor = m.viewport.ToField(x, y)
	m.mouseFire = ev.Buttons()&tcell.Button1 != 0
}

// Input returns the intent for the next tick and drains weapon selections
func (m *Machine) Input(now time.Time) engine.Input {
	in := engine.Input{
		Cursor: m.cursor,
		Fire:   m.mouseFire || m.fireKey.active(now),
	}
	for i := range m.dirs {
		if m.dirs[i].active(now) {
			in.Keys |= engine.Keys(1 << i)
		}
	}
	if len(m.weapons) > 0 {
		in.WeaponSelect = append([]int(nil), m.weapons...)
		m.weapons = m.weapons[:0]
	}
	return in
}

// dirIndex returns the bit position of a single direction key
func dirIndex(k engine.Keys) int {
	switch k {
	case engine.KeyDown:
		return 1
	case engine.KeyLeft:
		return 2
	case engine.KeyRight:
		return 3
	default:
		return 0
	}
}

func opposite(k engine.Keys) engine.Keys {
	switch k {
	case engine.KeyUp:
		return engine.KeyDown
	case engine.KeyDown:
		return engine.KeyUp
	case engine.KeyLeft:
		return engine.KeyRight
	default:
		return engine.KeyLeft
	}
}
