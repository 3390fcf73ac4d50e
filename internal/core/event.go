package core

// EventKind enumerates host input events understood by simulations.
type EventKind uint8

const (
	EventPointerDown EventKind = iota + 1
	EventPointerUp
	EventPointerMove
	EventKeyDown
)

// Key identifies the keyboard actions a simulation reacts to. Hosts map their
// native key codes onto these and send KeyUnknown for everything else.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyToggleRun
	KeyStep
	KeyReset
	KeyClear
)

// Event is a host-neutral input event. X and Y are surface pixels.
type Event struct {
	Kind EventKind
	X, Y int

	// Pressed reports whether the primary pointer button is held (moves only).
	Pressed bool

	Key    Key
	Repeat bool
}

// PointerDown builds a pointer-down event at (x, y).
func PointerDown(x, y int) Event { return Event{Kind: EventPointerDown, X: x, Y: y, Pressed: true} }

// PointerUp builds a pointer-up event at (x, y).
func PointerUp(x, y int) Event { return Event{Kind: EventPointerUp, X: x, Y: y} }

// PointerMove builds a pointer-move event at (x, y).
func PointerMove(x, y int, pressed bool) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y, Pressed: pressed}
}

// KeyDown builds a key-down event.
func KeyDown(k Key, repeat bool) Event { return Event{Kind: EventKeyDown, Key: k, Repeat: repeat} }
