// Package input describes the keyboard and window events the player reacts to and the fixed table
// that binds them to playback actions.
package input

import "strconv"

// Key is a host-independent key identifier.  Only keys that can be bound are distinguished.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyF
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
)

// DigitKey returns the key for the digit d.  Anything outside 0-9 is KeyUnknown.
func DigitKey(d int) Key {
	if d < 0 || d > 9 {
		return KeyUnknown
	}
	return KeyDigit0 + Key(d)
}

// Digit returns the digit of a digit key
func (k Key) Digit() (int, bool) {
	if k < KeyDigit0 || k > KeyDigit9 {
		return 0, false
	}
	return int(k - KeyDigit0), true
}

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "esc"
	case KeySpace:
		return "space"
	case KeyF:
		return "f"
	}
	if d, ok := k.Digit(); ok {
		return strconv.Itoa(d)
	}
	return "unknown"
}

// EventType distinguishes the events delivered by the host window
type EventType int

const (
	// EventQuit is the window manager asking the player to close
	EventQuit EventType = iota
	// EventKeyDown is a key press.  Repeat is set for presses generated by holding the key down.
	EventKeyDown
)

// Event is one input event polled from the host
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool
}

// Quit builds a quit event
func Quit() Event {
	return Event{Type: EventQuit}
}

// KeyDown builds a key press event
func KeyDown(k Key, repeat bool) Event {
	return Event{Type: EventKeyDown, Key: k, Repeat: repeat}
}
