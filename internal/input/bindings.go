package input

import (
	"fmt"

	"github.com/samber/lo"
)

// ActionKind is the kind of action a key can trigger
type ActionKind string

const (
	ActionTogglePause      ActionKind = "toggle_pause"
	ActionSetSpeed         ActionKind = "set_speed"
	ActionToggleFullscreen ActionKind = "toggle_fullscreen"
	ActionQuit             ActionKind = "quit"
)

// Action is what the control loop applies for a bound key.  Speed is only meaningful for ActionSetSpeed.
type Action struct {
	Kind  ActionKind
	Speed float64
}

// SetSpeed builds a speed action
func SetSpeed(speed float64) Action {
	return Action{Kind: ActionSetSpeed, Speed: speed}
}

// Binding maps a key to its action and help text.  A binding with AllowRepeat false ignores presses
// generated by key auto-repeat.
type Binding struct {
	Key         Key
	AllowRepeat bool
	Action      Action
	Help        string
}

// Bindings is the full keybinding table of the player
var Bindings = append([]Binding{
	{
		Key:         KeyEscape,
		AllowRepeat: true,
		Action:      Action{Kind: ActionQuit},
		Help:        "Quit",
	},
	{
		Key:    KeySpace,
		Action: Action{Kind: ActionTogglePause},
		Help:   "Pause / resume",
	},
	{
		Key:    KeyF,
		Action: Action{Kind: ActionToggleFullscreen},
		Help:   "Toggle fullscreen",
	},
}, speedBindings()...)

// speedBindings binds 1-9 to speeds 0.1-0.9 and 0 to normal speed
func speedBindings() []Binding {
	return lo.Map(lo.Range(10), func(i int, _ int) Binding {
		digit := (i + 1) % 10
		speed := float64(digit) / 10
		if digit == 0 {
			speed = 1.0
		}
		return Binding{
			Key:    DigitKey(digit),
			Action: SetSpeed(speed),
			Help:   fmt.Sprintf("Set speed to %.1fx", speed),
		}
	})
}

// Lookup returns the action bound to ev.  ok is false when nothing should happen: the key is not
// bound, or the press is an auto-repeat of a key that does not allow it.
func Lookup(ev Event) (Action, bool) {
	if ev.Type == EventQuit {
		return Action{Kind: ActionQuit}, true
	}

	binding, ok := lo.Find(Bindings, func(b Binding) bool {
		return b.Key == ev.Key
	})
	if !ok || (ev.Repeat && !binding.AllowRepeat) {
		return Action{}, false
	}
	return binding.Action, true
}
