package window

import (
	"github.com/PizzaHomicide/toyunda/internal/input"
	"github.com/veandco/go-sdl2/sdl"
)

var keycodes = map[sdl.Keycode]input.Key{
	sdl.K_ESCAPE: input.KeyEscape,
	sdl.K_SPACE:  input.KeySpace,
	sdl.K_f:      input.KeyF,

	sdl.K_0: input.KeyDigit0,
	sdl.K_1: input.KeyDigit1,
	sdl.K_2: input.KeyDigit2,
	sdl.K_3: input.KeyDigit3,
	sdl.K_4: input.KeyDigit4,
	sdl.K_5: input.KeyDigit5,
	sdl.K_6: input.KeyDigit6,
	sdl.K_7: input.KeyDigit7,
	sdl.K_8: input.KeyDigit8,
	sdl.K_9: input.KeyDigit9,

	sdl.K_KP_0: input.KeyDigit0,
	sdl.K_KP_1: input.KeyDigit1,
	sdl.K_KP_2: input.KeyDigit2,
	sdl.K_KP_3: input.KeyDigit3,
	sdl.K_KP_4: input.KeyDigit4,
	sdl.K_KP_5: input.KeyDigit5,
	sdl.K_KP_6: input.KeyDigit6,
	sdl.K_KP_7: input.KeyDigit7,
	sdl.K_KP_8: input.KeyDigit8,
	sdl.K_KP_9: input.KeyDigit9,
}

func translateKey(code sdl.Keycode) input.Key {
	if key, ok := keycodes[code]; ok {
		return key
	}
	return input.KeyUnknown
}

// translateEvent converts the SDL events the player reacts to.  Everything else, including key
// releases, is dropped.
func translateEvent(ev sdl.Event) (input.Event, bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return input.Quit(), true
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return input.Event{}, false
		}
		return input.KeyDown(translateKey(e.Keysym.Sym), e.Repeat != 0), true
	}
	return input.Event{}, false
}
