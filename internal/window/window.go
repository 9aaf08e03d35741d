// Package window is the SDL2 host of the player: one window with a current OpenGL context, its input
// events, fullscreen state and buffer swaps.  Every function must be called from the main OS thread.
package window

import (
	"fmt"
	"unsafe"

	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/PizzaHomicide/toyunda/internal/input"
	"github.com/PizzaHomicide/toyunda/internal/log"
	"github.com/veandco/go-sdl2/sdl"
)

// Window owns the SDL window and its GL context
type Window struct {
	win *sdl.Window
	gl  sdl.GLContext
}

// Open initialises SDL video, creates the window and makes its GL context current
func Open(cfg config.WindowConfig) (*Window, error) {
	// Signals are handled by the player, SDL would otherwise turn them into quit events
	sdl.SetHint(sdl.HINT_NO_SIGNAL_HANDLERS, "1")

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initialise SDL video: %w", err)
	}

	if err := sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1); err != nil {
		log.Warn("Unable to request a double buffered GL context", "error", err)
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_SHOWN)
	if cfg.Fullscreen {
		flags |= uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}

	win, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	glContext, err := win.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create GL context: %w", err)
	}

	if err := win.GLMakeCurrent(glContext); err != nil {
		sdl.GLDeleteContext(glContext)
		_ = win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("make GL context current: %w", err)
	}

	interval := 0
	if cfg.VSyncEnabled() {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Warn("Unable to set swap interval", "interval", interval, "error", err)
	}

	w := &Window{win: win, gl: glContext}
	width, height := w.DrawableSize()
	log.Info("Window opened", "title", cfg.Title, "drawable_width", width, "drawable_height", height, "fullscreen", cfg.Fullscreen)
	return w, nil
}

// GetProcAddress resolves an OpenGL function in the window's GL context
func (w *Window) GetProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

// PollEvents returns every pending input event the player understands.  It never blocks.
func (w *Window) PollEvents() []input.Event {
	var events []input.Event
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if translated, ok := translateEvent(ev); ok {
			events = append(events, translated)
		}
	}
	return events
}

// DrawableSize is the size of the default framebuffer in pixels, which differs from the window size
// on high DPI displays.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.win.GLGetDrawableSize()
	return int(width), int(height)
}

// Fullscreen reports whether the window is currently fullscreen
func (w *Window) Fullscreen() bool {
	return w.win.GetFlags()&sdl.WINDOW_FULLSCREEN != 0
}

// SetFullscreen switches between desktop fullscreen and windowed mode
func (w *Window) SetFullscreen(on bool) error {
	var flags uint32
	if on {
		flags = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}
	if err := w.win.SetFullscreen(flags); err != nil {
		return fmt.Errorf("set fullscreen %t: %w", on, err)
	}
	return nil
}

// Swap presents the back buffer
func (w *Window) Swap() {
	w.win.GLSwap()
}

// Close destroys the GL context and the window and shuts SDL down
func (w *Window) Close() {
	if w.win == nil {
		return
	}
	sdl.GLDeleteContext(w.gl)
	if err := w.win.Destroy(); err != nil {
		log.Warn("Error destroying window", "error", err)
	}
	w.win = nil
	sdl.Quit()
	log.Debug("Window closed")
}
