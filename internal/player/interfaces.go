package player

import (
	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/PizzaHomicide/toyunda/internal/engine"
	"github.com/PizzaHomicide/toyunda/internal/glproc"
	"github.com/PizzaHomicide/toyunda/internal/input"
)

// Engine is the embedded media engine.  It is owned by the player session, which destroys it once
// playback is over.
type Engine interface {
	engine.Source

	SetOption(p engine.Property, v engine.Value) error
	// Command sends a command.  A nil error only means it was accepted.
	Command(args ...string) error
	Get(p engine.Property) (engine.Value, error)
	Set(p engine.Property, v engine.Value) error
	RequestLogMessages(level string) error
	Destroy()
}

// Renderer draws the engine's video into the host's GL context
type Renderer interface {
	Draw(target engine.FrameTarget) error
	ReportSwap()
	Close()
}

// Host is the window the video is shown in.  It also resolves GL functions for the renderer.
type Host interface {
	glproc.Resolver

	PollEvents() []input.Event
	// DrawableSize is the framebuffer size in pixels
	DrawableSize() (width, height int)
	Fullscreen() bool
	SetFullscreen(on bool) error
	Swap()
	Close()
}

// Backend creates the native pieces of a session.  Calls are made in the order OpenHost, InitEngine,
// InstallRenderer, on the thread that owns the GL context.
type Backend interface {
	OpenHost(cfg config.WindowConfig) (Host, error)
	InitEngine() (Engine, error)
	InstallRenderer(e Engine, h Host) (Renderer, error)
}
