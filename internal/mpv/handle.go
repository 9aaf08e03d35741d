// Package mpv embeds libmpv.  Handle owns the engine instance and marshals the player's typed
// properties onto go-mpv; RenderContext installs the OpenGL render API on top of it.
package mpv

import (
	"errors"
	"fmt"

	"github.com/PizzaHomicide/toyunda/internal/engine"
	"github.com/PizzaHomicide/toyunda/internal/log"
	"github.com/gen2brain/go-mpv"
)

// Handle owns the single libmpv instance of the process.  It must be destroyed exactly once, after
// any RenderContext installed on it has been closed.  Every call after Destroy returns
// engine.ErrDestroyed.
type Handle struct {
	m         *mpv.Mpv
	destroyed bool
}

// Init creates and initialises the engine.  A failure here is fatal for the player.
func Init() (*Handle, error) {
	// libmpv refuses to start when a toolkit has switched LC_NUMERIC away from "C"
	mpv.SetLocale(mpv.LCNumeric, "C")

	m := mpv.New()
	if m == nil || rawHandle(m) == nil {
		return nil, &engine.OpError{Op: "init", Err: engine.ErrInit, Cause: errors.New("mpv_create returned NULL")}
	}

	if err := m.Initialize(); err != nil {
		m.TerminateDestroy()
		return nil, engine.Wrap("init", "", engine.ErrInit, err)
	}

	log.Debug("Engine initialised", "client", m.Name(), "api_version", fmt.Sprintf("%#x", m.APIVersion()))
	return &Handle{m: m}, nil
}

// SetOption sets an engine option.  Options that change how the engine starts up, like the video
// output driver, must be set before the render context is installed and before any file is loaded.
func (h *Handle) SetOption(p engine.Property, v engine.Value) error {
	if h.destroyed {
		return engine.ErrDestroyed
	}
	if err := p.Validate(v); err != nil {
		return err
	}

	log.Debug("Setting engine option", "name", p.Name(), "value", v.String())
	return engine.Wrap("option", p.Name(), engine.ErrRejected, h.m.SetOption(p.Name(), toFormat(v.Format()), v.Raw()))
}

// Command sends a command to the engine.  Success means the command was accepted; its effect is
// reported later through the event queue.
func (h *Handle) Command(args ...string) error {
	if h.destroyed {
		return engine.ErrDestroyed
	}
	if len(args) == 0 {
		return &engine.OpError{Op: "command", Err: engine.ErrRejected, Cause: errors.New("empty command")}
	}

	log.Trace("Sending engine command", "args", args)
	return engine.Wrap("command", args[0], engine.ErrRejected, h.m.Command(args))
}

// Get reads a property in its declared format
func (h *Handle) Get(p engine.Property) (engine.Value, error) {
	if h.destroyed {
		return engine.Value{}, engine.ErrDestroyed
	}
	if p.Name() == "" {
		return engine.Value{}, fmt.Errorf("%w: unknown property", engine.ErrTypeMismatch)
	}

	raw, err := h.m.GetProperty(p.Name(), toFormat(p.Format()))
	if err != nil {
		return engine.Value{}, engine.Wrap("get", p.Name(), engine.ErrRejected, err)
	}

	v, err := engine.FromRaw(p.Format(), raw)
	if err != nil {
		return engine.Value{}, fmt.Errorf("get %s: %w", p.Name(), err)
	}
	return v, nil
}

// Set writes a property after validating the value against the property's declared type and range
func (h *Handle) Set(p engine.Property, v engine.Value) error {
	if h.destroyed {
		return engine.ErrDestroyed
	}
	if err := p.Validate(v); err != nil {
		return err
	}

	log.Trace("Setting engine property", "name", p.Name(), "value", v.String())
	return engine.Wrap("set", p.Name(), engine.ErrRejected, h.m.SetProperty(p.Name(), toFormat(v.Format()), v.Raw()))
}

// NextEvent fetches one event without waiting.  ok is false when the queue is empty.
func (h *Handle) NextEvent() (engine.Event, bool) {
	if h.destroyed {
		return engine.Event{}, false
	}

	ev := h.m.WaitEvent(0)
	if ev == nil || ev.EventID == mpv.EventNone {
		return engine.Event{}, false
	}
	return convertEvent(ev), true
}

// RequestLogMessages asks the engine to queue its log lines at the given level or above.  "no"
// disables them.
func (h *Handle) RequestLogMessages(level string) error {
	if h.destroyed {
		return engine.ErrDestroyed
	}
	return engine.Wrap("log-level", level, engine.ErrRejected, h.m.RequestLogMessages(level))
}

// Destroy terminates the engine.  It is safe to call more than once; only the first call does anything.
func (h *Handle) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true
	h.m.TerminateDestroy()
	log.Debug("Engine destroyed")
}

func toFormat(f engine.Format) mpv.Format {
	switch f {
	case engine.FormatFlag:
		return mpv.FormatFlag
	case engine.FormatDouble:
		return mpv.FormatDouble
	case engine.FormatString:
		return mpv.FormatString
	default:
		return mpv.FormatNone
	}
}
