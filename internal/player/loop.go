package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/PizzaHomicide/toyunda/internal/engine"
	"github.com/PizzaHomicide/toyunda/internal/input"
	"github.com/PizzaHomicide/toyunda/internal/log"
	"github.com/PizzaHomicide/toyunda/internal/overlay"
)

// State of the control loop
type State int

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "terminating"
}

// loop is the per-frame control loop.  Everything runs on the GL thread, one step after the other.
type loop struct {
	engine    Engine
	host      Host
	renderer  Renderer
	overlay   *overlay.Compositor
	quitOnEnd bool

	state         State
	frames        int
	renderFailing bool
}

func (l *loop) run(ctx context.Context) error {
	for l.state == Running {
		if err := ctx.Err(); err != nil {
			log.Info("Quit requested", "reason", context.Cause(ctx))
			l.terminate("signal")
			break
		}
		if err := l.frame(); err != nil {
			return err
		}
	}
	return nil
}

// frame runs one iteration: input, event drain, draw, overlay, present.  The frame is always
// completed, even once termination has been requested.
func (l *loop) frame() error {
	for _, ev := range l.host.PollEvents() {
		action, ok := input.Lookup(ev)
		if !ok {
			continue
		}
		if err := l.apply(action); err != nil {
			if engine.IsFatal(err) {
				return fmt.Errorf("failed to apply %s: %w", action.Kind, err)
			}
			log.Warn("Action failed", "action", action.Kind, "error", err)
		}
	}

	engine.Drain(l.engine, l.handleEvent)

	width, height := l.host.DrawableSize()
	if err := l.renderer.Draw(engine.WindowTarget(width, height)); err != nil {
		if !errors.Is(err, engine.ErrRender) {
			return fmt.Errorf("failed to draw frame: %w", err)
		}
		if !l.renderFailing {
			log.Warn("Skipping frames, render failed", "error", err)
		}
		l.renderFailing = true
	} else if l.renderFailing {
		log.Info("Rendering recovered")
		l.renderFailing = false
	}

	if err := l.overlay.Composite(width, height); err != nil {
		log.Warn("Unable to update overlay", "error", err)
	}

	l.host.Swap()
	l.renderer.ReportSwap()
	l.frames++
	return nil
}

func (l *loop) apply(action input.Action) error {
	switch action.Kind {
	case input.ActionQuit:
		l.terminate("quit")
	case input.ActionTogglePause:
		value, err := l.engine.Get(engine.Pause)
		if err != nil {
			return err
		}
		paused, ok := value.Flag()
		if !ok {
			return fmt.Errorf("%w: pause is %s", engine.ErrUnexpectedValue, value.Format())
		}
		log.Debug("Toggling pause", "paused", !paused)
		return l.engine.Set(engine.Pause, engine.Flag(!paused))
	case input.ActionSetSpeed:
		log.Debug("Setting speed", "speed", action.Speed)
		return l.engine.Set(engine.Speed, engine.Double(action.Speed))
	case input.ActionToggleFullscreen:
		fullscreen := !l.host.Fullscreen()
		if err := l.host.SetFullscreen(fullscreen); err != nil {
			log.Warn("Unable to toggle fullscreen", "fullscreen", fullscreen, "error", err)
		}
	}
	return nil
}

func (l *loop) handleEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventShutdown:
		l.terminate("engine shutdown")
	case engine.EventLogMessage:
		if ev.Log != nil {
			log.Engine(ev.Log.Prefix, ev.Log.Level, ev.Log.Text)
		}
	case engine.EventFileLoaded:
		l.logFileLoaded()
	case engine.EventEndFile:
		if ev.EndReason == engine.EndError {
			log.Error("Playback failed", "error", ev.Err)
		} else {
			log.Info("End of file", "reason", ev.EndReason)
		}
		if l.quitOnEnd {
			l.terminate("end of file")
		}
	case engine.EventQueueOverflow:
		log.Warn("Engine event queue overflowed")
	default:
		log.Trace("Engine event", "event", ev.Kind)
	}
}

func (l *loop) logFileLoaded() {
	args := []any{}
	if title, err := l.engine.Get(engine.MediaTitle); err == nil {
		args = append(args, "title", title.String())
	}
	if duration, err := l.engine.Get(engine.Duration); err == nil {
		args = append(args, "duration", duration.String())
	}
	log.Info("File loaded", args...)
}

func (l *loop) terminate(reason string) {
	if l.state == Terminating {
		return
	}
	log.Debug("Control loop terminating", "reason", reason, "frames", l.frames)
	l.state = Terminating
}
