// Package player runs a playback session: it brings up the window, the engine and the render bridge
// in the required order, drives the per-frame control loop and tears everything down afterwards.
package player

import (
	"context"
	"fmt"

	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/PizzaHomicide/toyunda/internal/engine"
	"github.com/PizzaHomicide/toyunda/internal/log"
	"github.com/PizzaHomicide/toyunda/internal/overlay"
)

// Options are the per-run settings coming from the command line
type Options struct {
	File string
	// Invert flips the video with the configured invert filter
	Invert bool
	// Fullscreen starts in fullscreen regardless of the window config
	Fullscreen bool
}

// Player plays files through a Backend
type Player struct {
	backend Backend
	config  *config.Config
}

// New creates a player
func New(backend Backend, cfg *config.Config) *Player {
	return &Player{backend: backend, config: cfg}
}

// Play opens the window and the engine, loads opts.File and runs the control loop until the user quits,
// the engine shuts down or ctx is cancelled.  Initialisation failures are returned before any frame is
// drawn.  Resources are always released in reverse order of creation.
func (p *Player) Play(ctx context.Context, opts Options) error {
	log.Info("Starting playback", "file", opts.File, "invert", opts.Invert)

	// Validate the overlay before anything native is created
	if _, err := overlay.BuildEvent(p.config.Overlay); err != nil {
		return fmt.Errorf("invalid overlay config: %w", err)
	}

	windowConfig := p.config.Window
	windowConfig.Fullscreen = windowConfig.Fullscreen || opts.Fullscreen

	host, err := p.backend.OpenHost(windowConfig)
	if err != nil {
		return fmt.Errorf("failed to open window: %w", err)
	}
	defer host.Close()

	eng, err := p.backend.InitEngine()
	if err != nil {
		return fmt.Errorf("failed to initialise engine: %w", err)
	}
	defer eng.Destroy()

	if err := p.configure(eng, opts); err != nil {
		return err
	}

	renderer, err := p.backend.InstallRenderer(eng, host)
	if err != nil {
		return fmt.Errorf("failed to install renderer: %w", err)
	}
	defer renderer.Close()

	compositor, err := overlay.NewCompositor(eng, p.config.Overlay)
	if err != nil {
		return fmt.Errorf("invalid overlay config: %w", err)
	}
	defer func() {
		if err := compositor.Clear(); err != nil {
			log.Debug("Unable to clear overlay", "error", err)
		}
	}()

	if err := eng.Command("loadfile", opts.File); err != nil {
		return fmt.Errorf("failed to load %s: %w", opts.File, err)
	}

	l := &loop{
		engine:    eng,
		host:      host,
		renderer:  renderer,
		overlay:   compositor,
		quitOnEnd: p.config.Engine.QuitOnEnd,
	}
	if err := l.run(ctx); err != nil {
		return err
	}

	log.Info("Playback finished", "frames", l.frames)
	return nil
}

type engineOption struct {
	property engine.Property
	value    string
}

// configure sets the engine options.  They must all be in place before the renderer is installed and
// the file is loaded.
func (p *Player) configure(eng Engine, opts Options) error {
	cfg := p.config.Engine

	keepOpen := "yes"
	if cfg.QuitOnEnd {
		keepOpen = "no"
	}

	options := []engineOption{
		{engine.VideoOutput, cfg.VideoOutput},
		{engine.SubtitleTrack, cfg.Subtitles},
		{engine.HardwareDecoding, cfg.HardwareDecoding},
		{engine.KeepOpen, keepOpen},
	}
	if opts.Invert {
		options = append(options, engineOption{engine.VideoFilter, cfg.InvertFilter})
	}

	for _, o := range options {
		if o.value == "" {
			continue
		}
		if err := eng.SetOption(o.property, engine.String(o.value)); err != nil {
			return fmt.Errorf("failed to set engine option: %w", err)
		}
	}

	level := cfg.LogLevel
	if level == "" {
		level = log.EngineLogLevel(p.config.Logging.Level)
	}
	if err := eng.RequestLogMessages(level); err != nil {
		log.Warn("Unable to forward engine log messages", "level", level, "error", err)
	}

	return nil
}
