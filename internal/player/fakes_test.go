package player

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/PizzaHomicide/toyunda/internal/engine"
	"github.com/PizzaHomicide/toyunda/internal/input"
)

// recorder keeps the order of every call made on the fakes
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) index(call string) int {
	for i, c := range r.calls {
		if c == call {
			return i
		}
	}
	return -1
}

func (r *recorder) withPrefix(prefix string) []string {
	var matched []string
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			matched = append(matched, c)
		}
	}
	return matched
}

type fakeEngine struct {
	rec        *recorder
	props      map[string]engine.Value
	events     []engine.Event
	setErr     map[string]error
	commandErr error

	fetches   int
	drains    int
	destroyed int
}

func (e *fakeEngine) SetOption(p engine.Property, v engine.Value) error {
	if err := p.Validate(v); err != nil {
		return err
	}
	e.rec.add("option %s=%s", p.Name(), v)
	e.props[p.Name()] = v
	return nil
}

func (e *fakeEngine) Command(args ...string) error {
	e.rec.add("command %s", strings.Join(args, " "))
	return e.commandErr
}

func (e *fakeEngine) Get(p engine.Property) (engine.Value, error) {
	if v, ok := e.props[p.Name()]; ok {
		return v, nil
	}
	return engine.Value{}, &engine.OpError{Op: "get", Target: p.Name(), Err: engine.ErrRejected, Cause: errors.New("property unavailable")}
}

func (e *fakeEngine) Set(p engine.Property, v engine.Value) error {
	if err := p.Validate(v); err != nil {
		return err
	}
	if err := e.setErr[p.Name()]; err != nil {
		return err
	}
	e.rec.add("set %s=%s", p.Name(), v)
	e.props[p.Name()] = v
	return nil
}

func (e *fakeEngine) RequestLogMessages(level string) error {
	e.rec.add("log-level %s", level)
	return nil
}

func (e *fakeEngine) NextEvent() (engine.Event, bool) {
	e.fetches++
	if len(e.events) == 0 {
		e.drains++
		return engine.Event{}, false
	}
	ev := e.events[0]
	e.events = e.events[1:]
	return ev, true
}

func (e *fakeEngine) Destroy() {
	e.destroyed++
	e.rec.add("destroy engine")
}

type fakeHost struct {
	rec              *recorder
	script           [][]input.Event
	onPoll           func(poll int)
	width, height    int
	fullscreen       bool
	setFullscreenErr error

	polls int
	swaps int
}

func (h *fakeHost) GetProcAddress(string) unsafe.Pointer {
	return nil
}

func (h *fakeHost) PollEvents() []input.Event {
	h.polls++
	if h.onPoll != nil {
		h.onPoll(h.polls)
	}
	if h.polls <= len(h.script) {
		return h.script[h.polls-1]
	}
	return nil
}

func (h *fakeHost) DrawableSize() (int, int) {
	return h.width, h.height
}

func (h *fakeHost) Fullscreen() bool {
	return h.fullscreen
}

func (h *fakeHost) SetFullscreen(on bool) error {
	h.rec.add("fullscreen %t", on)
	if h.setFullscreenErr != nil {
		return h.setFullscreenErr
	}
	h.fullscreen = on
	return nil
}

func (h *fakeHost) Swap() {
	h.swaps++
}

func (h *fakeHost) Close() {
	h.rec.add("close host")
}

type fakeRenderer struct {
	rec     *recorder
	drawErr error
	targets []engine.FrameTarget
	swaps   int
}

func (r *fakeRenderer) Draw(target engine.FrameTarget) error {
	r.targets = append(r.targets, target)
	return r.drawErr
}

func (r *fakeRenderer) ReportSwap() {
	r.swaps++
}

func (r *fakeRenderer) Close() {
	r.rec.add("close renderer")
}

type fakeBackend struct {
	rec         *recorder
	host        *fakeHost
	engine      *fakeEngine
	renderer    *fakeRenderer
	hostErr     error
	engineErr   error
	rendererErr error
}

func newFakeBackend() *fakeBackend {
	rec := &recorder{}
	return &fakeBackend{
		rec:  rec,
		host: &fakeHost{rec: rec, width: 960, height: 540},
		engine: &fakeEngine{
			rec: rec,
			props: map[string]engine.Value{
				"pause": engine.Flag(false),
				"speed": engine.Double(1),
			},
			setErr: map[string]error{},
		},
		renderer: &fakeRenderer{rec: rec},
	}
}

func (b *fakeBackend) OpenHost(cfg config.WindowConfig) (Host, error) {
	b.rec.add("open host fullscreen=%t", cfg.Fullscreen)
	if b.hostErr != nil {
		return nil, b.hostErr
	}
	b.host.fullscreen = cfg.Fullscreen
	return b.host, nil
}

func (b *fakeBackend) InitEngine() (Engine, error) {
	b.rec.add("init engine")
	if b.engineErr != nil {
		return nil, b.engineErr
	}
	return b.engine, nil
}

func (b *fakeBackend) InstallRenderer(Engine, Host) (Renderer, error) {
	b.rec.add("install renderer")
	if b.rendererErr != nil {
		return nil, b.rendererErr
	}
	return b.renderer, nil
}

// script builds a host input script with one entry per frame, ending with an escape press
func script(frames ...[]input.Event) [][]input.Event {
	return append(frames, []input.Event{input.KeyDown(input.KeyEscape, false)})
}

func keys(events ...input.Event) []input.Event {
	return events
}

func testConfig() *config.Config {
	return &config.Config{
		Engine: config.EngineConfig{
			VideoOutput:      "libmpv",
			Subtitles:        "no",
			HardwareDecoding: "auto-safe",
			InvertFilter:     "vflip",
		},
		Window: config.WindowConfig{
			Title:  "Toyunda Player",
			Width:  960,
			Height: 540,
		},
		Overlay: config.OverlayConfig{
			FontSize: 72,
			Color:    "#FF0000",
			Alpha:    config.Int(128),
			Outline:  config.Int(2),
			X:        config.Int(5),
			Y:        config.Int(5),
			MaxWidth: config.Int(80),
		},
		Logging: config.LoggingConfig{
			Level: "info",
		},
	}
}
