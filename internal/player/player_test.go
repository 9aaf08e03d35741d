package player

import (
	"context"
	"errors"
	"testing"

	"github.com/PizzaHomicide/toyunda/internal/engine"
	"github.com/PizzaHomicide/toyunda/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, b *fakeBackend, opts Options) error {
	t.Helper()
	if opts.File == "" {
		opts.File = "song.mkv"
	}
	return New(b, testConfig()).Play(context.Background(), opts)
}

func TestStartupOrder(t *testing.T) {
	b := newFakeBackend()
	b.host.script = script()

	require.NoError(t, play(t, b, Options{}))

	assert.Equal(t, []string{
		"open host fullscreen=false",
		"init engine",
		"option vo=libmpv",
		"option sid=no",
		"option hwdec=auto-safe",
		"option keep-open=yes",
		"log-level info",
		"install renderer",
		"command loadfile song.mkv",
		"close renderer",
		"destroy engine",
		"close host",
	}, b.rec.calls)
	assert.Equal(t, 1, b.engine.destroyed)
}

func TestInvertSetBeforeLoadfile(t *testing.T) {
	b := newFakeBackend()
	b.host.script = script()

	require.NoError(t, play(t, b, Options{Invert: true}))

	invert := b.rec.index("option vf=vflip")
	loadfile := b.rec.index("command loadfile song.mkv")
	require.NotEqual(t, -1, invert, "invert filter was never set")
	require.NotEqual(t, -1, loadfile)
	assert.Less(t, invert, loadfile)
	assert.Less(t, invert, b.rec.index("install renderer"))
}

func TestNoInvertByDefault(t *testing.T) {
	b := newFakeBackend()
	b.host.script = script()

	require.NoError(t, play(t, b, Options{}))
	assert.Empty(t, b.rec.withPrefix("option vf="))
}

func TestFullscreenOption(t *testing.T) {
	b := newFakeBackend()
	b.host.script = script()

	require.NoError(t, play(t, b, Options{Fullscreen: true}))
	assert.Equal(t, "open host fullscreen=true", b.rec.calls[0])
}

func TestEngineInitFailureIsFatal(t *testing.T) {
	b := newFakeBackend()
	b.engineErr = &engine.OpError{Op: "init", Err: engine.ErrInit, Cause: errors.New("mpv_create returned NULL")}

	err := play(t, b, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInit)

	assert.Zero(t, b.host.polls, "control loop must not run")
	assert.Empty(t, b.renderer.targets)
	assert.Equal(t, -1, b.rec.index("install renderer"))
	assert.Equal(t, -1, b.rec.index("destroy engine"))
	assert.Equal(t, "close host", b.rec.calls[len(b.rec.calls)-1])
}

func TestHostFailureIsFatal(t *testing.T) {
	b := newFakeBackend()
	b.hostErr = errors.New("no GL context")

	err := play(t, b, Options{})
	require.Error(t, err)
	assert.Equal(t, []string{"open host fullscreen=false"}, b.rec.calls)
}

func TestRendererFailureTearsDownEngine(t *testing.T) {
	b := newFakeBackend()
	b.rendererErr = &engine.OpError{Op: "install-renderer", Err: engine.ErrInit, Cause: errors.New("no GL")}

	err := play(t, b, Options{})
	require.ErrorIs(t, err, engine.ErrInit)
	assert.Zero(t, b.host.polls)
	assert.Equal(t, []string{"destroy engine", "close host"}, b.rec.calls[len(b.rec.calls)-2:])
}

func TestLoadfileRejected(t *testing.T) {
	b := newFakeBackend()
	b.engine.commandErr = &engine.OpError{Op: "command", Target: "loadfile", Err: engine.ErrRejected}

	err := play(t, b, Options{})
	require.ErrorIs(t, err, engine.ErrRejected)
	assert.Zero(t, b.host.polls)
	assert.Equal(t, 1, b.engine.destroyed)
}

func TestInvalidOverlayRejectedBeforeStartup(t *testing.T) {
	b := newFakeBackend()
	cfg := testConfig()
	cfg.Overlay.Text = "hello"
	cfg.Overlay.Color = "red"

	err := New(b, cfg).Play(context.Background(), Options{File: "song.mkv"})
	require.Error(t, err)
	assert.Empty(t, b.rec.calls)
}

func TestOverlayComposited(t *testing.T) {
	b := newFakeBackend()
	b.host.script = script(nil, nil)
	cfg := testConfig()
	cfg.Overlay.Text = "hello"

	require.NoError(t, New(b, cfg).Play(context.Background(), Options{File: "song.mkv"}))

	overlays := b.rec.withPrefix("command osd-overlay 1 ass-events")
	require.Len(t, overlays, 1, "overlay is only sent again when the framebuffer size changes")
	assert.Contains(t, overlays[0], "hello 960 540")
	assert.Less(t, b.rec.index("command loadfile song.mkv"), b.rec.index(overlays[0]))
	assert.Less(t, b.rec.index("command osd-overlay 1 none "), b.rec.index("close renderer"))
}

func TestCancelledContextStillTearsDown(t *testing.T) {
	b := newFakeBackend()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, New(b, testConfig()).Play(ctx, Options{File: "song.mkv"}))
	assert.Zero(t, b.host.polls)
	assert.Equal(t, []string{"close renderer", "destroy engine", "close host"}, b.rec.calls[len(b.rec.calls)-3:])
}

func TestUnexpectedPauseValueIsFatal(t *testing.T) {
	b := newFakeBackend()
	b.engine.props["pause"] = engine.String("maybe")
	b.host.script = script(keys(input.KeyDown(input.KeySpace, false)))

	err := play(t, b, Options{})
	require.ErrorIs(t, err, engine.ErrUnexpectedValue)
	assert.Equal(t, 1, b.host.polls)
	assert.Equal(t, 1, b.engine.destroyed)
}
