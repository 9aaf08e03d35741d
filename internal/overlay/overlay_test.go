package overlay

import (
	"errors"
	"strings"
	"testing"

	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCommander struct {
	calls [][]string
	err   error
}

func (r *recordingCommander) Command(args ...string) error {
	r.calls = append(r.calls, args)
	return r.err
}

func testOverlay(text string) config.OverlayConfig {
	return config.OverlayConfig{
		Text:     text,
		FontSize: 72,
		Color:    "#FF0000",
		Alpha:    config.Int(128),
		Outline:  config.Int(2),
		X:        config.Int(5),
		Y:        config.Int(5),
		MaxWidth: config.Int(80),
	}
}

func TestBuildEvent(t *testing.T) {
	event, err := BuildEvent(testOverlay("test tr€é ~@ あなた 猫 kek"))
	require.NoError(t, err)
	assert.Equal(t, `{\an7\pos(5,5)\fs72\bord2\3c&H000000&\1c&H0000FF&\1a&H7F&}test tr€é ~@ あなた 猫 kek`, event)
}

func TestBuildEventEmptyText(t *testing.T) {
	event, err := BuildEvent(testOverlay(""))
	require.NoError(t, err)
	assert.Empty(t, event)
}

func TestBuildEventEscapesText(t *testing.T) {
	event, err := BuildEvent(testOverlay("{\\b1}bold\nline"))
	require.NoError(t, err)

	body := event[strings.Index(event, "}")+1:]
	assert.Equal(t, "\\{\\\u2060b1\\}bold\\Nline", body)
}

func TestBuildEventTruncates(t *testing.T) {
	cfg := testOverlay("あいうえお")
	cfg.MaxWidth = config.Int(6)

	event, err := BuildEvent(cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(event, "}あい…"), event)
}

func TestBuildEventZeroValues(t *testing.T) {
	cfg := testOverlay("あいうえお")
	cfg.X = config.Int(0)
	cfg.Y = config.Int(0)
	cfg.Outline = config.Int(0)
	cfg.MaxWidth = config.Int(0)

	event, err := BuildEvent(cfg)
	require.NoError(t, err)
	assert.Equal(t, `{\an7\pos(0,0)\fs72\bord0\3c&H000000&\1c&H0000FF&\1a&H7F&}あいうえお`, event)
}

func TestBuildEventInvalidColor(t *testing.T) {
	for _, color := range []string{"red", "#FF00", "#GG0000"} {
		cfg := testOverlay("x")
		cfg.Color = color
		_, err := BuildEvent(cfg)
		assert.Error(t, err, color)
	}
}

func TestAssAlpha(t *testing.T) {
	assert.Equal(t, 0, assAlpha(255))
	assert.Equal(t, 255, assAlpha(0))
	assert.Equal(t, 0, assAlpha(1000))
	assert.Equal(t, 255, assAlpha(-3))
}

func TestCompositorResendsOnResize(t *testing.T) {
	cmd := &recordingCommander{}
	c, err := NewCompositor(cmd, testOverlay("hello"))
	require.NoError(t, err)

	for range 5 {
		require.NoError(t, c.Composite(960, 540))
	}
	require.Len(t, cmd.calls, 1)
	assert.Equal(t, []string{"osd-overlay", "1", "ass-events"}, cmd.calls[0][:3])
	assert.Equal(t, []string{"960", "540"}, cmd.calls[0][4:])

	require.NoError(t, c.Composite(1920, 1080))
	require.Len(t, cmd.calls, 2)
	assert.Equal(t, []string{"1920", "1080"}, cmd.calls[1][4:])

	require.NoError(t, c.Clear())
	assert.Equal(t, []string{"osd-overlay", "1", "none", ""}, cmd.calls[2])
}

func TestCompositorRetriesAfterError(t *testing.T) {
	cmd := &recordingCommander{err: errors.New("rejected")}
	c, err := NewCompositor(cmd, testOverlay("hello"))
	require.NoError(t, err)

	assert.Error(t, c.Composite(960, 540))
	cmd.err = nil
	assert.NoError(t, c.Composite(960, 540))
	assert.Len(t, cmd.calls, 2)
}

func TestCompositorDisabled(t *testing.T) {
	cmd := &recordingCommander{}
	c, err := NewCompositor(cmd, testOverlay(""))
	require.NoError(t, err)

	assert.False(t, c.Enabled())
	assert.NoError(t, c.Composite(960, 540))
	assert.NoError(t, c.Clear())
	assert.Empty(t, cmd.calls)
}

func TestCompositorSkipsEmptyFramebuffer(t *testing.T) {
	cmd := &recordingCommander{}
	c, err := NewCompositor(cmd, testOverlay("hello"))
	require.NoError(t, err)

	assert.NoError(t, c.Composite(0, 0))
	assert.Empty(t, cmd.calls)
}
