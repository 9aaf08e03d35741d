package overlay

import (
	"strconv"

	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/PizzaHomicide/toyunda/internal/log"
)

// Commander sends a command to the engine
type Commander interface {
	Command(args ...string) error
}

// overlayID is the engine-side slot of the overlay.  The player only ever uses one.
const overlayID = 1

// Compositor keeps the overlay in sync with the framebuffer.  The overlay is laid out in framebuffer
// pixels, so it is only re-sent when the framebuffer size changes.
type Compositor struct {
	cmd    Commander
	event  string
	width  int
	height int
}

// NewCompositor builds the overlay described by cfg.  A config without text yields a compositor that
// does nothing.
func NewCompositor(cmd Commander, cfg config.OverlayConfig) (*Compositor, error) {
	event, err := BuildEvent(cfg)
	if err != nil {
		return nil, err
	}
	return &Compositor{cmd: cmd, event: event}, nil
}

// Enabled reports whether there is any text to draw
func (c *Compositor) Enabled() bool {
	return c.event != ""
}

// Composite makes sure the overlay is shown for a framebuffer of the given size
func (c *Compositor) Composite(width, height int) error {
	if !c.Enabled() || width <= 0 || height <= 0 {
		return nil
	}
	if width == c.width && height == c.height {
		return nil
	}

	err := c.cmd.Command("osd-overlay", strconv.Itoa(overlayID), "ass-events", c.event,
		strconv.Itoa(width), strconv.Itoa(height))
	if err != nil {
		return err
	}

	log.Debug("Overlay updated", "width", width, "height", height)
	c.width, c.height = width, height
	return nil
}

// Clear removes the overlay from the engine
func (c *Compositor) Clear() error {
	if !c.Enabled() || c.width == 0 {
		return nil
	}
	c.width, c.height = 0, 0
	return c.cmd.Command("osd-overlay", strconv.Itoa(overlayID), "none", "")
}
