// Package overlay draws host-owned text on top of the video.  The text is turned into an ASS event and
// handed to the engine's osd-overlay command, so it is rendered by the same pass that draws the frame.
package overlay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/mattn/go-runewidth"
)

var assEscaper = strings.NewReplacer(
	// A word joiner after a backslash stops libass from reading it as an override tag
	`\`, "\\\u2060",
	"{", `\{`,
	"}", `\}`,
	"\r\n", `\N`,
	"\n", `\N`,
)

// BuildEvent returns the ASS event text for the overlay described by cfg.  It returns "" when the
// overlay has no text.
func BuildEvent(cfg config.OverlayConfig) (string, error) {
	if cfg.Text == "" {
		return "", nil
	}

	color, err := assColor(cfg.Color)
	if err != nil {
		return "", err
	}

	text := cfg.Text
	if limit := cfg.TextWidthLimit(); limit > 0 && runewidth.StringWidth(text) > limit {
		text = runewidth.Truncate(text, limit, "…")
	}

	x, y := cfg.Position()
	tags := fmt.Sprintf(`{\an7\pos(%d,%d)\fs%d\bord%d\3c&H000000&\1c%s\1a&H%02X&}`,
		x, y, cfg.FontSize, cfg.OutlineWidth(), color, assAlpha(cfg.Opacity()))

	return tags + assEscaper.Replace(text), nil
}

// assColor converts #RRGGBB into ASS' &HBBGGRR& notation
func assColor(hex string) (string, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return "", fmt.Errorf("invalid overlay colour %q: expected #RRGGBB", hex)
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "", fmt.Errorf("invalid overlay colour %q: %w", hex, err)
	}
	s = strings.ToUpper(s)
	return "&H" + s[4:6] + s[2:4] + s[0:2] + "&", nil
}

// assAlpha converts an opacity (255 opaque) into ASS transparency (0 opaque)
func assAlpha(opacity int) int {
	opacity = max(0, min(255, opacity))
	return 255 - opacity
}
