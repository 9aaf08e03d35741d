package engine

import (
	"fmt"
	"math"
)

// Property is one entry of the closed set of engine properties and options the player touches.  The
// zero Property is invalid; use the package level variables.
type Property struct {
	name     string
	format   Format
	readOnly bool
	check    func(Value) error
}

var (
	// Pause is the playback pause flag
	Pause = Property{name: "pause", format: FormatFlag}
	// Speed is the playback speed multiplier.  Must be strictly greater than zero.
	Speed = Property{name: "speed", format: FormatDouble, check: positive}
	// MediaTitle is the title of the loaded file
	MediaTitle = Property{name: "media-title", format: FormatString, readOnly: true}
	// Duration is the length of the loaded file in seconds
	Duration = Property{name: "duration", format: FormatDouble, readOnly: true}

	// VideoOutput selects the video output driver.  Must be set before the render context is installed.
	VideoOutput = Property{name: "vo", format: FormatString, check: nonEmpty}
	// SubtitleTrack selects the subtitle track; "no" disables subtitle decoding
	SubtitleTrack = Property{name: "sid", format: FormatString, check: nonEmpty}
	// HardwareDecoding selects the hardware decoding API
	HardwareDecoding = Property{name: "hwdec", format: FormatString}
	// VideoFilter is the video filter chain
	VideoFilter = Property{name: "vf", format: FormatString}
	// KeepOpen controls whether the engine holds the last frame at the end of the file
	KeepOpen = Property{name: "keep-open", format: FormatString}
)

// Name is the engine-side name of the property
func (p Property) Name() string {
	return p.name
}

// Format is the declared value format of the property
func (p Property) Format() Format {
	return p.format
}

func (p Property) String() string {
	return p.name
}

// Validate checks v against the property before it is marshalled to the engine.
func (p Property) Validate(v Value) error {
	if p.name == "" {
		return fmt.Errorf("%w: unknown property", ErrTypeMismatch)
	}
	if p.readOnly {
		return &OpError{Op: "set", Target: p.name, Err: ErrRejected, Cause: fmt.Errorf("property is read-only")}
	}
	if v.Format() != p.format {
		return mismatch(p, v)
	}
	if p.check != nil {
		if err := p.check(v); err != nil {
			return &OpError{Op: "set", Target: p.name, Err: ErrInvalidValue, Cause: err}
		}
	}
	return nil
}

func positive(v Value) error {
	f, _ := v.Double()
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%v is not greater than zero", f)
	}
	return nil
}

func nonEmpty(v Value) error {
	if s, _ := v.Str(); s == "" {
		return fmt.Errorf("empty value")
	}
	return nil
}
