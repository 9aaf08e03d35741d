package engine

// FrameTarget describes where the engine should draw a frame.
//
// Height is signed.  The engine draws top-down while the host's default framebuffer is bottom-up, so
// targets built for the host window carry the negated pixel height; a positive height renders the
// video upside down on screen.
type FrameTarget struct {
	// Framebuffer is the GL framebuffer object to draw into.  0 is the window's default framebuffer.
	Framebuffer int
	Width       int
	Height      int
}

// WindowTarget builds the target for the host's default framebuffer of the given pixel size.  This is
// the only place the height is negated.
func WindowTarget(width, pixelHeight int) FrameTarget {
	return FrameTarget{Framebuffer: 0, Width: width, Height: -pixelHeight}
}

// Flipped reports whether the target asks for a vertically flipped render
func (t FrameTarget) Flipped() bool {
	return t.Height < 0
}

// PixelHeight is the absolute height of the target in pixels
func (t FrameTarget) PixelHeight() int {
	if t.Height < 0 {
		return -t.Height
	}
	return t.Height
}

// Empty reports whether there is nothing to draw into, e.g. while the window is minimised.
func (t FrameTarget) Empty() bool {
	return t.Width <= 0 || t.Height == 0
}
