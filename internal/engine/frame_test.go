package engine

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestWindowTargetNegatesHeightOnce(t *testing.T) {
	prop := func(w, h uint16) bool {
		target := WindowTarget(int(w), int(h))
		return target.Framebuffer == 0 &&
			target.Width == int(w) &&
			target.Height == -int(h) &&
			target.PixelHeight() == int(h)
	}
	assert.NoError(t, quick.Check(prop, nil))
}

func TestFrameTarget(t *testing.T) {
	target := WindowTarget(960, 540)
	assert.True(t, target.Flipped())
	assert.False(t, target.Empty())

	assert.True(t, WindowTarget(0, 540).Empty())
	assert.True(t, WindowTarget(960, 0).Empty())
	assert.False(t, FrameTarget{Width: 10, Height: 10}.Flipped())
}
