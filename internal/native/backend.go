// Package native connects the player to libmpv and SDL2
package native

import (
	"fmt"

	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/PizzaHomicide/toyunda/internal/mpv"
	"github.com/PizzaHomicide/toyunda/internal/player"
	"github.com/PizzaHomicide/toyunda/internal/window"
)

var (
	_ player.Backend  = Backend{}
	_ player.Engine   = (*mpv.Handle)(nil)
	_ player.Renderer = (*mpv.RenderContext)(nil)
	_ player.Host     = (*window.Window)(nil)
)

// Backend creates an SDL2 window and a libmpv engine rendering into it
type Backend struct{}

func (Backend) OpenHost(cfg config.WindowConfig) (player.Host, error) {
	w, err := window.Open(cfg)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (Backend) InitEngine() (player.Engine, error) {
	h, err := mpv.Init()
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (Backend) InstallRenderer(e player.Engine, h player.Host) (player.Renderer, error) {
	handle, ok := e.(*mpv.Handle)
	if !ok {
		return nil, fmt.Errorf("renderer needs a libmpv engine, got %T", e)
	}
	r, err := mpv.InstallRenderer(handle, h)
	if err != nil {
		return nil, err
	}
	return r, nil
}
