package mpv

/*
#cgo !pkgconfig LDFLAGS: -lmpv
#cgo pkgconfig pkg-config: mpv

#include <stdint.h>
#include <mpv/client.h>
#include <mpv/render_gl.h>

extern void *toyundaGetProcAddress(void *ctx, char *name);

static void *get_proc_address(void *ctx, const char *name) {
	return toyundaGetProcAddress(ctx, (char *)name);
}

static int render_create(mpv_render_context **res, mpv_handle *mpv, uintptr_t token) {
	mpv_opengl_init_params gl_init = {
		.get_proc_address = get_proc_address,
		.get_proc_address_ctx = (void *)token,
	};
	mpv_render_param params[] = {
		{MPV_RENDER_PARAM_API_TYPE, (void *)MPV_RENDER_API_TYPE_OPENGL},
		{MPV_RENDER_PARAM_OPENGL_INIT_PARAMS, &gl_init},
		{MPV_RENDER_PARAM_INVALID, NULL},
	};
	return mpv_render_context_create(res, mpv, params);
}

static int render_draw(mpv_render_context *ctx, int fbo, int w, int h, int flip) {
	mpv_opengl_fbo target = {
		.fbo = fbo,
		.w = w,
		.h = h,
		.internal_format = 0,
	};
	mpv_render_param params[] = {
		{MPV_RENDER_PARAM_OPENGL_FBO, &target},
		{MPV_RENDER_PARAM_FLIP_Y, &flip},
		{MPV_RENDER_PARAM_INVALID, NULL},
	};
	mpv_render_context_update(ctx);
	return mpv_render_context_render(ctx, params);
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/PizzaHomicide/toyunda/internal/engine"
	"github.com/PizzaHomicide/toyunda/internal/glproc"
	"github.com/PizzaHomicide/toyunda/internal/log"
	"github.com/gen2brain/go-mpv"
)

// RenderContext is the engine's OpenGL renderer bound to the host's GL context.  All of its methods
// must be called on the thread where that GL context is current.
type RenderContext struct {
	ctx      *C.mpv_render_context
	resolver *glproc.Context
}

// InstallRenderer creates the OpenGL render context on h.  The host GL context must already be current
// and the video output option must already select the libmpv output.  resolver is pinned until Close.
func InstallRenderer(h *Handle, resolver glproc.Resolver) (*RenderContext, error) {
	if h.destroyed {
		return nil, engine.ErrDestroyed
	}

	pinned := glproc.NewContext(resolver)
	var ctx *C.mpv_render_context
	if rc := C.render_create(&ctx, rawHandle(h.m), C.uintptr_t(pinned.Token())); rc < 0 {
		pinned.Release()
		return nil, engine.Wrap("install-renderer", "opengl", engine.ErrInit, nativeError(rc))
	}

	log.Debug("Render context installed", "api", "opengl")
	return &RenderContext{ctx: ctx, resolver: pinned}, nil
}

// Draw renders the current video frame into target.  A negative target height flips the picture
// vertically, which is what the window's default framebuffer needs.  Failures are returned as
// engine.ErrRender so the caller can skip the frame.
func (r *RenderContext) Draw(target engine.FrameTarget) error {
	if r.ctx == nil {
		return engine.ErrDestroyed
	}
	if target.Empty() {
		return nil
	}

	flip := 0
	if target.Flipped() {
		flip = 1
	}

	rc := C.render_draw(r.ctx, C.int(target.Framebuffer), C.int(target.Width), C.int(target.PixelHeight()), C.int(flip))
	if rc < 0 {
		return engine.Wrap("draw", "", engine.ErrRender, nativeError(rc))
	}
	return nil
}

// ReportSwap tells the engine a frame has just been presented.  It only improves frame timing.
func (r *RenderContext) ReportSwap() {
	if r.ctx != nil {
		C.mpv_render_context_report_swap(r.ctx)
	}
}

// Close frees the render context and then releases the GL resolver.  It must run before the Handle is
// destroyed, with the GL context still current.
func (r *RenderContext) Close() {
	if r.ctx == nil {
		return
	}
	C.mpv_render_context_free(r.ctx)
	r.ctx = nil
	r.resolver.Release()
	log.Debug("Render context freed")
}

// rawHandle reaches the mpv_handle behind go-mpv's client, which keeps it as its only field.
func rawHandle(m *mpv.Mpv) *C.mpv_handle {
	return *(**C.mpv_handle)(unsafe.Pointer(m))
}

func nativeError(rc C.int) error {
	return fmt.Errorf("mpv error %d: %s", int(rc), C.GoString(C.mpv_error_string(rc)))
}
