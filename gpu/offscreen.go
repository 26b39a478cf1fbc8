package gpu

import (
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/vktec/gldebug"
	"github.com/vktec/glhl"
	"github.com/vktec/gll"
)

// Offscreen renders into a fixed-size framebuffer on a hidden context.
// It acts as both the container and the frame scheduler for a sketch.
type Offscreen struct {
	gll.GL430
	ctx glhl.Context
	r   *Renderer

	fbo, colorTex uint32
	w, h          int

	frames []func()
}

func NewOffscreen(w, h int) (*Offscreen, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid offscreen size %dx%d", w, h)
	}

	ctx, err := glhl.NewContext(4, 3, glhl.Core|glhl.Debug)
	if err != nil {
		return nil, err
	}

	o := &Offscreen{ctx: ctx, w: w, h: h}
	o.activate()
	o.DebugMessageCallback(gldebug.MessageCallback)

	o.GenTextures(1, &o.colorTex)
	o.BindTexture(gll.TEXTURE_2D, o.colorTex)
	o.TexImage2D(gll.TEXTURE_2D, 0, int32(gll.RGBA8), int32(w), int32(h), 0, gll.RGBA, gll.UNSIGNED_BYTE, nil)
	o.BindTexture(gll.TEXTURE_2D, 0)

	o.GenFramebuffers(1, &o.fbo)
	o.BindFramebuffer(gll.FRAMEBUFFER, o.fbo)
	o.FramebufferTexture2D(gll.FRAMEBUFFER, gll.COLOR_ATTACHMENT0, gll.TEXTURE_2D, o.colorTex, 0)
	if status := o.CheckFramebufferStatus(gll.FRAMEBUFFER); status != gll.FRAMEBUFFER_COMPLETE {
		o.Destroy()
		return nil, fmt.Errorf("incomplete framebuffer: 0x%x", status)
	}

	o.r = NewRenderer(o.GL430)
	return o, nil
}

func (o *Offscreen) activate() {
	o.ctx.MakeContextCurrent()
	o.GL430 = gll.New430(glhl.GetProcAddr)
}

func (o *Offscreen) Destroy() {
	if o.r != nil {
		o.r.Destroy()
	}
	o.DeleteFramebuffers(1, &o.fbo)
	o.DeleteTextures(1, &o.colorTex)
	o.ctx.Destroy()
	glfw.Terminate()
}

func (o *Offscreen) Renderer() *Renderer {
	return o.r
}

func (o *Offscreen) Size() (w, h int) {
	return o.w, o.h
}

func (o *Offscreen) RequestFrame(fn func()) {
	o.frames = append(o.frames, fn)
}

// Step runs the callbacks queued before it was called and reports how many ran
func (o *Offscreen) Step() int {
	frames := o.frames
	o.frames = nil
	for _, fn := range frames {
		fn()
	}
	return len(frames)
}

// Snapshot reads back the framebuffer, top row first
func (o *Offscreen) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, o.w, o.h))
	o.Finish()
	o.PixelStorei(gll.PACK_ALIGNMENT, 1)
	o.ReadPixels(0, 0, int32(o.w), int32(o.h), gll.RGBA, gll.UNSIGNED_BYTE, gll.Ptr(img.Pix))
	flipRows(img)
	return img
}
