package main

import (
	"image"
	"math"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/vktec/gldebug"
	"github.com/vktec/gll"
	"github.com/vktec/sketch"
	"github.com/vktec/sketch/gpu"
)

func init() {
	runtime.LockOSThread()
}

type App struct {
	gll.GL430

	win *glfw.Window
	r   *gpu.Renderer
	sk  *sketch.Sketch

	frames  []func()
	damaged bool

	rotating, panning bool
	sx, sy            float64
}

func NewApp(w, h int, tex image.Image, vsync bool) (app *App, err error) {
	app = &App{}

	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	app.win, err = glfw.CreateWindow(w, h, "Sketch", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	app.activate()
	app.DebugMessageCallback(gldebug.MessageCallback)
	if !vsync {
		glfw.SwapInterval(0)
	}

	app.r = gpu.NewRenderer(app.GL430)

	app.win.SetCursorPosCallback(app.CursorPos)
	app.win.SetMouseButtonCallback(app.MouseButton)
	app.win.SetScrollCallback(app.Scroll)
	app.win.SetKeyCallback(app.Key)
	app.win.SetRefreshCallback(app.Refresh)
	app.win.SetSizeCallback(app.Resize)
	app.win.SetFramebufferSizeCallback(app.Resize)

	app.sk, err = sketch.New(sketch.Options{
		Container: app,
		Renderer:  app,
		Scheduler: app,
		Texture:   tex,
	})
	if err != nil {
		app.Destroy()
		return nil, err
	}
	if err := app.r.Compile(app.sk.Material()); err != nil {
		app.Destroy()
		return nil, err
	}
	return app, nil
}

func (app *App) Destroy() {
	if app.r != nil {
		app.r.Destroy()
	}
	app.win.Destroy()
	glfw.Terminate()
}

func (app *App) activate() {
	app.win.MakeContextCurrent()
	app.GL430 = gll.New430(glfw.GetProcAddress)
}

func (app *App) Main() {
	for !app.win.ShouldClose() {
		if len(app.frames) > 0 {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}
		app.runFrames()
		if app.damaged {
			app.damaged = false
			app.win.SwapBuffers()
		}
	}
}

func (app *App) runFrames() {
	frames := app.frames
	app.frames = nil
	for _, fn := range frames {
		fn()
	}
}

// Size reports the window size in screen coordinates
func (app *App) Size() (w, h int) {
	return app.win.GetSize()
}

// RequestFrame queues fn for the next pass of the main loop
func (app *App) RequestFrame(fn func()) {
	app.frames = append(app.frames, fn)
}

// SetSize resizes the viewport, tracking the framebuffer scale for HiDPI windows
func (app *App) SetSize(w, h int) {
	if fw, _ := app.win.GetFramebufferSize(); w > 0 {
		app.r.PixelRatio = float32(fw) / float32(w)
	}
	app.r.SetSize(w, h)
}
func (app *App) Render(scene *sketch.Scene, camera *sketch.OrthographicCamera) {
	app.r.Render(scene, camera)
	app.damaged = true
}

func (app *App) cameraChanged() {
	if app.sk.Controls().Update() && !app.sk.Playing() {
		app.sk.Redraw()
	}
}

func (app *App) CursorPos(_ *glfw.Window, x, y float64) {
	if !app.rotating && !app.panning {
		return
	}
	dx, dy := x-app.sx, y-app.sy
	app.sx, app.sy = x, y

	w, h := app.sk.Size()
	if app.rotating {
		app.sk.Controls().Rotate(dx, dy, h)
	} else {
		app.sk.Controls().Pan(dx, dy, w, h)
	}
	app.cameraChanged()
}
func (app *App) MouseButton(_ *glfw.Window, btn glfw.MouseButton, act glfw.Action, mods glfw.ModifierKey) {
	switch btn {
	case glfw.MouseButtonLeft:
		app.rotating = act == glfw.Press
	case glfw.MouseButtonRight:
		app.panning = act == glfw.Press
	default:
		return
	}
	app.sx, app.sy = app.win.GetCursorPos()
}
func (app *App) Scroll(_ *glfw.Window, x, y float64) {
	app.sk.Controls().Zoom(float32(math.Pow(0.95, -y)))
	app.cameraChanged()
}
func (app *App) Key(_ *glfw.Window, key glfw.Key, scancode int, act glfw.Action, mods glfw.ModifierKey) {
	if act != glfw.Press {
		return
	}
	switch key {
	case glfw.KeySpace:
		app.sk.Toggle()
	case glfw.KeyR:
		app.sk.Controls().Reset()
		if !app.sk.Playing() {
			app.sk.Redraw()
		}
	case glfw.KeyEscape:
		app.win.SetShouldClose(true)
	}
}
func (app *App) Refresh(_ *glfw.Window) {
	app.sk.Redraw()
}
func (app *App) Resize(_ *glfw.Window, w, h int) {
	app.sk.Resize()
	if !app.sk.Playing() {
		app.sk.Redraw()
	}
}
