package sketch

import (
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Amount time advances on every rendered frame
const TimeStep = 0.05

// Height over width of the source image the fragment shader covers the viewport with
const ImageAspect = 853.0 / 1280.0

type Container interface {
	Size() (w, h int)
}

type Renderer interface {
	SetSize(w, h int)
	Render(scene *Scene, camera *OrthographicCamera)
}

// Scheduler runs a callback before the next frame is presented, like requestAnimationFrame
type Scheduler interface {
	RequestFrame(fn func())
}

type Options struct {
	Container Container
	Renderer  Renderer
	Scheduler Scheduler

	// Sampled as texture1. May be nil
	Texture image.Image
}

type Sketch struct {
	container Container
	renderer  Renderer
	scheduler Scheduler

	scene    *Scene
	camera   *OrthographicCamera
	controls *OrbitControls

	material *ShaderMaterial
	geometry *Geometry
	plane    *Mesh

	time      float32
	isPlaying bool
	pending   bool
	w, h      int
}

func New(opts Options) (*Sketch, error) {
	if opts.Container == nil {
		return nil, errors.New("sketch: nil container")
	}
	if opts.Renderer == nil {
		return nil, errors.New("sketch: nil renderer")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("sketch: nil scheduler")
	}

	s := &Sketch{
		container: opts.Container,
		renderer:  opts.Renderer,
		scheduler: opts.Scheduler,
		scene:     NewScene(),
		isPlaying: true,
	}
	s.camera = NewOrthographicCamera(1, -1000, 1000)
	s.camera.Position = mgl32.Vec3{0, 0, 2}
	s.controls = NewOrbitControls(s.camera)

	s.addObjects(opts.Texture)
	s.Resize()
	s.Render()
	return s, nil
}

func (s *Sketch) addObjects(tex image.Image) {
	s.material = &ShaderMaterial{
		VertexShader:   VertexShader,
		FragmentShader: FragmentShader,
		Side:           DoubleSide,
		Uniforms: Uniforms{
			UVRate1:  mgl32.Vec2{1, 1},
			Texture1: tex,
		},
	}
	s.geometry = PlaneGeometry(1, 1, 1, 1)
	s.plane = NewMesh(s.geometry, s.material)
	s.scene.Add(s.plane)
}

func (s *Sketch) Resize() {
	w, h := s.container.Size()
	if w <= 0 || h <= 0 {
		// Minimised window; keep the last usable state
		return
	}
	s.w, s.h = w, h
	s.renderer.SetSize(w, h)
	s.camera.Aspect = float32(w) / float32(h)

	a1, a2 := Cover(w, h, ImageAspect)
	s.material.Uniforms.Resolution = mgl32.Vec4{float32(w), float32(h), a1, a2}

	s.camera.UpdateProjectionMatrix()
}

// Cover returns the scale to apply to centred UVs so an image with the given
// height/width ratio fills a w*h viewport without distortion, cropping the excess.
func Cover(w, h int, imageAspect float32) (a1, a2 float32) {
	aspect := float32(w) / float32(h)
	rAspect := float32(h) / float32(w)
	if rAspect > imageAspect {
		return aspect * imageAspect, 1
	}
	return 1, rAspect / imageAspect
}

func (s *Sketch) Render() {
	if !s.isPlaying {
		return
	}

	s.time += TimeStep
	s.material.Uniforms.Time = s.time
	if !s.pending {
		s.pending = true
		s.scheduler.RequestFrame(s.frame)
	}
	s.renderer.Render(s.scene, s.camera)
}

func (s *Sketch) frame() {
	s.pending = false
	s.Render()
}

// Redraw draws the current state without advancing time
func (s *Sketch) Redraw() {
	s.renderer.Render(s.scene, s.camera)
}

func (s *Sketch) Stop() {
	s.isPlaying = false
}

// Play restarts the frame chain. If a frame is still queued from before Stop,
// that frame resumes rendering instead.
func (s *Sketch) Play() {
	if !s.isPlaying {
		s.isPlaying = true
		if !s.pending {
			s.Render()
		}
	}
}

func (s *Sketch) Toggle() {
	if s.isPlaying {
		s.Stop()
	} else {
		s.Play()
	}
}

func (s *Sketch) Time() float32               { return s.time }
func (s *Sketch) Playing() bool               { return s.isPlaying }
func (s *Sketch) Size() (w, h int)            { return s.w, s.h }
func (s *Sketch) Scene() *Scene               { return s.scene }
func (s *Sketch) Camera() *OrthographicCamera { return s.camera }
func (s *Sketch) Controls() *OrbitControls    { return s.controls }
func (s *Sketch) Material() *ShaderMaterial   { return s.material }
