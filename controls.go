package sketch

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const polarEpsilon = 1e-6

// OrbitControls moves a camera around its target. Pointer deltas are accumulated
// by Rotate, Pan and Zoom and applied by Update.
type OrbitControls struct {
	Camera *OrthographicCamera

	MinZoom, MaxZoom float32

	dTheta, dPhi float64
	panOffset    mgl32.Vec3
	zoomChanged  bool

	position0, target0 mgl32.Vec3
	zoom0              float32
}

func NewOrbitControls(camera *OrthographicCamera) *OrbitControls {
	c := &OrbitControls{
		Camera:  camera,
		MinZoom: 0.01,
		MaxZoom: 100,
	}
	c.SaveState()
	return c
}

// SaveState records the camera state Reset returns to
func (c *OrbitControls) SaveState() {
	c.position0 = c.Camera.Position
	c.target0 = c.Camera.Target
	c.zoom0 = c.Camera.Zoom
}

func (c *OrbitControls) Reset() {
	c.Camera.Position = c.position0
	c.Camera.Target = c.target0
	c.Camera.Zoom = c.zoom0
	c.Camera.UpdateProjectionMatrix()
	c.dTheta, c.dPhi = 0, 0
	c.panOffset = mgl32.Vec3{}
	c.zoomChanged = false
}

// A drag across the full viewport height is one full turn
func (c *OrbitControls) Rotate(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	c.dTheta -= 2 * math.Pi * dx / float64(viewportHeight)
	c.dPhi -= 2 * math.Pi * dy / float64(viewportHeight)
}

func (c *OrbitControls) Zoom(scale float32) {
	zoom := c.Camera.Zoom * scale
	if zoom < c.MinZoom {
		zoom = c.MinZoom
	}
	if zoom > c.MaxZoom {
		zoom = c.MaxZoom
	}
	if zoom != c.Camera.Zoom {
		c.Camera.Zoom = zoom
		c.Camera.UpdateProjectionMatrix()
		c.zoomChanged = true
	}
}

// Pan moves the camera so that the point under the pointer follows it
func (c *OrbitControls) Pan(dx, dy float64, viewportWidth, viewportHeight int) {
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return
	}
	right, up := c.axes()
	ew, eh := c.Camera.Extent()
	distX := float32(dx) * ew / float32(viewportWidth)
	distY := float32(dy) * eh / float32(viewportHeight)
	c.panOffset = c.panOffset.Sub(right.Mul(distX)).Add(up.Mul(distY))
}

// Camera-space X and Y in world coordinates
func (c *OrbitControls) axes() (right, up mgl32.Vec3) {
	forward := c.Camera.Target.Sub(c.Camera.Position)
	if forward.Len() == 0 {
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	}
	forward = forward.Normalize()
	right = forward.Cross(c.Camera.Up)
	if right.Len() == 0 {
		return mgl32.Vec3{1, 0, 0}, c.Camera.Up
	}
	right = right.Normalize()
	return right, right.Cross(forward)
}

// Update applies accumulated input and reports whether the camera moved
func (c *OrbitControls) Update() bool {
	cam := c.Camera
	moved := c.zoomChanged
	c.zoomChanged = false

	offset := cam.Position.Sub(cam.Target)
	radius := float64(offset.Len())
	if radius > 0 && (c.dTheta != 0 || c.dPhi != 0) {
		theta := math.Atan2(float64(offset.X()), float64(offset.Z()))
		phi := math.Acos(clamp(float64(offset.Y())/radius, -1, 1))

		theta += c.dTheta
		phi = clamp(phi+c.dPhi, polarEpsilon, math.Pi-polarEpsilon)

		offset = mgl32.Vec3{
			float32(radius * math.Sin(phi) * math.Sin(theta)),
			float32(radius * math.Cos(phi)),
			float32(radius * math.Sin(phi) * math.Cos(theta)),
		}
		moved = true
	}

	if c.panOffset != (mgl32.Vec3{}) {
		cam.Target = cam.Target.Add(c.panOffset)
		moved = true
	}
	cam.Position = cam.Target.Add(offset)

	c.dTheta, c.dPhi = 0, 0
	c.panOffset = mgl32.Vec3{}
	return moved
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
