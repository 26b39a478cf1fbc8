package sketch

import "github.com/go-gl/mathgl/mgl32"

type OrthographicCamera struct {
	Left, Right, Top, Bottom float32
	Near, Far                float32
	Zoom                     float32

	// Recorded on resize. The frustum itself is fixed, so this does not affect the projection
	Aspect float32

	Position, Target, Up mgl32.Vec3

	projection mgl32.Mat4
}

// NewOrthographicCamera creates a camera with a square frustum of the given size
func NewOrthographicCamera(frustumSize, near, far float32) *OrthographicCamera {
	c := &OrthographicCamera{
		Left:   -frustumSize / 2,
		Right:  frustumSize / 2,
		Top:    frustumSize / 2,
		Bottom: -frustumSize / 2,
		Near:   near,
		Far:    far,
		Zoom:   1,
		Aspect: 1,
		Up:     mgl32.Vec3{0, 1, 0},
	}
	c.UpdateProjectionMatrix()
	return c
}

func (c *OrthographicCamera) UpdateProjectionMatrix() {
	dx := (c.Right - c.Left) / (2 * c.Zoom)
	dy := (c.Top - c.Bottom) / (2 * c.Zoom)
	cx := (c.Right + c.Left) / 2
	cy := (c.Top + c.Bottom) / 2
	c.projection = mgl32.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, c.Near, c.Far)
}

func (c *OrthographicCamera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

func (c *OrthographicCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Visible world-space extent at the current zoom
func (c *OrthographicCamera) Extent() (w, h float32) {
	return (c.Right - c.Left) / c.Zoom, (c.Top - c.Bottom) / c.Zoom
}
