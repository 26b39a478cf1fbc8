package sketch

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func project(c *OrthographicCamera, p mgl32.Vec3) mgl32.Vec3 {
	v := c.ProjectionMatrix().Mul4(c.ViewMatrix()).Mul4x1(p.Vec4(1))
	return v.Vec3().Mul(1 / v.W())
}

func TestOrthographicFrustum(t *testing.T) {
	c := NewOrthographicCamera(1, -1000, 1000)
	c.Position = mgl32.Vec3{0, 0, 2}

	cases := []struct{ in, out mgl32.Vec3 }{
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 0}},
		{mgl32.Vec3{0.5, 0.5, 0}, mgl32.Vec3{1, 1, 0}},
		{mgl32.Vec3{-0.5, 0.25, 0}, mgl32.Vec3{-1, 0.5, 0}},
	}
	for _, tc := range cases {
		got := project(c, tc.in)
		if !approx(got.X(), tc.out.X()) || !approx(got.Y(), tc.out.Y()) {
			t.Error("Projecting", tc.in, "expected", tc.out, "got", got)
		}
	}
}

func TestOrthographicZoom(t *testing.T) {
	c := NewOrthographicCamera(1, -1000, 1000)
	c.Position = mgl32.Vec3{0, 0, 2}
	c.Zoom = 2
	c.UpdateProjectionMatrix()

	got := project(c, mgl32.Vec3{0.25, -0.25, 0})
	if !approx(got.X(), 1) || !approx(got.Y(), -1) {
		t.Error("Expected (1, -1), got", got)
	}
	if w, h := c.Extent(); w != 0.5 || h != 0.5 {
		t.Error("Expected extent 0.5x0.5, got", w, h)
	}
}

func TestProjectionIgnoresAspect(t *testing.T) {
	c := NewOrthographicCamera(1, -1000, 1000)
	before := c.ProjectionMatrix()
	c.Aspect = 3
	c.UpdateProjectionMatrix()
	if c.ProjectionMatrix() != before {
		t.Error("Aspect changed the fixed frustum")
	}
}
