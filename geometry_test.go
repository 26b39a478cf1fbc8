package sketch

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlaneGeometryUnit(t *testing.T) {
	g := PlaneGeometry(1, 1, 1, 1)
	if len(g.Positions) != 4 || len(g.Normals) != 4 || len(g.UVs) != 4 {
		t.Fatalf("Expected 4 vertices, got %d/%d/%d", len(g.Positions), len(g.Normals), len(g.UVs))
	}
	if len(g.Indices) != 6 {
		t.Fatalf("Expected 6 indices, got %d", len(g.Indices))
	}

	expected := []struct {
		pos mgl32.Vec3
		uv  mgl32.Vec2
	}{
		{mgl32.Vec3{-0.5, 0.5, 0}, mgl32.Vec2{0, 1}},
		{mgl32.Vec3{0.5, 0.5, 0}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{-0.5, -0.5, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{0.5, -0.5, 0}, mgl32.Vec2{1, 0}},
	}
	for i, e := range expected {
		if g.Positions[i] != e.pos {
			t.Error("Vertex", i, "expected position", e.pos, "got", g.Positions[i])
		}
		if g.UVs[i] != e.uv {
			t.Error("Vertex", i, "expected uv", e.uv, "got", g.UVs[i])
		}
		if g.Normals[i] != (mgl32.Vec3{0, 0, 1}) {
			t.Error("Vertex", i, "expected normal +Z, got", g.Normals[i])
		}
	}
}

func TestPlaneGeometrySegments(t *testing.T) {
	g := PlaneGeometry(2, 4, 2, 3)
	if len(g.Positions) != 12 {
		t.Error("Expected 12 vertices, got", len(g.Positions))
	}
	if len(g.Indices) != 36 {
		t.Error("Expected 36 indices, got", len(g.Indices))
	}
	for _, idx := range g.Indices {
		if int(idx) >= len(g.Positions) {
			t.Fatal("Index", idx, "out of range")
		}
	}
	last := g.Positions[len(g.Positions)-1]
	if !last.ApproxEqual(mgl32.Vec3{1, -2, 0}) {
		t.Error("Expected last vertex at (1, -2, 0), got", last)
	}
}

func TestPlaneGeometryFacesForward(t *testing.T) {
	tris := PlaneGeometry(1, 1, 3, 2).Triangles()
	if len(tris)%3 != 0 {
		t.Fatal("Triangle list length", len(tris), "is not a multiple of 3")
	}
	for i := 0; i < len(tris); i += 3 {
		a, b, c := tris[i].Position, tris[i+1].Position, tris[i+2].Position
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Z() <= 0 {
			t.Errorf("Triangle %d winds clockwise: %v %v %v", i/3, a, b, c)
		}
	}
}

func TestPlaneGeometryInvalidSegments(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("Expected segment count assertion")
		} else if err != "Plane segment count must be positive" {
			panic(err)
		}
	}()
	PlaneGeometry(1, 1, 0, 1)
}
