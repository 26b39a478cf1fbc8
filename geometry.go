package sketch

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vktec/sketch/util"
)

type Geometry struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// PlaneGeometry builds a width*height grid in the XY plane facing +Z, centred on the origin
func PlaneGeometry(width, height float32, widthSegments, heightSegments int) *Geometry {
	util.Assert(widthSegments > 0 && heightSegments > 0, "Plane segment count must be positive")
	if widthSegments < 1 {
		widthSegments = 1
	}
	if heightSegments < 1 {
		heightSegments = 1
	}

	gridX1, gridY1 := widthSegments+1, heightSegments+1
	segW := width / float32(widthSegments)
	segH := height / float32(heightSegments)

	g := &Geometry{
		Positions: make([]mgl32.Vec3, 0, gridX1*gridY1),
		Normals:   make([]mgl32.Vec3, 0, gridX1*gridY1),
		UVs:       make([]mgl32.Vec2, 0, gridX1*gridY1),
		Indices:   make([]uint32, 0, 6*widthSegments*heightSegments),
	}

	for iy := 0; iy < gridY1; iy++ {
		y := float32(iy)*segH - height/2
		for ix := 0; ix < gridX1; ix++ {
			x := float32(ix)*segW - width/2
			g.Positions = append(g.Positions, mgl32.Vec3{x, -y, 0})
			g.Normals = append(g.Normals, mgl32.Vec3{0, 0, 1})
			g.UVs = append(g.UVs, mgl32.Vec2{
				float32(ix) / float32(widthSegments),
				1 - float32(iy)/float32(heightSegments),
			})
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(ix + gridX1*iy)
			b := uint32(ix + gridX1*(iy+1))
			c := uint32(ix + 1 + gridX1*(iy+1))
			d := uint32(ix + 1 + gridX1*iy)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}

// Triangles expands the index list into one vertex per corner
func (g *Geometry) Triangles() []Vertex {
	verts := make([]Vertex, len(g.Indices))
	for i, idx := range g.Indices {
		verts[i] = Vertex{g.Positions[idx], g.Normals[idx], g.UVs[idx]}
	}
	return verts
}
