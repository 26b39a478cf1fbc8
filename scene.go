package sketch

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

type Scene struct {
	ClearColor mgl32.Vec4
	Meshes     []*Mesh
}

func NewScene() *Scene {
	return &Scene{ClearColor: HexColor(0xeeeeee, 1)}
}

func (sc *Scene) Add(m *Mesh) {
	sc.Meshes = append(sc.Meshes, m)
}

// HexColor converts a 0xRRGGBB value into normalised RGBA
func HexColor(rgb uint32, alpha float32) mgl32.Vec4 {
	return mgl32.Vec4{
		float32(rgb>>16&0xff) / 255,
		float32(rgb>>8&0xff) / 255,
		float32(rgb&0xff) / 255,
		alpha,
	}
}

type Mesh struct {
	Geometry *Geometry
	Material *ShaderMaterial
	Model    mgl32.Mat4
}

func NewMesh(g *Geometry, m *ShaderMaterial) *Mesh {
	return &Mesh{g, m, mgl32.Ident4()}
}

type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

type Uniforms struct {
	Time       float32
	Resolution mgl32.Vec4 // xy is size in pixels, zw is the cover scale
	UVRate1    mgl32.Vec2
	Texture1   image.Image

	// Bump after changing Texture1's pixels in place to force a re-upload
	TextureVersion int
}

type ShaderMaterial struct {
	VertexShader   string
	FragmentShader string
	Side           Side
	Uniforms       Uniforms
}
