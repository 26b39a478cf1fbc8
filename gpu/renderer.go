package gpu

import (
	"image"
	"image/color"
	"log"
	"reflect"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vktec/gll"
	"github.com/vktec/sketch"
)

// Declarations prepended to every material, mirroring what three.js provides to a ShaderMaterial
const vertPrefix = `#version 430 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 uv;
uniform mat4 modelMatrix;
uniform mat4 modelViewMatrix;
uniform mat4 projectionMatrix;
uniform mat4 viewMatrix;
uniform vec3 cameraPosition;
#line 1
`

const fragPrefix = `#version 430 core
uniform mat4 viewMatrix;
uniform vec3 cameraPosition;
#line 1
`

// Interleaved attributes, bound at locations 0-2
type gpuVertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

const (
	offsetPosition = 0
	offsetNormal   = 3 * 4
	offsetUV       = 6 * 4
)

type program struct {
	id uint32

	uModel, uModelView, uProjection, uView, uCameraPos int32
	uTime, uResolution, uUVRate1, uTexture1            int32

	texImg     image.Image
	texVersion int
	tex        uint32
}

type vertexBuffer struct {
	buf   uint32
	count int32
}

type Renderer struct {
	gll.GL430

	// Framebuffer pixels per logical pixel
	PixelRatio float32

	vao      uint32
	white    uint32
	programs map[*sketch.ShaderMaterial]*program
	buffers  map[*sketch.Geometry]*vertexBuffer
	failed   map[*sketch.ShaderMaterial]error
}

// NewRenderer sets up a renderer in the current context. gl must be loaded for it.
func NewRenderer(gl gll.GL430) *Renderer {
	r := &Renderer{
		GL430:      gl,
		PixelRatio: 1,
		programs:   make(map[*sketch.ShaderMaterial]*program),
		buffers:    make(map[*sketch.Geometry]*vertexBuffer),
		failed:     make(map[*sketch.ShaderMaterial]error),
	}
	r.GenVertexArrays(1, &r.vao)
	r.BindVertexArray(r.vao)
	r.setupAttrib(0, 3, offsetPosition)
	r.setupAttrib(1, 3, offsetNormal)
	r.setupAttrib(2, 2, offsetUV)

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	r.white = UploadTexture(r.GL430, white)
	return r
}

// All attributes read from vertex buffer binding 0
func (r *Renderer) setupAttrib(index uint32, size int32, offset uint32) {
	r.EnableVertexAttribArray(index)
	r.VertexAttribFormat(index, size, gll.FLOAT, false, offset)
	r.VertexAttribBinding(index, 0)
}

func (r *Renderer) Destroy() {
	for _, p := range r.programs {
		r.DeleteProgram(p.id)
		if p.tex != 0 {
			r.DeleteTextures(1, &p.tex)
		}
	}
	for _, vb := range r.buffers {
		r.DeleteBuffers(1, &vb.buf)
	}
	r.DeleteTextures(1, &r.white)
	r.DeleteVertexArrays(1, &r.vao)
	r.programs = nil
	r.buffers = nil
}

func (r *Renderer) SetSize(w, h int) {
	fw := int32(float32(w) * r.PixelRatio)
	fh := int32(float32(h) * r.PixelRatio)
	r.Viewport(0, 0, fw, fh)
}

// Compile builds the program for m ahead of the first draw. Failures are logged
// once and returned on every later call.
func (r *Renderer) Compile(m *sketch.ShaderMaterial) error {
	if _, ok := r.programs[m]; ok {
		return nil
	}
	if err, ok := r.failed[m]; ok {
		return err
	}
	id, err := BuildShader(r.GL430, vertPrefix+m.VertexShader, fragPrefix+m.FragmentShader)
	if err != nil {
		log.Println("Shader error:", err)
		r.failed[m] = err
		return err
	}

	loc := func(name string) int32 {
		return r.GetUniformLocation(id, gll.Str(name+"\000"))
	}
	r.programs[m] = &program{
		id:          id,
		uModel:      loc("modelMatrix"),
		uModelView:  loc("modelViewMatrix"),
		uProjection: loc("projectionMatrix"),
		uView:       loc("viewMatrix"),
		uCameraPos:  loc("cameraPosition"),
		uTime:       loc("time"),
		uResolution: loc("resolution"),
		uUVRate1:    loc("uvRate1"),
		uTexture1:   loc("texture1"),
	}
	return nil
}

func (r *Renderer) vertices(g *sketch.Geometry) *vertexBuffer {
	if vb, ok := r.buffers[g]; ok {
		return vb
	}

	tris := g.Triangles()
	data := make([]gpuVertex, len(tris))
	for i, v := range tris {
		data[i] = gpuVertex{
			Position: v.Position,
			Normal:   v.Normal,
			UV:       v.UV,
		}
	}

	vb := &vertexBuffer{count: int32(len(data))}
	r.GenBuffers(1, &vb.buf)
	r.BindBuffer(gll.ARRAY_BUFFER, vb.buf)
	if len(data) > 0 {
		r.BufferData(gll.ARRAY_BUFFER, len(data)*int(unsafe.Sizeof(data[0])), gll.Ptr(data), gll.STATIC_DRAW)
	}
	r.BindBuffer(gll.ARRAY_BUFFER, 0)
	r.buffers[g] = vb
	return vb
}

func (r *Renderer) texture(p *program, img image.Image, version int) uint32 {
	if img == nil {
		return r.white
	}
	if p.tex == 0 || textureStale(p.texImg, p.texVersion, img, version) {
		if p.tex != 0 {
			r.DeleteTextures(1, &p.tex)
		}
		p.tex = UploadTexture(r.GL430, img)
		p.texImg = img
		p.texVersion = version
	}
	return p.tex
}

// textureStale reports whether img differs from the uploaded one. Images whose
// dynamic type cannot be compared are only re-uploaded when version changes.
func textureStale(uploaded image.Image, uploadedVersion int, img image.Image, version int) bool {
	if version != uploadedVersion {
		return true
	}
	ut, it := reflect.TypeOf(uploaded), reflect.TypeOf(img)
	if ut != it {
		return true
	}
	if it == nil || !it.Comparable() {
		return false
	}
	return uploaded != img
}

func (r *Renderer) Render(scene *sketch.Scene, camera *sketch.OrthographicCamera) {
	c := scene.ClearColor
	r.ClearColor(c[0], c[1], c[2], c[3])
	r.Clear(gll.COLOR_BUFFER_BIT | gll.DEPTH_BUFFER_BIT)

	view := camera.ViewMatrix()
	proj := camera.ProjectionMatrix()
	for _, mesh := range scene.Meshes {
		r.draw(mesh, view, proj, camera.Position)
	}
}

func (r *Renderer) draw(mesh *sketch.Mesh, view, proj mgl32.Mat4, eye mgl32.Vec3) {
	m := mesh.Material
	// Meshes whose material failed to build are skipped
	if r.Compile(m) != nil {
		return
	}
	p := r.programs[m]
	vb := r.vertices(mesh.Geometry)

	switch m.Side {
	case sketch.DoubleSide:
		r.Disable(gll.CULL_FACE)
	case sketch.BackSide:
		r.Enable(gll.CULL_FACE)
		r.CullFace(gll.FRONT)
	default:
		r.Enable(gll.CULL_FACE)
		r.CullFace(gll.BACK)
	}

	r.UseProgram(p.id)
	modelView := view.Mul4(mesh.Model)
	r.UniformMatrix4fv(p.uModel, 1, false, &mesh.Model[0])
	r.UniformMatrix4fv(p.uModelView, 1, false, &modelView[0])
	r.UniformMatrix4fv(p.uProjection, 1, false, &proj[0])
	r.UniformMatrix4fv(p.uView, 1, false, &view[0])
	r.Uniform3f(p.uCameraPos, eye[0], eye[1], eye[2])

	u := &m.Uniforms
	r.Uniform1f(p.uTime, u.Time)
	r.Uniform4f(p.uResolution, u.Resolution[0], u.Resolution[1], u.Resolution[2], u.Resolution[3])
	r.Uniform2f(p.uUVRate1, u.UVRate1[0], u.UVRate1[1])

	r.ActiveTexture(gll.TEXTURE0)
	r.BindTexture(gll.TEXTURE_2D, r.texture(p, u.Texture1, u.TextureVersion))
	r.Uniform1i(p.uTexture1, 0)

	r.BindVertexBuffer(0, vb.buf, 0, int32(unsafe.Sizeof(gpuVertex{})))
	r.DrawArrays(gll.TRIANGLES, 0, vb.count)
}
