package sketch

import _ "embed"

// GLSL bodies for the plane material. The renderer supplies the #version line
// along with the position, normal and uv inputs and the camera matrices.
var (
	//go:embed shader/vertex.glsl
	VertexShader string

	//go:embed shader/fragment.glsl
	FragmentShader string
)
