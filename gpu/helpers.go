package gpu

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/vktec/gll"
)

func GetShaderError(thing uint32, ivFunc func(thing, pname uint32, params *int32), logFunc func(thing uint32, bufSize int32, length *int32, infoLog *uint8)) error {
	var bufSize int32
	ivFunc(thing, gll.INFO_LOG_LENGTH, &bufSize)

	if bufSize > 0 {
		errBuf := make([]byte, bufSize)
		var length int32
		logFunc(thing, bufSize, &length, &errBuf[0])

		errMsg := string(errBuf[:length])
		errMsg = strings.TrimRight(errMsg, "\r\n")
		return errors.New(errMsg)
	} else {
		return errors.New("No error message")
	}
}

func CompileShader(gl gll.GL430, shad uint32, source string) error {
	csrc := gll.Str(source + "\000")
	clen := int32(len(source))
	gl.ShaderSource(shad, 1, &csrc, &clen)
	gl.CompileShader(shad)

	var result int32
	gl.GetShaderiv(shad, gll.COMPILE_STATUS, &result)
	if result == 0 {
		defer gl.DeleteShader(shad)
		return GetShaderError(shad, gl.GetShaderiv, gl.GetShaderInfoLog)
	}
	return nil
}

func BuildShader(gl gll.GL430, vert, frag string) (prog uint32, err error) {
	vshad := gl.CreateShader(gll.VERTEX_SHADER)
	if err := CompileShader(gl, vshad, vert); err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vshad)
	fshad := gl.CreateShader(gll.FRAGMENT_SHADER)
	if err := CompileShader(gl, fshad, frag); err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fshad)

	prog = gl.CreateProgram()
	gl.AttachShader(prog, vshad)
	gl.AttachShader(prog, fshad)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vshad)
	gl.DetachShader(prog, fshad)

	var result int32
	gl.GetProgramiv(prog, gll.LINK_STATUS, &result)
	if result == 0 {
		defer gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link: %w", GetShaderError(prog, gl.GetProgramiv, gl.GetProgramInfoLog))
	}
	return prog, nil
}

// UploadTexture copies img into a new 2D texture, bottom row first as GL expects
func UploadTexture(gl gll.GL430, img image.Image) uint32 {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	flipRows(rgba)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gll.TEXTURE_2D, tex)
	gl.TexParameteri(gll.TEXTURE_2D, gll.TEXTURE_MIN_FILTER, int32(gll.LINEAR))
	gl.TexParameteri(gll.TEXTURE_2D, gll.TEXTURE_MAG_FILTER, int32(gll.LINEAR))
	gl.TexParameteri(gll.TEXTURE_2D, gll.TEXTURE_WRAP_S, int32(gll.CLAMP_TO_EDGE))
	gl.TexParameteri(gll.TEXTURE_2D, gll.TEXTURE_WRAP_T, int32(gll.CLAMP_TO_EDGE))
	gl.TexImage2D(gll.TEXTURE_2D, 0, int32(gll.RGBA8), int32(bounds.Dx()), int32(bounds.Dy()), 0, gll.RGBA, gll.UNSIGNED_BYTE, gll.Ptr(rgba.Pix))
	gl.BindTexture(gll.TEXTURE_2D, 0)
	return tex
}

func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}
