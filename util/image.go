package util

import (
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Size of the default texture, matching the aspect ratio the sketch corrects for
const (
	PlaceholderWidth  = 1280
	PlaceholderHeight = 853
)

func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// GenPlaceholder draws a diagonal gradient with a grid every 64 pixels
func GenPlaceholder(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%64 == 0 || y%64 == 0 {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
				continue
			}
			u := x * 255 / w
			v := y * 255 / h
			img.SetRGBA(x, y, color.RGBA{uint8(u), uint8(v), uint8(255 - (u+v)/2), 255})
		}
	}
	return img
}
