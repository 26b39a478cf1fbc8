// Command sketchcap renders the sketch without a window and writes each frame as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/vktec/sketch"
	"github.com/vktec/sketch/gpu"
	"github.com/vktec/sketch/util"
)

func init() {
	runtime.LockOSThread()
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func capture(off *gpu.Offscreen, tex image.Image, frames int, outDir, pattern string) error {
	sk, err := sketch.New(sketch.Options{
		Container: off,
		Renderer:  off.Renderer(),
		Scheduler: off,
		Texture:   tex,
	})
	if err != nil {
		return err
	}
	if err := off.Renderer().Compile(sk.Material()); err != nil {
		return err
	}

	// New has already drawn the first frame
	for i := 0; i < frames; i++ {
		path := filepath.Join(outDir, fmt.Sprintf(pattern, i))
		if err := writePNG(path, off.Snapshot()); err != nil {
			return err
		}
		log.Printf("wrote %s (time %.2f)", path, sk.Time())
		if off.Step() == 0 {
			break
		}
	}
	return nil
}

func main() {
	width := flag.Int("width", 1280, "Frame width")
	height := flag.Int("height", 853, "Frame height")
	frames := flag.Int("frames", 60, "Number of frames to write")
	outDir := flag.String("out", ".", "Output `directory`")
	pattern := flag.String("pattern", "frame%04d.png", "File name `format`, given the frame index")
	imagePath := flag.String("image", "", "Texture `file` (png, jpeg, gif, bmp or webp)")
	flag.Parse()

	if *frames < 0 {
		fmt.Fprintln(os.Stderr, "Frame count must not be negative")
		os.Exit(2)
	}

	var tex image.Image
	if *imagePath == "" {
		tex = util.GenPlaceholder(util.PlaceholderWidth, util.PlaceholderHeight)
	} else {
		var err error
		tex, err = util.LoadImage(*imagePath)
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	off, err := gpu.NewOffscreen(*width, *height)
	if err != nil {
		log.Fatal(err)
	}
	err = capture(off, tex, *frames, *outDir, *pattern)
	off.Destroy()
	if err != nil {
		log.Fatal(err)
	}
}
