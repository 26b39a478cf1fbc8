package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/vktec/sketch/util"
)

func main() {
	width := flag.Int("width", 800, "Initial window width")
	height := flag.Int("height", 600, "Initial window height")
	vsync := flag.Bool("vsync", true, "Enable vsync")
	imagePath := flag.String("image", "", "Texture `file` (png, jpeg, gif, bmp or webp)")
	paused := flag.Bool("paused", false, "Start with the animation stopped")

	flag.CommandLine.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-width w] [-height h] [-image file] [-paused]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nKeys: space play/stop, r reset view, esc quit")
	}
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fmt.Fprintln(os.Stderr, "Window size must be positive")
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

	app, err := NewApp(*width, *height, tex, *vsync)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Destroy()

	if *paused {
		app.sk.Stop()
	}
	app.Main()
}
