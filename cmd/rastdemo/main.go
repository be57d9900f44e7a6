// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command rastdemo renders the rotating-spiral reference geometry with
// the raster package and writes the result as a WebP image. Pass
// -iterations to repeat the render and report timing instead of
// writing an image (only a single-iteration run produces output).
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	nativewebp "github.com/HugoSmits86/nativewebp"
	"github.com/oov/downscale"

	"github.com/gogpu/rast/raster"
)

const (
	canvasWidth  = 800
	canvasHeight = 600
	vertexCount  = 64
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	iterations := flag.Int("iterations", 1, "number of render passes to time; only a single-iteration run writes an output image")
	supersample := flag.Int("supersample", 1, "render at this integer multiple of the output size and box-downscale, for antialiasing")
	output := flag.String("o", "rastdemo.webp", "output WebP file path")
	flag.Parse()

	if *iterations < 1 {
		return fmt.Errorf("-iterations must be at least 1")
	}
	if *supersample < 1 {
		return fmt.Errorf("-supersample must be at least 1")
	}

	vb := raster.SpiralStripVertices(vertexCount)
	for i := range vb {
		vb[i] *= float32(*supersample)
	}

	width := canvasWidth * *supersample
	height := canvasHeight * *supersample

	fmt.Printf("1. Rendering %d vertices (%d triangles) at %dx%d... ", vertexCount, vertexCount-2, width, height)
	start := time.Now()

	var img *raster.Image
	var err error
	for i := 0; i < *iterations; i++ {
		img, err = raster.NewImage(width, height)
		if err != nil {
			return fmt.Errorf("NewImage: %w", err)
		}
		raster.Render(img, raster.TriangleStrip, vb, vertexCount)
	}
	elapsed := time.Since(start)
	fmt.Println("OK")

	if *iterations > 1 {
		fmt.Printf("2. %d iterations in %v (%v/iteration)\n", *iterations, elapsed, elapsed / time.Duration(*iterations))
		return nil
	}

	fmt.Print("2. Encoding output... ")
	if err := writeWebP(*output, img, *supersample); err != nil {
		return fmt.Errorf("writeWebP: %w", err)
	}
	fmt.Println("OK")
	fmt.Printf("wrote %s\n", *output)
	return nil
}

// writeWebP converts img to image.RGBA, box-downscales it by factor
// (if greater than 1) to the nominal canvas size, and encodes it as
// WebP.
func writeWebP(path string, img *raster.Image, factor int) error {
	src := &image.RGBA{
		Pix:    img.Pix,
		Stride: img.Stride,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}

	final := src
	if factor > 1 {
		dest := image.NewRGBA(image.Rect(0, 0, img.Width/factor, img.Height/factor))
		if err := downscale.RGBA(context.Background(), dest, src); err != nil {
			return fmt.Errorf("downscale.RGBA: %w", err)
		}
		final = dest
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := nativewebp.Encode(w, final, nil); err != nil {
		return fmt.Errorf("nativewebp.Encode: %w", err)
	}
	return w.Flush()
}
