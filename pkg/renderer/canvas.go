package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Canvas is a linear radiance buffer. Gamma is applied only when it is
// converted to an 8-bit image.
type Canvas struct {
	width, height int
	pixels        []core.Vec3
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// Write stores the linear color of pixel (x, y); row 0 is the top
func (c *Canvas) Write(x, y int, color core.Vec3) {
	c.pixels[y*c.width+x] = color
}

// At returns the linear color of pixel (x, y)
func (c *Canvas) At(x, y int) core.Vec3 {
	return c.pixels[y*c.width+x]
}

// Image converts the canvas to display space using a gamma of 2
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, toRGBA(c.At(x, y)))
		}
	}
	return img
}

// SavePNG encodes the display image to path
func (c *Canvas) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, c.Image()); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return file.Close()
}

func toRGBA(linear core.Vec3) color.RGBA {
	display := linear.Sanitize().Clamp(0, 1).GammaCorrect(2.0)
	return color.RGBA{
		R: toByte(display.X),
		G: toByte(display.Y),
		B: toByte(display.Z),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	return uint8(256 * core.Clamp(v, 0, 0.999))
}
