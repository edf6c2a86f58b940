package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ImageData holds a decoded image in linear color
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, row 0 at the top
}

// LoadImage decodes a PNG or JPEG file into linear color. Stored values are
// treated as gamma 2 encoded, the inverse of the square root the canvas
// applies on output, so a texture rendered unlit round-trips to its source.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	return linearize(img), nil
}

// linearize converts every pixel of img. Color is un-premultiplied, so
// translucent pixels keep their hue and fully transparent ones are black.
func linearize(img image.Image) *ImageData {
	bounds := img.Bounds()
	data := &ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: make([]core.Vec3, 0, bounds.Dx()*bounds.Dy()),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
			data.Pixels = append(data.Pixels, core.NewVec3(decodeGamma(c.R), decodeGamma(c.G), decodeGamma(c.B)))
		}
	}
	return data
}

func decodeGamma(v uint16) float64 {
	f := float64(v) / 0xffff
	return f * f
}

// LoadImageTexture loads an image file as a linear-color texture
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}
