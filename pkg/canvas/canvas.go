package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Canvas is a rectangular grid of unclamped colors. Pixel (0, 0) is the
// top-left corner. Goroutines may write disjoint pixels concurrently.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// New creates a black canvas
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// InBounds reports whether (x, y) addresses a pixel on the canvas
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// WritePixel sets the color of pixel (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	if !c.InBounds(x, y) {
		return
	}
	c.pixels[y*c.Width+x] = color
}

// PixelAt returns the color of pixel (x, y), black outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.InBounds(x, y) {
		return core.Black
	}
	return c.pixels[y*c.Width+x]
}

// Fill sets every pixel to color
func (c *Canvas) Fill(color core.Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// ToByte clamps a channel to [0, 1] and scales it to [0, 255] with rounding
func ToByte(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(v * 255))
}

// ToRGBA converts a color to an opaque 8-bit RGBA value
func ToRGBA(c core.Color) color.RGBA {
	return color.RGBA{R: ToByte(c.R), G: ToByte(c.G), B: ToByte(c.B), A: 255}
}

// ToImage converts the canvas to an opaque 8-bit image
func (c *Canvas) ToImage() *image.RGBA {
	return c.SubImage(image.Rect(0, 0, c.Width, c.Height))
}

// SubImage converts the pixels within bounds to an image whose origin is bounds.Min
func (c *Canvas) SubImage(bounds image.Rectangle) *image.RGBA {
	bounds = bounds.Intersect(image.Rect(0, 0, c.Width, c.Height))
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, ToRGBA(c.pixels[y*c.Width+x]))
		}
	}
	return img
}
