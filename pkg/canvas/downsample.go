package canvas

import (
	"fmt"
	"image"

	"github.com/df07/go-phong-raytracer/pkg/core"
	xdraw "golang.org/x/image/draw"
)

// Downsample shrinks a supersampled canvas by factor in each dimension,
// filtering with Catmull-Rom so that each output pixel blends the samples
// that cover it. The result is quantized to 8 bits.
func Downsample(c *Canvas, factor int) (*image.RGBA, error) {
	if factor < 1 {
		return nil, fmt.Errorf("invalid supersample factor %d", factor)
	}
	src := c.ToImage()
	if factor == 1 {
		return src, nil
	}

	width := c.Width / factor
	height := c.Height / factor
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("canvas %dx%d too small for supersample factor %d", c.Width, c.Height, factor)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// FromImage converts an 8-bit image back into a canvas
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := New(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c.WritePixel(x-bounds.Min.X, y-bounds.Min.Y, core.NewColor(
				float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff))
		}
	}
	return c
}
