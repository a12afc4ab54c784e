package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Camera generates rays for rendering. The canvas sits one unit in front of
// the eye, along -z in camera space.
type Camera struct {
	HSize       int     // Horizontal size of the canvas in pixels
	VSize       int     // Vertical size of the canvas in pixels
	FieldOfView float64 // Angle in radians describing how much the camera sees

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera at the origin looking along -z
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// WithTransform returns a copy of the camera using the given world-to-camera transform
func (c *Camera) WithTransform(transform core.Matrix) (*Camera, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("camera transform: %w", err)
	}
	camera := *c
	camera.transform = transform
	camera.inverse = inverse
	return &camera, nil
}

// WithView returns a copy of the camera placed at from, looking at to, with up roughly upwards
func (c *Camera) WithView(from, to, up core.Tuple) (*Camera, error) {
	view, err := core.ViewTransform(from, to, up)
	if err != nil {
		return nil, fmt.Errorf("camera view: %w", err)
	}
	return c.WithTransform(view)
}

// Resized returns a camera with the same field of view and transform
// rendering a canvas of hsize x vsize pixels
func (c *Camera) Resized(hsize, vsize int) *Camera {
	camera := NewCamera(hsize, vsize, c.FieldOfView)
	camera.transform = c.transform
	camera.inverse = c.inverse
	return camera
}

// Transform returns the world-to-camera transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// PixelSize returns the world-space size of one pixel on the canvas
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// HalfWidth returns half the canvas width in world units
func (c *Camera) HalfWidth() float64 {
	return c.halfWidth
}

// HalfHeight returns half the canvas height in world units
func (c *Camera) HalfHeight() float64 {
	return c.halfHeight
}

// RayForPixel returns the world-space ray through the center of pixel (x, y),
// where (0, 0) is the top-left corner
func (c *Camera) RayForPixel(x, y int) core.Ray {
	// Offset from the edge of the canvas to the pixel's center
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	// Untransformed coordinates of the pixel in world space.
	// The camera looks toward -z, so +x is to the left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.Ray{Origin: origin, Direction: direction}
}
