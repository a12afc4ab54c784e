package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Scene is anything that can shade a camera ray. Defined here to avoid
// circular imports with the scene package.
type Scene interface {
	ColorAt(ray core.Ray) core.Color
}

// TileRenderer shades the pixels of individual tiles into a shared canvas
type TileRenderer struct {
	scene  Scene
	camera *Camera
	canvas *canvas.Canvas
}

// NewTileRenderer creates a tile renderer writing into target, which must
// match the camera's size
func NewTileRenderer(scene Scene, camera *Camera, target *canvas.Canvas) *TileRenderer {
	return &TileRenderer{
		scene:  scene,
		camera: camera,
		canvas: target,
	}
}

// RenderPixel returns the color seen through pixel (x, y)
func (tr *TileRenderer) RenderPixel(x, y int) core.Color {
	return tr.scene.ColorAt(tr.camera.RayForPixel(x, y))
}

// RenderTileBounds renders every pixel within bounds and returns the number
// of pixels written. Distinct tiles touch disjoint canvas cells, so several
// tiles may be rendered concurrently.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) int {
	bounds = bounds.Intersect(image.Rect(0, 0, tr.canvas.Width, tr.canvas.Height))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			tr.canvas.WritePixel(x, y, tr.RenderPixel(x, y))
		}
	}

	return bounds.Dx() * bounds.Dy()
}
