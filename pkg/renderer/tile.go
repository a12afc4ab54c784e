package renderer

import "image"

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Column int             // Tile coordinates, not pixel coordinates
	Row    int
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle, column, row int) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Column: column,
		Row:    row,
	}
}

// NewTileGrid creates a grid of tiles covering the entire image. Edge tiles
// are clipped to the image, so tiles never overlap.
func NewTileGrid(width, height, tileSize int) []*Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	if tileSize <= 0 {
		tileSize = max(width, height)
	}

	var tiles []*Tile
	tileID := 0

	// Ceiling division
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), tileX, tileY))
			tileID++
		}
	}

	return tiles
}
