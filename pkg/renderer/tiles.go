package renderer

import "image"

// Tile is a rectangular, non-overlapping sub-region of the image,
// rendered to completion by one worker
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid partitions a width×height image into tiles of at most
// tileSize×tileSize pixels. Boundary tiles are clipped, not padded, so
// the tiles exactly cover the image with no gaps and no overlaps.
func NewTileGrid(width, height, tileSize int) []Tile {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	tiles := make([]Tile, 0, tilesX*tilesY)
	id := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileSize
			y0 := ty * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, Tile{ID: id, Bounds: image.Rect(x0, y0, x1, y1)})
			id++
		}
	}
	return tiles
}
