package renderer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileGridExactCover(t *testing.T) {
	// Ragged case: neither dimension divides evenly
	const width, height, tileSize = 100, 75, 32
	tiles := NewTileGrid(width, height, tileSize)

	// 4x3 grid of tiles
	require.Len(t, tiles, 12)

	// Every pixel is covered exactly once
	covered := make([]int, width*height)
	for _, tile := range tiles {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				covered[y*width+x]++
			}
		}
	}
	for i, c := range covered {
		require.Equal(t, 1, c, "pixel %d covered %d times", i, c)
	}
}

func TestTileGridClipsBoundaryTiles(t *testing.T) {
	tiles := NewTileGrid(100, 75, 32)

	for _, tile := range tiles {
		assert.LessOrEqual(t, tile.Bounds.Max.X, 100)
		assert.LessOrEqual(t, tile.Bounds.Max.Y, 75)
		assert.False(t, tile.Bounds.Empty())
	}

	// The bottom-right tile is the clipped remainder
	last := tiles[len(tiles)-1]
	assert.Equal(t, image.Rect(96, 64, 100, 75), last.Bounds)
}

func TestTileGridSingleTile(t *testing.T) {
	tiles := NewTileGrid(32, 32, 64)
	require.Len(t, tiles, 1)
	assert.Equal(t, image.Rect(0, 0, 32, 32), tiles[0].Bounds)
}

func TestTileIDsAreSequential(t *testing.T) {
	tiles := NewTileGrid(128, 128, 32)
	for i, tile := range tiles {
		assert.Equal(t, i, tile.ID)
	}
}
