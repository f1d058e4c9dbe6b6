package renderer

import (
	"fmt"
	"image"
	"strings"
)

// TileFailure records a tile whose worker panicked
type TileFailure struct {
	TileID int
	Bounds image.Rectangle
	Err    error
}

// TileError reports the tiles that failed during a render. It is
// returned after all other tiles have completed; pixels of failed
// tiles keep whatever samples were accumulated before the failure.
type TileError struct {
	Failures []TileFailure
}

func (e *TileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d tile(s) failed:", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, " tile %d %v: %v;", f.TileID, f.Bounds, f.Err)
	}
	return strings.TrimSuffix(b.String(), ";")
}
