// Package percolation defines sentinel errors and rendering symbols
// for the percolation model.
package percolation

import "github.com/katalvlaran/percolate/unionfind"

// ErrInvalidArgument is returned for a non-positive grid size or a site
// outside [1, n]×[1, n]. It is the same value as unionfind.ErrInvalidArgument.
var ErrInvalidArgument = unionfind.ErrInvalidArgument

// Glyphs used by Model.String.
const (
	GlyphClosed = '#'
	GlyphOpen   = '.'
	GlyphFull   = 'o'
)

// neighborOffsets are the (drow, dcol) steps to the N, E, S, W neighbours.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
