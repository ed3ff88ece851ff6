// Package zoo builds canonical Game of Life creatures and loads and
// saves grids in the ascii .gol and binary .bgol file formats.
package zoo

import (
	"errors"

	"lifezoo/pkg/life"
)

var (
	// ErrIO reports a file that cannot be opened for reading or writing.
	ErrIO = errors.New("file i/o failure")
	// ErrMalformed reports a file whose header or body does not match
	// the declared format.
	ErrMalformed = errors.New("malformed file")
)

// MaxCells bounds the board size a codec header may declare. A header
// past it is rejected with ErrMalformed before anything is allocated,
// so a crafted eight-byte file cannot demand a multi-terabyte grid.
const MaxCells = 1 << 28

func stamp(width, height int, coords ...[2]int) *life.Grid {
	g, _ := life.NewGrid(width, height)
	for _, c := range coords {
		_ = g.Set(c[0], c[1], life.Alive)
	}
	return g
}

// Glider returns the 3x3 glider in its bounding box:
//
//	+---+
//	| # |
//	|  #|
//	|###|
//	+---+
func Glider() *life.Grid {
	return stamp(3, 3, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
}

// RPentomino returns the 3x3 r-pentomino in its bounding box:
//
//	+---+
//	| ##|
//	|## |
//	| # |
//	+---+
func RPentomino() *life.Grid {
	return stamp(3, 3, [2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{1, 2})
}

// LightweightSpaceship returns the 5x4 lightweight spaceship in its
// bounding box:
//
//	+-----+
//	| #  #|
//	|#    |
//	|#   #|
//	|#### |
//	+-----+
func LightweightSpaceship() *life.Grid {
	return stamp(5, 4,
		[2]int{1, 0}, [2]int{4, 0},
		[2]int{0, 1},
		[2]int{0, 2}, [2]int{4, 2},
		[2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3})
}
