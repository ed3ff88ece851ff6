package life

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the state of a single grid coordinate.
type Cell uint8

const (
	// Dead marks an empty coordinate.
	Dead Cell = 0
	// Alive marks an occupied coordinate.
	Alive Cell = 1
)

var (
	// ErrOutOfBounds reports a coordinate or placement outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidRange reports inverted or negative bounds.
	ErrInvalidRange = errors.New("invalid range")
)

// Grid is a finite rectangular field of cells stored row-major, so the
// cell at (x, y) lives at index y*width+x. The zero value is an empty
// 0x0 grid ready to use.
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid allocates a width x height grid with every cell Dead.
func NewGrid(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", width, height, ErrInvalidRange)
	}
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}, nil
}

// NewSquare allocates a size x size grid with every cell Dead.
func NewSquare(size int) (*Grid, error) {
	return NewGrid(size, size)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// TotalCells returns width*height.
func (g *Grid) TotalCells() int { return g.width * g.height }

// AliveCells counts the cells currently Alive.
func (g *Grid) AliveCells() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// DeadCells counts the cells currently Dead.
func (g *Grid) DeadCells() int { return g.TotalCells() - g.AliveCells() }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.inBounds(x, y) {
		return Dead, fmt.Errorf("get (%d,%d) on %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	return g.cells[y*g.width+x], nil
}

// Set overwrites the cell at (x, y) in place.
func (g *Grid) Set(x, y int, value Cell) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("set (%d,%d) on %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	g.cells[y*g.width+x] = value
	return nil
}

// At returns a handle to the cell at (x, y) that stays valid until the
// grid is resized. Writes through the handle are visible to later reads.
func (g *Grid) At(x, y int) (*Cell, error) {
	if !g.inBounds(x, y) {
		return nil, fmt.Errorf("at (%d,%d) on %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	return &g.cells[y*g.width+x], nil
}

// Resize reallocates the grid to width x height. Values in the
// overlapping region are kept, everything else starts Dead.
func (g *Grid) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("resize to %dx%d: %w", width, height, ErrInvalidRange)
	}
	cells := make([]Cell, width*height)
	overlapW := min(width, g.width)
	overlapH := min(height, g.height)
	for y := 0; y < overlapH; y++ {
		copy(cells[y*width:y*width+overlapW], g.cells[y*g.width:y*g.width+overlapW])
	}
	g.width, g.height, g.cells = width, height, cells
	return nil
}

// ResizeSquare resizes the grid to size x size.
func (g *Grid) ResizeSquare(size int) error {
	return g.Resize(size, size)
}

// Crop extracts the sub-grid spanning [x0, x1) by [y0, y1) into a new
// grid with independent storage.
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if x0 < 0 || y0 < 0 || x1 > g.width || y1 > g.height {
		return nil, fmt.Errorf("crop (%d,%d)-(%d,%d) on %dx%d grid: %w", x0, y0, x1, y1, g.width, g.height, ErrInvalidRange)
	}
	if x0 > x1 || y0 > y1 {
		return nil, fmt.Errorf("crop (%d,%d)-(%d,%d): inverted window: %w", x0, y0, x1, y1, ErrInvalidRange)
	}
	out := &Grid{width: x1 - x0, height: y1 - y0}
	out.cells = make([]Cell, out.width*out.height)
	for y := 0; y < out.height; y++ {
		src := (y0+y)*g.width + x0
		copy(out.cells[y*out.width:(y+1)*out.width], g.cells[src:src+out.width])
	}
	return out, nil
}

// Merge overlays other onto the grid with its top-left corner at
// (x0, y0). By default every cell in the target region is overwritten.
// With aliveOnly set, cells can only be promoted Dead -> Alive; a target
// cell that is already Alive is never killed by the merge.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if x0 < 0 || y0 < 0 || x0+other.width > g.width || y0+other.height > g.height {
		return fmt.Errorf("merge %dx%d at (%d,%d) into %dx%d grid: %w", other.width, other.height, x0, y0, g.width, g.height, ErrOutOfBounds)
	}
	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			v := other.cells[y*other.width+x]
			idx := (y0+y)*g.width + (x0 + x)
			if aliveOnly && g.cells[idx] == Alive {
				continue
			}
			g.cells[idx] = v
		}
	}
	return nil
}

// Rotate returns a new grid turned by rotation quarter-turns clockwise.
// Any integer is accepted, including negative ones; the work done is the
// same for every rotation because it is reduced modulo 4 up front.
func (g *Grid) Rotate(rotation int) *Grid {
	turns := ((rotation % 4) + 4) % 4
	if turns == 0 {
		return g.Clone()
	}
	out := &Grid{}
	if turns == 2 {
		out.width, out.height = g.width, g.height
	} else {
		out.width, out.height = g.height, g.width
	}
	out.cells = make([]Cell, out.width*out.height)
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			var v Cell
			switch turns {
			case 1:
				v = g.cells[(g.height-1-x)*g.width+y]
			case 2:
				v = g.cells[(g.height-1-y)*g.width+(g.width-1-x)]
			case 3:
				v = g.cells[x*g.width+(g.width-1-y)]
			}
			out.cells[y*out.width+x] = v
		}
	}
	return out
}

// Clone returns a deep copy with independent storage.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// String renders the grid as a bordered ASCII rectangle with Alive cells
// drawn as '#' and Dead cells as spaces.
func (g *Grid) String() string {
	var b strings.Builder
	border := "+" + strings.Repeat("-", g.width) + "+\n"
	b.WriteString(border)
	for y := 0; y < g.height; y++ {
		b.WriteByte('|')
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}
