package life

// World runs Conway's Game of Life over two equally sized grids, reading
// each generation from current and writing the next into next. The
// buffers are swapped in O(1) after every step.
type World struct {
	current    *Grid
	next       *Grid
	generation int
}

// NewWorld creates a world of width x height with every cell Dead.
func NewWorld(width, height int) (*World, error) {
	cur, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	nxt, _ := NewGrid(width, height)
	return &World{current: cur, next: nxt}, nil
}

// NewWorldSquare creates a size x size world with every cell Dead.
func NewWorldSquare(size int) (*World, error) {
	return NewWorld(size, size)
}

// NewWorldFromGrid creates a world whose buffers both start as
// independent copies of initial.
func NewWorldFromGrid(initial *Grid) *World {
	return &World{current: initial.Clone(), next: initial.Clone()}
}

// Width returns the number of columns.
func (w *World) Width() int { return w.current.Width() }

// Height returns the number of rows.
func (w *World) Height() int { return w.current.Height() }

// TotalCells returns width*height.
func (w *World) TotalCells() int { return w.current.TotalCells() }

// AliveCells counts the cells alive in the current generation.
func (w *World) AliveCells() int { return w.current.AliveCells() }

// DeadCells counts the cells dead in the current generation.
func (w *World) DeadCells() int { return w.current.DeadCells() }

// Generation returns how many steps have been taken.
func (w *World) Generation() int { return w.generation }

// State exposes the current generation without copying its storage.
// Callers must treat the returned grid as read-only.
func (w *World) State() *Grid { return w.current }

// Resize reallocates the current grid per Grid.Resize; the next buffer
// holds no meaningful state between steps so it is simply replaced.
func (w *World) Resize(width, height int) error {
	if err := w.current.Resize(width, height); err != nil {
		return err
	}
	w.next, _ = NewGrid(width, height)
	return nil
}

// ResizeSquare resizes the world to size x size.
func (w *World) ResizeSquare(size int) error {
	return w.Resize(size, size)
}

// countNeighbours counts alive cells in the 3x3 neighbourhood around
// (x, y), excluding the centre. Without toroidal wrapping, coordinates
// outside the grid contribute nothing; with it, they wrap to the
// opposite edge.
func (w *World) countNeighbours(x, y int, toroidal bool) int {
	g := w.current
	width, height := g.width, g.height
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if toroidal {
				nx = (nx%width + width) % width
				ny = (ny%height + height) % height
			} else if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			if g.cells[ny*width+nx] == Alive {
				n++
			}
		}
	}
	return n
}

// Step advances the world by one generation:
//   - an Alive cell with fewer than two alive neighbours dies,
//   - an Alive cell with two or three alive neighbours survives,
//   - an Alive cell with more than three alive neighbours dies,
//   - a Dead cell with exactly three alive neighbours becomes Alive.
func (w *World) Step(toroidal bool) {
	width, height := w.current.width, w.current.height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			neighbours := w.countNeighbours(x, y, toroidal)
			alive := w.current.cells[y*width+x] == Alive
			v := Dead
			if (alive && (neighbours == 2 || neighbours == 3)) || (!alive && neighbours == 3) {
				v = Alive
			}
			w.next.cells[y*width+x] = v
		}
	}
	w.current, w.next = w.next, w.current
	w.generation++
}

// Advance applies Step the given number of times. Negative counts are
// treated as zero.
func (w *World) Advance(steps int, toroidal bool) {
	for i := 0; i < steps; i++ {
		w.Step(toroidal)
	}
}
