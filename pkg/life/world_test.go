package life

import "testing"

func mustWorld(t *testing.T, w, h int) *World {
	t.Helper()
	world, err := NewWorld(w, h)
	if err != nil {
		t.Fatalf("NewWorld(%d, %d): %v", w, h, err)
	}
	return world
}

func aliveSet(t *testing.T, g *Grid) map[[2]int]bool {
	t.Helper()
	out := map[[2]int]bool{}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c, _ := g.Get(x, y); c == Alive {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, g *Grid, want map[[2]int]bool) {
	t.Helper()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, _ := g.Get(x, y)
			alive := c == Alive
			if alive != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v\n%s", x, y, alive, want[[2]int{x, y}], g)
			}
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := mustGrid(t, 3, 3)
	_ = g.Set(1, 1, Alive)
	w := NewWorldFromGrid(g)
	w.Step(false)
	if w.AliveCells() != 0 {
		t.Fatalf("isolated cell should die, alive = %d", w.AliveCells())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		_ = g.Set(p[0], p[1], Alive)
	}
	w := NewWorldFromGrid(g)

	w.Step(false)
	expectAlive(t, w.State(), map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	w.Step(false)
	expectAlive(t, w.State(), map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlockStillLife(t *testing.T) {
	g := mustGrid(t, 4, 4)
	block := map[[2]int]bool{{1, 1}: true, {2, 1}: true, {1, 2}: true, {2, 2}: true}
	for p := range block {
		_ = g.Set(p[0], p[1], Alive)
	}
	w := NewWorldFromGrid(g)
	w.Advance(3, false)
	expectAlive(t, w.State(), block)
}

func TestToroidalWrapping(t *testing.T) {
	// A full-width row on a 3x3 torus: every live cell keeps exactly two
	// neighbours while every dead cell sees all three through the wrap,
	// so the next generation is completely alive.
	row := mustGrid(t, 3, 3)
	for x := 0; x < 3; x++ {
		_ = row.Set(x, 0, Alive)
	}
	torus := NewWorldFromGrid(row)
	bounded := NewWorldFromGrid(row)

	torus.Step(true)
	if torus.AliveCells() != 9 {
		t.Fatalf("toroidal step alive = %d, want 9\n%s", torus.AliveCells(), torus.State())
	}

	// The same start without wrapping collapses to a vertical pair.
	bounded.Step(false)
	expectAlive(t, bounded.State(), map[[2]int]bool{
		{1, 0}: true,
		{1, 1}: true,
	})
}

func TestAdvance(t *testing.T) {
	blinker := mustGrid(t, 5, 5)
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		_ = blinker.Set(p[0], p[1], Alive)
	}
	manual := NewWorldFromGrid(blinker)
	batch := NewWorldFromGrid(blinker)

	manual.Step(false)
	manual.Step(false)
	manual.Step(false)
	batch.Advance(3, false)

	expectAlive(t, batch.State(), aliveSet(t, manual.State()))
	if batch.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", batch.Generation())
	}

	batch.Advance(0, false)
	batch.Advance(-2, false)
	if batch.Generation() != 3 {
		t.Fatalf("zero and negative advances must be no-ops, generation = %d", batch.Generation())
	}
}

func TestNewWorldFromGrid(t *testing.T) {
	g := mustGrid(t, 4, 4)
	_ = g.Set(1, 1, Alive)
	w := NewWorldFromGrid(g)

	if w.AliveCells() != 1 || w.Width() != 4 || w.Height() != 4 {
		t.Fatalf("world from grid: alive=%d size=%dx%d", w.AliveCells(), w.Width(), w.Height())
	}

	// The world owns independent copies of the initial state.
	_ = g.Set(2, 2, Alive)
	if w.AliveCells() != 1 {
		t.Fatal("world must not alias the caller's grid")
	}
}

func TestWorldQueriesDelegate(t *testing.T) {
	w := mustWorld(t, 4, 3)
	if w.TotalCells() != 12 || w.DeadCells() != 12 || w.AliveCells() != 0 {
		t.Fatalf("fresh world counts: total=%d alive=%d dead=%d", w.TotalCells(), w.AliveCells(), w.DeadCells())
	}
	if w.State() != w.State() {
		t.Fatal("State must expose the current buffer without copying")
	}
}

func TestWorldResize(t *testing.T) {
	g := mustGrid(t, 4, 4)
	block := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	for _, p := range block {
		_ = g.Set(p[0], p[1], Alive)
	}
	w := NewWorldFromGrid(g)

	if err := w.Resize(6, 6); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if w.Width() != 6 || w.Height() != 6 {
		t.Fatalf("size %dx%d, want 6x6", w.Width(), w.Height())
	}
	if w.AliveCells() != 4 {
		t.Fatalf("block lost by resize, alive = %d", w.AliveCells())
	}

	// Both buffers stay in sync, so stepping still works.
	w.Step(false)
	if w.AliveCells() != 4 {
		t.Fatalf("block must survive a step after resize, alive = %d", w.AliveCells())
	}

	if err := w.ResizeSquare(-1); err == nil {
		t.Fatal("negative resize must fail")
	}
}
