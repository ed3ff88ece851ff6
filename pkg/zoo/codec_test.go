package zoo

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"lifezoo/pkg/life"
)

func gridsEqual(t *testing.T, got, want *life.Grid) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	if got.String() != want.String() {
		t.Fatalf("grid mismatch:\n%swant\n%s", got, want)
	}
}

func TestWriteASCIIExactBytes(t *testing.T) {
	g, _ := life.NewGrid(3, 2)
	_ = g.Set(0, 0, life.Alive)
	_ = g.Set(2, 1, life.Alive)

	var buf bytes.Buffer
	if err := WriteASCII(&buf, g); err != nil {
		t.Fatalf("WriteASCII: %v", err)
	}
	want := "3 2\n#  \n  #\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	g := LightweightSpaceship()
	var buf bytes.Buffer
	if err := WriteASCII(&buf, g); err != nil {
		t.Fatalf("WriteASCII: %v", err)
	}
	back, err := ReadASCII(&buf)
	if err != nil {
		t.Fatalf("ReadASCII: %v", err)
	}
	gridsEqual(t, back, g)
}

func TestReadASCIIEmptyGrid(t *testing.T) {
	g, err := ReadASCII(strings.NewReader("0 0\n"))
	if err != nil {
		t.Fatalf("ReadASCII: %v", err)
	}
	if g.TotalCells() != 0 {
		t.Fatalf("total = %d, want 0", g.TotalCells())
	}
}

func TestReadASCIIMalformed(t *testing.T) {
	cases := map[string]string{
		"no header newline":  "2 2",
		"one header field":   "2\n  \n  \n",
		"non-numeric width":  "a 2\n  \n  \n",
		"negative height":    "2 -1\n",
		"bad cell character": "2 2\n #\nx \n",
		"short row":          "3 2\n# \n###\n",
		"missing newline":    "2 2\n# \n #",
		"truncated body":     "2 3\n# \n",
		"empty file":         "",
		"tab separator":      "2\t2\n  \n  \n",
		"double space":       "2  2\n  \n  \n",
		"trailing space":     "2 2 \n  \n  \n",
		"plus sign":          "+2 2\n  \n  \n",
		"leading zero":       "02 2\n  \n  \n",
		"huge dimensions":    "2000000000 2000000000\n",
	}
	for name, in := range cases {
		if _, err := ReadASCII(strings.NewReader(in)); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: err = %v, want ErrMalformed", name, err)
		}
	}
}

func TestWriteBinaryExactBytes(t *testing.T) {
	// 6x6 board with cells (2,1), (3,2), (1,3), (2,3), (3,3) alive:
	// bits 8, 15, 19, 20 and 21 of the 36-bit body.
	g, _ := life.NewGrid(6, 6)
	for _, p := range [][2]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		_ = g.Set(p[0], p[1], life.Alive)
	}

	var buf bytes.Buffer
	if err := WriteBinary(&buf, g); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	want := []byte{
		6, 0, 0, 0,
		6, 0, 0, 0,
		0x00, 0x81, 0x38, 0x00, 0x00,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}

	back, err := ReadBinary(&buf)
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	gridsEqual(t, back, g)
}

func TestReadBinaryIgnoresPadding(t *testing.T) {
	// 3x3 grid, 9 bits in 2 bytes: the top 7 bits of the second byte are
	// padding and must not leak into the grid.
	in := []byte{
		3, 0, 0, 0,
		3, 0, 0, 0,
		0b00000001, 0b11111111,
	}
	g, err := ReadBinary(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if g.AliveCells() != 2 {
		t.Fatalf("alive = %d, want 2 (cells (0,0) and (2,2))\n%s", g.AliveCells(), g)
	}
	for _, p := range [][2]int{{0, 0}, {2, 2}} {
		if c, _ := g.Get(p[0], p[1]); c != life.Alive {
			t.Fatalf("cell (%d,%d) should be alive", p[0], p[1])
		}
	}
}

func TestReadBinaryMalformed(t *testing.T) {
	cases := map[string][]byte{
		"empty":            {},
		"short header":     {6, 0, 0},
		"negative width":   {0xff, 0xff, 0xff, 0xff, 1, 0, 0, 0},
		"negative height":  {1, 0, 0, 0, 0xff, 0xff, 0xff, 0xff},
		"truncated body":   {6, 0, 0, 0, 6, 0, 0, 0, 0x00, 0x81},
		"header only body": {2, 0, 0, 0, 2, 0, 0, 0},
		// A crafted header must never reach the allocator.
		"huge dimensions": {0xff, 0xff, 0xff, 0x7f, 0xff, 0xff, 0xff, 0x7f},
	}
	for name, in := range cases {
		if _, err := ReadBinary(bytes.NewReader(in)); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: err = %v, want ErrMalformed", name, err)
		}
	}
}

func TestFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	g, _ := life.NewGrid(6, 6)
	for _, p := range [][2]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		_ = g.Set(p[0], p[1], life.Alive)
	}

	golPath := filepath.Join(dir, "board.gol")
	if err := SaveASCII(golPath, g); err != nil {
		t.Fatalf("SaveASCII: %v", err)
	}
	fromASCII, err := LoadASCII(golPath)
	if err != nil {
		t.Fatalf("LoadASCII: %v", err)
	}
	gridsEqual(t, fromASCII, g)

	bgolPath := filepath.Join(dir, "board.bgol")
	if err := SaveBinary(bgolPath, g); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
	fromBinary, err := LoadBinary(bgolPath)
	if err != nil {
		t.Fatalf("LoadBinary: %v", err)
	}
	gridsEqual(t, fromBinary, g)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope.gol")
	if _, err := LoadASCII(missing); !errors.Is(err, ErrIO) {
		t.Fatalf("LoadASCII missing file err = %v, want ErrIO", err)
	}
	if _, err := LoadBinary(missing); !errors.Is(err, ErrIO) {
		t.Fatalf("LoadBinary missing file err = %v, want ErrIO", err)
	}

	if err := SaveASCII(filepath.Join(dir, "no", "such", "dir.gol"), Glider()); !errors.Is(err, ErrIO) {
		t.Fatalf("SaveASCII bad dir err = %v, want ErrIO", err)
	}
	if err := SaveBinary(filepath.Join(dir, "no", "such", "dir.bgol"), Glider()); !errors.Is(err, ErrIO) {
		t.Fatalf("SaveBinary bad dir err = %v, want ErrIO", err)
	}
}
