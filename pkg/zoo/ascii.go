package zoo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lifezoo/pkg/life"
)

// ReadASCII parses a grid from the ascii .gol format: a header line of
// "<width> <height>" followed by exactly height rows of exactly width
// characters, each row terminated by a newline. Alive cells are '#',
// dead cells are ' '; anything else fails with ErrMalformed.
func ReadASCII(r io.Reader) (*life.Grid, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", ErrMalformed)
	}
	line := strings.TrimSuffix(header, "\n")
	wField, hField, ok := strings.Cut(line, " ")
	if !ok {
		return nil, fmt.Errorf("header %q: %w", line, ErrMalformed)
	}
	width, errW := strconv.Atoi(wField)
	height, errH := strconv.Atoi(hField)
	// Re-serializing keeps the header bit-exact: no tabs, repeated
	// spaces, signs, or leading zeros.
	if errW != nil || errH != nil || width < 0 || height < 0 ||
		fmt.Sprintf("%d %d", width, height) != line {
		return nil, fmt.Errorf("header %q: bad dimensions: %w", line, ErrMalformed)
	}
	if int64(width)*int64(height) > MaxCells {
		return nil, fmt.Errorf("header dimensions %dx%d exceed %d cells: %w", width, height, MaxCells, ErrMalformed)
	}

	g, err := life.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	row := make([]byte, width+1)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("row %d truncated: %w", y, ErrMalformed)
		}
		if row[width] != '\n' {
			return nil, fmt.Errorf("row %d: missing newline after %d cells: %w", y, width, ErrMalformed)
		}
		for x, ch := range row[:width] {
			switch ch {
			case '#':
				_ = g.Set(x, y, life.Alive)
			case ' ':
				// already Dead
			default:
				return nil, fmt.Errorf("row %d: cell character %q: %w", y, ch, ErrMalformed)
			}
		}
	}
	return g, nil
}

// WriteASCII serializes a grid in the ascii .gol format.
func WriteASCII(w io.Writer, g *life.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell, _ := g.Get(x, y)
			if cell == life.Alive {
				bw.WriteByte('#')
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrIO)
	}
	return nil
}

// LoadASCII reads a .gol file from path.
func LoadASCII(path string) (*life.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrIO)
	}
	defer f.Close()
	return ReadASCII(f)
}

// SaveASCII writes a grid to path as a .gol file.
func SaveASCII(path string, g *life.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrIO)
	}
	if err := WriteASCII(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrIO)
	}
	return nil
}
