package zoo

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"lifezoo/pkg/life"
)

// ReadBinary parses a grid from the binary .bgol format: little-endian
// int32 width and height, then ceil(width*height/8) bytes carrying one
// bit per cell in row-major order, least significant bit first. Padding
// bits past width*height in the final byte are ignored.
func ReadBinary(r io.Reader) (*life.Grid, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("reading header: %v: %w", err, ErrMalformed)
	}
	width := int(int32(binary.LittleEndian.Uint32(header[0:4])))
	height := int(int32(binary.LittleEndian.Uint32(header[4:8])))
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("header dimensions %dx%d: %w", width, height, ErrMalformed)
	}
	if int64(width)*int64(height) > MaxCells {
		return nil, fmt.Errorf("header dimensions %dx%d exceed %d cells: %w", width, height, MaxCells, ErrMalformed)
	}

	g, err := life.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	total := width * height
	payload := make([]byte, (total+7)/8)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("body truncated (want %d bytes): %w", len(payload), ErrMalformed)
	}
	for i := 0; i < total; i++ {
		if (payload[i/8]>>(i%8))&1 == 1 {
			_ = g.Set(i%width, i/width, life.Alive)
		}
	}
	return g, nil
}

// WriteBinary serializes a grid in the binary .bgol format. Padding bits
// in the final byte are written as zero.
func WriteBinary(w io.Writer, g *life.Grid) error {
	width, height := g.Width(), g.Height()
	total := width * height
	buf := make([]byte, 8+(total+7)/8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(int32(width)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(int32(height)))
	payload := buf[8:]
	for i := 0; i < total; i++ {
		if cell, _ := g.Get(i%width, i/width); cell == life.Alive {
			payload[i/8] |= 1 << (i % 8)
		}
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%v: %w", err, ErrIO)
	}
	return nil
}

// LoadBinary reads a .bgol file from path.
func LoadBinary(path string) (*life.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrIO)
	}
	defer f.Close()
	return ReadBinary(f)
}

// SaveBinary writes a grid to path as a .bgol file.
func SaveBinary(path string, g *life.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrIO)
	}
	if err := WriteBinary(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrIO)
	}
	return nil
}
