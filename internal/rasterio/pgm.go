// Package rasterio implements the raster and sidecar file formats the
// detector reads and writes: binary PGM (P5) images, the contractual
// "stretch" byte mapping used when writing a float grid, and the plain
// text .meapoint sidecar carrying an expected center.
package rasterio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"

	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
)

// ReadPGM reads a binary P5 PGM image from r and returns a byte grid
// with high = height, wide = width.
func ReadPGM(r io.Reader) (*grid.Grid[byte], error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("rasterio: reading PGM magic: %w", err)
	}
	if magic != "P5" {
		return nil, fmt.Errorf("rasterio: not a P5 PGM (got magic %q)", magic)
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("rasterio: reading PGM width: %w", err)
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("rasterio: reading PGM height: %w", err)
	}
	maxVal, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("rasterio: reading PGM maxval: %w", err)
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("rasterio: unsupported PGM maxval %d (expected 255)", maxVal)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterio: invalid PGM dimensions %dx%d", width, height)
	}

	// A single whitespace byte separates the header from the payload;
	// readIntToken already consumed it via ReadByte below.
	payload := make([]byte, width*height)
	if _, err := io.ReadFull(br, payload); err != nil {
		return nil, fmt.Errorf("rasterio: truncated PGM pixel payload: %w", err)
	}

	out := grid.New[byte](geom.NewSizeHW(height, width))
	copy(out.Raw(), payload)
	return out, nil
}

// ReadPGMFile opens path and reads it as a PGM image.
func ReadPGMFile(path string) (*grid.Grid[byte], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rasterio: opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadPGM(f)
}

// WritePGM writes g to w as a binary P5 PGM image.
func WritePGM(w io.Writer, g *grid.Grid[byte]) error {
	size := g.Size()
	header := fmt.Sprintf("P5\n%d %d\n255\n", size.Wide, size.High)
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("rasterio: writing PGM header: %w", err)
	}
	if _, err := w.Write(g.Raw()); err != nil {
		return fmt.Errorf("rasterio: writing PGM payload: %w", err)
	}
	return nil
}

// WritePGMFile writes g to path as a binary P5 PGM image.
func WritePGMFile(path string, g *grid.Grid[byte]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rasterio: creating %s: %w", path, err)
	}
	defer f.Close()
	return WritePGM(f, g)
}

// Stretch maps a float grid linearly from its observed [min, max) range
// onto the byte range [2, 254]: values equal to min map to 2, values
// strictly below min map to 1 (under-exposed), values at or above max
// map to 255 (over-exposed), and any NaN maps to 0 (null).
func Stretch(src *grid.Grid[float64]) *grid.Grid[byte] {
	min, max := observedRange(src)
	out := grid.New[byte](src.Size())

	span := max - min
	for i, v := range src.Raw() {
		switch {
		case math.IsNaN(v):
			out.Raw()[i] = 0
		case v < min:
			out.Raw()[i] = 1
		case v >= max:
			out.Raw()[i] = 255
		default:
			frac := 0.0
			if span > 0 {
				frac = (v - min) / span
			}
			out.Raw()[i] = byte(2 + frac*252)
		}
	}
	return out
}

func observedRange(src *grid.Grid[float64]) (float64, float64) {
	finite := make([]float64, 0, len(src.Raw()))
	for _, v := range src.Raw() {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 1
	}

	min, max := floats.Min(finite), floats.Max(finite)
	if min == max {
		max = min + 1
	}
	return min, max
}

func readToken(br *bufio.Reader) (string, error) {
	if err := skipWhitespaceAndComments(br); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for {
		b, err := br.ReadByte()
		if err != nil {
			if buf.Len() > 0 {
				return buf.String(), nil
			}
			return "", err
		}
		if isSpace(b) {
			break
		}
		buf.WriteByte(b)
	}
	return buf.String(), nil
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	var v int
	if _, err := fmt.Sscanf(tok, "%d", &v); err != nil {
		return 0, fmt.Errorf("expected integer, got %q: %w", tok, err)
	}
	return v, nil
}

func skipWhitespaceAndComments(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b == '#' {
			for {
				b, err := br.ReadByte()
				if err != nil {
					return err
				}
				if b == '\n' {
					break
				}
			}
			continue
		}
		if isSpace(b) {
			continue
		}
		return br.UnreadByte()
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
