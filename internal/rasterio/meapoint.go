package rasterio

import (
	"fmt"
	"os"
	"strings"

	"quadloco/internal/quad/geom"
)

// ReadMeaPoint reads a .meapoint sidecar: a single expected center in
// (row, col) order as two decimal numbers separated by whitespace.
func ReadMeaPoint(path string) (geom.Spot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geom.Spot{}, fmt.Errorf("rasterio: reading %s: %w", path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return geom.Spot{}, fmt.Errorf("rasterio: %s does not contain two numbers", path)
	}

	var row, col float64
	if _, err := fmt.Sscanf(fields[0], "%g", &row); err != nil {
		return geom.Spot{}, fmt.Errorf("rasterio: %s: invalid row: %w", path, err)
	}
	if _, err := fmt.Sscanf(fields[1], "%g", &col); err != nil {
		return geom.Spot{}, fmt.Errorf("rasterio: %s: invalid col: %w", path, err)
	}
	return geom.NewSpot(row, col), nil
}

// WriteMeaPoint writes center to path in the .meapoint format.
func WriteMeaPoint(path string, center geom.Spot) error {
	content := fmt.Sprintf("%g %g\n", center.Row, center.Col)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("rasterio: writing %s: %w", path, err)
	}
	return nil
}
