package rasterio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/tiff"

	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
)

// ReadImageGray decodes any registered image format (PNG, JPEG, TIFF)
// from r and converts it to a grayscale byte grid, for ingesting
// sample rasters that did not originate as PGM.
func ReadImageGray(r io.Reader) (*grid.Grid[byte], error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("rasterio: decoding image: %w", err)
	}

	bounds := img.Bounds()
	size := geom.NewSizeHW(bounds.Dy(), bounds.Dx())
	out := grid.New[byte](size)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			out.Set(y-bounds.Min.Y, x-bounds.Min.X, gray.Y)
		}
	}

	return out, nil
}

// ReadImageGrayFile opens path and decodes it via ReadImageGray.
func ReadImageGrayFile(path string) (*grid.Grid[byte], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rasterio: opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadImageGray(f)
}
