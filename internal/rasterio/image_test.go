package rasterio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"quadloco/internal/rasterio"
)

func TestReadImageGrayDecodesPNG(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(0, 0, color.Gray{Y: 10})  // row 0, col 0
	src.SetGray(1, 0, color.Gray{Y: 50})  // row 0, col 1
	src.SetGray(0, 1, color.Gray{Y: 200}) // row 1, col 0
	src.SetGray(1, 1, color.Gray{Y: 250}) // row 1, col 1

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	got, err := rasterio.ReadImageGray(&buf)
	require.NoError(t, err)

	require.Equal(t, byte(10), got.At(0, 0))
	require.Equal(t, byte(50), got.At(0, 1))
	require.Equal(t, byte(200), got.At(1, 0))
	require.Equal(t, byte(250), got.At(1, 1))
}

func TestReadImageGrayRejectsGarbage(t *testing.T) {
	_, err := rasterio.ReadImageGray(bytes.NewBufferString("not an image"))
	require.Error(t, err)
}
