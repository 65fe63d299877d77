package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestCompressDownscalesLargeImages(t *testing.T) {
	out, err := Compress(pngImage(t, 3200, 1600), 1600, 1600, 80)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1600, decoded.Bounds().Dx())
	assert.Equal(t, 800, decoded.Bounds().Dy())
}

func TestCompressKeepsSmallImages(t *testing.T) {
	out, err := Compress(pngImage(t, 200, 100), 1600, 1600, 80)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, decoded.Bounds().Dx())
	assert.Equal(t, 100, decoded.Bounds().Dy())
}

func TestCompressRejectsGarbage(t *testing.T) {
	_, err := Compress(bytes.NewReader([]byte("not an image")), 1600, 1600, 80)
	assert.Error(t, err)
}

func TestFitAspectRatio(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{3200, 1600, 1600, 1600, 1600, 800},
		{1600, 3200, 1600, 1600, 800, 1600},
		{100, 100, 1600, 1600, 100, 100},
		{1600, 1600, 1600, 1600, 1600, 1600},
	}
	for _, tc := range cases {
		w, h := fit(tc.w, tc.h, tc.maxW, tc.maxH)
		assert.Equal(t, tc.wantW, w)
		assert.Equal(t, tc.wantH, h)
	}
}
