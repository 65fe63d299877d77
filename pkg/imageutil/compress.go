package imageutil

import (
	"bytes"
	"fmt"
	"image"
	"io"

	_ "image/gif" // register gif
	"image/jpeg"
	_ "image/png" // register png

	"golang.org/x/image/draw"
)

// Compress decodes an uploaded image, scales it to fit within maxWidth x
// maxHeight and re-encodes it as JPEG at the given quality. The result is
// what gets shipped to object storage, never the raw upload.
func Compress(r io.Reader, maxWidth, maxHeight, quality int) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	w, h := fit(src.Bounds().Dx(), src.Bounds().Dy(), maxWidth, maxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// fit shrinks (w, h) to fit inside (maxW, maxH) keeping aspect ratio.
// Images already small enough pass through unchanged.
func fit(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	rw := float64(maxW) / float64(w)
	rh := float64(maxH) / float64(h)
	r := rw
	if rh < rw {
		r = rh
	}
	nw := int(float64(w) * r)
	nh := int(float64(h) * r)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
