package ttesting

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// SolidImage returns a w x h image filled with c.
func SolidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// PNGBytes encodes a solid w x h image as PNG.
func PNGBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	b := &bytes.Buffer{}
	if err := png.Encode(b, SolidImage(w, h, c)); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return b.Bytes()
}

// WritePNG writes a solid w x h PNG named name into dir and returns its path.
func WritePNG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()
	return WriteFile(t, dir, name, PNGBytes(t, w, h, c))
}

// WriteJPEG writes a solid w x h JPEG named name into dir and returns its path.
func WriteJPEG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()
	b := &bytes.Buffer{}
	if err := jpeg.Encode(b, SolidImage(w, h, c), nil); err != nil {
		t.Fatalf("encoding jpeg: %v", err)
	}
	return WriteFile(t, dir, name, b.Bytes())
}

// WriteFile writes data to dir/name.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
	return p
}
