package imagestore

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestToWebP(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 200, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("small image was resized: width %d", img.Bounds().Dx())
	}
}

func TestToWebPDownscalesWideImages(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 2560, 1440))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if got := img.Bounds().Dx(); got != maxWidth {
		t.Errorf("width = %d, want %d", got, maxWidth)
	}
	if got := img.Bounds().Dy(); got != 1440*maxWidth/2560 {
		t.Errorf("height = %d, aspect ratio not kept", got)
	}
}

func TestToWebPRejectsGarbage(t *testing.T) {
	if _, err := ToWebP([]byte("not an image")); err == nil {
		t.Fatal("expected error for non-image data")
	}
}
