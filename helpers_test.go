package px

import (
	"math"
	"testing"
)

// mustImage creates an image or fails the test.
func mustImage(t *testing.T, w, h int, m Model) *Image {
	t.Helper()
	img, err := NewImage(w, h, m)
	if err != nil {
		t.Fatalf("NewImage(%d, %d, %v) = %v", w, h, m, err)
	}
	return img
}

// rampImage creates a w×h image whose channel values vary with position so
// that ordering bugs show up.
func rampImage(t *testing.T, w, h int, m Model) *Image {
	t.Helper()
	img := mustImage(t, w, h, m)
	img.ForEach(func(pt Point, pix []float64) {
		for c := range pix {
			pix[c] = float64(pt.Y*w+pt.X+c) / float64(w*h+m.Channels)
		}
	})
	return img
}

// almostEqual reports whether two values are within tol of each other.
func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// imagesEqual verifies two images are bit-identical and reports the first
// differing location otherwise.
func imagesEqual(t *testing.T, got, want *Image) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("dimensions: got %dx%d, want %dx%d",
			got.Width(), got.Height(), want.Width(), want.Height())
	}
	want.ForEach(func(pt Point, pix []float64) {
		for c, w := range pix {
			if g := got.At(pt.X, pt.Y, c); g != w {
				t.Fatalf("pixel %v channel %d: got %v, want %v", pt, c, g, w)
			}
		}
	})
}
