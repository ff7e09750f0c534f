package px

import (
	"errors"
	"fmt"
)

// Common errors for image construction and evaluation.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("px: invalid dimensions")

	// ErrNoSources is returned when an evaluator is called without any
	// source image.
	ErrNoSources = errors.New("px: no source images")

	// ErrShapeMismatch is returned by kernel arithmetic when the operands
	// do not share the same rows and columns.
	ErrShapeMismatch = errors.New("px: kernel shape mismatch")

	// ErrNotPointLocal is returned by in-place evaluation when the filter
	// is not verified to read only the point being written.
	ErrNotPointLocal = errors.New("px: filter is not point-local")
)

// Image is a dense row-major pixel buffer. Channel values are stored as
// float64, normalized to [0, 1] at the interop boundary; the engine itself
// never clamps, so intermediate results may exceed that range.
//
// Thread safety: an Image is safe for concurrent reads. Writes require
// external coordination; the parallel evaluator partitions writes so that
// no two workers touch the same pixel.
type Image struct {
	width  int
	height int
	model  Model
	data   []float64
}

// NewImage creates a zero-filled image with the given dimensions and model.
func NewImage(width, height int, model Model) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Image{
		width:  width,
		height: height,
		model:  model,
		data:   make([]float64, width*height*model.Channels),
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Model returns the image's color model.
func (img *Image) Model() Model { return img.model }

// Channels returns the number of channels per pixel.
func (img *Image) Channels() int { return img.model.Channels }

// Bounds returns the full extent of the image as a Region at the origin.
func (img *Image) Bounds() Region {
	return Rect(0, 0, img.width, img.height)
}

// NewLike creates a new zero-filled image with the same shape and model.
func (img *Image) NewLike() *Image {
	out, _ := NewImage(img.width, img.height, img.model)
	return out
}

// NewLikeWith creates a new zero-filled image with the same dimensions but
// a different color model.
func (img *Image) NewLikeWith(model Model) *Image {
	out, _ := NewImage(img.width, img.height, model)
	return out
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	out := img.NewLike()
	copy(out.data, img.data)
	return out
}

func (img *Image) index(x, y int) int {
	return (y*img.width + x) * img.model.Channels
}

// At returns the value of channel c at (x, y). Coordinates must be in
// bounds; out-of-range access panics like a slice access would.
func (img *Image) At(x, y, c int) float64 {
	return img.data[img.index(x, y)+c]
}

// Set stores v into channel c at (x, y).
func (img *Image) Set(x, y, c int, v float64) {
	img.data[img.index(x, y)+c] = v
}

// Slice returns the mutable channel slice of the pixel at (x, y).
// The slice aliases the image's storage.
func (img *Image) Slice(x, y int) []float64 {
	i := img.index(x, y)
	return img.data[i : i+img.model.Channels : i+img.model.Channels]
}

// PixelAt returns an independent copy of the pixel at pt.
func (img *Image) PixelAt(pt Point) Pixel {
	p := NewPixel(img.model)
	copy(p.Data, img.Slice(pt.X, pt.Y))
	return p
}

// SetPixel writes the pixel's channels at pt.
func (img *Image) SetPixel(pt Point, p Pixel) {
	copy(img.Slice(pt.X, pt.Y), p.Data)
}

// Fill sets every pixel to the given channel values. Missing trailing
// channels are left at zero.
func (img *Image) Fill(values ...float64) {
	ch := img.model.Channels
	n := min(len(values), ch)
	for i := 0; i < len(img.data); i += ch {
		copy(img.data[i:i+n], values[:n])
	}
}

// ForEach visits every pixel in row-major order, passing the coordinate and
// the mutable channel slice at that coordinate.
func (img *Image) ForEach(fn func(pt Point, pix []float64)) {
	img.ForEachRegion(img.Bounds(), fn)
}

// ForEachRegion visits every pixel of the region in row-major order. The
// region is clipped to the image bounds; points outside contribute nothing.
func (img *Image) ForEachRegion(roi Region, fn func(pt Point, pix []float64)) {
	roi = roi.Intersect(img.Bounds())
	for y := roi.Min.Y; y < roi.Min.Y+roi.Height; y++ {
		for x := roi.Min.X; x < roi.Min.X+roi.Width; x++ {
			fn(Pt(x, y), img.Slice(x, y))
		}
	}
}
