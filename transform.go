package px

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resize resamples the image to w×h using the given scaler, or
// draw.CatmullRom when scaler is nil. Resampling runs at the standard-image
// boundary, so the result is quantized to 8-bit sRGB and carries the RGBA
// model regardless of the source model.
func Resize(img *Image, w, h int, scaler xdraw.Scaler) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if scaler == nil {
		scaler = xdraw.CatmullRom
	}
	src := img.ToNRGBA()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// FlipH returns the image mirrored horizontally.
func FlipH(img *Image) *Image {
	out := img.NewLike()
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			copy(out.Slice(x, y), img.Slice(img.width-1-x, y))
		}
	}
	return out
}

// FlipV returns the image mirrored vertically.
func FlipV(img *Image) *Image {
	out := img.NewLike()
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			copy(out.Slice(x, y), img.Slice(x, img.height-1-y))
		}
	}
	return out
}

// Rotate90 returns the image rotated 90° clockwise. The result has the
// source's dimensions swapped.
func Rotate90(img *Image) *Image {
	out, _ := NewImage(img.height, img.width, img.model)
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			copy(out.Slice(x, y), img.Slice(y, img.height-1-x))
		}
	}
	return out
}

// Rotate180 returns the image rotated 180°.
func Rotate180(img *Image) *Image {
	out := img.NewLike()
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			copy(out.Slice(x, y), img.Slice(img.width-1-x, img.height-1-y))
		}
	}
	return out
}

// Rotate270 returns the image rotated 270° clockwise (90° counterclockwise).
func Rotate270(img *Image) *Image {
	out, _ := NewImage(img.height, img.width, img.model)
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			copy(out.Slice(x, y), img.Slice(img.width-1-y, x))
		}
	}
	return out
}
