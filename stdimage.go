package px

import (
	"image"
	"image/color"
)

// FromImage converts a standard library image into an RGBA-model Image with
// channel values normalized to [0, 1]. Premultiplied sources are
// un-premultiplied through color.NRGBA64Model.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	out, err := NewImage(b.Dx(), b.Dy(), RGBA)
	if err != nil {
		return nil, err
	}
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			c := color.NRGBA64Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			pix := out.Slice(x, y)
			pix[0] = float64(c.R) / 0xffff
			pix[1] = float64(c.G) / 0xffff
			pix[2] = float64(c.B) / 0xffff
			pix[3] = float64(c.A) / 0xffff
		}
	}
	return out, nil
}

// ToNRGBA converts the image to a standard library *image.NRGBA. Pixels are
// converted to the RGBA model first; this is where channel values are
// clamped to the representable [0, 255] range.
func (img *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			p := img.PixelAt(Pt(x, y)).Convert(RGBA)
			dst.SetNRGBA(x, y, color.NRGBA{
				R: quantize(p.Data[0]),
				G: quantize(p.Data[1]),
				B: quantize(p.Data[2]),
				A: quantize(p.Data[3]),
			})
		}
	}
	return dst
}

// quantize clamps a normalized channel value and scales it to 8 bits.
func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
