package px

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Model describes a color model: how many channels a pixel carries and what
// they mean. Models are compared by value; use the package-level descriptors
// (Gray, RGB, RGBA, HSV, XYZ) rather than constructing your own.
type Model struct {
	// Name identifies the model ("rgb", "hsv", ...).
	Name string

	// Channels is the number of components per pixel.
	Channels int

	// HasAlpha reports whether the last channel is an alpha component.
	HasAlpha bool
}

// Built-in color models. All channel values are normalized to [0, 1];
// the HSV hue channel stores hue/360.
var (
	// Gray is a single luminance channel.
	Gray = Model{Name: "gray", Channels: 1}

	// RGB is three channels: red, green, blue.
	RGB = Model{Name: "rgb", Channels: 3}

	// RGBA is RGB plus an alpha channel.
	RGBA = Model{Name: "rgba", Channels: 4, HasAlpha: true}

	// HSV is hue, saturation, value.
	HSV = Model{Name: "hsv", Channels: 3}

	// XYZ is the CIE 1931 XYZ color space.
	XYZ = Model{Name: "xyz", Channels: 3}
)

// String returns the model name.
func (m Model) String() string { return m.Name }

// Luma weights used for grayscale conversion.
const (
	lumaR = 0.21
	lumaG = 0.72
	lumaB = 0.07
)

// Convert converts a pixel to another color model. The conversion is pure and
// lossy where the models do not overlap: alpha is dropped when the target has
// none and added as fully opaque when only the target has it, and gray targets
// collapse color to weighted luma.
func Convert(p Pixel, to Model) Pixel {
	if p.Model == to {
		return p.Clone()
	}

	alpha := 1.0
	if p.Model.HasAlpha {
		alpha = p.Data[p.Model.Channels-1]
	}

	c := toColorful(p)

	out := NewPixel(to)
	switch to.Name {
	case Gray.Name:
		out.Data[0] = lumaR*c.R + lumaG*c.G + lumaB*c.B
	case RGB.Name, RGBA.Name:
		out.Data[0], out.Data[1], out.Data[2] = c.R, c.G, c.B
	case HSV.Name:
		h, s, v := c.Hsv()
		out.Data[0], out.Data[1], out.Data[2] = h/360, s, v
	case XYZ.Name:
		x, y, z := c.Xyz()
		out.Data[0], out.Data[1], out.Data[2] = x, y, z
	}
	if to.HasAlpha {
		out.Data[to.Channels-1] = alpha
	}
	return out
}

// toColorful lifts a pixel into a colorful.Color in RGB space,
// ignoring any alpha channel.
func toColorful(p Pixel) colorful.Color {
	switch p.Model.Name {
	case Gray.Name:
		v := p.Data[0]
		return colorful.Color{R: v, G: v, B: v}
	case HSV.Name:
		return colorful.Hsv(p.Data[0]*360, p.Data[1], p.Data[2])
	case XYZ.Name:
		return colorful.Xyz(p.Data[0], p.Data[1], p.Data[2])
	default:
		return colorful.Color{R: p.Data[0], G: p.Data[1], B: p.Data[2]}
	}
}
