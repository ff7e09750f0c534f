package px

import "math"

// DefaultGamma is used by GammaLog and GammaLin when their exponent is left
// at the zero value.
const DefaultGamma = 2.2

// Invert inverts every channel: 1 - x.
type Invert struct{}

func (Invert) ReadsPointOnly() bool { return true }

func (Invert) ComputeAt(pt Point, in *Input, dest []float64) {
	in.PixelAt(pt, -1).Map(func(x float64) float64 { return 1 - x }).CopyTo(dest)
}

// Blend averages the pixels of the first two source images elementwise.
type Blend struct{}

func (Blend) ComputeAt(pt Point, in *Input, dest []float64) {
	a := in.PixelAt(pt, 0)
	b := in.PixelAt(pt, 1)
	a.Add(b).Scale(0.5).CopyTo(dest)
}

// GammaLog applies x^(1/γ) per channel, converting linear values to gamma
// encoding. A zero Gamma means DefaultGamma.
type GammaLog struct {
	Gamma float64
}

func (f GammaLog) ReadsPointOnly() bool { return true }

func (f GammaLog) ComputeAt(pt Point, in *Input, dest []float64) {
	g := f.Gamma
	if g <= 0 {
		g = DefaultGamma
	}
	in.PixelAt(pt, -1).Map(func(x float64) float64 { return math.Pow(x, 1/g) }).CopyTo(dest)
}

// GammaLin applies x^γ per channel, converting gamma-encoded values to
// linear. A zero Gamma means DefaultGamma.
type GammaLin struct {
	Gamma float64
}

func (f GammaLin) ReadsPointOnly() bool { return true }

func (f GammaLin) ComputeAt(pt Point, in *Input, dest []float64) {
	g := f.Gamma
	if g <= 0 {
		g = DefaultGamma
	}
	in.PixelAt(pt, -1).Map(func(x float64) float64 { return math.Pow(x, g) }).CopyTo(dest)
}

// Saturation scales the saturation channel of the pixel's HSV conversion by
// Factor, then converts back to the pixel's own model. The scaled saturation
// is clamped to [0, 1].
type Saturation struct {
	Factor float64
}

func (f Saturation) ReadsPointOnly() bool { return true }

func (f Saturation) ComputeAt(pt Point, in *Input, dest []float64) {
	px := in.PixelAt(pt, -1)
	hsv := px.Convert(HSV)
	hsv.Data[1] = math.Min(1, math.Max(0, hsv.Data[1]*f.Factor))
	hsv.Convert(px.Model).CopyTo(dest)
}

// Brightness scales every channel uniformly by Factor.
type Brightness struct {
	Factor float64
}

func (f Brightness) ReadsPointOnly() bool { return true }

func (f Brightness) ComputeAt(pt Point, in *Input, dest []float64) {
	in.PixelAt(pt, -1).Scale(f.Factor).CopyTo(dest)
}

// Contrast applies (x - 0.5)·k + 0.5 per channel, spreading values away
// from (or towards) mid-gray.
type Contrast struct {
	Factor float64
}

func (f Contrast) ReadsPointOnly() bool { return true }

func (f Contrast) ComputeAt(pt Point, in *Input, dest []float64) {
	in.PixelAt(pt, -1).Map(func(x float64) float64 {
		return (x-0.5)*f.Factor + 0.5
	}).CopyTo(dest)
}

// Crop copies the pixels of an offset source window to the destination
// origin: dest(x, y) = src(x + Region.Min.X, y + Region.Min.Y) for points
// inside the window. Points outside the window, or whose source coordinate
// falls outside the source image, are a no-op and leave the destination
// unchanged.
type Crop struct {
	Region Region
}

func (f Crop) ComputeAt(pt Point, in *Input, dest []float64) {
	if pt.X >= f.Region.Width || pt.Y >= f.Region.Height {
		return
	}
	src := pt.Add(f.Region.Min)
	if !src.In(in.Primary().Bounds()) {
		return
	}
	in.PixelAt(src, -1).CopyTo(dest)
}

// Grayscale reduces the pixel to weighted luma (0.21 R + 0.72 G + 0.07 B)
// and broadcasts it across the destination channels. When the destination
// carries an alpha channel, the source alpha (or full opacity) is preserved.
type Grayscale struct{}

func (Grayscale) ReadsPointOnly() bool { return true }

func (Grayscale) ComputeAt(pt Point, in *Input, dest []float64) {
	px := in.PixelAt(pt, -1)
	luma := px.Convert(Gray).Data[0]
	for i := range dest {
		dest[i] = luma
	}
	if len(dest) == RGBA.Channels {
		if px.Model.HasAlpha {
			dest[3] = px.Data[px.Model.Channels-1]
		} else {
			dest[3] = 1
		}
	}
}

// ToColor broadcasts a single-channel source across the destination's color
// channels. When the destination has an alpha channel and the source does
// not, the alpha is forced to full opacity.
type ToColor struct{}

func (ToColor) ReadsPointOnly() bool { return true }

func (ToColor) ComputeAt(pt Point, in *Input, dest []float64) {
	px := in.PixelAt(pt, -1)
	v := px.Data[0]
	n := len(dest)
	if n > 3 {
		n = 3
	}
	for i := 0; i < n; i++ {
		dest[i] = v
	}
	if len(dest) == RGBA.Channels {
		if px.Model.HasAlpha {
			dest[3] = px.Data[px.Model.Channels-1]
		} else {
			dest[3] = 1
		}
	}
}
