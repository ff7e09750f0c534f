package px

// Pixel is a fixed-length vector of channel values tagged with a color model.
// Channel values are float64 in [0, 1] by convention; filters may produce
// values outside that range (e.g. edge-detection kernels) and clamping happens
// only at the image.Image interop boundary.
//
// Pixels are value types: every read from an Image or Input produces an
// independent copy and no two pixels share channel storage.
type Pixel struct {
	// Model tags the meaning of the channels.
	Model Model

	// Data holds one value per channel, Model.Channels long.
	Data []float64
}

// NewPixel returns a zero pixel of the given model.
func NewPixel(m Model) Pixel {
	return Pixel{Model: m, Data: make([]float64, m.Channels)}
}

// Clone returns an independent copy of the pixel.
func (p Pixel) Clone() Pixel {
	q := Pixel{Model: p.Model, Data: make([]float64, len(p.Data))}
	copy(q.Data, p.Data)
	return q
}

// Add returns the elementwise sum of p and q. The operands must have the
// same channel count; the result keeps p's model.
func (p Pixel) Add(q Pixel) Pixel {
	r := p.Clone()
	for i := range r.Data {
		r.Data[i] += q.Data[i]
	}
	return r
}

// Scale returns the pixel with every channel multiplied by f.
func (p Pixel) Scale(f float64) Pixel {
	r := p.Clone()
	for i := range r.Data {
		r.Data[i] *= f
	}
	return r
}

// Div returns the pixel with every channel divided by f.
func (p Pixel) Div(f float64) Pixel {
	return p.Scale(1 / f)
}

// Map applies fn to every channel in place and returns p for chaining.
func (p Pixel) Map(fn func(float64) float64) Pixel {
	for i := range p.Data {
		p.Data[i] = fn(p.Data[i])
	}
	return p
}

// CopyTo writes the pixel's channels into dst, copying
// min(len(dst), len(p.Data)) values.
func (p Pixel) CopyTo(dst []float64) {
	copy(dst, p.Data)
}

// Convert returns the pixel converted to another color model.
func (p Pixel) Convert(to Model) Pixel {
	return Convert(p, to)
}
