package px

// Input bundles the source images for one evaluation call together with at
// most one piece of precomputed state: either a single cached pixel (used by
// fused sequential composition) or a materialized intermediate image (used
// when a downstream filter needs neighborhood access to transformed data).
//
// Lookup precedence when no explicit source index is given: the cached
// intermediate image, then the cached pixel, then source image 0.
//
// An Input is constructed fresh for every evaluation and must not be reused
// across evaluations. It is safe to share across goroutines once evaluation
// has started; only the evaluator's prepare step mutates it.
type Input struct {
	images       []*Image
	pixel        *Pixel
	intermediate *Image
}

// NewInput creates an Input over the given source images.
func NewInput(srcs ...*Image) *Input {
	return &Input{images: srcs}
}

// Sources returns the number of source images.
func (in *Input) Sources() int { return len(in.images) }

// Source returns the i-th source image.
func (in *Input) Source(i int) *Image { return in.images[i] }

// Primary returns the image that default-routed reads resolve to: the
// cached intermediate image if one exists, otherwise source 0.
func (in *Input) Primary() *Image {
	if in.intermediate != nil {
		return in.intermediate
	}
	return in.images[0]
}

// NewPixel returns a zero pixel shaped like the primary source's pixels.
func (in *Input) NewPixel() Pixel {
	return NewPixel(in.Primary().Model())
}

// GetFloat returns the value of channel c at pt. A non-negative src selects
// that source image explicitly; src < 0 uses the default routing through any
// cached intermediate image or cached pixel.
func (in *Input) GetFloat(pt Point, c, src int) float64 {
	if src >= 0 {
		return in.images[src].At(pt.X, pt.Y, c)
	}
	if in.intermediate != nil {
		return in.intermediate.At(pt.X, pt.Y, c)
	}
	if in.pixel != nil {
		return in.pixel.Data[c]
	}
	return in.images[0].At(pt.X, pt.Y, c)
}

// PixelAt returns an independent copy of the pixel at pt, following the same
// routing rules as GetFloat.
func (in *Input) PixelAt(pt Point, src int) Pixel {
	if src >= 0 {
		return in.images[src].PixelAt(pt)
	}
	if in.intermediate != nil {
		return in.intermediate.PixelAt(pt)
	}
	if in.pixel != nil {
		return in.pixel.Clone()
	}
	return in.images[0].PixelAt(pt)
}

// withPixel returns a copy of the input whose default reads resolve to the
// given cached pixel. The copy drops any intermediate image so that at most
// one cached field is populated.
func (in *Input) withPixel(p *Pixel) Input {
	return Input{images: in.images, pixel: p}
}

// setIntermediate caches a materialized intermediate image, replacing any
// previously cached state.
func (in *Input) setIntermediate(img *Image) {
	in.intermediate = img
	in.pixel = nil
}
