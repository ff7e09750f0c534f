package px

// Eval evaluates a filter over the full extent of out, reading from the
// given source images. Coordinates are visited in row-major order; the order
// does not affect correctness (filters are point-independent) but keeps
// results reproducible.
func Eval(f Filter, out *Image, srcs ...*Image) error {
	if len(srcs) == 0 {
		return ErrNoSources
	}
	return evalSeq(f, NewInput(srcs...), out)
}

// evalSeq runs the filter's prepare hook and then a sequential row-major
// sweep over out, reading through in. Composition combinators reuse it to
// materialize intermediate images.
func evalSeq(f Filter, in *Input, out *Image) error {
	if err := prepare(f, in, out); err != nil {
		return err
	}
	out.ForEach(func(pt Point, pix []float64) {
		f.ComputeAt(pt, in, pix)
	})
	return nil
}

// EvalRegion evaluates a filter over a sub-area of out. Points of the region
// outside the image bounds are skipped; a warning is logged when that
// happens since callers are expected to pass pre-clipped regions.
func EvalRegion(f Filter, roi Region, out *Image, srcs ...*Image) error {
	if len(srcs) == 0 {
		return ErrNoSources
	}
	in := NewInput(srcs...)
	if err := prepare(f, in, out); err != nil {
		return err
	}
	clipped := roi.Intersect(out.Bounds())
	if clipped != roi {
		Logger().Warn("px: evaluation region clipped to image bounds",
			"region", roi.String(), "clipped", clipped.String())
	}
	out.ForEachRegion(clipped, func(pt Point, pix []float64) {
		f.ComputeAt(pt, in, pix)
	})
	return nil
}

// EvalInPlace evaluates a filter with img as both the sole source and the
// destination. Only filters carrying the [PointReader] capability may run in
// place: they read exactly the point being written, before writing it, so
// the aliasing is safe. Any other filter is rejected with ErrNotPointLocal.
func EvalInPlace(f Filter, img *Image) error {
	if !readsPointOnly(f) {
		return ErrNotPointLocal
	}
	return evalSeq(f, NewInput(img), img)
}

// Apply is a convenience wrapper around Eval that allocates a destination
// with the same shape and model as src.
func Apply(f Filter, src *Image) (*Image, error) {
	out := src.NewLike()
	if err := Eval(f, out, src); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyWith is Apply for filters that change the color model: the
// destination is allocated with the given model.
func ApplyWith(f Filter, src *Image, model Model) (*Image, error) {
	out := src.NewLikeWith(model)
	if err := Eval(f, out, src); err != nil {
		return nil, err
	}
	return out, nil
}
