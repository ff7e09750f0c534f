package px

// Then returns the sequential composition of two filters: a's output becomes
// b's input.
//
// If b needs neighborhood access to transformed data (it requires an
// intermediate image), the composition's prepare step evaluates a over the
// full output extent into a freshly allocated intermediate image once, and
// every per-point call runs b against that materialized image. Otherwise no
// buffer is allocated: at each point a is evaluated into a scratch pixel and
// b reads that pixel in place of image sampling, fusing the two stages.
func Then(a, b Filter) Filter {
	return &thenFilter{a: a, b: b}
}

type thenFilter struct {
	a, b Filter
}

func (f *thenFilter) NeedsIntermediate() bool {
	return RequiresIntermediate(f.a) || RequiresIntermediate(f.b)
}

func (f *thenFilter) ReadsPointOnly() bool {
	return readsPointOnly(f.a) && readsPointOnly(f.b) && !RequiresIntermediate(f.b)
}

func (f *thenFilter) Prepare(in *Input, out *Image) error {
	if !RequiresIntermediate(f.b) {
		// Fused path: no buffer of our own, but nested stages may still
		// need their setup hooks.
		if err := prepare(f.a, in, out); err != nil {
			return err
		}
		return prepare(f.b, in, out)
	}

	tmp := out.NewLike()
	Logger().Debug("px: materializing intermediate image",
		"width", tmp.Width(), "height", tmp.Height(), "model", tmp.Model().String())
	if err := evalSeq(f.a, in, tmp); err != nil {
		return err
	}
	in.setIntermediate(tmp)
	return prepare(f.b, in, out)
}

func (f *thenFilter) ComputeAt(pt Point, in *Input, dest []float64) {
	if RequiresIntermediate(f.b) {
		// Prepare already ran a into the input's intermediate image.
		f.b.ComputeAt(pt, in, dest)
		return
	}
	scratch := in.NewPixel()
	f.a.ComputeAt(pt, in, scratch.Data)
	fused := in.withPixel(&scratch)
	f.b.ComputeAt(pt, &fused, dest)
}

// JoinFunc combines the two independently computed pixels of a Join at a
// point. Both operands arrive converted to the Join's working color model.
type JoinFunc func(pt Point, a, b Pixel) Pixel

// Join evaluates two filters independently at each point, converts both
// results to the working color model, and merges them with fn. The merged
// pixel is written to the destination, which is expected to use the working
// model.
//
// Operands are evaluated against the original inputs; operands that would
// themselves materialize an intermediate image are not supported inside a
// Join. Spatial operands such as kernels work, since they read the source
// images directly.
func Join(a, b Filter, model Model, fn JoinFunc) Filter {
	return &joinFilter{a: a, b: b, model: model, fn: fn}
}

type joinFilter struct {
	a, b  Filter
	model Model
	fn    JoinFunc
}

func (f *joinFilter) NeedsIntermediate() bool {
	return RequiresIntermediate(f.a) || RequiresIntermediate(f.b)
}

func (f *joinFilter) ReadsPointOnly() bool {
	return readsPointOnly(f.a) && readsPointOnly(f.b)
}

func (f *joinFilter) ComputeAt(pt Point, in *Input, dest []float64) {
	pa := in.NewPixel()
	f.a.ComputeAt(pt, in, pa.Data)
	pb := in.NewPixel()
	f.b.ComputeAt(pt, in, pb.Data)

	merged := f.fn(pt, pa.Convert(f.model), pb.Convert(f.model))
	merged.CopyTo(dest)
}

// AndThen chains two filters writing into the same destination slice: a runs
// first, then b, letting b observe and overwrite what a wrote without any
// intermediate pixel. Unlike Then, b still reads the original inputs.
func AndThen(a, b Filter) Filter {
	return Pipeline(a, b)
}

// Pipeline generalizes AndThen to any number of stages, evaluated in order
// into the same destination slice.
func Pipeline(stages ...Filter) Filter {
	return pipelineFilter(stages)
}

type pipelineFilter []Filter

func (f pipelineFilter) NeedsIntermediate() bool {
	for _, s := range f {
		if RequiresIntermediate(s) {
			return true
		}
	}
	return false
}

func (f pipelineFilter) ReadsPointOnly() bool {
	for _, s := range f {
		if !readsPointOnly(s) {
			return false
		}
	}
	return true
}

func (f pipelineFilter) ComputeAt(pt Point, in *Input, dest []float64) {
	for _, s := range f {
		s.ComputeAt(pt, in, dest)
	}
}
