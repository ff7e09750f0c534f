package px

// Filter is the core abstraction: a pure function from a coordinate and an
// Input to one output pixel's channel values.
//
// ComputeAt must depend only on pt and on state reachable through in, must
// not mutate shared state, and must be safe to call concurrently for
// different points with the same Filter and Input. dest is the destination
// pixel's channel slice; a filter that writes nothing leaves the destination
// unchanged (see Crop).
//
// Filters may additionally implement [Preparer], [IntermediateRequirer] and
// [PointReader] to participate in composition and in-place evaluation.
type Filter interface {
	ComputeAt(pt Point, in *Input, dest []float64)
}

// IntermediateRequirer is implemented by filters whose output at one point
// depends on other points of their input — spatial filters such as
// convolution kernels. When such a filter is the second stage of a
// sequential composition, the first stage must be fully materialized into an
// intermediate image before the second stage runs.
type IntermediateRequirer interface {
	NeedsIntermediate() bool
}

// RequiresIntermediate reports whether f needs a materialized intermediate
// image when composed after another filter. Filters that do not implement
// [IntermediateRequirer] are point-wise and never do.
func RequiresIntermediate(f Filter) bool {
	if r, ok := f.(IntermediateRequirer); ok {
		return r.NeedsIntermediate()
	}
	return false
}

// Preparer is implemented by filters that need one-time setup before any
// per-point call of an evaluation. Prepare runs exactly once per evaluation,
// before the first ComputeAt; it is the only place allowed to materialize an
// intermediate image or perform other setup with side effects.
type Preparer interface {
	Prepare(in *Input, out *Image) error
}

// prepare runs the filter's setup hook, if any.
func prepare(f Filter, in *Input, out *Image) error {
	if p, ok := f.(Preparer); ok {
		return p.Prepare(in, out)
	}
	return nil
}

// PointReader is implemented by filters that are verified, by construction,
// to read no input location other than the exact point being computed, and
// to finish all reads of that point before writing dest. Only such filters
// may be evaluated in place, where the destination buffer aliases the
// source.
type PointReader interface {
	ReadsPointOnly() bool
}

// readsPointOnly reports whether f carries the in-place capability.
func readsPointOnly(f Filter) bool {
	if p, ok := f.(PointReader); ok {
		return p.ReadsPointOnly()
	}
	return false
}
