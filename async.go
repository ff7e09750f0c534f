package px

import "context"

// AsyncMode selects the granularity of one cooperative scheduling step.
type AsyncMode int

const (
	// AsyncRow computes one full output row per step.
	AsyncRow AsyncMode = iota

	// AsyncPixel computes a single pixel per step.
	AsyncPixel
)

// AsyncFilter is a resumable, self-driving incremental evaluation of a
// filter: each Step call performs one unit of work (a row or a pixel) and
// advances an internal cursor. The task never blocks; "not done" simply
// means "call Step again". This lets callers interleave large-image
// evaluation with other cooperative work without restructuring their loops.
//
// Step itself has no cancellation: a caller that stops stepping abandons
// the task, leaving rows below the cursor untouched in the destination.
// Run layers context cancellation on top by checking between steps.
//
// An AsyncFilter is created per evaluation and must not be reused after it
// completes.
type AsyncFilter struct {
	filter Filter
	in     *Input
	out    *Image
	mode   AsyncMode
	x, y   int
	done   bool
}

// NewAsync creates a cooperative evaluation task. The filter's prepare hook
// (including intermediate-image materialization) runs here, before the
// first step.
func NewAsync(f Filter, mode AsyncMode, out *Image, srcs ...*Image) (*AsyncFilter, error) {
	if len(srcs) == 0 {
		return nil, ErrNoSources
	}
	in := NewInput(srcs...)
	if err := prepare(f, in, out); err != nil {
		return nil, err
	}
	return &AsyncFilter{filter: f, in: in, out: out, mode: mode}, nil
}

// Cursor returns the coordinate the next step will start at.
func (t *AsyncFilter) Cursor() Point { return Pt(t.x, t.y) }

// Done reports whether the evaluation has completed.
func (t *AsyncFilter) Done() bool { return t.done }

// Step performs one unit of work and reports whether more work remains.
// Stepping a completed task is a no-op returning false.
func (t *AsyncFilter) Step() bool {
	if t.done {
		return false
	}
	switch t.mode {
	case AsyncRow:
		for x := 0; x < t.out.Width(); x++ {
			t.filter.ComputeAt(Pt(x, t.y), t.in, t.out.Slice(x, t.y))
		}
		t.y++
	case AsyncPixel:
		t.filter.ComputeAt(Pt(t.x, t.y), t.in, t.out.Slice(t.x, t.y))
		t.x++
		if t.x >= t.out.Width() {
			t.x = 0
			t.y++
		}
	}
	if t.y >= t.out.Height() {
		t.done = true
	}
	return !t.done
}

// Run drives the task to completion, checking ctx between steps. On
// cancellation the destination is left partially computed at the cursor.
func (t *AsyncFilter) Run(ctx context.Context) error {
	for !t.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.Step()
	}
	return nil
}
