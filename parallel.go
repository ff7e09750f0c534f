package px

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvalParallel evaluates a filter over the full extent of out with one
// worker per available CPU. See EvalParallelWorkers.
func EvalParallel(f Filter, out *Image, srcs ...*Image) error {
	return EvalParallelWorkers(f, 0, out, srcs...)
}

// EvalParallelWorkers partitions the output rows into contiguous bands and
// evaluates them concurrently. Source images are shared read-only across
// workers; each worker owns a disjoint set of output rows, so no write
// overlaps another. Because filters are point-independent, the result is
// identical to sequential evaluation.
//
// The filter's prepare hook (including intermediate-image materialization
// for compositions) runs once, before any worker starts. workers <= 0 means
// GOMAXPROCS.
func EvalParallelWorkers(f Filter, workers int, out *Image, srcs ...*Image) error {
	if len(srcs) == 0 {
		return ErrNoSources
	}
	in := NewInput(srcs...)
	if err := prepare(f, in, out); err != nil {
		return err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	h := out.Height()
	if workers > h {
		workers = h
	}
	band := (h + workers - 1) / workers
	Logger().Debug("px: parallel evaluation",
		"workers", workers, "band_rows", band, "height", h)

	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < h; y0 += band {
		roi := Rect(0, y0, out.Width(), min(band, h-y0))
		g.Go(func() error {
			out.ForEachRegion(roi, func(pt Point, pix []float64) {
				f.ComputeAt(pt, in, pix)
			})
			return nil
		})
	}
	return g.Wait()
}
