package px

import (
	"testing"
)

func TestEvalParallel_MatchesSequential(t *testing.T) {
	src := rampImage(t, 33, 17, RGB)

	filters := []struct {
		name string
		f    Filter
	}{
		{"pointwise", Then(Invert{}, GammaLog{})},
		{"spatial composition", Then(Invert{}, Gaussian3x3().SetEdgeStrategy(EdgeExtend))},
		{"bare kernel", Sharpen().SetEdgeStrategy(EdgeMirror)},
	}
	for _, tt := range filters {
		t.Run(tt.name, func(t *testing.T) {
			want := src.NewLike()
			if err := Eval(tt.f, want, src); err != nil {
				t.Fatal(err)
			}

			got := src.NewLike()
			if err := EvalParallel(tt.f, got, src); err != nil {
				t.Fatal(err)
			}

			// Point-independent filters make parallel evaluation
			// bit-identical to sequential evaluation.
			imagesEqual(t, got, want)
		})
	}
}

func TestEvalParallelWorkers_WorkerCounts(t *testing.T) {
	src := rampImage(t, 8, 8, Gray)
	want, err := Apply(Invert{}, src)
	if err != nil {
		t.Fatal(err)
	}

	// More workers than rows must still cover every row exactly once.
	for _, workers := range []int{1, 2, 3, 7, 8, 64} {
		got := src.NewLike()
		if err := EvalParallelWorkers(Invert{}, workers, got, src); err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		imagesEqual(t, got, want)
	}
}
