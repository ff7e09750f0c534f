package px

import (
	"errors"
	"testing"
)

func TestEval_NoSources(t *testing.T) {
	out := mustImage(t, 2, 2, Gray)
	if err := Eval(Invert{}, out); !errors.Is(err, ErrNoSources) {
		t.Errorf("Eval without sources: err = %v, want ErrNoSources", err)
	}
	if err := EvalParallel(Invert{}, out); !errors.Is(err, ErrNoSources) {
		t.Errorf("EvalParallel without sources: err = %v, want ErrNoSources", err)
	}
	if _, err := NewAsync(Invert{}, AsyncRow, out); !errors.Is(err, ErrNoSources) {
		t.Errorf("NewAsync without sources: err = %v, want ErrNoSources", err)
	}
}

func TestEvalRegion_RestrictsWrites(t *testing.T) {
	src := mustImage(t, 4, 4, Gray)
	src.Fill(0.2)
	out := mustImage(t, 4, 4, Gray)
	out.Fill(0.5)

	if err := EvalRegion(Invert{}, Rect(1, 1, 2, 2), out, src); err != nil {
		t.Fatal(err)
	}

	out.ForEach(func(pt Point, pix []float64) {
		want := 0.5
		if pt.In(Rect(1, 1, 2, 2)) {
			want = 0.8
		}
		if !almostEqual(pix[0], want, 1e-12) {
			t.Errorf("pixel %v = %v, want %v", pt, pix[0], want)
		}
	})
}

func TestEvalRegion_ClipsOutOfBounds(t *testing.T) {
	src := mustImage(t, 2, 2, Gray)
	src.Fill(0.2)
	out := mustImage(t, 2, 2, Gray)

	// Region partly outside the image: out-of-bounds points are skipped.
	if err := EvalRegion(Invert{}, Rect(1, 1, 5, 5), out, src); err != nil {
		t.Fatal(err)
	}
	if got := out.At(1, 1, 0); !almostEqual(got, 0.8, 1e-12) {
		t.Errorf("in-bounds point = %v, want 0.8", got)
	}
	if got := out.At(0, 0, 0); got != 0 {
		t.Errorf("point outside region written: %v", got)
	}
}

func TestEvalInPlace_PointLocalFilter(t *testing.T) {
	img := rampImage(t, 4, 3, RGB)
	want, err := Apply(Invert{}, img)
	if err != nil {
		t.Fatal(err)
	}

	if err := EvalInPlace(Invert{}, img); err != nil {
		t.Fatal(err)
	}
	imagesEqual(t, img, want)
}

func TestEvalInPlace_RejectsSpatialFilter(t *testing.T) {
	img := rampImage(t, 4, 4, Gray)

	tests := []struct {
		name string
		f    Filter
	}{
		{"kernel", Box(3)},
		{"then with kernel", Then(Invert{}, Box(3))},
		{"crop", Crop{Region: Rect(1, 1, 2, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := EvalInPlace(tt.f, img); !errors.Is(err, ErrNotPointLocal) {
				t.Errorf("err = %v, want ErrNotPointLocal", err)
			}
		})
	}
}

func TestEvalInPlace_FusedChain(t *testing.T) {
	img := rampImage(t, 3, 3, Gray)
	want, err := Apply(Then(Invert{}, Contrast{Factor: 1.5}), img)
	if err != nil {
		t.Fatal(err)
	}

	if err := EvalInPlace(Then(Invert{}, Contrast{Factor: 1.5}), img); err != nil {
		t.Fatal(err)
	}
	imagesEqual(t, img, want)
}

func TestApplyWith_ChangesModel(t *testing.T) {
	src := rampImage(t, 3, 3, RGB)
	dst, err := ApplyWith(Grayscale{}, src, Gray)
	if err != nil {
		t.Fatal(err)
	}
	if dst.Model() != Gray || dst.Channels() != 1 {
		t.Errorf("model = %v (%d channels), want gray", dst.Model(), dst.Channels())
	}
}
