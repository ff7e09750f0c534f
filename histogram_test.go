package px

import (
	"testing"
)

func TestHistogram_Counts(t *testing.T) {
	img := mustImage(t, 2, 2, Gray)
	img.Set(0, 0, 0, 0)
	img.Set(1, 0, 0, 0.5)
	img.Set(0, 1, 0, 0.5)
	img.Set(1, 1, 0, 1)

	h := NewHistogram(img, 4)
	want := []uint64{1, 0, 2, 1} // 1.0 clamps into the last bucket
	got := h.Counts(0)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %d, want %d", i, got[i], want[i])
		}
	}
	if h.MaxCount(0) != 2 {
		t.Errorf("MaxCount = %d, want 2", h.MaxCount(0))
	}
	if h.Buckets() != 4 || h.Channels() != 1 {
		t.Errorf("shape = %d buckets × %d channels, want 4 × 1", h.Buckets(), h.Channels())
	}
}

func TestHistogram_DefaultBuckets(t *testing.T) {
	img := mustImage(t, 2, 2, RGB)
	h := NewHistogram(img, 0)
	if h.Buckets() != DefaultBuckets {
		t.Errorf("buckets = %d, want %d", h.Buckets(), DefaultBuckets)
	}
	if h.Channels() != 3 {
		t.Errorf("channels = %d, want 3", h.Channels())
	}
}

func TestHistogram_Region(t *testing.T) {
	img := mustImage(t, 4, 4, Gray)
	img.Fill(0.1)
	img.Set(0, 0, 0, 0.9) // outside the region below

	h := NewHistogramRegion(img, Rect(2, 2, 2, 2), 2)
	if got := h.Counts(0)[0]; got != 4 {
		t.Errorf("low bucket = %d, want all 4 region pixels", got)
	}
	if got := h.Counts(0)[1]; got != 0 {
		t.Errorf("high bucket = %d, want 0 (outlier lies outside region)", got)
	}
}

func TestStatsOf(t *testing.T) {
	img := mustImage(t, 2, 2, Gray)
	img.Set(0, 0, 0, 0)
	img.Set(1, 0, 0, 0.5)
	img.Set(0, 1, 0, 0.5)
	img.Set(1, 1, 0, 1)

	s, err := StatsOf(img, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(s.Mean, 0.5, 1e-12) {
		t.Errorf("mean = %v, want 0.5", s.Mean)
	}
	if !almostEqual(s.Median, 0.5, 1e-12) {
		t.Errorf("median = %v, want 0.5", s.Median)
	}
	if s.Min != 0 || s.Max != 1 {
		t.Errorf("min/max = %v/%v, want 0/1", s.Min, s.Max)
	}
	if s.StdDev <= 0 {
		t.Errorf("stddev = %v, want > 0", s.StdDev)
	}
}
