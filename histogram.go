package px

import (
	"github.com/montanaflynn/stats"
)

// Histogram counts the channel values of an image in uniformly sized
// buckets over [0, 1]. Values outside that range land in the first or last
// bucket.
type Histogram struct {
	buckets int
	counts  [][]uint64
}

// DefaultBuckets is the bucket count used when none is given.
const DefaultBuckets = 256

// NewHistogram computes the histogram of the whole image. buckets <= 0
// means DefaultBuckets.
func NewHistogram(img *Image, buckets int) *Histogram {
	return NewHistogramRegion(img, img.Bounds(), buckets)
}

// NewHistogramRegion computes the histogram of a sub-area of the image. The
// region is clipped to the image bounds.
func NewHistogramRegion(img *Image, roi Region, buckets int) *Histogram {
	if buckets <= 0 {
		buckets = DefaultBuckets
	}
	h := &Histogram{
		buckets: buckets,
		counts:  make([][]uint64, img.Channels()),
	}
	for c := range h.counts {
		h.counts[c] = make([]uint64, buckets)
	}
	img.ForEachRegion(roi, func(pt Point, pix []float64) {
		for c, v := range pix {
			h.counts[c][h.bucketOf(v)]++
		}
	})
	return h
}

func (h *Histogram) bucketOf(v float64) int {
	i := int(v * float64(h.buckets))
	if i < 0 {
		return 0
	}
	if i >= h.buckets {
		return h.buckets - 1
	}
	return i
}

// Buckets returns the number of buckets per channel.
func (h *Histogram) Buckets() int { return h.buckets }

// Channels returns the number of channels counted.
func (h *Histogram) Channels() int { return len(h.counts) }

// Counts returns the bucket counts of one channel. The returned slice is
// the histogram's own storage; callers must not modify it.
func (h *Histogram) Counts(ch int) []uint64 { return h.counts[ch] }

// MaxCount returns the largest bucket count of one channel, useful for
// scaling histogram displays.
func (h *Histogram) MaxCount(ch int) uint64 {
	var m uint64
	for _, c := range h.counts[ch] {
		if c > m {
			m = c
		}
	}
	return m
}

// ChannelStats summarizes the value distribution of a single channel.
type ChannelStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// StatsOf computes summary statistics for one channel of the image.
func StatsOf(img *Image, ch int) (ChannelStats, error) {
	data := make(stats.Float64Data, 0, img.Width()*img.Height())
	img.ForEach(func(pt Point, pix []float64) {
		data = append(data, pix[ch])
	})

	var s ChannelStats
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return ChannelStats{}, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return ChannelStats{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return ChannelStats{}, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return ChannelStats{}, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return ChannelStats{}, err
	}
	return s, nil
}
