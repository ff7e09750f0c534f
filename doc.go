// Package px is a composable per-pixel image-processing engine.
//
// # Overview
//
// px models image operations as filters: pure, parallel-safe functions from
// a coordinate and a bundle of source images to one output pixel. Filters
// compose into trees with [Then], [Join] and [Pipeline], and the resulting
// tree is evaluated by one of several interchangeable strategies —
// sequential ([Eval]), region-restricted ([EvalRegion]), in-place
// ([EvalInPlace]), parallel ([EvalParallel]) or cooperative/incremental
// ([NewAsync]).
//
// # Quick start
//
//	src, _ := px.NewImage(256, 256, px.RGB)
//	src.Fill(0.2, 0.5, 0.8)
//
//	// Invert, then blur the inverted result.
//	f := px.Then(px.Invert{}, px.Gaussian3x3().SetEdgeStrategy(px.EdgeExtend))
//
//	dst, err := px.Apply(f, src)
//
// # Composition
//
// Then decides per composed pair whether the second stage needs the first
// stage fully materialized: spatial filters such as [Kernel] read
// neighboring points of already-transformed data, so the first stage is
// evaluated once into an intermediate image. Point-wise chains are fused
// pixel by pixel with no intermediate allocation.
//
// # Architecture
//
// The package is organized around three pieces:
//   - the Filter contract and its combinators (filter.go, compose.go)
//   - the convolution engine with configurable edge handling (kernel.go)
//   - the evaluation strategies (eval.go, parallel.go, async.go)
//
// Images are dense row-major float64 buffers; conversion to and from the
// standard library's image types happens at the interop boundary
// (stdimage.go), which is also where values are clamped to the
// representable output range.
package px
