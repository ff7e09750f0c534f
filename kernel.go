package px

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// EdgeStrategy selects how a convolution kernel resolves taps that fall
// outside the image. All strategies except Constant remap the offending
// coordinate onto a valid index; Constant substitutes a fixed border value
// instead (see Kernel.SetBorder).
type EdgeStrategy int

const (
	// EdgeConstant substitutes the kernel's border value for out-of-range
	// taps. Map passes the coordinate through unchanged for this strategy;
	// the substitution happens inside the kernel's convolution loop.
	EdgeConstant EdgeStrategy = iota

	// EdgeExtend clamps the coordinate to the nearest edge.
	EdgeExtend

	// EdgeWrap wraps the coordinate around to the opposite edge.
	EdgeWrap

	// EdgeMirror reflects the coordinate back across the edge.
	EdgeMirror
)

// String returns the strategy name.
func (e EdgeStrategy) String() string {
	switch e {
	case EdgeConstant:
		return "constant"
	case EdgeExtend:
		return "extend"
	case EdgeWrap:
		return "wrap"
	case EdgeMirror:
		return "mirror"
	}
	return fmt.Sprintf("EdgeStrategy(%d)", int(e))
}

// Map resolves the offset coordinate v against the valid index range
// [0, max]. In-range values are always returned unchanged.
func (e EdgeStrategy) Map(v, max int) int {
	if v >= 0 && v <= max {
		return v
	}
	switch e {
	case EdgeExtend:
		if v < 0 {
			return 0
		}
		return max
	case EdgeWrap:
		if v < 0 {
			return max + v + 1
		}
		return v % (max + 1)
	case EdgeMirror:
		if v < 0 {
			return -v
		}
		return max - v%(max+1) - 1
	}
	return v
}

// Kernel is an immutable rows×cols matrix of real weights implementing
// discrete 2D convolution as a [Filter]. Kernels are typically constructed
// once and reused across many evaluations.
//
// Convolution accumulates the weighted sum of the neighborhood per channel
// and performs no clamping of its own.
type Kernel struct {
	weights *mat.Dense
	rows    int
	cols    int
	edge    EdgeStrategy
	border  float64
}

// NewKernel creates a zero-filled kernel with the given shape and the
// Constant edge strategy.
func NewKernel(rows, cols int) *Kernel {
	return &Kernel{
		weights: mat.NewDense(rows, cols, nil),
		rows:    rows,
		cols:    cols,
	}
}

// Square creates a zero-filled n×n kernel.
func Square(n int) *Kernel {
	return NewKernel(n, n)
}

// KernelFrom builds a kernel from a row-major weight matrix. All rows must
// have the same length; a ragged or empty matrix is rejected with
// ErrShapeMismatch.
func KernelFrom(data [][]float64) (*Kernel, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("%w: empty kernel", ErrShapeMismatch)
	}
	cols := len(data[0])
	k := NewKernel(len(data), cols)
	for j, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrShapeMismatch, j, len(row), cols)
		}
		for i, v := range row {
			k.weights.Set(j, i, v)
		}
	}
	return k, nil
}

// CreateKernel builds a rows×cols kernel by evaluating fn at every
// (col, row) pair.
func CreateKernel(rows, cols int, fn func(x, y int) float64) *Kernel {
	k := NewKernel(rows, cols)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			k.weights.Set(j, i, fn(i, j))
		}
	}
	return k
}

// Rows returns the number of kernel rows.
func (k *Kernel) Rows() int { return k.rows }

// Cols returns the number of kernel columns.
func (k *Kernel) Cols() int { return k.cols }

// At returns the weight at the given row and column.
func (k *Kernel) At(row, col int) float64 { return k.weights.At(row, col) }

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 { return mat.Sum(k.weights) }

// Clone returns an independent copy of the kernel.
func (k *Kernel) Clone() *Kernel {
	return &Kernel{
		weights: mat.DenseCopyOf(k.weights),
		rows:    k.rows,
		cols:    k.cols,
		edge:    k.edge,
		border:  k.border,
	}
}

// SetEdgeStrategy changes how the kernel resolves taps near image edges and
// returns the kernel for chaining.
func (k *Kernel) SetEdgeStrategy(e EdgeStrategy) *Kernel {
	k.edge = e
	return k
}

// SetBorder sets the value substituted for out-of-range taps under the
// Constant edge strategy and returns the kernel for chaining. The default
// border is 0.
func (k *Kernel) SetBorder(v float64) *Kernel {
	k.border = v
	return k
}

// Normalize divides every weight by the kernel's total sum, making the
// kernel energy-preserving for blur-like kernels. A zero-sum kernel is left
// unchanged rather than dividing by zero.
func (k *Kernel) Normalize() *Kernel {
	sum := mat.Sum(k.weights)
	if sum == 0 {
		return k
	}
	k.weights.Scale(1/sum, k.weights)
	return k
}

// binaryOp applies a shape-checked elementwise operation to two kernels.
func (k *Kernel) binaryOp(other *Kernel, op func(dst *mat.Dense, a, b mat.Matrix)) (*Kernel, error) {
	if k.rows != other.rows || k.cols != other.cols {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrShapeMismatch, k.rows, k.cols, other.rows, other.cols)
	}
	out := NewKernel(k.rows, k.cols)
	out.edge = k.edge
	out.border = k.border
	op(out.weights, k.weights, other.weights)
	return out, nil
}

// Add returns the elementwise sum of two equally-shaped kernels.
func (k *Kernel) Add(other *Kernel) (*Kernel, error) {
	return k.binaryOp(other, func(dst *mat.Dense, a, b mat.Matrix) { dst.Add(a, b) })
}

// Sub returns the elementwise difference of two equally-shaped kernels.
func (k *Kernel) Sub(other *Kernel) (*Kernel, error) {
	return k.binaryOp(other, func(dst *mat.Dense, a, b mat.Matrix) { dst.Sub(a, b) })
}

// Mul returns the elementwise product of two equally-shaped kernels.
func (k *Kernel) Mul(other *Kernel) (*Kernel, error) {
	return k.binaryOp(other, func(dst *mat.Dense, a, b mat.Matrix) { dst.MulElem(a, b) })
}

// Div returns the elementwise quotient of two equally-shaped kernels.
func (k *Kernel) Div(other *Kernel) (*Kernel, error) {
	return k.binaryOp(other, func(dst *mat.Dense, a, b mat.Matrix) { dst.DivElem(a, b) })
}

// NeedsIntermediate reports that convolution reads neighboring points, so a
// kernel placed after another filter needs the upstream result materialized.
func (k *Kernel) NeedsIntermediate() bool { return true }

// ComputeAt implements [Filter]: discrete 2D convolution of the primary
// input around pt. Each kernel tap is remapped through the edge strategy
// against the input's valid index range before sampling; under the Constant
// strategy, out-of-range taps contribute the border value instead.
func (k *Kernel) ComputeAt(pt Point, in *Input, dest []float64) {
	src := in.Primary()
	w, h := src.Width(), src.Height()
	r2, c2 := k.rows/2, k.cols/2

	for c := range dest {
		dest[c] = 0
	}
	for ky := -r2; ky <= r2; ky++ {
		sy := pt.Y + ky
		for kx := -c2; kx <= c2; kx++ {
			wgt := k.weights.At(ky+r2, kx+c2)
			sx := pt.X + kx
			if k.edge == EdgeConstant {
				if sx < 0 || sx >= w || sy < 0 || sy >= h {
					for c := range dest {
						dest[c] += k.border * wgt
					}
					continue
				}
				for c := range dest {
					dest[c] += src.At(sx, sy, c) * wgt
				}
				continue
			}
			mx := k.edge.Map(sx, w-1)
			my := k.edge.Map(sy, h-1)
			for c := range dest {
				dest[c] += src.At(mx, my, c) * wgt
			}
		}
	}
}

// Gaussian generates an n×n Gaussian blur kernel with the given standard
// deviation, centered on the middle cell and normalized to sum 1.
func Gaussian(n int, sigma float64) *Kernel {
	twoSigmaSq := 2 * sigma * sigma
	half := n / 2
	k := CreateKernel(n, n, func(x, y int) float64 {
		dx := float64(x - half)
		dy := float64(y - half)
		return math.Exp(-(dx*dx + dy*dy) / twoSigmaSq)
	})
	return k.Normalize()
}

// Gaussian3x3 is a 3×3 Gaussian blur.
func Gaussian3x3() *Kernel { return Gaussian(3, 1.4) }

// Gaussian5x5 is a 5×5 Gaussian blur.
func Gaussian5x5() *Kernel { return Gaussian(5, 1.4) }

// Gaussian7x7 is a 7×7 Gaussian blur.
func Gaussian7x7() *Kernel { return Gaussian(7, 1.4) }

// Gaussian9x9 is a 9×9 Gaussian blur.
func Gaussian9x9() *Kernel { return Gaussian(9, 1.4) }

// Box generates an n×n box blur kernel with uniform weights summing to 1.
func Box(n int) *Kernel {
	w := 1 / float64(n*n)
	return CreateKernel(n, n, func(x, y int) float64 { return w })
}

// SobelX is the horizontal Sobel edge-detection kernel.
func SobelX() *Kernel {
	k, _ := KernelFrom([][]float64{
		{1, 0, -1},
		{2, 0, -2},
		{1, 0, -1},
	})
	return k
}

// SobelY is the vertical Sobel edge-detection kernel.
func SobelY() *Kernel {
	k, _ := KernelFrom([][]float64{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	})
	return k
}

// Sobel combines the horizontal and vertical Sobel kernels.
func Sobel() *Kernel {
	k, _ := SobelX().Add(SobelY())
	return k
}

// Laplacian is the 3×3 discrete Laplacian.
func Laplacian() *Kernel {
	k, _ := KernelFrom([][]float64{
		{0, -1, 0},
		{-1, 4, -1},
		{0, -1, 0},
	})
	return k
}

// Sharpen is a 3×3 sharpening kernel.
func Sharpen() *Kernel {
	k, _ := KernelFrom([][]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	})
	return k
}

// Emboss is a 3×3 embossing kernel.
func Emboss() *Kernel {
	k, _ := KernelFrom([][]float64{
		{-2, -1, 0},
		{-1, 1, 1},
		{0, 1, 2},
	})
	return k
}
