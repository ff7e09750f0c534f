package px

import (
	"context"
	"fmt"
)

func ExampleApply() {
	src, _ := NewImage(2, 2, Gray)
	src.Fill(0.25)

	dst, _ := Apply(Invert{}, src)
	fmt.Println(dst.At(0, 0, 0))
	// Output: 0.75
}

func ExampleThen() {
	src, _ := NewImage(64, 64, RGB)
	src.Fill(0.2, 0.5, 0.8)

	// Invert, then blur the inverted result. The blur is spatial, so the
	// inverted image is materialized once before the kernel runs.
	f := Then(Invert{}, Gaussian3x3().SetEdgeStrategy(EdgeExtend))

	dst, _ := Apply(f, src)
	fmt.Printf("%.2f %.2f %.2f\n", dst.At(32, 32, 0), dst.At(32, 32, 1), dst.At(32, 32, 2))
	// Output: 0.80 0.50 0.20
}

func ExampleJoin() {
	src, _ := NewImage(1, 1, Gray)
	src.Fill(0.4)

	// Average the original and its inverse: always mid-gray.
	f := Join(Brightness{Factor: 1}, Invert{}, Gray, func(pt Point, a, b Pixel) Pixel {
		return a.Add(b).Scale(0.5)
	})
	dst, _ := Apply(f, src)
	fmt.Println(dst.At(0, 0, 0))
	// Output: 0.5
}

func ExampleAsyncFilter() {
	src, _ := NewImage(8, 4, Gray)
	src.Fill(0.3)
	out := src.NewLike()

	task, _ := NewAsync(Invert{}, AsyncRow, out, src)
	steps := 0
	for {
		steps++
		if !task.Step() {
			break
		}
	}
	fmt.Println(steps, task.Done())
	// Output: 4 true
}

func ExampleAsyncFilter_Run() {
	src, _ := NewImage(16, 16, Gray)
	src.Fill(0.25)
	out := src.NewLike()

	task, _ := NewAsync(Invert{}, AsyncPixel, out, src)
	if err := task.Run(context.Background()); err != nil {
		fmt.Println("interrupted:", err)
	}
	fmt.Println(out.At(15, 15, 0))
	// Output: 0.75
}

func ExampleEvalInPlace() {
	img, _ := NewImage(2, 2, Gray)
	img.Fill(0.25)

	// Point-local filters may write over their own input.
	if err := EvalInPlace(Invert{}, img); err != nil {
		fmt.Println(err)
	}
	fmt.Println(img.At(0, 0, 0))

	// Spatial filters are rejected: they would read a mix of original and
	// already-updated values.
	err := EvalInPlace(Gaussian3x3(), img)
	fmt.Println(err)
	// Output:
	// 0.75
	// px: filter is not point-local
}
