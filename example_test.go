package chartpath_test

import (
	"fmt"

	"honnef.co/go/chartpath"
)

func ExampleMovingAverages() {
	fmt.Println(chartpath.MovingAverages([]int{10, 20, 50, 10}, 7))
	// Output: [10 15 26.666666666666668 22.5]
}

func ExampleSmoother() {
	s := chartpath.NewSmoother(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		fmt.Print(s.Push(v), " ")
	}
	fmt.Println()
	// Output: 1 1.5 2 3 4
}

func ExampleLineChart_Path() {
	r := chartpath.NewRectFromSize(chartpath.Sz(100, 100))
	series := []int{10, 20, 50, 10}

	line := chartpath.Line(series).ZeroBased(false)
	fmt.Println(line.Path(r).SVG(chartpath.SVGOptions{MaxPrecision: 2}))

	area := chartpath.Area(series).WithCount(2)
	fmt.Println(area.Path(r).SVG(chartpath.SVGOptions{MaxPrecision: 2}))
	// Output:
	// M0,100 L33.33,75 L66.67,0 L100,100
	// M0,80 L33.33,60 L100,100 L0,100 Z
}
