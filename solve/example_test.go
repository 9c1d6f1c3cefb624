package solve_test

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/solve"
	"github.com/katalvlaran/lvsparse/sparse"
)

func ExampleLU() {
	a, _ := sparse.NewCSR(
		[]float64{2, 1, 1, 3},
		[]int{0, 1, 0, 1},
		[]int{0, 2, 4},
	)

	x, err := solve.LU(a, []float64{5, 10})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", x)
	// Output: [1.000 3.000]
}
