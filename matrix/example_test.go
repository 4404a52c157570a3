package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/scfilter/matrix"
)

// ExampleCSR_RowSlice shows row-range slicing and stacking.
func ExampleCSR_RowSlice() {
	m, _ := matrix.NewCSRFromDense(3, 3, []float64{
		1, 0, 2,
		0, 0, 3,
		4, 5, 6,
	})
	top, _ := m.RowSlice(0, 1)
	rest, _ := m.RowSlice(1, 3)
	back, _ := matrix.VStack(top, rest)

	fmt.Println(top.RowDegrees(), rest.RowDegrees())
	fmt.Println(back.Equal(m))
	// Output:
	// [2] [1 3]
	// true
}

// ExampleCSR_SelectRows keeps rows by boolean mask.
func ExampleCSR_SelectRows() {
	m, _ := matrix.NewCSRFromDense(3, 2, []float64{
		1, 0,
		0, 0,
		2, 3,
	})
	kept, _ := m.SelectRows([]bool{true, false, true})
	d, _ := kept.ToDense()
	fmt.Print(d)
	// Output:
	// [1, 0]
	// [2, 3]
}
