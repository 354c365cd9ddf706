// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// ExampleDense_TransposeInPlace shows that the buffer is reordered without reallocation.
func ExampleDense_TransposeInPlace() {
	m := matrix.New([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	m.TransposeInPlace()
	fmt.Print(m)
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}

func ExampleMatMul() {
	a := matrix.New([]float64{1, 2, 3, 4}, 2, 2)
	fmt.Print(matrix.MatMul(a, matrix.Identity[float64](2, 2)))
	// Output:
	// [1, 2]
	// [3, 4]
}

func ExampleDeterminant() {
	m := matrix.New([]int{1, 2, 3, 4}, 2, 2)
	fmt.Println(matrix.Determinant(m), matrix.Trace(m))
	// Output: -2 5
}

func ExampleDense_RowsSeq() {
	m := matrix.New([]string{"a", "b", "c", "d"}, 2, 2)
	for i, row := range m.RowsSeq() {
		fmt.Println(i, row)
	}
	// Output:
	// 0 [a b]
	// 1 [c d]
}
