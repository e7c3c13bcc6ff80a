package domain

import (
	"fmt"
	"io"
)

// Calculator is stateless. Each Add variant is picked by the caller from the
// shape of its operands and announces itself on w before returning the sum.
type Calculator struct{}

func (Calculator) AddInts(w io.Writer, a, b int) int {
	fmt.Fprintln(w, "Calling add(int, int)")
	return a + b
}

func (Calculator) AddFloats(w io.Writer, a, b float64) float64 {
	fmt.Fprintln(w, "Calling add(double, double)")
	return a + b
}

func (Calculator) AddInts3(w io.Writer, a, b, c int) int {
	fmt.Fprintln(w, "Calling add(int, int, int)")
	return a + b + c
}
