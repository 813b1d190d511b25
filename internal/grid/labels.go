// Package grid generates the axis labels of the building grid used to
// describe where a component was lifted into place.
package grid

import "strconv"

const (
	half       = ".5"
	maxNumeric = 18
)

// AlphabeticAxisLabels returns A, A.5, B, B.5 ... Z, Z.5.
func AlphabeticAxisLabels() []string {
	labels := make([]string, 0, 2*26)
	for c := 'A'; c <= 'Z'; c++ {
		labels = append(labels, string(c), string(c)+half)
	}
	return labels
}

// NumericAxisLabels returns 1, 1.5, 2, 2.5 ... 18, 18.5.
func NumericAxisLabels() []string {
	labels := make([]string, 0, 2*maxNumeric)
	for i := 1; i <= maxNumeric; i++ {
		n := strconv.Itoa(i)
		labels = append(labels, n, n+half)
	}
	return labels
}
