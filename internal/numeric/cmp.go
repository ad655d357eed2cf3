// Package numeric provides an epsilon-tolerant total order on real numbers,
// used everywhere an objective value is compared in this module.
package numeric

import "math"

// Threshold below which two float64 values are considered equal.
const Threshold = 1e-5

// Cmp returns -1 if a < b, 1 if a > b, and 0 if |a-b| < Threshold.
func Cmp(a, b float64) int {
	if math.Abs(a-b) < Threshold {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

func Eq(a, b float64) bool { return Cmp(a, b) == 0 }
func Gt(a, b float64) bool { return Cmp(a, b) == 1 }
func Lt(a, b float64) bool { return Cmp(a, b) == -1 }
func Ge(a, b float64) bool { return Cmp(a, b) != -1 }
func Le(a, b float64) bool { return Cmp(a, b) != 1 }
func Ne(a, b float64) bool { return Cmp(a, b) != 0 }

// Pair is a two-component objective value, compared lexicographically.
type Pair struct {
	First  float64
	Second float64
}

// CmpPair compares two pairs lexicographically, short-circuiting on the
// first component whose scalar Cmp is nonzero.
func CmpPair(a, b Pair) int {
	if c := Cmp(a.First, b.First); c != 0 {
		return c
	}
	return Cmp(a.Second, b.Second)
}

func EqPair(a, b Pair) bool { return CmpPair(a, b) == 0 }
func LtPair(a, b Pair) bool { return CmpPair(a, b) == -1 }
func GtPair(a, b Pair) bool { return CmpPair(a, b) == 1 }
func LePair(a, b Pair) bool { return CmpPair(a, b) != 1 }
func GePair(a, b Pair) bool { return CmpPair(a, b) != -1 }
