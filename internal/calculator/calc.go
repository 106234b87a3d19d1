// Package calculator provides integer addition with an explicit width.
//
// Add operates on int64. Go defines signed overflow as two's-complement
// wraparound, so Add(math.MaxInt64, 1) is math.MinInt64. It never panics.
package calculator

// Add returns the sum of a and b.
func Add(a, b int64) int64 {
	return a + b
}
