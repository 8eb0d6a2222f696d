// Package num implements various utility functions regarding integer types.
package num

import "golang.org/x/exp/constraints"

// IsEven returns true if x is divisible by two.
func IsEven[T constraints.Integer](x T) bool {
	return x%2 == 0
}

// CeilDiv returns ceil(x / y) for positive y.
// Panics if y is not positive.
func CeilDiv[T constraints.Integer](x, y T) T {
	if y <= 0 {
		panic("divisor must be positive")
	}
	return (x + y - 1) / y
}

// MinSlice returns the smallest element of v.
// Panics if v is empty.
func MinSlice[T constraints.Ordered](v []T) T {
	if len(v) == 0 {
		panic("empty slice")
	}

	m := v[0]
	for i := 1; i < len(v); i++ {
		if v[i] < m {
			m = v[i]
		}
	}
	return m
}

// MaxSlice returns the largest element of v.
// Panics if v is empty.
func MaxSlice[T constraints.Ordered](v []T) T {
	if len(v) == 0 {
		panic("empty slice")
	}

	m := v[0]
	for i := 1; i < len(v); i++ {
		if v[i] > m {
			m = v[i]
		}
	}
	return m
}

// Range returns start, start+step, ... up to but excluding end.
// Panics if step is not positive.
func Range[T constraints.Integer](start, end, step T) []T {
	if step <= 0 {
		panic("step must be positive")
	}
	if end <= start {
		return []T{}
	}

	r := make([]T, 0, CeilDiv(end-start, step))
	for x := start; x < end; x += step {
		r = append(r, x)
	}
	return r
}
