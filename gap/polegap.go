// Package gap computes the gap numbers of the PoleGap, GASP and A3S
// constructions for secure distributed matrix multiplication.
//
// A gap number is the number of distinct pole orders (or degrees) that
// appear in the product of the two encoded matrices, which is the number
// of evaluations a user needs to decode. Smaller is better.
package gap

import (
	"github.com/pkg/errors"
	"github.com/sp301415/polegap/num"
)

var (
	// ErrBothOdd is returned (or panicked with) when PoleGap is evaluated
	// with K and L both odd.
	ErrBothOdd = errors.New("at least one of K and L must be even")
	// ErrInvalidParameters is returned when K, L or X is not positive.
	ErrInvalidParameters = errors.New("K, L and X must be positive")
)

// poleGapEven is the closed form of the PoleGap construction.
// K must be even, so 3*K*L/2 is exact.
func poleGapEven(K, L, X int) int {
	if !num.IsEven(K) {
		panic("first argument must be even")
	}
	return 3*K*L/2 + K/2 + 3*X - 2
}

// CheckedPoleGap returns the gap number of the PoleGap construction.
// It returns an error wrapping [ErrBothOdd] if K and L are both odd,
// and [ErrInvalidParameters] if any argument is not positive.
func CheckedPoleGap(K, L, X int) (int, error) {
	if K < 1 || L < 1 || X < 1 {
		return 0, errors.Wrapf(ErrInvalidParameters, "K=%d, L=%d, X=%d", K, L, X)
	}

	switch {
	case num.IsEven(K) && num.IsEven(L):
		return min(poleGapEven(K, L, X), poleGapEven(L, K, X)), nil
	case num.IsEven(K):
		return poleGapEven(K, L, X), nil
	case num.IsEven(L):
		return poleGapEven(L, K, X), nil
	}

	return 0, errors.Wrapf(ErrBothOdd, "K=%d, L=%d", K, L)
}

// PoleGap returns the gap number of the PoleGap construction.
//
// Panics if K and L are both odd, or if any argument is not positive.
func PoleGap(K, L, X int) int {
	g, err := CheckedPoleGap(K, L, X)
	if err != nil {
		panic(err)
	}
	return g
}

// A3S returns the gap number of the A3S construction.
func A3S(K, L, X int) int {
	return min((K+1)*(L+X)-1, (L+1)*(K+X)-1)
}
