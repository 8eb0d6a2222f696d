package gap

import (
	"github.com/pkg/errors"
	"github.com/sp301415/polegap/num"
)

// ErrNotInSemigroup is returned when a pole order is not attained
// by any function regular outside the point at infinity.
var ErrNotInSemigroup = errors.New("pole order is not in the Weierstrass semigroup")

// Monomial is the function x^XDegree * y^YDegree
// of a hyperelliptic function field y^2 = h(x) with deg h = 2*genus + 1.
// At the place at infinity, x has pole order 2 and y has pole order 2*genus + 1.
type Monomial struct {
	XDegree int
	YDegree int
}

// PoleOrder returns the pole order of m at infinity.
func (m Monomial) PoleOrder(genus int) int {
	return 2*m.XDegree + (2*genus+1)*m.YDegree
}

// WeierstrassMonomial returns a monomial with pole order n at infinity.
// Even n uses a power of x, and odd n uses a power of x times y.
// Returns an error wrapping [ErrNotInSemigroup] if no such monomial exists.
func WeierstrassMonomial(genus, n int) (Monomial, error) {
	if genus < 0 {
		return Monomial{}, errors.Errorf("genus must be non-negative, got %d", genus)
	}

	if n < 0 {
		return Monomial{}, errors.Wrapf(ErrNotInSemigroup, "n=%d", n)
	}

	if num.IsEven(n) {
		return Monomial{XDegree: n / 2}, nil
	}

	d := 2*genus + 1
	if n < d {
		return Monomial{}, errors.Wrapf(ErrNotInSemigroup, "n=%d, genus=%d", n, genus)
	}

	return Monomial{XDegree: (n - d) / 2, YDegree: 1}, nil
}

// Gaps returns the pole orders in [0, 2*genus] that no monomial attains.
// There are exactly genus of them.
func Gaps(genus int) []int {
	gaps := make([]int, 0, genus)
	for n := 0; n <= 2*genus; n++ {
		if _, err := WeierstrassMonomial(genus, n); err != nil {
			gaps = append(gaps, n)
		}
	}
	return gaps
}
