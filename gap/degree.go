package gap

import (
	"github.com/bits-and-blooms/bitset"
)

// FDegrees returns the degrees of the f-side basis of GASP with parameter r.
//
// The first K degrees are 0, ..., K-1.
// The last X degrees are taken in order from the blocks
// {K*L + i*K + j : 0 <= j < r} for i = 0, 1, ....
func FDegrees(K, L, X, r int) []int {
	checkParameters(K, L, X)
	checkRepetition(K, X, r)

	degs := make([]int, 0, K+X)
	for i := 0; i < K; i++ {
		degs = append(degs, i)
	}

	for i := 0; len(degs) < K+X; i++ {
		for j := 0; j < r && len(degs) < K+X; j++ {
			degs = append(degs, K*L+i*K+j)
		}
	}

	return degs
}

// GDegrees returns the degrees of the g-side basis of GASP.
//
// The first L degrees are 0, K, ..., (L-1)*K.
// The last X degrees are K*L, ..., K*L + X - 1.
func GDegrees(K, L, X int) []int {
	checkParameters(K, L, X)

	degs := make([]int, 0, L+X)
	for i := 0; i < L; i++ {
		degs = append(degs, i*K)
	}

	for i := 0; i < X; i++ {
		degs = append(degs, K*L+i)
	}

	return degs
}

// Sumset returns the set {a + b : a in f, b in g} as a bitset.
// All degrees must be non-negative.
func Sumset(f, g []int) *bitset.BitSet {
	bOut := bitset.New(0)
	SumsetAssign(f, g, bOut)
	return bOut
}

// SumsetAssign writes the set {a + b : a in f, b in g} to bOut.
// All degrees must be non-negative.
func SumsetAssign(f, g []int, bOut *bitset.BitSet) {
	bOut.ClearAll()
	for _, a := range f {
		for _, b := range g {
			if a < 0 || b < 0 {
				panic("degrees must be non-negative")
			}
			bOut.Set(uint(a + b))
		}
	}
}

func checkParameters(K, L, X int) {
	if K < 1 || L < 1 || X < 1 {
		panic(ErrInvalidParameters)
	}
}

func checkRepetition(K, X, r int) {
	if r < 1 || r > min(K, X) {
		panic("r must be in [1, min(K, X)]")
	}
}
