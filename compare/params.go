// Package compare sweeps the gap numbers of PoleGap and GASP over a
// parameter grid and tallies which construction does better.
package compare

import "runtime"

// ParametersLiteral is a structure for sweep parameters.
type ParametersLiteral struct {
	// KLimit is the largest K of the sweep.
	// K runs over the even numbers in [2, KLimit].
	KLimit int
	// XLimit is the largest X of the sweep.
	// X runs over [1, XLimit].
	XLimit int

	// Workers is the number of goroutines used by the parallel sweep.
	// If zero, runtime.NumCPU() is used.
	Workers int
}

// DefaultParameters is the grid K, L, X <= 50.
var DefaultParameters = ParametersLiteral{
	KLimit: 50,
	XLimit: 50,
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it panics.
func (p ParametersLiteral) Compile() Parameters {
	switch {
	case p.KLimit < 2:
		panic("KLimit must be at least 2")
	case p.XLimit < 1:
		panic("XLimit must be at least 1")
	case p.Workers < 0:
		panic("Workers must be non-negative")
	}

	workers := p.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return Parameters{
		kLimit:  p.KLimit,
		xLimit:  p.XLimit,
		workers: workers,
	}
}

// Parameters is a read-only structure for sweep parameters.
type Parameters struct {
	kLimit  int
	xLimit  int
	workers int
}

// KLimit returns the largest K of the sweep.
func (p Parameters) KLimit() int {
	return p.kLimit
}

// XLimit returns the largest X of the sweep.
func (p Parameters) XLimit() int {
	return p.xLimit
}

// Workers returns the number of goroutines used by the parallel sweep.
func (p Parameters) Workers() int {
	return p.workers
}

// Ks returns the values of K in the sweep.
func (p Parameters) Ks() []int {
	Ks := make([]int, 0, p.kLimit/2)
	for K := 2; K <= p.kLimit; K += 2 {
		Ks = append(Ks, K)
	}
	return Ks
}

// Triples returns the number of (K, L, X) triples in the sweep.
func (p Parameters) Triples() int {
	n := 0
	for _, K := range p.Ks() {
		n += K * p.xLimit
	}
	return n
}
