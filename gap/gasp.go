package gap

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/sp301415/polegap/num"
)

// Evaluator computes gap numbers of the GASP construction.
//
// Evaluator is not safe for concurrent use.
// Use [*Evaluator.ShallowCopy] to obtain one per goroutine.
type Evaluator struct {
	cache Cache

	sumset *bitset.BitSet
}

// NewEvaluator creates a new Evaluator memoizing into cache.
// If cache is nil, a new [MapCache] is used.
func NewEvaluator(cache Cache) *Evaluator {
	if cache == nil {
		cache = NewMapCache()
	}

	return &Evaluator{
		cache:  cache,
		sumset: bitset.New(0),
	}
}

// ShallowCopy creates a shallow copy of Evaluator that is thread-safe.
// The copy shares the cache of the original.
func (e *Evaluator) ShallowCopy() *Evaluator {
	return &Evaluator{
		cache:  e.cache,
		sumset: bitset.New(0),
	}
}

// Cache returns the cache of the Evaluator.
func (e *Evaluator) Cache() Cache {
	return e.cache
}

// Value returns the gap number of GASP with a fixed parameter r,
// which is the number of distinct sums of the f-side and g-side degrees.
//
// Panics if any of K, L, X is not positive or r is not in [1, min(K, X)].
func (e *Evaluator) Value(K, L, X, r int) int {
	key := CacheKey{K: K, L: L, X: X, R: r}
	if v, ok := e.cache.Get(key); ok {
		return v
	}

	SumsetAssign(FDegrees(K, L, X, r), GDegrees(K, L, X), e.sumset)
	v := int(e.sumset.Count())

	e.cache.Add(key, v)
	return v
}

// Curve returns Value(K, L, X, r) for r = 1, ..., min(K, X).
func (e *Evaluator) Curve(K, L, X int) []int {
	checkParameters(K, L, X)

	curve := make([]int, min(K, X))
	for r := 1; r <= min(K, X); r++ {
		curve[r-1] = e.Value(K, L, X, r)
	}
	return curve
}

// Small returns the gap number of GASP with r = 1,
// minimized over both orientations.
func (e *Evaluator) Small(K, L, X int) int {
	return min(e.Value(K, L, X, 1), e.Value(L, K, X, 1))
}

// Big returns the gap number of GASP with r = min(K, X),
// minimized over both orientations.
func (e *Evaluator) Big(K, L, X int) int {
	return min(e.Value(K, L, X, min(K, X)), e.Value(L, K, X, min(L, X)))
}

// GASP returns the smallest gap number of GASP over all r
// and both orientations.
func (e *Evaluator) GASP(K, L, X int) int {
	return min(num.MinSlice(e.Curve(K, L, X)), num.MinSlice(e.Curve(L, K, X)))
}

// Old returns min(Small, Big).
// This only considers the boundary values of r,
// so it can be strictly larger than GASP, e.g. for K = L = X = 3.
func (e *Evaluator) Old(K, L, X int) int {
	return min(e.Small(K, L, X), e.Big(K, L, X))
}

var (
	defaultEvaluator   = NewEvaluator(NewMapCache())
	defaultEvaluatorMu sync.Mutex
)

// DefaultEvaluator returns a thread-safe copy of the package-level Evaluator.
// All copies share the same process-wide cache.
func DefaultEvaluator() *Evaluator {
	return defaultEvaluator.ShallowCopy()
}

// GASPValue calls [*Evaluator.Value] on the package-level Evaluator.
func GASPValue(K, L, X, r int) int {
	defaultEvaluatorMu.Lock()
	defer defaultEvaluatorMu.Unlock()
	return defaultEvaluator.Value(K, L, X, r)
}

// GASPCurve calls [*Evaluator.Curve] on the package-level Evaluator.
func GASPCurve(K, L, X int) []int {
	defaultEvaluatorMu.Lock()
	defer defaultEvaluatorMu.Unlock()
	return defaultEvaluator.Curve(K, L, X)
}

// GASPSmall calls [*Evaluator.Small] on the package-level Evaluator.
func GASPSmall(K, L, X int) int {
	defaultEvaluatorMu.Lock()
	defer defaultEvaluatorMu.Unlock()
	return defaultEvaluator.Small(K, L, X)
}

// GASPBig calls [*Evaluator.Big] on the package-level Evaluator.
func GASPBig(K, L, X int) int {
	defaultEvaluatorMu.Lock()
	defer defaultEvaluatorMu.Unlock()
	return defaultEvaluator.Big(K, L, X)
}

// GASP calls [*Evaluator.GASP] on the package-level Evaluator.
func GASP(K, L, X int) int {
	defaultEvaluatorMu.Lock()
	defer defaultEvaluatorMu.Unlock()
	return defaultEvaluator.GASP(K, L, X)
}

// GASPOld calls [*Evaluator.Old] on the package-level Evaluator.
func GASPOld(K, L, X int) int {
	defaultEvaluatorMu.Lock()
	defer defaultEvaluatorMu.Unlock()
	return defaultEvaluator.Old(K, L, X)
}
