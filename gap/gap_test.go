package gap_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sp301415/polegap/gap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	K, L, X int

	PoleGap int
	GASP    int
	Small   int
	Big     int
	Old     int
	A3S     int
	Curve   []int
}

var testCases = []testCase{
	{K: 2, L: 1, X: 1, PoleGap: 5, GASP: 5, Small: 5, Big: 5, Old: 5, A3S: 5, Curve: []int{5}},
	{K: 4, L: 4, X: 4, PoleGap: 36, GASP: 36, Small: 41, Big: 39, Old: 39, A3S: 39, Curve: []int{41, 36, 37, 39}},
	{K: 6, L: 3, X: 5, PoleGap: 43, GASP: 43, Small: 45, Big: 43, Old: 43, A3S: 43, Curve: []int{54, 47, 43, 43, 43}},
	{K: 3, L: 4, X: 7, PoleGap: 39, GASP: 37, Small: 47, Big: 37, Old: 37, A3S: 43, Curve: []int{47, 39, 37}},
	{K: 8, L: 5, X: 20, PoleGap: 122, GASP: 119, Small: 182, Big: 119, Old: 119, A3S: 167, Curve: []int{240, 162, 139, 127, 122, 121, 119, 119}},
	{K: 14, L: 14, X: 10, PoleGap: 329, GASP: 298, Small: 331, Big: 359, Old: 331, A3S: 359, Curve: []int{331, 298, 301, 304, 307, 318, 329, 340, 351, 359}},
}

func TestPoleGap(t *testing.T) {
	t.Run("Formula", func(t *testing.T) {
		assert.Equal(t, 5, gap.PoleGap(2, 1, 1))
		assert.Equal(t, 20, gap.PoleGap(4, 2, 3))
		assert.Equal(t, 20, gap.PoleGap(2, 4, 3))
		assert.Equal(t, 11, gap.PoleGap(3, 2, 1))
		assert.Equal(t, 42, gap.PoleGap(4, 6, 2))
	})

	t.Run("Cases", func(t *testing.T) {
		for _, tc := range testCases {
			assert.Equal(t, tc.PoleGap, gap.PoleGap(tc.K, tc.L, tc.X), "K=%d L=%d X=%d", tc.K, tc.L, tc.X)
		}
	})

	t.Run("BothOdd", func(t *testing.T) {
		_, err := gap.CheckedPoleGap(3, 5, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, gap.ErrBothOdd))
		assert.Equal(t, gap.ErrBothOdd, errors.Cause(err))

		assert.Panics(t, func() { gap.PoleGap(1, 1, 1) })
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := gap.CheckedPoleGap(2, 0, 1)
		assert.True(t, errors.Is(err, gap.ErrInvalidParameters))
	})
}

func TestA3S(t *testing.T) {
	for _, tc := range testCases {
		assert.Equal(t, tc.A3S, gap.A3S(tc.K, tc.L, tc.X), "K=%d L=%d X=%d", tc.K, tc.L, tc.X)
	}
}

func TestDegrees(t *testing.T) {
	t.Run("Small", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2}, gap.FDegrees(2, 1, 1, 1))
		assert.Equal(t, []int{0, 2}, gap.GDegrees(2, 1, 1))
	})

	t.Run("Truncated", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 6, 7, 9, 10, 12}, gap.FDegrees(3, 2, 5, 2))
		assert.Equal(t, []int{0, 3, 6, 7, 8, 9, 10}, gap.GDegrees(3, 2, 5))
	})

	t.Run("InvalidRepetition", func(t *testing.T) {
		assert.Panics(t, func() { gap.FDegrees(3, 2, 5, 0) })
		assert.Panics(t, func() { gap.FDegrees(3, 2, 5, 4) })
		assert.Panics(t, func() { gap.FDegrees(3, 2, 2, 3) })
	})

	t.Run("Sumset", func(t *testing.T) {
		s := gap.Sumset([]int{0, 1, 2}, []int{0, 2})
		assert.Equal(t, uint(5), s.Count())
		for i := uint(0); i < 5; i++ {
			assert.True(t, s.Test(i))
		}
		assert.False(t, s.Test(5))
	})
}

func TestEvaluator(t *testing.T) {
	evaluators := map[string]*gap.Evaluator{
		"MapCache": gap.NewEvaluator(gap.NewMapCache()),
		"LRUCache": gap.NewEvaluator(gap.NewLRUCache(8)),
	}

	for name, ev := range evaluators {
		t.Run(name, func(t *testing.T) {
			for _, tc := range testCases {
				assert.Equal(t, tc.Curve, ev.Curve(tc.K, tc.L, tc.X))
				assert.Equal(t, tc.GASP, ev.GASP(tc.K, tc.L, tc.X))
				assert.Equal(t, tc.Small, ev.Small(tc.K, tc.L, tc.X))
				assert.Equal(t, tc.Big, ev.Big(tc.K, tc.L, tc.X))
				assert.Equal(t, tc.Old, ev.Old(tc.K, tc.L, tc.X))
			}
		})
	}

	t.Run("ValueSingle", func(t *testing.T) {
		assert.Equal(t, 5, gap.GASPValue(2, 1, 1, 1))
	})

	t.Run("OldDiverges", func(t *testing.T) {
		assert.Equal(t, []int{24, 22, 23}, gap.GASPCurve(3, 3, 3))
		assert.Equal(t, 22, gap.GASP(3, 3, 3))
		assert.Equal(t, 23, gap.GASPOld(3, 3, 3))
		assert.Equal(t, 36, gap.GASP(4, 4, 4))
		assert.Equal(t, 39, gap.GASPOld(4, 4, 4))
	})

	t.Run("PackageLevel", func(t *testing.T) {
		for _, tc := range testCases {
			assert.Equal(t, tc.GASP, gap.GASP(tc.K, tc.L, tc.X))
			assert.Equal(t, tc.Small, gap.GASPSmall(tc.K, tc.L, tc.X))
			assert.Equal(t, tc.Big, gap.GASPBig(tc.K, tc.L, tc.X))
		}
	})

	t.Run("Memoized", func(t *testing.T) {
		cache := gap.NewMapCache()
		ev := gap.NewEvaluator(cache)
		ev.Curve(4, 4, 4)
		assert.Equal(t, 4, cache.Len())

		v, ok := cache.Get(gap.CacheKey{K: 4, L: 4, X: 4, R: 2})
		assert.True(t, ok)
		assert.Equal(t, 36, v)

		ev.Curve(4, 4, 4)
		assert.Equal(t, 4, cache.Len())
	})

	t.Run("ShallowCopy", func(t *testing.T) {
		ev := gap.NewEvaluator(nil)
		evCopy := ev.ShallowCopy()
		assert.Equal(t, 36, evCopy.GASP(4, 4, 4))
		assert.Same(t, ev.Cache(), evCopy.Cache())
		assert.Equal(t, 4, ev.Cache().Len())
	})

	t.Run("InvalidRepetition", func(t *testing.T) {
		ev := gap.NewEvaluator(nil)
		assert.Panics(t, func() { ev.Value(4, 4, 4, 5) })
		assert.Panics(t, func() { ev.Value(4, 4, 0, 1) })
	})
}

func TestLRUCache(t *testing.T) {
	c := gap.NewLRUCache(2)
	c.Add(gap.CacheKey{K: 1, L: 1, X: 1, R: 1}, 3)
	c.Add(gap.CacheKey{K: 2, L: 1, X: 1, R: 1}, 5)
	c.Add(gap.CacheKey{K: 3, L: 1, X: 1, R: 1}, 7)
	assert.Equal(t, 2, c.Len())

	_, ok := c.Get(gap.CacheKey{K: 1, L: 1, X: 1, R: 1})
	assert.False(t, ok)

	v, ok := c.Get(gap.CacheKey{K: 3, L: 1, X: 1, R: 1})
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	assert.Panics(t, func() { gap.NewLRUCache(0) })
}

func TestPoleNumberTable(t *testing.T) {
	tb := gap.NewGASPTable(2, 1, 1, 1)
	assert.Equal(t, 3, tb.Rows())
	assert.Equal(t, 2, tb.Cols())
	assert.Equal(t, [][]int{{0, 2}, {1, 3}, {2, 4}}, tb.Entries)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, tb.Distinct())

	for _, tc := range testCases {
		for r := 1; r <= min(tc.K, tc.X); r++ {
			assert.Equal(t, tc.Curve[r-1], gap.NewGASPTable(tc.K, tc.L, tc.X, r).Gap())
		}
	}
}

func TestWeierstrassMonomial(t *testing.T) {
	genus := 2

	for _, n := range []int{0, 2, 4, 5, 6, 7, 9, 12} {
		m, err := gap.WeierstrassMonomial(genus, n)
		require.NoError(t, err)
		assert.Equal(t, n, m.PoleOrder(genus))
		assert.LessOrEqual(t, m.YDegree, 1)
	}

	m, err := gap.WeierstrassMonomial(genus, 7)
	require.NoError(t, err)
	assert.Equal(t, gap.Monomial{XDegree: 1, YDegree: 1}, m)

	for _, n := range []int{-2, 1, 3} {
		_, err := gap.WeierstrassMonomial(genus, n)
		assert.True(t, errors.Is(err, gap.ErrNotInSemigroup), "n=%d", n)
	}

	_, err = gap.WeierstrassMonomial(-1, 4)
	assert.Error(t, err)

	assert.Equal(t, []int{1, 3}, gap.Gaps(2))
	assert.Equal(t, []int{1, 3, 5}, gap.Gaps(3))
	assert.Len(t, gap.Gaps(7), 7)
}
