package gap

import (
	"github.com/tuneinsight/lattigo/v6/utils"
)

// PoleNumberTable is the table of pole numbers f[i] + g[j]
// of all products of an f-side and a g-side basis function.
type PoleNumberTable struct {
	F []int
	G []int

	Entries [][]int
}

// NewPoleNumberTable creates a new PoleNumberTable.
func NewPoleNumberTable(f, g []int) PoleNumberTable {
	entries := make([][]int, len(f))
	for i := 0; i < len(f); i++ {
		entries[i] = make([]int, len(g))
		for j := 0; j < len(g); j++ {
			entries[i][j] = f[i] + g[j]
		}
	}

	return PoleNumberTable{
		F:       f,
		G:       g,
		Entries: entries,
	}
}

// NewGASPTable creates the PoleNumberTable of the GASP degrees with parameter r.
func NewGASPTable(K, L, X, r int) PoleNumberTable {
	return NewPoleNumberTable(FDegrees(K, L, X, r), GDegrees(K, L, X))
}

// Rows returns the number of rows of the table.
func (t PoleNumberTable) Rows() int {
	return len(t.F)
}

// Cols returns the number of columns of the table.
func (t PoleNumberTable) Cols() int {
	return len(t.G)
}

// Distinct returns the distinct pole numbers of the table in increasing order.
func (t PoleNumberTable) Distinct() []int {
	seen := make(map[int]bool, len(t.F)+len(t.G))
	for i := 0; i < len(t.Entries); i++ {
		for j := 0; j < len(t.Entries[i]); j++ {
			seen[t.Entries[i][j]] = true
		}
	}
	return utils.GetSortedKeys(seen)
}

// Gap returns the number of distinct pole numbers of the table.
func (t PoleNumberTable) Gap() int {
	return len(t.Distinct())
}
