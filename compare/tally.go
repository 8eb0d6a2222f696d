package compare

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Outcome is the result of comparing PoleGap to GASP on a single triple.
type Outcome int

const (
	// Better means PoleGap has the strictly smaller gap.
	Better Outcome = iota
	// Equal means both gaps are the same.
	Equal
	// Worse means GASP has the strictly smaller gap.
	Worse
)

// String implements [fmt.Stringer].
func (o Outcome) String() string {
	switch o {
	case Better:
		return "better"
	case Equal:
		return "equal"
	case Worse:
		return "worse"
	}
	return "Outcome(" + strconv.Itoa(int(o)) + ")"
}

// Classify compares the gap of PoleGap to the gap of GASP.
func Classify(poleGap, gasp int) Outcome {
	switch {
	case poleGap < gasp:
		return Better
	case poleGap == gasp:
		return Equal
	case poleGap > gasp:
		return Worse
	}
	panic("unreachable")
}

// ErrInconsistentTally is returned when the outcomes of a Tally
// do not add up to its total.
var ErrInconsistentTally = errors.New("inconsistent tally")

// Tally counts the outcomes of a sweep.
type Tally struct {
	Total  int
	Better int
	Equal  int
	Worse  int
}

// Add records a single outcome.
// Panics if o is not a valid Outcome.
func (t *Tally) Add(o Outcome) {
	switch o {
	case Better:
		t.Better++
	case Equal:
		t.Equal++
	case Worse:
		t.Worse++
	default:
		panic(fmt.Sprintf("invalid outcome %v", o))
	}
	t.Total++
}

// Merge adds the counts of other to t.
func (t *Tally) Merge(other Tally) {
	t.Total += other.Total
	t.Better += other.Better
	t.Equal += other.Equal
	t.Worse += other.Worse
}

// Check returns an error if the outcomes do not add up to the total.
func (t Tally) Check() error {
	if t.Better+t.Equal+t.Worse != t.Total {
		return errors.Wrapf(ErrInconsistentTally, "better %d + equal %d + worse %d != total %d",
			t.Better, t.Equal, t.Worse, t.Total)
	}
	return nil
}

// BetterPercent returns the percentage of triples where PoleGap is strictly better.
// Returns 0 for an empty tally.
func (t Tally) BetterPercent() float64 {
	if t.Total == 0 {
		return 0
	}
	return 100 * float64(t.Better) / float64(t.Total)
}
