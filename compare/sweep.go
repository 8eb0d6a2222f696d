package compare

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sp301415/polegap/gap"
)

// Sweeper compares PoleGap and GASP over the grid given by Parameters.
type Sweeper struct {
	Parameters Parameters

	evaluator *gap.Evaluator
}

// NewSweeper creates a new Sweeper memoizing GASP evaluations into cache.
// If cache is nil, a new [gap.MapCache] is used.
func NewSweeper(params Parameters, cache gap.Cache) *Sweeper {
	return &Sweeper{
		Parameters: params,
		evaluator:  gap.NewEvaluator(cache),
	}
}

// Evaluator returns the underlying GASP evaluator.
func (s *Sweeper) Evaluator() *gap.Evaluator {
	return s.evaluator
}

// Sweep visits every triple of the grid in order and tallies the outcomes.
// It returns an error if the tally is inconsistent or ctx is cancelled,
// in which case the tally must not be reported.
func (s *Sweeper) Sweep(ctx context.Context) (Tally, error) {
	now := time.Now()

	var t Tally
	for _, K := range s.Parameters.Ks() {
		tK, err := sweepK(ctx, s.evaluator, K, s.Parameters.xLimit)
		if err != nil {
			return Tally{}, err
		}
		t.Merge(tK)
	}

	if err := s.finish(t); err != nil {
		return Tally{}, err
	}

	logrus.WithFields(logrus.Fields{
		"total":   t.Total,
		"elapsed": time.Since(now),
	}).Debug("sweep finished")

	return t, nil
}

// finish verifies the tally against the grid.
func (s *Sweeper) finish(t Tally) error {
	if err := t.Check(); err != nil {
		return err
	}

	if t.Total != s.Parameters.Triples() {
		return errors.Wrapf(ErrInconsistentTally, "visited %d triples, expected %d", t.Total, s.Parameters.Triples())
	}

	return nil
}

// sweepK tallies all triples (K, L, X) with L in [1, K] and X in [1, xLimit].
func sweepK(ctx context.Context, ev *gap.Evaluator, K, xLimit int) (Tally, error) {
	var t Tally
	for L := 1; L <= K; L++ {
		if err := ctx.Err(); err != nil {
			return Tally{}, err
		}

		for X := 1; X <= xLimit; X++ {
			poleGap, err := gap.CheckedPoleGap(K, L, X)
			if err != nil {
				return Tally{}, errors.Wrapf(err, "PoleGap(%d, %d, %d)", K, L, X)
			}
			t.Add(Classify(poleGap, ev.GASP(K, L, X)))
		}
	}

	if err := t.Check(); err != nil {
		return Tally{}, errors.Wrapf(err, "K=%d", K)
	}

	logrus.WithFields(logrus.Fields{
		"K":      K,
		"better": t.Better,
		"equal":  t.Equal,
		"worse":  t.Worse,
	}).Debug("swept block")

	return t, nil
}
