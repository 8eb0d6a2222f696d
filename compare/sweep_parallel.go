package compare

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SweepParallel is the parallel version of [*Sweeper.Sweep].
// Each value of K is swept by its own goroutine, with at most
// Parameters.Workers() running at once. All goroutines share the cache.
//
// The first error, including cancellation of ctx, aborts the sweep.
func (s *Sweeper) SweepParallel(ctx context.Context) (Tally, error) {
	now := time.Now()

	wg, ctx := errgroup.WithContext(ctx)
	wg.SetLimit(s.Parameters.workers)

	var mu sync.Mutex
	var t Tally

	// Largest K first, since it has the most triples.
	Ks := s.Parameters.Ks()
	for i := len(Ks) - 1; i >= 0; i-- {
		K := Ks[i]
		wg.Go(func() error {
			tK, err := sweepK(ctx, s.evaluator.ShallowCopy(), K, s.Parameters.xLimit)
			if err != nil {
				return err
			}

			mu.Lock()
			t.Merge(tK)
			mu.Unlock()
			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return Tally{}, err
	}

	if err := s.finish(t); err != nil {
		return Tally{}, err
	}

	logrus.WithFields(logrus.Fields{
		"total":   t.Total,
		"workers": s.Parameters.workers,
		"elapsed": time.Since(now),
	}).Debug("parallel sweep finished")

	return t, nil
}
