package compare

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/sp301415/polegap/gap"
	"github.com/sp301415/polegap/num"
)

// Scheme is a construction whose rate is plotted.
type Scheme int

const (
	// A3S is the A3S baseline.
	A3S Scheme = iota
	// GASPBig is GASP with r = min(K, X).
	GASPBig
	// GASPSmall is GASP with r = 1.
	GASPSmall
	// GASP is GASP with the best r.
	GASP
	// PoleGap is the PoleGap construction.
	PoleGap
)

// Schemes lists all schemes in plotting order.
var Schemes = []Scheme{A3S, GASPBig, GASPSmall, GASP, PoleGap}

// String implements [fmt.Stringer].
func (s Scheme) String() string {
	switch s {
	case A3S:
		return "A3S"
	case GASPBig:
		return "GASP_big"
	case GASPSmall:
		return "GASP_small"
	case GASP:
		return "GASP"
	case PoleGap:
		return "PoleGap"
	}
	return "Scheme(" + strconv.Itoa(int(s)) + ")"
}

// Gap returns the gap number of the scheme.
func (s Scheme) Gap(ev *gap.Evaluator, K, L, X int) (int, error) {
	switch s {
	case A3S:
		return gap.A3S(K, L, X), nil
	case GASPBig:
		return ev.Big(K, L, X), nil
	case GASPSmall:
		return ev.Small(K, L, X), nil
	case GASP:
		return ev.GASP(K, L, X), nil
	case PoleGap:
		return gap.CheckedPoleGap(K, L, X)
	}
	return 0, errors.Errorf("unknown scheme %v", s)
}

// RateSeries is the rate K*L / gap of every scheme
// as a function of a single parameter.
type RateSeries struct {
	// Label is the name of the varying parameter.
	Label string
	// Inputs are the values of the varying parameter.
	Inputs []int
	// Rates[s][i] is the rate of scheme s at Inputs[i].
	Rates map[Scheme][]float64
}

// Default grids of the rate plots.
var (
	DefaultRateK  = 14
	DefaultRateXs = num.Range(1, 81, 1)

	DefaultRateX  = 50
	DefaultRateKs = num.Range(2, 28, 2)
)

// RatesByX returns the rates for fixed K, L as X varies.
// If ev is nil, [gap.DefaultEvaluator] is used.
func RatesByX(ev *gap.Evaluator, K, L int, Xs []int) (RateSeries, error) {
	return rates(ev, "X", Xs, func(X int) (int, int, int) { return K, L, X })
}

// RatesByK returns the rates for K = L as K varies, with fixed X.
// Every K must be even.
// If ev is nil, [gap.DefaultEvaluator] is used.
func RatesByK(ev *gap.Evaluator, X int, Ks []int) (RateSeries, error) {
	return rates(ev, "K = L", Ks, func(K int) (int, int, int) { return K, K, X })
}

func rates(ev *gap.Evaluator, label string, inputs []int, triple func(int) (int, int, int)) (RateSeries, error) {
	if ev == nil {
		ev = gap.DefaultEvaluator()
	}

	series := RateSeries{
		Label:  label,
		Inputs: inputs,
		Rates:  make(map[Scheme][]float64, len(Schemes)),
	}

	for _, s := range Schemes {
		series.Rates[s] = make([]float64, len(inputs))
		for i, v := range inputs {
			K, L, X := triple(v)
			g, err := s.Gap(ev, K, L, X)
			if err != nil {
				return RateSeries{}, errors.Wrapf(err, "%v at %s = %d", s, label, v)
			}
			series.Rates[s][i] = float64(K*L) / float64(g)
		}
	}

	return series, nil
}

// RateRatios returns the rate of PoleGap divided by the rate of GASP
// at every input.
func (rs RateSeries) RateRatios() []float64 {
	poleGap, gasp := rs.Rates[PoleGap], rs.Rates[GASP]

	ratios := make([]float64, len(poleGap))
	for i := range poleGap {
		ratios[i] = poleGap[i] / gasp[i]
	}
	return ratios
}

// LargestRateIncrease returns the largest relative increase in rate
// of PoleGap over GASP.
func (rs RateSeries) LargestRateIncrease() (float64, error) {
	m, err := stats.Max(rs.RateRatios())
	if err != nil {
		return 0, errors.Wrap(err, "empty rate series")
	}
	return m - 1, nil
}

// RateSummary summarizes the ratio of PoleGap rate to GASP rate.
type RateSummary struct {
	LargestIncrease float64
	MeanRatio       float64
	MedianRatio     float64
}

// Summarize returns the summary of the rate series.
func (rs RateSeries) Summarize() (RateSummary, error) {
	ratios := rs.RateRatios()

	largest, err := rs.LargestRateIncrease()
	if err != nil {
		return RateSummary{}, err
	}

	mean, err := stats.Mean(ratios)
	if err != nil {
		return RateSummary{}, errors.Wrap(err, "mean")
	}

	median, err := stats.Median(ratios)
	if err != nil {
		return RateSummary{}, errors.Wrap(err, "median")
	}

	return RateSummary{
		LargestIncrease: largest,
		MeanRatio:       mean,
		MedianRatio:     median,
	}, nil
}

// WriteCSV writes the series as CSV, one row per input.
func (rs RateSeries) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(Schemes)+1)
	header = append(header, rs.Label)
	for _, s := range Schemes {
		header = append(header, s.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, v := range rs.Inputs {
		row := make([]string, 0, len(Schemes)+1)
		row = append(row, strconv.Itoa(v))
		for _, s := range Schemes {
			row = append(row, strconv.FormatFloat(rs.Rates[s][i], 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
