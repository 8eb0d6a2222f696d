package compare

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Report writes the tally and the percentage of triples where PoleGap wins.
func Report(w io.Writer, t Tally) error {
	if err := t.Check(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "{\"total\": %d, \"better\": %d, \"equal\": %d, \"worse\": %d}\n",
		t.Total, t.Better, t.Equal, t.Worse); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "PoleGap is better than GASP in %s%% of cases\n", formatPercent(t.BetterPercent()))
	return err
}

// formatPercent prints p in shortest round-trip form,
// keeping one decimal for whole numbers (14.0, not 14).
func formatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
