package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goserg/elodiff/internal/domain"
)

// Write prints the estimate as two lines:
//
//	Elo difference estimate: 147.2
//	95% confidence interval: [-58.9, 715.8]
func Write(w io.Writer, e domain.Estimate) error {
	_, err := fmt.Fprintf(w,
		"Elo difference estimate: %.1f\n%s%% confidence interval: [%.1f, %.1f]\n",
		e.EloDiff, Percent(e.Confidence), e.Lower, e.Upper)
	return err
}

// Percent formats a confidence level as a percentage without trailing zeros.
// A level below 1 is never printed as 100.
func Percent(confidence float64) string {
	p := confidence * 100
	s := strconv.FormatFloat(p, 'g', 12, 64)
	if rounded, _ := strconv.ParseFloat(s, 64); rounded >= 100 && p < 100 {
		return strconv.FormatFloat(p, 'f', -1, 64)
	}
	return s
}
