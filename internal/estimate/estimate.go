// Package estimate derives an Elo difference and its confidence interval
// from a win/draw/loss tally using the normal approximation of the score.
package estimate

import (
	"errors"
	"fmt"
	"math"

	"github.com/goserg/elodiff/internal/domain"
	"github.com/goserg/elodiff/internal/elo"
)

const (
	DefaultConfidence = 0.95

	// eps keeps scores away from 0 and 1 where the Elo difference is infinite.
	eps = 1e-6
)

var ErrInvalidInput = errors.New("invalid input")

// Estimate returns the Elo difference implied by the tally together with
// a two-sided interval at the given confidence level.
func Estimate(t domain.Tally, confidence float64) (domain.Estimate, error) {
	if err := validate(t, confidence); err != nil {
		return domain.Estimate{}, err
	}
	n := float64(t.Games())

	score := clamp(elo.Score(t.Wins, t.Draws, t.Losses))
	se := math.Sqrt(score * (1 - score) / n)
	z := Quantile(confidence)
	lo := clamp(score - z*se)
	hi := clamp(score + z*se)

	return domain.Estimate{
		Games:      t.Games(),
		Score:      score,
		Confidence: confidence,
		EloDiff:    elo.Diff(score),
		Lower:      elo.Diff(lo),
		Upper:      elo.Diff(hi),
		LOS:        LOS(t),
	}, nil
}

func EstimateDefault(t domain.Tally) (domain.Estimate, error) {
	return Estimate(t, DefaultConfidence)
}

// Quantile returns z such that a standard normal variable falls in [-z, z]
// with the given probability.
func Quantile(confidence float64) float64 {
	return math.Sqrt2 * math.Erfinv(confidence)
}

// LOS is the likelihood of superiority of the side owning the tally.
// Draws carry no information and are ignored.
func LOS(t domain.Tally) float64 {
	wins, losses := float64(t.Wins), float64(t.Losses)
	if wins+losses == 0 {
		return 0.5
	}
	return 0.5 + 0.5*math.Erf((wins-losses)/math.Sqrt(2*(wins+losses)))
}

func validate(t domain.Tally, confidence float64) error {
	switch {
	case t.Wins < 0:
		return fmt.Errorf("%w: negative wins %d", ErrInvalidInput, t.Wins)
	case t.Draws < 0:
		return fmt.Errorf("%w: negative draws %d", ErrInvalidInput, t.Draws)
	case t.Losses < 0:
		return fmt.Errorf("%w: negative losses %d", ErrInvalidInput, t.Losses)
	case t.Wins > math.MaxInt-t.Draws, t.Wins+t.Draws > math.MaxInt-t.Losses:
		return fmt.Errorf("%w: too many games", ErrInvalidInput)
	case t.Games() == 0:
		return fmt.Errorf("%w: no games played", ErrInvalidInput)
	case !(confidence > 0 && confidence < 1):
		return fmt.Errorf("%w: confidence %v is outside (0, 1)", ErrInvalidInput, confidence)
	}
	return nil
}

func clamp(score float64) float64 {
	return math.Min(math.Max(score, eps), 1-eps)
}
