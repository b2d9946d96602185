package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

// ExpectedScore returns the expected score of a player rated diff points
// above the opponent: 1 / (1 + 10^(-diff/400)).
func ExpectedScore(diff float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, -diff/400.0))
}

// Diff is the inverse of ExpectedScore.
// Score must be in (0, 1), the result is ±Inf at the bounds.
func Diff(score float64) float64 {
	return -400 * math.Log10(1/score-1)
}

// Score returns the average points per game for the given results.
// NaN if no games were played.
func Score(wins, draws, losses int) float64 {
	points := float64(wins)*float64(Win) + float64(draws)*float64(Draw) + float64(losses)*float64(Lose)
	return points / (float64(wins) + float64(draws) + float64(losses))
}
