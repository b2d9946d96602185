package elo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedScore(t *testing.T) {
	tests := []struct {
		name string
		diff float64
		want float64
	}{
		{
			name: "same rating",
			diff: 0,
			want: 0.5,
		},
		{
			name: "400 above",
			diff: 400,
			want: 10.0 / 11.0,
		},
		{
			name: "400 below",
			diff: -400,
			want: 1.0 / 11.0,
		},
		{
			name: "100 above",
			diff: 100,
			want: 0.6400649998028851,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExpectedScore(tt.diff), 1e-12)
		})
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{
			name:  "even",
			score: 0.5,
			want:  0,
		},
		{
			name:  "ten to one",
			score: 10.0 / 11.0,
			want:  400,
		},
		{
			name:  "one to ten",
			score: 1.0 / 11.0,
			want:  -400,
		},
		{
			name:  "three quarters",
			score: 0.75,
			want:  190.84850188786498,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Diff(tt.score), 1e-9)
		})
	}
}

func TestDiffBounds(t *testing.T) {
	assert.True(t, math.IsInf(Diff(1), 1))
	assert.True(t, math.IsInf(Diff(0), -1))
}

func TestDiffInvertsExpectedScore(t *testing.T) {
	for _, diff := range []float64{-800, -350.5, -1, 0, 12.25, 200, 799} {
		assert.InDelta(t, diff, Diff(ExpectedScore(diff)), 1e-9, "diff %v", diff)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		wins   int
		draws  int
		losses int
		want   float64
	}{
		{
			name: "all wins",
			wins: 3,
			want: 1,
		},
		{
			name:   "all losses",
			losses: 4,
			want:   0,
		},
		{
			name:  "all draws",
			draws: 7,
			want:  0.5,
		},
		{
			name:   "mixed",
			wins:   6,
			draws:  2,
			losses: 2,
			want:   0.7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.wins, tt.draws, tt.losses), 1e-15)
		})
	}
}

func TestScoreNoGames(t *testing.T) {
	assert.True(t, math.IsNaN(Score(0, 0, 0)))
}
