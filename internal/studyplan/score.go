package studyplan

import (
	"context"
	"math"

	"github.com/prepwise/satprep/internal/store"
)

// Current-score model constants, on the 400-1600 SAT scale.
const (
	fallbackScore   = 1200
	scoreFloor      = 400
	scoreCeiling    = 1600
	baselineSeconds = 120.0
	historyLimit    = 100
)

// CurrentScore estimates the learner's present SAT score from recent attempt
// history. It never fails outward: an empty history or a fetch error yields
// the neutral fallback of 1200.
func CurrentScore(ctx context.Context, events store.EventRepo, userID string) int {
	records, err := events.RecentAttempts(ctx, userID, historyLimit)
	if err != nil || len(records) == 0 {
		return fallbackScore
	}
	return ScoreFromHistory(records)
}

// ScoreFromHistory computes the score estimate from an attempt list.
// Accuracy sets the base, answer speed against a 2-minute baseline adjusts
// it by up to 100 points either way, and the difficulty mix adds up to 100.
func ScoreFromHistory(records []store.AttemptRecord) int {
	if len(records) == 0 {
		return fallbackScore
	}

	total := float64(len(records))
	correct := 0.0
	totalSeconds := 0.0
	difficultySum := 0.0
	for _, r := range records {
		if r.Correct {
			correct++
		}
		totalSeconds += float64(r.TimeMs) / 1000
		difficultySum += difficultyPoints(r.Difficulty)
	}

	accuracy := correct / total
	avgSeconds := totalSeconds / total

	baseScore := 800 + accuracy*800
	timeAdjustment := clampFloat((baselineSeconds-avgSeconds)*2, -100, 100)
	difficultyAdjustment := difficultySum / total

	score := clampFloat(baseScore+timeAdjustment+difficultyAdjustment, scoreFloor, scoreCeiling)
	return int(math.Round(score))
}

func difficultyPoints(difficulty string) float64 {
	switch difficulty {
	case "medium":
		return 50
	case "hard":
		return 100
	default:
		return 0
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
