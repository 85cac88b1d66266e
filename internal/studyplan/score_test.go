package studyplan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prepwise/satprep/internal/store"
)

type stubEvents struct {
	records []store.AttemptRecord
	err     error
}

func (s *stubEvents) AppendAttempt(context.Context, store.AttemptEventData) error { return nil }
func (s *stubEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (s *stubEvents) RecentAttempts(context.Context, string, int) ([]store.AttemptRecord, error) {
	return s.records, s.err
}
func (s *stubEvents) SkillAccuracy(context.Context, string, string) (float64, int, error) {
	return 0, 0, nil
}
func (s *stubEvents) LatestAttemptTime(context.Context, string, string) (time.Time, error) {
	return time.Time{}, nil
}

func attempts(n int, correct int, difficulty string, seconds int) []store.AttemptRecord {
	records := make([]store.AttemptRecord, n)
	for i := range records {
		records[i] = store.AttemptRecord{
			SkillID:    "linear-equations",
			Subject:    "math",
			Difficulty: difficulty,
			Correct:    i < correct,
			TimeMs:     seconds * 1000,
		}
	}
	return records
}

func TestCurrentScore_Fallbacks(t *testing.T) {
	ctx := context.Background()

	if got := CurrentScore(ctx, &stubEvents{}, "u1"); got != fallbackScore {
		t.Errorf("empty history: score = %d, want %d", got, fallbackScore)
	}
	if got := CurrentScore(ctx, &stubEvents{err: errors.New("db gone")}, "u1"); got != fallbackScore {
		t.Errorf("fetch error: score = %d, want %d", got, fallbackScore)
	}
}

func TestScoreFromHistory(t *testing.T) {
	tests := []struct {
		name    string
		records []store.AttemptRecord
		want    int
	}{
		{
			// base 800 + 0.8*800 = 1440, time adj 0, difficulty +50.
			name:    "steady medium practice",
			records: attempts(10, 8, "medium", 120),
			want:    1490,
		},
		{
			// base 1600, time adj clamped to +100, difficulty +100: ceiling.
			name:    "perfect fast hard",
			records: attempts(10, 10, "hard", 30),
			want:    scoreCeiling,
		},
		{
			// base 800, time adj clamped to -100, difficulty 0.
			name:    "all wrong and slow",
			records: attempts(10, 0, "easy", 300),
			want:    700,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreFromHistory(tt.records); got != tt.want {
				t.Errorf("ScoreFromHistory = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreFromHistory_Bounds(t *testing.T) {
	for correct := 0; correct <= 20; correct += 5 {
		for _, seconds := range []int{10, 120, 600} {
			got := ScoreFromHistory(attempts(20, correct, "hard", seconds))
			if got < scoreFloor || got > scoreCeiling {
				t.Errorf("score %d out of [%d,%d] for correct=%d seconds=%d",
					got, scoreFloor, scoreCeiling, correct, seconds)
			}
		}
	}
}
