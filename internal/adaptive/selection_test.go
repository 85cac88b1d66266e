package adaptive

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/prepwise/satprep/internal/catalog"
	"github.com/prepwise/satprep/internal/skillgraph"
)

func questionsFor(skillID string, subject skillgraph.Subject, difficulty skillgraph.Difficulty, n int) []catalog.Question {
	qs := make([]catalog.Question, n)
	for i := range qs {
		qs[i] = catalog.Question{
			ID:         fmt.Sprintf("%s-%s-%d", skillID, difficulty, i),
			Subject:    subject,
			Skill:      skillID,
			Difficulty: difficulty,
			Prompt:     "placeholder",
		}
	}
	return qs
}

// selectionEngine has one clear weakness (algebra-basics, easy recommended),
// making algebra-basics also the progression target, and one strong skill
// (reading-basics) for review.
func selectionEngine(t *testing.T, seed uint64) *Engine {
	t.Helper()
	e := NewEngine(testGraph(t), nil, WithRand(rand.New(rand.NewPCG(seed, 0))))
	setState(t, e, "algebra-basics", 30, 0.2, 2)
	setState(t, e, "reading-basics", 85, 0.9, 12)
	return e
}

func selectionPool() []catalog.Question {
	var pool []catalog.Question
	pool = append(pool, questionsFor("algebra-basics", skillgraph.SubjectMath, skillgraph.DifficultyEasy, 10)...)
	pool = append(pool, questionsFor("algebra-basics", skillgraph.SubjectMath, skillgraph.DifficultyHard, 5)...)
	pool = append(pool, questionsFor("reading-basics", skillgraph.SubjectReadingWriting, skillgraph.DifficultyMedium, 5)...)
	return pool
}

func TestSelectQuestions_Quotas(t *testing.T) {
	e := selectionEngine(t, 42)
	selected := e.SelectQuestions(selectionPool(), nil, 10, "")

	if len(selected) != 10 {
		t.Fatalf("selected %d questions, want 10", len(selected))
	}

	counts := map[SelectionReason]int{}
	for _, sq := range selected {
		counts[sq.SelectionReason]++
	}
	if counts[ReasonWeakFocus] != 7 {
		t.Errorf("weak focus = %d, want 7 (counts %v)", counts[ReasonWeakFocus], counts)
	}
	if counts[ReasonProgression] != 2 {
		t.Errorf("progression = %d, want 2 (counts %v)", counts[ReasonProgression], counts)
	}
	if counts[ReasonReview] != 1 {
		t.Errorf("review = %d, want 1 (counts %v)", counts[ReasonReview], counts)
	}

	for _, sq := range selected {
		switch sq.SelectionReason {
		case ReasonWeakFocus:
			if sq.Skill != "algebra-basics" || sq.Difficulty != skillgraph.DifficultyEasy {
				t.Errorf("weak focus pick %q is %s/%s, want algebra-basics/easy", sq.ID, sq.Skill, sq.Difficulty)
			}
		case ReasonProgression:
			if sq.Skill != "algebra-basics" || sq.Difficulty != skillgraph.DifficultyHard {
				t.Errorf("progression pick %q is %s/%s, want algebra-basics/hard", sq.ID, sq.Skill, sq.Difficulty)
			}
		case ReasonReview:
			if sq.Skill != "reading-basics" {
				t.Errorf("review pick %q targets %s, want reading-basics", sq.ID, sq.Skill)
			}
		}
	}
}

func TestSelectQuestions_NoRepeats(t *testing.T) {
	e := selectionEngine(t, 42)
	selected := e.SelectQuestions(selectionPool(), nil, 15, "")

	seen := map[string]bool{}
	for _, sq := range selected {
		if seen[sq.ID] {
			t.Errorf("question %q selected twice", sq.ID)
		}
		seen[sq.ID] = true
	}
}

func TestSelectQuestions_ExcludesSessionHistory(t *testing.T) {
	e := selectionEngine(t, 42)

	history := []string{"algebra-basics-easy-0", "algebra-basics-easy-1", "algebra-basics-hard-0"}
	selected := e.SelectQuestions(selectionPool(), history, 15, "")

	banned := map[string]bool{}
	for _, id := range history {
		banned[id] = true
	}
	for _, sq := range selected {
		if banned[sq.ID] {
			t.Errorf("question %q selected despite session history", sq.ID)
		}
	}
}

func TestSelectQuestions_Deterministic(t *testing.T) {
	a := selectionEngine(t, 99).SelectQuestions(selectionPool(), nil, 10, "")
	b := selectionEngine(t, 99).SelectQuestions(selectionPool(), nil, 10, "")

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and state produced different batches")
	}
}

func TestSelectQuestions_BackfillWhenBucketsStarve(t *testing.T) {
	e := selectionEngine(t, 42)

	// Nothing matches weak focus, progression, or review; everything should
	// arrive through backfill.
	pool := questionsFor("algebra-basics", skillgraph.SubjectMath, skillgraph.DifficultyMedium, 6)
	selected := e.SelectQuestions(pool, nil, 6, "")

	if len(selected) != 6 {
		t.Fatalf("selected %d questions, want 6", len(selected))
	}
	for _, sq := range selected {
		if sq.SelectionReason != ReasonRandomFill {
			t.Errorf("question %q has reason %q, want random_fill", sq.ID, sq.SelectionReason)
		}
	}
}

func TestSelectQuestions_ShortPool(t *testing.T) {
	e := selectionEngine(t, 42)

	pool := questionsFor("algebra-basics", skillgraph.SubjectMath, skillgraph.DifficultyEasy, 4)
	selected := e.SelectQuestions(pool, nil, 10, "")

	if len(selected) != 4 {
		t.Errorf("selected %d questions from a pool of 4, want 4", len(selected))
	}
}

func TestSelectQuestions_EmptyInputs(t *testing.T) {
	e := selectionEngine(t, 42)

	if got := e.SelectQuestions(nil, nil, 10, ""); got != nil {
		t.Errorf("nil pool: got %v, want nil", got)
	}
	if got := e.SelectQuestions(selectionPool(), nil, 0, ""); got != nil {
		t.Errorf("zero target: got %v, want nil", got)
	}
}
