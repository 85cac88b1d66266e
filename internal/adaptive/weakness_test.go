package adaptive

import (
	"testing"

	"github.com/prepwise/satprep/internal/skillgraph"
)

// setState overwrites the live state for a skill so ranking behavior can be
// probed without replaying hundreds of responses.
func setState(t *testing.T, e *Engine, skillID string, prof, acc float64, attempts int) {
	t.Helper()
	st := e.State(skillID)
	if st == nil {
		t.Fatalf("unknown skill %q", skillID)
	}
	st.Proficiency = prof
	st.RecentAccuracy = acc
	st.Attempts = attempts
	st.Level = masteryLevel(st)
}

func TestIdentifyWeaknesses_Ordering(t *testing.T) {
	e := testEngine(t)

	// Both are weakness candidates with identical attempt counts, so the
	// lower proficiency and accuracy must rank first.
	setState(t, e, "algebra-basics", 40, 0.3, 10)
	setState(t, e, "reading-basics", 65, 0.55, 10)

	weaknesses := e.IdentifyWeaknesses("")
	if len(weaknesses) != 2 {
		t.Fatalf("got %d weaknesses, want 2: %+v", len(weaknesses), weaknesses)
	}
	if weaknesses[0].SkillID != "algebra-basics" {
		t.Errorf("top weakness = %q, want algebra-basics", weaknesses[0].SkillID)
	}
	if weaknesses[0].WeaknessScore <= weaknesses[1].WeaknessScore {
		t.Errorf("scores not descending: %v then %v",
			weaknesses[0].WeaknessScore, weaknesses[1].WeaknessScore)
	}

	// acc gap 0.4*0.7 + prof gap 0.4*0.6 + sparsity 0, scaled by 100.
	if got, want := weaknesses[0].WeaknessScore, 52.0; got != want {
		t.Errorf("algebra-basics score = %v, want %v", got, want)
	}
}

func TestIdentifyWeaknesses_InclusionRule(t *testing.T) {
	tests := []struct {
		name string
		prof float64
		acc  float64
		want bool
	}{
		{"low proficiency alone", 60, 0.9, true},
		{"low accuracy alone", 85, 0.5, true},
		{"both healthy", 75, 0.7, false},
		{"boundary proficiency", 70, 0.7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEngine(t)
			setState(t, e, "algebra-basics", tt.prof, tt.acc, 10)

			found := false
			for _, wp := range e.IdentifyWeaknesses(skillgraph.SubjectMath) {
				if wp.SkillID == "algebra-basics" {
					found = true
				}
			}
			if found != tt.want {
				t.Errorf("included = %v, want %v", found, tt.want)
			}
		})
	}
}

func TestIdentifyWeaknesses_SkipsLocked(t *testing.T) {
	e := testEngine(t)

	// algebra-advanced starts locked; even terrible numbers must not rank it.
	setState(t, e, "algebra-advanced", 10, 0.1, 3)

	for _, wp := range e.IdentifyWeaknesses("") {
		if wp.SkillID == "algebra-advanced" {
			t.Fatal("locked skill appeared in weakness ranking")
		}
	}
}

func TestIdentifyWeaknesses_SubjectFilter(t *testing.T) {
	e := testEngine(t)
	setState(t, e, "algebra-basics", 40, 0.3, 5)
	setState(t, e, "reading-basics", 40, 0.3, 5)

	for _, wp := range e.IdentifyWeaknesses(skillgraph.SubjectMath) {
		if wp.SkillID == "reading-basics" {
			t.Fatal("reading skill returned for math-only scan")
		}
	}
}

func TestWeaknessPriorityBands(t *testing.T) {
	tests := []struct {
		score          float64
		wantPriority   Priority
		wantDifficulty skillgraph.Difficulty
	}{
		{95, PriorityCritical, skillgraph.DifficultyEasy},
		{80, PriorityHigh, skillgraph.DifficultyEasy},
		{61, PriorityHigh, skillgraph.DifficultyEasy},
		{60, PriorityMedium, skillgraph.DifficultyMedium},
		{41, PriorityMedium, skillgraph.DifficultyMedium},
		{40, PriorityLow, skillgraph.DifficultyMedium},
		{10, PriorityLow, skillgraph.DifficultyMedium},
	}
	for _, tt := range tests {
		if got := weaknessPriority(tt.score); got != tt.wantPriority {
			t.Errorf("weaknessPriority(%v) = %q, want %q", tt.score, got, tt.wantPriority)
		}
		if got := weaknessDifficulty(tt.score); got != tt.wantDifficulty {
			t.Errorf("weaknessDifficulty(%v) = %q, want %q", tt.score, got, tt.wantDifficulty)
		}
	}
}

func TestNextSkill(t *testing.T) {
	t.Run("top weakness wins", func(t *testing.T) {
		e := testEngine(t)
		setState(t, e, "algebra-basics", 30, 0.2, 5)

		next, ok := e.NextSkill(skillgraph.SubjectMath)
		if !ok || next.ID != "algebra-basics" {
			t.Errorf("NextSkill = (%q, %v), want algebra-basics", next.ID, ok)
		}
	})

	t.Run("falls back to unlocked unmastered", func(t *testing.T) {
		e := testEngine(t)
		// Healthy enough to escape the weakness scan, not yet mastered.
		setState(t, e, "algebra-basics", 75, 0.7, 8)
		setState(t, e, "reading-basics", 75, 0.7, 8)

		next, ok := e.NextSkill("")
		if !ok {
			t.Fatal("expected a next skill")
		}
		if st := e.State(next.ID); !st.Unlocked || st.Level == LevelMastered {
			t.Errorf("NextSkill returned %q which is locked or mastered", next.ID)
		}
	})

	t.Run("none when everything mastered or locked", func(t *testing.T) {
		e := testEngine(t)
		for _, id := range []string{"algebra-basics", "algebra-advanced", "algebra-expert", "reading-basics"} {
			setState(t, e, id, 90, 0.9, 15)
		}
		e.refreshUnlocks()

		if _, ok := e.NextSkill(""); ok {
			t.Error("expected no next skill with the full catalog mastered")
		}
	})
}
