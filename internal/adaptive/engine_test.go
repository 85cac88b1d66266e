package adaptive

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/prepwise/satprep/internal/skillgraph"
	"github.com/prepwise/satprep/internal/store"
)

// testGraph builds a small three-level catalog:
//
//	algebra-basics -> algebra-advanced -> algebra-expert
//	reading-basics (independent root)
func testGraph(t *testing.T) *skillgraph.Graph {
	t.Helper()
	g, err := skillgraph.New([]skillgraph.Skill{
		{ID: "algebra-basics", Name: "Algebra Basics", Subject: skillgraph.SubjectMath, Domain: "algebra"},
		{ID: "algebra-advanced", Name: "Algebra Advanced", Subject: skillgraph.SubjectMath, Domain: "algebra",
			Prerequisites: []string{"algebra-basics"}},
		{ID: "algebra-expert", Name: "Algebra Expert", Subject: skillgraph.SubjectMath, Domain: "algebra",
			Prerequisites: []string{"algebra-advanced"}},
		{ID: "reading-basics", Name: "Reading Basics", Subject: skillgraph.SubjectReadingWriting, Domain: "information-ideas"},
	})
	if err != nil {
		t.Fatalf("build test graph: %v", err)
	}
	return g
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(testGraph(t), nil, WithRand(rand.New(rand.NewPCG(1, 2))))
}

func correctResponse() Response {
	return Response{IsCorrect: true, Difficulty: skillgraph.DifficultyMedium, ExpectedAccuracy: 0.2}
}

func wrongResponse() Response {
	return Response{IsCorrect: false, Difficulty: skillgraph.DifficultyMedium, ExpectedAccuracy: 0.8}
}

// masterSkill drives a skill to mastered with repeated correct answers.
func masterSkill(t *testing.T, e *Engine, skillID string) {
	t.Helper()
	for i := 0; i < 20; i++ {
		e.RecordResponse(skillID, correctResponse())
		if e.State(skillID).Level == LevelMastered {
			return
		}
	}
	t.Fatalf("skill %q never reached mastery: %+v", skillID, e.State(skillID))
}

func TestNewEngine_Defaults(t *testing.T) {
	e := testEngine(t)

	st := e.State("algebra-basics")
	if st == nil {
		t.Fatal("missing state for catalog skill")
	}
	if st.Proficiency != 50 {
		t.Errorf("initial proficiency = %v, want 50", st.Proficiency)
	}
	if st.Level != LevelNone {
		t.Errorf("initial level = %q, want none", st.Level)
	}
	if !st.Unlocked {
		t.Error("root skill should start unlocked")
	}
	if e.State("algebra-advanced").Unlocked {
		t.Error("skill with unmastered prerequisite should start locked")
	}
}

func TestRecordResponse_UnknownSkillNoOp(t *testing.T) {
	e := testEngine(t)
	if change := e.RecordResponse("nonexistent", correctResponse()); change != nil {
		t.Errorf("expected nil change for unknown skill, got %+v", change)
	}
}

func TestRecordResponse_EloAndEWMA(t *testing.T) {
	e := testEngine(t)
	e.RecordResponse("algebra-basics", Response{IsCorrect: true, ExpectedAccuracy: 0.5})

	st := e.State("algebra-basics")
	if got, want := st.Proficiency, 50+KFactor*0.5; got != want {
		t.Errorf("proficiency = %v, want %v", got, want)
	}
	if got, want := st.RecentAccuracy, Alpha; got != want {
		t.Errorf("recent accuracy = %v, want %v", got, want)
	}
	if st.Attempts != 1 || st.CorrectAttempts != 1 {
		t.Errorf("counters = %d/%d, want 1/1", st.CorrectAttempts, st.Attempts)
	}
}

// Score bounds: proficiency stays in [0,100], recent accuracy in [0,1],
// across arbitrary response sequences.
func TestRecordResponse_Bounds(t *testing.T) {
	e := testEngine(t)
	rng := rand.New(rand.NewPCG(7, 7))

	for i := 0; i < 500; i++ {
		resp := Response{
			IsCorrect:        rng.IntN(2) == 0,
			ExpectedAccuracy: rng.Float64(),
		}
		e.RecordResponse("algebra-basics", resp)

		st := e.State("algebra-basics")
		if st.Proficiency < 0 || st.Proficiency > 100 {
			t.Fatalf("proficiency out of bounds after %d responses: %v", i+1, st.Proficiency)
		}
		if st.RecentAccuracy < 0 || st.RecentAccuracy > 1 {
			t.Fatalf("recent accuracy out of bounds after %d responses: %v", i+1, st.RecentAccuracy)
		}
	}
}

// Mastery requires the attempt threshold: nine perfect answers are not
// enough, the tenth can be.
func TestMastery_RequiresAttemptThreshold(t *testing.T) {
	e := testEngine(t)

	for i := 0; i < MasteryAttempts-1; i++ {
		e.RecordResponse("algebra-basics", correctResponse())
		if e.State("algebra-basics").Level == LevelMastered {
			t.Fatalf("mastered after only %d attempts", i+1)
		}
	}

	e.RecordResponse("algebra-basics", correctResponse())
	if e.State("algebra-basics").Level != LevelMastered {
		t.Errorf("level after 10 perfect attempts = %q, want mastered (state %+v)",
			e.State("algebra-basics").Level, e.State("algebra-basics"))
	}
}

func TestMasteryLevel_StateMachine(t *testing.T) {
	tests := []struct {
		name  string
		state SkillState
		want  MasteryLevel
	}{
		{"fresh", SkillState{}, LevelNone},
		{"one attempt", SkillState{Attempts: 1, RecentAccuracy: 0.3}, LevelNone},
		{"two attempts", SkillState{Attempts: 2, RecentAccuracy: 0.5}, LevelLearning},
		{"practicing", SkillState{Attempts: 5, RecentAccuracy: 0.65, Proficiency: 50}, LevelPracticing},
		{"high accuracy low attempts", SkillState{Attempts: 4, RecentAccuracy: 0.9, Proficiency: 90}, LevelLearning},
		{"mastered", SkillState{Attempts: 10, RecentAccuracy: 0.85, Proficiency: 85}, LevelMastered},
		{"attempts but low score", SkillState{Attempts: 10, RecentAccuracy: 0.85, Proficiency: 79}, LevelPracticing},
		{"attempts but low accuracy", SkillState{Attempts: 10, RecentAccuracy: 0.7, Proficiency: 85}, LevelPracticing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := masteryLevel(&tt.state); got != tt.want {
				t.Errorf("masteryLevel(%+v) = %q, want %q", tt.state, got, tt.want)
			}
		})
	}
}

// Monotonic unlock: the moment a prerequisite set completes, the dependent
// is unlocked in the same update, with no later call required.
func TestMastery_UnlockCascade(t *testing.T) {
	e := testEngine(t)

	if e.State("algebra-advanced").Unlocked {
		t.Fatal("algebra-advanced unlocked before prerequisite mastery")
	}

	var change *LevelChange
	for i := 0; i < 20; i++ {
		change = e.RecordResponse("algebra-basics", correctResponse())
		if e.State("algebra-basics").Level == LevelMastered {
			break
		}
	}
	if e.State("algebra-basics").Level != LevelMastered {
		t.Fatal("failed to master algebra-basics")
	}

	if !e.State("algebra-advanced").Unlocked {
		t.Error("algebra-advanced not unlocked immediately after prerequisite mastery")
	}
	if e.State("algebra-expert").Unlocked {
		t.Error("algebra-expert unlocked with unmastered prerequisite")
	}

	if change == nil || change.To != LevelMastered {
		t.Fatalf("expected mastery transition, got %+v", change)
	}
	found := false
	for _, id := range change.Unlocked {
		if id == "algebra-advanced" {
			found = true
		}
	}
	if !found {
		t.Errorf("transition did not report algebra-advanced as newly unlocked: %v", change.Unlocked)
	}
}

func TestExpectedAccuracy_Symmetry(t *testing.T) {
	e := testEngine(t)

	// Proficiency 50 → userELO 1200: above easy (1000), below hard (1600).
	easy := e.ExpectedAccuracy("algebra-basics", skillgraph.DifficultyEasy)
	medium := e.ExpectedAccuracy("algebra-basics", skillgraph.DifficultyMedium)
	hard := e.ExpectedAccuracy("algebra-basics", skillgraph.DifficultyHard)

	if easy <= 0.5 {
		t.Errorf("easy expectation = %v, want > 0.5", easy)
	}
	if hard >= 0.5 {
		t.Errorf("hard expectation = %v, want < 0.5", hard)
	}
	if !(easy > medium && medium > hard) {
		t.Errorf("expectations not ordered: easy=%v medium=%v hard=%v", easy, medium, hard)
	}
}

func TestExpectedAccuracy_UnknownSkill(t *testing.T) {
	e := testEngine(t)
	if got := e.ExpectedAccuracy("nonexistent", skillgraph.DifficultyEasy); got != 0.5 {
		t.Errorf("unknown skill expectation = %v, want neutral 0.5", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	e := NewEngine(testGraph(t), nil, WithClock(func() time.Time { return clock }))

	masterSkill(t, e, "algebra-basics")
	e.RecordResponse("algebra-advanced", wrongResponse())
	e.RecordResponse("algebra-advanced", wrongResponse())

	snap := &store.SnapshotData{Version: 1, Adaptive: e.SnapshotData()}

	restored := NewEngine(testGraph(t), snap)
	for _, id := range []string{"algebra-basics", "algebra-advanced"} {
		want := e.State(id)
		got := restored.State(id)
		if got.Proficiency != want.Proficiency ||
			got.RecentAccuracy != want.RecentAccuracy ||
			got.Attempts != want.Attempts ||
			got.Level != want.Level {
			t.Errorf("skill %q: restored %+v, want %+v", id, got, want)
		}
	}
	if !restored.State("algebra-advanced").Unlocked {
		t.Error("unlock state not rederived from restored mastery")
	}
}

func TestSnapshot_DropsRemovedSkills(t *testing.T) {
	snap := &store.SnapshotData{
		Version: 1,
		Adaptive: &store.AdaptiveSnapshotData{
			Skills: map[string]*store.SkillStateData{
				"retired-skill": {SkillID: "retired-skill", Proficiency: 90},
			},
		},
	}
	e := NewEngine(testGraph(t), snap)
	if e.State("retired-skill") != nil {
		t.Error("state kept for skill no longer in the catalog")
	}
}
