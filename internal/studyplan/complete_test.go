package studyplan

import (
	"errors"
	"testing"
	"time"
)

func generatedPlan(t *testing.T) *Plan {
	t.Helper()
	plan, err := testGenerator(t).Generate("u1", 1200, Options{
		TestDate:   testDateIn(30),
		DreamScore: 1400,
		StudyDays:  mwf(),
		StudyHours: 1,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return plan
}

func TestCompleteTask(t *testing.T) {
	plan := generatedPlan(t)
	task := plan.DailyTasks[0]
	first := time.Date(2026, 9, 2, 19, 0, 0, 0, time.UTC)

	if err := CompleteTask(plan, plan.ID, task.ID, first); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got := plan.DailyTasks[0]
	if !got.Completed || got.CompletedAt == nil || !got.CompletedAt.Equal(first) {
		t.Fatalf("task not completed as expected: %+v", got)
	}
	if !plan.UpdatedAt.Equal(first) {
		t.Errorf("plan UpdatedAt = %v, want %v", plan.UpdatedAt, first)
	}
}

// Completing a finished task again must not move its CompletedAt stamp.
func TestCompleteTask_Idempotent(t *testing.T) {
	plan := generatedPlan(t)
	task := plan.DailyTasks[0]
	first := time.Date(2026, 9, 2, 19, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	if err := CompleteTask(plan, plan.ID, task.ID, first); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if err := CompleteTask(plan, plan.ID, task.ID, second); err != nil {
		t.Fatalf("second complete: %v", err)
	}

	got := plan.DailyTasks[0]
	if !got.Completed || !got.CompletedAt.Equal(first) {
		t.Errorf("CompletedAt = %v, want original stamp %v", got.CompletedAt, first)
	}
	if !plan.UpdatedAt.Equal(first) {
		t.Errorf("plan UpdatedAt moved on repeat completion: %v", plan.UpdatedAt)
	}
}

func TestCompleteTask_Mismatches(t *testing.T) {
	plan := generatedPlan(t)
	now := time.Now()

	if err := CompleteTask(plan, "some-other-plan", plan.DailyTasks[0].ID, now); !errors.Is(err, ErrPlanMismatch) {
		t.Errorf("stale plan id: err = %v, want ErrPlanMismatch", err)
	}
	if err := CompleteTask(plan, plan.ID, "no-such-task", now); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("unknown task: err = %v, want ErrTaskNotFound", err)
	}
	for _, task := range plan.DailyTasks {
		if task.Completed {
			t.Fatal("failed completion attempts mutated the plan")
		}
	}
}

func TestPlanMarshalRoundTrip(t *testing.T) {
	plan := generatedPlan(t)

	data, err := plan.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	restored, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.ID != plan.ID || restored.UserID != plan.UserID {
		t.Errorf("identity fields lost: %+v", restored)
	}
	if len(restored.DailyTasks) != len(plan.DailyTasks) {
		t.Errorf("task count = %d, want %d", len(restored.DailyTasks), len(plan.DailyTasks))
	}
	if restored.Phases != plan.Phases {
		t.Errorf("phases = %+v, want %+v", restored.Phases, plan.Phases)
	}
	if !restored.StudyDays[time.Monday] || restored.StudyDays[time.Tuesday] {
		t.Errorf("study days lost in round trip: %+v", restored.StudyDays)
	}
}
