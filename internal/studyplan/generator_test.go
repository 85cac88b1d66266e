package studyplan

import (
	"errors"
	"math/rand/v2"
	"sort"
	"testing"
	"time"

	"github.com/prepwise/satprep/internal/skillgraph"
)

// fixedToday is a Tuesday.
var fixedToday = time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)

// testDateIn returns midnight N calendar days after fixedToday, so the
// day count is exact rather than rounded up by the time of day.
func testDateIn(days int) time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
}

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	return NewGenerator(skillgraph.Default(),
		WithRand(rand.New(rand.NewPCG(11, 0))),
		WithClock(func() time.Time { return fixedToday }))
}

func allWeekdays() map[time.Weekday]bool {
	days := make(map[time.Weekday]bool, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = true
	}
	return days
}

func mwf() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    true,
		time.Wednesday: true,
		time.Friday:    true,
	}
}

func TestGenerate_Validation(t *testing.T) {
	g := testGenerator(t)

	_, err := g.Generate("u1", 1200, Options{
		TestDate:   fixedToday.AddDate(0, 0, -1),
		DreamScore: 1400,
		StudyDays:  allWeekdays(),
		StudyHours: 1,
	})
	if !errors.Is(err, ErrTestDateInPast) {
		t.Errorf("past test date: err = %v, want ErrTestDateInPast", err)
	}

	_, err = g.Generate("u1", 1200, Options{
		TestDate:   testDateIn(30),
		DreamScore: 1400,
		StudyDays:  map[time.Weekday]bool{time.Monday: false},
		StudyHours: 1,
	})
	if !errors.Is(err, ErrNoStudyDays) {
		t.Errorf("no study days: err = %v, want ErrNoStudyDays", err)
	}

	empty, gerr := skillgraph.New(nil)
	if gerr != nil {
		t.Fatalf("empty graph: %v", gerr)
	}
	bare := NewGenerator(empty, WithClock(func() time.Time { return fixedToday }))
	_, err = bare.Generate("u1", 1200, Options{
		TestDate:   testDateIn(30),
		DreamScore: 1400,
		StudyDays:  allWeekdays(),
		StudyHours: 1,
	})
	if !errors.Is(err, ErrNoSkills) {
		t.Errorf("empty catalog: err = %v, want ErrNoSkills", err)
	}
}

func phaseRank(p Phase) int {
	switch p {
	case PhaseFoundation:
		return 0
	case PhaseStrengthening:
		return 1
	default:
		return 2
	}
}

// Phases must be contiguous blocks of calendar dates, never interleaved.
func TestGenerate_PhasesContiguous(t *testing.T) {
	g := testGenerator(t)
	plan, err := g.Generate("u1", 1200, Options{
		TestDate:   testDateIn(21),
		DreamScore: 1400,
		StudyDays:  allWeekdays(),
		StudyHours: 1,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	phaseByDate := make(map[string]Phase)
	var dates []string
	for _, task := range plan.DailyTasks {
		key := task.Date.Format("2006-01-02")
		if prev, ok := phaseByDate[key]; ok {
			if prev != task.Phase {
				t.Fatalf("date %s spans phases %q and %q", key, prev, task.Phase)
			}
			continue
		}
		phaseByDate[key] = task.Phase
		dates = append(dates, key)
	}
	sort.Strings(dates)

	lastRank := 0
	for _, d := range dates {
		rank := phaseRank(phaseByDate[d])
		if rank < lastRank {
			t.Fatalf("phase order regressed at %s: %q after a later phase", d, phaseByDate[d])
		}
		lastRank = rank
	}
}

// With 21 study days and every weekday active, mock exams land exactly on
// study-day indices 7 and 14 at full exam length.
func TestGenerate_MockExamSpacing(t *testing.T) {
	g := testGenerator(t)
	plan, err := g.Generate("u1", 1200, Options{
		TestDate:   testDateIn(21),
		DreamScore: 1400,
		StudyDays:  allWeekdays(),
		StudyHours: 1,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	wantDates := map[string]bool{
		today.AddDate(0, 0, 7).Format("2006-01-02"):  true,
		today.AddDate(0, 0, 14).Format("2006-01-02"): true,
	}

	var mocks []DailyTask
	for _, task := range plan.DailyTasks {
		if task.Type == TaskMockExam {
			mocks = append(mocks, task)
		}
	}
	if len(mocks) != 2 {
		t.Fatalf("got %d mock exams, want 2: %+v", len(mocks), mocks)
	}
	for _, mock := range mocks {
		key := mock.Date.Format("2006-01-02")
		if !wantDates[key] {
			t.Errorf("mock exam on %s, want day 7 or day 14", key)
		}
		if mock.EstimatedMinutes != mockExamMinutes {
			t.Errorf("mock exam minutes = %d, want %d", mock.EstimatedMinutes, mockExamMinutes)
		}
		if mock.Subject != SubjectBoth {
			t.Errorf("mock exam subject = %q, want both", mock.Subject)
		}
	}
}

// The documented scenario: 30 days out, Mon/Wed/Fri, one hour per session,
// chasing a 1400 from a 1200.
func TestGenerate_EndToEnd(t *testing.T) {
	g := testGenerator(t)
	plan, err := g.Generate("u1", 1200, Options{
		TestDate:   testDateIn(30),
		DreamScore: 1400,
		StudyDays:  mwf(),
		StudyHours: 1,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(plan.DailyTasks) == 0 {
		t.Fatal("empty task list")
	}
	if plan.TotalDays != 30 || plan.StudyDaysCount != 3 {
		t.Errorf("TotalDays/StudyDaysCount = %d/%d, want 30/3", plan.TotalDays, plan.StudyDaysCount)
	}

	// floor(30/7*3) = 12 study days, so one mock exam is due.
	mathDays, rwDays, mockTasks := 0, 0, 0
	seen := map[string]bool{}
	for _, task := range plan.DailyTasks {
		switch wd := task.Date.Weekday(); wd {
		case time.Monday, time.Wednesday, time.Friday:
		default:
			t.Errorf("task %q scheduled on inactive weekday %s", task.Title, wd)
		}

		if task.Type == TaskMockExam {
			mockTasks++
			continue
		}
		key := task.Date.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		switch task.Subject {
		case skillgraph.SubjectMath:
			mathDays++
		case skillgraph.SubjectReadingWriting:
			rwDays++
		}
	}

	if mockTasks == 0 {
		t.Error("expected at least one mock exam across 12 study days")
	}
	if mathDays < rwDays {
		t.Errorf("math days = %d < reading-writing days = %d, want math-biased split", mathDays, rwDays)
	}

	distinctDates := len(seen) + mockTasks
	if sum := plan.Phases.Foundation + plan.Phases.Strengthening + plan.Phases.Mastery; sum != distinctDates {
		t.Errorf("phase day sum = %d, want %d distinct dates", sum, distinctDates)
	}
	if plan.Phases.Foundation < 1 || plan.Phases.Strengthening < 1 {
		t.Errorf("phase minimums violated: %+v", plan.Phases)
	}
}

func TestGenerate_FoundationTaskBudget(t *testing.T) {
	g := testGenerator(t)
	plan, err := g.Generate("u1", 1200, Options{
		TestDate:   testDateIn(60),
		DreamScore: 1500,
		StudyDays:  allWeekdays(),
		StudyHours: 2,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	perDate := map[string]int{}
	for _, task := range plan.DailyTasks {
		if task.Phase == PhaseFoundation {
			perDate[task.Date.Format("2006-01-02")]++
		}
	}
	if len(perDate) == 0 {
		t.Fatal("no foundation days generated")
	}
	for date, n := range perDate {
		if n < 1 || n > maxTasksPerDay {
			t.Errorf("foundation day %s has %d tasks, want 1..%d", date, n, maxTasksPerDay)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := Options{
		TestDate:   testDateIn(30),
		DreamScore: 1400,
		StudyDays:  mwf(),
		StudyHours: 1,
	}
	a, err := testGenerator(t).Generate("u1", 1200, opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := testGenerator(t).Generate("u1", 1200, opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(a.DailyTasks) != len(b.DailyTasks) {
		t.Fatalf("task counts differ: %d vs %d", len(a.DailyTasks), len(b.DailyTasks))
	}
	for i := range a.DailyTasks {
		at, bt := a.DailyTasks[i], b.DailyTasks[i]
		if !at.Date.Equal(bt.Date) || at.Type != bt.Type || at.Subject != bt.Subject || at.Skill != bt.Skill {
			t.Errorf("task %d differs: %+v vs %+v", i, at, bt)
		}
	}
}
