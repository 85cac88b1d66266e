package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestAttemptAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	attempts := []AttemptEventData{
		{UserID: "u1", SkillID: "linear-equations", Subject: "math", Difficulty: "easy", Correct: true, TimeMs: 60000, ExpectedAccuracy: 0.7},
		{UserID: "u1", SkillID: "linear-equations", Subject: "math", Difficulty: "medium", Correct: false, TimeMs: 90000, ExpectedAccuracy: 0.5},
		{UserID: "u2", SkillID: "central-ideas", Subject: "reading-writing", Difficulty: "easy", Correct: true, TimeMs: 45000, ExpectedAccuracy: 0.6},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.RecentAttempts(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d attempts for u1, want 2", len(records))
	}
	// Newest first.
	if records[0].Difficulty != "medium" {
		t.Errorf("first record difficulty = %q, want medium (newest)", records[0].Difficulty)
	}

	acc, count, err := repo.SkillAccuracy(ctx, "u1", "linear-equations")
	if err != nil {
		t.Fatalf("skill accuracy: %v", err)
	}
	if count != 2 || acc != 0.5 {
		t.Errorf("accuracy = %.2f (n=%d), want 0.50 (n=2)", acc, count)
	}
}

func TestSkillAccuracy_NoAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)

	acc, count, err := repo.SkillAccuracy(context.Background(), "nobody", "linear-equations")
	if err != nil {
		t.Fatalf("skill accuracy: %v", err)
	}
	if acc != 0 || count != 0 {
		t.Errorf("got acc=%.2f count=%d, want zeros", acc, count)
	}
}

func TestSnapshotSaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "u1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err = repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil || snap.Sequence != 7 {
		t.Fatalf("latest = %+v, want sequence 7", snap)
	}

	if err := repo.Prune(ctx, "u1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Other users' snapshots are invisible.
	snap, err = repo.Latest(ctx, "u2")
	if err != nil {
		t.Fatalf("latest u2: %v", err)
	}
	if snap != nil {
		t.Error("expected nil snapshot for other user")
	}
}

func TestPlanSaveLoadReplace(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	data, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if data != nil {
		t.Fatal("expected nil plan when none exists")
	}

	if err := repo.Save(ctx, "u1", []byte(`{"id":"plan-1"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, "u1", []byte(`{"id":"plan-2"}`)); err != nil {
		t.Fatalf("replace: %v", err)
	}

	data, err = repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `{"id":"plan-2"}` {
		t.Errorf("load = %s, want replaced plan", data)
	}

	count, err := s.Client().StudyPlan.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("plan rows = %d, want 1 (replace, not append)", count)
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if i > 0 && seq != prev+1 {
			t.Errorf("sequence jumped from %d to %d", prev, seq)
		}
		prev = seq
	}
}
