package insight

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prepwise/satprep/internal/adaptive"
	"github.com/prepwise/satprep/internal/llm"
	"github.com/prepwise/satprep/internal/skillgraph"
)

func testStats() []SkillStat {
	return []SkillStat{
		{
			SkillID: "linear-equations", Name: "Linear Equations",
			Subject: skillgraph.SubjectMath, Domain: "algebra",
			Proficiency: 35, RecentAccuracy: 0.3, Attempts: 8,
			WeaknessScore: 72, Priority: adaptive.PriorityHigh,
		},
		{
			SkillID: "central-ideas", Name: "Central Ideas and Details",
			Subject: skillgraph.SubjectReadingWriting, Domain: "information-ideas",
			Proficiency: 55, RecentAccuracy: 0.5, Attempts: 2,
			WeaknessScore: 58, Priority: adaptive.PriorityMedium,
		},
	}
}

func TestAnalyze_LLMPath(t *testing.T) {
	canned := `{
		"summary": "Algebra fundamentals are the biggest gap.",
		"skills": [
			{"skill_id": "linear-equations", "diagnosis": "Accuracy is low on basics.", "priority": "high"},
			{"skill_id": "invented-skill", "diagnosis": "Should be dropped.", "priority": "low"}
		],
		"focus_order": ["linear-equations", "invented-skill", "central-ideas"],
		"estimated_score_impact": 80
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(canned)})
	svc := NewService(mock, DefaultConfig())

	report, err := svc.Analyze(context.Background(), testStats())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if report.Source != "llm" {
		t.Errorf("source = %q, want llm", report.Source)
	}
	if report.EstimatedScoreImpact != 80 {
		t.Errorf("impact = %d, want 80", report.EstimatedScoreImpact)
	}
	// Invented skill IDs from the model must be filtered out.
	if len(report.Skills) != 1 || report.Skills[0].SkillID != "linear-equations" {
		t.Errorf("skills not filtered to known IDs: %+v", report.Skills)
	}
	if len(report.FocusOrder) != 2 {
		t.Errorf("focus order not filtered: %v", report.FocusOrder)
	}

	// The prompt must carry the skill data, and the schema must be requested.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	call := mock.Calls[0]
	if call.Schema == nil || call.Schema.Name != "weakness-report" {
		t.Errorf("schema not set on request: %+v", call.Schema)
	}
	if !strings.Contains(call.Messages[0].Content, "linear-equations") {
		t.Errorf("prompt missing skill data:\n%s", call.Messages[0].Content)
	}
}

func TestAnalyze_NoProviderUsesHeuristic(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	report, err := svc.Analyze(context.Background(), testStats())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.Source != "heuristic" {
		t.Errorf("source = %q, want heuristic", report.Source)
	}
	if len(report.Skills) != 2 {
		t.Errorf("got %d skill diagnoses, want 2", len(report.Skills))
	}
	if report.FocusOrder[0] != "linear-equations" {
		t.Errorf("focus order = %v, want weakness ranking order", report.FocusOrder)
	}
	if report.EstimatedScoreImpact <= 0 || report.EstimatedScoreImpact > 150 {
		t.Errorf("impact = %d, want (0,150]", report.EstimatedScoreImpact)
	}
}

func TestAnalyze_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(mock, DefaultConfig())

	report, err := svc.Analyze(context.Background(), testStats())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.Source != "heuristic" {
		t.Errorf("source = %q, want heuristic fallback after provider error", report.Source)
	}
}

func TestAnalyze_EmptyStats(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	report, err := svc.Analyze(context.Background(), nil)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.Summary == "" || len(report.Skills) != 0 {
		t.Errorf("unexpected empty-stats report: %+v", report)
	}
}

func TestStatsFromEngine(t *testing.T) {
	g, err := skillgraph.New([]skillgraph.Skill{
		{ID: "a", Name: "Skill A", Subject: skillgraph.SubjectMath, Domain: "algebra"},
		{ID: "b", Name: "Skill B", Subject: skillgraph.SubjectMath, Domain: "algebra"},
	})
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	e := adaptive.NewEngine(g, nil)

	// Fresh skills have zero recent accuracy, so everything ranks as weak.
	stats := StatsFromEngine(e, g, skillgraph.SubjectMath)
	if len(stats) != 2 {
		t.Fatalf("got %d stats, want 2", len(stats))
	}
	for _, s := range stats {
		if s.Name == "" || s.Domain == "" {
			t.Errorf("catalog metadata not joined: %+v", s)
		}
		if s.Proficiency != 50 {
			t.Errorf("proficiency = %v, want initial 50", s.Proficiency)
		}
	}
}
