package insight

import (
	"fmt"
	"strings"

	"github.com/prepwise/satprep/internal/adaptive"
	"github.com/prepwise/satprep/internal/skillgraph"
)

// Report is a structured weakness analysis for one learner.
type Report struct {
	// Summary is a short narrative of where the learner stands.
	Summary string `json:"summary"`

	// Skills holds one diagnosis per weak skill, most urgent first.
	Skills []SkillDiagnosis `json:"skills"`

	// FocusOrder lists skill IDs in recommended study order.
	FocusOrder []string `json:"focus_order"`

	// EstimatedScoreImpact is the projected SAT point gain from closing
	// the listed weaknesses.
	EstimatedScoreImpact int `json:"estimated_score_impact"`

	// Source records how the report was produced: "llm" or "heuristic".
	Source string `json:"-"`
}

// SkillDiagnosis is the per-skill portion of a report.
type SkillDiagnosis struct {
	SkillID   string `json:"skill_id"`
	Diagnosis string `json:"diagnosis"`
	Priority  string `json:"priority"`
}

// SkillStat is the per-skill input to weakness analysis: the ranked
// weakness joined with its catalog node and live state.
type SkillStat struct {
	SkillID        string
	Name           string
	Subject        skillgraph.Subject
	Domain         string
	Proficiency    float64
	RecentAccuracy float64
	Attempts       int
	WeaknessScore  float64
	Priority       adaptive.Priority
}

// StatsFromEngine joins the engine's weakness ranking with catalog metadata
// to produce analysis input. The order follows the weakness ranking.
func StatsFromEngine(e *adaptive.Engine, g *skillgraph.Graph, subject skillgraph.Subject) []SkillStat {
	patterns := e.IdentifyWeaknesses(subject)
	stats := make([]SkillStat, 0, len(patterns))
	for _, wp := range patterns {
		skill, err := g.Skill(wp.SkillID)
		if err != nil {
			continue
		}
		st := e.State(wp.SkillID)
		stats = append(stats, SkillStat{
			SkillID:        wp.SkillID,
			Name:           skill.Name,
			Subject:        skill.Subject,
			Domain:         skill.Domain,
			Proficiency:    st.Proficiency,
			RecentAccuracy: st.RecentAccuracy,
			Attempts:       st.Attempts,
			WeaknessScore:  wp.WeaknessScore,
			Priority:       wp.Priority,
		})
	}
	return stats
}

// heuristicReport builds a report from the weakness ranking alone, used
// when no LLM provider is configured or the provider call fails.
func heuristicReport(stats []SkillStat) *Report {
	if len(stats) == 0 {
		return &Report{
			Summary: "No weak skills detected. Keep practicing to maintain mastery.",
			Source:  "heuristic",
		}
	}

	report := &Report{Source: "heuristic"}
	impact := 0
	for _, s := range stats {
		report.Skills = append(report.Skills, SkillDiagnosis{
			SkillID:   s.SkillID,
			Diagnosis: heuristicDiagnosis(s),
			Priority:  string(s.Priority),
		})
		if len(report.FocusOrder) < 5 {
			report.FocusOrder = append(report.FocusOrder, s.SkillID)
		}
		switch s.Priority {
		case adaptive.PriorityCritical:
			impact += 20
		case adaptive.PriorityHigh:
			impact += 10
		default:
			impact += 5
		}
	}
	if impact > 150 {
		impact = 150
	}
	report.EstimatedScoreImpact = impact

	names := make([]string, 0, 3)
	for i, s := range stats {
		if i == 3 {
			break
		}
		names = append(names, s.Name)
	}
	report.Summary = fmt.Sprintf("Your %d weakest skills need attention, starting with %s.",
		len(stats), strings.Join(names, ", "))
	return report
}

func heuristicDiagnosis(s SkillStat) string {
	switch {
	case s.Attempts < 3:
		return fmt.Sprintf("Too few attempts on %s to judge; practice more questions here.", s.Name)
	case s.RecentAccuracy < 0.4:
		return fmt.Sprintf("Recent accuracy on %s is low; revisit the fundamentals before drilling.", s.Name)
	default:
		return fmt.Sprintf("Proficiency on %s lags despite practice; work easier questions to rebuild.", s.Name)
	}
}
