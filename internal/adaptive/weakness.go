package adaptive

import (
	"math"
	"sort"

	"github.com/prepwise/satprep/internal/skillgraph"
)

// Weakness score weights: accuracy gap, proficiency gap, attempt sparsity.
const (
	weightAccuracy    = 0.4
	weightProficiency = 0.4
	weightSparsity    = 0.2
)

// IdentifyWeaknesses ranks unlocked skills by urgency. A skill qualifies
// when its proficiency is below WeakThreshold or its recent accuracy is
// below 0.6. Pass an empty subject to scan the whole catalog. The result
// is sorted by descending weakness score and is deterministic for a fixed
// engine state.
func (e *Engine) IdentifyWeaknesses(subject skillgraph.Subject) []WeaknessPattern {
	var patterns []WeaknessPattern

	for _, skill := range e.catalogOrder(subject) {
		st := e.skills[skill.ID]
		if st == nil || !st.Unlocked {
			continue
		}
		if st.Proficiency >= WeakThreshold && st.RecentAccuracy >= 0.6 {
			continue
		}

		sparsity := 1 - math.Min(1, float64(st.Attempts)/float64(MasteryAttempts))
		score := 100 * (weightAccuracy*(1-st.RecentAccuracy) +
			weightProficiency*((100-st.Proficiency)/100) +
			weightSparsity*sparsity)

		patterns = append(patterns, WeaknessPattern{
			SkillID:               skill.ID,
			WeaknessScore:         score,
			Priority:              weaknessPriority(score),
			RecommendedDifficulty: weaknessDifficulty(score),
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].WeaknessScore != patterns[j].WeaknessScore {
			return patterns[i].WeaknessScore > patterns[j].WeaknessScore
		}
		return patterns[i].SkillID < patterns[j].SkillID
	})
	return patterns
}

func weaknessPriority(score float64) Priority {
	switch {
	case score > 80:
		return PriorityCritical
	case score > 60:
		return PriorityHigh
	case score > 40:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func weaknessDifficulty(score float64) skillgraph.Difficulty {
	if score > 60 {
		return skillgraph.DifficultyEasy
	}
	return skillgraph.DifficultyMedium
}

// NextSkill returns the skill the learner should work on next: the top
// weakness when any exist, otherwise the first unlocked-but-not-mastered
// skill in catalog iteration order. The boolean is false when every skill
// is either locked or mastered.
func (e *Engine) NextSkill(subject skillgraph.Subject) (skillgraph.Skill, bool) {
	if weaknesses := e.IdentifyWeaknesses(subject); len(weaknesses) > 0 {
		if s, err := e.graph.Skill(weaknesses[0].SkillID); err == nil {
			return s, true
		}
	}

	for _, skill := range e.catalogOrder(subject) {
		st := e.skills[skill.ID]
		if st != nil && st.Unlocked && st.Level != LevelMastered {
			return skill, true
		}
	}
	return skillgraph.Skill{}, false
}

// catalogOrder returns skills in stable catalog iteration order, optionally
// filtered by subject.
func (e *Engine) catalogOrder(subject skillgraph.Subject) []skillgraph.Skill {
	if subject == "" {
		return e.graph.TopologicalOrder()
	}
	return e.graph.BySubject(subject)
}
