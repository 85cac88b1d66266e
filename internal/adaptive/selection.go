package adaptive

import (
	"sort"

	"github.com/prepwise/satprep/internal/catalog"
	"github.com/prepwise/satprep/internal/skillgraph"
)

// SelectionReason explains why a question made it into the batch.
type SelectionReason string

const (
	ReasonWeakFocus   SelectionReason = "weak_focus"
	ReasonProgression SelectionReason = "progression"
	ReasonReview      SelectionReason = "review"
	ReasonRandomFill  SelectionReason = "random_fill"
)

// Selection quotas. Leftover slots from any bucket fall through to the
// random backfill pass.
const (
	weakShare        = 0.7
	progressionShare = 0.2
	reviewShare      = 0.1
)

// reviewProficiency is the proficiency floor for a skill to serve review
// questions.
const reviewProficiency = 80

// SelectedQuestion is a catalog question annotated with why it was chosen.
type SelectedQuestion struct {
	catalog.Question
	AdaptiveWeight  float64
	TargetSkill     string
	SelectionReason SelectionReason
}

// SelectQuestions assembles a practice batch from the available pool:
// 70% weak-focus, 20% progression toward the next skill, 10% review of
// strong skills, with random backfill for any slot those buckets cannot
// satisfy. Questions named in sessionHistory are excluded, and no question
// repeats within one call. The result may be shorter than targetCount when
// the pool runs dry; callers must treat the length as "up to targetCount".
func (e *Engine) SelectQuestions(available []catalog.Question, sessionHistory []string, targetCount int, subject skillgraph.Subject) []SelectedQuestion {
	if targetCount <= 0 || len(available) == 0 {
		return nil
	}

	used := make(map[string]bool, len(sessionHistory))
	for _, id := range sessionHistory {
		used[id] = true
	}

	weakCount := int(float64(targetCount) * weakShare)
	progressionCount := int(float64(targetCount) * progressionShare)
	reviewCount := int(float64(targetCount) * reviewShare)

	var selected []SelectedQuestion
	take := func(q catalog.Question, reason SelectionReason, weight float64, targetSkill string) {
		used[q.ID] = true
		selected = append(selected, SelectedQuestion{
			Question:        q,
			AdaptiveWeight:  weight,
			TargetSkill:     targetSkill,
			SelectionReason: reason,
		})
	}

	// Weak focus: cycle through the ranked weaknesses, matching each one's
	// recommended difficulty.
	weaknesses := e.IdentifyWeaknesses(subject)
	if len(weaknesses) > 0 {
		for slot := 0; slot < weakCount; slot++ {
			var picked bool
			for offset := 0; offset < len(weaknesses) && !picked; offset++ {
				wp := weaknesses[(slot+offset)%len(weaknesses)]
				q, ok := e.pickRandom(available, used, catalog.Query{
					Skill:      wp.SkillID,
					Difficulty: wp.RecommendedDifficulty,
				})
				if ok {
					take(q, ReasonWeakFocus, weakShare, wp.SkillID)
					picked = true
				}
			}
			if !picked {
				break // No weakness has unused questions left.
			}
		}
	}

	// Progression: harder questions for the single next-skill target.
	if next, ok := e.NextSkill(subject); ok {
		for slot := 0; slot < progressionCount; slot++ {
			q, found := e.pickRandom(available, used, catalog.Query{
				Skill:      next.ID,
				Difficulty: skillgraph.DifficultyHard,
			})
			if !found {
				break
			}
			take(q, ReasonProgression, progressionShare, next.ID)
		}
	}

	// Review: random questions from strong skills.
	if strong := e.strongSkills(subject); len(strong) > 0 {
		for slot := 0; slot < reviewCount; slot++ {
			skillID := strong[e.rng.IntN(len(strong))]
			q, found := e.pickRandom(available, used, catalog.Query{Skill: skillID})
			if !found {
				continue
			}
			take(q, ReasonReview, reviewShare, skillID)
		}
	}

	// Backfill unfilled slots with whatever is left.
	for len(selected) < targetCount {
		q, found := e.pickRandom(available, used, catalog.Query{})
		if !found {
			break
		}
		take(q, ReasonRandomFill, 0, q.Skill)
	}

	return selected
}

// pickRandom returns a uniformly random unused question matching the query.
func (e *Engine) pickRandom(available []catalog.Question, used map[string]bool, query catalog.Query) (catalog.Question, bool) {
	var candidates []catalog.Question
	for _, q := range available {
		if !used[q.ID] && query.Matches(q) {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return catalog.Question{}, false
	}
	return candidates[e.rng.IntN(len(candidates))], true
}

// strongSkills lists unlocked skills at or above the review proficiency
// floor, sorted for deterministic iteration.
func (e *Engine) strongSkills(subject skillgraph.Subject) []string {
	var strong []string
	for _, skill := range e.catalogOrder(subject) {
		st := e.skills[skill.ID]
		if st != nil && st.Unlocked && st.Proficiency >= reviewProficiency {
			strong = append(strong, skill.ID)
		}
	}
	sort.Strings(strong)
	return strong
}
