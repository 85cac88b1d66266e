package adaptive

import (
	"time"

	"github.com/prepwise/satprep/internal/skillgraph"
)

// Tuning constants for the proficiency model.
const (
	// Alpha is the EWMA decay weight for recent accuracy.
	Alpha = 0.3
	// KFactor is the ELO K-factor applied to each response.
	KFactor = 32
	// MasteryThreshold is the minimum proficiency score for mastery.
	MasteryThreshold = 80
	// MasteryAttempts is the minimum attempt count for mastery.
	MasteryAttempts = 10
	// WeakThreshold is the proficiency score below which a skill is a
	// weakness candidate.
	WeakThreshold = 70
)

// ELO anchors. Proficiency 0-100 maps onto 400-2000; question difficulty
// bands sit at fixed points on the same scale.
const (
	eloFloor  = 400
	eloRange  = 1600
	eloEasy   = 1000
	eloMedium = 1300
	eloHard   = 1600
)

// MasteryLevel is a skill's position in the mastery lifecycle.
type MasteryLevel string

const (
	LevelNone       MasteryLevel = "none"
	LevelLearning   MasteryLevel = "learning"
	LevelPracticing MasteryLevel = "practicing"
	LevelMastered   MasteryLevel = "mastered"
)

// SkillState holds the mutable per-learner state for one catalog skill.
// The catalog node itself (name, subject, prerequisites) lives in the
// skill graph; only these fields change at runtime.
type SkillState struct {
	SkillID         string
	Proficiency     float64 // ELO-like, [0,100], starts at 50
	RecentAccuracy  float64 // EWMA, [0,1]
	Attempts        int
	CorrectAttempts int
	Level           MasteryLevel
	Unlocked        bool
	LastUpdated     time.Time
}

// Accuracy returns the lifetime accuracy ratio.
func (s *SkillState) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.CorrectAttempts) / float64(s.Attempts)
}

// Response is one answered question, consumed once to update the matching
// skill state and then discarded.
type Response struct {
	IsCorrect   bool
	TimeSpentMs int
	Difficulty  skillgraph.Difficulty
	// ExpectedAccuracy is the ELO expectation computed before the answer
	// was known (see Engine.ExpectedAccuracy).
	ExpectedAccuracy float64
}

// LevelChange records a mastery level transition for display and event logs.
type LevelChange struct {
	SkillID string
	From    MasteryLevel
	To      MasteryLevel
	// Unlocked lists skills that became available because this change
	// completed their prerequisite set.
	Unlocked []string
}

// Priority ranks how urgently a weakness needs attention.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// WeaknessPattern is a derived urgency record for one unlocked skill.
// Recomputed on demand, never persisted.
type WeaknessPattern struct {
	SkillID               string
	WeaknessScore         float64 // 0-100, higher = more urgent
	Priority              Priority
	RecommendedDifficulty skillgraph.Difficulty
}
