package adaptive

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/prepwise/satprep/internal/skillgraph"
	"github.com/prepwise/satprep/internal/store"
)

// Engine maintains one learner's proficiency state across the skill graph
// and answers weakness/selection queries. It is owned by a single caller
// and is not safe for concurrent use; a server embedding it must serialize
// updates per learner in arrival order.
type Engine struct {
	graph  *skillgraph.Graph
	skills map[string]*SkillState
	rng    *rand.Rand
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects a seeded random source so selection tie-breaks are
// reproducible in tests. The selection policy itself is deterministic.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock injects the time source used for LastUpdated stamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine over the given graph, restoring per-skill
// state from the snapshot when present. Every catalog skill gets a state
// record; skills absent from the snapshot start at the neutral defaults.
func NewEngine(g *skillgraph.Graph, snap *store.SnapshotData, opts ...Option) *Engine {
	e := &Engine{
		graph:  g,
		skills: make(map[string]*SkillState),
		rng:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, s := range g.All() {
		e.skills[s.ID] = &SkillState{
			SkillID:        s.ID,
			Proficiency:    50,
			RecentAccuracy: 0,
			Level:          LevelNone,
		}
	}

	if snap != nil && snap.Adaptive != nil {
		e.loadFromSnapshot(snap.Adaptive)
	}

	e.refreshUnlocks()
	return e
}

func (e *Engine) loadFromSnapshot(data *store.AdaptiveSnapshotData) {
	for id, sd := range data.Skills {
		st, ok := e.skills[id]
		if !ok {
			// Skill no longer in the catalog; drop its state.
			continue
		}
		st.Proficiency = sd.Proficiency
		st.RecentAccuracy = sd.RecentAccuracy
		st.Attempts = sd.Attempts
		st.CorrectAttempts = sd.CorrectAttempts
		st.Level = MasteryLevel(sd.Level)
		if sd.LastUpdated != nil {
			if t, err := time.Parse(time.RFC3339, *sd.LastUpdated); err == nil {
				st.LastUpdated = t
			}
		}
	}
}

// State returns the state record for a skill, or nil for unknown skill IDs.
func (e *Engine) State(skillID string) *SkillState {
	return e.skills[skillID]
}

// AllStates returns the state records for every catalog skill.
func (e *Engine) AllStates() map[string]*SkillState {
	result := make(map[string]*SkillState, len(e.skills))
	for id, st := range e.skills {
		result[id] = st
	}
	return result
}

// MasteredSet returns the set of mastered skill IDs.
func (e *Engine) MasteredSet() map[string]bool {
	mastered := make(map[string]bool)
	for id, st := range e.skills {
		if st.Level == LevelMastered {
			mastered[id] = true
		}
	}
	return mastered
}

// RecordResponse applies one answered question to the matching skill state:
// ELO proficiency delta, accuracy EWMA, counters, mastery level, and — when
// mastery is newly reached — a graph-wide unlock sweep. Unknown skill IDs
// are a no-op: bad input is treated as insufficient data, never fatal.
// Returns a LevelChange when the mastery level moved, nil otherwise.
func (e *Engine) RecordResponse(skillID string, resp Response) *LevelChange {
	st, ok := e.skills[skillID]
	if !ok {
		return nil
	}

	actual := 0.0
	if resp.IsCorrect {
		actual = 1.0
	}

	// ELO update against the pre-answer expectation.
	eloChange := KFactor * (actual - resp.ExpectedAccuracy)
	st.Proficiency = clamp(st.Proficiency+eloChange, 0, 100)

	// EWMA update. This recomputes actual from IsCorrect independently of
	// the ELO delta above: short-term trend and skill strength are separate
	// signals even though they consume the same boolean.
	ewmaActual := 0.0
	if resp.IsCorrect {
		ewmaActual = 1.0
	}
	st.RecentAccuracy = Alpha*ewmaActual + (1-Alpha)*st.RecentAccuracy

	st.Attempts++
	if resp.IsCorrect {
		st.CorrectAttempts++
	}

	before := st.Level
	st.Level = masteryLevel(st)
	st.LastUpdated = e.now()

	if st.Level == before {
		return nil
	}

	change := &LevelChange{SkillID: skillID, From: before, To: st.Level}
	if st.Level == LevelMastered {
		change.Unlocked = e.refreshUnlocks()
	}
	return change
}

// masteryLevel evaluates the mastery state machine for the current counters.
func masteryLevel(st *SkillState) MasteryLevel {
	switch {
	case st.Attempts >= MasteryAttempts && st.RecentAccuracy >= 0.8 && st.Proficiency >= MasteryThreshold:
		return LevelMastered
	case st.Attempts >= 5 && st.RecentAccuracy >= 0.6:
		return LevelPracticing
	case st.Attempts >= 2:
		return LevelLearning
	default:
		return LevelNone
	}
}

// refreshUnlocks recomputes the unlocked flag for every skill from the
// current mastered set and returns the IDs that flipped from locked to
// unlocked in this sweep.
func (e *Engine) refreshUnlocks() []string {
	unlocked := e.graph.UnlockedSet(e.MasteredSet())

	var newlyUnlocked []string
	for id, st := range e.skills {
		was := st.Unlocked
		st.Unlocked = unlocked[id]
		if st.Unlocked && !was {
			newlyUnlocked = append(newlyUnlocked, id)
		}
	}
	return newlyUnlocked
}

// ExpectedAccuracy returns the logistic ELO expectation that the learner
// answers a question of the given difficulty correctly. Pure function;
// returns the neutral 0.5 for unknown skill IDs.
func (e *Engine) ExpectedAccuracy(skillID string, difficulty skillgraph.Difficulty) float64 {
	st, ok := e.skills[skillID]
	if !ok {
		return 0.5
	}

	userELO := st.Proficiency/100*eloRange + eloFloor
	questionELO := difficultyELO(difficulty)
	return 1 / (1 + math.Pow(10, (questionELO-userELO)/400))
}

func difficultyELO(d skillgraph.Difficulty) float64 {
	switch d {
	case skillgraph.DifficultyEasy:
		return eloEasy
	case skillgraph.DifficultyHard:
		return eloHard
	default:
		return eloMedium
	}
}

// SnapshotData exports the current engine state for persistence.
func (e *Engine) SnapshotData() *store.AdaptiveSnapshotData {
	data := &store.AdaptiveSnapshotData{
		Skills: make(map[string]*store.SkillStateData, len(e.skills)),
	}
	for id, st := range e.skills {
		sd := &store.SkillStateData{
			SkillID:         id,
			Proficiency:     st.Proficiency,
			RecentAccuracy:  st.RecentAccuracy,
			Attempts:        st.Attempts,
			CorrectAttempts: st.CorrectAttempts,
			Level:           string(st.Level),
		}
		if !st.LastUpdated.IsZero() {
			ts := st.LastUpdated.Format(time.RFC3339)
			sd.LastUpdated = &ts
		}
		data.Skills[id] = sd
	}
	return data
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
