package skillgraph

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds the skill DAG with precomputed indices.
// A Graph is an explicit value owned by its caller — one per learner in a
// multi-user context — never a package-level singleton, so two learners'
// progress can never cross-contaminate.
type Graph struct {
	skills     []Skill
	byID       map[string]*Skill
	bySubject  map[Subject][]Skill
	roots      []Skill
	dependents map[string][]string
	topoOrder  []Skill
	topoIndex  map[string]int
}

// New constructs a Graph from a slice of skills, validating structure and
// building all indices including topological order (Kahn's algorithm).
func New(skills []Skill) (*Graph, error) {
	if err := validateSkills(skills); err != nil {
		return nil, err
	}

	g := &Graph{
		skills:     slices.Clone(skills),
		byID:       make(map[string]*Skill, len(skills)),
		bySubject:  make(map[Subject][]Skill),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
	}

	for i := range g.skills {
		g.byID[g.skills[i].ID] = &g.skills[i]
	}

	// Reverse edges.
	for i := range g.skills {
		for _, prereqID := range g.skills[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.skills[i].ID)
		}
	}

	// Kahn's algorithm with sorted queues for deterministic ordering.
	inDegree := make(map[string]int, len(skills))
	for i := range g.skills {
		inDegree[g.skills[i].ID] = len(g.skills[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		g.topoOrder = append(g.topoOrder, *g.byID[id])

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	for i, s := range g.topoOrder {
		g.topoIndex[s.ID] = i
	}

	for i := range g.skills {
		if len(g.skills[i].Prerequisites) == 0 {
			g.roots = append(g.roots, g.skills[i])
		}
	}

	// Group by subject in topological order, so catalog iteration order is
	// stable across runs.
	for _, s := range g.topoOrder {
		g.bySubject[s.Subject] = append(g.bySubject[s.Subject], s)
	}

	return g, nil
}

// Skill returns a skill by ID, or an error if not found.
func (g *Graph) Skill(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// Contains reports whether the graph has a skill with the given ID.
func (g *Graph) Contains(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// All returns all skills in the graph.
func (g *Graph) All() []Skill {
	return slices.Clone(g.skills)
}

// BySubject returns all skills for a subject in topological order.
func (g *Graph) BySubject(subject Subject) []Skill {
	return slices.Clone(g.bySubject[subject])
}

// Roots returns all skills with no prerequisites.
func (g *Graph) Roots() []Skill {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite skills for a given skill ID.
func (g *Graph) Prerequisites(id string) []Skill {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns skills that directly depend on the given skill ID.
func (g *Graph) Dependents(id string) []Skill {
	depIDs := g.dependents[id]
	result := make([]Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := g.byID[depID]; ok {
			result = append(result, *s)
		}
	}
	return result
}

// IsUnlocked reports whether every prerequisite of the given skill is in the
// mastered set. Unknown skill IDs are locked.
func (g *Graph) IsUnlocked(id string, mastered map[string]bool) bool {
	s, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range s.Prerequisites {
		if !mastered[prereqID] {
			return false
		}
	}
	return true
}

// UnlockedSet returns the full set of skill IDs whose prerequisites are all
// mastered. It is a pure function of the graph and the mastered set; callers
// apply the result rather than mutating unlock flags in place.
func (g *Graph) UnlockedSet(mastered map[string]bool) map[string]bool {
	unlocked := make(map[string]bool, len(g.skills))
	for _, s := range g.topoOrder {
		if g.IsUnlocked(s.ID, mastered) {
			unlocked[s.ID] = true
		}
	}
	return unlocked
}

// TopologicalOrder returns all skills in a valid topological order.
func (g *Graph) TopologicalOrder() []Skill {
	return slices.Clone(g.topoOrder)
}
