package skillgraph

import (
	"fmt"
	"strings"
)

// validateSkills performs all structural checks on the given skill set.
// Returns a combined error describing all problems found, or nil if valid.
func validateSkills(skills []Skill) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))
	subjectSet := make(map[Subject]bool)

	// Duplicate IDs and basic field checks.
	for _, s := range skills {
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
		subjectSet[s.Subject] = true

		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("skill %q has empty ID", s.Name))
		}
		if s.Subject != SubjectMath && s.Subject != SubjectReadingWriting {
			errs = append(errs, fmt.Sprintf("skill %q has unknown subject %q", s.ID, s.Subject))
		}
		if s.Domain == "" {
			errs = append(errs, fmt.Sprintf("skill %q has empty domain", s.ID))
		}
	}

	// Dangling prerequisites.
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
			}
			if prereqID == s.ID {
				errs = append(errs, fmt.Sprintf("skill %q lists itself as a prerequisite", s.ID))
			}
		}
	}

	// Cycle detection via Kahn's algorithm.
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		inDegree[s.ID] = len(s.Prerequisites)
		for _, prereqID := range s.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(skills) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// At least one root, so the graph is startable.
	hasRoot := false
	for _, s := range skills {
		if len(s.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot && len(skills) > 0 {
		errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
