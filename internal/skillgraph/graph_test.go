package skillgraph

import (
	"testing"
)

func TestDefaultCatalogValid(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Default() panicked: %v", r)
		}
	}()
	g := Default()
	if len(g.All()) == 0 {
		t.Fatal("default catalog is empty")
	}
}

func TestSkill_Exists(t *testing.T) {
	g := Default()
	s, err := g.Skill("linear-equations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Linear Equations in One Variable" {
		t.Errorf("got name %q, want %q", s.Name, "Linear Equations in One Variable")
	}
	if s.Subject != SubjectMath {
		t.Errorf("got subject %q, want %q", s.Subject, SubjectMath)
	}
	if s.Domain != DomainAlgebra {
		t.Errorf("got domain %q, want %q", s.Domain, DomainAlgebra)
	}
}

func TestSkill_NotFound(t *testing.T) {
	g := Default()
	_, err := g.Skill("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent skill, got nil")
	}
}

func TestBySubject_CoversCatalog(t *testing.T) {
	g := Default()
	math := g.BySubject(SubjectMath)
	rw := g.BySubject(SubjectReadingWriting)
	if len(math) == 0 || len(rw) == 0 {
		t.Fatalf("both subjects must have skills: math=%d rw=%d", len(math), len(rw))
	}
	if len(math)+len(rw) != len(g.All()) {
		t.Errorf("subject split %d+%d does not cover %d skills", len(math), len(rw), len(g.All()))
	}
	for _, s := range math {
		if s.Subject != SubjectMath {
			t.Errorf("BySubject(math) contains %q with subject %q", s.ID, s.Subject)
		}
	}
}

func TestRoots(t *testing.T) {
	g := Default()
	roots := g.Roots()
	if len(roots) == 0 {
		t.Fatal("expected at least one root skill")
	}
	for _, s := range roots {
		if len(s.Prerequisites) != 0 {
			t.Errorf("root skill %q has prerequisites: %v", s.ID, s.Prerequisites)
		}
	}
}

func TestPrerequisitesAndDependents(t *testing.T) {
	g := Default()

	prereqs := g.Prerequisites("systems-of-equations")
	if len(prereqs) != 1 || prereqs[0].ID != "linear-two-variables" {
		t.Errorf("systems-of-equations prereqs: got %v", prereqs)
	}

	deps := g.Dependents("linear-equations")
	depIDs := map[string]bool{}
	for _, d := range deps {
		depIDs[d.ID] = true
	}
	for _, want := range []string{"linear-functions", "linear-two-variables", "linear-inequalities", "exponents-radicals"} {
		if !depIDs[want] {
			t.Errorf("linear-equations missing dependent %q", want)
		}
	}
}

func TestIsUnlocked(t *testing.T) {
	g := Default()
	empty := map[string]bool{}

	if !g.IsUnlocked("linear-equations", empty) {
		t.Error("root skill should be unlocked with empty mastered set")
	}
	if g.IsUnlocked("quadratic-equations", empty) {
		t.Error("quadratic-equations should be locked with empty mastered set")
	}

	partial := map[string]bool{"polynomials": true}
	if g.IsUnlocked("quadratic-equations", partial) {
		t.Error("quadratic-equations should stay locked with one of two prereqs")
	}
	both := map[string]bool{"polynomials": true, "linear-functions": true}
	if !g.IsUnlocked("quadratic-equations", both) {
		t.Error("quadratic-equations should unlock with both prereqs mastered")
	}

	if g.IsUnlocked("nonexistent", empty) {
		t.Error("unknown skill should never be unlocked")
	}
}

func TestUnlockedSet_Pure(t *testing.T) {
	g := Default()
	mastered := map[string]bool{"linear-equations": true}

	a := g.UnlockedSet(mastered)
	b := g.UnlockedSet(mastered)
	if len(a) != len(b) {
		t.Fatal("UnlockedSet is not deterministic")
	}
	if !a["linear-functions"] {
		t.Error("linear-functions should be unlocked after mastering linear-equations")
	}
	if a["quadratic-equations"] {
		t.Error("quadratic-equations should not be unlocked")
	}

	// Roots are always present.
	for _, r := range g.Roots() {
		if !a[r.ID] {
			t.Errorf("root %q missing from unlocked set", r.ID)
		}
	}
}

func TestTopologicalOrder(t *testing.T) {
	g := Default()
	topo := g.TopologicalOrder()
	if len(topo) != len(g.All()) {
		t.Fatalf("topo order has %d skills, want %d", len(topo), len(g.All()))
	}

	pos := make(map[string]int, len(topo))
	for i, s := range topo {
		pos[s.ID] = i
	}
	for _, s := range topo {
		for _, prereqID := range s.Prerequisites {
			if pos[prereqID] >= pos[s.ID] {
				t.Errorf("skill %q (pos %d) appears before prerequisite %q (pos %d)",
					s.ID, pos[s.ID], prereqID, pos[prereqID])
			}
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	g := Default()
	a := g.All()
	a[0].Name = "MUTATED"
	b := g.All()
	if b[0].Name == "MUTATED" {
		t.Error("All did not return a defensive copy")
	}
}
