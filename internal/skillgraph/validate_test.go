package skillgraph

import (
	"strings"
	"testing"
)

func validPair() []Skill {
	return []Skill{
		{ID: "a", Name: "A", Subject: SubjectMath, Domain: DomainAlgebra},
		{ID: "b", Name: "B", Subject: SubjectMath, Domain: DomainAlgebra, Prerequisites: []string{"a"}},
	}
}

func TestNew_Valid(t *testing.T) {
	g, err := New(validPair())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.All()) != 2 {
		t.Errorf("got %d skills, want 2", len(g.All()))
	}
}

func TestNew_DuplicateID(t *testing.T) {
	skills := validPair()
	skills = append(skills, Skill{ID: "a", Name: "A2", Subject: SubjectMath, Domain: DomainAlgebra})
	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "duplicate skill ID") {
		t.Errorf("expected duplicate ID error, got %v", err)
	}
}

func TestNew_DanglingPrerequisite(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Subject: SubjectMath, Domain: DomainAlgebra, Prerequisites: []string{"ghost"}},
	}
	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "nonexistent prerequisite") {
		t.Errorf("expected dangling prerequisite error, got %v", err)
	}
}

func TestNew_Cycle(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Subject: SubjectMath, Domain: DomainAlgebra, Prerequisites: []string{"b"}},
		{ID: "b", Name: "B", Subject: SubjectMath, Domain: DomainAlgebra, Prerequisites: []string{"a"}},
		{ID: "root", Name: "R", Subject: SubjectMath, Domain: DomainAlgebra},
	}
	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("expected cycle error, got %v", err)
	}
}

func TestNew_SelfPrerequisite(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Subject: SubjectMath, Domain: DomainAlgebra, Prerequisites: []string{"a"}},
	}
	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "itself") {
		t.Errorf("expected self-prerequisite error, got %v", err)
	}
}

func TestNew_UnknownSubject(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Subject: Subject("science"), Domain: "x"},
	}
	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "unknown subject") {
		t.Errorf("expected unknown subject error, got %v", err)
	}
}
