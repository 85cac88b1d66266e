package skillgraph

// Subject identifies an SAT test section.
type Subject string

const (
	SubjectMath           Subject = "math"
	SubjectReadingWriting Subject = "reading-writing"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectMath, SubjectReadingWriting}
}

// SubjectDisplayName returns a human-readable name for a subject.
func SubjectDisplayName(s Subject) string {
	switch s {
	case SubjectMath:
		return "Math"
	case SubjectReadingWriting:
		return "Reading & Writing"
	default:
		return string(s)
	}
}

// Difficulty is a question difficulty band.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Skill represents a single SAT skill node in the graph.
type Skill struct {
	ID            string
	Name          string
	Subject       Subject
	Domain        string // College Board content domain, e.g. "algebra"
	Prerequisites []string
}
