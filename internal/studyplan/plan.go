package studyplan

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/prepwise/satprep/internal/skillgraph"
)

// TaskType classifies a scheduled activity.
type TaskType string

const (
	TaskPractice   TaskType = "practice"
	TaskReview     TaskType = "review"
	TaskMockExam   TaskType = "mock_exam"
	TaskDrill      TaskType = "drill"
	TaskSkillFocus TaskType = "skill_focus"
)

// Phase is one of the three sequential study stages.
type Phase string

const (
	PhaseFoundation    Phase = "foundation"
	PhaseStrengthening Phase = "strengthening"
	PhaseMastery       Phase = "mastery"
)

// SubjectBoth marks tasks that span both exam sections, such as mock exams.
const SubjectBoth = skillgraph.Subject("both")

// DailyTask is one scheduled activity on one calendar date. Tasks are never
// deleted, only marked completed.
type DailyTask struct {
	ID               string             `json:"id"`
	Date             time.Time          `json:"date"`
	Type             TaskType           `json:"type"`
	Subject          skillgraph.Subject `json:"subject"`
	Skill            string             `json:"skill,omitempty"`
	Domain           string             `json:"domain,omitempty"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Questions        int                `json:"questions,omitempty"`
	EstimatedMinutes int                `json:"estimated_minutes"`
	Completed        bool               `json:"completed"`
	CompletedAt      *time.Time         `json:"completed_at,omitempty"`
	Phase            Phase              `json:"phase"`
}

// PhaseCounts tallies distinct calendar dates per phase.
type PhaseCounts struct {
	Foundation    int `json:"foundation"`
	Strengthening int `json:"strengthening"`
	Mastery       int `json:"mastery"`
}

// Plan is a generated study schedule. Regeneration replaces the whole plan;
// the only in-place mutation is marking tasks completed.
type Plan struct {
	ID             string                `json:"id"`
	UserID         string                `json:"user_id"`
	TestDate       time.Time             `json:"test_date"`
	CurrentScore   int                   `json:"current_score"`
	DreamScore     int                   `json:"dream_score"`
	StudyDays      map[time.Weekday]bool `json:"study_days"`
	StudyHours     float64               `json:"study_hours"`
	TotalDays      int                   `json:"total_days"`
	StudyDaysCount int                   `json:"study_days_count"`
	DailyTasks     []DailyTask           `json:"daily_tasks"`
	Phases         PhaseCounts           `json:"phases"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// Options are the learner-supplied inputs to plan generation.
type Options struct {
	TestDate   time.Time
	DreamScore int
	StudyDays  map[time.Weekday]bool
	StudyHours float64
}

// Marshal serializes the plan for blob storage.
func (p *Plan) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}
	return data, nil
}

// Unmarshal deserializes a plan from blob storage.
func Unmarshal(data []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &p, nil
}
