package studyplan

import "errors"

// Generation and completion failures are sentinel errors so callers can
// present actionable messages instead of a generic failure.
var (
	// ErrTestDateInPast is returned when the test date is not strictly in
	// the future.
	ErrTestDateInPast = errors.New("test date must be in the future")

	// ErrNoStudyDays is returned when no weekday is marked available.
	ErrNoStudyDays = errors.New("no study days selected")

	// ErrNoSkills is returned when the skill catalog is empty for every
	// subject.
	ErrNoSkills = errors.New("no skills available")

	// ErrNoTasks is returned when scheduling produced zero tasks.
	ErrNoTasks = errors.New("failed to generate any tasks")

	// ErrPlanMismatch is returned by CompleteTask when the stored plan's ID
	// does not match the requested one, usually because the plan was
	// regenerated since the caller last loaded it.
	ErrPlanMismatch = errors.New("plan id does not match current plan")

	// ErrTaskNotFound is returned by CompleteTask for an unknown task ID.
	ErrTaskNotFound = errors.New("task not found in plan")
)
