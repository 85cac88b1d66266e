package studyplan

import "time"

// CompleteTask marks a task done in place. The planID must match the plan's
// own ID so a caller holding a stale handle cannot mutate a regenerated
// plan. Completing an already-completed task is a no-op that keeps the
// original CompletedAt stamp.
func CompleteTask(plan *Plan, planID, taskID string, now time.Time) error {
	if plan.ID != planID {
		return ErrPlanMismatch
	}
	for i := range plan.DailyTasks {
		task := &plan.DailyTasks[i]
		if task.ID != taskID {
			continue
		}
		if task.Completed {
			return nil
		}
		task.Completed = true
		task.CompletedAt = &now
		plan.UpdatedAt = now
		return nil
	}
	return ErrTaskNotFound
}
