package store

import (
	"context"
	"fmt"

	"github.com/prepwise/satprep/ent"
	"github.com/prepwise/satprep/ent/studyplan"
)

// planRepo implements PlanRepo using the ent client. One row per learner;
// saving replaces the previous plan wholesale.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Save(ctx context.Context, userID string, data []byte) error {
	err := r.client.StudyPlan.Create().
		SetUserID(userID).
		SetData(data).
		OnConflictColumns(studyplan.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save study plan: %w", err)
	}
	return nil
}

func (r *planRepo) Load(ctx context.Context, userID string) ([]byte, error) {
	sp, err := r.client.StudyPlan.Query().
		Where(studyplan.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load study plan: %w", err)
	}
	return sp.Data, nil
}

func (r *planRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.StudyPlan.Delete().
		Where(studyplan.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete study plan: %w", err)
	}
	return nil
}
