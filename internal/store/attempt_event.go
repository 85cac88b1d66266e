package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prepwise/satprep/ent"
	"github.com/prepwise/satprep/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSkillID(data.SkillID).
		SetSubject(data.Subject).
		SetDifficulty(data.Difficulty).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetExpectedAccuracy(data.ExpectedAccuracy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, userID string, limit int) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, len(events))
	for i, e := range events {
		records[i] = AttemptRecord{
			SkillID:    e.SkillID,
			Subject:    e.Subject,
			Difficulty: e.Difficulty,
			Correct:    e.Correct,
			TimeMs:     e.TimeMs,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) SkillAccuracy(ctx context.Context, userID, skillID string) (float64, int, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserID(userID),
			attemptevent.SkillID(skillID),
		).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query skill attempts: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(count), count, nil
}

func (r *eventRepo) LatestAttemptTime(ctx context.Context, userID, skillID string) (time.Time, error) {
	e, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserID(userID),
			attemptevent.SkillID(skillID),
		).
		Order(ent.Desc(attemptevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest attempt: %w", err)
	}
	return e.Timestamp, nil
}
