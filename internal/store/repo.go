package store

import (
	"context"
	"time"
)

// SnapshotData captures one learner's full engine state at a point in time.
type SnapshotData struct {
	Version  int                   `json:"version"`
	Adaptive *AdaptiveSnapshotData `json:"adaptive,omitempty"`
}

// AdaptiveSnapshotData is the persisted form of the adaptive engine state.
type AdaptiveSnapshotData struct {
	Skills map[string]*SkillStateData `json:"skills"`
}

// SkillStateData is the persisted per-skill state.
type SkillStateData struct {
	SkillID         string  `json:"skill_id"`
	Proficiency     float64 `json:"proficiency"`
	RecentAccuracy  float64 `json:"recent_accuracy"`
	Attempts        int     `json:"attempts"`
	CorrectAttempts int     `json:"correct_attempts"`
	Level           string  `json:"level"`
	LastUpdated     *string `json:"last_updated,omitempty"`
}

// Snapshot represents a stored point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	UserID    string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot for a learner, or nil if
	// none exist.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots per learner.
	Prune(ctx context.Context, userID string, keep int) error
}

// AttemptEventData captures one answered question for the event log.
type AttemptEventData struct {
	UserID           string
	SkillID          string
	Subject          string
	Difficulty       string
	Correct          bool
	TimeMs           int
	ExpectedAccuracy float64
}

// AttemptRecord is an attempt as read back from the event log, newest
// first. This is the attempt-history shape the study plan generator and
// the insight service consume.
type AttemptRecord struct {
	SkillID    string
	Subject    string
	Difficulty string
	Correct    bool
	TimeMs     int
	Timestamp  time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendAttempt records an answered question.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentAttempts returns up to limit attempts for a learner, newest
	// first.
	RecentAttempts(ctx context.Context, userID string, limit int) ([]AttemptRecord, error)

	// SkillAccuracy returns the lifetime accuracy for a learner on one
	// skill, with the attempt count.
	SkillAccuracy(ctx context.Context, userID, skillID string) (float64, int, error)

	// LatestAttemptTime returns the timestamp of the learner's most
	// recent attempt on a skill, or the zero time if none exist.
	LatestAttemptTime(ctx context.Context, userID, skillID string) (time.Time, error)
}

// PlanRepo persists the single current study plan per learner as an
// opaque blob. The studyplan package owns the serialization.
type PlanRepo interface {
	// Save stores the plan, replacing any existing one.
	Save(ctx context.Context, userID string, data []byte) error

	// Load returns the stored plan, or nil if none exists.
	Load(ctx context.Context, userID string) ([]byte, error)

	// Delete removes the stored plan, if any.
	Delete(ctx context.Context, userID string) error
}
