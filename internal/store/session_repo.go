package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mathspiral/mathspiral/ent"
	"github.com/mathspiral/mathspiral/ent/practicesession"
)

// timeNow is swapped in tests.
var timeNow = time.Now

type sessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *sessionRepo) Create(ctx context.Context, rec *SessionRecord) error {
	_, err := r.client.PracticeSession.Create().
		SetID(rec.ID).
		SetSkillID(rec.SkillID).
		SetStatus(StatusActive).
		SetStartedAt(rec.StartedAt).
		SetStartDifficulty(rec.StartDifficulty).
		SetStartVisualLevel(rec.StartVisualLevel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*SessionRecord, error) {
	row, err := r.client.PracticeSession.Query().
		Where(practicesession.ID(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) LatestCompleted(ctx context.Context, skillID string) (*SessionRecord, error) {
	row, err := r.client.PracticeSession.Query().
		Where(
			practicesession.SkillID(skillID),
			practicesession.Status(StatusCompleted),
		).
		Order(ent.Desc(practicesession.FieldCompletedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest completed: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) Complete(ctx context.Context, id string, stats CompletionStats) error {
	n, err := r.client.PracticeSession.Update().
		Where(
			practicesession.ID(id),
			practicesession.Status(StatusActive),
		).
		SetStatus(StatusCompleted).
		SetCompletedAt(timeNow()).
		SetTotalProblems(stats.TotalProblems).
		SetCorrectCount(stats.CorrectCount).
		SetAvgResponseMs(stats.AvgResponseMs).
		SetFinalDifficulty(stats.FinalDifficulty).
		SetFinalVisualLevel(stats.FinalVisualLevel).
		SetMaxDifficulty(stats.MaxDifficulty).
		SetTopTierCompleted(stats.TopTierCompleted).
		SetDurationSecs(stats.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("complete session: %s not active", id)
	}
	return nil
}

func (r *sessionRepo) Abandon(ctx context.Context, id string) error {
	n, err := r.client.PracticeSession.Update().
		Where(
			practicesession.ID(id),
			practicesession.Status(StatusActive),
		).
		SetStatus(StatusAbandoned).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("abandon session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("abandon session: %s not active", id)
	}
	return nil
}

func (r *sessionRepo) AppendAttempt(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.Attempt.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSkillID(data.SkillID).
		SetSeqInSession(data.Sequence).
		SetGroupNumber(data.GroupNumber).
		SetPrompt(data.Prompt).
		SetCorrectAnswer(data.CorrectAnswer).
		SetGivenAnswer(data.GivenAnswer).
		SetCorrect(data.Correct).
		SetResponseTimeMs(data.ResponseTimeMs).
		SetDifficulty(data.Difficulty).
		SetVisualLevel(data.VisualLevel)
	if data.FactKey != "" {
		builder = builder.SetFactKey(data.FactKey)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *sessionRepo) AppendAdaptation(ctx context.Context, data AdaptationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AdaptationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSkillID(data.SkillID).
		SetGroupNumber(data.GroupNumber).
		SetOutcome(data.Outcome).
		SetReason(data.Reason).
		SetFromDifficulty(data.FromDifficulty).
		SetFromVisualLevel(data.FromVisualLevel).
		SetToDifficulty(data.ToDifficulty).
		SetToVisualLevel(data.ToVisualLevel).
		SetCorrectCount(data.CorrectCount).
		SetGroupSize(data.GroupSize).
		SetAvgResponseMs(data.AvgResponseMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save adaptation event: %w", err)
	}
	return nil
}

func sessionFromRow(row *ent.PracticeSession) *SessionRecord {
	return &SessionRecord{
		ID:               row.ID,
		SkillID:          row.SkillID,
		Status:           row.Status,
		StartedAt:        row.StartedAt,
		CompletedAt:      row.CompletedAt,
		StartDifficulty:  row.StartDifficulty,
		StartVisualLevel: row.StartVisualLevel,
		FinalDifficulty:  row.FinalDifficulty,
		FinalVisualLevel: row.FinalVisualLevel,
		TotalProblems:    row.TotalProblems,
		CorrectCount:     row.CorrectCount,
		AvgResponseMs:    row.AvgResponseMs,
		MaxDifficulty:    row.MaxDifficulty,
		TopTierCompleted: row.TopTierCompleted,
		DurationSecs:     row.DurationSecs,
	}
}
