package store

import (
	"context"
	"fmt"

	"github.com/mathspiral/mathspiral/ent"
	"github.com/mathspiral/mathspiral/ent/factmastery"
	"github.com/mathspiral/mathspiral/internal/facts"
)

type factRepo struct {
	client *ent.Client
}

func (r *factRepo) LoadLedger(ctx context.Context, skillID string) (*facts.Ledger, error) {
	rows, err := r.client.FactMastery.Query().
		Where(factmastery.SkillID(skillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query fact stats: %w", err)
	}

	stats := make(map[string]facts.Stat, len(rows))
	for _, row := range rows {
		stats[row.FactKey] = facts.Stat{
			TimesSeen:    row.TimesSeen,
			TimesCorrect: row.TimesCorrect,
		}
	}
	return facts.LedgerFromStats(stats), nil
}

func (r *factRepo) RecordFact(ctx context.Context, skillID, key string, correct bool) error {
	correctDelta := 0
	if correct {
		correctDelta = 1
	}

	row, err := r.client.FactMastery.Query().
		Where(
			factmastery.SkillID(skillID),
			factmastery.FactKey(key),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.FactMastery.Create().
			SetSkillID(skillID).
			SetFactKey(key).
			SetTimesSeen(1).
			SetTimesCorrect(correctDelta).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create fact stat: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query fact stat: %w", err)
	}

	_, err = row.Update().
		SetTimesSeen(row.TimesSeen + 1).
		SetTimesCorrect(row.TimesCorrect + correctDelta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update fact stat: %w", err)
	}
	return nil
}

func (r *factRepo) ResetFacts(ctx context.Context, skillID string) error {
	_, err := r.client.FactMastery.Delete().
		Where(factmastery.SkillID(skillID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset fact stats: %w", err)
	}
	return nil
}
