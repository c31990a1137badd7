package store

import (
	"context"
	"fmt"

	"github.com/mathspiral/mathspiral/ent"
	"github.com/mathspiral/mathspiral/ent/practicesession"
)

// trendWindow is how many recent sessions feed the visual trend.
const trendWindow = 10

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) SkillProgress(ctx context.Context, skillID string) (*SkillProgress, error) {
	rows, err := r.client.PracticeSession.Query().
		Where(
			practicesession.SkillID(skillID),
			practicesession.Status(StatusCompleted),
		).
		Order(ent.Asc(practicesession.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	prog := &SkillProgress{SkillID: skillID}
	var totalMs int64
	for _, row := range rows {
		prog.SessionsCompleted++
		prog.TotalProblems += row.TotalProblems
		prog.TotalCorrect += row.CorrectCount
		totalMs += int64(row.AvgResponseMs) * int64(row.TotalProblems)
		if row.MaxDifficulty > prog.MaxDifficulty {
			prog.MaxDifficulty = row.MaxDifficulty
		}
		if row.TopTierCompleted {
			prog.TopTierSessions++
		}
		prog.RecentVisualLevels = append(prog.RecentVisualLevels, row.FinalVisualLevel)
		if row.CompletedAt.After(prog.LastPracticed) {
			prog.LastPracticed = row.CompletedAt
		}
	}
	if prog.TotalProblems > 0 {
		prog.AvgResponseMs = int(totalMs / int64(prog.TotalProblems))
	}
	if len(prog.RecentVisualLevels) > trendWindow {
		prog.RecentVisualLevels = prog.RecentVisualLevels[len(prog.RecentVisualLevels)-trendWindow:]
	}
	return prog, nil
}
