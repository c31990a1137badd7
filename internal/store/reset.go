package store

import (
	"context"
	"fmt"

	"github.com/mathspiral/mathspiral/ent/adaptationevent"
	"github.com/mathspiral/mathspiral/ent/attempt"
	"github.com/mathspiral/mathspiral/ent/factmastery"
	"github.com/mathspiral/mathspiral/ent/practicesession"
)

// ResetSkill deletes all practice history for one skill: sessions,
// attempts, adaptation events, and fact-mastery counters.
func (s *Store) ResetSkill(ctx context.Context, skillID string) error {
	if _, err := s.client.Attempt.Delete().
		Where(attempt.SkillID(skillID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	if _, err := s.client.AdaptationEvent.Delete().
		Where(adaptationevent.SkillID(skillID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete adaptation events: %w", err)
	}
	if _, err := s.client.PracticeSession.Delete().
		Where(practicesession.SkillID(skillID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	if _, err := s.client.FactMastery.Delete().
		Where(factmastery.SkillID(skillID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete fact stats: %w", err)
	}
	return nil
}

// ResetAll deletes all practice history for every skill.
func (s *Store) ResetAll(ctx context.Context) error {
	if _, err := s.client.Attempt.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	if _, err := s.client.AdaptationEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete adaptation events: %w", err)
	}
	if _, err := s.client.PracticeSession.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	if _, err := s.client.FactMastery.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete fact stats: %w", err)
	}
	return nil
}
