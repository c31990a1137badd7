package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	err := repo.Create(ctx, &SessionRecord{
		ID:               "s1",
		SkillID:          "integer-addition",
		StartedAt:        time.Now(),
		StartDifficulty:  1,
		StartVisualLevel: 5,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Nothing completed yet: no carryover.
	latest, err := repo.LatestCompleted(ctx, "integer-addition")
	if err != nil {
		t.Fatal(err)
	}
	if latest != nil {
		t.Fatalf("expected no completed session, got %+v", latest)
	}

	err = repo.Complete(ctx, "s1", CompletionStats{
		TotalProblems:    15,
		CorrectCount:     12,
		AvgResponseMs:    6200,
		FinalDifficulty:  2,
		FinalVisualLevel: 4,
		MaxDifficulty:    2,
		DurationSecs:     310,
	})
	if err != nil {
		t.Fatal(err)
	}

	latest, err = repo.LatestCompleted(ctx, "integer-addition")
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil {
		t.Fatal("expected completed session")
	}
	if latest.FinalDifficulty != 2 || latest.FinalVisualLevel != 4 {
		t.Errorf("final state = %d/%d, want 2/4", latest.FinalDifficulty, latest.FinalVisualLevel)
	}
	if latest.Status != StatusCompleted {
		t.Errorf("status = %q", latest.Status)
	}

	// Completing twice fails: the session is no longer active.
	if err := repo.Complete(ctx, "s1", CompletionStats{}); err == nil {
		t.Error("expected error completing a completed session")
	}
}

func TestAbandonedSessionsDoNotFeedCarryover(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	err := repo.Create(ctx, &SessionRecord{
		ID:               "s1",
		SkillID:          "fraction-comparison",
		StartedAt:        time.Now(),
		StartDifficulty:  3,
		StartVisualLevel: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Abandon(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	latest, err := repo.LatestCompleted(ctx, "fraction-comparison")
	if err != nil {
		t.Fatal(err)
	}
	if latest != nil {
		t.Fatalf("abandoned session leaked into carryover: %+v", latest)
	}
}

func TestAttemptAndAdaptationSequencing(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	err := repo.Create(ctx, &SessionRecord{
		ID: "s1", SkillID: "integer-addition", StartedAt: time.Now(),
		StartDifficulty: 1, StartVisualLevel: 5,
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 3; i++ {
		err := repo.AppendAttempt(ctx, AttemptData{
			SessionID:      "s1",
			SkillID:        "integer-addition",
			Sequence:       i,
			GroupNumber:    1,
			Prompt:         "What is 2 + 3?",
			CorrectAnswer:  "5",
			GivenAnswer:    "5",
			Correct:        true,
			ResponseTimeMs: 3000,
			Difficulty:     1,
			VisualLevel:    5,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	err = repo.AppendAdaptation(ctx, AdaptationEventData{
		SessionID:       "s1",
		SkillID:         "integer-addition",
		GroupNumber:     1,
		Outcome:         "perfect",
		Reason:          "all 3 correct",
		FromDifficulty:  1,
		FromVisualLevel: 5,
		ToDifficulty:    1,
		ToVisualLevel:   4,
		CorrectCount:    3,
		GroupSize:       3,
		AvgResponseMs:   3000,
	})
	if err != nil {
		t.Fatal(err)
	}

	// The cross-table sequence must be strictly increasing.
	var maxAttemptSeq, adaptSeq int64
	if err := s.DB().QueryRow("SELECT MAX(sequence) FROM attempts").Scan(&maxAttemptSeq); err != nil {
		t.Fatal(err)
	}
	if err := s.DB().QueryRow("SELECT sequence FROM adaptation_events").Scan(&adaptSeq); err != nil {
		t.Fatal(err)
	}
	if adaptSeq <= maxAttemptSeq {
		t.Errorf("adaptation sequence %d not after attempts %d", adaptSeq, maxAttemptSeq)
	}
}

func TestFactRepoUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.Facts()
	ctx := context.Background()

	for _, correct := range []bool{true, false, true} {
		if err := repo.RecordFact(ctx, "multiplication-facts", "3x7", correct); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.RecordFact(ctx, "multiplication-facts", "2x5", true); err != nil {
		t.Fatal(err)
	}

	ledger, err := repo.LoadLedger(ctx, "multiplication-facts")
	if err != nil {
		t.Fatal(err)
	}
	stat := ledger.Get("3x7")
	if stat.TimesSeen != 3 || stat.TimesCorrect != 2 {
		t.Errorf("3x7 stat = %+v, want 3 seen / 2 correct", stat)
	}
	if ledger.Seen(2, 5) != 1 {
		t.Errorf("2x5 seen %d times, want 1", ledger.Seen(2, 5))
	}
	if ledger.Seen(4, 9) != 0 {
		t.Error("4x9 should be unseen")
	}

	if err := repo.ResetFacts(ctx, "multiplication-facts"); err != nil {
		t.Fatal(err)
	}
	ledger, err = repo.LoadLedger(ctx, "multiplication-facts")
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Seen(3, 7) != 0 {
		t.Error("ledger not cleared by reset")
	}
}

func TestSkillProgressAggregation(t *testing.T) {
	s := openTestStore(t)
	sessions := s.Sessions()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	finals := []struct {
		id      string
		visual  int
		maxDiff int
		topTier bool
		correct int
		total   int
		avgMs   int
	}{
		{"s1", 5, 2, false, 9, 15, 9000},
		{"s2", 4, 3, false, 12, 15, 7000},
		{"s3", 3, 5, true, 14, 15, 5000},
	}
	t.Cleanup(func() { timeNow = time.Now })
	for i, f := range finals {
		// Pin completion timestamps so session order is deterministic.
		completed := base.Add(time.Duration(i)*time.Minute + 30*time.Second)
		timeNow = func() time.Time { return completed }
		err := sessions.Create(ctx, &SessionRecord{
			ID:               f.id,
			SkillID:          "multiplication-facts",
			StartedAt:        base.Add(time.Duration(i) * time.Minute),
			StartDifficulty:  1,
			StartVisualLevel: 5,
		})
		if err != nil {
			t.Fatal(err)
		}
		err = sessions.Complete(ctx, f.id, CompletionStats{
			TotalProblems:    f.total,
			CorrectCount:     f.correct,
			AvgResponseMs:    f.avgMs,
			FinalDifficulty:  f.maxDiff,
			FinalVisualLevel: f.visual,
			MaxDifficulty:    f.maxDiff,
			TopTierCompleted: f.topTier,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	prog, err := s.Progress().SkillProgress(ctx, "multiplication-facts")
	if err != nil {
		t.Fatal(err)
	}
	if prog.SessionsCompleted != 3 {
		t.Errorf("sessions = %d, want 3", prog.SessionsCompleted)
	}
	if prog.TotalProblems != 45 || prog.TotalCorrect != 35 {
		t.Errorf("totals = %d/%d, want 35/45", prog.TotalCorrect, prog.TotalProblems)
	}
	if prog.MaxDifficulty != 5 {
		t.Errorf("max difficulty = %d", prog.MaxDifficulty)
	}
	if prog.TopTierSessions != 1 {
		t.Errorf("top tier sessions = %d", prog.TopTierSessions)
	}
	want := []int{5, 4, 3}
	if len(prog.RecentVisualLevels) != 3 {
		t.Fatalf("visual levels = %v", prog.RecentVisualLevels)
	}
	for i, v := range want {
		if prog.RecentVisualLevels[i] != v {
			t.Errorf("visual levels = %v, want %v", prog.RecentVisualLevels, want)
			break
		}
	}

	// Unplayed skills aggregate to zero, never nil.
	empty, err := s.Progress().SkillProgress(ctx, "fraction-comparison")
	if err != nil {
		t.Fatal(err)
	}
	if empty == nil || empty.SessionsCompleted != 0 {
		t.Errorf("empty progress = %+v", empty)
	}
}

func TestResetSkill(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"r1", "r2"} {
		skill := "multiplication-facts"
		if id == "r2" {
			skill = "integer-addition"
		}
		if err := s.Sessions().Create(ctx, &SessionRecord{
			ID:               id,
			SkillID:          skill,
			StartedAt:        time.Now(),
			StartDifficulty:  1,
			StartVisualLevel: 5,
		}); err != nil {
			t.Fatal(err)
		}
		if err := s.Sessions().AppendAttempt(ctx, AttemptData{
			SessionID:     id,
			SkillID:       skill,
			Sequence:      1,
			Prompt:        "What is 3 x 7?",
			CorrectAnswer: "21",
			GivenAnswer:   "21",
			Correct:       true,
		}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Facts().RecordFact(ctx, "multiplication-facts", "3x7", true); err != nil {
		t.Fatal(err)
	}

	if err := s.ResetSkill(ctx, "multiplication-facts"); err != nil {
		t.Fatal(err)
	}

	gone, err := s.Sessions().Get(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if gone != nil {
		t.Error("expected reset skill's session to be deleted")
	}
	kept, err := s.Sessions().Get(ctx, "r2")
	if err != nil {
		t.Fatal(err)
	}
	if kept == nil {
		t.Error("expected other skill's session to survive")
	}

	ledger, err := s.Facts().LoadLedger(ctx, "multiplication-facts")
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Get("3x7").TimesSeen != 0 {
		t.Error("expected fact stats to be cleared")
	}
}

func TestResetAll(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Sessions().Create(ctx, &SessionRecord{
		ID:               "ra1",
		SkillID:          "fraction-comparison",
		StartedAt:        time.Now(),
		StartDifficulty:  1,
		StartVisualLevel: 5,
	}); err != nil {
		t.Fatal(err)
	}

	if err := s.ResetAll(ctx); err != nil {
		t.Fatal(err)
	}

	rec, err := s.Sessions().Get(ctx, "ra1")
	if err != nil {
		t.Fatal(err)
	}
	if rec != nil {
		t.Error("expected all sessions to be deleted")
	}
}
