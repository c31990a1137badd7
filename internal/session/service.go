package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mathspiral/mathspiral/internal/adaptation"
	"github.com/mathspiral/mathspiral/internal/facts"
	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/skills"
	"github.com/mathspiral/mathspiral/internal/store"
)

// Feedback is what the student sees after submitting an answer.
type Feedback struct {
	Correct       bool
	CorrectAnswer string
	Explanation   string

	// Message is a short reaction line: praise when correct, the
	// correction otherwise.
	Message string

	// ShowVisual asks the display layer to render the hint regardless
	// of scaffolding level; set after wrong answers.
	ShowVisual bool
	Hint       *problemgen.Hint

	// Decision is non-nil when this answer closed a group and the
	// difficulty state was re-evaluated.
	Decision *adaptation.Decision

	// Done is true when this answer completed the session.
	Done bool
}

// Service orchestrates practice sessions: problem serving, answer
// handling, group-boundary adaptation, and persistence.
type Service struct {
	sessions store.SessionRepo
	progress store.ProgressRepo
	facts    store.FactRepo
	gen      *problemgen.Generator

	now   func() time.Time
	newID func() string
}

// NewService wires a Service over the given repositories and
// generator.
func NewService(sessions store.SessionRepo, progress store.ProgressRepo, factRepo store.FactRepo, gen *problemgen.Generator) *Service {
	return &Service{
		sessions: sessions,
		progress: progress,
		facts:    factRepo,
		gen:      gen,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Start opens a new session for a skill. The starting difficulty and
// visual level carry over from the student's latest completed session
// on the same skill; first-time skills start at difficulty 1 with
// full visual support.
func (svc *Service) Start(ctx context.Context, skillID string) (*Session, error) {
	skill, err := skills.Get(skillID)
	if err != nil {
		return nil, err
	}

	state := adaptation.DefaultState()
	var (
		prevCorrect int
		prevAvgMs   int
		hasPrev     bool
	)
	prev, err := svc.sessions.LatestCompleted(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("load carryover: %w", err)
	}
	if prev != nil {
		carried := adaptation.State{
			Difficulty:  prev.FinalDifficulty,
			VisualLevel: prev.FinalVisualLevel,
		}
		if carried.Valid() {
			state = carried
		}
		prevCorrect = prev.CorrectCount
		prevAvgMs = prev.AvgResponseMs
		hasPrev = true
	}

	var ledger *facts.Ledger
	if skill.UsesFactLedger() {
		ledger, err = svc.facts.LoadLedger(ctx, skillID)
		if err != nil {
			return nil, fmt.Errorf("load fact ledger: %w", err)
		}
	}

	sess := &Session{
		ID:                svc.newID(),
		Skill:             skill,
		Config:            adaptation.ConfigFor(skill.ProblemType),
		StartState:        state,
		State:             state,
		Status:            StatusActive,
		MaxDifficulty:     state.Difficulty,
		Ledger:            ledger,
		prevCorrectCount:  prevCorrect,
		prevAvgResponseMs: prevAvgMs,
		hasPrev:           hasPrev,
		StartedAt:         svc.now(),
	}

	err = svc.sessions.Create(ctx, &store.SessionRecord{
		ID:               sess.ID,
		SkillID:          skill.ID,
		Status:           store.StatusActive,
		StartedAt:        sess.StartedAt,
		StartDifficulty:  state.Difficulty,
		StartVisualLevel: state.VisualLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// NextProblem returns the problem the student should answer next,
// generating one if none is outstanding. Asking again before
// answering returns the same problem.
func (svc *Service) NextProblem(sess *Session) (*problemgen.Problem, error) {
	if sess.Status != StatusActive {
		return nil, ErrSessionComplete
	}
	if sess.Current != nil {
		return sess.Current, nil
	}
	if sess.Remaining() == 0 {
		return nil, ErrSessionComplete
	}

	p, err := svc.gen.Generate(problemgen.GenerateInput{
		Type:        sess.Skill.ProblemType,
		Difficulty:  sess.State.Difficulty,
		VisualLevel: sess.State.VisualLevel,
		Ledger:      sess.Ledger,
	})
	if err != nil {
		return nil, fmt.Errorf("generate problem: %w", err)
	}
	sess.Current = p
	return p, nil
}

// SubmitAnswer checks the outstanding problem's answer, records the
// attempt, runs group-boundary adaptation, and closes the session
// when the plan is done. Unparseable input returns a
// *problemgen.InvalidAnswerError and records nothing.
func (svc *Service) SubmitAnswer(ctx context.Context, sess *Session, input string, responseTimeMs int) (*Feedback, error) {
	if sess.Status != StatusActive {
		return nil, ErrSessionComplete
	}
	p := sess.Current
	if p == nil {
		return nil, &OutOfSequenceError{SessionID: sess.ID}
	}
	if err := problemgen.ValidateAnswer(input, p); err != nil {
		return nil, err
	}
	if responseTimeMs < 0 {
		responseTimeMs = 0
	}

	correct := problemgen.CheckAnswer(input, p)
	sess.Sequence++
	sess.TotalResponseMs += int64(responseTimeMs)
	if correct {
		sess.CorrectCount++
	}
	sess.group.Total++
	if correct {
		sess.group.CorrectCount++
	}
	sess.groupResponseMs += int64(responseTimeMs)

	factKey := svc.recordFact(ctx, sess, p, correct)

	err := svc.sessions.AppendAttempt(ctx, store.AttemptData{
		SessionID:      sess.ID,
		SkillID:        sess.Skill.ID,
		Sequence:       sess.Sequence,
		GroupNumber:    sess.Config.GroupNumber(sess.Sequence),
		Prompt:         p.Prompt,
		CorrectAnswer:  p.Answer,
		GivenAnswer:    input,
		Correct:        correct,
		ResponseTimeMs: responseTimeMs,
		Difficulty:     p.Difficulty,
		VisualLevel:    p.VisualLevel,
		FactKey:        factKey,
	})
	if err != nil {
		return nil, fmt.Errorf("append attempt: %w", err)
	}

	fb := &Feedback{
		Correct:       correct,
		CorrectAnswer: p.Answer,
		Explanation:   p.Explanation,
		Hint:          p.Visual,
	}
	if correct {
		fb.Message = praiseLine(sess.Sequence)
	} else {
		fb.Message = fmt.Sprintf("The correct answer is %s.", p.Answer)
		fb.ShowVisual = true
	}
	sess.Current = nil

	if sess.Config.IsGroupBoundary(sess.Sequence) {
		decision, err := svc.closeGroup(ctx, sess)
		if err != nil {
			return nil, err
		}
		fb.Decision = decision
	}

	if sess.Remaining() == 0 {
		if err := svc.complete(ctx, sess); err != nil {
			return nil, err
		}
		fb.Done = true
	}
	return fb, nil
}

// closeGroup runs adaptation over the accumulated group and persists
// the decision.
func (svc *Service) closeGroup(ctx context.Context, sess *Session) (*adaptation.Decision, error) {
	group := sess.group
	if group.Total > 0 {
		group.AvgResponseTimeMs = float64(sess.groupResponseMs) / float64(group.Total)
	}

	from := sess.State
	if from.Difficulty == adaptation.MaxLevel {
		sess.TopTierCompleted = true
	}

	next, decision := adaptation.Adapt(group, from)
	sess.State = next
	if next.Difficulty > sess.MaxDifficulty {
		sess.MaxDifficulty = next.Difficulty
	}
	sess.Decisions = append(sess.Decisions, decision)
	sess.group = adaptation.GroupResult{}
	sess.groupResponseMs = 0

	err := svc.sessions.AppendAdaptation(ctx, store.AdaptationEventData{
		SessionID:       sess.ID,
		SkillID:         sess.Skill.ID,
		GroupNumber:     sess.Config.GroupNumber(sess.Sequence),
		Outcome:         string(decision.Outcome),
		Reason:          decision.Reason,
		FromDifficulty:  from.Difficulty,
		FromVisualLevel: from.VisualLevel,
		ToDifficulty:    next.Difficulty,
		ToVisualLevel:   next.VisualLevel,
		CorrectCount:    group.CorrectCount,
		GroupSize:       group.Total,
		AvgResponseMs:   int(group.AvgResponseTimeMs),
	})
	if err != nil {
		return nil, fmt.Errorf("append adaptation: %w", err)
	}
	return &decision, nil
}

// complete closes the session and writes its stats.
func (svc *Service) complete(ctx context.Context, sess *Session) error {
	sess.Status = StatusCompleted
	sess.CompletedAt = svc.now()

	err := svc.sessions.Complete(ctx, sess.ID, store.CompletionStats{
		TotalProblems:    sess.Sequence,
		CorrectCount:     sess.CorrectCount,
		AvgResponseMs:    sess.AvgResponseMs(),
		FinalDifficulty:  sess.State.Difficulty,
		FinalVisualLevel: sess.State.VisualLevel,
		MaxDifficulty:    sess.MaxDifficulty,
		TopTierCompleted: sess.TopTierCompleted,
		DurationSecs:     int(sess.CompletedAt.Sub(sess.StartedAt).Seconds()),
	})
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

// Abandon marks an active session abandoned. Abandoned sessions
// never feed carryover or fluency.
func (svc *Service) Abandon(ctx context.Context, sess *Session) error {
	if sess.Status != StatusActive {
		return nil
	}
	sess.Status = StatusAbandoned
	if err := svc.sessions.Abandon(ctx, sess.ID); err != nil {
		return fmt.Errorf("abandon session: %w", err)
	}
	return nil
}

// recordFact updates the in-memory ledger and the persisted fact
// stats for fact-drill problems. Returns the canonical fact key, or
// "" for non-fact problems.
func (svc *Service) recordFact(ctx context.Context, sess *Session, p *problemgen.Problem, correct bool) string {
	if !sess.Skill.UsesFactLedger() || sess.Ledger == nil {
		return ""
	}
	am := p.Visual.ArrayModel
	if am == nil {
		return ""
	}
	sess.Ledger.Record(am.Rows, am.Cols, correct)
	key := facts.Key(am.Rows, am.Cols)

	// A fact write failure must not lose the attempt, which is
	// recorded separately.
	if err := svc.facts.RecordFact(ctx, sess.Skill.ID, key, correct); err != nil {
		log.Printf("record fact %s: %v", key, err)
	}
	return key
}
