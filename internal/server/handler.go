package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/mathspiral/mathspiral/internal/fluency"
	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/session"
	"github.com/mathspiral/mathspiral/internal/skills"
	"github.com/mathspiral/mathspiral/internal/store"
)

// Handler serves the practice API. Live sessions are held in memory
// and keyed by id; one handler serves one student device.
type Handler struct {
	svc      *session.Service
	progress store.ProgressRepo

	mu   sync.Mutex
	live map[string]*liveSession
}

// liveSession serializes all operations on one session. Session state
// is not safe for concurrent mutation, so every handler that touches
// the session holds this lock across the service call.
type liveSession struct {
	mu   sync.Mutex
	sess *session.Session
}

// NewHandler wires a Handler over the session service.
func NewHandler(svc *session.Service, progress store.ProgressRepo) *Handler {
	return &Handler{
		svc:      svc,
		progress: progress,
		live:     make(map[string]*liveSession),
	}
}

func jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResponse(w http.ResponseWriter, message string, status int) {
	jsonResponse(w, map[string]string{"error": message}, status)
}

func (h *Handler) lookup(id string) *liveSession {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live[id]
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	}, http.StatusOK)
}

type skillView struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Domain        string  `json:"domain"`
	GradeLevel    int     `json:"grade_level"`
	ProblemType   string  `json:"problem_type"`
	FluencyStatus string  `json:"fluency_status"`
	FluencyLabel  string  `json:"fluency_label"`
	Accuracy      float64 `json:"accuracy"`
	Sessions      int     `json:"sessions_completed"`
}

// ListSkills returns the catalog with per-skill fluency status.
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	out := make([]skillView, 0, len(skills.All()))
	for _, sk := range skills.All() {
		prog, err := h.progress.SkillProgress(r.Context(), sk.ID)
		if err != nil {
			errorResponse(w, "load progress: "+err.Error(), http.StatusInternalServerError)
			return
		}
		status := classify(sk, prog)
		out = append(out, skillView{
			ID:            sk.ID,
			Name:          sk.Name,
			Description:   sk.Description,
			Domain:        string(sk.Domain),
			GradeLevel:    sk.GradeLevel,
			ProblemType:   string(sk.ProblemType),
			FluencyStatus: string(status),
			FluencyLabel:  status.Label(),
			Accuracy:      prog.Accuracy(),
			Sessions:      prog.SessionsCompleted,
		})
	}
	jsonResponse(w, out, http.StatusOK)
}

// SkillProgress returns one skill's aggregated history and fluency
// classification.
func (h *Handler) SkillProgress(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sk, err := skills.Get(id)
	if err != nil {
		errorResponse(w, err.Error(), http.StatusNotFound)
		return
	}
	prog, err := h.progress.SkillProgress(r.Context(), id)
	if err != nil {
		errorResponse(w, "load progress: "+err.Error(), http.StatusInternalServerError)
		return
	}
	status := classify(sk, prog)
	jsonResponse(w, map[string]any{
		"skill_id":           sk.ID,
		"name":               sk.Name,
		"fluency_status":     status,
		"fluency_label":      status.Label(),
		"sessions_completed": prog.SessionsCompleted,
		"total_problems":     prog.TotalProblems,
		"total_correct":      prog.TotalCorrect,
		"accuracy":           prog.Accuracy(),
		"avg_response_ms":    prog.AvgResponseMs,
		"max_difficulty":     prog.MaxDifficulty,
		"visual_trend":       fluency.Trend(prog.RecentVisualLevels),
		"last_practiced":     prog.LastPracticed,
	}, http.StatusOK)
}

func classify(sk skills.Skill, prog *store.SkillProgress) fluency.Status {
	return fluency.Classify(fluency.Input{
		SessionsCompleted: prog.SessionsCompleted,
		Accuracy:          prog.Accuracy(),
		AvgResponseTimeMs: float64(prog.AvgResponseMs),
		MaxDifficulty:     prog.MaxDifficulty,
		TopTierSessions:   prog.TopTierSessions,
		ProblemType:       sk.ProblemType,
	})
}

type startRequest struct {
	SkillID string `json:"skill_id"`
}

// StartSession opens a session and registers it.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SkillID == "" {
		errorResponse(w, "skill_id is required", http.StatusBadRequest)
		return
	}

	sess, err := h.svc.Start(r.Context(), req.SkillID)
	if err != nil {
		if _, lookupErr := skills.Get(req.SkillID); lookupErr != nil {
			errorResponse(w, lookupErr.Error(), http.StatusNotFound)
			return
		}
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	h.live[sess.ID] = &liveSession{sess: sess}
	h.mu.Unlock()

	jsonResponse(w, map[string]any{
		"session_id":     sess.ID,
		"skill_id":       sess.Skill.ID,
		"total_problems": sess.Config.TotalProblems,
		"group_size":     sess.Config.GroupSize,
		"difficulty":     sess.State.Difficulty,
		"visual_level":   sess.State.VisualLevel,
	}, http.StatusCreated)
}

// problemView is the problem as shown while solving: no answer, no
// explanation, and no hint when scaffolding is off.
type problemView struct {
	Sequence    int              `json:"sequence"`
	Total       int              `json:"total"`
	Prompt      string           `json:"prompt"`
	Format      string           `json:"format"`
	Choices     []string         `json:"choices,omitempty"`
	Difficulty  int              `json:"difficulty"`
	VisualLevel int              `json:"visual_level"`
	Hint        *problemgen.Hint `json:"hint,omitempty"`
}

func viewOf(sess *session.Session, p *problemgen.Problem) problemView {
	v := problemView{
		Sequence:    sess.Sequence + 1,
		Total:       sess.Config.TotalProblems,
		Prompt:      p.Prompt,
		Format:      string(p.Format),
		Choices:     p.Choices,
		Difficulty:  p.Difficulty,
		VisualLevel: p.VisualLevel,
	}
	if p.Visual != nil && p.Visual.Tier != problemgen.TierNone {
		v.Hint = p.Visual
	}
	return v
}

// GetProblem serves the outstanding problem, generating one if
// needed. Asking again before answering returns the same problem.
func (h *Handler) GetProblem(w http.ResponseWriter, r *http.Request) {
	ls := h.lookup(mux.Vars(r)["id"])
	if ls == nil {
		errorResponse(w, "session not found", http.StatusNotFound)
		return
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	sess := ls.sess

	p, err := h.svc.NextProblem(sess)
	if errors.Is(err, session.ErrSessionComplete) {
		errorResponse(w, "session complete", http.StatusConflict)
		return
	}
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(w, viewOf(sess, p), http.StatusOK)
}

type answerRequest struct {
	Answer         string `json:"answer"`
	ResponseTimeMs int    `json:"response_time_ms"`
}

type decisionView struct {
	Outcome     string `json:"outcome"`
	Reason      string `json:"reason"`
	Difficulty  int    `json:"difficulty"`
	VisualLevel int    `json:"visual_level"`
}

// SubmitAnswer records the answer and returns feedback.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	ls := h.lookup(mux.Vars(r)["id"])
	if ls == nil {
		errorResponse(w, "session not found", http.StatusNotFound)
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	sess := ls.sess

	fb, err := h.svc.SubmitAnswer(r.Context(), sess, req.Answer, req.ResponseTimeMs)
	if err != nil {
		var invalid *problemgen.InvalidAnswerError
		var outOfSeq *session.OutOfSequenceError
		switch {
		case errors.As(err, &invalid):
			errorResponse(w, invalid.Error(), http.StatusUnprocessableEntity)
		case errors.As(err, &outOfSeq):
			errorResponse(w, outOfSeq.Error(), http.StatusConflict)
		case errors.Is(err, session.ErrSessionComplete):
			errorResponse(w, "session complete", http.StatusConflict)
		default:
			errorResponse(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	resp := map[string]any{
		"correct":        fb.Correct,
		"correct_answer": fb.CorrectAnswer,
		"explanation":    fb.Explanation,
		"message":        fb.Message,
		"show_visual":    fb.ShowVisual,
		"hint":           fb.Hint,
		"done":           fb.Done,
		"answered":       sess.Sequence,
		"remaining":      sess.Remaining(),
	}
	if fb.Decision != nil {
		resp["adaptation"] = decisionView{
			Outcome:     string(fb.Decision.Outcome),
			Reason:      fb.Decision.Reason,
			Difficulty:  sess.State.Difficulty,
			VisualLevel: sess.State.VisualLevel,
		}
	}
	jsonResponse(w, resp, http.StatusOK)
}

// GetSummary returns the end-of-session view for a completed session.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ls := h.lookup(mux.Vars(r)["id"])
	if ls == nil {
		errorResponse(w, "session not found", http.StatusNotFound)
		return
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	sess := ls.sess
	if sess.Status != session.StatusCompleted {
		errorResponse(w, "session not completed", http.StatusConflict)
		return
	}

	sum, err := h.svc.BuildSummary(r.Context(), sess)
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(w, map[string]any{
		"session_id":      sum.SessionID,
		"skill_id":        sum.SkillID,
		"skill_name":      sum.SkillName,
		"total_problems":  sum.TotalProblems,
		"correct_count":   sum.CorrectCount,
		"accuracy_pct":    sum.Accuracy * 100,
		"avg_response_ms": sum.AvgResponseMs,
		"start_state":     sum.StartState,
		"final_state":     sum.FinalState,
		"max_difficulty":  sum.MaxDifficulty,
		"message":         sum.Message,
		"visual_trend":    sum.VisualTrend,
		"duration_secs":   int(sum.Duration.Seconds()),
	}, http.StatusOK)
}

// AbandonSession marks a live session abandoned and drops it from
// the registry.
func (h *Handler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ls := h.lookup(id)
	if ls == nil {
		errorResponse(w, "session not found", http.StatusNotFound)
		return
	}
	ls.mu.Lock()
	err := h.svc.Abandon(r.Context(), ls.sess)
	ls.mu.Unlock()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	delete(h.live, id)
	h.mu.Unlock()

	jsonResponse(w, map[string]string{"status": string(session.StatusAbandoned)}, http.StatusOK)
}
