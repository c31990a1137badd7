package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/session"
	"github.com/mathspiral/mathspiral/internal/store"
)

var testDBCounter int

func newTestServer(t *testing.T) (http.Handler, *Handler) {
	t.Helper()
	testDBCounter++
	dsn := fmt.Sprintf("file:servertest%d?mode=memory&cache=shared", testDBCounter)
	st, err := store.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := session.NewService(st.Sessions(), st.Progress(), st.Facts(), problemgen.New(1))
	h := NewHandler(svc, st.Progress())
	return NewRouter(h), h
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec, body := doJSON(t, srv, "GET", "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestListSkills(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest("GET", "/api/v1/skills", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 11)
	for _, sk := range out {
		assert.Equal(t, "not_started", sk["fluency_status"], "unplayed skill %v", sk["id"])
	}
}

func TestStartSessionValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, _ := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "calculus"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartSessionDefaults(t *testing.T) {
	srv, _ := newTestServer(t)
	rec, body := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "integer-addition"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, body["session_id"])
	assert.EqualValues(t, 15, body["total_problems"])
	assert.EqualValues(t, 1, body["difficulty"])
	assert.EqualValues(t, 5, body["visual_level"])
}

func TestProblemViewHidesAnswer(t *testing.T) {
	srv, h := newTestServer(t)
	_, body := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "fraction-comparison"})
	id := body["session_id"].(string)

	rec, problem := doJSON(t, srv, "GET", "/api/v1/practice/"+id+"/problem", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, problem["prompt"])
	assert.NotContains(t, problem, "answer")
	assert.NotContains(t, problem, "explanation")
	assert.EqualValues(t, 1, problem["sequence"])

	// Visual level 5 is static scaffolding: the hint ships with the
	// problem.
	assert.Contains(t, problem, "hint")

	// Re-requesting before answering returns the same problem.
	_, again := doJSON(t, srv, "GET", "/api/v1/practice/"+id+"/problem", nil)
	assert.Equal(t, problem["prompt"], again["prompt"])

	// The registry still holds the outstanding problem server-side.
	ls := h.lookup(id)
	require.NotNil(t, ls)
	require.NotNil(t, ls.sess.Current)
	assert.NotEmpty(t, ls.sess.Current.Answer)
}

func TestFullSessionOverHTTP(t *testing.T) {
	srv, h := newTestServer(t)
	_, body := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "integer-addition"})
	id := body["session_id"].(string)

	var last map[string]any
	for i := 0; i < 15; i++ {
		rec, _ := doJSON(t, srv, "GET", "/api/v1/practice/"+id+"/problem", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		// Answer correctly via the server-side registry.
		answer := h.lookup(id).sess.Current.Answer
		rec, last = doJSON(t, srv, "POST", "/api/v1/practice/"+id+"/answer", map[string]any{
			"answer":           answer,
			"response_time_ms": 3000,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, true, last["correct"])
	}

	assert.Equal(t, true, last["done"])
	assert.Contains(t, last, "adaptation")

	rec, sum := doJSON(t, srv, "GET", "/api/v1/practice/"+id+"/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 15, sum["total_problems"])
	assert.EqualValues(t, 15, sum["correct_count"])
	assert.EqualValues(t, 100, sum["accuracy_pct"])
	assert.NotEmpty(t, sum["message"])

	// No further problems.
	rec, _ = doJSON(t, srv, "GET", "/api/v1/practice/"+id+"/problem", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSkillProgressEndpoint(t *testing.T) {
	srv, h := newTestServer(t)
	_, body := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "integer-addition"})
	id := body["session_id"].(string)

	for i := 0; i < 15; i++ {
		doJSON(t, srv, "GET", "/api/v1/practice/"+id+"/problem", nil)
		answer := h.lookup(id).sess.Current.Answer
		doJSON(t, srv, "POST", "/api/v1/practice/"+id+"/answer", map[string]any{
			"answer":           answer,
			"response_time_ms": 3000,
		})
	}

	rec, prog := doJSON(t, srv, "GET", "/api/v1/skills/integer-addition/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, prog["sessions_completed"])
	assert.EqualValues(t, 1, prog["accuracy"])
	assert.EqualValues(t, 3000, prog["avg_response_ms"])
	assert.NotEqual(t, "not_started", prog["fluency_status"])

	rec, _ = doJSON(t, srv, "GET", "/api/v1/skills/calculus/progress", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConcurrentAnswersSerialized(t *testing.T) {
	srv, h := newTestServer(t)
	_, body := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "integer-addition"})
	id := body["session_id"].(string)

	doJSON(t, srv, "GET", "/api/v1/practice/"+id+"/problem", nil)
	answer := h.lookup(id).sess.Current.Answer
	payload, err := json.Marshal(map[string]any{"answer": answer, "response_time_ms": 1000})
	require.NoError(t, err)

	// One outstanding problem, many racing submissions: exactly one
	// may land, the rest see the out-of-sequence conflict.
	const workers = 8
	codes := make(chan int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest("POST", "/api/v1/practice/"+id+"/answer", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			codes <- rec.Code
		}()
	}
	wg.Wait()
	close(codes)

	var ok, conflict int
	for code := range codes {
		switch code {
		case http.StatusOK:
			ok++
		case http.StatusConflict:
			conflict++
		default:
			t.Errorf("unexpected status %d", code)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflict)
	assert.Equal(t, 1, h.lookup(id).sess.Sequence)
}

func TestSubmitAnswerErrors(t *testing.T) {
	srv, h := newTestServer(t)
	_, body := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "integer-addition"})
	id := body["session_id"].(string)

	// Answer with no outstanding problem.
	rec, _ := doJSON(t, srv, "POST", "/api/v1/practice/"+id+"/answer", map[string]any{"answer": "3"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unparseable answer.
	_, _ = doJSON(t, srv, "GET", "/api/v1/practice/"+id+"/problem", nil)
	rec, _ = doJSON(t, srv, "POST", "/api/v1/practice/"+id+"/answer", map[string]any{"answer": "banana"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotNil(t, h.lookup(id).sess.Current, "problem should stay outstanding")

	// Unknown session.
	rec, _ = doJSON(t, srv, "POST", "/api/v1/practice/nope/answer", map[string]any{"answer": "3"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSummaryBeforeCompletion(t *testing.T) {
	srv, _ := newTestServer(t)
	_, body := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "integer-addition"})
	id := body["session_id"].(string)

	rec, _ := doJSON(t, srv, "GET", "/api/v1/practice/"+id+"/summary", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAbandonSession(t *testing.T) {
	srv, h := newTestServer(t)
	_, body := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "integer-addition"})
	id := body["session_id"].(string)

	rec, out := doJSON(t, srv, "POST", "/api/v1/practice/"+id+"/abandon", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abandoned", out["status"])
	assert.Nil(t, h.lookup(id), "abandoned session should leave the registry")

	// Abandoned sessions never feed carryover: a new session starts
	// at the defaults.
	_, restart := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "integer-addition"})
	assert.EqualValues(t, 1, restart["difficulty"])
	assert.EqualValues(t, 5, restart["visual_level"])
}

func TestCarryoverAcrossSessions(t *testing.T) {
	srv, h := newTestServer(t)
	_, body := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "integer-addition"})
	id := body["session_id"].(string)

	for i := 0; i < 15; i++ {
		doJSON(t, srv, "GET", "/api/v1/practice/"+id+"/problem", nil)
		answer := h.lookup(id).sess.Current.Answer
		doJSON(t, srv, "POST", "/api/v1/practice/"+id+"/answer", map[string]any{
			"answer":           answer,
			"response_time_ms": 3000,
		})
	}

	// Perfect run from {1,5} lands on {2,4}; the next session on the
	// same skill picks that up.
	_, next := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "integer-addition"})
	assert.EqualValues(t, 2, next["difficulty"])
	assert.EqualValues(t, 4, next["visual_level"])

	// A different skill is unaffected.
	_, other := doJSON(t, srv, "POST", "/api/v1/practice/start", map[string]string{"skill_id": "fraction-comparison"})
	assert.EqualValues(t, 1, other["difficulty"])
	assert.EqualValues(t, 5, other["visual_level"])
}
