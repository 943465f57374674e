package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/quizbook/internal/attempts"
	"github.com/abhisek/quizbook/internal/bank"
	"github.com/abhisek/quizbook/internal/config"
	"github.com/abhisek/quizbook/internal/quiz"
	"github.com/abhisek/quizbook/internal/store"
)

func testBank() *bank.Bank {
	opts := []string{"a", "b", "c", "d"}
	return &bank.Bank{
		Title: "Test Bank",
		Chapters: []bank.Chapter{
			{Number: 1, Name: "One"},
			{Number: 2, Name: "Two"},
			{Number: 3, Name: "Three"},
		},
		Questions: []quiz.Question{
			{Chapter: 1, Text: "Q1", Options: opts, Answer: 0, Explanation: "E1"},
			{Chapter: 2, Text: "Q2", Options: opts, Answer: 1, Explanation: "E2"},
		},
	}
}

type harness struct {
	t    *testing.T
	srv  *Server
	h    http.Handler
	repo store.EventRepo
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	repo := st.EventRepo()
	srv := New(testBank(), attempts.NewRecorder(repo, nil), nil, config.Serve{
		CORSOrigins:    []string{"*"},
		RequestTimeout: 5 * time.Second,
	})
	return &harness{t: t, srv: srv, h: srv.Handler(), repo: repo}
}

func (h *harness) do(method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(h.t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (h *harness) create() sessionView {
	h.t.Helper()
	rec := h.do(http.MethodPost, "/sessions", nil)
	require.Equal(h.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[sessionView](h.t, rec)
}

func TestHealthAndBank(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(http.MethodGet, "/bank", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	b := decode[bankView](t, rec)
	assert.Equal(t, "Test Bank", b.Title)
	assert.Equal(t, 2, b.Questions)
	require.Len(t, b.Chapters, 3)
	assert.Equal(t, chapterView{Number: 3, Name: "Three", Questions: 0}, b.Chapters[2])
}

func TestCreateSession(t *testing.T) {
	h := newHarness(t)
	v := h.create()

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "in_progress", v.Phase)
	assert.Equal(t, 0, v.Index)
	assert.Equal(t, 2, v.Total)
	assert.InDelta(t, 0.5, v.Progress, 1e-9)
	assert.Equal(t, []int{-1, -1}, v.Answers)
	assert.False(t, v.Question.Answered)
	assert.Nil(t, v.Question.CorrectOption, "correct option hidden before answering")
	assert.Empty(t, v.Question.Explanation)
	assert.Equal(t, "One", v.Question.ChapterName)
	assert.Equal(t, navigationView{Next: true}, v.Navigation)
}

func TestUnknownSession(t *testing.T) {
	h := newHarness(t)
	for _, path := range []string{"/sessions/nope", "/sessions/nope/score", "/sessions/nope/review"} {
		rec := h.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "session not found", decode[errorBody](t, rec).Error)
	}
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodPost, "/sessions/nope/next", nil).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodDelete, "/sessions/nope", nil).Code)
}

func TestMalformedBody(t *testing.T) {
	h := newHarness(t)
	id := h.create().ID

	tests := []struct {
		path string
		body any
	}{
		{"/answer", "{not json"},
		{"/answer", nil},
		{"/answer", map[string]any{}},
		{"/goto", "[]"},
		{"/goto", map[string]any{"option": 1}},
		{"/answer", `{"option": 2} trailing`},
		{"/goto", `{"index": 1}{"index": 2}`},
	}
	for _, tt := range tests {
		rec := h.do(http.MethodPost, "/sessions/"+id+tt.path, tt.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s %v", tt.path, tt.body)
	}

	// Rejected bodies leave the session untouched.
	view := decode[sessionView](t, h.do(http.MethodGet, "/sessions/"+id, nil))
	assert.Equal(t, 0, view.Index)
	assert.Equal(t, 0, view.Answered)
}

func TestAnswerAndNavigate(t *testing.T) {
	h := newHarness(t)
	id := h.create().ID

	rec := h.do(http.MethodPost, "/sessions/"+id+"/answer", map[string]int{"option": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode[sessionView](t, rec)
	require.True(t, v.Question.Answered)
	assert.Equal(t, 2, *v.Question.Selected)
	assert.Equal(t, 0, *v.Question.CorrectOption)
	assert.False(t, *v.Question.IsCorrect)
	assert.Equal(t, "E1", v.Question.Explanation)

	// Answers are write-once.
	rec = h.do(http.MethodPost, "/sessions/"+id+"/answer", map[string]int{"option": 0})
	v = decode[sessionView](t, rec)
	assert.Equal(t, []int{2, -1}, v.Answers)

	// Out-of-range moves and options are no-ops.
	v = decode[sessionView](t, h.do(http.MethodPost, "/sessions/"+id+"/goto", map[string]int{"index": 5}))
	assert.Equal(t, 0, v.Index)
	v = decode[sessionView](t, h.do(http.MethodPost, "/sessions/"+id+"/previous", nil))
	assert.Equal(t, 0, v.Index)

	v = decode[sessionView](t, h.do(http.MethodPost, "/sessions/"+id+"/next", nil))
	assert.Equal(t, 1, v.Index)
	assert.Equal(t, "Two", v.Question.ChapterName)

	rec = h.do(http.MethodPost, "/sessions/"+id+"/answer", map[string]int{"option": 9})
	require.Equal(t, http.StatusOK, rec.Code)
	v = decode[sessionView](t, rec)
	assert.Equal(t, []int{2, -1}, v.Answers)
	assert.False(t, v.Complete)

	v = decode[sessionView](t, h.do(http.MethodPost, "/sessions/"+id+"/goto", map[string]int{"index": 0}))
	assert.Equal(t, 0, v.Index)
	assert.True(t, v.Question.Answered, "revisiting shows the recorded answer")
}

func TestSubmitIncompleteIsConflict(t *testing.T) {
	h := newHarness(t)
	id := h.create().ID
	h.do(http.MethodPost, "/sessions/"+id+"/answer", map[string]int{"option": 0})

	rec := h.do(http.MethodPost, "/sessions/"+id+"/submit", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	v := decode[sessionView](t, h.do(http.MethodGet, "/sessions/"+id, nil))
	assert.Equal(t, "in_progress", v.Phase)
	assert.Equal(t, []int{0, -1}, v.Answers)
}

func TestFullPlaythrough(t *testing.T) {
	h := newHarness(t)
	id := h.create().ID

	h.do(http.MethodPost, "/sessions/"+id+"/answer", map[string]int{"option": 0})
	h.do(http.MethodPost, "/sessions/"+id+"/next", nil)
	v := decode[sessionView](t, h.do(http.MethodPost, "/sessions/"+id+"/answer", map[string]int{"option": 3}))
	assert.True(t, v.Complete)
	assert.Equal(t, navigationView{Previous: true, Submit: true}, v.Navigation)

	rec := h.do(http.MethodPost, "/sessions/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sub := decode[submitView](t, rec)
	assert.Equal(t, "completed", sub.Session.Phase)
	assert.Equal(t, navigationView{}, sub.Session.Navigation)
	assert.Equal(t, 1, sub.Score.Correct)
	assert.Equal(t, 50, sub.Score.Percent)
	assert.Equal(t, "pass", sub.Score.Grade)
	assert.Equal(t, []chapterScoreView{
		{Chapter: 1, Name: "One", Correct: 1, Total: 1},
		{Chapter: 2, Name: "Two", Correct: 0, Total: 1},
		{Chapter: 3, Name: "Three", Correct: 0, Total: 0},
	}, sub.Score.Chapters)

	// Sealed: further moves change nothing.
	v = decode[sessionView](t, h.do(http.MethodPost, "/sessions/"+id+"/previous", nil))
	assert.Equal(t, 1, v.Index)

	// Submitting again returns the same score without a second attempt.
	rec = h.do(http.MethodPost, "/sessions/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	attemptsList, err := h.repo.QueryAttempts(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, attemptsList, 1)
	assert.Equal(t, id, attemptsList[0].SessionID)
	assert.Equal(t, attempts.SourceHTTP, attemptsList[0].Source)
	assert.Equal(t, []int{0, 3}, attemptsList[0].Answers)

	review := decode[reviewView](t, h.do(http.MethodGet, "/sessions/"+id+"/review", nil))
	require.Len(t, review.Outcomes, 2)
	assert.True(t, review.Outcomes[0].IsCorrect)
	assert.False(t, review.Outcomes[1].IsCorrect)
	assert.Equal(t, 3, review.Outcomes[1].UserOption)

	rec = h.do(http.MethodPost, "/sessions/"+id+"/restart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "not_started", decode[phaseView](t, rec).Phase)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/sessions/"+id, nil).Code)
}

func TestRunningScore(t *testing.T) {
	h := newHarness(t)
	id := h.create().ID
	h.do(http.MethodPost, "/sessions/"+id+"/answer", map[string]int{"option": 0})

	sc := decode[scoreView](t, h.do(http.MethodGet, "/sessions/"+id+"/score", nil))
	assert.Equal(t, 1, sc.Correct)
	assert.Equal(t, 2, sc.Total)
	assert.Equal(t, 50, sc.Percent)
}

func TestRestartInProgressIsConflict(t *testing.T) {
	h := newHarness(t)
	id := h.create().ID
	assert.Equal(t, http.StatusConflict, h.do(http.MethodPost, "/sessions/"+id+"/restart", nil).Code)
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/sessions/"+id, nil).Code)
}

func TestDeleteSession(t *testing.T) {
	h := newHarness(t)
	id := h.create().ID
	assert.Equal(t, http.StatusNoContent, h.do(http.MethodDelete, "/sessions/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/sessions/"+id, nil).Code)
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	h := newHarness(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h.srv.sessions.now = func() time.Time { return now }

	stale := h.create().ID
	now = now.Add(90 * time.Minute)
	fresh := h.create().ID
	now = now.Add(40 * time.Minute)

	assert.Equal(t, 1, h.srv.sessions.sweep(2*time.Hour))
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/sessions/"+stale, nil).Code)
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/sessions/"+fresh, nil).Code)
	assert.Equal(t, 1, h.srv.sessions.len())
}

func TestCORSPreflight(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodOptions, "/sessions", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv := New(testBank(), nil, zap.New(core), config.Serve{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/healthz", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}
