package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/quizbook/internal/attempts"
	"github.com/abhisek/quizbook/internal/quiz"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBank(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newBankView(s.bank))
}

// POST /sessions
func (s *Server) handleCreate(w http.ResponseWriter, _ *http.Request) {
	lc := s.bank.NewLifecycle()
	if _, err := lc.Start(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	e := &entry{lc: lc, attempt: attempts.NewAttempt(s.bank.Title, attempts.SourceHTTP)}
	s.sessions.add(e)
	s.log.Debug("session started", zap.String("session_id", e.attempt.ID))

	writeJSON(w, http.StatusCreated, s.view(e))
}

// withSession resolves {id}, locks the entry and runs fn. Unknown ids get 404.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(e *entry)) {
	id := chi.URLParam(r, "id")
	e, ok := s.sessions.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	s.sessions.touch(e)
	fn(e)
}

// withActive is withSession for operations that need a started session.
func (s *Server) withActive(w http.ResponseWriter, r *http.Request, fn func(e *entry, sess *quiz.Session)) {
	s.withSession(w, r, func(e *entry) {
		sess := e.lc.Session()
		if sess == nil {
			writeError(w, http.StatusConflict, "session not started")
			return
		}
		fn(e, sess)
	})
}

func (s *Server) view(e *entry) sessionView {
	return newSessionView(e.attempt.ID, e.lc.Phase(), e.lc.Session(), s.bank)
}

// GET /sessions/{id}
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.withActive(w, r, func(e *entry, _ *quiz.Session) {
		writeJSON(w, http.StatusOK, s.view(e))
	})
}

// DELETE /sessions/{id}
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.remove(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type gotoRequest struct {
	Index *int `json:"index"`
}

// POST /sessions/{id}/goto
func (s *Server) handleGoTo(w http.ResponseWriter, r *http.Request) {
	var req gotoRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Index == nil {
		writeError(w, http.StatusBadRequest, "index is required")
		return
	}
	s.withActive(w, r, func(e *entry, sess *quiz.Session) {
		sess.GoTo(*req.Index)
		writeJSON(w, http.StatusOK, s.view(e))
	})
}

// POST /sessions/{id}/next
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.withActive(w, r, func(e *entry, sess *quiz.Session) {
		sess.Next()
		writeJSON(w, http.StatusOK, s.view(e))
	})
}

// POST /sessions/{id}/previous
func (s *Server) handlePrevious(w http.ResponseWriter, r *http.Request) {
	s.withActive(w, r, func(e *entry, sess *quiz.Session) {
		sess.Previous()
		writeJSON(w, http.StatusOK, s.view(e))
	})
}

type answerRequest struct {
	Option *int `json:"option"`
}

// POST /sessions/{id}/answer
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Option == nil {
		writeError(w, http.StatusBadRequest, "option is required")
		return
	}
	s.withActive(w, r, func(e *entry, sess *quiz.Session) {
		sess.Answer(*req.Option)
		writeJSON(w, http.StatusOK, s.view(e))
	})
}

// POST /sessions/{id}/submit
//
// A completed session answers with its final score again without recording
// a second attempt.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	s.withActive(w, r, func(e *entry, sess *quiz.Session) {
		switch {
		case e.lc.Phase() == quiz.PhaseCompleted:
		case e.lc.Submit():
			ctx := context.WithoutCancel(r.Context())
			if err := s.recorder.Record(ctx, e.attempt, sess); err != nil {
				// The recorder has logged the failure; the score is still served.
				s.log.Debug("submit served without stored attempt", zap.String("session_id", e.attempt.ID))
			}
		default:
			writeError(w, http.StatusConflict, "every question must be answered before submitting")
			return
		}
		writeJSON(w, http.StatusOK, submitView{
			Session: s.view(e),
			Score:   newScoreView(sess.Score(), s.bank),
		})
	})
}

// GET /sessions/{id}/score
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	s.withActive(w, r, func(_ *entry, sess *quiz.Session) {
		writeJSON(w, http.StatusOK, newScoreView(sess.Score(), s.bank))
	})
}

// GET /sessions/{id}/review
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	s.withActive(w, r, func(e *entry, sess *quiz.Session) {
		writeJSON(w, http.StatusOK, reviewView{ID: e.attempt.ID, Outcomes: sess.Outcomes()})
	})
}

// POST /sessions/{id}/restart
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(e *entry) {
		if !e.lc.Restart() {
			writeError(w, http.StatusConflict, "only a completed session can be restarted")
			return
		}
		s.sessions.remove(e.attempt.ID)
		writeJSON(w, http.StatusOK, phaseView{ID: e.attempt.ID, Phase: e.lc.Phase().String()})
	})
}
