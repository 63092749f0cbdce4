package server

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"attnview/internal/logging"
	"attnview/internal/playback"
	"attnview/internal/review"
	"attnview/internal/task"
)

const sessionCookie = "attnview_session"

// session returns the caller's session, creating one and setting the cookie
// when the request carries none or an expired one.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *review.Session {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if session, ok := s.sessions.get(cookie.Value); ok {
			return session
		}
	}
	session := s.sessions.create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.ID(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return session
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.count(),
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	query := r.URL.Query()
	wait := query.Get("wait") == "1" || strings.EqualFold(query.Get("wait"), "true")
	// A poll from a page bound to an older session answers at once.
	if !wait || (query.Has("session") && query.Get("session") != session.ID()) {
		s.writeFrame(w, session, session.Frame())
		return
	}

	since, _ := strconv.ParseUint(query.Get("since"), 10, 64)
	ctx, cancel := context.WithTimeout(r.Context(), s.pollWait)
	defer cancel()
	frame, err := session.Wait(ctx, since)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeFrame(w, session, frame)
}

type taskRequest struct {
	Task string `json:"task"`
}

func (s *Server) handleTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !s.decode(w, r, &req) {
		return
	}
	t, err := task.Parse(req.Task)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.dispatch(w, r, playback.SelectTask{Task: t})
}

type selectRequest struct {
	ID *string `json:"id"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.ID == nil {
		s.writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	s.dispatch(w, r, playback.SelectID{ID: *req.ID})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, playback.Start{})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, playback.Stop{})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	frame := session.Reload()
	logging.WithContext(r.Context(), s.logger).Info("task folder reloaded",
		logging.SessionID(session.ID()),
		logging.Task(frame.Task.String()),
		logging.Int("responses", len(frame.IDs)),
	)
	s.writeFrame(w, session, frame)
}

type intervalRequest struct {
	Value *float64 `json:"value"`
	Delta *float64 `json:"delta"`
}

func (s *Server) handleInterval(w http.ResponseWriter, r *http.Request) {
	var req intervalRequest
	if !s.decode(w, r, &req) {
		return
	}
	switch {
	case req.Value != nil:
		s.dispatch(w, r, playback.SetInterval{Value: *req.Value})
	case req.Delta != nil:
		s.dispatch(w, r, playback.AdjustInterval{Delta: *req.Delta})
	default:
		s.writeError(w, http.StatusBadRequest, "value or delta is required")
	}
}

func (s *Server) handleMedia(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("path")
	if !fs.ValidPath(name) || name == "." {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	info, err := fs.Stat(s.media, name)
	if err != nil || !info.Mode().IsRegular() {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFileFS(w, r, s.media, name)
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ev playback.Event) {
	session := s.session(w, r)
	frame := session.Dispatch(ev)
	ctx := logging.WithSessionID(r.Context(), session.ID())
	ctx = logging.WithTask(ctx, frame.Task.String())
	ctx = logging.WithResponseID(ctx, frame.CurrentID)
	logging.WithContext(ctx, s.logger).Debug("playback input",
		logging.Event(playback.Name(ev)),
		logging.Bool("playing", frame.Playing),
	)
	s.writeFrame(w, session, frame)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) writeFrame(w http.ResponseWriter, session *review.Session, frame review.Frame) {
	s.writeJSON(w, http.StatusOK, newFrameView(session.ID(), frame, s.root))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
