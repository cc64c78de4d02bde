package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hisarandre/P5-yoga-app/internal/model"
	"github.com/hisarandre/P5-yoga-app/internal/repository"
)

// sessionRequest carries the editable fields only; attendees and timestamps
// are never written through this endpoint.
type sessionRequest struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	TeacherID   int64     `json:"teacher_id"`
}

func (req sessionRequest) validate() bool {
	return req.Name != "" && req.Description != "" && req.TeacherID > 0 && !req.Date.IsZero()
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.store.ListSessions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	session, err := s.store.GetSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil || !req.validate() {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	session, err := s.store.CreateSession(r.Context(), model.Session{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		TeacherID:   req.TeacherID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil || !req.validate() {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	session, err := s.store.UpdateSession(r.Context(), id, model.Session{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		TeacherID:   req.TeacherID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	if err := s.store.DeleteSession(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeMessage(w, "Session deleted successfully!")
}

func (s *Server) handleParticipate(w http.ResponseWriter, r *http.Request) {
	sessionID, userID, ok := participationIDs(w, r)
	if !ok {
		return
	}
	if _, err := s.store.GetSession(r.Context(), sessionID); err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err := s.store.AddParticipant(r.Context(), sessionID, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			writeError(w, http.StatusBadRequest, "already_participating")
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		default:
			writeError(w, http.StatusInternalServerError, "server_error")
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleUnparticipate(w http.ResponseWriter, r *http.Request) {
	sessionID, userID, ok := participationIDs(w, r)
	if !ok {
		return
	}
	if _, err := s.store.GetSession(r.Context(), sessionID); err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err := s.store.RemoveParticipant(r.Context(), sessionID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "not_participating")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func participationIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return 0, 0, false
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return 0, 0, false
	}
	return sessionID, userID, true
}
