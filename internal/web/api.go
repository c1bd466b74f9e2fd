package web

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/abhisek/mindgym/internal/session"
)

type apiError struct {
	Error    string            `json:"error"`
	Snapshot *session.Snapshot `json:"snapshot,omitempty"`
}

func (s *Server) serveSessionJSON() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		e := s.session(w, r)
		s.writeJSON(w, http.StatusOK, e.Snapshot())
	}
}

func (s *Server) serveActionJSON() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

		var a session.Action
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			s.writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON: " + err.Error()})
			return
		}

		e := s.session(w, r)
		a = normalizeAction(a)
		snap, err := e.Do(a)
		if err != nil {
			status := statusFor(err)
			s.logAction(e.ID, a, err, status)
			s.writeJSON(w, status, apiError{Error: err.Error(), Snapshot: &snap})
			return
		}
		s.writeJSON(w, http.StatusOK, snap)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	securityHeaders(&s.cfg, w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("write json", "err", err)
	}
}
