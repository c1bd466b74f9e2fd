package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/session"
	"github.com/abhisek/mindgym/internal/store"
)

const (
	sessionCookieName = "mindgym_session"
	maxFormBytes      = 4 << 10
)

// pageData is what the page templates render.
type pageData struct {
	Prefix  string
	Version string
	Snap    session.Snapshot
	Stats   *session.Stats
	Kinds   []challenge.Kind
	Error   string
}

// session returns the caller's session, creating one and setting the
// cookie when the request carries none or an unknown id.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *store.Entry {
	e, created := s.lookup(r)
	if created {
		http.SetCookie(w, s.sessionCookie(e.ID))
	}
	return e
}

func (s *Server) lookup(r *http.Request) (*store.Entry, bool) {
	var id string
	if c, err := r.Cookie(sessionCookieName); err == nil {
		id = c.Value
	}
	e, created := s.store.GetOrCreate(id)
	if created {
		s.logger.Info("new session", "session", e.ID, "remote", realIP(r))
	}
	return e, created
}

func (s *Server) sessionCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     s.cfg.prefix() + "/",
		HttpOnly: true,
		Secure:   s.cfg.scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) newPageData(snap session.Snapshot) pageData {
	return pageData{
		Prefix:  s.cfg.prefix(),
		Version: s.cfg.Version,
		Snap:    snap,
		Kinds:   challenge.Kinds,
	}
}

func (s *Server) servePage() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		e := s.session(w, r)
		snap := e.Snapshot()
		data := s.newPageData(snap)

		if r.URL.Query().Get("view") == "stats" && snap.Step == session.StepMenu {
			if st, err := e.Do(session.ViewStats()); err == nil {
				data.Stats = st.Stats
			}
		}

		s.render(w, http.StatusOK, data)
	}
}

// serveAction applies one form submission and redirects back to the page,
// so reloading never repeats an answer.
func (s *Server) serveAction() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		e := s.session(w, r)
		a := normalizeAction(session.Action{
			Kind:      session.ActionKind(r.PostForm.Get("action")),
			Value:     r.PostForm.Get("value"),
			Challenge: challenge.Kind(r.PostForm.Get("challenge")),
		})

		snap, err := e.Do(a)
		if err != nil {
			status := statusFor(err)
			s.logAction(e.ID, a, err, status)

			data := s.newPageData(snap)
			data.Error = userMessage(status)
			s.render(w, status, data)
			return
		}

		target := s.cfg.prefix() + "/"
		if a.Kind == session.ActionViewStats {
			target += "?view=stats"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		s.logger.Error("render page", "step", data.Snap.Step, "err", err)
		http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	securityHeaders(&s.cfg, w)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) logAction(id string, a session.Action, err error, status int) {
	log := s.logger.Warn
	if status >= http.StatusInternalServerError {
		log = s.logger.Error
	}
	log("action rejected", "session", id, "action", a.Kind, "status", status, "err", err)
}

// normalizeAction canonicalises the challenge name so clients may send
// any case. Unknown names are left for the controller to reject.
func normalizeAction(a session.Action) session.Action {
	if a.Challenge != "" {
		if k, err := challenge.ParseKind(string(a.Challenge)); err == nil {
			a.Challenge = k
		}
	}
	a.Kind = session.ActionKind(strings.TrimSpace(string(a.Kind)))
	return a
}

// statusFor maps controller errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrActionNotAllowed):
		return http.StatusConflict
	case errors.Is(err, session.ErrUnknownAction), errors.Is(err, session.ErrUnknownChallenge):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func userMessage(status int) string {
	switch status {
	case http.StatusConflict:
		return "That isn't available right now. Pick up where you left off below."
	case http.StatusBadRequest:
		return "That request wasn't understood."
	}
	return "Something went wrong. Please try again."
}

func newPage(prefix, title, body string) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	b.WriteString(`<style>html,body,a{display:block;height:100%;width:100%;text-decoration:none;color:inherit;cursor:auto;}</style>`)
	b.WriteString(fmt.Sprintf("<title>%s</title></head>", template.HTMLEscapeString(title)))
	b.WriteString(fmt.Sprintf(`<body><a href="%s/">%s</a></body></html>`, template.HTMLEscapeString(prefix), template.HTMLEscapeString(body)))

	return b.String()
}
