package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
)

const robotsTxt = `User-agent: *
Disallow: /api/
Disallow: /ws

User-agent: GPTBot
Disallow: /

User-agent: CCBot
Disallow: /
`

func (s *Server) serveHealthCheck() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(&s.cfg, w)
		_, _ = w.Write([]byte("Ok\n"))
	}
}

func (s *Server) serveVersion() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(&s.cfg, w)
		_, _ = w.Write([]byte("mindgym v" + s.cfg.Version + "\n"))
	}
}

func (s *Server) serveRobots() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		cacheFor(w, time.Hour)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(robotsTxt)))
		securityHeaders(&s.cfg, w)
		_, _ = w.Write([]byte(robotsTxt))
	}
}

func (s *Server) serveStatic() httprouter.Handle {
	files := staticFS()

	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		name := strings.TrimPrefix(path.Clean(p.ByName("filepath")), "/")

		data, err := fs.ReadFile(files, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		ctype := mime.TypeByExtension(path.Ext(name))
		if ctype == "" {
			ctype = "application/octet-stream"
		}

		cacheFor(w, time.Hour)
		w.Header().Set("Content-Type", ctype)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		securityHeaders(&s.cfg, w)
		_, _ = w.Write(data)
	}
}

func cacheFor(w http.ResponseWriter, d time.Duration) {
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(d.Seconds())))
	w.Header().Set("Expires", time.Now().Add(d).UTC().Format(http.TimeFormat))
}
