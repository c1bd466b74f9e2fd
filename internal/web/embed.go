package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strconv"
	"strings"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/session"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

// staticFS returns the files served under /static.
func staticFS() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var templateFuncs = template.FuncMap{
	"icon": kindIcon,
	"submitAction": func(k challenge.Kind) string {
		return string(session.SubmitAnswer(k, "").Kind)
	},
	"digits": func(d []int) string {
		parts := make([]string, len(d))
		for i, n := range d {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, " ")
	},
}

// parseTemplates parses the embedded page templates.
func parseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(assets, "templates/*.tmpl"))
}

func kindIcon(k challenge.Kind) string {
	switch k {
	case challenge.KindMath:
		return "🧮"
	case challenge.KindLogic:
		return "🧩"
	case challenge.KindMemory:
		return "🧠"
	}
	return "❓"
}
