// Package web holds the HTML templates and static assets compiled into the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"yatube/internal/models"
)

//go:embed templates/*.html static/*
var files embed.FS

// Pages lists every page template; each one is parsed together with base.html.
var Pages = []string{
	"index", "group", "profile", "post", "new",
	"login", "signup", "about_author", "about_tech", "notfound",
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Local().Format("2 Jan 2006 15:04")
	},
	"preview": func(p *models.Post) string {
		return p.Preview()
	},
}

// Templates parses all pages. The returned map is keyed by page name and
// every entry is executed through its "base" template.
func Templates() (map[string]*template.Template, error) {
	tpls := make(map[string]*template.Template, len(Pages))
	for _, name := range Pages {
		t, err := template.New("base").Funcs(funcs).ParseFS(files, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", name, err)
		}
		tpls[name] = t
	}
	return tpls, nil
}

func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
