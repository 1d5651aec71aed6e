package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/saifidev/portfolio/internal/visibility"
)

//go:embed templates/*.html static
var files embed.FS

var funcs = template.FuncMap{
	"reveal": func(id string) string {
		return visibility.For(id).Attr()
	},
	"threshold": func(id string) float64 {
		return visibility.For(id).Threshold
	},
	// hxvals "category" "web" -> {"category":"web"}
	"hxvals": func(kv ...string) string {
		m := make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[kv[i]] = kv[i+1]
		}
		return hxVals(m)
	},
	// revealed reports whether a section is rendered already visible.
	"revealed": func(id string) bool {
		return visibility.For(id).Initial() == visibility.Visible
	},
	// html/template only trusts http, https and mailto.
	"telURL": func(s string) template.URL {
		if !strings.HasPrefix(s, "tel:") {
			return template.URL("#")
		}
		return template.URL(s)
	},
}

func parseTemplates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

// RenderPage writes the initial page to w. It is the same document GET /
// serves, for snapshots and previews.
func (s *Server) RenderPage(w io.Writer) error {
	page, err := s.buildPage(s.store.Load())
	if err != nil {
		return err
	}
	return s.tmpl.ExecuteTemplate(w, "index.html", page)
}
