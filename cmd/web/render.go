package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"hcdigital.dev/web/internal/format"
	"hcdigital.dev/web/internal/observability"
)

// renderer executes the shared layout. In dev mode templates are reparsed on
// every request from a directory on disk.
type renderer struct {
	fsys  fs.FS
	dev   bool
	cache *template.Template
}

func newRenderer(fsys fs.FS, dev bool) (*renderer, error) {
	r := &renderer{fsys: fsys, dev: dev}
	tc, err := parseTemplates(fsys)
	if err != nil {
		return nil, err
	}
	r.cache = tc
	return r, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"inline": format.Inline,
		"tel":    func(s string) template.URL { return template.URL(format.TelHref(s)) },
		"mailto": func(s string) template.URL { return template.URL(format.MailtoHref(s)) },
		"jsonld": func(s string) template.JS { return template.JS(s) },
		"navItem": func(page, label, class string, active bool, csrf string) map[string]any {
			return map[string]any{"Page": page, "Label": label, "Class": class, "Active": active, "CSRF": csrf}
		},
		"activeClass": func(active bool, base string) string {
			if active {
				return base + " active"
			}
			return base
		},
	}
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	// Recursively discover and parse all .tmpl files. Note: ParseFS globs don't support **.
	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	return template.New("_root").Funcs(templateFuncs()).ParseFS(fsys, files...)
}

// render executes the named template into a buffer so a failing template
// never leaves a half-written page.
func (rd *renderer) render(w http.ResponseWriter, r *http.Request, code int, name string, data any) {
	logger := observability.FromContext(r.Context())
	t := rd.cache
	if rd.dev {
		tc, err := parseTemplates(rd.fsys)
		if err != nil {
			logger.Error("template parse failed", zap.Error(err))
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error("template exec failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}
