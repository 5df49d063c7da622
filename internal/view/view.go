// Package view owns the embedded page templates and the rendering helpers
// shared by every controller.
package view

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static exposes the embedded stylesheet and assets for the /static route.
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}

// Templates parses every embedded page template with the shared func map.
// Called once at server start.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

// Funcs returns the helpers the templates use.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"join": func(parts []string, sep string) string {
			return strings.Join(parts, sep)
		},
		"fmtDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
		"fmtDateTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006 15:04")
		},
		"window": PageWindow,
		"add": func(a, b int) int {
			return a + b
		},
	}
}
