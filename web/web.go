// Package web embeds the server-rendered page templates.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded template set. Each template is named
// by its file base name.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
