// Package web holds the HTML templates of the prediction form.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded templates.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.html")
}
