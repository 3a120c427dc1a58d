package api

import (
	"embed"         // Embedded templates
	"html/template" // Server-rendered login pages
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the login page templates
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}
