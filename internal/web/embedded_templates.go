package web

import (
	"embed"
	"html/template"
	"io/fs"
)

const (
	baseTemplate    = "base.html"
	catalogTemplate = "catalog.html"
	errorTemplate   = "error.html"
)

//go:embed templates/*.html
var EmbeddedTemplatesFS embed.FS

// ListEmbeddedFiles returns a list of all embedded template files for debugging
func ListEmbeddedFiles() ([]string, error) {
	var files []string
	err := fs.WalkDir(EmbeddedTemplatesFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// loadTemplates parses every page together with the base layout.
// Pages are parsed one by one since they all define "content".
func loadTemplates() map[string]*template.Template {
	pages := []string{catalogTemplate, errorTemplate}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		templates[page] = template.Must(template.New(baseTemplate).ParseFS(EmbeddedTemplatesFS,
			"templates/"+baseTemplate, "templates/"+page))
	}
	return templates
}
