package web

import (
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-pagecatalog/internal/indexer"
	"github.com/go-while/go-pagecatalog/internal/locale"
	"github.com/go-while/go-pagecatalog/internal/models"
)

// FileCard is one file as shown in the catalog
type FileCard struct {
	Name     string
	Path     string
	Href     string
	Size     string
	Modified string
}

// FolderView is one folder section of the catalog
type FolderView struct {
	Name  string // folder key, models.RootFolder for the scan root
	Label string // display name
	Files []FileCard
}

// CatalogView is the presentation of a grouped scan
type CatalogView struct {
	FileCount   int
	FolderCount int
	Folders     []FolderView
}

// CatalogPageData represents data for the catalog page
type CatalogPageData struct {
	TemplateData
	CatalogView
	EmptyHint template.HTML
}

// PageHref returns the /pages URL of a relative file path
func PageHref(rel string) string {
	parts := strings.Split(rel, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return "/pages/" + strings.Join(parts, "/")
}

// BuildCatalogView turns a catalog into folder sections and file cards
func BuildCatalogView(catalog *models.Catalog, loc *locale.Locale) CatalogView {
	view := CatalogView{
		FileCount:   catalog.FileCount(),
		FolderCount: catalog.FolderCount(),
		Folders:     make([]FolderView, 0, catalog.FolderCount()),
	}
	for _, folder := range catalog.Folders {
		fv := FolderView{
			Name:  folder.Name,
			Label: folder.Name,
			Files: make([]FileCard, 0, len(folder.Files)),
		}
		if folder.Name == models.RootFolder {
			fv.Label = loc.Strings.RootFolder
		}
		for _, file := range folder.Files {
			fv.Files = append(fv.Files, FileCard{
				Name:     file.Name,
				Path:     file.Path,
				Href:     PageHref(file.Path),
				Size:     locale.FormatKB(file.Size),
				Modified: loc.FormatDate(file.Modified),
			})
		}
		view.Folders = append(view.Folders, fv)
	}
	return view
}

// newCatalogPageData assembles everything the catalog template needs
func (s *WebServer) newCatalogPageData(catalog *models.Catalog) CatalogPageData {
	dir := template.HTMLEscapeString(filepath.Base(s.Config.PagesDir) + "/")
	return CatalogPageData{
		TemplateData: s.getBaseTemplateData(s.Locale.Strings.Title),
		CatalogView:  BuildCatalogView(catalog, s.Locale),
		EmptyHint:    template.HTML(fmt.Sprintf(template.HTMLEscapeString(s.Locale.Strings.EmptyHint), "<strong>"+dir+"</strong>")),
	}
}

// RenderCatalog writes the complete catalog document to w
func (s *WebServer) RenderCatalog(w io.Writer, data CatalogPageData) error {
	return s.templates[catalogTemplate].ExecuteTemplate(w, baseTemplate, data)
}

// catalogPage scans the pages directory and renders it grouped by folder
func (s *WebServer) catalogPage(c *gin.Context) {
	entries, err := indexer.Scan(s.Config.PagesDir)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, s.Locale.Strings.ErrorHint, err.Error())
		return
	}
	s.renderPage(c, catalogTemplate, s.newCatalogPageData(indexer.Group(entries)))
}
