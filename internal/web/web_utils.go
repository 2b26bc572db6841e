package web

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-pagecatalog/internal/config"
	"github.com/go-while/go-pagecatalog/internal/locale"
)

const htmlContentType = "text/html; charset=utf-8"

// TemplateData represents common template data
type TemplateData struct {
	Title       string
	Lang        string
	Text        locale.Strings
	CurrentTime string
	AppVersion  string
}

// ErrorPageData represents data for the error page
type ErrorPageData struct {
	TemplateData
	Error      string
	StatusCode int
}

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}

// getBaseTemplateData creates a TemplateData struct with common information
func (s *WebServer) getBaseTemplateData(title string) TemplateData {
	return TemplateData{
		Title:       title,
		Lang:        s.Locale.Lang(),
		Text:        s.Locale.Strings,
		CurrentTime: time.Now().Format("2006-01-02 15:04:05"),
		AppVersion:  config.AppVersion,
	}
}

// renderError renders an error page
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	errorData := ErrorPageData{
		TemplateData: s.getBaseTemplateData(s.Locale.Strings.ErrorTitle),
		Error:        message,
		StatusCode:   statusCode,
	}
	log.Printf("[WEB]: Error %d: %s - %s", statusCode, message, errstring)

	var buf bytes.Buffer
	if err := s.templates[errorTemplate].ExecuteTemplate(&buf, baseTemplate, errorData); err != nil {
		log.Printf("[WEB]: Error rendering error template: %v", err)
		c.String(statusCode, "Error: %s", message)
		return
	}
	c.Data(statusCode, htmlContentType, buf.Bytes())
}

// renderPage executes a page template into a buffer first so a template
// failure still produces a clean 500 instead of a truncated body
func (s *WebServer) renderPage(c *gin.Context, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates[templateName].ExecuteTemplate(&buf, baseTemplate, data); err != nil {
		s.renderError(c, http.StatusInternalServerError, s.Locale.Strings.ErrorTitle, err.Error())
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}
