package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-pagecatalog/internal/indexer"
)

// listFiles is the API endpoint for "/api/files" returning the flat, ungrouped scan
func (s *WebServer) listFiles(c *gin.Context) {
	entries, err := indexer.Scan(s.Config.PagesDir)
	if err != nil {
		log.Printf("[WEB]: /api/files scan failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
