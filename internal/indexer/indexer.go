// Package indexer walks a directory tree and collects HTML files for the catalog
package indexer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-while/go-pagecatalog/internal/models"
)

// HTMLExt is the extension (compared case-insensitively) of files picked up by Scan
const HTMLExt = ".html"

// pendingDir is a directory waiting to be read
type pendingDir struct {
	full string // path on disk
	rel  string // path relative to the scan root, "" for the root itself
}

// IsHTML reports whether name carries the .html extension in any case
func IsHTML(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == HTMLExt
}

// Scan walks root and returns one entry per regular .html file below it.
//
// Directories are visited depth first in name order using an explicit stack,
// so nesting depth does not grow the call stack. Failing to read root itself
// is returned as an error. Anything below root that cannot be read or stat'ed
// is logged and skipped. Symlinks are never followed.
func Scan(root string) ([]*models.FileEntry, error) {
	files := make([]*models.FileEntry, 0)
	stack := []pendingDir{{full: root}}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		items, err := os.ReadDir(dir.full)
		if err != nil {
			if dir.rel == "" {
				return nil, fmt.Errorf("read scan root %s: %w", root, err)
			}
			log.Printf("[INDEX]: skipping unreadable directory %s: %v", dir.full, err)
			continue
		}

		var subdirs []pendingDir
		for _, item := range items {
			name := item.Name()
			full := filepath.Join(dir.full, name)
			rel := name
			if dir.rel != "" {
				rel = dir.rel + "/" + name
			}

			mode := item.Type()
			switch {
			case mode&os.ModeSymlink != 0:
				continue
			case item.IsDir():
				subdirs = append(subdirs, pendingDir{full: full, rel: rel})
				continue
			case !mode.IsRegular() || !IsHTML(name):
				continue
			}

			info, err := item.Info()
			if err != nil {
				log.Printf("[INDEX]: skipping %s: %v", full, err)
				continue
			}

			folder := dir.rel
			if folder == "" {
				folder = models.RootFolder
			}
			files = append(files, &models.FileEntry{
				Name:     name,
				Path:     rel,
				FullPath: full,
				Size:     info.Size(),
				Modified: info.ModTime(),
				Folder:   folder,
			})
		}

		// push in reverse so the first subdirectory by name is read next
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
	return files, nil
}

// Group partitions entries by folder, keeping their relative order
func Group(entries []*models.FileEntry) *models.Catalog {
	catalog := models.NewCatalog()
	for _, entry := range entries {
		catalog.Add(entry)
	}
	return catalog
}
