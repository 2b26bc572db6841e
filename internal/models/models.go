// Package models defines core data structures for go-pagecatalog
package models

import (
	"time"
)

// RootFolder is the folder label of files placed directly in the scan root
const RootFolder = "root"

// FileEntry represents one discovered HTML file
type FileEntry struct {
	Name     string    `json:"name"`     // base filename
	Path     string    `json:"path"`     // relative to the scan root, always forward slashes
	FullPath string    `json:"-"`        // resolved filesystem path, only used to stat the file
	Size     int64     `json:"size"`     // bytes at scan time
	Modified time.Time `json:"modified"` // mtime at scan time
	Folder   string    `json:"folder"`   // containing directory relative to the root, or RootFolder
}

// Folder holds the files of one folder in the order they were added
type Folder struct {
	Name  string
	Files []*FileEntry
}

// Catalog groups file entries by folder.
// Folders keep the order in which they were first seen.
type Catalog struct {
	Folders []*Folder
	index   map[string]int
	count   int
}

// NewCatalog returns an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add appends entry to the folder named by entry.Folder, creating it if needed
func (c *Catalog) Add(entry *FileEntry) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	i, ok := c.index[entry.Folder]
	if !ok {
		i = len(c.Folders)
		c.index[entry.Folder] = i
		c.Folders = append(c.Folders, &Folder{Name: entry.Folder})
	}
	c.Folders[i].Files = append(c.Folders[i].Files, entry)
	c.count++
}

// Folder returns the folder with the given name or nil
func (c *Catalog) Folder(name string) *Folder {
	i, ok := c.index[name]
	if !ok {
		return nil
	}
	return c.Folders[i]
}

// FileCount returns the total number of files across all folders
func (c *Catalog) FileCount() int {
	return c.count
}

// FolderCount returns the number of folders
func (c *Catalog) FolderCount() int {
	return len(c.Folders)
}

// Entries returns all entries folder by folder
func (c *Catalog) Entries() []*FileEntry {
	entries := make([]*FileEntry, 0, c.count)
	for _, f := range c.Folders {
		entries = append(entries, f.Files...)
	}
	return entries
}
