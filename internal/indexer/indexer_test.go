package indexer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/go-while/go-pagecatalog/internal/models"
)

// writeTree creates files (relative slash paths) with the given sizes under root
func writeTree(t *testing.T, root string, files map[string]int) {
	t.Helper()
	for rel, size := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(full, make([]byte, size), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func paths(entries []*models.FileEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	sort.Strings(out)
	return out
}

func TestIsHTML(t *testing.T) {
	testCases := []struct {
		name string
		want bool
	}{
		{"index.html", true},
		{"INDEX.HTML", true},
		{"Mixed.HtMl", true},
		{".html", true},
		{"page.htm", false},
		{"notes.txt", false},
		{"page.HTML.bak", false},
		{"html", false},
		{"page.html.", false},
	}
	for _, tc := range testCases {
		if got := IsHTML(tc.name); got != tc.want {
			t.Errorf("IsHTML(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestScanCompleteness(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]int{
		"a.html":                10,
		"B.HTML":                20,
		"one/c.html":            30,
		"one/two/d.Html":        40,
		"one/two/three/e.html":  50,
		"x/y/z/w/v/u/f.html":    60,
		"one/skip.txt":          1,
		"one/skip.htm":          1,
		"one/two/skip.HTML.bak": 1,
		".html":                 5,
	})

	entries, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{
		".html",
		"B.HTML",
		"a.html",
		"one/c.html",
		"one/two/d.Html",
		"one/two/three/e.html",
		"x/y/z/w/v/u/f.html",
	}
	got := paths(entries)
	if len(got) != len(want) {
		t.Fatalf("Scan returned %d entries %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.Path] {
			t.Errorf("duplicate path %q", e.Path)
		}
		seen[e.Path] = true
		if e.FullPath != filepath.Join(root, filepath.FromSlash(e.Path)) {
			t.Errorf("FullPath %q does not match %q", e.FullPath, e.Path)
		}
	}
}

func TestScanFolders(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]int{
		"a.html":          2048,
		"sub/b.html":      512,
		"sub/deep/c.html": 1,
	})

	entries, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	byPath := make(map[string]*models.FileEntry)
	for _, e := range entries {
		byPath[e.Path] = e
	}

	testCases := []struct {
		path   string
		name   string
		folder string
		size   int64
	}{
		{"a.html", "a.html", models.RootFolder, 2048},
		{"sub/b.html", "b.html", "sub", 512},
		{"sub/deep/c.html", "c.html", "sub/deep", 1},
	}
	for _, tc := range testCases {
		e := byPath[tc.path]
		if e == nil {
			t.Errorf("missing entry %q", tc.path)
			continue
		}
		if e.Name != tc.name || e.Folder != tc.folder || e.Size != tc.size {
			t.Errorf("entry %q = {name:%q folder:%q size:%d}, want {name:%q folder:%q size:%d}",
				tc.path, e.Name, e.Folder, e.Size, tc.name, tc.folder, tc.size)
		}
		if e.Modified.IsZero() {
			t.Errorf("entry %q has zero modification time", tc.path)
		}
	}
}

func TestScanEmptyRoot(t *testing.T) {
	entries, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if entries == nil {
		t.Fatal("Scan returned nil slice for empty root")
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "gone"))
	if err == nil {
		t.Fatal("Scan of missing root returned no error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
}

func TestScanSkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeTree(t, root, map[string]int{"real.html": 1})
	writeTree(t, outside, map[string]int{"target.html": 1, "dir/inner.html": 1})

	if err := os.Symlink(filepath.Join(outside, "target.html"), filepath.Join(root, "link.html")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "dir"), filepath.Join(root, "linkdir")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	entries, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	got := paths(entries)
	if len(got) != 1 || got[0] != "real.html" {
		t.Errorf("Scan = %v, want [real.html]", got)
	}
}

func TestScanSkipsUnreadableSubdir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permissions are not enforced")
	}
	root := t.TempDir()
	writeTree(t, root, map[string]int{
		"ok.html":            1,
		"locked/hidden.html": 1,
		"open/seen.html":     1,
	})
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(locked, 0755)

	entries, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	got := paths(entries)
	want := []string{"ok.html", "open/seen.html"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Scan = %v, want %v", got, want)
	}
}

func TestScanOrderIsDepthFirstByName(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]int{
		"b/1.html":   1,
		"a/2/3.html": 1,
		"a/1.html":   1,
		"z.html":     1,
	})
	entries, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []string{"z.html", "a/1.html", "a/2/3.html", "b/1.html"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Path != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Path, want[i])
		}
	}
}

func TestGroup(t *testing.T) {
	entries := []*models.FileEntry{
		{Name: "a.html", Path: "a.html", Folder: models.RootFolder},
		{Name: "b.html", Path: "sub/b.html", Folder: "sub"},
		{Name: "c.html", Path: "c.html", Folder: models.RootFolder},
		{Name: "d.html", Path: "sub/x/d.html", Folder: "sub/x"},
		{Name: "e.html", Path: "sub/e.html", Folder: "sub"},
	}
	catalog := Group(entries)

	if catalog.FileCount() != len(entries) {
		t.Errorf("FileCount = %d, want %d", catalog.FileCount(), len(entries))
	}
	total := 0
	for _, f := range catalog.Folders {
		total += len(f.Files)
	}
	if total != len(entries) {
		t.Errorf("sum of group sizes = %d, want %d", total, len(entries))
	}

	wantFolders := []string{models.RootFolder, "sub", "sub/x"}
	if catalog.FolderCount() != len(wantFolders) {
		t.Fatalf("FolderCount = %d, want %d", catalog.FolderCount(), len(wantFolders))
	}
	for i, name := range wantFolders {
		if catalog.Folders[i].Name != name {
			t.Errorf("folder %d = %q, want %q", i, catalog.Folders[i].Name, name)
		}
	}

	root := catalog.Folder(models.RootFolder)
	if root == nil || len(root.Files) != 2 || root.Files[0].Name != "a.html" || root.Files[1].Name != "c.html" {
		t.Errorf("root folder lost input order: %+v", root)
	}
	sub := catalog.Folder("sub")
	if sub == nil || len(sub.Files) != 2 || sub.Files[0].Name != "b.html" || sub.Files[1].Name != "e.html" {
		t.Errorf("sub folder lost input order: %+v", sub)
	}
	if catalog.Folder("") != nil || catalog.Folder(".") != nil {
		t.Error("root files must not be grouped under an empty or dot key")
	}
	if got := catalog.Entries(); len(got) != len(entries) {
		t.Errorf("Entries returned %d, want %d", len(got), len(entries))
	}
}

func TestGroupEmpty(t *testing.T) {
	catalog := Group(nil)
	if catalog.FileCount() != 0 || catalog.FolderCount() != 0 {
		t.Errorf("empty group = %d files / %d folders, want 0/0", catalog.FileCount(), catalog.FolderCount())
	}
}
