// Package output handles file naming and writing for extdir outputs.
// A listing is written to a single file named after its base name
// (e.g., extensions.html, or extensions_page_2.html when paginated).
// In per-entry mode, files mirror the extension ID (<login>/<name>.ext).
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/extdir/core"
)

// DefaultBaseName is the file name stem for listing output.
const DefaultBaseName = "extensions"

// Writer writes rendered output to disk. It remembers which extension
// each per-entry path was written for, so two IDs that sanitize to the
// same file fail instead of overwriting each other.
type Writer struct {
	OutputDir string
	written   map[string]string // path → extension ID
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir, written: make(map[string]string)}, nil
}

// WriteListing writes one rendered listing page.
// Filename: extensions.ext, or extensions_page_<n>.ext for paginated output.
func (w *Writer) WriteListing(l core.Listing, data []byte, ext string) (string, error) {
	name := DefaultBaseName
	if l.Pages > 1 {
		name += "_page_" + strconv.Itoa(l.Page)
	}
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteEntry writes the output for a single extension, mirroring its ID.
// Example: Minestom/luna → ./Minestom/luna.fragment.html
func (w *Writer) WriteEntry(e core.Extension, data []byte, ext string) (string, error) {
	login := sanitize(e.Login())
	name := sanitize(e.Name)
	if login == "" || name == "" {
		return "", fmt.Errorf("cannot derive a file name for extension %q", e.ID())
	}

	fullPath := filepath.Join(w.OutputDir, login, name+ext)
	if prev, ok := w.written[fullPath]; ok && prev != e.ID() {
		return "", fmt.Errorf("extension %q maps to %s, already written for %q", e.ID(), fullPath, prev)
	}

	// Ensure parent directories exist.
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	if w.written == nil {
		w.written = make(map[string]string)
	}
	w.written[fullPath] = e.ID()
	return fullPath, nil
}

// sanitize replaces characters outside [A-Za-z0-9._-] with underscores and
// refuses names that would walk out of the output directory.
func sanitize(s string) string {
	if s == "." || s == ".." {
		return ""
	}
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') ||
			ch == '-' || ch == '_' || ch == '.' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
