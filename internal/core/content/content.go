// Package content provides the document text and the authored summary
// sections revealed during playback.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/choir/internal/core/playback"
)

// DefaultPattern matches section files inside a sections directory.
const DefaultPattern = "*.md"

//go:embed default.txt
var defaultText string

//go:embed sections/*.md
var embedded embed.FS

// Document is the text to play back together with its authored sections.
// Sections map to sentences by position.
type Document struct {
	Text     string
	Sections []string
}

// Mismatch describes a difference between sentence and section counts.
type Mismatch struct {
	Sentences int
	Sections  int
}

// Error implements error.
func (m Mismatch) Error() string {
	return fmt.Sprintf("document has %d sentences but %d sections", m.Sentences, m.Sections)
}

// Check reports a Mismatch when the document's sentence count differs from
// its section count.
func (d Document) Check() error {
	n := len(playback.Segment(d.Text))
	if n != len(d.Sections) {
		return Mismatch{Sentences: n, Sections: len(d.Sections)}
	}
	return nil
}

// DefaultText returns the built-in document text.
func DefaultText() string {
	return strings.TrimRight(defaultText, "\r\n")
}

// Default returns the built-in document and sections.
func Default() Document {
	sections, err := LoadFS(embedded, "sections/"+DefaultPattern)
	if err != nil {
		// embedded files are compiled in; a failure here is a build defect
		panic(fmt.Sprintf("load embedded sections: %v", err))
	}
	return Document{Text: DefaultText(), Sections: sections}
}

// LoadFS reads every file in fsys matching pattern, sorted by path, as one
// section each.
func LoadFS(fsys fs.FS, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	sections := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read section %s: %w", path, err)
		}
		sections = append(sections, strings.TrimRight(string(data), "\r\n"))
	}
	return sections, nil
}

// LoadDir reads sections from dir. An empty pattern uses DefaultPattern.
func LoadDir(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("sections dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("sections dir: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir), pattern)
}

// ReadText reads a document text file.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// Options selects where document content comes from. Empty fields fall back
// to the built-in document.
type Options struct {
	TextFile        string
	SectionsDir     string
	SectionsPattern string
}

// Load assembles a Document from opts.
func Load(opts Options) (Document, error) {
	doc := Default()

	if opts.TextFile != "" {
		text, err := ReadText(opts.TextFile)
		if err != nil {
			return Document{}, err
		}
		doc.Text = text
	}

	if opts.SectionsDir != "" {
		sections, err := LoadDir(opts.SectionsDir, opts.SectionsPattern)
		if err != nil {
			return Document{}, err
		}
		doc.Sections = sections
	}

	return doc, nil
}
