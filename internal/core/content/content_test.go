package content

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/choir/internal/core/playback"
)

func TestDefault(t *testing.T) {
	doc := Default()

	require.Len(t, doc.Sections, 9)
	assert.Equal(t, "# Background", doc.Sections[0][:len("# Background")])
	assert.Contains(t, doc.Sections[8], "# Conclusion")
	assert.NotContains(t, doc.Text, "\n")
	assert.Len(t, playback.Segment(doc.Text), 9)
	assert.NoError(t, doc.Check())
}

func TestDocument_Check_mismatch(t *testing.T) {
	doc := Document{Text: "A. B. C.", Sections: []string{"S0", "S1"}}

	err := doc.Check()

	var mm Mismatch
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, Mismatch{Sentences: 3, Sections: 2}, mm)
	assert.Contains(t, err.Error(), "3 sentences but 2 sections")
}

func TestLoadFS_sorted_by_path(t *testing.T) {
	fsys := fstest.MapFS{
		"b/02.md":   {Data: []byte("two\n")},
		"a/01.md":   {Data: []byte("one\n")},
		"notes.txt": {Data: []byte("ignored")},
		"c/03.md":   {Data: []byte("# three\n\n* x\n")},
	}

	got, err := LoadFS(fsys, "**/*.md")

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "# three\n\n* x"}, got)
}

func TestLoadFS_bad_pattern(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, "[")
	assert.Error(t, err)
}

func TestLoad_overrides(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("One. Two.\n"), 0o644))

	sectionsDir := filepath.Join(dir, "sections")
	require.NoError(t, os.MkdirAll(sectionsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sectionsDir, "1.md"), []byte("# One"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sectionsDir, "2.md"), []byte("# Two"), 0o644))

	doc, err := Load(Options{TextFile: textPath, SectionsDir: sectionsDir})

	require.NoError(t, err)
	assert.Equal(t, "One. Two.", doc.Text)
	assert.Equal(t, []string{"# One", "# Two"}, doc.Sections)
	assert.NoError(t, doc.Check())
}

func TestLoad_defaults(t *testing.T) {
	doc, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, Default(), doc)
}

func TestLoad_errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(Options{TextFile: filepath.Join(dir, "missing.txt")})
	assert.ErrorContains(t, err, "read text")

	_, err = Load(Options{SectionsDir: filepath.Join(dir, "missing")})
	assert.ErrorContains(t, err, "sections dir")

	file := filepath.Join(dir, "file.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = LoadDir(file, "")
	assert.ErrorContains(t, err, "not a directory")
}
