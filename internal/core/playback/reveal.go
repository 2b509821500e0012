package playback

import "strings"

// SectionSeparator joins revealed sections.
const SectionSeparator = "\n\n"

// Revealer maps a cursor to the cumulative markdown of authored sections.
// Sections map to sentences by position only.
type Revealer struct {
	sections []string
}

// NewRevealer creates a Revealer over a copy of sections.
func NewRevealer(sections []string) Revealer {
	return Revealer{sections: append([]string(nil), sections...)}
}

// Len returns the number of sections.
func (r Revealer) Len() int { return len(r.sections) }

// Sections returns a copy of the sections.
func (r Revealer) Sections() []string {
	return append([]string(nil), r.sections...)
}

// Reveal returns sections [0..cursor] joined by SectionSeparator. A
// negative cursor reveals nothing; a cursor past the last section reveals
// every section.
func (r Revealer) Reveal(cursor int) string {
	if cursor < 0 || len(r.sections) == 0 {
		return ""
	}
	end := min(cursor, len(r.sections)-1) + 1
	return strings.Join(r.sections[:end], SectionSeparator)
}
