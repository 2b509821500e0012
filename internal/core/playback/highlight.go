package playback

import "strings"

// Span is a half-open byte range [Start, End) within the document text.
type Span struct {
	Start int
	End   int
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Locate finds the highlight span of the sentence at cursor within text.
//
// The sum of the raw lengths of the preceding sentences is used as a search
// hint, and the trimmed sentence is searched for exactly from there. When
// the search misses, no span is returned.
func Locate(text string, sentences []string, cursor int) (Span, bool) {
	if cursor < 0 || cursor >= len(sentences) {
		return Span{}, false
	}

	offset := 0
	for _, s := range sentences[:cursor] {
		offset += len(s)
	}
	if offset > len(text) {
		return Span{}, false
	}

	target := strings.TrimSpace(sentences[cursor])
	if target == "" {
		return Span{}, false
	}

	idx := strings.Index(text[offset:], target)
	if idx < 0 {
		return Span{}, false
	}

	start := offset + idx
	return Span{Start: start, End: start + len(target)}, true
}

// SentenceAt returns the sentence at cursor with surrounding whitespace
// trimmed.
func SentenceAt(sentences []string, cursor int) (string, bool) {
	if cursor < 0 || cursor >= len(sentences) {
		return "", false
	}
	return strings.TrimSpace(sentences[cursor]), true
}
