package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentSpans(t *testing.T) {
	text := "A. B. C."
	spans := segmentSpans(text)

	require.Len(t, spans, 3)
	assert.Equal(t, sentenceSpan{Index: 0, Start: 0, End: 3, Text: "A. "}, spans[0])
	assert.Equal(t, sentenceSpan{Index: 1, Start: 3, End: 6, Text: "B. "}, spans[1])
	assert.Equal(t, sentenceSpan{Index: 2, Start: 6, End: 8, Text: "C."}, spans[2])

	for _, s := range spans {
		assert.Equal(t, s.Text, text[s.Start:s.End])
	}
}

func TestSegmentSpans_empty(t *testing.T) {
	assert.Empty(t, segmentSpans(""))
}

func TestWriteSpans(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSpans(&buf, segmentSpans("One. Two.")))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"#", "START", "END", "SENTENCE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "0", "5", "One."}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "5", "9", "Two."}, strings.Fields(lines[2]))
}
