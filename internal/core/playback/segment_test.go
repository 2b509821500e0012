package playback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "single letters",
			text: "A. B. C.",
			want: []string{"A. ", "B. ", "C."},
		},
		{
			name: "mixed terminators",
			text: "Hello world. How are you? I'm fine!",
			want: []string{"Hello world. ", "How are you? ", "I'm fine!"},
		},
		{
			name: "no terminator",
			text: "just a fragment",
			want: []string{"just a fragment"},
		},
		{
			name: "paragraph break joins the preceding sentence",
			text: "First.\n\nSecond.",
			want: []string{"First.\n\n", "Second."},
		},
		{
			name: "heading line then paragraph",
			text: "Title\n\nBody one. Body two.\n",
			want: []string{"Title\n\n", "Body one. ", "Body two.\n"},
		},
		{
			name: "crlf line endings",
			text: "A.\r\nB.\r\n",
			want: []string{"A.\r\n", "B.\r\n"},
		},
		{
			name: "leading blank lines join the first sentence",
			text: "\n\nFirst. Second.",
			want: []string{"\n\nFirst. ", "Second."},
		},
		{
			name: "whitespace only",
			text: " \n ",
			want: []string{" \n "},
		},
		{
			name: "abbreviation does not split",
			text: "Chat tools (e.g., Slack) are common. They bury knowledge.",
			want: []string{"Chat tools (e.g., Slack) are common. ", "They bury knowledge."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.text))
		})
	}
}

func TestSegment_lossless(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"A. B. C.",
		"  leading space. Trailing space.  ",
		"Line one.\nLine two.\n\nParagraph two!",
		"Windows.\r\nLine endings.\r\n\r\n",
		"\n\n\nLeading blank lines.",
		"Quoted \"end.\" Next one.",
		"Duplicate. Duplicate. Duplicate.",
		"Ünïcödé sentences — with dashes. 日本語の文です。次の文です。",
		"No punctuation at all",
	}

	for _, in := range inputs {
		got := Segment(in)
		assert.Equal(t, in, strings.Join(got, ""), "segments of %q must reassemble", in)
		for _, s := range got {
			assert.NotEmpty(t, s)
			if len(got) > 1 {
				assert.NotEmpty(t, strings.TrimSpace(s), "blank segment in %q", in)
			}
		}
	}
}

func TestSegment_duplicates_are_distinct_entries(t *testing.T) {
	got := Segment("Same. Same. Same.")
	assert.Len(t, got, 3)
}
