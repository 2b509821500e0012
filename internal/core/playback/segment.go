package playback

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Segment splits text on Unicode (UAX #29) sentence boundaries. Each
// sentence keeps its trailing whitespace, so joining the result reproduces
// text exactly.
//
// Blank lines and line-ending pairs that the boundary rules report as their
// own segments are folded into the preceding sentence, or into the next one
// when they lead the text. Text made only of whitespace is one segment.
func Segment(text string) []string {
	var (
		sentences []string
		sentence  string
		pending   string
		state     = -1
	)

	for len(text) > 0 {
		sentence, text, state = uniseg.FirstSentenceInString(text, state)

		if strings.TrimSpace(sentence) == "" {
			if n := len(sentences); n > 0 {
				sentences[n-1] += sentence
			} else {
				pending += sentence
			}
			continue
		}

		sentences = append(sentences, pending+sentence)
		pending = ""
	}

	if pending != "" {
		sentences = append(sentences, pending)
	}

	return sentences
}
