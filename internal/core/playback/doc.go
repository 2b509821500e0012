// Package playback implements the sentence playback engine: splitting text
// into sentences, stepping a cursor through them, and mapping the cursor to
// revealed summary sections and a highlight span in the source text.
package playback
