package tui

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/choir/pkg/tuitest"
)

func TestSummaryPane_Empty(t *testing.T) {
	p := newSummaryPane(zerolog.Nop())
	p.SetSize(40, 10)
	p.SetContent("")

	assert.Contains(t, tuitest.StripANSI(p.View()), summaryEmptyText)
}

func TestSummaryPane_RendersMarkdown(t *testing.T) {
	p := newSummaryPane(zerolog.Nop())
	p.SetSize(40, 10)
	p.SetContent("## Background\n\nSentence alignment matters.")

	view := tuitest.StripANSI(p.View())
	assert.Contains(t, view, "Background")
	assert.Contains(t, view, "Sentence alignment matters.")
}

func TestSummaryPane_ScrollsToNewestContent(t *testing.T) {
	p := newSummaryPane(zerolog.Nop())
	p.SetSize(40, 4)

	paras := make([]string, 0, 12)
	for range 12 {
		paras = append(paras, "A paragraph of summary text.")
	}
	p.SetContent(strings.Join(paras, "\n\n"))
	assert.True(t, p.viewport.AtBottom())

	bottom := p.viewport.YOffset
	p.ScrollUp()
	assert.Less(t, p.viewport.YOffset, bottom)

	p.ScrollDown()
	assert.Equal(t, bottom, p.viewport.YOffset)
}
