package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/colonyops/choir/internal/core/styles"
)

const summaryEmptyText = "Press space to start playback."

// summaryPane renders the revealed sections as markdown in a scrollable
// viewport. Rendering is cached by source text and width.
type summaryPane struct {
	viewport viewport.Model
	log      zerolog.Logger

	source   string
	rendered string
	width    int

	renderer      *glamour.TermRenderer
	rendererWidth int
}

func newSummaryPane(log zerolog.Logger) *summaryPane {
	return &summaryPane{
		viewport: viewport.New(0, 0),
		log:      log,
	}
}

// SetSize resizes the viewport and re-renders if the width changed.
func (p *summaryPane) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
	if width != p.width {
		p.width = width
		p.refresh(true)
	}
}

// SetContent renders revealed and scrolls to the bottom when it changed.
func (p *summaryPane) SetContent(revealed string) {
	if revealed == p.source && p.rendered != "" {
		return
	}
	p.source = revealed
	p.refresh(false)
	p.viewport.GotoBottom()
}

func (p *summaryPane) refresh(keepOffset bool) {
	offset := p.viewport.YOffset
	p.rendered = p.render(p.source)
	p.viewport.SetContent(p.rendered)
	if keepOffset {
		p.viewport.SetYOffset(offset)
	}
}

func (p *summaryPane) render(source string) string {
	if strings.TrimSpace(source) == "" {
		return styles.MutedStyle.Render(summaryEmptyText)
	}
	if p.width <= 0 {
		return source
	}

	r, err := p.termRenderer()
	if err != nil {
		p.log.Warn().Err(err).Msg("failed to create markdown renderer")
		return source
	}

	out, err := r.Render(source)
	if err != nil {
		p.log.Warn().Err(err).Msg("failed to render summary")
		return source
	}
	return strings.Trim(out, "\n")
}

func (p *summaryPane) termRenderer() (*glamour.TermRenderer, error) {
	if p.renderer != nil && p.rendererWidth == p.width {
		return p.renderer, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(p.width),
	)
	if err != nil {
		return nil, err
	}
	p.renderer = r
	p.rendererWidth = p.width
	return r, nil
}

// Update forwards scroll input to the viewport.
func (p *summaryPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// ScrollUp moves up by half a page.
func (p *summaryPane) ScrollUp() {
	p.viewport.SetYOffset(p.viewport.YOffset - max(p.viewport.Height/2, 1))
}

// ScrollDown moves down by half a page.
func (p *summaryPane) ScrollDown() {
	p.viewport.SetYOffset(p.viewport.YOffset + max(p.viewport.Height/2, 1))
}

func (p *summaryPane) View() string {
	return p.viewport.View()
}
