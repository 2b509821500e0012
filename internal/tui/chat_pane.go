package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/choir/internal/core/chat"
	"github.com/colonyops/choir/internal/core/styles"
)

const (
	chatInputHeight = 3
	chatEmptyText   = "Highlight a sentence and open chat to discuss it."
)

// chatPane shows the transcript above a message input.
type chatPane struct {
	transcript viewport.Model
	input      textarea.Model
	messages   []chat.Message
	width      int
}

func newChatPane() *chatPane {
	input := textarea.New()
	input.Placeholder = "Write a message..."
	input.ShowLineNumbers = false
	input.Prompt = ""
	input.CharLimit = 0
	input.SetHeight(chatInputHeight)

	return &chatPane{
		transcript: viewport.New(0, 0),
		input:      input,
	}
}

// SetSize lays out the transcript above the input within width x height.
func (p *chatPane) SetSize(width, height int) {
	p.width = width
	p.input.SetWidth(width)
	p.transcript.Width = width
	p.transcript.Height = max(height-chatInputHeight-1, 1)
	p.render()
}

// SetMessages replaces the transcript and scrolls to the newest message.
func (p *chatPane) SetMessages(messages []chat.Message) {
	if sameMessages(p.messages, messages) {
		return
	}
	p.messages = messages
	p.render()
	p.transcript.GotoBottom()
}

func sameMessages(a, b []chat.Message) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func (p *chatPane) render() {
	if len(p.messages) == 0 {
		p.transcript.SetContent(styles.MutedStyle.Render(chatEmptyText))
		return
	}

	blocks := make([]string, 0, len(p.messages))
	for _, m := range p.messages {
		blocks = append(blocks, renderMessage(m, p.width))
	}
	p.transcript.SetContent(strings.Join(blocks, "\n\n"))
}

// renderMessage right-aligns user messages at three quarters of the width;
// system messages span the full width.
func renderMessage(m chat.Message, width int) string {
	if width <= 0 {
		return m.Text
	}
	switch m.Role() {
	case chat.RoleUser:
		bubble := styles.ChatUserStyle.MaxWidth(width * 3 / 4).Render(m.Text)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
	default:
		return styles.ChatSystemStyle.Width(width).Render(m.Text)
	}
}

// Focus focuses the input.
func (p *chatPane) Focus() tea.Cmd { return p.input.Focus() }

// Blur blurs the input.
func (p *chatPane) Blur() { p.input.Blur() }

// Value returns the trimmed input text.
func (p *chatPane) Value() string { return strings.TrimSpace(p.input.Value()) }

// ResetInput clears the input.
func (p *chatPane) ResetInput() { p.input.Reset() }

// InsertNewline adds a line break at the cursor.
func (p *chatPane) InsertNewline() { p.input.InsertString("\n") }

// Update forwards input to the textarea.
func (p *chatPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *chatPane) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.transcript.View(),
		styles.DividerStyle.Render(strings.Repeat("─", max(p.width, 1))),
		p.input.View(),
	)
}
