package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/choir/internal/core/notify"
	"github.com/colonyops/choir/internal/core/styles"
)

const (
	notifyModalWidthPct  = 60
	notifyModalMinWidth  = 50
	notifyModalMaxHeight = 24
	notifyModalMargin    = 4
	notifyModalChrome    = 6 // title + divider + help + spacing
)

// historySource lists and clears recorded notifications.
type historySource interface {
	History() ([]notify.Notification, error)
	Clear() error
}

// NotificationModal displays a scrollable history of notifications.
type NotificationModal struct {
	source   historySource
	viewport viewport.Model
	width    int
	height   int
}

// NewNotificationModal creates a modal showing notification history.
func NewNotificationModal(source historySource, width, height int) *NotificationModal {
	modalWidth := calcNotificationModalWidth(width)
	modalHeight := max(min(height-notifyModalMargin, notifyModalMaxHeight), notifyModalChrome+1)

	m := &NotificationModal{
		source:   source,
		viewport: viewport.New(modalWidth-4, modalHeight-notifyModalChrome),
		width:    width,
		height:   height,
	}

	m.refreshContent()
	return m
}

func (m *NotificationModal) refreshContent() {
	history, err := m.source.History()
	if err != nil {
		m.viewport.SetContent(styles.ErrorStyle.Render(fmt.Sprintf("failed to load notifications: %v", err)))
		return
	}

	if len(history) == 0 {
		m.viewport.SetContent(styles.MutedStyle.Render("No notifications"))
		return
	}

	lines := make([]string, 0, len(history))
	for _, n := range history {
		lines = append(lines, formatNotification(n))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func formatNotification(n notify.Notification) string {
	ts := styles.MutedStyle.Render(n.CreatedAt.Format("15:04:05"))
	icon, _ := levelIcon(n.Level)

	msgStyle := styles.CommandStyle
	switch n.Level {
	case notify.LevelError:
		msgStyle = styles.ErrorStyle
	case notify.LevelWarning:
		msgStyle = styles.WarningStyle
	}

	return fmt.Sprintf("%s %s %s", ts, icon, msgStyle.Render(n.Message))
}

// Update forwards scroll keys to the viewport.
func (m *NotificationModal) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// Clear deletes all notifications and refreshes the view.
func (m *NotificationModal) Clear() error {
	if err := m.source.Clear(); err != nil {
		return err
	}
	m.refreshContent()
	return nil
}

// View renders the modal box.
func (m *NotificationModal) View() string {
	modalWidth := calcNotificationModalWidth(m.width)

	scrollInfo := ""
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		scrollInfo = styles.MutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.DividerStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render("Notifications"+scrollInfo),
		divider,
		m.viewport.View(),
		styles.ModalHelpStyle.Render("[j/k] scroll  [D] clear all  [esc] close"),
	)

	return styles.ModalStyle.Width(modalWidth).Render(content)
}

// Overlay renders the notification modal centered over the background.
func (m *NotificationModal) Overlay(background string, width, height int) string {
	return overlayCenter(background, m.View(), width, height)
}

func calcNotificationModalWidth(termWidth int) int {
	available := max(termWidth-notifyModalMargin, 1)
	target := termWidth * notifyModalWidthPct / 100
	return min(max(target, notifyModalMinWidth), available)
}
