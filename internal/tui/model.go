// Package tui implements the interactive playback view.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/choir/internal/choir"
	"github.com/colonyops/choir/internal/core/styles"
)

// UIState represents the current input mode of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateEditing
	stateChatInput
	stateSettings
	stateNotifications
	stateConfirmReset
)

// Key constants for event handling.
const (
	keyEnter = "enter"
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
)

const (
	headerHeight   = 1
	controlsHeight = 1
	paneChrome     = 3 // border + pane title
	paneHPadding   = 4 // border + padding
)

// Model is the main Bubble Tea model.
type Model struct {
	app   *choir.App
	store *choir.Store
	log   zerolog.Logger

	snap     choir.Snapshot
	state    UIState
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	reported bool

	editor textarea.Model
	// editorText is the editor value right after editorSource was loaded;
	// the textarea normalizes what it is given.
	editorText   string
	editorSource string

	summary *summaryPane
	chat    *chatPane

	settingsDialog    *SettingsDialog
	notificationModal *NotificationModal
	confirmModal      Modal

	toasts       *ToastController
	toastView    *ToastView
	toastTicking bool

	notifications *NotificationBuffer
	snapshots     *SnapshotMailbox
	unsubscribe   []func()
}

// New creates a model bound to app. The model subscribes to the store and
// the notification bus; both subscriptions end when the model quits.
func New(app *choir.App, log zerolog.Logger) Model {
	toasts := NewToastController(app.Config.Notifications.ToastTTL)

	m := Model{
		app:           app,
		store:         app.Store,
		log:           log,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		editor:        newEditor(),
		summary:       newSummaryPane(log),
		chat:          newChatPane(),
		toasts:        toasts,
		toastView:     NewToastView(toasts),
		notifications: NewNotificationBuffer(),
		snapshots:     NewSnapshotMailbox(),
	}

	m.unsubscribe = []func(){
		app.Notify.Subscribe(m.notifications.Push),
		app.Store.Subscribe(m.snapshots.Put),
	}

	m.applySnapshot(app.Store.Snapshot())
	return m
}

// Init starts listening for store and notification updates.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.notifications.WaitForSignal(),
		m.snapshots.WaitForSignal(),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if !m.reported {
			m.reported = true
			m.app.ReportStartup()
		}
		return m, nil

	case snapshotReadyMsg:
		if s, ok := m.snapshots.Take(); ok {
			m.applySnapshot(s)
		}
		return m, m.snapshots.WaitForSignal()

	case drainNotificationsMsg:
		for _, n := range m.notifications.Drain() {
			m.toasts.Push(n)
		}
		return m, tea.Batch(m.notifications.WaitForSignal(), m.startToastTick())

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toastTicking = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m *Model) startToastTick() tea.Cmd {
	if m.toastTicking || !m.toasts.HasToasts() {
		return nil
	}
	m.toastTicking = true
	return scheduleToastTick()
}

// applySnapshot syncs the panes with s. Snapshots older than the one shown
// are ignored.
func (m *Model) applySnapshot(s choir.Snapshot) {
	if s.Version < m.snap.Version {
		return
	}

	relayout := s.ChatOpen != m.snap.ChatOpen
	m.snap = s

	m.keys.setRunning(s.Running())
	m.keys.setChatOpen(s.ChatOpen)

	m.summary.SetContent(s.Revealed)
	m.chat.SetMessages(s.Messages)

	if m.state != stateEditing && m.editorSource != s.Text {
		m.loadEditor(s.Text)
	}

	if !s.ChatOpen && m.state == stateChatInput {
		m.chat.Blur()
		m.state = stateNormal
	}

	if relayout {
		m.layout()
	}
}

// refresh pulls the store state after an action taken from Update.
func (m *Model) refresh() {
	m.applySnapshot(m.store.Snapshot())
}

func (m Model) quit() (Model, tea.Cmd) {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
	return m, tea.Quit
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		return m.quit()
	}

	switch m.state {
	case stateEditing:
		return m.handleEditingKey(msg)
	case stateChatInput:
		return m.handleChatInputKey(msg)
	case stateSettings:
		return m.handleSettingsKey(msg)
	case stateNotifications:
		return m.handleNotificationModalKey(msg)
	case stateConfirmReset:
		return m.handleConfirmResetKey(msg)
	}

	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.PlayPause):
		m.store.TogglePlayPause()
	case key.Matches(msg, m.keys.StepBack):
		m.store.StepBack()
	case key.Matches(msg, m.keys.Complete):
		m.store.Complete()
	case key.Matches(msg, m.keys.Reset):
		m.confirmModal = NewModal("Reset playback", "Clear the highlight, the summary and the chat? Your text is kept.")
		m.state = stateConfirmReset
		return m, nil
	case key.Matches(msg, m.keys.ToggleChat):
		m.store.ToggleChat()
	case key.Matches(msg, m.keys.FocusChat):
		m.state = stateChatInput
		return m, m.chat.Focus()
	case key.Matches(msg, m.keys.ClearChat):
		m.store.ClearChat()
	case key.Matches(msg, m.keys.Settings):
		m.settingsDialog = NewSettingsDialog(m.app.Settings.Draft())
		m.state = stateSettings
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		m.loadEditor(m.snap.Text)
		m.state = stateEditing
		return m, m.editor.Focus()
	case key.Matches(msg, m.keys.Notifications):
		m.notificationModal = NewNotificationModal(m.app.Notify, m.width, m.height)
		m.state = stateNotifications
		return m, nil
	case key.Matches(msg, m.keys.ScrollUp):
		m.summary.ScrollUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.summary.ScrollDown()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m *Model) loadEditor(text string) {
	m.editor.SetValue(text)
	m.editorSource = text
	m.editorText = m.editor.Value()
}

func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyEsc {
		m.editor.Blur()
		m.state = stateNormal
		if v := m.editor.Value(); v != m.editorText {
			m.store.SetText(v)
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleChatInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		m.chat.Blur()
		m.state = stateNormal
		return m, nil
	case keyEnter:
		if m.store.SendMessage(m.chat.Value()) {
			m.chat.ResetInput()
		}
		m.refresh()
		return m, nil
	case "alt+enter", "ctrl+j":
		m.chat.InsertNewline()
		return m, nil
	}

	return m, m.chat.Update(msg)
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.settingsDialog.Update(msg)

	switch {
	case m.settingsDialog.Submitted():
		if err := m.app.Settings.Save(m.settingsDialog.Selection()); err != nil {
			m.app.Notify.Errorf("save settings: %v", err)
		}
		m.settingsDialog = nil
		m.state = stateNormal
		return m, nil
	case m.settingsDialog.Cancelled():
		m.settingsDialog = nil
		m.state = stateNormal
		return m, nil
	}

	return m, cmd
}

func (m Model) handleNotificationModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc, "q", "n":
		m.notificationModal = nil
		m.state = stateNormal
		return m, nil
	case "D":
		if err := m.notificationModal.Clear(); err != nil {
			m.app.Notify.Errorf("clear notifications: %v", err)
		}
		return m, nil
	}

	return m, m.notificationModal.Update(msg)
}

func (m Model) handleConfirmResetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "h", "l", "tab":
		m.confirmModal.ToggleSelection()
		return m, nil
	case "y":
		m.store.Reset()
	case keyEnter:
		if m.confirmModal.ConfirmSelected() {
			m.store.Reset()
		}
	case keyEsc, "n":
	default:
		return m, nil
	}

	m.state = stateNormal
	m.refresh()
	return m, nil
}

// updateFocused routes non-key messages such as cursor blinks to the
// focused input.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateEditing:
		m.editor, cmd = m.editor.Update(msg)
	case stateChatInput:
		cmd = m.chat.Update(msg)
	case stateSettings:
		cmd = m.settingsDialog.Update(msg)
	}
	return m, cmd
}

// paneSizes returns the outer column widths and the shared body height.
func (m Model) paneSizes() ([]int, int) {
	cols := 2
	if m.snap.ChatOpen {
		cols = 3
	}

	widths := make([]int, cols)
	base := m.width / cols
	for i := range widths {
		widths[i] = base
	}
	widths[cols-1] = m.width - base*(cols-1)

	helpHeight := lipgloss.Height(m.help.View(m.keys))
	body := max(m.height-headerHeight-controlsHeight-helpHeight, paneChrome+1)
	return widths, body
}

func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	m.help.Width = m.width

	widths, body := m.paneSizes()
	innerHeight := body - paneChrome

	m.editor.SetWidth(max(widths[0]-paneHPadding, 1))
	m.editor.SetHeight(innerHeight)
	m.summary.SetSize(max(widths[1]-paneHPadding, 1), innerHeight)
	if len(widths) > 2 {
		m.chat.SetSize(max(widths[2]-paneHPadding, 1), innerHeight)
	}
}

// View renders the model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	widths, body := m.paneSizes()
	innerHeight := body - paneChrome

	var doc string
	if m.state == stateEditing {
		doc = m.editor.View()
	} else {
		doc = renderDocument(m.snap, widths[0]-paneHPadding, innerHeight)
	}

	docTitle := "Document"
	if m.state == stateEditing {
		docTitle = "Document (editing, esc to apply)"
	}

	panes := []string{
		renderPane(docTitle, doc, m.state == stateEditing, widths[0], body),
		renderPane("Summary", m.summary.View(), false, widths[1], body),
	}
	if m.snap.ChatOpen {
		panes = append(panes, renderPane("Chat", m.chat.View(), m.state == stateChatInput, widths[2], body))
	}

	header := styles.TitleStyle.Render("CHOIR") + "  " + styles.MutedStyle.Render("document playback")

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, panes...),
		renderControls(m.snap, m.width),
		m.help.View(m.keys),
	)

	switch m.state {
	case stateSettings:
		view = m.settingsDialog.Overlay(view, m.width, m.height)
	case stateNotifications:
		view = m.notificationModal.Overlay(view, m.width, m.height)
	case stateConfirmReset:
		view = m.confirmModal.Overlay(view, m.width, m.height)
	}

	return m.toastView.Overlay(view, m.width, m.height)
}

func renderPane(title, content string, focused bool, width, height int) string {
	style := styles.PaneStyle
	titleStyle := styles.MutedStyle
	if focused {
		style = styles.PaneFocusedStyle
		titleStyle = styles.TitleStyle
	}

	return style.
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		MaxHeight(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), content))
}
