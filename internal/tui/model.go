package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/praveen/legalbot/internal/format"
	"github.com/praveen/legalbot/internal/models"
	"github.com/praveen/legalbot/internal/query"
	"github.com/praveen/legalbot/internal/session"
	"github.com/praveen/legalbot/internal/speech"
)

const sidebarWidth = 30

// Animation tick message
type animationTickMsg time.Time

// SpeechEvent mirrors the adapter's (transcript, listening) pair into the
// update loop.
type SpeechEvent struct {
	Transcript string
	Listening  bool
}

// SendSpeechEvent delivers ev without ever blocking the capture
// goroutine. A full buffer sheds its oldest pending event so the newest
// state, including the terminal listening=false event, always lands.
func SendSpeechEvent(ch chan SpeechEvent, ev SpeechEvent) {
	for {
		select {
		case ch <- ev:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Message types for the TUI
type (
	answerMsg struct {
		answer string
	}
	answerErrMsg struct {
		err error
	}
	speechEventMsg SpeechEvent
)

// NoticeBox carries controller notices into the update loop. The
// controller writes on the UI goroutine, so no locking is needed.
type NoticeBox struct {
	pending []query.Notice
}

// NewNoticeBox creates an empty notice box.
func NewNoticeBox() *NoticeBox {
	return &NoticeBox{}
}

// Push stores a notice for display.
func (b *NoticeBox) Push(n query.Notice) {
	b.pending = append(b.pending, n)
}

// Pop removes and returns the oldest notice, or nil.
func (b *NoticeBox) Pop() *query.Notice {
	if len(b.pending) == 0 {
		return nil
	}
	n := b.pending[0]
	b.pending = b.pending[1:]
	return &n
}

// Model represents the chat TUI state
type Model struct {
	controller *query.Controller
	store      *session.Store
	adapter    *speech.Adapter
	languages  *session.LanguageSelector
	themes     *session.ThemeController
	notices    *NoticeBox
	speechCh   <-chan SpeechEvent

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	loading        bool
	listening      bool
	ready          bool
	notice         string
	noticeIsError  bool
	sidebarCursor  int
	animationFrame int

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(
	controller *query.Controller,
	store *session.Store,
	adapter *speech.Adapter,
	languages *session.LanguageSelector,
	themes *session.ThemeController,
	notices *NoticeBox,
	speechCh <-chan SpeechEvent,
) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask a legal question..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	ApplyTheme(themes.Current())

	return Model{
		controller: controller,
		store:      store,
		adapter:    adapter,
		languages:  languages,
		themes:     themes,
		notices:    notices,
		speechCh:   speechCh,
		textarea:   ta,
		spinner:    s,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.listenSpeech(),
	)
}

// listenSpeech waits for the next adapter event.
func (m Model) listenSpeech() tea.Cmd {
	if m.speechCh == nil {
		return nil
	}
	ch := m.speechCh
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return speechEventMsg(ev)
	}
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*120, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		inputHeight := 6
		statusHeight := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight
		if vpHeight < 5 {
			vpHeight = 5
		}

		chatWidth := m.chatWidth()
		if !m.ready {
			m.viewport = viewport.New(chatWidth, vpHeight)
			m.textarea.SetWidth(m.width - 8)
			m.ready = true
		} else {
			m.viewport.Width = chatWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(m.width - 8)
		}
		m.updateViewport()

	case tea.KeyMsg:
		// Consumed keys return here. The textarea keymap binds several of
		// these control chords itself (ctrl+t transpose, ctrl+d delete,
		// ctrl+p/ctrl+n line movement), so letting them fall through would
		// also mutate the draft question.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.loading {
				// Request stays in flight; the refusal of new submits
				// while Pending still holds.
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			return m, m.submit()

		case "ctrl+v":
			m.toggleVoice()
			return m, nil

		case "ctrl+l":
			m.languages.Next()
			return m, nil

		case "ctrl+t":
			ApplyTheme(m.themes.Toggle())
			m.updateViewport()
			return m, nil

		case "ctrl+p":
			if m.sidebarCursor > 0 {
				m.sidebarCursor--
			}
			return m, nil

		case "ctrl+n":
			if m.sidebarCursor < len(m.store.Topics())-1 {
				m.sidebarCursor++
			}
			return m, nil

		case "ctrl+d":
			m.store.DeleteTopic(m.sidebarCursor)
			if n := len(m.store.Topics()); m.sidebarCursor >= n && n > 0 {
				m.sidebarCursor = n - 1
			}
			return m, nil
		}

	case speechEventMsg:
		m.listening = msg.Listening
		m.controller.SetInput(msg.Transcript)
		if msg.Transcript != "" || !msg.Listening {
			m.textarea.SetValue(msg.Transcript)
		}
		cmds = append(cmds, m.listenSpeech())

	case answerMsg:
		m.loading = false
		m.controller.Succeed(msg.answer)
		m.textarea.Reset()
		m.updateViewport()
		m.viewport.GotoBottom()

	case answerErrMsg:
		m.loading = false
		m.controller.Fail(msg.err)
		m.textarea.Reset()
		m.drainNotices()
		m.updateViewport()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.loading {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
			m.controller.SetInput(m.textarea.Value())
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit starts a turn for the typed or transcribed input. Returns nil
// when the controller refuses the submission.
func (m *Model) submit() tea.Cmd {
	m.controller.SetInput(m.textarea.Value())
	question, ok := m.controller.Submit()
	if !ok {
		return nil
	}

	m.notice = ""
	m.noticeIsError = false
	m.loading = true
	m.animationFrame = 0
	m.textarea.Reset()
	if m.adapter != nil && m.adapter.Listening() {
		m.adapter.Stop()
	}
	m.updateViewport()
	m.viewport.GotoBottom()

	ask := func() tea.Msg {
		answer, err := m.controller.Ask(context.Background(), question)
		if err != nil {
			return answerErrMsg{err: err}
		}
		return answerMsg{answer: answer}
	}

	return tea.Batch(ask, m.spinner.Tick, animationTick())
}

// toggleVoice starts or stops speech capture for the selected language.
func (m *Model) toggleVoice() {
	if m.adapter == nil {
		m.notice = "Speech recognition is not supported in this environment."
		m.noticeIsError = false
		return
	}
	if m.adapter.Listening() {
		m.adapter.Stop()
		m.listening = false
		return
	}
	if err := m.adapter.Start(m.languages.Selected().Code); err != nil {
		m.controller.Warn("Speech recognition is not supported in this environment.", err)
		m.drainNotices()
		return
	}
	m.listening = true
}

// drainNotices moves controller notices into the display line. Service
// failures render in the error style, capability warnings in the softer
// notice style.
func (m *Model) drainNotices() {
	for {
		n := m.notices.Pop()
		if n == nil {
			return
		}
		m.notice = n.Message
		m.noticeIsError = n.Kind == query.NoticeServiceFailure
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSidebar(),
		m.renderChat(),
	)
	sections = append(sections, body)

	sections = append(sections, m.renderInput())
	sections = append(sections, m.renderStatusBar())

	if m.notice != "" {
		style := noticeStyle
		if m.noticeIsError {
			style = errorStyle
		}
		sections = append(sections, style.Render("⚠ "+m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) chatWidth() int {
	w := m.width - sidebarWidth - 6
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) renderHeader() string {
	lang := m.languages.Selected()
	parts := []string{
		titleStyle.Render("⚖ Legal Bot"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(lang.Short),
	}
	if m.listening {
		parts = append(parts,
			hintStyle.Render("  •  "),
			micOnStyle.Render("🎙 listening"),
		)
	}
	parts = append(parts,
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.themes.Current().String()),
	)
	content := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return headerStyle.Width(m.width - 2).Render(content)
}

func (m Model) renderSidebar() string {
	var content strings.Builder
	content.WriteString(sidebarTitleStyle.Render("📜 Chat History"))
	content.WriteString("\n")

	topics := m.store.Topics()
	if len(topics) == 0 {
		content.WriteString(hintStyle.Render("No chats yet"))
	} else {
		for i, t := range topics {
			label := t.Label
			if len(label) > sidebarWidth-6 {
				label = label[:sidebarWidth-9] + "..."
			}
			if i == m.sidebarCursor {
				content.WriteString(topicSelectedStyle.Render("▸ " + label))
			} else {
				content.WriteString(topicItemStyle.Render("  " + label))
			}
			content.WriteString("\n")
		}
	}

	return sidebarStyle.
		Width(sidebarWidth).
		Height(m.viewport.Height).
		Render(content.String())
}

func (m Model) renderChat() string {
	var content string
	if len(m.store.Messages()) == 0 && !m.loading {
		content = m.renderWelcome()
	} else {
		content = m.viewport.View()
	}

	return messagesAreaStyle.
		Width(m.chatWidth()).
		Height(m.viewport.Height).
		Render(content)
}

func (m Model) renderWelcome() string {
	width := m.chatWidth() - 4

	icon := lipgloss.NewStyle().Foreground(colorAccent).Width(width).Align(lipgloss.Center).Render("⚖")
	title := titleStyle.Width(width).Align(lipgloss.Center).Render("Welcome to Legal Bot")
	subtitle := hintStyle.Width(width).Align(lipgloss.Center).
		Render("Type a question or press Ctrl+V to speak")

	return lipgloss.JoinVertical(lipgloss.Center, "", icon, "", title, "", subtitle)
}

func (m Model) renderInput() string {
	var content string
	if m.loading {
		dots := strings.Repeat(".", m.animationFrame%4)
		content = fmt.Sprintf("%s %s", m.spinner.View(),
			thinkingStyle.Render("🤔 Thinking"+dots))
	} else {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	return inputPanelStyle.Width(m.width - 2).Render(content)
}

func (m Model) renderStatusBar() string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Ask"},
		{"Ctrl+V", "Voice"},
		{"Ctrl+L", "Language"},
		{"Ctrl+T", "Theme"},
		{"Ctrl+P/N", "History"},
		{"Ctrl+D", "Delete"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(m.width - 2).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.chatWidth() - 6

	for i, msg := range m.store.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Kind == models.Question {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("⚖ LegalBot")
			rendered := format.Render(format.Markup(msg.Text))
			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI
func RunChat(
	controller *query.Controller,
	store *session.Store,
	adapter *speech.Adapter,
	languages *session.LanguageSelector,
	themes *session.ThemeController,
	notices *NoticeBox,
	speechCh <-chan SpeechEvent,
) error {
	m := NewChatModel(controller, store, adapter, languages, themes, notices, speechCh)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
