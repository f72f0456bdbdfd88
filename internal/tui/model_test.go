package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/praveen/legalbot/internal/models"
	"github.com/praveen/legalbot/internal/query"
	"github.com/praveen/legalbot/internal/session"
)

type stubService struct {
	answer string
	err    error
}

func (s *stubService) Ask(ctx context.Context, question string) (string, error) {
	return s.answer, s.err
}

type memPrefs map[string]string

func (m memPrefs) Get(key string) string       { return m[key] }
func (m memPrefs) Set(key, value string) error { m[key] = value; return nil }

func newTestModel(t *testing.T) (Model, *session.Store) {
	t.Helper()

	store := session.NewStore()
	notices := NewNoticeBox()
	controller := query.New(store, &stubService{answer: "ok"}, nil, notices.Push)
	themes := session.NewThemeController(memPrefs{})
	languages := session.NewLanguageSelector("en-IN")

	m := NewChatModel(controller, store, nil, languages, themes, notices, nil)

	tm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return tm.(Model), store
}

func TestModel_SubmitStartsTurn(t *testing.T) {
	m, store := newTestModel(t)

	m.textarea.SetValue("is this legal?")
	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(Model)

	if cmd == nil {
		t.Fatal("enter on non-empty input produced no command")
	}
	if !m.loading {
		t.Error("not loading after submit")
	}
	msgs := store.Messages()
	if len(msgs) != 1 || msgs[0].Kind != models.Question {
		t.Fatalf("messages = %+v, want one Question", msgs)
	}
	if len(store.Topics()) != 1 {
		t.Errorf("topic count = %d, want 1", len(store.Topics()))
	}
}

func TestModel_SubmitEmptyIsNoop(t *testing.T) {
	m, store := newTestModel(t)

	m.textarea.SetValue("   ")
	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(Model)

	if m.loading {
		t.Error("loading after empty submit")
	}
	if len(store.Messages()) != 0 {
		t.Error("empty submit appended a message")
	}
}

func TestModel_AnswerCompletesTurn(t *testing.T) {
	m, store := newTestModel(t)

	m.textarea.SetValue("what should i do after theft?")
	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(Model)

	tm, _ = m.Update(answerMsg{answer: "**File** an FIR"})
	m = tm.(Model)

	if m.loading {
		t.Error("still loading after answer")
	}
	msgs := store.Messages()
	if len(msgs) != 2 {
		t.Fatalf("message count = %d, want 2", len(msgs))
	}
	if msgs[1].Kind != models.Answer || !strings.Contains(msgs[1].Text, "<strong>File</strong>") {
		t.Errorf("answer bubble = %+v", msgs[1])
	}
}

func TestModel_ErrorKeepsQuestionAndShowsNotice(t *testing.T) {
	m, store := newTestModel(t)

	m.textarea.SetValue("is my lease valid?")
	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(Model)

	tm, _ = m.Update(answerErrMsg{err: context.DeadlineExceeded})
	m = tm.(Model)

	if m.loading {
		t.Error("still loading after error")
	}
	if len(store.Messages()) != 1 {
		t.Errorf("message count = %d, want the unanswered question only", len(store.Messages()))
	}
	if m.notice == "" {
		t.Error("no notice after service failure")
	}
}

func TestModel_SpeechEventMirrorsInput(t *testing.T) {
	m, _ := newTestModel(t)

	tm, _ := m.Update(speechEventMsg{Transcript: "what should i do", Listening: true})
	m = tm.(Model)

	if m.textarea.Value() != "what should i do" {
		t.Errorf("textarea = %q, want mirrored transcript", m.textarea.Value())
	}
	if !m.listening {
		t.Error("listening flag not set")
	}
}

func TestModel_ThemeToggle(t *testing.T) {
	m, _ := newTestModel(t)

	before := m.themes.Current()
	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = tm.(Model)

	if m.themes.Current() == before {
		t.Error("theme did not change")
	}
}

func TestModel_SidebarDeleteKeepsMessages(t *testing.T) {
	m, store := newTestModel(t)

	store.AppendQuestion("first question")
	store.AppendTopic("first question")

	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = tm.(Model)

	if len(store.Topics()) != 0 {
		t.Error("topic not deleted")
	}
	if len(store.Messages()) != 1 {
		t.Error("topic deletion touched the message log")
	}
}

func TestModel_ControlKeysLeaveDraftAlone(t *testing.T) {
	m, store := newTestModel(t)
	store.AppendTopic("theft")

	// The textarea binds several of these chords itself (ctrl+t
	// transpose, ctrl+d delete char); consumed keys must not reach it.
	keys := []tea.KeyType{
		tea.KeyCtrlT, tea.KeyCtrlD, tea.KeyCtrlP,
		tea.KeyCtrlN, tea.KeyCtrlL, tea.KeyCtrlV,
	}
	m.textarea.SetValue("ab")
	for _, key := range keys {
		tm, _ := m.Update(tea.KeyMsg{Type: key})
		m = tm.(Model)
		if got := m.textarea.Value(); got != "ab" {
			t.Fatalf("%v mutated the draft question: %q", key, got)
		}
	}
}

func TestModel_FailureNoticeRendersInErrorStyle(t *testing.T) {
	m, _ := newTestModel(t)

	m.textarea.SetValue("is my lease valid?")
	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(Model)
	tm, _ = m.Update(answerErrMsg{err: context.DeadlineExceeded})
	m = tm.(Model)

	if !m.noticeIsError {
		t.Error("service failure not flagged as error notice")
	}
	if !strings.Contains(m.View(), m.notice) {
		t.Error("notice text missing from view")
	}

	// A capability warning is a softer notice
	m.toggleVoice()
	if m.noticeIsError {
		t.Error("capability warning flagged as error notice")
	}
}

func TestSendSpeechEvent_NewestWins(t *testing.T) {
	ch := make(chan SpeechEvent, 2)

	SendSpeechEvent(ch, SpeechEvent{Transcript: "a", Listening: true})
	SendSpeechEvent(ch, SpeechEvent{Transcript: "ab", Listening: true})
	// Buffer full: the terminal event must still land
	SendSpeechEvent(ch, SpeechEvent{Transcript: "ab", Listening: false})

	var last SpeechEvent
	for {
		select {
		case ev := <-ch:
			last = ev
			continue
		default:
		}
		break
	}
	if last.Listening {
		t.Errorf("terminal event lost, last = %+v", last)
	}
}

func TestNoticeBox_FIFO(t *testing.T) {
	box := NewNoticeBox()
	if box.Pop() != nil {
		t.Error("Pop on empty box returned a notice")
	}

	box.Push(query.Notice{Message: "first"})
	box.Push(query.Notice{Message: "second"})

	if n := box.Pop(); n == nil || n.Message != "first" {
		t.Errorf("first Pop = %+v", n)
	}
	if n := box.Pop(); n == nil || n.Message != "second" {
		t.Errorf("second Pop = %+v", n)
	}
	if box.Pop() != nil {
		t.Error("drained box returned a notice")
	}
}

func TestModel_ViewRenders(t *testing.T) {
	m, store := newTestModel(t)

	// Welcome screen before any messages
	if v := m.View(); !strings.Contains(v, "Welcome") {
		t.Error("welcome screen missing")
	}

	store.AppendQuestion("is this legal?")
	m.updateViewport()
	if v := m.View(); v == "" {
		t.Error("empty view with messages present")
	}
}
