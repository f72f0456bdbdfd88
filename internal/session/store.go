// Package session holds the mutable UI state for one chat session: the
// chat log, the topic history, the selected language, and the theme.
// All mutations go through named entry points; nothing here is exported
// as ambient global state.
package session

import (
	"github.com/google/uuid"

	"github.com/praveen/legalbot/internal/format"
	"github.com/praveen/legalbot/internal/models"
)

// Store holds the ordered chat messages and the parallel topic history.
//
// The chat log is append-only for the lifetime of a session. Topic entries
// are created one per submitted question but can be deleted independently;
// removing a history entry deliberately leaves the chat bubble in place.
type Store struct {
	messages []models.ChatMessage
	topics   []models.TopicEntry
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// AppendQuestion appends a question bubble with the raw text.
func (s *Store) AppendQuestion(text string) models.ChatMessage {
	msg := models.ChatMessage{
		ID:   uuid.NewString(),
		Kind: models.Question,
		Text: text,
	}
	s.messages = append(s.messages, msg)
	return msg
}

// AppendAnswer appends an answer bubble holding formatted markup.
func (s *Store) AppendAnswer(markup format.Markup) models.ChatMessage {
	msg := models.ChatMessage{
		ID:   uuid.NewString(),
		Kind: models.Answer,
		Text: string(markup),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// AppendTopic appends a topic history entry.
func (s *Store) AppendTopic(label string) {
	s.topics = append(s.topics, models.TopicEntry{Label: label})
}

// DeleteTopic removes the history entry at index i. The chat log is not
// touched; out-of-range indices are ignored.
func (s *Store) DeleteTopic(i int) {
	if i < 0 || i >= len(s.topics) {
		return
	}
	s.topics = append(s.topics[:i], s.topics[i+1:]...)
}

// Messages returns the chat log in chronological order.
func (s *Store) Messages() []models.ChatMessage {
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Topics returns the topic history.
func (s *Store) Topics() []models.TopicEntry {
	out := make([]models.TopicEntry, len(s.topics))
	copy(out, s.topics)
	return out
}

// QuestionCount returns the number of question bubbles in the log.
func (s *Store) QuestionCount() int {
	n := 0
	for _, m := range s.messages {
		if m.Kind == models.Question {
			n++
		}
	}
	return n
}
