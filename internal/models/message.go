// Package models defines the core data types shared across the client.
package models

// MessageKind distinguishes the two bubble types in the chat log.
type MessageKind int

const (
	// Question is a user-submitted question, stored as raw text.
	Question MessageKind = iota
	// Answer is a service response, stored as formatted markup.
	Answer
)

// String returns the role name used for display and persistence.
func (k MessageKind) String() string {
	if k == Answer {
		return "answer"
	}
	return "question"
}

// ChatMessage is a single bubble in the chat log. Messages are immutable
// once created; the session store only ever appends them.
type ChatMessage struct {
	ID   string
	Kind MessageKind
	Text string
}

// TopicEntry is one sidebar history item. Entries are created in 1:1
// positional correspondence with submitted questions but can be deleted
// independently of the chat log.
type TopicEntry struct {
	Label string
}
