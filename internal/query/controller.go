// Package query drives the request/response lifecycle for one question
// at a time: input normalization, topic labeling, the single answer
// service call, and the state transitions around it.
package query

import (
	"context"
	"strings"

	"github.com/praveen/legalbot/internal/api"
	"github.com/praveen/legalbot/internal/format"
	"github.com/praveen/legalbot/internal/models"
	"github.com/praveen/legalbot/internal/session"
	"github.com/praveen/legalbot/internal/topic"
)

// FallbackAnswer is displayed when the service was reachable but returned
// no usable answer. This is a successful turn, not a failure.
const FallbackAnswer = "Sorry, I couldn't fetch a response."

// NoticeKind classifies user-visible notifications from the controller.
type NoticeKind int

const (
	// NoticeServiceFailure signals a failed answer request.
	NoticeServiceFailure NoticeKind = iota
	// NoticeCapability signals a missing host capability.
	NoticeCapability
)

// Notice is a user-visible signal surfaced at the controller boundary.
// No error propagates past it into the session store.
type Notice struct {
	Kind    NoticeKind
	Message string
	Err     error
}

// NotifyFunc receives user-visible notices.
type NotifyFunc func(Notice)

// transcriptClearer is the slice of the speech adapter the controller
// needs: clearing any active transcript after a turn resolves.
type transcriptClearer interface {
	Reset()
}

// Controller orchestrates a chat session. All methods must be called from
// the single UI goroutine; only the service call itself runs elsewhere.
type Controller struct {
	store  *session.Store
	svc    api.AnswerService
	speech transcriptClearer
	notify NotifyFunc

	state models.QueryState
	input string
}

// New creates a controller. speech and notify may be nil.
func New(store *session.Store, svc api.AnswerService, speech transcriptClearer, notify NotifyFunc) *Controller {
	return &Controller{
		store:  store,
		svc:    svc,
		speech: speech,
		notify: notify,
	}
}

// State returns the current query state.
func (c *Controller) State() models.QueryState {
	return c.state
}

// Input returns the current input buffer.
func (c *Controller) Input() string {
	return c.input
}

// SetInput replaces the input buffer. The speech adapter mirrors the live
// transcript here on every change while listening.
func (c *Controller) SetInput(text string) {
	c.input = text
}

// Submit starts a turn for the current input buffer. It rejects (silent
// no-op, ok=false) empty input and submission while a turn is Pending.
// On acceptance it appends the Question bubble and its topic entry,
// transitions to Pending, and returns the question to send.
func (c *Controller) Submit() (question string, ok bool) {
	question = strings.TrimSpace(c.input)
	if question == "" || c.state == models.Pending {
		return "", false
	}

	c.state = models.Pending
	c.store.AppendQuestion(question)
	c.store.AppendTopic(topic.Extract(question))
	return question, true
}

// Ask performs the single answer service call for a submitted question.
// It is the only part of a turn that may run off the UI goroutine.
func (c *Controller) Ask(ctx context.Context, question string) (string, error) {
	return c.svc.Ask(ctx, question)
}

// Succeed completes a turn: the raw answer is formatted and appended,
// state returns to Idle, and input plus transcript are cleared. An empty
// answer is replaced by the fallback display text.
func (c *Controller) Succeed(answer string) format.Markup {
	if strings.TrimSpace(answer) == "" {
		answer = FallbackAnswer
	}

	markup := format.Format(answer)
	c.store.AppendAnswer(markup)

	c.state = models.Succeeded
	c.finishTurn()
	return markup
}

// Fail completes a turn after a service failure. The unanswered Question
// stays in the log, no Answer is appended, a notice is surfaced, and the
// controller returns to Idle so the user can retry.
func (c *Controller) Fail(err error) {
	c.state = models.Failed
	c.surface(Notice{
		Kind:    NoticeServiceFailure,
		Message: "Failed to get a response from the legal service.",
		Err:     err,
	})
	c.finishTurn()
}

// Warn surfaces a capability notice (no state change).
func (c *Controller) Warn(message string, err error) {
	c.surface(Notice{Kind: NoticeCapability, Message: message, Err: err})
}

// finishTurn clears the input buffer and any active transcript and
// settles the state back to Idle, regardless of outcome.
func (c *Controller) finishTurn() {
	c.input = ""
	if c.speech != nil {
		c.speech.Reset()
	}
	c.state = models.Idle
}

func (c *Controller) surface(n Notice) {
	if c.notify != nil {
		c.notify(n)
	}
}
