package speech

import (
	"context"
	"sync"

	apierrors "github.com/praveen/legalbot/internal/errors"
)

// ChangeFunc observes the (transcript, listening) pair after every change.
// The chat layer uses it to mirror the live transcript into the input
// field while listening.
type ChangeFunc func(transcript string, listening bool)

// Adapter owns one capture session over a Recognizer and exposes the
// observable transcript/listening pair. The continuity setting is fixed
// per adapter instance: single-utterance for chat entry, continuous for
// the standalone assistant.
type Adapter struct {
	rec        Recognizer
	continuous bool

	mu         sync.Mutex
	transcript string
	listening  bool
	cancel     context.CancelFunc
	onChange   ChangeFunc
}

// NewAdapter creates an adapter. rec may be nil when the host environment
// has no speech engine; Start then fails with a capability error.
func NewAdapter(rec Recognizer, continuous bool) *Adapter {
	return &Adapter{rec: rec, continuous: continuous}
}

// SetOnChange registers the change observer. Pass nil to remove it.
func (a *Adapter) SetOnChange(fn ChangeFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onChange = fn
}

// Transcript returns the current transcript.
func (a *Adapter) Transcript() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.transcript
}

// Listening reports whether a capture session is active.
func (a *Adapter) Listening() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.listening
}

// Start begins capture in the given language. It is a no-op returning a
// capability error when the engine is missing, and a plain no-op when a
// session is already active.
func (a *Adapter) Start(language string) error {
	if a.rec == nil || !a.rec.Supported() {
		return apierrors.NewCapabilityError("speech recognition")
	}

	a.mu.Lock()
	if a.listening {
		a.mu.Unlock()
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.mu.Unlock()

	updates, err := a.rec.Start(ctx, Options{
		Continuous: a.continuous,
		Language:   language,
	})
	if err != nil {
		cancel()
		return err
	}

	a.setListening(true)
	go a.consume(updates)
	return nil
}

// Stop ends the active capture session. The transcript is kept.
func (a *Adapter) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if a.rec != nil {
		_ = a.rec.Stop()
	}
	a.setListening(false)
}

// Reset clears the transcript. It does not stop an active session.
func (a *Adapter) Reset() {
	a.mu.Lock()
	a.transcript = ""
	fn, listening := a.onChange, a.listening
	a.mu.Unlock()

	if fn != nil {
		fn("", listening)
	}
}

func (a *Adapter) consume(updates <-chan Update) {
	for u := range updates {
		a.mu.Lock()
		a.transcript = u.Transcript
		fn, listening := a.onChange, a.listening
		a.mu.Unlock()

		if fn != nil {
			fn(u.Transcript, listening)
		}

		if u.Final && !a.continuous {
			break
		}
	}
	a.Stop()
}

func (a *Adapter) setListening(v bool) {
	a.mu.Lock()
	if a.listening == v {
		a.mu.Unlock()
		return
	}
	a.listening = v
	fn, transcript := a.onChange, a.transcript
	a.mu.Unlock()

	if fn != nil {
		fn(transcript, v)
	}
}
