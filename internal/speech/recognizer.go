// Package speech wraps the external speech-to-text capability behind an
// adapter exposing transcript state and start/stop/reset controls.
package speech

import "context"

// Options configures one capture session. The main chat entry uses
// single-utterance capture; the standalone assistant keeps the session
// open until stopped.
type Options struct {
	// Continuous keeps the session open across utterances.
	Continuous bool
	// Language is the BCP-47 tag of the recognition language.
	Language string
}

// Update is one incremental transcript notification from the engine.
type Update struct {
	// Transcript is the cumulative transcript of the session so far.
	Transcript string
	// Final marks the end of an utterance.
	Final bool
}

// Recognizer is the external speech-to-text engine. Implementations
// stream cumulative transcript updates until the context is cancelled,
// Stop is called, or (in single-utterance mode) the utterance ends.
type Recognizer interface {
	// Supported reports whether the engine is usable in this environment.
	Supported() bool

	// Start begins a capture session and returns the update stream. The
	// channel is closed when the session ends.
	Start(ctx context.Context, opts Options) (<-chan Update, error)

	// Stop ends the active capture session.
	Stop() error
}
