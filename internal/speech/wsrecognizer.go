package speech

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// wsStartPayload opens a recognition session on the remote engine.
type wsStartPayload struct {
	Type       string `json:"type"`
	Language   string `json:"language"`
	Continuous bool   `json:"continuous"`
}

// wsTranscriptPayload is one streamed recognition result.
type wsTranscriptPayload struct {
	Type       string `json:"type"`
	Transcript string `json:"transcript"`
	Final      bool   `json:"final"`
	Error      string `json:"error,omitempty"`
}

// WSRecognizer streams transcripts from a remote speech-to-text service
// over a websocket connection.
type WSRecognizer struct {
	url string

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWSRecognizer creates a recognizer for the given websocket URL. An
// empty URL yields an unsupported recognizer.
func NewWSRecognizer(url string) *WSRecognizer {
	return &WSRecognizer{url: url}
}

// Supported reports whether a speech service endpoint is configured.
func (r *WSRecognizer) Supported() bool {
	return r.url != ""
}

// Start dials the speech service, announces the session options, and
// streams transcript updates until the session ends.
func (r *WSRecognizer) Start(ctx context.Context, opts Options) (<-chan Update, error) {
	if !r.Supported() {
		return nil, fmt.Errorf("no speech service configured")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn != nil {
		return nil, fmt.Errorf("capture session already active")
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to speech service: %w", err)
	}

	start := wsStartPayload{
		Type:       "start",
		Language:   opts.Language,
		Continuous: opts.Continuous,
	}
	if err := conn.WriteJSON(start); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to start capture: %w", err)
	}

	r.conn = conn

	updates := make(chan Update)
	go r.readLoop(ctx, conn, updates)

	return updates, nil
}

// Stop closes the active session.
func (r *WSRecognizer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil {
		return nil
	}

	_ = r.conn.WriteJSON(map[string]string{"type": "stop"})
	err := r.conn.Close()
	r.conn = nil
	return err
}

func (r *WSRecognizer) readLoop(ctx context.Context, conn *websocket.Conn, updates chan<- Update) {
	defer close(updates)

	for {
		var payload wsTranscriptPayload
		if err := conn.ReadJSON(&payload); err != nil {
			return
		}
		if payload.Type != "transcript" || payload.Error != "" {
			continue
		}

		select {
		case updates <- Update{Transcript: payload.Transcript, Final: payload.Final}:
		case <-ctx.Done():
			return
		}
	}
}
