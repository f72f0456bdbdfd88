package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praveen/legalbot/internal/api"
	"github.com/praveen/legalbot/internal/config"
	"github.com/praveen/legalbot/internal/query"
	"github.com/praveen/legalbot/internal/session"
	"github.com/praveen/legalbot/internal/speech"
	"github.com/praveen/legalbot/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the legal assistant.

Questions can be typed or spoken (Ctrl+V toggles the microphone).
Press Esc or Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := api.NewClient(getBackendURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	store := session.NewStore()

	// Preference store failures degrade to a session-only theme.
	themes := session.NewThemeController(nil)
	if prefs, err := config.DefaultPrefs(); err == nil {
		themes = session.NewThemeController(prefs)
	}
	languages := session.NewLanguageSelector(getLanguage(cfg).Code)

	// Chat capture is single-utterance: the engine stops after one
	// finalized phrase and the transcript stays in the input box.
	adapter := speech.NewAdapter(speechEngine(cfg), false)

	speechCh := make(chan tui.SpeechEvent, 16)
	adapter.SetOnChange(func(transcript string, listening bool) {
		tui.SendSpeechEvent(speechCh, tui.SpeechEvent{
			Transcript: transcript,
			Listening:  listening,
		})
	})
	defer adapter.Stop()

	notices := tui.NewNoticeBox()
	controller := query.New(store, client, adapter, notices.Push)

	return tui.RunChat(controller, store, adapter, languages, themes, notices, speechCh)
}

// speechEngine builds the recognition engine from config, or nil when no
// speech service is configured.
func speechEngine(cfg config.Config) speech.Recognizer {
	if cfg.SpeechURL == "" {
		return nil
	}
	return speech.NewWSRecognizer(cfg.SpeechURL)
}
