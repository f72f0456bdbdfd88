package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/praveen/legalbot/internal/api"
	"github.com/praveen/legalbot/internal/config"
	apierrors "github.com/praveen/legalbot/internal/errors"
	"github.com/praveen/legalbot/internal/format"
	"github.com/praveen/legalbot/internal/query"
	"github.com/praveen/legalbot/internal/speech"
)

var assistantCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Hands-free voice assistant",
	Long: `Run the hands-free voice assistant.

The microphone stays open continuously: every finalized phrase is sent
as a question and the answer is printed. Press Ctrl+C to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssistant()
	},
}

func runAssistant() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	engine := speechEngine(cfg)
	if engine == nil || !engine.Supported() {
		return apierrors.NewCapabilityError("speech recognition")
	}

	client, err := api.NewClient(getBackendURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	lang := getLanguage(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Capture never stops between questions here, unlike the chat view.
	updates, err := engine.Start(ctx, speech.Options{
		Continuous: true,
		Language:   lang.Code,
	})
	if err != nil {
		return fmt.Errorf("failed to start speech capture: %w", err)
	}
	defer engine.Stop()

	micStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")).Bold(true)
	youStyle := lipgloss.NewStyle().Foreground(cliColorSuccess).Bold(true)
	fmt.Println(micStyle.Render("🎙 Listening") +
		lipgloss.NewStyle().Foreground(cliColorTextDim).Render(
			fmt.Sprintf(" (%s, Ctrl+C to stop)", lang.Label)))

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if !update.Final {
				continue
			}
			question := strings.TrimSpace(update.Transcript)
			if question == "" {
				continue
			}

			fmt.Println(youStyle.Render("⬤ You: ") + question)
			if err := askAndPrint(ctx, client, question); err != nil {
				fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Request failed"))
			}
		}
	}
}

func askAndPrint(ctx context.Context, client *api.Client, question string) error {
	spin := newSpinner("Consulting the legal service")
	spin.start()

	answer, err := client.Ask(ctx, question)
	if err != nil {
		spin.stopWithError()
		return err
	}
	spin.stopWithSuccess("Done")

	if strings.TrimSpace(answer) == "" {
		answer = query.FallbackAnswer
	}

	termWidth := getTerminalWidth()
	bubbleWidth := termWidth - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}

	fmt.Println(cliAnswerLabelStyle.Render("⚖ LegalBot"))
	rendered := format.Render(format.Format(answer))
	fmt.Println(cliAnswerBubbleStyle.Width(bubbleWidth).Render(rendered))
	return nil
}
