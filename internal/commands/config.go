package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/praveen/legalbot/internal/config"
	"github.com/praveen/legalbot/internal/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show or change legalbot settings.

  legalbot config                        Show current settings
  legalbot config set backend-url URL    Change the service endpoint
  legalbot config set language ta-IN     Change the default language`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfig(args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func showConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	keyStyle := lipgloss.NewStyle().Foreground(cliColorPrimary).Bold(true).Width(16)
	valStyle := lipgloss.NewStyle().Foreground(cliColorText)

	theme := models.Light
	if prefs, err := config.DefaultPrefs(); err == nil {
		theme = models.ParseTheme(prefs.Get(config.ThemeKey))
	}

	rows := []struct {
		key   string
		value string
	}{
		{"backend-url", cfg.BackendURL},
		{"speech-url", cfg.SpeechURL},
		{"language", cfg.DefaultLanguage},
		{"theme", theme.String()},
		{"clipboard", strconv.FormatBool(cfg.CopyToClipboard)},
		{"verbose", strconv.FormatBool(cfg.Verbose)},
	}
	for _, r := range rows {
		fmt.Println(keyStyle.Render(r.key) + valStyle.Render(r.value))
	}
	return nil
}

func setConfig(key, value string) error {
	// The theme lives in the preference store, not the config file.
	if key == "theme" {
		if value != "light" && value != "dark" {
			return fmt.Errorf("theme must be light or dark")
		}
		prefs, err := config.DefaultPrefs()
		if err != nil {
			return fmt.Errorf("failed to open preferences: %w", err)
		}
		if err := prefs.Set(config.ThemeKey, value); err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}
		fmt.Println(lipgloss.NewStyle().Foreground(cliColorSuccess).Render(
			fmt.Sprintf("✓ theme = %s", value)))
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case "backend-url":
		cfg.BackendURL = value
	case "speech-url":
		cfg.SpeechURL = value
	case "language":
		cfg.DefaultLanguage = value
	case "clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("clipboard must be true or false")
		}
		cfg.CopyToClipboard = b
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false")
		}
		cfg.Verbose = b
	default:
		return fmt.Errorf("unknown setting '%s'", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println(lipgloss.NewStyle().Foreground(cliColorSuccess).Render(
		fmt.Sprintf("✓ %s = %s", key, value)))
	return nil
}
