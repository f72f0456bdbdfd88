package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/praveen/legalbot/internal/config"
	"github.com/praveen/legalbot/internal/models"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported speech languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		codeStyle := lipgloss.NewStyle().Foreground(cliColorPrimary).Bold(true).Width(8)
		labelStyle := lipgloss.NewStyle().Foreground(cliColorText)
		markStyle := lipgloss.NewStyle().Foreground(cliColorSuccess).Bold(true)

		for _, lang := range models.Languages() {
			line := codeStyle.Render(lang.Code) + labelStyle.Render(lang.Label)
			if lang.Code == cfg.DefaultLanguage {
				line += markStyle.Render("  (default)")
			}
			fmt.Println(line)
		}
		return nil
	},
}
