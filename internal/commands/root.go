// Package commands provides CLI commands for legalbot.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/praveen/legalbot/internal/config"
	"github.com/praveen/legalbot/internal/models"
)

var (
	// Global flags
	languageFlag string
	backendFlag  string
	outputFlag   string
	fileFlag     string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "legalbot [question]",
	Short: "Conversational legal information assistant",
	Long: `legalbot answers legal questions through a conversational interface
backed by a remote legal knowledge service. Questions can be typed or
spoken; answers come back with basic rich-text formatting.

Examples:
  legalbot chat                          Start the interactive chat
  legalbot assistant                     Hands-free voice assistant
  legalbot "what should i do after theft?"
  legalbot -f question.txt               Read question from file
  cat question.txt | legalbot            Read question from stdin
  legalbot "is my lease valid?" -o answer.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("legalbot %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], !isStdoutTTY())
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "l", "",
		"Speech language code (e.g. en-IN, ta-IN)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "",
		"Override the legal service endpoint URL")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save answer to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read question from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(assistantCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(configCmd)
}

// getBackendURL returns the service endpoint (from flag or config)
func getBackendURL(cfg config.Config) string {
	if backendFlag != "" {
		return backendFlag
	}
	return cfg.BackendURL
}

// getLanguage returns the speech language to use (from flag or config),
// falling back to the catalog default for unknown codes.
func getLanguage(cfg config.Config) models.LanguageOption {
	code := cfg.DefaultLanguage
	if languageFlag != "" {
		code = languageFlag
	}
	if lang, ok := models.LanguageByCode(code); ok {
		return lang
	}
	fmt.Fprintf(os.Stderr, "Warning: unknown language '%s', using %s\n",
		code, models.DefaultLanguage().Code)
	return models.DefaultLanguage()
}
