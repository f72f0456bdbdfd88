// Package tui provides the terminal user interface for legalbot.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/praveen/legalbot/internal/models"
)

// palette holds the colors of one presentation theme.
type palette struct {
	Border    lipgloss.Color
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color
	Text      lipgloss.Color
	TextDim   lipgloss.Color
	TextMute  lipgloss.Color
}

var darkPalette = palette{
	Border:    lipgloss.Color("#3b4261"),
	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#9ece6a"),
	Accent:    lipgloss.Color("#bb9af7"),
	Error:     lipgloss.Color("#f7768e"),
	Text:      lipgloss.Color("#c0caf5"),
	TextDim:   lipgloss.Color("#565f89"),
	TextMute:  lipgloss.Color("#3b4261"),
}

var lightPalette = palette{
	Border:    lipgloss.Color("#c4c8da"),
	Primary:   lipgloss.Color("#2e5aac"),
	Secondary: lipgloss.Color("#33635c"),
	Accent:    lipgloss.Color("#5a4a78"),
	Error:     lipgloss.Color("#8c4351"),
	Text:      lipgloss.Color("#343b58"),
	TextDim:   lipgloss.Color("#6c6f85"),
	TextMute:  lipgloss.Color("#9699a3"),
}

// Color variables (updated from theme)
var (
	colorBorder    lipgloss.Color
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color
	colorError     lipgloss.Color
	colorText      lipgloss.Color
	colorTextDim   lipgloss.Color
	colorTextMute  lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	hintStyle     lipgloss.Style

	sidebarStyle         lipgloss.Style
	sidebarTitleStyle    lipgloss.Style
	topicItemStyle       lipgloss.Style
	topicSelectedStyle   lipgloss.Style
	messagesAreaStyle    lipgloss.Style
	userBubbleStyle      lipgloss.Style
	userLabelStyle       lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	assistantLabelStyle  lipgloss.Style
	thinkingStyle        lipgloss.Style

	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style
	micOnStyle      lipgloss.Style
	loadingStyle    lipgloss.Style

	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style
	errorStyle      lipgloss.Style
	noticeStyle     lipgloss.Style
)

func init() {
	ApplyTheme(models.Light)
}

// ApplyTheme refreshes all styles for the given theme. Called at startup
// with the persisted theme and again on every toggle.
func ApplyTheme(theme models.Theme) {
	p := lightPalette
	if theme == models.Dark {
		p = darkPalette
	}

	colorBorder = p.Border
	colorPrimary = p.Primary
	colorSecondary = p.Secondary
	colorAccent = p.Accent
	colorError = p.Error
	colorText = p.Text
	colorTextDim = p.TextDim
	colorTextMute = p.TextMute

	rebuildStyles()
}

// rebuildStyles creates all lipgloss styles with current color values
func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2).
		MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	sidebarStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1)

	sidebarTitleStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true).
		MarginBottom(1)

	topicItemStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	topicSelectedStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1)

	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorSecondary).
		Padding(0, 1).
		MarginLeft(4)

	userLabelStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true).
		MarginLeft(4)

	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Foreground(colorText).
		Padding(0, 1).
		MarginRight(4)

	assistantLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	thinkingStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		MarginTop(1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginRight(1)

	micOnStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	noticeStyle = lipgloss.NewStyle().
		Foreground(colorError)
}
