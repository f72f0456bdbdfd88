package format

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tag patterns produced by Format. Render only understands these; any
// other text in a Markup value is printed verbatim.
var (
	strongTagRe = regexp.MustCompile(`<strong>(.*?)</strong>`)
	emTagRe     = regexp.MustCompile(`<em>(.*?)</em>`)
)

var (
	strongStyle = lipgloss.NewStyle().Bold(true)
	emStyle     = lipgloss.NewStyle().Italic(true)
)

// Render interprets Markup tags into terminal text. Emphasis tags become
// ANSI attributes, break tags become real newlines. Accepting only the
// Markup type keeps unformatted raw text away from the terminal.
func Render(m Markup) string {
	out := string(m)
	out = strongTagRe.ReplaceAllStringFunc(out, func(match string) string {
		return strongStyle.Render(strongTagRe.FindStringSubmatch(match)[1])
	})
	out = emTagRe.ReplaceAllStringFunc(out, func(match string) string {
		return emStyle.Render(emTagRe.FindStringSubmatch(match)[1])
	})
	return strings.ReplaceAll(out, "<br>", "\n")
}
