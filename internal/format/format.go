// Package format transforms raw answer text into renderable markup.
//
// Format is the sole path from raw service output to the Markup type, and
// the four substitutions below are the only transformations applied. The
// rendering side trusts Markup values; widening or reordering the rules
// changes that trust boundary.
package format

import (
	"regexp"
	"strings"
)

// Markup is answer text after safe substitution. Only Format produces it;
// renderers must not accept a plain string in its place.
type Markup string

// Substitution order matters: bold runs before italic so a literal "**"
// is fully consumed and cannot be split into two single "*" matches.
var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
)

// Format converts raw answer text to Markup. Pure and total: any input
// yields a valid Markup value.
func Format(raw string) Markup {
	out := boldRe.ReplaceAllString(raw, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	out = strings.ReplaceAll(out, "- ", "• ")
	return Markup(out)
}
