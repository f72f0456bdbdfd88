// Package topic derives short history labels from free-form question text.
package topic

import "strings"

// actionPhrases are matched in declaration order; the first substring hit
// wins. Order is the tie-break, not match length or position.
var actionPhrases = []string{
	"what should i do",
	"what to do",
	"how to",
	"actions to take",
	"steps to take",
	"what are the steps",
}

// scenarioPhrases identify the legal situation being asked about.
var scenarioPhrases = []string{
	"accident",
	"theft",
	"crime",
	"land dispute",
	"contract breach",
	"divorce",
	"trespass",
	"harassment",
}

const fallbackTokens = 5

// Extract returns a short label summarizing a question. Matching is
// case-insensitive; the fallback preserves the original casing.
func Extract(question string) string {
	lower := strings.ToLower(question)

	var action string
	for _, a := range actionPhrases {
		if strings.Contains(lower, a) {
			action = a
			break
		}
	}

	var scenario string
	for _, s := range scenarioPhrases {
		if strings.Contains(lower, s) {
			scenario = s
			break
		}
	}

	switch {
	case action != "" && scenario != "":
		return action + " after " + scenario
	case scenario != "":
		return "actions to be taken in case of " + scenario
	default:
		words := strings.Fields(question)
		if len(words) > fallbackTokens {
			words = words[:fallbackTokens]
		}
		return strings.Join(words, " ")
	}
}
