// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/formgen/pkg/types"
)

// multilineThreshold is the question length (in characters) above which a
// question expects a long-form answer.
const multilineThreshold = 50

var (
	screenshotKeywords = []string{"скриншот", "screenshot", "/time", "статистик", "статистики"}
	linkKeywords       = []string{"ссылка", "url", "сайт", "профиль", "биографи", "биография", "vk", "вк", "дискорд"}
	reasoningKeywords  = []string{"почему", "расскажите", "обоснование", "считаете"}
)

// fieldRule pairs a predicate over the lower-cased and raw question text with
// the field type it selects.
type fieldRule struct {
	match func(lower, raw string) bool
	typ   types.FieldType
}

// fieldRules is evaluated in order; the first match wins.
var fieldRules = []fieldRule{
	{
		match: func(lower, _ string) bool { return containsAny(lower, screenshotKeywords) },
		typ:   types.FieldScreenshot,
	},
	{
		match: func(lower, _ string) bool { return containsAny(lower, linkKeywords) },
		typ:   types.FieldLink,
	},
	{
		match: func(lower, raw string) bool {
			return utf8.RuneCountInString(raw) > multilineThreshold || containsAny(lower, reasoningKeywords)
		},
		typ: types.FieldMultiline,
	},
}

// Classify maps question text to a field type by case-insensitive keyword
// matching. Screenshot beats link, link beats multiline, and text is the
// default.
func Classify(question string) types.FieldType {
	lower := strings.ToLower(question)
	for _, r := range fieldRules {
		if r.match(lower, question) {
			return r.typ
		}
	}
	return types.FieldText
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
