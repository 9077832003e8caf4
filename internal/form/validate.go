// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/formgen/pkg/types"
)

// Verdict is the result of validating one answer.
type Verdict struct {
	// Accepted is false when the answer must be re-entered.
	Accepted bool

	// Message is shown to the user either way.
	Message string

	// Warning marks an accepted answer that deserves a second look.
	Warning bool
}

func reject(msg string) Verdict { return Verdict{Accepted: false, Message: msg} }
func warn(msg string) Verdict   { return Verdict{Accepted: true, Message: msg, Warning: true} }

// Messages returned by Validate.
const (
	MsgAccepted       = "✅ Ответ принят"
	MsgAgeNotInteger  = "⚠️  Возраст должен быть целым числом."
	MsgAgeRange       = "⚠️  Возраст должен быть в диапазоне от 14 до 100 лет."
	MsgAgeUnder18     = "⚠️  Внимание: вам меньше 18 лет. Убедитесь, что это правильно."
	MsgNickEmpty      = "⚠️  Никнейм не может быть пустым."
	MsgNickTooLong    = "⚠️  Никнейм слишком длинный (максимум 25 символов)."
	MsgNickTooShort   = "⚠️  Никнейм слишком короткий (минимум 3 символа)."
	MsgLevelNotInt    = "⚠️  Уровень должен быть целым числом."
	MsgLevelRange     = "⚠️  Уровень должен быть в диапазоне от 1 до 100."
	MsgTimezoneFormat = "⚠️  Убедитесь, что правильно указали часовой пояс (например, GMT+3, UTC+5, MSK)."
	MsgLinkScheme     = "⚠️  Ссылка должна начинаться с http:// или https://"
	MsgShortAnswer    = "⚠️  Ответ очень короткий. Убедитесь, что это правильно."
)

const (
	minAge, maxAge, adultAge = 14, 100, 18
	minLevel, maxLevel       = 1, 100
	minNick, maxNick         = 3, 25
	minTextAnswer            = 2
)

var (
	ageKeywords      = []string{"возраст", "лет", "годиков", "года", "годков", "age", "сколько лет"}
	nickKeywords     = []string{"никнейм", "ник", "логин", "nickname", "nick"}
	levelKeywords    = []string{"уровень", "level", "lvl"}
	timezoneKeywords = []string{"часовой пояс", "таймзона", "timezone", "часовой"}
	timezoneMarkers  = []string{"gmt", "utc", "msk", "+", "-"}
)

// answerRule inspects one answer. It returns ok=false when it has nothing to
// say, letting the next rule run.
type answerRule func(lowerQuestion, answer string, t types.FieldType) (Verdict, bool)

// answerRules is evaluated in order; the first rule that returns a verdict
// decides.
var answerRules = []answerRule{
	checkAge,
	checkNickname,
	checkLevel,
	checkTimezone,
	checkLink,
	checkShortText,
}

// Validate decides whether answer is acceptable for the question. It never
// fails: malformed numbers and other bad input become rejections.
func Validate(question, answer string, t types.FieldType) Verdict {
	lower := strings.ToLower(question)
	for _, rule := range answerRules {
		if v, ok := rule(lower, answer, t); ok {
			return v
		}
	}
	return Verdict{Accepted: true, Message: MsgAccepted}
}

func checkAge(q, answer string, _ types.FieldType) (Verdict, bool) {
	if !containsAny(q, ageKeywords) {
		return Verdict{}, false
	}
	age, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return reject(MsgAgeNotInteger), true
	}
	if age < minAge || age > maxAge {
		return reject(MsgAgeRange), true
	}
	if age < adultAge {
		return warn(MsgAgeUnder18), true
	}
	return Verdict{}, false
}

func checkNickname(q, answer string, _ types.FieldType) (Verdict, bool) {
	if !containsAny(q, nickKeywords) {
		return Verdict{}, false
	}
	n := utf8.RuneCountInString(answer)
	switch {
	case strings.TrimSpace(answer) == "":
		return reject(MsgNickEmpty), true
	case n > maxNick:
		return reject(MsgNickTooLong), true
	case n < minNick:
		return reject(MsgNickTooShort), true
	}
	return Verdict{}, false
}

func checkLevel(q, answer string, _ types.FieldType) (Verdict, bool) {
	if !containsAny(q, levelKeywords) {
		return Verdict{}, false
	}
	level, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return reject(MsgLevelNotInt), true
	}
	if level < minLevel || level > maxLevel {
		return reject(MsgLevelRange), true
	}
	return Verdict{}, false
}

func checkTimezone(q, answer string, _ types.FieldType) (Verdict, bool) {
	if !containsAny(q, timezoneKeywords) {
		return Verdict{}, false
	}
	if !containsAny(strings.ToLower(answer), timezoneMarkers) {
		return warn(MsgTimezoneFormat), true
	}
	return Verdict{}, false
}

func checkLink(_, answer string, t types.FieldType) (Verdict, bool) {
	if t != types.FieldLink && t != types.FieldScreenshot {
		return Verdict{}, false
	}
	if !HasScheme(answer) {
		return reject(MsgLinkScheme), true
	}
	return Verdict{}, false
}

func checkShortText(_, answer string, t types.FieldType) (Verdict, bool) {
	if t == types.FieldText && utf8.RuneCountInString(strings.TrimSpace(answer)) < minTextAnswer {
		return warn(MsgShortAnswer), true
	}
	return Verdict{}, false
}

// HasScheme reports whether s starts with http:// or https://.
func HasScheme(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// EnsureScheme prefixes s with https:// unless it already has a scheme.
func EnsureScheme(s string) string {
	if HasScheme(s) {
		return s
	}
	return "https://" + s
}
