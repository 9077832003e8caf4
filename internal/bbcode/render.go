// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bbcode renders filled forms as forum BB-code.
//
// Render is a pure function: the same title, answers, and theme always produce
// byte-identical markup, which is what makes Hash usable for duplicate-save
// detection.
package bbcode

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pdiddy/formgen/pkg/types"
)

// Labels and placeholders used in answer cells.
const (
	LabelScreenshot = "Скриншот"
	LabelVK         = "Профиль ВК"
	LabelDiscord    = "Discord"
	LabelBiography  = "Биография"
	LabelLink       = "Ссылка"

	PlaceholderScreenshot = "(скриншот не загружен)"
	PlaceholderLink       = "(ссылка не указана)"
	PlaceholderMultiline  = "(не заполнено)"
)

// frame is the decorative border drawn above and below the title.
const (
	frameTop    = "┌────────────────────┐"
	frameBottom = "└────────────────────┘"
)

// linkLabels maps question keywords to the hyperlink label; the first match wins.
var linkLabels = []struct {
	keywords []string
	label    string
}{
	{[]string{"vk", "вк"}, LabelVK},
	{[]string{"discord", "дискорд"}, LabelDiscord},
	{[]string{"биограф"}, LabelBiography},
}

// Render builds the complete markup block for a filled form.
func Render(title string, questions []types.FilledQuestion, th types.Theme) string {
	rows := make([]string, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, Row(q, th))
	}

	var b strings.Builder
	b.WriteString("[center][font=Courier New]\n")
	fmt.Fprintf(&b, "[size=11][b]%s\n", color(th.Header, frameTop))
	b.WriteString(strings.ToUpper(title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s[/b][/size]\n", color(th.Header, frameBottom))
	b.WriteString("\n[size=9]\n[table]\n")
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n[/table]\n[/size]\n[/font][/center]")
	return b.String()
}

// Row renders one table row: the bold question on the left, the answer on the right.
func Row(q types.FilledQuestion, th types.Theme) string {
	label := fmt.Sprintf("ВОПРОС %d. %s", q.Number, withColon(q.Question))
	return fmt.Sprintf("[tr][td]%s[/td][td]%s[/td][/tr]",
		color(th.Question, "[b]"+label+"[/b]"), Answer(q, th))
}

// Answer renders the answer cell according to the question's field type.
func Answer(q types.FilledQuestion, th types.Theme) string {
	switch q.Type {
	case types.FieldScreenshot:
		if q.Answer == "" {
			return color(th.Answer, PlaceholderScreenshot)
		}
		return color(th.Link, url(q.Answer, LabelScreenshot))

	case types.FieldLink:
		if q.Answer == "" {
			return color(th.Answer, PlaceholderLink)
		}
		return color(th.Link, url(q.Answer, LinkLabel(q.Question)))

	case types.FieldMultiline:
		var lines []string
		for _, line := range strings.Split(q.Answer, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, color(th.Answer, line))
			}
		}
		if len(lines) == 0 {
			return color(th.Answer, PlaceholderMultiline)
		}
		return strings.Join(lines, "\n")

	default:
		return color(th.Answer, q.Answer)
	}
}

// LinkLabel picks the hyperlink text for a link question.
func LinkLabel(question string) string {
	lower := strings.ToLower(question)
	for _, l := range linkLabels {
		for _, kw := range l.keywords {
			if strings.Contains(lower, kw) {
				return l.label
			}
		}
	}
	return LabelLink
}

// Hash returns the hex MD5 of markup.
func Hash(markup string) string {
	sum := md5.Sum([]byte(markup))
	return hex.EncodeToString(sum[:])
}

func color(c, text string) string {
	return "[color=" + c + "]" + text + "[/color]"
}

func url(href, text string) string {
	return "[url=" + href + "]" + text + "[/url]"
}

func withColon(s string) string {
	if strings.HasSuffix(s, ":") {
		return s
	}
	return s + ":"
}
