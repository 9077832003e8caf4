// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package form recovers structured questions from pasted forum application
// forms, classifies the answer each question expects, and validates answers.
//
// The extractor scans the pasted text for question boundaries (lines that
// begin with digits followed by "." or ")") and accumulates continuation
// lines into the open question. When that finds nothing it falls back to a
// one-line-per-question scan.
package form

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/formgen/pkg/types"
)

// DefaultTitle is used when no line of the form looks like a title.
const DefaultTitle = "ФОРМА ЗАЯВЛЕНИЯ"

// ErrNoQuestions is returned by Parse when neither scan finds a question.
var ErrNoQuestions = errors.New("no questions found in form text")

// boundaryPattern matches the numeric marker that starts a new question.
// Any run of decimal digits, in any script, qualifies; the value is not
// checked against the sequence.
var boundaryPattern = regexp.MustCompile(`^\p{Nd}+[.)]\s*`)

var (
	titleKeywords         = []string{"форма", "заявление", "анкета", "заявка"}
	fallbackTitleKeywords = []string{"форма", "заявление", "анкета"}
)

// Parse extracts the title and questions from raw form text. It returns
// ErrNoQuestions when nothing could be extracted.
func Parse(raw string) (string, []types.Question, error) {
	title, questions := Extract(raw)
	if len(questions) == 0 {
		return title, nil, ErrNoQuestions
	}
	return title, questions, nil
}

// Extract recovers the form title and the ordered question list from raw
// pasted text. Whitespace-only input yields DefaultTitle and no questions.
func Extract(raw string) (string, []types.Question) {
	lines := significantLines(raw)
	if len(lines) == 0 {
		return DefaultTitle, nil
	}

	title := DefaultTitle
	for _, line := range lines {
		if containsAny(strings.ToLower(line), titleKeywords) {
			title = line
			break
		}
	}

	var (
		questions []types.Question
		buf       []string
		open      bool
	)
	flush := func() {
		if !open {
			return
		}
		text := joinTrimmed(buf)
		buf = buf[:0]
		// A bare marker with nothing after it is not a question.
		if CleanText(text) == "" {
			return
		}
		questions = append(questions, newQuestion(len(questions)+1, text))
	}

	for _, line := range lines {
		if IsBoundary(line) {
			flush()
			open = true
			buf = append(buf, line)
			continue
		}
		// Lines before the first boundary belong to no question.
		if open {
			buf = append(buf, line)
		}
	}
	flush()

	if len(questions) == 0 {
		return extractLinewise(lines)
	}
	return title, questions
}

// extractLinewise is the fallback scan: every boundary line is a question on
// its own. Title detection runs again with a narrower keyword set, the last
// matching line wins, and a title line is never taken as a question.
func extractLinewise(lines []string) (string, []types.Question) {
	title := DefaultTitle
	var questions []types.Question
	for _, line := range lines {
		switch {
		case containsAny(strings.ToLower(line), fallbackTitleKeywords):
			title = line
		case IsBoundary(line) && CleanText(strings.TrimSpace(line)) != "":
			questions = append(questions, newQuestion(len(questions)+1, strings.TrimSpace(line)))
		}
	}
	return title, questions
}

// IsBoundary reports whether line starts a new question.
func IsBoundary(line string) bool {
	return boundaryPattern.MatchString(line)
}

// CleanText strips the leading numeric marker and a single trailing colon.
func CleanText(text string) string {
	cleaned := boundaryPattern.ReplaceAllString(text, "")
	if strings.HasSuffix(cleaned, ":") {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, ":"))
	}
	return cleaned
}

func newQuestion(number int, original string) types.Question {
	return types.Question{
		Number:   number,
		Original: original,
		Clean:    CleanText(original),
		Type:     Classify(original),
	}
}

// significantLines splits raw into right-trimmed lines and drops the blank
// ones. Leading whitespace is kept so that indented numbers are not taken as
// boundaries.
func significantLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
	}
	return lines
}

// joinTrimmed trims each line and joins the non-empty ones with single spaces.
func joinTrimmed(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
