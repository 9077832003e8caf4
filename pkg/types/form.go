// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for formgen.
//
// Question is produced by the extractor, FilledQuestion by answer collection,
// Theme by the theme catalog, and Record by the archive.
package types

import "time"

// FieldType is the semantic category of the answer a question expects.
// It governs how the answer is prompted for and rendered.
type FieldType string

const (
	FieldText       FieldType = "text"
	FieldLink       FieldType = "link"
	FieldScreenshot FieldType = "screenshot"
	FieldMultiline  FieldType = "multiline"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldLink, FieldScreenshot, FieldMultiline:
		return true
	}
	return false
}

// Question is one question recovered from pasted form text.
type Question struct {
	// Number is the 1-based position in the owning slice. It is reassigned
	// whenever questions are deleted and is never an identity key.
	Number int `json:"number" yaml:"number"`

	// Original is the question text as pasted: each contributing line trimmed
	// and the lines joined with single spaces.
	Original string `json:"original" yaml:"original"`

	// Clean is Original without the leading "N." / "N)" marker and without a
	// single trailing colon.
	Clean string `json:"clean" yaml:"clean"`

	// Type is fixed at extraction time and not re-derived on edit.
	Type FieldType `json:"type" yaml:"type"`
}

// FilledQuestion is a Question together with the user's answer.
type FilledQuestion struct {
	Number   int       `json:"number" yaml:"number"`
	Question string    `json:"question" yaml:"question"`
	Original string    `json:"original" yaml:"original"`
	Answer   string    `json:"answer" yaml:"answer"`
	Type     FieldType `json:"type" yaml:"type"`
}

// Fill converts q into a FilledQuestion carrying answer.
func (q Question) Fill(answer string) FilledQuestion {
	return FilledQuestion{
		Number:   q.Number,
		Question: q.Clean,
		Original: q.Original,
		Answer:   answer,
		Type:     q.Type,
	}
}

// Theme maps the four color roles of the rendered markup to #RRGGBB values.
type Theme struct {
	Name     string `json:"name" yaml:"name"`
	Header   string `json:"header" yaml:"header"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Link     string `json:"link" yaml:"link"`
}

// Record is a saved session as written to the output directory.
type Record struct {
	// ID uniquely identifies the saved record.
	ID string `json:"id"`

	Title     string           `json:"title"`
	Questions []FilledQuestion `json:"questions"`
	Design    Theme            `json:"design"`
	BBCode    string           `json:"bbcode"`

	// BBCodeHash is the hex MD5 of BBCode. Two saves with the same hash are
	// duplicates.
	BBCodeHash string `json:"bbcode_hash"`

	// Generated is the local save time in YYYYMMDD_HHMMSS form.
	Generated string `json:"generated"`
}

// GeneratedLayout is the time layout of Record.Generated.
const GeneratedLayout = "20060102_150405"

// GeneratedAt parses Generated. It returns the zero time when the field is
// empty or malformed.
func (r Record) GeneratedAt() time.Time {
	t, err := time.ParseInLocation(GeneratedLayout, r.Generated, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
