// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive saves finished forms to the output directory.
//
// Every save writes two files sharing a base name: the markup as .txt and the
// full record as .json. The JSON record carries the MD5 of the markup; a save
// whose hash matches any existing record is refused as a duplicate.
package archive

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/formgen/internal/bbcode"
	"github.com/pdiddy/formgen/internal/logger"
	"github.com/pdiddy/formgen/pkg/types"
)

// ErrDuplicate is returned by Save when the same markup was saved before.
var ErrDuplicate = errors.New("markup already saved")

// DuplicateError names the record that already holds the markup.
type DuplicateError struct {
	File string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDuplicate, e.File)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

const (
	slugLength = 20
	recordExt  = ".json"
	markupExt  = ".txt"
)

// Archive is a directory of saved records.
type Archive struct {
	dir string
	now func() time.Time
}

// New returns an Archive rooted at dir. The directory is created on first save.
func New(dir string) *Archive {
	return &Archive{dir: dir, now: time.Now}
}

// Dir returns the archive directory.
func (a *Archive) Dir() string {
	return a.dir
}

// Saved holds the paths written by Save.
type Saved struct {
	MarkupPath string
	RecordPath string
	Record     types.Record
}

// NewRecord assembles a record for the given form. The hash is computed from
// markup; ID and Generated are filled in by Save.
func NewRecord(title string, questions []types.FilledQuestion, th types.Theme, markup string) types.Record {
	return types.Record{
		Title:      title,
		Questions:  questions,
		Design:     th,
		BBCode:     markup,
		BBCodeHash: bbcode.Hash(markup),
	}
}

// Save writes rec as <slug>_<timestamp>.txt and .json. It returns a
// *DuplicateError (matching ErrDuplicate) when a record with the same markup
// hash already exists.
func (a *Archive) Save(rec types.Record) (Saved, error) {
	if rec.BBCodeHash == "" {
		rec.BBCodeHash = bbcode.Hash(rec.BBCode)
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return Saved{}, fmt.Errorf("creating output directory: %w", err)
	}

	if existing, err := a.FindHash(rec.BBCodeHash); err != nil {
		return Saved{}, err
	} else if existing != "" {
		return Saved{}, &DuplicateError{File: existing}
	}

	now := a.now()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Generated = now.Format(types.GeneratedLayout)

	base := a.freeBase(Slug(rec.Title) + "_" + rec.Generated)
	saved := Saved{
		MarkupPath: filepath.Join(a.dir, base+markupExt),
		RecordPath: filepath.Join(a.dir, base+recordExt),
		Record:     rec,
	}

	if err := os.WriteFile(saved.MarkupPath, []byte(rec.BBCode), 0o644); err != nil {
		return Saved{}, fmt.Errorf("writing markup: %w", err)
	}

	data, err := marshalRecord(rec)
	if err != nil {
		return Saved{}, err
	}
	if err := os.WriteFile(saved.RecordPath, data, 0o644); err != nil {
		return Saved{}, fmt.Errorf("writing record: %w", err)
	}

	logger.Info("saved form", logger.Fields{"record": saved.RecordPath, "hash": rec.BBCodeHash})
	return saved, nil
}

// FindHash returns the file name of the record whose markup hash equals hash,
// or "" when there is none. Unreadable or malformed records are skipped.
func (a *Archive) FindHash(hash string) (string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading output directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordExt) {
			continue
		}
		rec, err := Load(filepath.Join(a.dir, e.Name()))
		if err != nil {
			logger.Debug("skipping unreadable record", logger.Fields{"file": e.Name(), "error": err.Error()})
			continue
		}
		if rec.BBCodeHash == hash {
			return e.Name(), nil
		}
	}
	return "", nil
}

// Entry is a saved record together with its file path.
type Entry struct {
	Path   string
	Record types.Record
}

// List returns every readable record in the archive, newest first.
func (a *Archive) List() ([]Entry, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading output directory: %w", err)
	}

	var out []Entry
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordExt) {
			continue
		}
		path := filepath.Join(a.dir, e.Name())
		rec, err := Load(path)
		if err != nil {
			logger.Debug("skipping unreadable record", logger.Fields{"file": e.Name(), "error": err.Error()})
			continue
		}
		out = append(out, Entry{Path: path, Record: rec})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Record.Generated > out[j].Record.Generated
	})
	return out, nil
}

// Load reads one JSON record. Records with an unknown question type are
// refused so they are never rendered.
func Load(path string) (types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Record{}, fmt.Errorf("reading record: %w", err)
	}
	var rec types.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return types.Record{}, fmt.Errorf("parsing record %s: %w", filepath.Base(path), err)
	}
	for _, q := range rec.Questions {
		if !q.Type.Valid() {
			return types.Record{}, fmt.Errorf("record %s: question %d has unknown type %q", filepath.Base(path), q.Number, q.Type)
		}
	}
	return rec, nil
}

// Slug turns a form title into a file-name prefix: spaces become
// underscores, colons and path separators are dropped, the result is
// lower-cased and cut to 20 characters.
func Slug(title string) string {
	s := strings.NewReplacer(" ", "_", ":", "", "/", "", "\\", "").Replace(title)
	s = strings.ToLower(s)
	if r := []rune(s); len(r) > slugLength {
		s = string(r[:slugLength])
	}
	if s == "" {
		s = "form"
	}
	return s
}

// freeBase returns base, or base with a numeric suffix when files with that
// name already exist.
func (a *Archive) freeBase(base string) string {
	candidate := base
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(a.dir, candidate+recordExt)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", base, i)
	}
}

func marshalRecord(rec types.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("marshaling record: %w", err)
	}
	return buf.Bytes(), nil
}
