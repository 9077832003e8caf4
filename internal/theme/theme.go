// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package theme holds the color themes applied to rendered markup: the
// built-in catalog, themes loaded from a YAML file, and user-entered custom
// themes.
package theme

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/formgen/pkg/types"
)

// ErrInvalidColor is returned for a color that is not in #RRGGBB form.
var ErrInvalidColor = errors.New("color must be in #RRGGBB form")

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Defaults offered for each role of a custom theme.
const (
	DefaultHeader   = "#CC0000"
	DefaultQuestion = "#FF3333"
	DefaultAnswer   = "#FFFFFF"
	DefaultLink     = "#0066CC"

	CustomName = "⚙️  Пользовательский дизайн"
)

// Entry is a theme with the menu key used to select it.
type Entry struct {
	Key   string      `yaml:"key"`
	Theme types.Theme `yaml:",inline"`
}

// Catalog is an ordered list of selectable themes.
type Catalog struct {
	entries []Entry
}

// Builtin returns the four themes shipped with formgen, keyed "1" to "4".
func Builtin() *Catalog {
	return &Catalog{entries: []Entry{
		{Key: "1", Theme: types.Theme{Name: "🔴 Классический красный", Header: "#CC0000", Question: "#FF3333", Answer: "#FFFFFF", Link: "#FF6666"}},
		{Key: "2", Theme: types.Theme{Name: "🔵 Профессиональный синий", Header: "#1E3A5F", Question: "#3498DB", Answer: "#ECF0F1", Link: "#2980B9"}},
		{Key: "3", Theme: types.Theme{Name: "⚫ Тёмный минимализм", Header: "#222222", Question: "#E74C3C", Answer: "#F0F0F0", Link: "#3498DB"}},
		{Key: "4", Theme: types.Theme{Name: "🟢 Зелёный спокойный", Header: "#2D5016", Question: "#2ECC71", Answer: "#EAFAF1", Link: "#27AE60"}},
	}}
}

// Entries returns the catalog in menu order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the theme selected by key.
func (c *Catalog) Lookup(key string) (types.Theme, bool) {
	key = strings.TrimSpace(key)
	for _, e := range c.entries {
		if e.Key == key {
			return e.Theme, true
		}
	}
	return types.Theme{}, false
}

// NextKey returns the first numeric key after the catalog's length that no
// entry uses. Menus offer it for custom colors.
func (c *Catalog) NextKey() string {
	for n := len(c.entries) + 1; ; n++ {
		key := strconv.Itoa(n)
		if _, taken := c.Lookup(key); !taken {
			return key
		}
	}
}

// Add appends e, replacing any existing entry with the same key. All four
// colors must be valid.
func (c *Catalog) Add(e Entry) error {
	if e.Key == "" {
		return fmt.Errorf("theme %q: missing key", e.Theme.Name)
	}
	if err := Validate(e.Theme); err != nil {
		return fmt.Errorf("theme %q: %w", e.Key, err)
	}
	for i := range c.entries {
		if c.entries[i].Key == e.Key {
			c.entries[i] = e
			return nil
		}
	}
	c.entries = append(c.entries, e)
	return nil
}

// catalogFile is the on-disk shape of a themes file:
//
//	themes:
//	  - key: "5"
//	    name: Ночной
//	    header: "#000000"
//	    ...
type catalogFile struct {
	Themes []Entry `yaml:"themes"`
}

// LoadFile merges the themes in a YAML file into c.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading themes file: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing themes file %s: %w", path, err)
	}
	for _, e := range f.Themes {
		if err := c.Add(e); err != nil {
			return fmt.Errorf("themes file %s: %w", path, err)
		}
	}
	return nil
}

// Custom builds a user theme. Blank values take the defaults; any other value
// must be a #RRGGBB color.
func Custom(header, question, answer, link string) (types.Theme, error) {
	th := types.Theme{
		Name:     CustomName,
		Header:   orDefault(header, DefaultHeader),
		Question: orDefault(question, DefaultQuestion),
		Answer:   orDefault(answer, DefaultAnswer),
		Link:     orDefault(link, DefaultLink),
	}
	if err := Validate(th); err != nil {
		return types.Theme{}, err
	}
	return th, nil
}

// Validate checks that every color role of th is a #RRGGBB value.
func Validate(th types.Theme) error {
	roles := []struct{ name, value string }{
		{"header", th.Header},
		{"question", th.Question},
		{"answer", th.Answer},
		{"link", th.Link},
	}
	for _, r := range roles {
		if !ValidColor(r.value) {
			return fmt.Errorf("%s color %q: %w", r.name, r.value, ErrInvalidColor)
		}
	}
	return nil
}

// ValidColor reports whether s is a #RRGGBB color.
func ValidColor(s string) bool {
	return hexColor.MatchString(s)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
