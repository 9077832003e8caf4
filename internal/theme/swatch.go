// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/formgen/pkg/types"
)

const swatchBlock = "████"

// Swatch renders a color sample followed by the hex value. With noColor the
// sample is shown as BB-code so it can still be pasted into a forum preview.
func Swatch(hex string, noColor bool) string {
	if noColor {
		return fmt.Sprintf("[color=%s]%s[/color] (%s)", hex, swatchBlock, hex)
	}
	block := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(swatchBlock)
	return fmt.Sprintf("%s (%s)", block, hex)
}

// Describe renders a multi-line preview of every role of th.
func Describe(th types.Theme, noColor bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", th.Name)
	fmt.Fprintf(&b, "  Заголовок: %s\n", Swatch(th.Header, noColor))
	fmt.Fprintf(&b, "  Вопросы:   %s\n", Swatch(th.Question, noColor))
	fmt.Fprintf(&b, "  Ответы:    %s\n", Swatch(th.Answer, noColor))
	fmt.Fprintf(&b, "  Ссылки:    %s\n", Swatch(th.Link, noColor))
	return b.String()
}
