// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session is the interactive shell around the form parser: the main
// menu, form input, answer collection, theme selection, and saving.
//
// All state belongs to one Session. Everything the shell needs from the
// outside world (output directory, update feed, state file, version) arrives
// through types.Config.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/pdiddy/formgen/internal/archive"
	"github.com/pdiddy/formgen/internal/logger"
	"github.com/pdiddy/formgen/internal/state"
	"github.com/pdiddy/formgen/internal/theme"
	"github.com/pdiddy/formgen/internal/update"
	"github.com/pdiddy/formgen/pkg/types"
)

// Shared prompts.
const (
	msgInvalidChoice  = "❌ Неверный выбор!"
	msgPressContinue  = "\n↵ Нажмите Enter чтобы продолжить..."
	msgPressReturn    = "\n↵ Нажмите Enter чтобы вернуться..."
	msgPressBack      = "\n↵ Нажмите Enter чтобы вернуться в меню..."
	msgFarewell       = "\n👋 До свидания!"
	msgInterrupted    = "\n\n👋 Программа прервана"
	msgCancelled      = "✅ Отменено."
	clearSequence     = "\033[H\033[2J"
	titleRuleWidth    = 60
	sectionRuleWidth  = 60
	questionRuleWidth = 50
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF3333"))

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

func defaultIsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Session is one interactive run of formgen.
type Session struct {
	cfg         types.Config
	con         *Console
	out         io.Writer
	catalog     *theme.Catalog
	archive     *archive.Archive
	updates     *update.Checker
	openBrowser func(string) error
	styled      bool
}

// Option configures a Session.
type Option func(*Session)

// WithBrowser replaces the function used to open the download page.
func WithBrowser(open func(string) error) Option {
	return func(s *Session) { s.openBrowser = open }
}

// WithCatalog supplies a ready theme catalog. The themes file named in the
// configuration is then not read again.
func WithCatalog(c *theme.Catalog) Option {
	return func(s *Session) { s.catalog = c }
}

// New builds a Session reading from in and writing to out. Interrupt signals
// delivered on interrupts cancel the current prompt.
func New(cfg types.Config, in io.Reader, out io.Writer, interrupts <-chan os.Signal, opts ...Option) (*Session, error) {
	s := &Session{
		cfg:         cfg,
		con:         NewConsole(in, out, interrupts),
		out:         out,
		archive:     archive.New(cfg.OutputDir),
		updates:     update.NewChecker(cfg.Update, cfg.Version, state.NewCheckFile(cfg.StateFile)),
		openBrowser: update.OpenBrowser,
		styled:      !cfg.NoColor && isTerminal(out),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		s.catalog = theme.Builtin()
		if cfg.ThemesFile != "" {
			if err := s.catalog.LoadFile(cfg.ThemesFile); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// Run shows the main menu until the user exits. Interrupts and the end of
// input end the session normally.
func (s *Session) Run(ctx context.Context) error {
	if res, ok := s.updates.CheckOnStart(ctx); ok && res.Available {
		logger.Info("update available", logger.Fields{"current": res.Current, "latest": res.Latest})
	}
	return s.finish(s.mainMenu(ctx))
}

// RunCreate goes straight into the form workflow and exits afterwards.
func (s *Session) RunCreate() error {
	return s.finish(s.CreateForm())
}

// finish maps the terminal conditions of a session to a farewell.
func (s *Session) finish(err error) error {
	switch {
	case errors.Is(err, ErrInterrupted):
		fmt.Fprintln(s.out, msgInterrupted)
		return nil
	case errors.Is(err, io.EOF):
		fmt.Fprintln(s.out, msgFarewell)
		return nil
	}
	return err
}

func (s *Session) mainMenu(ctx context.Context) error {
	for {
		s.clear()
		s.title("ГЕНЕРАТОР ФОРМ ДЛЯ BLACKRUSSIA")
		fmt.Fprintf(s.out, "📦 Версия: %s\n", s.cfg.Version)
		fmt.Fprintln(s.out, "🚀 ПРОСТОЙ ПОРЯДОК:")
		fmt.Fprintln(s.out, "  1. Вставить готовую форму (копируешь из темы на форуме)")
		fmt.Fprintln(s.out, "  2. Заполнить ответы")
		fmt.Fprintln(s.out, "  3. Выбрать оформление")
		fmt.Fprintln(s.out, "  4. Получить BB-код")
		fmt.Fprintln(s.out, "\n"+strings.Repeat("═", 40))
		fmt.Fprintln(s.out, "ГЛАВНОЕ МЕНЮ:")
		fmt.Fprintln(s.out, "  1. 🚀 НАЧАТЬ СОЗДАНИЕ ФОРМЫ")
		fmt.Fprintln(s.out, "  2. 📖 ПОКАЗАТЬ ПРИМЕР ФОРМЫ")
		fmt.Fprintln(s.out, "  3. 🎨 ПОСМОТРЕТЬ СТИЛИ")
		fmt.Fprintln(s.out, "  4. 🔄 ПРОВЕРИТЬ ОБНОВЛЕНИЯ")
		fmt.Fprintln(s.out, "  5. 🚪 ВЫХОД")

		choice, err := s.con.Prompt("\nВаш выбор (1-5): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.CreateForm()
		case "2":
			err = s.ShowExample()
		case "3":
			err = s.ShowThemes()
		case "4":
			if err = s.CheckUpdates(ctx); err == nil {
				err = s.con.Pause(msgPressContinue)
			}
		case "5":
			fmt.Fprintln(s.out, msgFarewell)
			return nil
		default:
			fmt.Fprintln(s.out, msgInvalidChoice)
			err = s.con.Pause(msgPressContinue)
		}
		if err != nil {
			return err
		}
	}
}

// clear wipes the terminal. It does nothing when output is not a styled TTY,
// so transcripts and pipes keep every screen.
func (s *Session) clear() {
	if s.styled {
		fmt.Fprint(s.out, clearSequence)
	}
}

func (s *Session) title(text string) {
	rule := strings.Repeat("═", titleRuleWidth)
	heading := "🎮 " + text
	if s.styled {
		heading = titleStyle.Render(heading)
	}
	fmt.Fprintf(s.out, "\n%s\n%s\n%s\n", rule, heading, rule)
}

func (s *Session) rule(ch string, width int) {
	fmt.Fprintln(s.out, strings.Repeat(ch, width))
}
