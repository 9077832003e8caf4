// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/pdiddy/formgen/internal/form"
	"github.com/pdiddy/formgen/internal/httputil"
	"github.com/pdiddy/formgen/internal/logger"
	"github.com/pdiddy/formgen/internal/theme"
	"github.com/pdiddy/formgen/internal/update"
)

// ShowExample prints a form in the shape the parser expects.
func (s *Session) ShowExample() error {
	s.clear()
	s.title("ПРИМЕР ФОРМЫ")
	fmt.Fprintln(s.out, "📋 Вот как должна выглядеть форма для вставки:")
	fmt.Fprintln(s.out)
	s.rule("=", sectionRuleWidth)
	fmt.Fprintln(s.out, form.ExampleForm)
	s.rule("=", sectionRuleWidth)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "💡 Просто скопируйте ЭТОТ ТЕКСТ целиком и вставьте в программу!")
	return s.con.Pause(msgPressReturn)
}

// ShowThemes prints every theme in the catalog with color samples.
func (s *Session) ShowThemes() error {
	s.clear()
	s.title("ДОСТУПНЫЕ СТИЛИ")
	fmt.Fprintln(s.out, "🎨 Выберите один из стилей:")
	fmt.Fprintln(s.out)
	for _, e := range s.catalog.Entries() {
		fmt.Fprintln(s.out, theme.Describe(e.Theme, !s.styled))
	}
	return s.con.Pause(msgPressReturn)
}

// CheckUpdates queries the update feed and reports the result. When a newer
// version exists the user may open the download page. Network failures are
// reported, never returned.
func (s *Session) CheckUpdates(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n🔍 Проверяем наличие обновлений...")

	res, err := s.updates.Check(ctx)
	if err != nil {
		logger.Info("update check failed", logger.Fields{"error": err.Error()})
		fmt.Fprintln(s.out, updateFailure(err))
		return nil
	}
	if !res.Available {
		fmt.Fprintln(s.out, "✅ У вас установлена последняя версия!")
		return nil
	}

	fmt.Fprintln(s.out, "\n🎉 Доступно обновление!")
	fmt.Fprintf(s.out, "   Текущая версия: %s\n", res.Current)
	fmt.Fprintf(s.out, "   Новая версия: %s\n", res.Latest)
	fmt.Fprintln(s.out, "\n📥 Скачать обновление можно по ссылке:")
	fmt.Fprintf(s.out, "   %s\n", s.updates.PageURL())

	open, err := s.con.Confirm("\nХотите открыть страницу загрузки? (y/n): ")
	if err != nil {
		return err
	}
	if open {
		if err := s.openBrowser(s.updates.PageURL()); err != nil {
			logger.Warn("could not open browser", logger.Fields{"error": err.Error()})
			fmt.Fprintf(s.out, "❌ Не удалось открыть браузер: %v\n", err)
		}
	}
	return nil
}

// updateFailure picks the message shown for a failed check.
func updateFailure(err error) string {
	var (
		urlErr    *url.Error
		statusErr *httputil.StatusError
	)
	switch {
	case errors.Is(err, update.ErrNoVersion):
		return "❌ Не удалось получить версию с сервера"
	case errors.As(err, &urlErr), errors.As(err, &statusErr), errors.Is(err, context.DeadlineExceeded):
		return "❌ Не удалось проверить обновления. Проверьте подключение к интернету."
	default:
		return fmt.Sprintf("❌ Ошибка при проверке обновлений: %v", err)
	}
}
