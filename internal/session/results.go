// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/pdiddy/formgen/internal/archive"
	"github.com/pdiddy/formgen/internal/bbcode"
	"github.com/pdiddy/formgen/internal/logger"
	"github.com/pdiddy/formgen/internal/theme"
	"github.com/pdiddy/formgen/pkg/types"
)

// selectTheme offers the catalog plus one extra entry for custom colors.
func (s *Session) selectTheme() (types.Theme, error) {
	s.clear()
	s.title("ВЫБОР ОФОРМЛЕНИЯ")

	entries := s.catalog.Entries()
	customKey := s.catalog.NextKey()

	fmt.Fprintln(s.out, "🎨 Выберите стиль оформления:")
	for _, e := range entries {
		fmt.Fprintf(s.out, "  [%s] %s\n", e.Key, e.Theme.Name)
	}
	fmt.Fprintf(s.out, "\n  [%s] ⚙️  Настроить свои цвета\n", customKey)

	for {
		choice, err := s.con.Prompt(fmt.Sprintf("\nВаш выбор (1-%s): ", customKey))
		if err != nil {
			return types.Theme{}, err
		}
		if choice == customKey {
			return s.customTheme()
		}
		if th, ok := s.catalog.Lookup(choice); ok {
			return th, nil
		}
		fmt.Fprintln(s.out, "❌ Неверный выбор")
	}
}

// customTheme asks for four colors. Blank answers take the defaults; an
// invalid color restarts the questions.
func (s *Session) customTheme() (types.Theme, error) {
	s.clear()
	s.title("НАСТРОЙКА ЦВЕТОВ")
	fmt.Fprintln(s.out, "🎨 Введите цвета в формате HEX (#RRGGBB)")
	fmt.Fprintln(s.out, "\n💡 Рекомендации:")
	fmt.Fprintln(s.out, "  • Цвет вопросов: яркий, заметный (#FF3333, #3498DB)")
	fmt.Fprintln(s.out, "  • Цвет ответов: светлый, хорошо читаемый (#FFFFFF, #ECF0F1)")
	fmt.Fprintln(s.out, "  • Цвет ссылок: контрастный (#FF6666, #2980B9)")
	fmt.Fprintln(s.out)

	prompts := []string{
		"Цвет заголовка [" + theme.DefaultHeader + "]: ",
		"Цвет вопросов [" + theme.DefaultQuestion + "]: ",
		"Цвет ответов [" + theme.DefaultAnswer + "]: ",
		"Цвет ссылок [" + theme.DefaultLink + "]: ",
	}
	for {
		colors := make([]string, len(prompts))
		for i, p := range prompts {
			c, err := s.con.Prompt(p)
			if err != nil {
				return types.Theme{}, err
			}
			colors[i] = c
		}

		th, err := theme.Custom(colors[0], colors[1], colors[2], colors[3])
		if err == nil {
			fmt.Fprintln(s.out)
			fmt.Fprint(s.out, theme.Describe(th, !s.styled))
			return th, nil
		}
		fmt.Fprintf(s.out, "❌ %v\n\n", err)
	}
}

// results shows the generated markup and the follow-up actions.
func (s *Session) results(title string, questions []types.Question, filled []types.FilledQuestion, th types.Theme) (outcome, error) {
	markup := bbcode.Render(title, filled, th)

	for {
		s.clear()
		s.title("ГОТОВЫЙ BB-КОД")
		fmt.Fprintln(s.out, markup)

		fmt.Fprintln(s.out)
		s.rule("=", sectionRuleWidth)
		fmt.Fprintln(s.out, "МЕНЮ УПРАВЛЕНИЯ:")
		fmt.Fprintln(s.out, "  1. 💾 СОХРАНИТЬ РЕЗУЛЬТАТ")
		fmt.Fprintln(s.out, "  2. ❌ НЕ СОХРАНЯТЬ РЕЗУЛЬТАТ")
		fmt.Fprintln(s.out, "  3. 🎨 ВЫБРАТЬ ДРУГОЙ СТИЛЬ")
		fmt.Fprintln(s.out, "  4. 🔄 ЗАПОЛНИТЬ ЭТУ ФОРМУ СНОВА")
		fmt.Fprintln(s.out, "  5. ✏️  РЕДАКТИРОВАТЬ ЭТУ ФОРМУ")
		fmt.Fprintln(s.out, "  6. 🚀 ЗАПОЛНИТЬ НОВУЮ ФОРМУ")
		s.rule("=", sectionRuleWidth)

		choice, err := s.con.Prompt("\nВаш выбор (1-6): ")
		if err != nil {
			return backToMenu, err
		}

		switch choice {
		case "1":
			var saved bool
			if saved, err = s.save(title, filled, th, markup); err != nil {
				return backToMenu, err
			}
			if !saved {
				return backToMenu, s.con.Pause(msgPressContinue)
			}
			err = s.con.Pause(msgPressBack)

		case "2":
			ok, err := s.con.Confirm("Вы уверены, что не хотите сохранить результат? (y/n): ")
			if err != nil {
				return backToMenu, err
			}
			if ok {
				fmt.Fprintln(s.out, "✅ Возвращаемся в главное меню...")
				return backToMenu, nil
			}

		case "3":
			if th, err = s.selectTheme(); err != nil {
				return backToMenu, err
			}
			markup = bbcode.Render(title, filled, th)
			fmt.Fprintln(s.out, "✅ Стиль изменен!")
			err = s.con.Pause(msgPressContinue)

		case "4":
			filled, err = s.refill(title, questions, filled)
			if err == nil {
				markup = bbcode.Render(title, filled, th)
				err = s.con.Pause(msgPressContinue)
			}

		case "5":
			if filled, err = s.edit(title, filled); err != nil {
				return backToMenu, err
			}
			markup = bbcode.Render(title, filled, th)
			fmt.Fprintln(s.out, "✅ Форма обновлена!")
			err = s.con.Pause(msgPressContinue)

		case "6":
			var ok bool
			if ok, err = s.con.Confirm("Вы уверены, что хотите заполнить новую форму? (y/n): "); err != nil {
				return backToMenu, err
			}
			if ok {
				fmt.Fprintln(s.out, "🚀 Начинаем новую форму...")
				return startOver, nil
			}
			fmt.Fprintln(s.out, msgCancelled)
			err = s.con.Pause(msgPressContinue)

		default:
			fmt.Fprintln(s.out, msgInvalidChoice)
			err = s.con.Pause(msgPressContinue)
		}
		if err != nil {
			return backToMenu, err
		}
	}
}

// refill answers the same questions again. The previous answers are kept
// unless the new pass is confirmed in the preview.
func (s *Session) refill(title string, questions []types.Question, current []types.FilledQuestion) ([]types.FilledQuestion, error) {
	fmt.Fprintln(s.out, "\n🔄 Начинаем заполнение формы заново...")
	ok, err := s.con.Confirm("Текущие ответы будут удалены. Продолжить? (y/n): ")
	if err != nil {
		return nil, err
	}
	if !ok {
		fmt.Fprintln(s.out, msgCancelled)
		return current, nil
	}

	filled, err := s.fill(title, questions)
	if err != nil {
		return nil, err
	}
	filled, ok, err = s.preview(title, filled)
	if err != nil {
		return nil, err
	}
	if !ok {
		fmt.Fprintln(s.out, "❌ Заполнение отменено!")
		return current, nil
	}
	fmt.Fprintln(s.out, "✅ Форма заполнена заново!")
	return filled, nil
}

// save writes the markup and record. It reports false when the same markup
// was saved before; other failures are shown and the menu continues.
func (s *Session) save(title string, filled []types.FilledQuestion, th types.Theme, markup string) (bool, error) {
	saved, err := s.archive.Save(archive.NewRecord(title, filled, th, markup))

	var dup *archive.DuplicateError
	switch {
	case errors.As(err, &dup):
		fmt.Fprintln(s.out, "\n⚠️  Этот BB-код уже был сохранен ранее!")
		fmt.Fprintln(s.out, "Файл:", dup.File)
		fmt.Fprintln(s.out, "Возвращаемся в главное меню...")
		return false, nil
	case err != nil:
		logger.Error("saving form", err)
		fmt.Fprintf(s.out, "\n❌ Ошибка: %v\n", err)
		return true, nil
	}

	fmt.Fprintln(s.out, "\n💾 РЕЗУЛЬТАТЫ СОХРАНЕНЫ:")
	fmt.Fprintf(s.out, "  📄 BB-код: %s\n", saved.MarkupPath)
	fmt.Fprintf(s.out, "  📊 Данные: %s\n", saved.RecordPath)

	dir := s.archive.Dir()
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	fmt.Fprintf(s.out, "\n📁 Файлы сохранены в папку: %s\n", dir)
	fmt.Fprintln(s.out, "📋 Скопируйте BB-код выше вручную")
	return true, nil
}
