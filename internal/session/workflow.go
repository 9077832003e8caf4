// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/formgen/internal/form"
	"github.com/pdiddy/formgen/pkg/types"
)

// outcome tells CreateForm what to do once a workflow pass ends.
type outcome int

const (
	backToMenu outcome = iota
	startOver
)

const (
	previewLines       = 3
	previewLineWidth   = 80
	removeListWidth    = 60
	answerPreviewWidth = 50
	editPreviewWidth   = 30
	editQuestionWidth  = 40
)

// CreateForm runs the full workflow: paste, prune, fill, preview, theme,
// results. It repeats while the user asks to start over.
func (s *Session) CreateForm() error {
	for {
		next, err := s.workflow()
		if err != nil {
			return err
		}
		if next != startOver {
			return nil
		}
	}
}

func (s *Session) workflow() (outcome, error) {
	text, err := s.readForm()
	if err != nil {
		return backToMenu, err
	}
	if text == "" {
		fmt.Fprintln(s.out, "❌ Ошибка ввода формы!")
		return backToMenu, nil
	}

	title, questions, err := form.Parse(text)
	if errors.Is(err, form.ErrNoQuestions) {
		fmt.Fprintln(s.out, "❌ Не удалось извлечь вопросы из формы!")
		return backToMenu, s.con.Pause(msgPressContinue)
	}
	fmt.Fprintf(s.out, "\n✅ Извлечено %d вопросов\n", len(questions))

	questions, next, err := s.formOptions(questions)
	if err != nil || next == startOver {
		return next, err
	}

	if err := s.con.Pause("\n↵ Нажмите Enter чтобы начать заполнение..."); err != nil {
		return backToMenu, err
	}

	filled, err := s.fill(title, questions)
	if err != nil {
		return backToMenu, err
	}

	filled, ok, err := s.preview(title, filled)
	if err != nil {
		return backToMenu, err
	}
	if !ok {
		fmt.Fprintln(s.out, "❌ Редактирование отменено!")
		return backToMenu, s.con.Pause(msgPressContinue)
	}

	th, err := s.selectTheme()
	if err != nil {
		return backToMenu, err
	}
	return s.results(title, questions, filled, th)
}

// readForm collects pasted text until two consecutive empty lines or the end
// of input. An interrupt asks whether to stop reading. It returns "" when
// nothing was entered.
func (s *Session) readForm() (string, error) {
	for {
		s.clear()
		s.title("ВВОД ФОРМЫ")
		fmt.Fprintln(s.out, "📝 Вставьте вашу форму целиком (копируйте из темы на форуме)")
		fmt.Fprintln(s.out, "\n📌 ВАЖНО: После вставки просто дважды нажмите Enter для завершения")
		fmt.Fprintln(s.out, "   Это быстро и защищает от случайного ввода!")
		s.rule("-", sectionRuleWidth)
		fmt.Fprintln(s.out, "\n📋 ВСТАВЬТЕ ВАШУ ФОРМУ СЕЙЧАС:")
		s.rule("=", sectionRuleWidth)
		fmt.Fprintln(s.out, "\n[Начинайте ввод. Для завершения введите две пустые строки подряд]")
		fmt.Fprintln(s.out)

		lines, err := s.pasteLines()
		if err != nil {
			return "", err
		}
		if len(lines) == 0 {
			fmt.Fprintln(s.out, "❌ Вы не ввели форму!")
			return "", nil
		}

		text := strings.Join(lines, "\n")
		fmt.Fprintf(s.out, "\n✅ Получено строк: %d\n", len(lines))
		fmt.Fprintf(s.out, "📏 Длина текста: %d символов\n", utf8.RuneCountInString(text))

		fmt.Fprintln(s.out, "\n📄 ПРЕДПРОСМОТР (первые 3 строки):")
		s.rule("-", 40)
		for i, line := range lines {
			if i == previewLines {
				fmt.Fprintf(s.out, "... и еще %d строк\n", len(lines)-previewLines)
				break
			}
			fmt.Fprintf(s.out, "%d: %s\n", i+1, truncate(line, previewLineWidth, "..."))
		}
		s.rule("-", 40)

		ok, err := s.con.Confirm("\n✅ Форма введена правильно? (y/n): ")
		if err != nil {
			return "", err
		}
		if ok {
			return text, nil
		}
		fmt.Fprintln(s.out, "\n🔄 Попробуем еще раз...")
	}
}

func (s *Session) pasteLines() ([]string, error) {
	var lines []string
	empty := 0
	for {
		line, err := s.con.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out, "\n\n📥 Обнаружен конец ввода. Завершаем...")
			return lines, nil

		case errors.Is(err, ErrInterrupted):
			fmt.Fprintln(s.out, "\n\n⚠️  Ввод прерван пользователем.")
			stop, err := s.con.Confirm("Завершить ввод? (y/n): ")
			if err != nil {
				return nil, err
			}
			if stop {
				return lines, nil
			}
			fmt.Fprintln(s.out, "Продолжайте ввод...")
			empty = 0
			continue

		case err != nil:
			return nil, err
		}

		if line == "" {
			empty++
			if empty >= 2 {
				fmt.Fprintln(s.out, "\n✅ Ввод завершен (две пустые строки)")
				return lines, nil
			}
			continue
		}
		empty = 0
		lines = append(lines, line)
	}
}

// formOptions lets the user keep the extracted questions, delete some, or
// paste the form again.
func (s *Session) formOptions(questions []types.Question) ([]types.Question, outcome, error) {
	for {
		fmt.Fprintln(s.out, "\n🎯 ОПЦИИ ФОРМЫ:")
		fmt.Fprintln(s.out, "  1. ✅ Все верно, продолжить заполнение")
		fmt.Fprintln(s.out, "  2. ❌ Удалить ненужные вопросы")
		fmt.Fprintln(s.out, "  3. 🔄 Ввести форму заново")

		choice, err := s.con.Prompt("\nВаш выбор (1-3): ")
		if err != nil {
			return nil, backToMenu, err
		}

		switch choice {
		case "1":
			return questions, backToMenu, nil
		case "2":
			questions, err = s.removeQuestions(questions)
			if err != nil {
				return nil, backToMenu, err
			}
			if len(questions) == 0 {
				fmt.Fprintln(s.out, "❌ Все вопросы удалены. Начнем заново.")
				return nil, startOver, nil
			}
			return questions, backToMenu, nil
		case "3":
			return nil, startOver, nil
		default:
			fmt.Fprintln(s.out, "❌ Неверный выбор")
		}
	}
}

func (s *Session) removeQuestions(questions []types.Question) ([]types.Question, error) {
	s.clear()
	s.title("УДАЛЕНИЕ ВОПРОСОВ")
	fmt.Fprintln(s.out, "📝 Укажите номера вопросов, которые нужно удалить (через запятую или диапазон)")
	fmt.Fprintln(s.out, "Пример: 1,3,5-7,10")
	fmt.Fprintln(s.out, "Пример 2: все - удалить все вопросы")
	s.rule("-", sectionRuleWidth)
	for _, q := range questions {
		fmt.Fprintf(s.out, "%3d. %s\n", q.Number, truncate(q.Original, removeListWidth, "..."))
	}
	s.rule("-", sectionRuleWidth)

	for {
		input, err := s.con.Prompt("\nВведите номера для удаления (или Enter чтобы пропустить): ")
		if err != nil {
			return nil, err
		}
		if input == "" {
			fmt.Fprintln(s.out, "✅ Удаление отменено.")
			return questions, nil
		}

		if form.IsSelectAll(input) {
			ok, err := s.con.Confirm("⚠️  Удалить ВСЕ вопросы? (y/n): ")
			if err != nil {
				return nil, err
			}
			if ok {
				fmt.Fprintln(s.out, "✅ Все вопросы удалены.")
				return nil, nil
			}
			fmt.Fprintln(s.out, "✅ Удаление отменено.")
			continue
		}

		numbers, err := form.ParseSelection(input, len(questions))
		if err != nil {
			fmt.Fprintln(s.out, "❌ Неверный формат. Используйте числа, запятые и тире или 'все'.")
			continue
		}
		if len(numbers) == 0 {
			fmt.Fprintln(s.out, "⚠️  Не указаны корректные номера вопросов.")
			continue
		}

		fmt.Fprintf(s.out, "\n⚠️  Будут удалены %d вопросов: %v\n", len(numbers), numbers)
		ok, err := s.con.Confirm("Подтвердить удаление? (y/n): ")
		if err != nil {
			return nil, err
		}
		if !ok {
			fmt.Fprintln(s.out, "✅ Удаление отменено.")
			return questions, nil
		}

		kept := form.Delete(questions, numbers)
		fmt.Fprintf(s.out, "✅ Удалено %d вопросов.\n", len(numbers))
		fmt.Fprintf(s.out, "📋 Осталось вопросов: %d\n", len(kept))
		return kept, nil
	}
}

// truncate cuts s to width runes, replacing the tail with ellipsis when it
// is longer.
func truncate(s string, width int, ellipsis string) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width]) + ellipsis
}
