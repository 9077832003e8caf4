// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/formgen/internal/form"
	"github.com/pdiddy/formgen/pkg/types"
)

const msgRequired = "⚠️  Это поле обязательно для заполнения!"

// screenshotHosts are image hosts accepted as screenshot links without a
// second question.
var screenshotHosts = []string{"imgur.com", "prnt.sc", "prntscr.com", "gyazo.com"}

var typeIcons = map[types.FieldType]string{
	types.FieldText:       "📝",
	types.FieldLink:       "🔗",
	types.FieldScreenshot: "📸",
	types.FieldMultiline:  "📄",
}

// fill asks every question in order and returns one filled question per
// input question.
func (s *Session) fill(title string, questions []types.Question) ([]types.FilledQuestion, error) {
	s.clear()
	s.title("ЗАПОЛНЕНИЕ ФОРМЫ")
	fmt.Fprintf(s.out, "📝 Форма: %s\n", title)
	fmt.Fprintf(s.out, "📋 Вопросов: %d\n", len(questions))
	fmt.Fprintln(s.out)
	s.rule("=", sectionRuleWidth)
	fmt.Fprintln(s.out, "🖊️  Теперь заполните форму. Вводите ответы для каждого вопроса.")
	s.rule("=", sectionRuleWidth)

	filled := make([]types.FilledQuestion, 0, len(questions))
	for _, q := range questions {
		fmt.Fprintln(s.out)
		s.rule("─", questionRuleWidth)
		fmt.Fprintf(s.out, "❓ ВОПРОС %d. %s:\n", q.Number, q.Clean)

		var (
			answer string
			err    error
		)
		switch q.Type {
		case types.FieldScreenshot:
			answer, err = s.askScreenshot(q)
		case types.FieldLink:
			answer, err = s.askLink(q)
		case types.FieldMultiline:
			answer, err = s.askMultiline(q)
		default:
			answer, err = s.askText(q)
		}
		if err != nil {
			return nil, err
		}
		filled = append(filled, q.Fill(answer))
	}
	return filled, nil
}

func (s *Session) askScreenshot(q types.Question) (string, error) {
	fmt.Fprintln(s.out, "📸 Вставьте ссылку на скриншот:")
	fmt.Fprintln(s.out, "💡 Рекомендуемые сервисы: imgur.com, prnt.sc")
	fmt.Fprintln(s.out, "   Пример: https://imgur.com/a/abc123")

	for {
		answer, err := s.con.Prompt("Ссылка: ")
		if err != nil {
			return "", err
		}
		if answer == "" {
			fmt.Fprintln(s.out, msgRequired)
			continue
		}

		answer = form.EnsureScheme(answer)
		v := form.Validate(q.Clean, answer, q.Type)
		fmt.Fprintln(s.out, v.Message)

		if isScreenshotHost(answer) || strings.HasPrefix(answer, "https://") {
			if v.Accepted {
				return answer, nil
			}
			continue
		}

		fmt.Fprintln(s.out, "⚠️  Похоже, это не ссылка на скриншот.")
		ok, err := s.con.Confirm("Использовать эту ссылку? (y/n): ")
		if err != nil {
			return "", err
		}
		if ok && v.Accepted {
			return answer, nil
		}
	}
}

func (s *Session) askLink(q types.Question) (string, error) {
	fmt.Fprintln(s.out, "🔗 Вставьте ссылку:")
	for {
		answer, err := s.con.Prompt("Ссылка: ")
		if err != nil {
			return "", err
		}
		if answer == "" {
			fmt.Fprintln(s.out, msgRequired)
			continue
		}

		answer = form.EnsureScheme(answer)
		v := form.Validate(q.Clean, answer, q.Type)
		fmt.Fprintln(s.out, v.Message)
		if v.Accepted {
			return answer, nil
		}
	}
}

// askMultiline reads lines until an empty one. At least one line is required.
// A rejected answer is asked again unless the user keeps it.
func (s *Session) askMultiline(q types.Question) (string, error) {
	fmt.Fprintln(s.out, "📄 Введите развернутый ответ:")
	fmt.Fprintln(s.out, "(Нажмите Enter на пустой строке для завершения)")

	for {
		answer, err := s.readLines()
		if err != nil {
			return "", err
		}

		v := form.Validate(q.Clean, answer, q.Type)
		fmt.Fprintln(s.out, v.Message)
		if v.Accepted {
			return answer, nil
		}
		keep, err := s.con.Confirm("Все равно использовать этот ответ? (y/n): ")
		if err != nil {
			return "", err
		}
		if keep {
			return answer, nil
		}
		fmt.Fprintln(s.out, "📄 Введите ответ заново:")
	}
}

// readLines collects non-blank lines up to the first blank one.
func (s *Session) readLines() (string, error) {
	var lines []string
	for {
		fmt.Fprintf(s.out, "  Строка %d: ", len(lines)+1)
		line, err := s.con.ReadLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimRight(line, " \t")
		if line != "" {
			lines = append(lines, line)
			continue
		}
		if len(lines) > 0 {
			return strings.Join(lines, "\n"), nil
		}
		fmt.Fprintln(s.out, "  ⚠️  Ответ не может быть пустым!")
	}
}

func (s *Session) askText(q types.Question) (string, error) {
	for {
		answer, err := s.con.Prompt("Ответ: ")
		if err != nil {
			return "", err
		}
		if answer == "" {
			fmt.Fprintln(s.out, "⚠️  Ответ не может быть пустым!")
			continue
		}

		v := form.Validate(q.Clean, answer, q.Type)
		fmt.Fprintln(s.out, v.Message)
		if v.Accepted {
			return answer, nil
		}
	}
}

func isScreenshotHost(link string) bool {
	lower := strings.ToLower(link)
	for _, host := range screenshotHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

// preview lists the answers and asks whether to continue, edit, or give up.
// ok is false when the user chose to start over.
func (s *Session) preview(title string, filled []types.FilledQuestion) ([]types.FilledQuestion, bool, error) {
	s.clear()
	s.title("ПРЕДПРОСМОТР")
	fmt.Fprintf(s.out, "📋 Форма: %s\n", title)
	fmt.Fprintln(s.out, "\nВаши ответы:")
	s.rule("-", sectionRuleWidth)
	for _, q := range filled {
		icon, known := typeIcons[q.Type]
		if !known {
			icon = "❓"
		}
		fmt.Fprintf(s.out, "%s ВОПРОС %d. %s:\n", icon, q.Number, q.Question)
		fmt.Fprintf(s.out, "   Ответ: %s\n\n", shorten(q.Answer, answerPreviewWidth))
	}
	s.rule("-", sectionRuleWidth)

	for {
		fmt.Fprintln(s.out, "\nОпции:")
		fmt.Fprintln(s.out, "  1. ✅ Все верно, продолжить")
		fmt.Fprintln(s.out, "  2. ✏️  Редактировать ответы")
		fmt.Fprintln(s.out, "  3. 🔄 Начать заново")

		choice, err := s.con.Prompt("Ваш выбор (1-3): ")
		if err != nil {
			return nil, false, err
		}
		switch choice {
		case "1":
			return filled, true, nil
		case "2":
			edited, err := s.edit(title, filled)
			return edited, err == nil, err
		case "3":
			return nil, false, nil
		default:
			fmt.Fprintln(s.out, "❌ Неверный выбор")
		}
	}
}

// edit lets the user replace answers by question number until they enter 0.
// A rejected answer may still be kept on explicit confirmation. The input
// slice is not modified.
func (s *Session) edit(title string, filled []types.FilledQuestion) ([]types.FilledQuestion, error) {
	edited := make([]types.FilledQuestion, len(filled))
	copy(edited, filled)

	s.clear()
	s.title("РЕДАКТИРОВАНИЕ ОТВЕТОВ")
	fmt.Fprintf(s.out, "📋 Форма: %s\n", title)
	fmt.Fprintln(s.out, "\nВыберите вопрос для редактирования:")
	for _, q := range edited {
		fmt.Fprintf(s.out, "  [%d] ВОПРОС %d. %s... → %s\n",
			q.Number, q.Number, truncate(q.Question, editQuestionWidth, ""), shorten(q.Answer, editPreviewWidth))
	}
	fmt.Fprintln(s.out, "\n  [0] ✅ Завершить редактирование")

	for {
		input, err := s.con.Prompt("\nНомер вопроса: ")
		if err != nil {
			return nil, err
		}
		n, convErr := strconv.Atoi(input)
		if convErr != nil {
			fmt.Fprintln(s.out, "❌ Введите номер вопроса")
			continue
		}
		if n == 0 {
			return edited, nil
		}

		i := n - 1
		if i < 0 || i >= len(edited) || edited[i].Number != n {
			fmt.Fprintln(s.out, "❌ Вопрос с таким номером не найден")
			continue
		}
		q := &edited[i]

		fmt.Fprintf(s.out, "\n✏️  Редактирование вопроса %d:\n", n)
		fmt.Fprintf(s.out, "Вопрос: ВОПРОС %d. %s:\n", q.Number, q.Question)
		fmt.Fprintf(s.out, "Текущий ответ: %s\n", q.Answer)

		answer, err := s.con.Prompt("Новый ответ: ")
		if err != nil {
			return nil, err
		}
		if answer == "" {
			fmt.Fprintln(s.out, "⚠️  Ответ не изменен")
			continue
		}

		v := form.Validate(q.Question, answer, q.Type)
		fmt.Fprintln(s.out, v.Message)
		if !v.Accepted {
			keep, err := s.con.Confirm("Все равно использовать этот ответ? (y/n): ")
			if err != nil {
				return nil, err
			}
			if !keep {
				fmt.Fprintln(s.out, "⚠️  Ответ не изменен")
				continue
			}
		}
		q.Answer = answer
		fmt.Fprintln(s.out, "✅ Ответ обновлен")
	}
}

// shorten keeps answers to width runes, ending long ones with "...".
func shorten(s string, width int) string {
	if len([]rune(s)) <= width {
		return s
	}
	return truncate(s, width-3, "...")
}
