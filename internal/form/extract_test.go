// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/formgen/pkg/types"
)

const sampleForm = `Форма подачи:

1. Ваш игровой Никнейм:
2. Ваш игровой уровень:
3. Скриншот статистики аккаунта(/time):
4. Были ли баны/варны(если да, то за что):
5. Как вы считаете, почему именно вы должны занять пост старшего состава:
6. Были ли ранее на руководящей должности:
7. Ссылка на одобренную РП биографию (обязательна для занятия должности заместителя организации):
8. Ваш часовой пояс:
9. Ссылка на страницу ВК:
10. Логин Discord:
11. Ваше реальное имя:
12. Ваш реальный возраст:`

func TestExtractSampleForm(t *testing.T) {
	title, qs := Extract(sampleForm)

	assert.Equal(t, "Форма подачи:", title)
	require.Len(t, qs, 12)

	wantTypes := []types.FieldType{
		types.FieldText,       // nickname
		types.FieldText,       // level
		types.FieldScreenshot, // /time
		types.FieldText,       // bans
		types.FieldMultiline,  // почему / считаете
		types.FieldText,       // previous posts
		types.FieldLink,       // biography link
		types.FieldText,       // timezone
		types.FieldLink,       // VK
		types.FieldText,       // Discord login
		types.FieldText,       // real name
		types.FieldText,       // real age
	}
	for i, q := range qs {
		assert.Equal(t, i+1, q.Number, "question %d number", i)
		assert.Equal(t, wantTypes[i], q.Type, "question %d (%s) type", i+1, q.Clean)
	}
	assert.Equal(t, "Ваш игровой Никнейм", qs[0].Clean)
	assert.Equal(t, "10. Логин Discord:", qs[9].Original)
	assert.Equal(t, "Логин Discord", qs[9].Clean)
}

func TestExtractTitleAndCleanText(t *testing.T) {
	title, qs := Extract("Форма\n1. Ваш никнейм:\n2. Возраст:")

	assert.Contains(t, title, "Форма")
	require.Len(t, qs, 2)
	assert.Equal(t, "Ваш никнейм", qs[0].Clean)
	assert.Equal(t, "Возраст", qs[1].Clean)
	assert.Equal(t, types.FieldText, qs[0].Type)
	assert.Equal(t, types.FieldText, qs[1].Type)
}

func TestExtractOneRecordPerBoundaryLine(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		t.Run(fmt.Sprintf("%d lines", n), func(t *testing.T) {
			var b strings.Builder
			for i := 0; i < n; i++ {
				// Markers deliberately out of order: the value is ignored.
				fmt.Fprintf(&b, "%d) Вопрос номер %d\n", (i*7)%5+1, i)
			}
			_, qs := Extract(b.String())
			require.Len(t, qs, n)
			for i, q := range qs {
				assert.Equal(t, i+1, q.Number)
				assert.Equal(t, fmt.Sprintf("Вопрос номер %d", i), q.Clean)
			}
		})
	}
}

func TestExtractMultilineAccumulation(t *testing.T) {
	raw := "Анкета на лидера\n" +
		"Вступительный текст без номера\n" +
		"1. Расскажите о себе\n" +
		"   подробно, с примерами\n" +
		"\n" +
		"2) Ваш ник:\n"

	title, qs := Extract(raw)

	assert.Equal(t, "Анкета на лидера", title)
	require.Len(t, qs, 2)
	assert.Equal(t, "1. Расскажите о себе подробно, с примерами", qs[0].Original)
	assert.Equal(t, "Расскажите о себе подробно, с примерами", qs[0].Clean)
	assert.Equal(t, types.FieldMultiline, qs[0].Type)
	assert.Equal(t, "2) Ваш ник:", qs[1].Original)
	assert.Equal(t, "Ваш ник", qs[1].Clean)
}

func TestExtractEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTitle string
		wantClean []string
	}{
		{
			name:      "empty input",
			raw:       "",
			wantTitle: DefaultTitle,
		},
		{
			name:      "whitespace only",
			raw:       "   \n\t\n  \r\n",
			wantTitle: DefaultTitle,
		},
		{
			name:      "no boundary lines",
			raw:       "Привет всем\nэто просто текст\nбез вопросов",
			wantTitle: DefaultTitle,
		},
		{
			name:      "title keyword without questions",
			raw:       "Заявка на пост\nпросто текст",
			wantTitle: DefaultTitle,
		},
		{
			name:      "fallback title keyword without questions",
			raw:       "Анкета на пост\nпросто текст без номеров",
			wantTitle: "Анкета на пост",
		},
		{
			name:      "non-ASCII digit markers",
			raw:       "１. Ваш ник:\n٢) Возраст:",
			wantTitle: DefaultTitle,
			wantClean: []string{"Ваш ник", "Возраст"},
		},
		{
			name:      "bare marker is skipped",
			raw:       "1.\n2. Ваш ник:",
			wantTitle: DefaultTitle,
			wantClean: []string{"Ваш ник"},
		},
		{
			name:      "indented number is a continuation",
			raw:       "1. Первый вопрос\n  2. всё ещё первый",
			wantTitle: DefaultTitle,
			wantClean: []string{"Первый вопрос 2. всё ещё первый"},
		},
		{
			name:      "digit-prefixed prose starts a question",
			raw:       "1. Опыт работы:\n24) часа в сутки",
			wantTitle: DefaultTitle,
			wantClean: []string{"Опыт работы", "часа в сутки"},
		},
		{
			name:      "only one trailing colon removed",
			raw:       "1. Вопрос::",
			wantTitle: DefaultTitle,
			wantClean: []string{"Вопрос:"},
		},
		{
			name:      "windows line endings",
			raw:       "ЗАЯВЛЕНИЕ\r\n1. Имя:\r\n2. Город:\r\n",
			wantTitle: "ЗАЯВЛЕНИЕ",
			wantClean: []string{"Имя", "Город"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, qs := Extract(tt.raw)
			assert.Equal(t, tt.wantTitle, title)

			var got []string
			for _, q := range qs {
				got = append(got, q.Clean)
			}
			assert.Equal(t, tt.wantClean, got)
		})
	}
}

func TestExtractLinewise(t *testing.T) {
	lines := []string{"Форма один", "1. Имя:", "Анкета два", "2. Город", "заметка"}
	title, qs := extractLinewise(lines)

	assert.Equal(t, "Анкета два", title, "last title line wins")
	require.Len(t, qs, 2)
	assert.Equal(t, "Имя", qs[0].Clean)
	assert.Equal(t, 2, qs[1].Number)
}

func TestParse(t *testing.T) {
	_, _, err := Parse("ничего похожего на вопросы")
	assert.ErrorIs(t, err, ErrNoQuestions)

	title, qs, err := Parse(sampleForm)
	require.NoError(t, err)
	assert.Equal(t, "Форма подачи:", title)
	assert.Len(t, qs, 12)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1. Ваш ник:", "Ваш ник"},
		{"12)Возраст", "Возраст"},
		{"3.   Город :", "Город"},
		{"Без номера:", "Без номера"},
		{"7. Время: 24/7", "Время: 24/7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanText(tt.in), tt.in)
	}
}
