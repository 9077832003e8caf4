// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bbcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/formgen/pkg/types"
)

var redTheme = types.Theme{
	Name:     "red",
	Header:   "#CC0000",
	Question: "#FF3333",
	Answer:   "#FFFFFF",
	Link:     "#FF6666",
}

func sampleAnswers() []types.FilledQuestion {
	return []types.FilledQuestion{
		{Number: 1, Question: "Ваш ник", Original: "1. Ваш ник:", Answer: "Ivan_Petrov", Type: types.FieldText},
		{Number: 2, Question: "Ссылка на ВК", Answer: "https://vk.com/id1", Type: types.FieldLink},
		{Number: 3, Question: "Почему вы", Answer: "Первая строка\n\n  Вторая  ", Type: types.FieldMultiline},
		{Number: 4, Question: "Скриншот /time:", Answer: "https://imgur.com/a", Type: types.FieldScreenshot},
	}
}

const wantMarkup = "[center][font=Courier New]\n" +
	"[size=11][b][color=#CC0000]┌────────────────────┐[/color]\n" +
	"ФОРМА ПОДАЧИ\n" +
	"[color=#CC0000]└────────────────────┘[/color][/b][/size]\n" +
	"\n" +
	"[size=9]\n" +
	"[table]\n" +
	"[tr][td][color=#FF3333][b]ВОПРОС 1. Ваш ник:[/b][/color][/td][td][color=#FFFFFF]Ivan_Petrov[/color][/td][/tr]\n" +
	"[tr][td][color=#FF3333][b]ВОПРОС 2. Ссылка на ВК:[/b][/color][/td][td][color=#FF6666][url=https://vk.com/id1]Профиль ВК[/url][/color][/td][/tr]\n" +
	"[tr][td][color=#FF3333][b]ВОПРОС 3. Почему вы:[/b][/color][/td][td][color=#FFFFFF]Первая строка[/color]\n[color=#FFFFFF]Вторая[/color][/td][/tr]\n" +
	"[tr][td][color=#FF3333][b]ВОПРОС 4. Скриншот /time:[/b][/color][/td][td][color=#FF6666][url=https://imgur.com/a]Скриншот[/url][/color][/td][/tr]\n" +
	"[/table]\n" +
	"[/size]\n" +
	"[/font][/center]"

func TestRender(t *testing.T) {
	got := Render("Форма подачи", sampleAnswers(), redTheme)
	assert.Equal(t, wantMarkup, got)
}

func TestRenderIsDeterministic(t *testing.T) {
	a := Render("Анкета", sampleAnswers(), redTheme)
	b := Render("Анкета", sampleAnswers(), redTheme)
	assert.Equal(t, a, b)
	assert.Equal(t, Hash(a), Hash(b))
}

func TestRenderThemeChangesHash(t *testing.T) {
	blue := redTheme
	blue.Header = "#1E3A5F"
	assert.NotEqual(t,
		Hash(Render("Анкета", sampleAnswers(), redTheme)),
		Hash(Render("Анкета", sampleAnswers(), blue)))
}

func TestRenderNoQuestions(t *testing.T) {
	got := Render("x", nil, redTheme)
	assert.Contains(t, got, "[table]\n\n[/table]")
}

func TestAnswer(t *testing.T) {
	tests := []struct {
		name string
		q    types.FilledQuestion
		want string
	}{
		{
			name: "empty screenshot",
			q:    types.FilledQuestion{Type: types.FieldScreenshot},
			want: "[color=#FFFFFF](скриншот не загружен)[/color]",
		},
		{
			name: "empty link",
			q:    types.FilledQuestion{Type: types.FieldLink, Question: "Ссылка"},
			want: "[color=#FFFFFF](ссылка не указана)[/color]",
		},
		{
			name: "blank multiline",
			q:    types.FilledQuestion{Type: types.FieldMultiline, Answer: "\n  \n"},
			want: "[color=#FFFFFF](не заполнено)[/color]",
		},
		{
			name: "discord link",
			q:    types.FilledQuestion{Type: types.FieldLink, Question: "Ваш Дискорд", Answer: "https://d.gg/x"},
			want: "[color=#FF6666][url=https://d.gg/x]Discord[/url][/color]",
		},
		{
			name: "text keeps inner spacing",
			q:    types.FilledQuestion{Type: types.FieldText, Answer: "a  b"},
			want: "[color=#FFFFFF]a  b[/color]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Answer(tt.q, redTheme))
		})
	}
}

func TestLinkLabel(t *testing.T) {
	tests := map[string]string{
		"Ссылка на страницу ВК":      LabelVK,
		"VK profile":                 LabelVK,
		"Discord":                    LabelDiscord,
		"Ссылка на РП биографию":     LabelBiography,
		"Ссылка на сайт":             LabelLink,
		"Ваш дискорд или ВК":         LabelVK,
		strings.ToUpper("биография"): LabelBiography,
	}
	for question, want := range tests {
		assert.Equal(t, want, LinkLabel(question), question)
	}
}

func TestRowAddsColonOnce(t *testing.T) {
	row := Row(types.FilledQuestion{Number: 3, Question: "Город:", Type: types.FieldText}, redTheme)
	assert.Contains(t, row, "ВОПРОС 3. Город:[/b]")
	assert.NotContains(t, row, "Город::")
}

func TestHash(t *testing.T) {
	assert.Equal(t, "53cc94224e80e41ef7b333d0d2c337e7", Hash(wantMarkup))
	assert.Len(t, Hash(""), 32)
}
