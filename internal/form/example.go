// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

// ExampleForm is a typical application form in the shape users paste it.
const ExampleForm = `Форма подачи:

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
