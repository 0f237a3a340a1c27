package models

import (
	"sort"
	"strings"
)

// Сообщения валидации. Тексты совпадают с теми, что показывает форма
// в админке, поэтому меняются только вместе с ней.
const (
	MsgFieldRequired       = "Это поле обязательно."
	MsgObjectNotFound      = "Объект с таким идентификатором не существует."
	MsgAmountPositive      = "Сумма должна быть больше нуля."
	MsgAmountMinimum       = "Сумма не может быть меньше 0.01."
	MsgAmountPrecision     = "Сумма не может содержать более двух знаков после запятой."
	MsgSubcategoryMismatch = "Выбранная подкатегория не принадлежит выбранной категории."
	MsgCategoryMismatch    = "Выбранная категория не принадлежит выбранному типу операции."
)

// ValidationErrors ошибки валидации, сгруппированные по полям:
// имя поля -> список сообщений. Реализует error, поэтому может
// возвращаться из хуков GORM и прерывать сохранение.
type ValidationErrors map[string][]string

// Add добавляет сообщение к полю
func (e ValidationErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Empty сообщает, что ошибок нет
func (e ValidationErrors) Empty() bool {
	return len(e) == 0
}

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("ошибки валидации: ")
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(e[field], " "))
	}
	return b.String()
}
