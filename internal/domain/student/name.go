package student

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECT: NAME
// ══════════════════════════════════════════════════════════════════════════════

// Name - ФИО студента.
// Допустимы только буквы и пробелы, каждое слово начинается с заглавной буквы,
// остальные буквы слова строчные ("Иван Иванов", "Ivan Ivanov").
type Name string

// IsValid проверяет ФИО на буквенный состав и регистр слов.
func (n Name) IsValid() bool {
	s := string(n)

	letters := strings.ReplaceAll(s, " ", "")
	if letters == "" {
		return false
	}
	for _, r := range letters {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	// Caser хранит состояние, поэтому создаётся на каждый вызов.
	return cases.Title(language.Und).String(s) == s
}

// String возвращает ФИО как строку.
func (n Name) String() string {
	return string(n)
}

// NewName создаёт Name с валидацией.
func NewName(value string) (Name, error) {
	n := Name(value)
	if !n.IsValid() {
		return "", ErrInvalidName.With(fmt.Errorf("got %q", value))
	}
	return n, nil
}
