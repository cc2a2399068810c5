package student

import (
	"context"
	"strings"
)

// ══════════════════════════════════════════════════════════════════════════════
// PORTS
// Интерфейсы внешних источников данных. Реализации находятся в
// infrastructure/subjects.
// ══════════════════════════════════════════════════════════════════════════════

// SubjectSource поставляет начальный список предметов для записи студента.
type SubjectSource interface {
	// LoadSubjects возвращает имена предметов в порядке чтения.
	// Повторы допустимы: Record схлопывает их сам.
	// Пустой список - не ошибка.
	LoadSubjects(ctx context.Context) ([]string, error)
}

// SubjectSourceFunc позволяет использовать функцию как SubjectSource.
type SubjectSourceFunc func(ctx context.Context) ([]string, error)

// LoadSubjects вызывает f(ctx).
func (f SubjectSourceFunc) LoadSubjects(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// UniqueSubjects убирает пробелы по краям, пустые имена и повторы,
// сохраняя порядок первого появления.
func UniqueSubjects(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
