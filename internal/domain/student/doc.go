// Package student содержит доменную модель учётной записи студента.
//
// Это ядро системы: здесь вся логика валидации и агрегации. Пакет определяет:
//
//   - Сущность Record: ФИО и предметы с оценками и результатами тестов
//   - Value Objects: Name, Grade, TestScore
//   - Порт SubjectSource: откуда берётся начальный список предметов
//   - Доменные ошибки: ErrInvalidName, ErrInvalidGrade, ErrInvalidTestScore,
//     ErrSubjectNotFound (классифицируются через shared.IsValidation / shared.IsNotFound)
//
// # Инварианты
//
//  1. ФИО состоит из букв и пробелов, каждое слово с заглавной буквы
//  2. Оценка - целое число от 2 до 5
//  3. Результат теста - целое число от 0 до 100
//  4. Предметы и отметки только добавляются, никогда не удаляются
//
// # Пример использования
//
//	record, err := student.NewRecord("Ivan Ivanov", []string{"Math", "History"},
//	    student.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	_ = record.AddGrade("Math", 4)
//	_ = record.AddTestScore("Math", 85)
//
//	avg := record.AverageGrade()                    // пул всех оценок
//	mathAvg, err := record.AverageTestScore("Math") // 0, если тестов нет
//
// Ошибки валидации и поиска логируются до возврата вызывающему:
// ФИО и неизвестный предмет на уровне error, диапазон отметок на уровне warn.
package student
