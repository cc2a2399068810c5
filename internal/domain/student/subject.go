package student

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS: GRADE, TEST SCORE
// ══════════════════════════════════════════════════════════════════════════════

const (
	// MinGrade и MaxGrade - границы оценки (пятибалльная шкала).
	MinGrade = 2
	MaxGrade = 5

	// MinTestScore и MaxTestScore - границы результата теста.
	MinTestScore = 0
	MaxTestScore = 100
)

// Grade - оценка по предмету.
type Grade int

// IsValid проверяет, что оценка в диапазоне [2, 5].
func (g Grade) IsValid() bool {
	return g >= MinGrade && g <= MaxGrade
}

// TestScore - результат теста по предмету.
type TestScore int

// IsValid проверяет, что результат в диапазоне [0, 100].
func (t TestScore) IsValid() bool {
	return t >= MinTestScore && t <= MaxTestScore
}

// ══════════════════════════════════════════════════════════════════════════════
// SUBJECT
// ══════════════════════════════════════════════════════════════════════════════

// Subject - предмет со своей историей оценок и результатов тестов.
// Порядок добавления сохраняется.
type Subject struct {
	Name       string
	Grades     []int
	TestScores []int
}

func newSubject(name string) *Subject {
	return &Subject{
		Name:       name,
		Grades:     []int{},
		TestScores: []int{},
	}
}

// clone возвращает копию, не разделяющую срезы с оригиналом.
func (s *Subject) clone() Subject {
	return Subject{
		Name:       s.Name,
		Grades:     append([]int{}, s.Grades...),
		TestScores: append([]int{}, s.TestScores...),
	}
}

// AverageTestScore возвращает среднее по тестам предмета, 0 если тестов нет.
func (s Subject) AverageTestScore() float64 {
	return mean(s.TestScores)
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
