package student

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alem-hub/student-record/internal/domain/shared"
	"github.com/alem-hub/student-record/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidName - ФИО не из букв или не в title case.
	ErrInvalidName = shared.NewDomainError("student", "SetName", shared.ErrValidation,
		"name must consist of letters and spaces, each word starting with a capital letter")

	// ErrInvalidGrade - оценка вне диапазона [2, 5].
	ErrInvalidGrade = shared.NewDomainError("student", "AddGrade", shared.ErrValueOutOfRange,
		"grade must be an integer from 2 to 5")

	// ErrInvalidTestScore - результат теста вне диапазона [0, 100].
	ErrInvalidTestScore = shared.NewDomainError("student", "AddTestScore", shared.ErrValueOutOfRange,
		"test score must be an integer from 0 to 100")

	// ErrSubjectNotFound - предмет отсутствует в записи.
	ErrSubjectNotFound = shared.NewDomainError("student", "FindSubject", shared.ErrNotFound,
		"subject not found")
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: RECORD
// ══════════════════════════════════════════════════════════════════════════════

// Record - учётная запись студента: ФИО и предметы с оценками и тестами.
//
// Record не потокобезопасен: им владеет одна последовательность вызовов.
// При доступе из нескольких горутин синхронизация остаётся на вызывающем.
type Record struct {
	id   uuid.UUID
	name Name

	// order - предметы в порядке добавления, subjects - индекс по имени.
	order    []string
	subjects map[string]*Subject

	log *logger.Logger
}

// Option настраивает Record при создании.
type Option func(*Record)

// WithLogger задаёт приёмник диагностики. По умолчанию логи отбрасываются.
func WithLogger(l *logger.Logger) Option {
	return func(r *Record) {
		if l != nil {
			r.log = l
		}
	}
}

// WithID задаёт идентификатор записи вместо случайного UUID.
func WithID(id uuid.UUID) Option {
	return func(r *Record) {
		r.id = id
	}
}

// NewRecord создаёт запись студента с валидацией ФИО.
// Каждый предмет из subjects получает пустые списки оценок и тестов;
// повторы схлопываются, порядок первого появления сохраняется.
func NewRecord(name string, subjects []string, opts ...Option) (*Record, error) {
	r := &Record{
		id:       uuid.New(),
		subjects: make(map[string]*Subject, len(subjects)),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.RecordID(r.id.String()))

	if err := r.SetName(name); err != nil {
		return nil, err
	}

	for _, s := range subjects {
		r.ensureSubject(s)
	}

	return r, nil
}

// ID возвращает идентификатор записи.
func (r *Record) ID() uuid.UUID {
	return r.id
}

// Name возвращает ФИО студента.
func (r *Record) Name() string {
	return r.name.String()
}

// SetName проверяет и заменяет ФИО. Ошибка логируется на уровне error.
func (r *Record) SetName(value string) error {
	name, err := NewName(value)
	if err != nil {
		r.log.Error(ErrInvalidName.Message, logger.StudentName(value))
		return err
	}
	r.name = name
	return nil
}

// AddGrade добавляет оценку по предмету.
// Отсутствующий предмет создаётся даже если оценка затем отклонена.
func (r *Record) AddGrade(subject string, grade int) error {
	s := r.ensureSubject(subject)

	if !Grade(grade).IsValid() {
		r.log.Warn(ErrInvalidGrade.Message, logger.SubjectName(subject), logger.GradeValue(grade))
		return ErrInvalidGrade.With(fmt.Errorf("got %d", grade))
	}

	s.Grades = append(s.Grades, grade)
	return nil
}

// AddTestScore добавляет результат теста по предмету.
// Отсутствующий предмет создаётся даже если результат затем отклонён.
func (r *Record) AddTestScore(subject string, score int) error {
	s := r.ensureSubject(subject)

	if !TestScore(score).IsValid() {
		r.log.Warn(ErrInvalidTestScore.Message, logger.SubjectName(subject), logger.TestScoreValue(score))
		return ErrInvalidTestScore.With(fmt.Errorf("got %d", score))
	}

	s.TestScores = append(s.TestScores, score)
	return nil
}

// AverageTestScore возвращает средний результат тестов по предмету.
// Для предмета без тестов возвращает 0, для неизвестного - ErrSubjectNotFound.
func (r *Record) AverageTestScore(subject string) (float64, error) {
	s, err := r.find(subject)
	if err != nil {
		return 0, err
	}
	return s.AverageTestScore(), nil
}

// AverageGrade возвращает среднее по всем оценкам всех предметов.
// Оценки объединяются в один пул: это не среднее из средних по предметам.
// Без оценок возвращает 0.
func (r *Record) AverageGrade() float64 {
	var pooled []int
	for _, name := range r.order {
		pooled = append(pooled, r.subjects[name].Grades...)
	}
	return mean(pooled)
}

// Subject возвращает копию предмета по имени.
func (r *Record) Subject(name string) (Subject, error) {
	s, err := r.find(name)
	if err != nil {
		return Subject{}, err
	}
	return s.clone(), nil
}

// HasSubject сообщает, есть ли предмет в записи.
func (r *Record) HasSubject(name string) bool {
	_, ok := r.subjects[name]
	return ok
}

// Subjects возвращает имена предметов в порядке добавления.
func (r *Record) Subjects() []string {
	return append([]string{}, r.order...)
}

// String возвращает представление записи в две строки:
// "Student: <ФИО>" и "Subjects: <предметы через запятую>".
func (r *Record) String() string {
	return fmt.Sprintf("Student: %s\nSubjects: %s", r.name, strings.Join(r.order, ", "))
}

func (r *Record) ensureSubject(name string) *Subject {
	if s, ok := r.subjects[name]; ok {
		return s
	}
	s := newSubject(name)
	r.subjects[name] = s
	r.order = append(r.order, name)
	return s
}

func (r *Record) find(name string) (*Subject, error) {
	s, ok := r.subjects[name]
	if !ok {
		r.log.Error(ErrSubjectNotFound.Message, logger.SubjectName(name))
		return nil, ErrSubjectNotFound.With(fmt.Errorf("subject %q", name))
	}
	return s, nil
}
