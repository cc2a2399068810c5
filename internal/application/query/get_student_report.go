// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"errors"

	"github.com/alem-hub/student-record/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET STUDENT REPORT QUERY
// Собирает сводку по записи студента: средний балл по всем оценкам,
// средний результат тестов по каждому предмету и текстовое представление.
// ══════════════════════════════════════════════════════════════════════════════

// StudentReportDTO - сводка по записи студента.
type StudentReportDTO struct {
	// RecordID - идентификатор записи.
	RecordID string `json:"record_id"`

	// Name - ФИО студента.
	Name string `json:"name"`

	// AverageGrade - среднее по всем оценкам всех предметов (0, если оценок нет).
	AverageGrade float64 `json:"average_grade"`

	// Subjects - предметы в порядке добавления.
	Subjects []SubjectReportDTO `json:"subjects"`

	// Text - двухстрочное представление записи.
	Text string `json:"text"`
}

// SubjectReportDTO - сводка по одному предмету.
type SubjectReportDTO struct {
	Name             string  `json:"name"`
	Grades           []int   `json:"grades"`
	TestScores       []int   `json:"test_scores"`
	AverageTestScore float64 `json:"average_test_score"`
}

// GetStudentReportHandler обрабатывает запрос сводки.
type GetStudentReportHandler struct{}

// NewGetStudentReportHandler создаёт обработчик.
func NewGetStudentReportHandler() *GetStudentReportHandler {
	return &GetStudentReportHandler{}
}

// Handle строит сводку по записи.
func (h *GetStudentReportHandler) Handle(ctx context.Context, record *student.Record) (*StudentReportDTO, error) {
	if record == nil {
		return nil, errors.New("get_student_report: record is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := record.Subjects()
	report := &StudentReportDTO{
		RecordID:     record.ID().String(),
		Name:         record.Name(),
		AverageGrade: record.AverageGrade(),
		Subjects:     make([]SubjectReportDTO, 0, len(names)),
		Text:         record.String(),
	}

	for _, name := range names {
		s, err := record.Subject(name)
		if err != nil {
			return nil, err
		}
		report.Subjects = append(report.Subjects, SubjectReportDTO{
			Name:             s.Name,
			Grades:           s.Grades,
			TestScores:       s.TestScores,
			AverageTestScore: s.AverageTestScore(),
		})
	}

	return report, nil
}
