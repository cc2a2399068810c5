package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/student-record/internal/domain/student"
)

func TestGetStudentReportHandler_Handle(t *testing.T) {
	record, err := student.NewRecord("Ivan Ivanov", []string{"Math", "History", "Art"})
	require.NoError(t, err)
	require.NoError(t, record.AddGrade("Math", 4))
	require.NoError(t, record.AddTestScore("Math", 85))
	require.NoError(t, record.AddGrade("History", 5))
	require.NoError(t, record.AddTestScore("History", 92))

	report, err := NewGetStudentReportHandler().Handle(context.Background(), record)
	require.NoError(t, err)

	assert.Equal(t, record.ID().String(), report.RecordID)
	assert.Equal(t, "Ivan Ivanov", report.Name)
	assert.Equal(t, 4.5, report.AverageGrade)
	assert.Equal(t, "Student: Ivan Ivanov\nSubjects: Math, History, Art", report.Text)
	require.Len(t, report.Subjects, 3)

	mathReport := report.Subjects[0]
	assert.Equal(t, "Math", mathReport.Name)
	assert.Equal(t, []int{4}, mathReport.Grades)
	assert.Equal(t, 85.0, mathReport.AverageTestScore)

	art := report.Subjects[2]
	assert.Equal(t, "Art", art.Name)
	assert.Empty(t, art.Grades)
	assert.Zero(t, art.AverageTestScore)
}

func TestGetStudentReportHandler_NilRecord(t *testing.T) {
	_, err := NewGetStudentReportHandler().Handle(context.Background(), nil)
	assert.Error(t, err)
}
