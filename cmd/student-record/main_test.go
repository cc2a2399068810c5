package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) (dir, logPath string) {
	t.Helper()
	dir = t.TempDir()
	logPath = filepath.Join(dir, "logger.log")
	t.Setenv("LOG_FILE", logPath)
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SUBJECTS_SOURCE", "file")
	t.Setenv("SUBJECTS_FILE", "")
	t.Setenv("STUDENT_NAME", "")
	return dir, logPath
}

func TestRun_WithSubjectsFile(t *testing.T) {
	dir, logPath := setupEnv(t)
	subjects := filepath.Join(dir, "subjects.csv")
	require.NoError(t, os.WriteFile(subjects, []byte("Math\nHistory\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{subjects}, &out))

	assert.Equal(t,
		"Student: Ivan Ivanov\nSubjects: Math, History\nAverage grade: 4.5\nAverage Math test score: 85\n",
		out.String())

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"message":"average grade"`)
	assert.Contains(t, string(logs), subjects)
}

func TestRun_SubjectsFromEnvironment(t *testing.T) {
	dir, _ := setupEnv(t)
	subjects := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(subjects, []byte("History\nArt\n"), 0o644))
	t.Setenv("SUBJECTS_FILE", subjects)
	t.Setenv("STUDENT_NAME", "Anna Petrova")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), nil, &out))

	firstLines := strings.SplitN(out.String(), "\n", 3)
	assert.Equal(t, "Student: Anna Petrova", firstLines[0])
	assert.Equal(t, "Subjects: History, Art, Math", firstLines[1])
}

func TestRun_TooManyArguments(t *testing.T) {
	setupEnv(t)

	err := run(context.Background(), []string{"a.csv", "b.csv"}, &bytes.Buffer{})
	var ue *usageError
	assert.True(t, errors.As(err, &ue))
}

func TestRun_MissingFile(t *testing.T) {
	dir, _ := setupEnv(t)

	err := run(context.Background(), []string{filepath.Join(dir, "missing.csv")}, &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_InvalidStudentName(t *testing.T) {
	dir, logPath := setupEnv(t)
	subjects := filepath.Join(dir, "subjects.csv")
	require.NoError(t, os.WriteFile(subjects, []byte("Math\n"), 0o644))
	t.Setenv("STUDENT_NAME", "ivan 1vanov")

	err := run(context.Background(), []string{subjects}, &bytes.Buffer{})
	require.Error(t, err)

	logs, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(logs), `"level":"ERROR"`)
}

func TestRun_PathArgumentOverridesConfiguredSource(t *testing.T) {
	dir, _ := setupEnv(t)
	subjects := filepath.Join(dir, "subjects.csv")
	require.NoError(t, os.WriteFile(subjects, []byte("Math\n"), 0o644))
	t.Setenv("SUBJECTS_SOURCE", "postgres")
	t.Setenv("DATABASE_URL", "")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{subjects}, &out))
	assert.True(t, strings.HasPrefix(out.String(), "Student: Ivan Ivanov\nSubjects: Math, History\n"))
}
