// Package main - точка входа утилиты учёта успеваемости студента.
//
// Утилита загружает список предметов (по умолчанию из subjects.csv),
// создаёт запись студента, добавляет оценки и результаты тестов
// и выводит средние значения.
//
// Использование:
//
//	student-record [путь-к-файлу-предметов]
//
// Без аргумента используется SUBJECTS_FILE или subjects.csv.
// Остальные настройки берутся из окружения (см. config.Load).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alem-hub/student-record/config"
	"github.com/alem-hub/student-record/internal/application/command"
	"github.com/alem-hub/student-record/internal/application/query"
	"github.com/alem-hub/student-record/internal/infrastructure/persistence"
	"github.com/alem-hub/student-record/pkg/logger"
)

// usageError сигнализирует о неверных аргументах командной строки (код выхода 2).
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		var ue *usageError
		if errors.As(err, &ue) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	// ─────────────────────────────────────────────────────────────────────────
	// Аргументы и конфигурация
	// ─────────────────────────────────────────────────────────────────────────

	fs := flag.NewFlagSet("student-record", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		return &usageError{msg: fmt.Sprintf("%v\nusage: student-record [subjects-file]", err)}
	}
	if fs.NArg() > 1 {
		return &usageError{msg: "usage: student-record [subjects-file]"}
	}

	var opts []config.Option
	if fs.NArg() == 1 {
		opts = append(opts, config.WithSubjectsFile(fs.Arg(0)))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// Логирование
	// ─────────────────────────────────────────────────────────────────────────

	log, closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	log = log.With(logger.String("app", cfg.App.Name))
	ctx = logger.WithContext(ctx, log)

	log.Info("arguments received", logger.Any("args", args))
	if fs.NArg() == 1 {
		log.Info("subjects file from arguments", logger.String("path", cfg.Subjects.File))
	} else {
		log.Info("no arguments, using configured subject source",
			logger.Source(string(cfg.Subjects.Source)),
			logger.String("path", cfg.Subjects.File))
	}

	// ─────────────────────────────────────────────────────────────────────────
	// Запись студента
	// ─────────────────────────────────────────────────────────────────────────

	source, err := persistence.OpenSubjectSource(ctx, cfg.Subjects, log)
	if err != nil {
		log.Error("failed to open subject source", logger.Err(err))
		return err
	}
	defer source.Close()

	record, err := command.NewOpenRecordHandler(source).Handle(ctx, command.OpenRecordCommand{
		StudentName: cfg.App.StudentName,
	})
	if err != nil {
		log.Error("failed to open record", logger.Err(err))
		return err
	}

	if err := recordMarks(record); err != nil {
		log.Error("failed to record marks", logger.Err(err))
		return err
	}

	report, err := query.NewGetStudentReportHandler().Handle(ctx, record)
	if err != nil {
		log.Error("failed to build report", logger.Err(err))
		return err
	}

	mathAvg, err := record.AverageTestScore("Math")
	if err != nil {
		return err
	}
	log.Info("average grade", logger.Float64("average_grade", report.AverageGrade))
	log.Info("average math test score", logger.Float64("average_test_score", mathAvg))
	log.Info(report.Text)

	fmt.Fprintln(stdout, report.Text)
	fmt.Fprintf(stdout, "Average grade: %g\n", report.AverageGrade)
	fmt.Fprintf(stdout, "Average Math test score: %g\n", mathAvg)

	return nil
}

// marker - часть записи, нужная для выставления отметок.
type marker interface {
	AddGrade(subject string, grade int) error
	AddTestScore(subject string, score int) error
}

// recordMarks выставляет демонстрационные отметки.
func recordMarks(m marker) error {
	steps := []func() error{
		func() error { return m.AddGrade("Math", 4) },
		func() error { return m.AddTestScore("Math", 85) },
		func() error { return m.AddGrade("History", 5) },
		func() error { return m.AddTestScore("History", 92) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// setupLogger открывает приёмник логов. LOG_FILE "-" означает stdout.
func setupLogger(cfg config.LogConfig) (*logger.Logger, func(), error) {
	opts := logger.Options{
		Output:    os.Stdout,
		Level:     logger.ParseLevel(cfg.Level),
		Format:    logger.ParseFormat(cfg.Format),
		AddCaller: cfg.AddCaller,
	}
	if cfg.File == "-" {
		return logger.New(opts), func() {}, nil
	}

	f, err := logger.OpenFile(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	opts.Output = f
	return logger.New(opts), func() { _ = f.Close() }, nil
}
