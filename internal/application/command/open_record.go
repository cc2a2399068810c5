// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/alem-hub/student-record/internal/domain/student"
	"github.com/alem-hub/student-record/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// OPEN RECORD COMMAND
// Loads the subject list from the configured source and creates the
// student's record seeded with those subjects.
// ══════════════════════════════════════════════════════════════════════════════

// OpenRecordCommand contains the data needed to open a record.
type OpenRecordCommand struct {
	// StudentName is validated by the record itself, so a rejected name
	// is logged and reported as student.ErrInvalidName.
	StudentName string
}

// OpenRecordHandler handles the OpenRecordCommand.
type OpenRecordHandler struct {
	source student.SubjectSource
}

// NewOpenRecordHandler creates a new OpenRecordHandler.
func NewOpenRecordHandler(source student.SubjectSource) *OpenRecordHandler {
	return &OpenRecordHandler{source: source}
}

// Handle executes the open record command.
// The logger attached to ctx (logger.WithContext) is handed to the record.
func (h *OpenRecordHandler) Handle(ctx context.Context, cmd OpenRecordCommand) (*student.Record, error) {
	log := logger.FromContext(ctx)

	start := time.Now()
	subjects, err := h.source.LoadSubjects(ctx)
	if err != nil {
		log.Error("failed to load subjects", logger.Err(err))
		return nil, fmt.Errorf("open_record: load subjects: %w", err)
	}
	log.Debug("subjects loaded",
		logger.Int("count", len(subjects)),
		logger.Duration("latency", time.Since(start)))

	record, err := student.NewRecord(cmd.StudentName, subjects, student.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("open_record: %w", err)
	}

	log.Info("record opened",
		logger.RecordID(record.ID().String()),
		logger.StudentName(record.Name()),
		logger.Int("subjects", len(subjects)))

	return record, nil
}
