// Package sqlite reads the initial subject list from an SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/alem-hub/student-record/internal/domain/student"
)

const driverName = "sqlite"

var tableNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Open opens the database at dsn and checks that it is reachable.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	return db, nil
}

// SubjectSource implements student.SubjectSource on top of a table with
// "position" (integer) and "name" (text) columns.
type SubjectSource struct {
	db    *sql.DB
	query string
}

var _ student.SubjectSource = (*SubjectSource)(nil)

// NewSubjectSource creates a source reading from table.
func NewSubjectSource(db *sql.DB, table string) (*SubjectSource, error) {
	if !tableNameRegex.MatchString(table) {
		return nil, fmt.Errorf("sqlite: invalid table name %q", table)
	}
	return &SubjectSource{
		db:    db,
		query: fmt.Sprintf(`SELECT name FROM "%s" ORDER BY position, name`, table),
	}, nil
}

// LoadSubjects reads every subject name from the table.
func (s *SubjectSource) LoadSubjects(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query subjects: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sqlite: scan subject: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate subjects: %w", err)
	}

	return student.UniqueSubjects(names), nil
}

// Close closes the database.
func (s *SubjectSource) Close() error {
	return s.db.Close()
}
