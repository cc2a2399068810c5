package postgres

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/alem-hub/student-record/internal/domain/student"
)

var tableNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// SubjectSource implements student.SubjectSource on top of a table with
// "position" (integer) and "name" (text) columns.
type SubjectSource struct {
	conn  *Connection
	query string
}

var _ student.SubjectSource = (*SubjectSource)(nil)

// NewSubjectSource creates a source reading from table ("name" or "schema.name").
func NewSubjectSource(conn *Connection, table string) (*SubjectSource, error) {
	if !tableNameRegex.MatchString(table) {
		return nil, fmt.Errorf("postgres: invalid table name %q", table)
	}
	ident := pgx.Identifier(strings.Split(table, "."))

	return &SubjectSource{
		conn:  conn,
		query: fmt.Sprintf("SELECT name FROM %s ORDER BY position, name", ident.Sanitize()),
	}, nil
}

// LoadSubjects reads every subject name from the table.
func (s *SubjectSource) LoadSubjects(ctx context.Context) ([]string, error) {
	rows, err := s.conn.Pool().Query(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("postgres: query subjects: %w", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres: scan subjects: %w", err)
	}

	return student.UniqueSubjects(names), nil
}

// Close releases the underlying pool.
func (s *SubjectSource) Close() error {
	return s.conn.Close()
}
