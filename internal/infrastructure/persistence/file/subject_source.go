// Package file reads the initial subject list from a delimited text file.
//
// Each line's first whitespace-delimited field is a subject name; the rest
// of the line is ignored. Blank lines are skipped.
package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alem-hub/student-record/internal/domain/student"
)

const (
	utf8BOM     = "\ufeff"
	maxLineSize = 1 << 20
)

// SubjectSource implements student.SubjectSource on top of a text file.
type SubjectSource struct {
	path string
}

var _ student.SubjectSource = (*SubjectSource)(nil)

// NewSubjectSource creates a source reading from path.
func NewSubjectSource(path string) *SubjectSource {
	return &SubjectSource{path: path}
}

// Path returns the file the source reads.
func (s *SubjectSource) Path() string {
	return s.path
}

// LoadSubjects opens the file and parses it with ParseSubjects.
func (s *SubjectSource) LoadSubjects(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("file: open subjects: %w", err)
	}
	defer f.Close()

	return ParseSubjects(f)
}

// Close is a no-op; the file is closed after every load.
func (s *SubjectSource) Close() error {
	return nil
}

// ParseSubjects returns the first field of every non-blank line,
// without duplicates, in the order they appear.
func ParseSubjects(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var names []string
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		names = append(names, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("file: read subjects: %w", err)
	}

	return student.UniqueSubjects(names), nil
}
