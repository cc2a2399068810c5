package redis

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/alem-hub/student-record/internal/domain/student"
)

// SubjectSource implements student.SubjectSource on top of a single key.
//
// The key may hold a list (read in order), a sorted set (read by score)
// or a set (read in lexical order). A missing key yields no subjects.
type SubjectSource struct {
	client *redis.Client
	key    string
}

var _ student.SubjectSource = (*SubjectSource)(nil)

// NewSubjectSource creates a source reading from key.
func NewSubjectSource(client *redis.Client, key string) *SubjectSource {
	return &SubjectSource{client: client, key: key}
}

// LoadSubjects reads subject names stored at the key.
func (s *SubjectSource) LoadSubjects(ctx context.Context) ([]string, error) {
	kind, err := s.client.Type(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: type %s: %w", s.key, err)
	}

	var names []string
	switch kind {
	case "none":
		return []string{}, nil
	case "list":
		names, err = s.client.LRange(ctx, s.key, 0, -1).Result()
	case "zset":
		names, err = s.client.ZRange(ctx, s.key, 0, -1).Result()
	case "set":
		names, err = s.client.SMembers(ctx, s.key).Result()
		sort.Strings(names)
	default:
		return nil, fmt.Errorf("redis: key %s holds a %s, want list, zset or set", s.key, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("redis: read %s: %w", s.key, err)
	}

	return student.UniqueSubjects(names), nil
}

// Close closes the Redis connection.
func (s *SubjectSource) Close() error {
	return s.client.Close()
}
