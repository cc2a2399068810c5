// Package persistence wires the configured subject source.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	goredis "github.com/redis/go-redis/v9"

	"github.com/alem-hub/student-record/config"
	"github.com/alem-hub/student-record/internal/domain/shared"
	"github.com/alem-hub/student-record/internal/domain/student"
	"github.com/alem-hub/student-record/internal/infrastructure/persistence/file"
	"github.com/alem-hub/student-record/internal/infrastructure/persistence/postgres"
	"github.com/alem-hub/student-record/internal/infrastructure/persistence/redis"
	"github.com/alem-hub/student-record/internal/infrastructure/persistence/sqlite"
	"github.com/alem-hub/student-record/pkg/logger"
	"github.com/alem-hub/student-record/pkg/retry"
)

// SubjectSource is a student.SubjectSource holding resources until closed.
type SubjectSource interface {
	student.SubjectSource
	io.Closer
}

// OpenSubjectSource builds the source selected by cfg.Source.
// Connections to databases and Redis are retried with backoff;
// configuration errors are returned immediately.
func OpenSubjectSource(ctx context.Context, cfg config.SubjectsConfig, log *logger.Logger) (SubjectSource, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.Component("subjects"), logger.Source(string(cfg.Source)))

	switch cfg.Source {
	case config.SourceFile:
		log.Debug("reading subjects from file", logger.String("path", cfg.File))
		return file.NewSubjectSource(cfg.File), nil

	case config.SourcePostgres:
		pgCfg := postgres.DefaultConfig(cfg.DatabaseURL)
		pgCfg.ConnectTimeout = cfg.ConnectTimeout
		if _, err := pgCfg.PoolConfig(); err != nil {
			return nil, invalidConfig(err)
		}
		conn, err := connect(ctx, cfg, log, func(ctx context.Context) (*postgres.Connection, error) {
			return postgres.NewConnection(ctx, pgCfg)
		})
		if err != nil {
			return nil, err
		}
		src, err := postgres.NewSubjectSource(conn, cfg.Table)
		if err != nil {
			_ = conn.Close()
			return nil, invalidConfig(err)
		}
		return src, nil

	case config.SourceRedis:
		rCfg := redis.Config{
			URL:         cfg.Redis.URL,
			Host:        cfg.Redis.Host,
			Port:        cfg.Redis.Port,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
			ReadTimeout: cfg.Redis.ReadTimeout,
		}
		if _, err := rCfg.Options(); err != nil {
			return nil, invalidConfig(err)
		}
		client, err := connect(ctx, cfg, log, func(ctx context.Context) (*goredis.Client, error) {
			return redis.NewClient(ctx, rCfg)
		})
		if err != nil {
			return nil, err
		}
		return redis.NewSubjectSource(client, cfg.RedisKey), nil

	case config.SourceSQLite:
		db, err := connect(ctx, cfg, log, func(ctx context.Context) (*sql.DB, error) {
			return sqlite.Open(ctx, cfg.SQLiteDSN)
		})
		if err != nil {
			return nil, err
		}
		src, err := sqlite.NewSubjectSource(db, cfg.Table)
		if err != nil {
			_ = db.Close()
			return nil, invalidConfig(err)
		}
		return src, nil

	default:
		return nil, invalidConfig(fmt.Errorf("unknown subject source %q", cfg.Source))
	}
}

// connect runs dial with a per-attempt timeout until it succeeds or the
// configured attempts run out. Errors reported by the server itself
// (bad credentials, missing database) stop the retries.
func connect[T any](
	ctx context.Context,
	cfg config.SubjectsConfig,
	log *logger.Logger,
	dial func(ctx context.Context) (T, error),
) (T, error) {
	r := retry.ConnectRetrier(cfg.ConnectAttempts, retry.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		log.Warn("subject source unavailable, retrying",
			logger.Int("attempt", attempt), logger.Err(err), logger.Duration("delay", delay))
	}))

	v, err := retry.DoWithData(ctx, r, func(ctx context.Context) (T, error) {
		if cfg.ConnectTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
			defer cancel()
		}
		v, err := dial(ctx)
		if err != nil && rejectedByServer(err) {
			return v, retry.Permanent(err)
		}
		return v, err
	})
	if err == nil {
		return v, nil
	}

	log.Error("subject source connection failed", logger.Err(err))
	kind := shared.ErrServiceUnavailable
	if errors.Is(err, context.DeadlineExceeded) {
		kind = shared.ErrTimeout
	}
	return v, shared.WrapError("subjects", "Connect", kind, "cannot connect to subject source", err)
}

// rejectedByServer reports whether err is a reply from a reachable server.
func rejectedByServer(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return true
	}
	var redisErr goredis.Error
	return errors.As(err, &redisErr)
}

func invalidConfig(err error) error {
	return shared.WrapError("subjects", "Open", shared.ErrInvalidInput, "invalid subject source configuration", err)
}
