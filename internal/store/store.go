package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"quiz-studio/internal/config"
	"quiz-studio/internal/quiz"
	"quiz-studio/internal/quiz/filestore"
	"quiz-studio/internal/quiz/redisstore"
	"quiz-studio/internal/quiz/sqlite"
)

// CloseFunc releases whatever the opened store holds.
type CloseFunc func() error

func noClose() error { return nil }

// Open returns the library store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (quiz.BlobStore, CloseFunc, error) {
	log = log.With().Str("component", "store").Str("driver", cfg.StoreDriver).Logger()

	switch cfg.StoreDriver {
	case config.DriverSQLite:
		s, err := sqlite.NewSQLiteStore(cfg.SQLitePath, cfg.StoreKey)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store %s: %w", cfg.SQLitePath, err)
		}
		log.Debug().Str("path", cfg.SQLitePath).Msg("Store opened")
		return s, s.Close, nil

	case config.DriverFile:
		s, err := filestore.NewFileStore(cfg.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open file store %s: %w", cfg.FilePath, err)
		}
		log.Debug().Str("path", s.Path()).Msg("Store opened")
		return s, noClose, nil

	case config.DriverRedis:
		client, err := redisstore.Dial(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		s := redisstore.NewRedisStore(client, cfg.StoreKey)
		log.Debug().Str("key", cfg.StoreKey).Msg("Store opened")
		return s, s.Close, nil

	case config.DriverMemory:
		log.Warn().Msg("Using in-memory store, quizzes will not survive a restart")
		return quiz.NewMemoryStore(), noClose, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
