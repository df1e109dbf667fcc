package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/logger"
)

// Storages groups every persistence dependency of the service layer.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
	SessionCache   SessionCache

	closers []func() error
}

// NewStorages connects to PostgreSQL, applies migrations and, when a redis
// address is configured, connects the session cache.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		SessionCache:   NewNopSessionCache(),
		closers:        []func() error{db.Close},
	}

	if cfg.Cache.RedisAddress == "" {
		log.Warn().Str("func", "NewStorages").Msg("redis address is empty, session cache disabled")
		return storages, nil
	}

	cache, err := NewRedisSessionCache(ctx, cfg.Cache, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	storages.SessionCache = cache
	storages.closers = append(storages.closers, cache.Close)

	return storages, nil
}

// Close releases every connection opened by [NewStorages].
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
