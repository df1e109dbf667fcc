package store

import (
	"context"
	"time"
)

// nopSessionCache is used when no redis address is configured. Every lookup
// misses, so sessions are always resolved from the database.
type nopSessionCache struct{}

func NewNopSessionCache() SessionCache {
	return nopSessionCache{}
}

func (nopSessionCache) SaveSession(context.Context, string, string, time.Duration) error {
	return nil
}

func (nopSessionCache) GetSession(context.Context, string) (string, error) {
	return "", ErrSessionNotFound
}

func (nopSessionCache) DeleteSession(context.Context, string) error {
	return nil
}
