// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-posts/internal/logger"
)

// SessionSweeper periodically clears expired session tokens so that users
// whose token lapsed are shown as logged out.
type SessionSweeper struct {
	cleaner  SessionCleaner
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(cleaner SessionCleaner, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is cancelled. A non-positive
// interval disables the sweeper.
func (s *SessionSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Msg("session sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	cleared, err := s.cleaner.ClearExpiredSessions(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*SessionSweeper.sweep").Msg("error clearing expired sessions")
		return
	}
	if cleared > 0 {
		s.logger.Debug().Int64("cleared", cleared).Msg("expired sessions cleared")
	}
}
