package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied to fields left empty by every source.
const (
	DefaultHTTPAddress          = ":8989"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultTokenIssuer          = "go-user-posts"
	DefaultTokenDuration        = 24 * time.Hour
	DefaultVersion              = "1.0.0"
	DefaultSessionSweepInterval = 10 * time.Minute
	DefaultLogLevel             = "debug"
)

// DefaultAllowedOrigins accepts requests from any origin.
var DefaultAllowedOrigins = []string{"*"}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Workers.SessionSweepInterval == 0 {
		cfg.Workers.SessionSweepInterval = DefaultSessionSweepInterval
	}
}
