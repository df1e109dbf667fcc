// Package workers runs periodic maintenance next to the HTTP server, such
// as clearing session tokens whose expiry has passed.
package workers

import "context"

// Worker blocks in Run until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// SessionCleaner drops stored session tokens that are past their expiry and
// reports how many were cleared.
type SessionCleaner interface {
	ClearExpiredSessions(ctx context.Context) (int64, error)
}
