package migrate

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle bounds how quickly the orchestrator moves from one user to the
// next, capping the request rate against the destination. It replaces the
// fixed inter-user sleep of the original tool so throughput is tunable from
// configuration.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle allows usersPerMinute users to start per minute, with a burst
// of one so the spacing stays even.
func NewThrottle(usersPerMinute int) *Throttle {
	if usersPerMinute <= 0 {
		usersPerMinute = 30
	}
	return &Throttle{
		limiter: rate.NewLimiter(rate.Limit(float64(usersPerMinute)/60.0), 1),
	}
}

// Wait blocks until the next user may start, or the context is cancelled.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
