package ratelimiter

import (
	"golang.org/x/time/rate"
)

// Limiter guards the public API with a single token bucket shared by all
// callers. A nil *Limiter admits everything, which is how a disabled limiter
// is represented.
type Limiter struct {
	bucket *rate.Limiter
}

// New creates a Limiter refilling ratePerSec tokens per second up to burst.
// It returns nil when ratePerSec <= 0.
func New(ratePerSec float64, burst int) *Limiter {
	if ratePerSec <= 0 {
		return nil
	}
	return &Limiter{bucket: rate.NewLimiter(rate.Limit(ratePerSec), burst)}
}

// Allow reports whether a request may proceed now. It never blocks: the
// status endpoint should answer fast or refuse.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.bucket.Allow()
}
