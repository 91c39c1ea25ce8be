package main

import (
	"context"
	"math/rand"
	"time"
)

// retryDelay is the wait before the next reload after failures consecutive
// failed ones: base doubled per failure with +/-20% jitter, never above max.
func retryDelay(failures int, base, max time.Duration) time.Duration {
	d := base
	for i := 1; i < failures && (max <= 0 || d < max); i++ {
		d *= 2
	}
	jitter := 0.8 + 0.4*rand.Float64()
	d = time.Duration(float64(d) * jitter)
	if max > 0 && d > max {
		d = max
	}
	return d
}

// sleep waits for d or until ctx is done, reporting whether the full wait elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
