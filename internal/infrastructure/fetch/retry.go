package fetch

import (
	"math"
	"math/rand"
	"time"
)

const (
	backoffBase   = 2.0
	jitterFloorMS = 1000
	jitterSpanMS  = 1000
)

// DelayFor computes the backoff pause taken before retry number attempt
// (attempt >= 1): base^attempt seconds plus one to two seconds of jitter.
func DelayFor(attempt int) time.Duration {
	backoff := time.Duration(math.Pow(backoffBase, float64(attempt))) * time.Second
	jitter := time.Duration(jitterFloorMS+rand.Intn(jitterSpanMS)) * time.Millisecond
	return backoff + jitter
}

// withRetries runs fn up to maxRetries times, pausing DelayFor(attempt)
// through the injected sleep between attempts. Returns the last error.
func withRetries(maxRetries int, sleep func(time.Duration), fn func(attempt int) error) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			sleep(DelayFor(attempt))
		}
		if err = fn(attempt); err == nil {
			return nil
		}
	}
	return err
}
