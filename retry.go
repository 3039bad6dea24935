package renamed

import (
	"context"
	"time"
)

// request executes one logical request through the retry policy: up to
// maxRetries+1 attempts, retrying only network failures and 5xx responses.
// Client errors (4xx) are surfaced immediately. When the attempt budget is
// exhausted the most recent error is returned unchanged, so callers always
// see the real failure reason.
func (c *client) request(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	url := c.buildURL(path)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		resp, err := c.send(ctx, method, url, body, contentType)
		if err == nil {
			if resp.StatusCode() < 400 {
				return resp.Body(), nil
			}
			err = errorFromStatus(resp.StatusCode(), resp.Status(), resp.Body())
		}

		lastErr = err
		if attempt == c.maxRetries || !isRetryable(err) {
			break
		}

		backoff := backoffDelay(attempt)
		c.logf("Retry attempt %d/%d, waiting %dms", attempt+1, c.maxRetries, backoff.Milliseconds())
		if err := sleepContext(ctx, backoff); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

// backoffDelay is the delay after the n-th failed attempt (0-indexed):
// 2^(n+1) * 100ms. No jitter and no cap; callers needing either compose it
// externally.
func backoffDelay(attempt int) time.Duration {
	return time.Duration(1<<(attempt+1)) * 100 * time.Millisecond
}

// sleepContext blocks for the given duration or until the context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
