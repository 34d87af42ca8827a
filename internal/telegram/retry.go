package telegram

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Retry calls fn up to maxAttempts times with exponential backoff
// (baseDelay * 2^attempt). When fn fails with an APIError that carries
// retry_after, that delay is used instead. Context cancellation stops the
// wait and returns ctx.Err(). fn is never called when maxAttempts <= 0.
func Retry(ctx context.Context, logger *zap.Logger, maxAttempts int, baseDelay time.Duration, fn func() error) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	var lastErr error
	for attempt := range maxAttempts {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		logger.Warn("retry attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", maxAttempts),
			zap.Error(lastErr),
		)
		if attempt == maxAttempts-1 {
			break
		}

		delay := baseDelay * (1 << attempt)
		var apiErr *APIError
		if errors.As(lastErr, &apiErr) && apiErr.RetryAfter() > 0 {
			delay = apiErr.RetryAfter()
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
