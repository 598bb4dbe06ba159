package service

import (
	"context"
	"time"
)

// withTimeout runs a single store call bounded by timeout. A non-positive
// timeout leaves ctx untouched.
func withTimeout[T any](ctx context.Context, timeout time.Duration, call func(ctx context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return call(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return call(ctx)
}
