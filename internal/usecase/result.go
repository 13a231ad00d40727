package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"go.opentelemetry.io/otel/trace"
)

// Result is the envelope every action returns. Data is nil on failure and on
// successful deletes. Err carries only a taxonomy sentinel, never a store error.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
	Err     error  `json:"-"`
}

func (r Result[T]) Value() (T, bool) {
	if r.Data == nil {
		var zero T
		return zero, false
	}
	return *r.Data, true
}

func succeed[T any](message string, data T) Result[T] {
	return Result[T]{Success: true, Message: message, Data: &data}
}

func succeedEmpty[T any](message string) Result[T] {
	return Result[T]{Success: true, Message: message}
}

func fail[T any](message string, err error) Result[T] {
	return Result[T]{Message: message, Err: err}
}

func notFound[T any](message string) Result[T] {
	return fail[T](message, ErrNotFound)
}

func invalid[T any](message, detail string) Result[T] {
	return fail[T](message, fmt.Errorf("%w: %s", ErrInvalidInput, detail))
}

// persistenceFailure logs the full store error and returns only the generic message.
func persistenceFailure[T any](ctx context.Context, logger *logging.Logger, span trace.Span, message string, err error, args ...any) Result[T] {
	markSpanError(span, err)
	args = append(args, "error", err)
	logger.ErrorContext(ctx, message, args...)
	return fail[T](message, ErrPersistence)
}
