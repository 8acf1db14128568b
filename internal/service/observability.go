package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent is one finished service operation: its name, outcome, and any
// identifying fields the operation chose to attach.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Err       error
	Fields    map[string]any
}

// UseCaseObserver receives an event per finished service operation. Services
// take observers as optional trailing constructor arguments; when none is
// given events are dropped.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver drops all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// NewLogUseCaseObserver emits events as slog lines on w. Successful
// operations log at info, failed ones at error with the error message.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &slogUseCaseObserver{logger: slog.New(handler)}
}

type slogUseCaseObserver struct {
	logger *slog.Logger
}

func (o *slogUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []any{
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}

	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "use_case_failed", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "use_case_done", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// observe reports one finished use case; deferred at the top of each service
// method so the error named-return is captured.
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, err error, fields map[string]any) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Err:       err,
		Fields:    fields,
	})
}
