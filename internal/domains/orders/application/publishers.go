package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/orders/ports"
)

// StatusProjector keeps the stored order's status in step with the tracker.
type StatusProjector struct {
	repo ports.Repository
}

func NewStatusProjector(repo ports.Repository) *StatusProjector {
	return &StatusProjector{repo: repo}
}

func (p *StatusProjector) Publish(ctx context.Context, change domain.StatusChange) error {
	err := p.repo.UpdateStatus(ctx, change.OrderID, change.Progress.Status)
	if errors.Is(err, domain.ErrStatusRegression) {
		return nil
	}
	return err
}

// StatusLogger writes one log line per transition.
type StatusLogger struct {
	logger *slog.Logger
}

func NewStatusLogger(logger *slog.Logger) *StatusLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusLogger{logger: logger}
}

func (l *StatusLogger) Publish(ctx context.Context, change domain.StatusChange) error {
	l.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", change.OrderID),
		slog.String("status", string(change.Progress.Status)),
		slog.Int("stage", change.Progress.Index),
		slog.Float64("fraction", change.Progress.Fraction),
	)
	return nil
}

// StatusFanout delivers each change to every publisher. One failing publisher
// does not stop the others; failures are joined.
type StatusFanout []ports.StatusPublisher

func (f StatusFanout) Publish(ctx context.Context, change domain.StatusChange) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, change); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_ ports.StatusPublisher = (*StatusProjector)(nil)
	_ ports.StatusPublisher = (*StatusLogger)(nil)
	_ ports.StatusPublisher = StatusFanout(nil)
)
