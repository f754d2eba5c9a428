package push

import (
	"context"
	"log/slog"

	"laundry/internal/notifier"
)

// LogPublisher writes every arrival as a log line. It is the default channel when no
// broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "push_log")}
}

func (p *LogPublisher) Notify(ctx context.Context, batch notifier.Batch) error {
	for _, e := range batch.Entries {
		p.logger.InfoContext(ctx, "Order arrived in stage",
			"role", batch.Key.Role.String(),
			"stage", string(batch.Key.Stage),
			"order_id", e.OrderID.String(),
			"ticket", e.TicketNumber,
			"customer", e.CustomerName,
			"status", e.Status.String(),
		)
	}
	return nil
}
