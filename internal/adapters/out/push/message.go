// Package push forwards notifier batches to outside channels: the log, a RabbitMQ fanout
// exchange and a Kafka topic.
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/notifier"
	"laundry/internal/pkg/metrics"
)

type entryMessage struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	TicketNumber string    `json:"ticketNumber"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type batchMessage struct {
	Role    string         `json:"role"`
	ActorID string         `json:"actorId,omitempty"`
	Stage   string         `json:"stage"`
	At      time.Time      `json:"at"`
	Entries []entryMessage `json:"entries"`
}

func encode(batch notifier.Batch) ([]byte, error) {
	msg := batchMessage{
		Role:    batch.Key.Role.String(),
		Stage:   string(batch.Key.Stage),
		At:      batch.At,
		Entries: make([]entryMessage, 0, len(batch.Entries)),
	}
	if !batch.Key.ActorID.IsZero() {
		msg.ActorID = batch.Key.ActorID.String()
	}
	for _, e := range batch.Entries {
		msg.Entries = append(msg.Entries, entryMessage{
			ID:           e.ID.String(),
			OrderID:      e.OrderID.String(),
			TicketNumber: e.TicketNumber,
			CustomerName: e.CustomerName,
			Status:       e.Status.String(),
			Address:      e.Address,
			CreatedAt:    e.CreatedAt,
		})
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification batch: %w", err)
	}
	return body, nil
}

// routingKey is "<role>.<stage>", e.g. "linentracker.dispatch".
func routingKey(key notifier.Key) string {
	return key.Role.String() + "." + string(key.Stage)
}

// Counted wraps effect so that every batch it handles is counted under channel.
func Counted(channel string, m *metrics.Metrics, effect notifier.Effect) notifier.Effect {
	return notifier.EffectFunc(func(ctx context.Context, batch notifier.Batch) error {
		err := effect.Notify(ctx, batch)
		result := "ok"
		if err != nil {
			result = "error"
		}
		m.PushPublished.WithLabelValues(channel, result).Inc()
		return err
	})
}
