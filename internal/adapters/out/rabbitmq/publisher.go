package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange receives status changes under "order.<status>" routing keys.
const DefaultExchange = "order_status"

// StatusChangedMessage is the JSON body of a published status change.
type StatusChangedMessage struct {
	OrderID        uint64    `json:"orderId"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	Status         string    `json:"status"`
	ActorID        *uint64   `json:"actorId,omitempty"`
	CustomerID     *uint64   `json:"customerId,omitempty"`
	Note           string    `json:"note,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// StatusPublisher implements ports.Notifier on top of a topic exchange.
type StatusPublisher struct {
	conn     Connection
	exchange string
}

func NewStatusPublisher(conn Connection, exchange string) *StatusPublisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &StatusPublisher{conn: conn, exchange: exchange}
}

// NotifyStatusChanged publishes one persistent message. It opens a channel per
// message, so it is safe for concurrent use.
func (p *StatusPublisher) NotifyStatusChanged(ctx context.Context, change ports.StatusChange) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(StatusChangedMessage{
		OrderID:        change.OrderID,
		PreviousStatus: change.PreviousStatus,
		Status:         change.Status,
		ActorID:        change.ActorID,
		CustomerID:     change.CustomerID,
		Note:           change.Note,
		OccurredAt:     change.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.PublishWithContext(ctx, p.exchange, RoutingKey(change.Status), false, false, amqp.Publishing{
		MessageId:    uuid.NewString(),
		Timestamp:    change.OccurredAt.UTC(),
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         "order.status_changed",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// RoutingKey is "order.<status>" in lower case.
func RoutingKey(status string) string {
	return "order." + strings.ToLower(status)
}
