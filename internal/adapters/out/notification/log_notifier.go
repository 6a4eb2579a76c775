package notification

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// LogNotifier writes status changes to the log. It stands in for the broker
// when none is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notification")}
}

func (n *LogNotifier) NotifyStatusChanged(ctx context.Context, change ports.StatusChange) error {
	n.logger.InfoContext(ctx, "order status changed",
		"order_id", change.OrderID,
		"previous_status", change.PreviousStatus,
		"status", change.Status,
		"note", change.Note,
	)
	return nil
}
