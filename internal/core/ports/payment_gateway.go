package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// RefundRequest asks the gateway to reverse part or all of a captured payment.
// The gateway must treat requests with the same IdempotencyKey as one refund.
type RefundRequest struct {
	PaymentID      string
	Amount         kernel.Money
	IdempotencyKey string
	Reason         string
}

// RefundResult is the gateway's confirmation.
type RefundResult struct {
	RefundID string
}

type PaymentGateway interface {
	Refund(ctx context.Context, req RefundRequest) (RefundResult, error)
}
