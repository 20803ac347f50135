package interfaces

import (
	"context"

	"iblind_pos/internal/domain/entities"
)

// ChargeRequest is the provider-agnostic payment command issued at finalize
// time for non-cash settlements.
type ChargeRequest struct {
	Amount      float64
	Method      entities.PaymentMethod
	Reference   string
	Description string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// A charge is a best-effort secondary effect of finalize: failures are
// reported, never rolled into the attendance-creation outcome.
type IPaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (providerPaymentID string, providerStatus string, err error)
}
