package payments

import (
	"context"
	"errors"

	"banana-bank-go/internal/models"
)

// Sentinel errors shared across all payment store implementations.
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidStatus   = errors.New("invalid payment status")
	ErrInvalidPayload  = errors.New("invalid payment payload")
)

// PaymentStore defines the contract every payment backend (SQLite, demo,
// HTTP client) must satisfy. Payments are created pending; Confirm moves
// them to paid or failed, touching only status and updatedAt.
//
// Confirm deliberately has no prior-status guard: a paid payment can be
// re-confirmed to failed (chargeback-style), matching the backend's
// documented surface.
type PaymentStore interface {
	Create(ctx context.Context, params models.CreatePaymentParams) (*models.Payment, error)
	Get(ctx context.Context, id int64) (*models.Payment, error)
	Confirm(ctx context.Context, id int64, status models.PaymentStatus) (*models.Payment, error)
}

// ValidateCreate applies the backend's creation rules: a positive
// integer amount and a non-empty method.
func ValidateCreate(params models.CreatePaymentParams) error {
	if params.Amount <= 0 || params.Method == "" {
		return ErrInvalidPayload
	}
	return nil
}
