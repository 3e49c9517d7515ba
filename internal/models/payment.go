package models

import (
	"time"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// ValidConfirmStatus reports whether s is an allowed confirmation
// target. Payments are created pending; only paid and failed can be
// requested via confirm.
func ValidConfirmStatus(s PaymentStatus) bool {
	return s == PaymentPaid || s == PaymentFailed
}

// Payment is a backend-tracked (or demo-tracked) record of an external
// payment attempt. Amount is integer cents. Metadata is an opaque
// structured payload; it is nil when absent or when the stored text
// cannot be parsed back.
type Payment struct {
	Id        int64                  `json:"id"`
	Amount    int64                  `json:"amount"`
	Method    string                 `json:"method"`
	Status    PaymentStatus          `json:"status"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// CreatePaymentParams are the caller-supplied fields of a new payment.
type CreatePaymentParams struct {
	Amount   int64                  `json:"amount"`
	Method   string                 `json:"method"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
