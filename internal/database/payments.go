package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"banana-bank-go/internal/models"
	"banana-bank-go/internal/payments"

	"go.uber.org/zap"
)

// Create inserts a new pending payment. Metadata is serialized to text
// at the storage boundary; absent metadata is stored as NULL.
func (s *Service) Create(ctx context.Context, params models.CreatePaymentParams) (*models.Payment, error) {
	if err := payments.ValidateCreate(params); err != nil {
		return nil, err
	}

	metadata, err := encodeMetadata(params.Metadata)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row := s.db.QueryRowContext(ctx, queryInsertPayment,
		params.Amount, params.Method, models.PaymentPending, metadata, now, now)

	payment, err := scanPayment(row)
	if err != nil {
		return nil, fmt.Errorf("unable to insert payment: %w", err)
	}

	zap.L().Info("Payment created",
		zap.Int64("id", payment.Id),
		zap.Int64("amount", payment.Amount),
		zap.String("method", payment.Method))

	return payment, nil
}

// Get fetches one payment by id.
func (s *Service) Get(ctx context.Context, id int64) (*models.Payment, error) {
	payment, err := scanPayment(s.db.QueryRowContext(ctx, queryGetPayment, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unable to fetch payment: %w", err)
	}
	return payment, nil
}

// Confirm transitions a payment to paid or failed, updating only status
// and updated_at. There is no prior-status guard: re-confirmation is
// allowed deliberately (see DESIGN.md).
func (s *Service) Confirm(ctx context.Context, id int64, status models.PaymentStatus) (*models.Payment, error) {
	if !models.ValidConfirmStatus(status) {
		return nil, payments.ErrInvalidStatus
	}

	row := s.db.QueryRowContext(ctx, queryConfirmPayment, status, time.Now().UTC(), id)
	payment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unable to confirm payment: %w", err)
	}

	zap.L().Info("Payment confirmed",
		zap.Int64("id", payment.Id),
		zap.String("status", string(payment.Status)))

	return payment, nil
}

// List returns payments newest first, for operational inspection.
func (s *Service) List(ctx context.Context, limit, offset int) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, queryListPayments, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("unable to list payments: %w", err)
	}
	defer rows.Close()

	var result []models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("unable to scan payment: %w", err)
		}
		result = append(result, *payment)
	}
	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	var (
		payment  models.Payment
		metadata sql.NullString
	)
	err := row.Scan(&payment.Id, &payment.Amount, &payment.Method, &payment.Status,
		&metadata, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, err
	}

	payment.Metadata = decodeMetadata(metadata)
	return &payment, nil
}

func encodeMetadata(metadata map[string]interface{}) (sql.NullString, error) {
	if metadata == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("unable to serialize metadata: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// decodeMetadata parses stored metadata text back into a map. Malformed
// stored text silently becomes nil, never an error.
func decodeMetadata(metadata sql.NullString) map[string]interface{} {
	if !metadata.Valid {
		return nil
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(metadata.String), &parsed); err != nil {
		return nil
	}
	return parsed
}
