/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package account

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"banana-bank-go/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Sentinel errors for ledger operation failures.
var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNoUser            = errors.New("no authenticated user")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// User-facing messages, kept from the original app.
const (
	msgInvalidAmount     = "Valor inválido"
	msgNoUser            = "Usuário não autenticado"
	msgInsufficientFunds = "ops, você não tem saldo para essa transação!"
)

// DebitError is a domain failure of a ledger operation. It wraps one of
// the package sentinels and carries the message shown to the user.
type DebitError struct {
	Reason  error
	Message string
}

func (e *DebitError) Error() string {
	return fmt.Sprintf("%v: %s", e.Reason, e.Message)
}

func (e *DebitError) Unwrap() error {
	return e.Reason
}

// DebitParams describe a money-out operation. Amount is in major
// currency units; its sign is ignored, only the magnitude matters.
type DebitParams struct {
	Title  string
	Amount decimal.Decimal
}

// Ledger is the invariant-preserving primitive shared by every
// money-moving flow. The mutex serializes the read-modify-write so two
// concurrent debits cannot both see the same starting balance.
type Ledger struct {
	store Store
	mu    sync.Mutex
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// DebitAndRecord validates the debit, appends a transaction and
// persists the updated account in a single Save. Checks run in a fixed
// order: amount validity, session presence, sufficient funds. On any
// failure nothing is written and the error is a *DebitError.
//
// Not idempotent: every successful call appends a transaction and
// reduces the balance. Single-submission is the caller's problem.
func (l *Ledger) DebitAndRecord(ctx context.Context, params DebitParams) (*models.Account, error) {
	debit := params.Amount.Abs()
	if debit.IsZero() {
		return nil, &DebitError{Reason: ErrInvalidAmount, Message: msgInvalidAmount}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acct, err := l.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load account: %w", err)
	}
	if acct == nil {
		return nil, &DebitError{Reason: ErrNoUser, Message: msgNoUser}
	}

	balance := acct.Balance
	if balance.LessThan(debit) {
		return nil, &DebitError{Reason: ErrInsufficientFunds, Message: msgInsufficientFunds}
	}

	updated := l.applyTransaction(acct, params.Title, debit.Neg())
	if err := l.store.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("unable to persist account: %w", err)
	}

	zap.L().Info("Debit recorded",
		zap.String("title", params.Title),
		zap.String("amount", debit.String()),
		zap.String("balance", updated.Balance.String()))

	return updated, nil
}

// CreditAndRecord appends a credit transaction. Same shape as
// DebitAndRecord minus the funds check.
func (l *Ledger) CreditAndRecord(ctx context.Context, params DebitParams) (*models.Account, error) {
	credit := params.Amount.Abs()
	if credit.IsZero() {
		return nil, &DebitError{Reason: ErrInvalidAmount, Message: msgInvalidAmount}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acct, err := l.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load account: %w", err)
	}
	if acct == nil {
		return nil, &DebitError{Reason: ErrNoUser, Message: msgNoUser}
	}

	updated := l.applyTransaction(acct, params.Title, credit)
	if err := l.store.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("unable to persist account: %w", err)
	}

	zap.L().Info("Credit recorded",
		zap.String("title", params.Title),
		zap.String("amount", credit.String()),
		zap.String("balance", updated.Balance.String()))

	return updated, nil
}

// applyTransaction returns a copy of acct with the signed amount applied
// to the balance and a new transaction prepended. The stored account is
// never mutated in place.
func (l *Ledger) applyTransaction(acct *models.Account, title string, amount decimal.Decimal) *models.Account {
	tx := models.Transaction{
		Id:     uuid.NewString(),
		Title:  title,
		Amount: amount,
		Date:   time.Now().UTC().Format(time.RFC3339),
	}

	updated := *acct
	updated.Balance = acct.Balance.Add(amount)
	updated.Transactions = append([]models.Transaction{tx}, acct.Transactions...)
	return &updated
}
