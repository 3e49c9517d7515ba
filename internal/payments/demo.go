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

package payments

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"banana-bank-go/internal/models"

	"go.uber.org/zap"
)

// demoState is the serialized form of the demo store, one JSON blob with
// a sequential id counter and the payment list, newest first.
type demoState struct {
	NextId   int64             `json:"nextId"`
	Payments []*models.Payment `json:"payments"`
}

// DemoStore simulates the payment backend in-process for offline runs.
// With a state file configured the state survives restarts; without one
// it is memory-only and lost when the process exits.
type DemoStore struct {
	mu        sync.Mutex
	stateFile string
	state     *demoState
}

var _ PaymentStore = (*DemoStore)(nil)

func NewDemoStore(cfg models.DemoStoreConfig) *DemoStore {
	return &DemoStore{stateFile: cfg.StateFile}
}

// loadState lazily reads the state file on first use. Missing or
// corrupt state starts fresh; it never fails.
func (s *DemoStore) loadState() *demoState {
	if s.state != nil {
		return s.state
	}

	initial := &demoState{NextId: 1}
	s.state = initial
	if s.stateFile == "" {
		return s.state
	}

	data, err := os.ReadFile(s.stateFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			zap.L().Warn("Unable to read demo payment state, starting fresh", zap.Error(err))
		}
		return s.state
	}

	var loaded demoState
	if err := json.Unmarshal(data, &loaded); err != nil || loaded.NextId < 1 {
		zap.L().Warn("Demo payment state is invalid, starting fresh",
			zap.String("file", s.stateFile))
		return s.state
	}

	s.state = &loaded
	return s.state
}

// saveState persists best-effort; a write failure only degrades the
// store to memory-only behavior.
func (s *DemoStore) saveState() {
	if s.stateFile == "" {
		return
	}

	data, err := json.Marshal(s.state)
	if err != nil {
		zap.L().Warn("Unable to serialize demo payment state", zap.Error(err))
		return
	}

	tmp := s.stateFile + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		zap.L().Warn("Unable to write demo payment state", zap.Error(err))
		return
	}
	if err := os.Rename(tmp, s.stateFile); err != nil {
		zap.L().Warn("Unable to replace demo payment state", zap.Error(err))
	}
}

func (s *DemoStore) Create(_ context.Context, params models.CreatePaymentParams) (*models.Payment, error) {
	if err := ValidateCreate(params); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadState()
	now := time.Now().UTC()
	payment := &models.Payment{
		Id:        state.NextId,
		Amount:    params.Amount,
		Method:    params.Method,
		Status:    models.PaymentPending,
		Metadata:  params.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	state.NextId++
	state.Payments = append([]*models.Payment{payment}, state.Payments...)
	s.saveState()

	return clonePayment(payment), nil
}

func (s *DemoStore) Get(_ context.Context, id int64) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.loadState().Payments {
		if p.Id == id {
			return clonePayment(p), nil
		}
	}
	return nil, ErrPaymentNotFound
}

func (s *DemoStore) Confirm(_ context.Context, id int64, status models.PaymentStatus) (*models.Payment, error) {
	if !models.ValidConfirmStatus(status) {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.loadState().Payments {
		if p.Id == id {
			p.Status = status
			p.UpdatedAt = time.Now().UTC()
			s.saveState()
			return clonePayment(p), nil
		}
	}
	return nil, ErrPaymentNotFound
}

// clonePayment hands callers their own copy, so a held payment never
// aliases store state.
func clonePayment(p *models.Payment) *models.Payment {
	clone := *p
	if p.Metadata != nil {
		clone.Metadata = make(map[string]interface{}, len(p.Metadata))
		for k, v := range p.Metadata {
			clone.Metadata[k] = v
		}
	}
	return &clone
}
