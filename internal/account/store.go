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
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"banana-bank-go/internal/models"

	"go.uber.org/zap"
)

// Store owns the single persisted account record. Get fails soft: an
// absent or unreadable record yields (nil, nil), never a partially
// decoded account. Save overwrites the whole record; callers must
// read-modify-write.
type Store interface {
	Get(ctx context.Context) (*models.Account, error)
	Save(ctx context.Context, account *models.Account) error
	Remove(ctx context.Context) error
}

// FileStore persists the account as one JSON blob on disk. Writes go
// to a temp file first and are renamed into place, so a crash mid-write
// never corrupts the previous record.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(cfg models.AccountStoreConfig) (*FileStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("account store path cannot be empty")
	}
	return &FileStore{path: cfg.Path}, nil
}

func (s *FileStore) Get(_ context.Context) (*models.Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to read account record: %w", err)
	}

	var account models.Account
	if err := json.Unmarshal(data, &account); err != nil {
		// Treat a corrupt record as absent rather than surfacing a
		// half-typed account to callers.
		zap.L().Warn("Stored account record is not valid JSON, treating as absent",
			zap.String("path", s.path),
			zap.Error(err))
		return nil, nil
	}

	return &account, nil
}

func (s *FileStore) Save(_ context.Context, account *models.Account) error {
	if account == nil {
		return fmt.Errorf("account cannot be nil")
	}

	data, err := json.MarshalIndent(account, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize account: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("unable to write account record: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("unable to replace account record: %w", err)
	}

	return nil
}

func (s *FileStore) Remove(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to remove account record: %w", err)
	}
	return nil
}
