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

package database

const (
	// Payment queries
	queryInsertPayment = `
		INSERT INTO payments (amount, method, status, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, amount, method, status, metadata, created_at, updated_at`

	queryGetPayment = `
		SELECT id, amount, method, status, metadata, created_at, updated_at
		FROM payments
		WHERE id = ?`

	queryConfirmPayment = `
		UPDATE payments
		SET status = ?, updated_at = ?
		WHERE id = ?
		RETURNING id, amount, method, status, metadata, created_at, updated_at`

	queryListPayments = `
		SELECT id, amount, method, status, metadata, created_at, updated_at
		FROM payments
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`
)
