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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"banana-bank-go/internal/models"
)

// Client talks to the real payment backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ PaymentStore = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// apiError is the backend's error body shape.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) Create(ctx context.Context, params models.CreatePaymentParams) (*models.Payment, error) {
	return c.requestPayment(ctx, http.MethodPost, "/payments", params)
}

func (c *Client) Get(ctx context.Context, id int64) (*models.Payment, error) {
	return c.requestPayment(ctx, http.MethodGet, fmt.Sprintf("/payments/%d", id), nil)
}

func (c *Client) Confirm(ctx context.Context, id int64, status models.PaymentStatus) (*models.Payment, error) {
	body := map[string]models.PaymentStatus{"status": status}
	return c.requestPayment(ctx, http.MethodPost, fmt.Sprintf("/payments/%d/confirm", id), body)
}

// requestPayment issues one JSON request and decodes a Payment. Any
// non-success response becomes an error carrying the server's error or
// message field, falling back to "HTTP <status>".
func (c *Client) requestPayment(ctx context.Context, method, path string, body interface{}) (*models.Payment, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("unable to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("unable to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.responseError(resp.StatusCode, data)
	}

	var payment models.Payment
	if err := json.Unmarshal(data, &payment); err != nil {
		return nil, fmt.Errorf("unable to decode payment: %w", err)
	}
	return &payment, nil
}

func (c *Client) responseError(status int, data []byte) error {
	var body apiError
	_ = json.Unmarshal(data, &body)

	message := body.Error
	if message == "" {
		message = body.Message
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}

	if status == http.StatusNotFound {
		return fmt.Errorf("%s: %w", message, ErrPaymentNotFound)
	}
	return fmt.Errorf("payment backend error: %s", message)
}
