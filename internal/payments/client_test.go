package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"banana-bank-go/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestClient_Create(t *testing.T) {
	var gotBody models.CreatePaymentParams
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/payments" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"amount":5000,"method":"boleto","status":"pending","metadata":{"barcode":"123"},"createdAt":"2025-06-01T12:00:00Z","updatedAt":"2025-06-01T12:00:00Z"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	payment, err := client.Create(context.Background(), models.CreatePaymentParams{
		Amount:   5000,
		Method:   "boleto",
		Metadata: map[string]interface{}{"barcode": "123"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if payment.Id != 7 || payment.Status != models.PaymentPending {
		t.Errorf("Unexpected payment: %+v", payment)
	}
	if payment.Metadata["barcode"] != "123" {
		t.Errorf("Metadata not decoded: %+v", payment.Metadata)
	}
	if gotBody.Amount != 5000 || gotBody.Method != "boleto" {
		t.Errorf("Request body not forwarded: %+v", gotBody)
	}
}

func TestClient_ConfirmSendsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payments/3/confirm" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["status"] != "paid" {
			t.Errorf("Expected status paid in body, got %+v", body)
		}
		_, _ = w.Write([]byte(`{"id":3,"amount":100,"method":"boleto","status":"paid","metadata":null,"createdAt":"2025-06-01T12:00:00Z","updatedAt":"2025-06-01T12:01:00Z"}`))
	}))
	defer server.Close()

	payment, err := NewClient(server.URL).Confirm(context.Background(), 3, models.PaymentPaid)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if payment.Status != models.PaymentPaid {
		t.Errorf("Expected paid, got %s", payment.Status)
	}
	if payment.Metadata != nil {
		t.Errorf("Expected nil metadata, got %+v", payment.Metadata)
	}
}

func TestClient_ServerErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid payload"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Create(context.Background(), models.CreatePaymentParams{Amount: 1, Method: "x"})
	if err == nil || !strings.Contains(err.Error(), "invalid payload") {
		t.Errorf("Expected server error message surfaced, got %v", err)
	}
}

func TestClient_GenericHTTPStatusMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Get(context.Background(), 1)
	if err == nil || !strings.Contains(err.Error(), "HTTP 502") {
		t.Errorf("Expected generic HTTP 502 message, got %v", err)
	}
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Get(context.Background(), 999)
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("Expected ErrPaymentNotFound, got %v", err)
	}
}

func TestClient_BackendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	_, err := NewClient(server.URL).Get(context.Background(), 1)
	if err == nil || !strings.Contains(err.Error(), "unreachable") {
		t.Errorf("Expected transport error, got %v", err)
	}
}
