package payments

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"banana-bank-go/internal/models"
)

func TestDemoStore_CreateAssignsSequentialIds(t *testing.T) {
	store := NewDemoStore(models.DemoStoreConfig{})
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		p, err := store.Create(ctx, models.CreatePaymentParams{Amount: 5000, Method: "boleto"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if p.Id != want {
			t.Errorf("Expected id %d, got %d", want, p.Id)
		}
		if p.Status != models.PaymentPending {
			t.Errorf("Expected pending status, got %s", p.Status)
		}
	}
}

func TestDemoStore_CreateValidation(t *testing.T) {
	store := NewDemoStore(models.DemoStoreConfig{})
	ctx := context.Background()

	tests := []struct {
		name   string
		params models.CreatePaymentParams
	}{
		{"zero amount", models.CreatePaymentParams{Amount: 0, Method: "boleto"}},
		{"negative amount", models.CreatePaymentParams{Amount: -100, Method: "boleto"}},
		{"missing method", models.CreatePaymentParams{Amount: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.Create(ctx, tt.params); !errors.Is(err, ErrInvalidPayload) {
				t.Errorf("Expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}

func TestDemoStore_GetNotFound(t *testing.T) {
	store := NewDemoStore(models.DemoStoreConfig{})

	if _, err := store.Get(context.Background(), 42); !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("Expected ErrPaymentNotFound, got %v", err)
	}
}

func TestDemoStore_ConfirmUpdatesOnlyStatusAndUpdatedAt(t *testing.T) {
	store := NewDemoStore(models.DemoStoreConfig{})
	ctx := context.Background()

	created, err := store.Create(ctx, models.CreatePaymentParams{
		Amount:   5000,
		Method:   "boleto",
		Metadata: map[string]interface{}{"barcode": "1234"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	confirmed, err := store.Confirm(ctx, created.Id, models.PaymentPaid)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	if confirmed.Status != models.PaymentPaid {
		t.Errorf("Expected paid, got %s", confirmed.Status)
	}
	if confirmed.Id != created.Id || confirmed.Amount != created.Amount || confirmed.Method != created.Method {
		t.Errorf("Confirm must not touch id/amount/method: %+v", confirmed)
	}
	if !confirmed.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("Confirm must not touch createdAt: %v vs %v", confirmed.CreatedAt, created.CreatedAt)
	}
	if confirmed.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("Expected updatedAt to advance: %v vs %v", confirmed.UpdatedAt, created.UpdatedAt)
	}
	if confirmed.Metadata["barcode"] != "1234" {
		t.Errorf("Confirm must not touch metadata: %+v", confirmed.Metadata)
	}
}

func TestDemoStore_ConfirmInvalidStatus(t *testing.T) {
	store := NewDemoStore(models.DemoStoreConfig{})
	ctx := context.Background()

	created, err := store.Create(ctx, models.CreatePaymentParams{Amount: 100, Method: "boleto"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := store.Confirm(ctx, created.Id, models.PaymentPending); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
	if _, err := store.Confirm(ctx, created.Id, "refunded"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestDemoStore_ConfirmNotFound(t *testing.T) {
	store := NewDemoStore(models.DemoStoreConfig{})

	if _, err := store.Confirm(context.Background(), 7, models.PaymentPaid); !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("Expected ErrPaymentNotFound, got %v", err)
	}
}

func TestDemoStore_ReconfirmAllowed(t *testing.T) {
	// Deliberate: a paid payment may be re-confirmed to failed.
	store := NewDemoStore(models.DemoStoreConfig{})
	ctx := context.Background()

	created, _ := store.Create(ctx, models.CreatePaymentParams{Amount: 100, Method: "boleto"})
	if _, err := store.Confirm(ctx, created.Id, models.PaymentPaid); err != nil {
		t.Fatalf("First confirm failed: %v", err)
	}

	p, err := store.Confirm(ctx, created.Id, models.PaymentFailed)
	if err != nil {
		t.Fatalf("Re-confirm failed: %v", err)
	}
	if p.Status != models.PaymentFailed {
		t.Errorf("Expected failed after re-confirm, got %s", p.Status)
	}
}

func TestDemoStore_MetadataRoundTrip(t *testing.T) {
	store := NewDemoStore(models.DemoStoreConfig{})
	ctx := context.Background()

	meta := map[string]interface{}{"barcode": "846700000017", "linha": float64(1)}
	created, err := store.Create(ctx, models.CreatePaymentParams{Amount: 5000, Method: "boleto", Metadata: meta})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.Get(ctx, created.Id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Metadata["barcode"] != "846700000017" || got.Metadata["linha"] != float64(1) {
		t.Errorf("Metadata did not round-trip: %+v", got.Metadata)
	}

	// Caller mutation of the returned copy must not leak into the store.
	got.Metadata["barcode"] = "tampered"
	again, _ := store.Get(ctx, created.Id)
	if again.Metadata["barcode"] != "846700000017" {
		t.Error("Returned payment aliases store state")
	}
}

func TestDemoStore_StateFilePersistence(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "demo_payments.json")
	ctx := context.Background()

	first := NewDemoStore(models.DemoStoreConfig{StateFile: stateFile})
	created, err := first.Create(ctx, models.CreatePaymentParams{Amount: 5000, Method: "boleto"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := first.Confirm(ctx, created.Id, models.PaymentPaid); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	// A fresh store over the same file sees the prior state and keeps
	// the counter going.
	second := NewDemoStore(models.DemoStoreConfig{StateFile: stateFile})
	got, err := second.Get(ctx, created.Id)
	if err != nil {
		t.Fatalf("Get after reload failed: %v", err)
	}
	if got.Status != models.PaymentPaid {
		t.Errorf("Expected persisted paid status, got %s", got.Status)
	}

	next, err := second.Create(ctx, models.CreatePaymentParams{Amount: 100, Method: "pix"})
	if err != nil {
		t.Fatalf("Create after reload failed: %v", err)
	}
	if next.Id != created.Id+1 {
		t.Errorf("Expected counter to continue at %d, got %d", created.Id+1, next.Id)
	}
}

func TestDemoStore_CorruptStateFileStartsFresh(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "demo_payments.json")
	writeFile(t, stateFile, "{broken")

	store := NewDemoStore(models.DemoStoreConfig{StateFile: stateFile})
	p, err := store.Create(context.Background(), models.CreatePaymentParams{Amount: 100, Method: "boleto"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Id != 1 {
		t.Errorf("Expected fresh counter, got id %d", p.Id)
	}
}
