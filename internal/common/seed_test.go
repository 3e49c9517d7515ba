package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultSeedAccount(t *testing.T) {
	acct := DefaultSeedAccount()

	if acct.Name != "Gabriel" {
		t.Errorf("Expected name Gabriel, got %s", acct.Name)
	}
	if !acct.Balance.Equal(decimal.RequireFromString("1978.60")) {
		t.Errorf("Expected balance 1978.60, got %s", acct.Balance.String())
	}
	if len(acct.Transactions) != 4 {
		t.Fatalf("Expected 4 seed transactions, got %d", len(acct.Transactions))
	}
	if acct.Transactions[0].Title != "Pix recebido" {
		t.Errorf("Unexpected first transaction: %+v", acct.Transactions[0])
	}
}

func TestLoadSeedAccount_EmptyPathUsesDefault(t *testing.T) {
	acct, err := LoadSeedAccount("")
	if err != nil {
		t.Fatalf("LoadSeedAccount failed: %v", err)
	}
	if acct.Name != "Gabriel" {
		t.Errorf("Expected default seed, got %+v", acct)
	}
}

func TestLoadSeedAccount_FromFile(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "seed.yaml")
	content := `name: Maria
balance: "350.25"
transactions:
  - id: "1"
    title: Salário
    amount: "350.25"
    date: "2025-05-01T09:00:00Z"
`
	if err := os.WriteFile(seedFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}

	acct, err := LoadSeedAccount(seedFile)
	if err != nil {
		t.Fatalf("LoadSeedAccount failed: %v", err)
	}
	if acct.Name != "Maria" {
		t.Errorf("Expected Maria, got %s", acct.Name)
	}
	if !acct.Balance.Equal(decimal.RequireFromString("350.25")) {
		t.Errorf("Expected balance 350.25, got %s", acct.Balance.String())
	}
	if len(acct.Transactions) != 1 || acct.Transactions[0].Date != "2025-05-01T09:00:00Z" {
		t.Errorf("Transactions not loaded: %+v", acct.Transactions)
	}
}

func TestLoadSeedAccount_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "balance: \"10\"\n"},
		{"bad balance", "name: X\nbalance: muito\n"},
		{"bad transaction amount", "name: X\nbalance: \"10\"\ntransactions:\n  - id: \"1\"\n    title: t\n    amount: nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seedFile := filepath.Join(t.TempDir(), "seed.yaml")
			if err := os.WriteFile(seedFile, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("Failed to write seed file: %v", err)
			}
			if _, err := LoadSeedAccount(seedFile); err == nil {
				t.Error("Expected error for invalid seed file")
			}
		})
	}
}
