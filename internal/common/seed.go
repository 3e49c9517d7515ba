package common

import (
	"fmt"
	"os"
	"path/filepath"

	"banana-bank-go/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

type seedTransaction struct {
	Id     string `yaml:"id"`
	Title  string `yaml:"title"`
	Amount string `yaml:"amount"`
	Date   string `yaml:"date"`
}

type seedAccount struct {
	Name         string            `yaml:"name"`
	Balance      string            `yaml:"balance"`
	Transactions []seedTransaction `yaml:"transactions"`
}

// DefaultSeedAccount is the account the login flow creates when no seed
// file is configured. Values match the original demo user.
func DefaultSeedAccount() *models.Account {
	return &models.Account{
		Name:    "Gabriel",
		Balance: decimal.RequireFromString("1978.60"),
		Transactions: []models.Transaction{
			{Id: "1", Title: "Pix recebido", Amount: decimal.NewFromInt(250)},
			{Id: "2", Title: "Compra no mercado", Amount: decimal.RequireFromString("-48.90")},
			{Id: "3", Title: "Uber", Amount: decimal.RequireFromString("-22.50")},
			{Id: "4", Title: "Salário", Amount: decimal.NewFromInt(1800)},
		},
	}
}

// LoadSeedAccount reads the seed account from a YAML file, falling back
// to the built-in default when no file is configured.
func LoadSeedAccount(seedFile string) (*models.Account, error) {
	if seedFile == "" {
		return DefaultSeedAccount(), nil
	}

	var seedPath string
	if filepath.IsAbs(seedFile) {
		seedPath = seedFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		seedPath = filepath.Join(wd, seedFile)
	}

	data, err := os.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", seedFile, err)
	}

	var seed seedAccount
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", seedFile, err)
	}

	if seed.Name == "" {
		return nil, fmt.Errorf("seed account missing name")
	}
	balance, err := decimal.NewFromString(seed.Balance)
	if err != nil {
		return nil, fmt.Errorf("seed account has invalid balance %q: %w", seed.Balance, err)
	}

	acct := &models.Account{
		Name:         seed.Name,
		Balance:      balance,
		Transactions: make([]models.Transaction, 0, len(seed.Transactions)),
	}
	for i, tx := range seed.Transactions {
		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			return nil, fmt.Errorf("seed transaction at index %d has invalid amount %q: %w", i, tx.Amount, err)
		}
		acct.Transactions = append(acct.Transactions, models.Transaction{
			Id:     tx.Id,
			Title:  tx.Title,
			Amount: amount,
			Date:   tx.Date,
		})
	}

	return acct, nil
}
