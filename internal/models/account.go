package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The persisted account blob stores money as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is one immutable entry in an account's history.
// Positive amounts are credits, negative amounts are debits.
type Transaction struct {
	Id     string          `json:"id"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

// Account is the persisted per-user record: display name, current
// balance and the transaction history, newest first.
type Account struct {
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	Avatar       string          `json:"avatar,omitempty"`
	Transactions []Transaction   `json:"transactions"`
}
