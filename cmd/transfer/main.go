package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"banana-bank-go/internal/account"
	"banana-bank-go/internal/common"
	"banana-bank-go/internal/config"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type transferRequest struct {
	bank    string
	account string
	amount  decimal.Decimal
}

func parseAndValidateFlags() (*transferRequest, error) {
	bankFlag := flag.String("bank", "", "Destination bank name")
	accountFlag := flag.String("account", "", "Destination account number")
	amountFlag := flag.String("amount", "", "Amount to transfer in R$ (required)")
	flag.Parse()

	if *amountFlag == "" {
		return nil, fmt.Errorf("--amount is required")
	}

	amount, err := decimal.NewFromString(*amountFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid amount format: %w", err)
	}

	return &transferRequest{
		bank:    strings.TrimSpace(*bankFlag),
		account: strings.TrimSpace(*accountFlag),
		amount:  amount,
	}, nil
}

// transferTitle joins the non-empty counterparty details into the
// transaction title, e.g. "Transferência — Nubank — 1234-5".
func transferTitle(req *transferRequest) string {
	parts := []string{"Transferência"}
	if req.bank != "" {
		parts = append(parts, req.bank)
	}
	if req.account != "" {
		parts = append(parts, req.account)
	}
	if len(parts) == 1 {
		return "Transferência"
	}
	return strings.Join(parts, " — ")
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	req, err := parseAndValidateFlags()
	if err != nil {
		zap.L().Fatal("Invalid flags", zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}

	acct, err := services.Ledger.DebitAndRecord(ctx, account.DebitParams{
		Title:  transferTitle(req),
		Amount: req.amount,
	})
	if err != nil {
		var debitErr *account.DebitError
		if errors.As(err, &debitErr) {
			common.PrintHeader("OPS", common.DefaultWidth)
			fmt.Println(debitErr.Message)
			common.PrintSeparator("=", common.DefaultWidth)
			return
		}
		zap.L().Fatal("Transfer failed", zap.Error(err))
	}

	common.PrintHeader("TRANSFERÊNCIA REALIZADA", common.DefaultWidth)
	fmt.Println("Transferência realizada com sucesso")
	fmt.Printf("Valor:      %s\n", common.FormatBRL(req.amount.Abs()))
	fmt.Printf("Novo saldo: %s\n", common.FormatBRL(acct.Balance))
	common.PrintSeparator("=", common.DefaultWidth)
}
