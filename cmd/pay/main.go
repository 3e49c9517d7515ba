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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"banana-bank-go/internal/account"
	"banana-bank-go/internal/common"
	"banana-bank-go/internal/config"
	"banana-bank-go/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type payRequest struct {
	barcode string
	amount  decimal.Decimal // major units
	cents   int64
}

func parseAndValidateFlags() (*payRequest, error) {
	barcodeFlag := flag.String("barcode", "", "Boleto barcode (required)")
	amountFlag := flag.String("amount", "", "Amount to pay in R$ (required)")
	flag.Parse()

	barcode := strings.TrimSpace(*barcodeFlag)
	if barcode == "" {
		return nil, fmt.Errorf("--barcode is required")
	}
	if *amountFlag == "" {
		return nil, fmt.Errorf("--amount is required")
	}

	amount, err := decimal.NewFromString(*amountFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid amount format: %w", err)
	}
	amount = amount.Abs()

	cents := amount.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return nil, fmt.Errorf("amount cannot have more than two decimal places")
	}
	if cents.IsZero() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	return &payRequest{barcode: barcode, amount: amount, cents: cents.IntPart()}, nil
}

func fail(message string) {
	common.PrintHeader("OPS", common.DefaultWidth)
	fmt.Println(message)
	common.PrintSeparator("=", common.DefaultWidth)
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

	res := services.Payments.Resolution()
	mode := "backend"
	if res.Demo {
		mode = "demo"
	}
	zap.L().Info("Starting bill payment",
		zap.String("mode", mode),
		zap.String("base_url", res.BaseURL),
		zap.String("amount", req.amount.String()))

	// Pre-check the balance so an obviously doomed payment never
	// reaches the backend.
	acct, err := services.AccountStore.Get(ctx)
	if err != nil {
		zap.L().Fatal("Failed to load account", zap.Error(err))
	}
	if acct == nil {
		fmt.Println("Nenhuma sessão ativa. Faça login primeiro.")
		return
	}
	if acct.Balance.LessThan(req.amount) {
		fail("ops, você não tem saldo para essa transação!")
		return
	}

	payment, err := services.Payments.CreatePayment(ctx, models.CreatePaymentParams{
		Amount:   req.cents,
		Method:   "boleto",
		Metadata: map[string]interface{}{"barcode": req.barcode},
	})
	if err != nil {
		fail(err.Error())
		return
	}

	zap.L().Info("Payment created",
		zap.Int64("id", payment.Id),
		zap.String("status", string(payment.Status)))

	// Simulate the processing window before the confirmation arrives.
	time.Sleep(cfg.Payment.ProcessingDelay)

	confirmed, err := services.Payments.ConfirmPayment(ctx, payment.Id, models.PaymentPaid)
	if err != nil {
		fail(err.Error())
		return
	}
	if confirmed.Status != models.PaymentPaid {
		fail("Pagamento falhou. Tente novamente.")
		return
	}

	updated, err := services.Ledger.DebitAndRecord(ctx, account.DebitParams{
		Title:  "Pagamento — boleto",
		Amount: req.amount,
	})
	if err != nil {
		var debitErr *account.DebitError
		if errors.As(err, &debitErr) {
			fail(debitErr.Message)
			return
		}
		zap.L().Fatal("Failed to record payment debit", zap.Error(err))
	}

	common.PrintHeader("PAGAMENTO REALIZADO", common.DefaultWidth)
	fmt.Println("Pagamento realizado com sucesso")
	fmt.Printf("Pagamento:  #%d (%s)\n", confirmed.Id, confirmed.Status)
	fmt.Printf("Valor:      %s\n", common.FormatBRL(req.amount))
	fmt.Printf("Novo saldo: %s\n", common.FormatBRL(updated.Balance))
	common.PrintSeparator("=", common.DefaultWidth)
}
