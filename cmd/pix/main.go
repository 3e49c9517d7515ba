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

	"banana-bank-go/internal/account"
	"banana-bank-go/internal/common"
	"banana-bank-go/internal/config"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type pixRequest struct {
	key    string
	amount decimal.Decimal
}

func parseAndValidateFlags() (*pixRequest, error) {
	keyFlag := flag.String("key", "", "Pix key (email, phone or random key)")
	amountFlag := flag.String("amount", "", "Amount to send in R$ (required)")
	flag.Parse()

	if *amountFlag == "" {
		return nil, fmt.Errorf("--amount is required")
	}

	amount, err := decimal.NewFromString(*amountFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid amount format: %w", err)
	}

	return &pixRequest{key: *keyFlag, amount: amount}, nil
}

func pixTitle(key string) string {
	if key == "" {
		return "Pix — transferência"
	}
	return fmt.Sprintf("Pix — %s", key)
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
		Title:  pixTitle(req.key),
		Amount: req.amount,
	})
	if err != nil {
		var debitErr *account.DebitError
		if errors.As(err, &debitErr) {
			common.PrintHeader("PIX NÃO ENVIADO", common.DefaultWidth)
			fmt.Println(debitErr.Message)
			common.PrintSeparator("=", common.DefaultWidth)
			return
		}
		zap.L().Fatal("Pix failed", zap.Error(err))
	}

	common.PrintHeader("PIX ENVIADO", common.DefaultWidth)
	fmt.Println("Seu Pix foi enviado com sucesso.")
	fmt.Printf("Valor:          %s\n", common.FormatBRL(req.amount.Abs()))
	fmt.Printf("Novo saldo:     %s\n", common.FormatBRL(acct.Balance))
	common.PrintSeparator("=", common.DefaultWidth)
}
