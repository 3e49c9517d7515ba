package main

import (
	"context"
	"fmt"

	"banana-bank-go/internal/common"
	"banana-bank-go/internal/config"
	"banana-bank-go/internal/models"

	"go.uber.org/zap"
)

func printTransaction(tx models.Transaction, isLast bool) {
	prefix := common.BoxPrefix(isLast)
	date := tx.Date
	if date == "" {
		date = "—"
	}
	fmt.Printf("%s %-30s %15s  (%s)\n", prefix, tx.Title, common.FormatSignedBRL(tx.Amount), date)
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}

	acct, err := services.AccountStore.Get(ctx)
	if err != nil {
		zap.L().Fatal("Failed to load account", zap.Error(err))
	}
	if acct == nil {
		fmt.Println("Nenhuma sessão ativa. Faça login primeiro.")
		return
	}

	common.PrintHeader(fmt.Sprintf("EXTRATO — %s", acct.Name), common.DefaultWidth)
	if acct.Avatar != "" {
		fmt.Printf("Avatar: %s\n", acct.Avatar)
	}
	fmt.Printf("Saldo disponível: %s\n", common.FormatBRL(acct.Balance))
	fmt.Printf("Transações: %d\n", len(acct.Transactions))
	common.PrintSeparator("-", common.DefaultWidth)

	for i, tx := range acct.Transactions {
		printTransaction(tx, i == len(acct.Transactions)-1)
	}
	common.PrintSeparator("=", common.DefaultWidth)
}
