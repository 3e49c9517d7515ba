package main

import (
	"context"
	"flag"
	"fmt"

	"banana-bank-go/internal/account"
	"banana-bank-go/internal/common"
	"banana-bank-go/internal/config"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	avatarFlag := flag.String("avatar", "", "Avatar image URI to set")
	clearFlag := flag.Bool("clear-avatar", false, "Remove the current avatar")
	flag.Parse()

	if *avatarFlag == "" && !*clearFlag {
		zap.L().Fatal("Either --avatar or --clear-avatar is required")
	}

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}

	uri := *avatarFlag
	if *clearFlag {
		uri = ""
	}

	acct, err := account.SetAvatar(ctx, services.AccountStore, uri)
	if err != nil {
		zap.L().Fatal("Failed to update avatar", zap.Error(err))
	}

	if acct.Avatar == "" {
		fmt.Println("Avatar removido.")
	} else {
		fmt.Printf("Avatar atualizado: %s\n", acct.Avatar)
	}
}
