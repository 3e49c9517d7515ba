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

	"go.uber.org/zap"
)

type loginRequest struct {
	email    string
	password string
	logout   bool
}

func parseFlags() (*loginRequest, error) {
	emailFlag := flag.String("email", "", "User email")
	passwordFlag := flag.String("password", "", "User password")
	logoutFlag := flag.Bool("logout", false, "End the current session instead of logging in")
	flag.Parse()

	if *logoutFlag {
		return &loginRequest{logout: true}, nil
	}
	if *emailFlag == "" || *passwordFlag == "" {
		return nil, fmt.Errorf("both --email and --password are required (or use --logout)")
	}
	return &loginRequest{email: *emailFlag, password: *passwordFlag}, nil
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	req, err := parseFlags()
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

	if req.logout {
		if err := account.Logout(ctx, services.AccountStore); err != nil {
			zap.L().Fatal("Logout failed", zap.Error(err))
		}
		fmt.Println("Sessão encerrada.")
		return
	}

	seed, err := common.LoadSeedAccount(cfg.Login.SeedFile)
	if err != nil {
		zap.L().Fatal("Failed to load seed account", zap.Error(err))
	}

	acct, err := account.Login(ctx, services.AccountStore, cfg.Login, seed, req.email, req.password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			common.PrintHeader("LOGIN FAILED", common.DefaultWidth)
			fmt.Println(err.Error())
			common.PrintSeparator("=", common.DefaultWidth)
			return
		}
		zap.L().Fatal("Login failed", zap.Error(err))
	}

	common.PrintHeader("LOGIN OK", common.DefaultWidth)
	fmt.Printf("Bem-vindo, %s\n", acct.Name)
	fmt.Printf("Saldo disponível: %s\n", common.FormatBRL(acct.Balance))
	common.PrintSeparator("=", common.DefaultWidth)
}
