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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"banana-bank-go/internal/common"
	"banana-bank-go/internal/config"
	"banana-bank-go/internal/server"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	dbService, err := common.InitializeDatabaseOnly(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize database", zap.Error(err))
	}

	app := server.New(dbService)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		zap.L().Info("Payment backend starting", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			zap.L().Error("Server stopped", zap.Error(err))
		}
	}()

	<-stop
	zap.L().Info("Shutting down payment backend")

	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		zap.L().Error("Server shutdown failed", zap.Error(err))
	}

	dbService.Close()
	zap.L().Info("Payment backend exited")
}
