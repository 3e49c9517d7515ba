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

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"banana-bank-go/internal/models"
)

func Load() (*models.Config, error) {
	processingDelay, err := getEnvDuration("PAYMENT_PROCESSING_DELAY", 1200*time.Millisecond)
	if err != nil {
		return nil, err
	}

	connMaxLifetime, err := getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	connMaxIdleTime, err := getEnvDuration("DB_CONN_MAX_IDLE_TIME", 30*time.Second)
	if err != nil {
		return nil, err
	}

	pingTimeout, err := getEnvDuration("DB_PING_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	return &models.Config{
		Account: models.AccountStoreConfig{
			Path: getEnvString("ACCOUNT_STORE_PATH", "banana_user.json"),
		},
		Login: models.LoginConfig{
			Email:    getEnvString("TEST_USER_EMAIL", "teste@banana.com"),
			Password: getEnvString("TEST_USER_PASSWORD", "123456"),
			SeedFile: getEnvString("SEED_ACCOUNT_FILE", ""),
		},
		Resolver: models.ResolverConfig{
			DemoMode: getEnvBool("DEMO_MODE", false),
			APIURL:   getEnvString("API_URL", ""),
			DevHost:  getEnvString("DEV_HOST", ""),
			Platform: getEnvString("PLATFORM", "web"),
		},
		Demo: models.DemoStoreConfig{
			StateFile: getEnvString("DEMO_STATE_FILE", ""),
		},
		Payment: models.PaymentFlowConfig{
			ProcessingDelay: processingDelay,
		},
		Database: models.DatabaseConfig{
			Path:            getEnvString("DATABASE_PATH", "payments.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: connMaxLifetime,
			ConnMaxIdleTime: connMaxIdleTime,
			PingTimeout:     pingTimeout,
		},
		Server: models.ServerConfig{
			Port:            getEnvInt("PORT", 4000),
			ShutdownTimeout: shutdownTimeout,
		},
	}, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
