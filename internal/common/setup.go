package common

import (
	"context"
	"log"
	"strings"

	"banana-bank-go/internal/account"
	"banana-bank-go/internal/database"
	"banana-bank-go/internal/models"
	"banana-bank-go/internal/payments"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// init loads environment variables from .env file if it exists
func init() {
	// Try to load .env file - if it doesn't exist, that's okay
	// Environment variables can be set via other means (shell export, docker, etc.)
	if err := godotenv.Load(); err == nil {
		log.Println("✓ Loaded environment variables from .env file")
	}
}

// Services bundles the client-side collaborators: the local account
// store, the ledger operation over it, and the payment service.
type Services struct {
	AccountStore *account.FileStore
	Ledger       *account.Ledger
	Payments     *payments.Service
}

func InitializeLogger() (*zap.Logger, func()) {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	zap.ReplaceGlobals(logger)

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			if !isIgnorableSyncError(err) {
				log.Printf("Failed to sync logger: %v\n", err)
			}
		}
	}

	return logger, cleanup
}

func InitializeServices(cfg *models.Config) (*Services, error) {
	store, err := account.NewFileStore(cfg.Account)
	if err != nil {
		return nil, err
	}

	return &Services{
		AccountStore: store,
		Ledger:       account.NewLedger(store),
		Payments:     payments.NewService(cfg.Resolver, payments.NewDemoStore(cfg.Demo)),
	}, nil
}

// InitializeDatabaseOnly initializes just the backend database service.
// Used by the payment backend, which never touches the local account.
func InitializeDatabaseOnly(ctx context.Context, cfg *models.Config) (*database.Service, error) {
	dbService, err := database.NewService(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return dbService, nil
}

func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/stderr: inappropriate ioctl for device") ||
		strings.Contains(msg, "sync /dev/stdout: inappropriate ioctl for device")
}
