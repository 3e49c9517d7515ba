package account

import (
	"context"
	"errors"
	"fmt"

	"banana-bank-go/internal/models"

	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned when the login check fails.
var ErrInvalidCredentials = errors.New("Email ou senha inválidos")

// Login validates the credentials against the configured test user and,
// on success, persists the seed account as the active session.
func Login(ctx context.Context, store Store, cfg models.LoginConfig, seed *models.Account, email, password string) (*models.Account, error) {
	if email != cfg.Email || password != cfg.Password {
		return nil, ErrInvalidCredentials
	}

	if err := store.Save(ctx, seed); err != nil {
		return nil, fmt.Errorf("unable to persist session account: %w", err)
	}

	zap.L().Info("User logged in", zap.String("name", seed.Name))
	return seed, nil
}

// Logout removes the persisted account record.
func Logout(ctx context.Context, store Store) error {
	return store.Remove(ctx)
}

// SetAvatar replaces the account's avatar reference, rewriting the
// whole record. An empty uri clears it.
func SetAvatar(ctx context.Context, store Store, uri string) (*models.Account, error) {
	acct, err := store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load account: %w", err)
	}
	if acct == nil {
		return nil, &DebitError{Reason: ErrNoUser, Message: msgNoUser}
	}

	updated := *acct
	updated.Avatar = uri
	if err := store.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("unable to persist account: %w", err)
	}
	return &updated, nil
}
