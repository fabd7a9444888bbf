package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/models"
)

type clientAuthService struct {
	accounts adapter.AccountClient
	logger   *logger.Logger
}

func NewClientAuthService(accounts adapter.AccountClient, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{accounts: accounts, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, account models.Account) error {
	if account.Login == "" || account.Password == "" {
		return ErrInvalidDataProvided
	}

	if err := a.accounts.Register(ctx, account); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*clientAuthService.Register").
			Str("login", account.Login).
			Msg("registration failed")
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return nil
}
