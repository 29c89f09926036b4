package service

import (
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
}

// NewServices builds the services on top of storages. The auth service is
// decorated with request validation and, when recorder is not nil, with
// outcome metrics.
func NewServices(storages *store.Storages, cfg config.App, recorder OutcomeRecorder, logger *logger.Logger) (*Services, error) {
	tokenCodec, err := crypto.NewTokenCodec(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating token codec: %w", err)
	}

	var authService AuthService = NewAuthService(
		storages.AccountRepository,
		storages.TaskRemover,
		storages.Transactor,
		crypto.NewPasswordHasher(cfg.PasswordHashCost),
		tokenCodec,
		cfg,
		logger,
	)
	authService = NewAuthValidationService().Wrap(authService)
	if recorder != nil {
		authService = NewAuthMetricsService(recorder).Wrap(authService)
	}

	return &Services{
		AuthService: authService,
	}, nil
}
