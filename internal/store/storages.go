package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// Storages bundles the repositories the services depend on, built for the
// configured storage driver.
type Storages struct {
	AccountRepository AccountRepository
	TaskRemover       OwnedDataRemover
	Transactor        Transactor

	closers []func(ctx context.Context) error
}

// NewStorages connects to the backend selected by cfg.Driver and builds the
// repositories on top of it. PostgreSQL migrations run before returning.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(ctx); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}

		return &Storages{
			AccountRepository: NewAccountRepository(db, log),
			TaskRemover:       NewTaskRemover(db),
			Transactor:        db,
			closers: []func(ctx context.Context) error{
				func(context.Context) error { return db.Close() },
			},
		}, nil
	case config.DriverMongo:
		m, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}

		return &Storages{
			AccountRepository: NewMongoAccountRepository(m),
			TaskRemover:       NewMongoTaskRemover(m),
			Transactor:        m,
			closers:           []func(ctx context.Context) error{m.Close},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Driver)
	}
}

// Close releases every underlying connection.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
