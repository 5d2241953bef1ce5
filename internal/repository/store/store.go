package store

import (
	"context"
	"fmt"

	"github.com/shrine-functions/internal/config"
	"github.com/shrine-functions/internal/domain/repository"
	"github.com/shrine-functions/internal/repository/postgres"
	redisRepo "github.com/shrine-functions/internal/repository/redis"
	"go.uber.org/zap"
)

// Store - подключение к документному хранилищу, выбранному через STORE_DRIVER.
// Создаётся один раз при старте процесса и переиспользуется всеми вызовами.
type Store struct {
	Driver  string
	Shrines repository.ShrineRepository
	Writer  repository.ShrineWriter

	ensureSchema func(ctx context.Context) error
	close        func() error
}

func Open(cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(&cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		repo, err := postgres.NewShrineRepository(db, cfg.Store.Collection)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Store{
			Driver:       cfg.Store.Driver,
			Shrines:      repo,
			Writer:       repo,
			ensureSchema: repo.EnsureSchema,
			close:        db.Close,
		}, nil

	case config.StoreDriverRedis:
		client, err := redisRepo.NewRedis(&cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		repo := redisRepo.NewShrineRepository(client, cfg.Store.Collection)
		return &Store{
			Driver:  cfg.Store.Driver,
			Shrines: repo,
			Writer:  repo,
			close:   client.Close,
		}, nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}

// EnsureSchema creates tables where the driver needs them. Redis is schemaless.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s.ensureSchema == nil {
		return nil
	}
	return s.ensureSchema(ctx)
}

func (s *Store) Health(ctx context.Context) error {
	return s.Shrines.Health(ctx)
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
