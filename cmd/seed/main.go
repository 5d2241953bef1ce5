package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shrine-functions/internal/config"
	"github.com/shrine-functions/internal/pkg/logger"
	"github.com/shrine-functions/internal/repository/store"
	"go.uber.org/zap"
)

// seed наполняет коллекцию святилищ из JSON-файла (SEED_PATH) для локальной разработки
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	shrines, err := store.LoadSeedFile(cfg.Seed.Path)
	if err != nil {
		log.Fatal("Failed to load seed file", zap.String("path", cfg.Seed.Path), zap.Error(err))
	}

	st, err := store.Open(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to shrine store", zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error("Failed to close shrine store", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := st.EnsureSchema(ctx); err != nil {
		log.Error("Schema initialization failed", zap.Error(err))
		return
	}

	if err := st.Writer.Upsert(ctx, shrines); err != nil {
		log.Error("Seeding failed", zap.Error(err))
		return
	}

	log.Info("Seeding complete",
		zap.String("driver", st.Driver),
		zap.String("collection", cfg.Store.Collection),
		zap.Int("count", len(shrines)))
}
