package main

// @title Shrine Functions API
// @version 1.0.0
// @description Вызываемые функции мобильного приложения для записи посещений святилищ.
// @description
// @description Основные возможности:
// @description - Определение ближайшего святилища по GPS (радиус 1000 м)
// @description - Генерация подписей для Instagram, X и Threads
// @description - Публикация в соцсети (пока не реализована)

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/shrine-functions/docs"
	"github.com/shrine-functions/internal/config"
	httpDelivery "github.com/shrine-functions/internal/delivery/http"
	"github.com/shrine-functions/internal/delivery/http/handler"
	"github.com/shrine-functions/internal/pkg/logger"
	"github.com/shrine-functions/internal/repository/store"
	"github.com/shrine-functions/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Shrine Functions")
	log.Info("Configuration loaded",
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("collection", cfg.Store.Collection),
	)

	// 3. Connect to the document store (one client for the process lifetime)
	st, err := store.Open(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to shrine store", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := st.Health(ctx); err != nil {
		cancel()
		log.Fatal("Shrine store health check failed", zap.Error(err))
	}
	cancel()

	log.Info("Shrine store connected", zap.String("driver", st.Driver))

	// 4. Use cases
	shrineUC := usecase.NewShrineUseCase(st.Shrines, log)
	captionUC := usecase.NewCaptionUseCase(log)
	snsUC := usecase.NewSNSUseCase(log)

	// 5. Handlers
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewShrineHandler(shrineUC, log),
		handler.NewCaptionHandler(captionUC, log),
		handler.NewSNSHandler(snsUC, log),
		handler.NewHealthHandler(st, log),
	)

	// 6. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := st.Close(); err != nil {
		log.Error("Failed to close shrine store", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
