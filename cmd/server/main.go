package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sprite-server/internal/engine"
	"sprite-server/internal/infrastructure/storage"
	"sprite-server/internal/server"
	"sprite-server/internal/version"
	"sprite-server/pkg/logger"
)

const autosaveSlot = "autosave"

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var loadSlot string
	cfg := engine.NewConfig()

	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Initial world seed (0 for random)")
	flag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP port")
	flag.StringVar(&cfg.SavePath, "save", cfg.SavePath, "Path to the save database")
	flag.StringVar(&loadSlot, "load", "", "Save slot to restore on boot")
	flag.Parse()

	if port := os.Getenv("SPRITE_PORT"); port != "" {
		cfg.Port = port
	}

	logger.Log.Info("Starting Sprite Server...")
	logger.Log.Info(version.String())

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}

	// 2. Инициализация ядра
	game, err := engine.NewGame(cfg, engine.PlaceholderRenderer{})
	if err != nil {
		logger.Log.Fatal("World generation error:", err)
	}

	store, err := storage.Open(cfg.SavePath)
	if err != nil {
		logger.Log.Fatal("Save store error:", err)
	}
	defer store.Close()

	if loadSlot != "" {
		if err := game.Load(store, loadSlot); err != nil {
			logger.Log.Fatalf("Failed to load slot %q: %v", loadSlot, err)
		}
		logger.Log.Infof("💾 Restored slot %q", loadSlot)
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(game, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Сначала гасим слушатель, и только потом сохраняемся - через тот же
	// лок, что и обработка команд: мир нельзя читать параллельно с ходом.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("HTTP shutdown incomplete")
	}

	if err := srv.SaveUnderLock(store, autosaveSlot); err != nil {
		logger.Log.WithError(err).Error("Autosave failed")
	} else {
		logger.Log.Infof("💾 Autosaved to slot %q", autosaveSlot)
	}

	logger.Log.Info("Done.")
}
