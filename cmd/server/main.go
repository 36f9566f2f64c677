package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/agent"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/config"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/schema"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/server"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/version"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/village"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Конфигурация из окружения
	conf, err := config.Load()
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}

	logger.Log.Info("Starting AI Village...")
	logger.Log.Info(version.String())

	// 2. Конфиг движка
	cfg := engine.NewConfig()
	if conf.Seed != 0 {
		cfg.Seed = conf.Seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", cfg.Seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	if conf.TickMS > 0 {
		cfg.TickInterval = time.Duration(conf.TickMS) * time.Millisecond
	}
	cfg.HistoryCapacity = conf.UndoCapacity
	cfg.DevMode = conf.DevMode

	// 3. Инициализация ядра
	gameService := engine.NewService(cfg)

	// Пользовательские схемы поверх встроенных
	if conf.SchemaDir != "" {
		loaded, err := schema.LoadDir(gameService.Schemas, conf.SchemaDir)
		if err != nil {
			logger.Log.Fatal("Schema load error: ", err)
		}
		if loaded > 0 {
			// YAML мог переопределить схему целиком - перепривязываем мутаторы
			village.RegisterMutators(gameService.Schemas)
			logger.Log.Infof("Loaded %d schema overrides from %s", loaded, conf.SchemaDir)
		}
	}

	gameService.Start()

	// 4. Headless-агенты
	bots := agent.SpawnCrew(gameService, conf.Agents)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 5. Запуск сервера
	srv := server.New(gameService, conf.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	for _, b := range bots {
		b.Stop()
	}

	logger.Log.Info("Done.")
}
