package main

import (
	"OrderKeeper/internal/config"
	"OrderKeeper/internal/handlers"
	"OrderKeeper/internal/middleware"
	"OrderKeeper/internal/repo"
	"OrderKeeper/internal/service"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	if cfg.SheetsAPIURL == "" {
		sugar.Fatalw("SHEETS_API_URL is required")
	}

	client := repo.NewClient(cfg.SheetsAPIURL, cfg.SheetsAPIToken, time.Duration(cfg.SheetsTimeoutSec)*time.Second, sugar)

	orderRepo := repo.NewOrderRepository(client)
	itemRepo := repo.NewItemRepository(client)
	userRepo := repo.NewUserRepository(client)
	statsRepo := repo.NewStatsRepository(client)
	notifier := repo.NewNotifier(client)

	orderService := service.NewOrderService(orderRepo, notifier, sugar)
	itemService := service.NewItemService(itemRepo)
	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(statsRepo)

	h := handlers.NewHandler(orderService, itemService, userService, statsService, sugar, cfg)

	sugar.Infow(
		"Starting server",
		"addr", cfg.BaseURL,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"SheetsAPIURL", cfg.SheetsAPIURL,
		"SheetsTimeoutSec", cfg.SheetsTimeoutSec,
	)

	if err := http.ListenAndServe(cfg.BaseURL, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
