package handlers

import (
	"OrderKeeper/internal/config"
	"OrderKeeper/internal/middleware"
	"OrderKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	orderService *service.OrderService,
	itemService *service.ItemService,
	userService *service.UserService,
	statsService *service.StatsService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	orderHandler := NewOrderHandler(orderService, logger)
	itemHandler := NewItemHandler(itemService, logger)
	userHandler := NewUserHandler(userService, logger)
	statsHandler := NewStatsHandler(statsService, logger)

	// Catalog
	r.Get("/construction-items", itemHandler.ActiveItems)

	// Orders
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orderHandler.List)
		r.Post("/", orderHandler.Create)
		r.Get("/archive", orderHandler.ListArchived)
		r.Get("/{id}/items", itemHandler.OrderItems)
		r.Patch("/{id}/key-status", orderHandler.UpdateKeyStatus)
	})

	// Statistics
	r.Get("/statistics", statsHandler.Get)

	// Users
	r.Put("/users/update", userHandler.Update)
	r.Delete("/users/delete", userHandler.Delete)

	return &Handler{Router: r}
}
