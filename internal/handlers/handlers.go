package handlers

import (
	"AdminDashboard/internal/config"
	"AdminDashboard/internal/middleware"
	"AdminDashboard/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	userHandler := NewUserHandler(userService, logger, config)

	r.Use(middleware.WithAuth(config.AuthSecret))
	r.Use(userHandler.WithCurrentUser)

	// вход и регистрация открыты
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.With(middleware.RequireAuth).Get("/api/user/me", userHandler.Me)

	// управление пользователями: только admin
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Patch("/{id}", userHandler.SetRole)
		r.Put("/{id}/password", userHandler.SetPassword)
		r.Delete("/{id}", userHandler.Delete)
	})

	return &Handler{Router: r}
}
