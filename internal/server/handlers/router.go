package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/gophbook/internal/server/jwt"
	"github.com/iudanet/gophbook/internal/server/middleware"
	"github.com/iudanet/gophbook/internal/server/storage"
)

// RouterConfig зависимости HTTP API каталога
type RouterConfig struct {
	Logger    *slog.Logger
	Users     storage.UserStorage
	Directory storage.DirectoryStorage
	DB        Pinger
	Tokens    *jwt.Service
	Limiter   *middleware.RateLimiter // общий лимит запросов с одного IP
	Version   string
}

// NewRouter собирает маршруты /v1 и цепочку middleware
func NewRouter(cfg RouterConfig) *mux.Router {
	authHandler := NewAuthHandler(cfg.Logger, cfg.Users, cfg.Tokens)
	healthHandler := NewHealthHandler(cfg.Logger, cfg.DB, cfg.Version)
	directoryHandler := NewDirectoryHandler(cfg.Logger, cfg.Directory)

	router := mux.NewRouter()
	router.Use(
		middleware.RecoveryMiddleware(cfg.Logger),
		middleware.LoggingWithSkip(cfg.Logger, []string{"/v1/health"}),
		middleware.RateLimitByPathMiddleware([]middleware.PathRateLimit{
			{Path: "/v1/auth/login", Rate: 10, Window: time.Minute},
			{Path: "/v1/auth/register", Rate: 5, Window: time.Minute},
		}, cfg.Limiter, cfg.Logger),
	)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	v1.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	v1.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	protected := v1.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.Logger, cfg.Tokens))

	protected.HandleFunc("/people", directoryHandler.ListPeople).Methods(http.MethodGet)
	protected.HandleFunc("/people", directoryHandler.CreatePerson).Methods(http.MethodPost)
	protected.HandleFunc("/people/{id}", directoryHandler.UpdatePerson).Methods(http.MethodPut)
	protected.HandleFunc("/people/{id}", directoryHandler.DeletePerson).Methods(http.MethodDelete)

	protected.HandleFunc("/contactGroups", directoryHandler.ListGroups).Methods(http.MethodGet)
	protected.HandleFunc("/contactGroups", directoryHandler.CreateGroup).Methods(http.MethodPost)
	protected.HandleFunc("/contactGroups/{id}", directoryHandler.UpdateGroup).Methods(http.MethodPut)
	protected.HandleFunc("/contactGroups/{id}", directoryHandler.DeleteGroup).Methods(http.MethodDelete)

	return router
}
