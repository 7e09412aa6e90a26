package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/m-mizutani/tempbridge/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server exposing the conversion gateway
func NewServer(
	ctx context.Context,
	convertUC interfaces.ConvertUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: "localhost:8080",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	// Service summary and health check
	router.Get("/", handleRoot)

	healthHandler := NewHealthHandler(convertUC)
	router.Get("/health", healthHandler.Handle)

	// Conversion endpoints
	convertHandler := NewConvertHandler(convertUC)
	router.Get("/convert/ftc", convertHandler.HandleFahrenheitToCelsius)
	router.Post("/convert/ftc", convertHandler.HandleFahrenheitToCelsius)
	router.Get("/convert/ctf", convertHandler.HandleCelsiusToFahrenheit)
	router.Post("/convert/ctf", convertHandler.HandleCelsiusToFahrenheit)
	router.Post("/convert/batch", convertHandler.HandleBatch)

	router.NotFound(handleNotFound)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
