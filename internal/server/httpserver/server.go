// Package httpserver exposes the sales data server over HTTP (fiber).
package httpserver

import (
	"context"
	"time"

	"github.com/dmitrijs2005/salesinsight/internal/httpx"
	"github.com/dmitrijs2005/salesinsight/internal/logging"
	"github.com/dmitrijs2005/salesinsight/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.Token, error)
	VerifyToken(ctx context.Context, token string) (*models.User, error)
}

type SalesService interface {
	GetSalesData(ctx context.Context) ([]models.SalesRecord, error)
	SourceName() string
}

type HTTPServer struct {
	address string
	app     *fiber.App
	auth    AuthService
	sales   SalesService
	logger  logging.Logger
}

func NewHTTPServer(address string, l logging.Logger, as AuthService, ss SalesService) *HTTPServer {
	s := &HTTPServer{
		address: address,
		auth:    as,
		sales:   ss,
		logger:  l.With("module", "http_server"),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "salesserver",
		DisableStartupMessage: true,
		ErrorHandler:          httpx.ErrorHandler(s.logger),
	})
	s.routes()

	return s
}

func (s *HTTPServer) routes() {
	s.app.Use(httpx.RequestLogger(s.logger))

	s.app.Get("/healthz", s.health)
	s.app.Post("/token", s.login)

	s.app.Get("/get-sales-data", s.requireToken, s.getSalesData)
	s.app.Get("/users/me", s.requireToken, s.currentUser)
}

// App exposes the fiber app, mainly for app.Test.
func (s *HTTPServer) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errCh <- s.app.Listen(s.address)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.app.ShutdownWithContext(shutdownCtx)
}
