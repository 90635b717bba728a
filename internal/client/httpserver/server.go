// Package httpserver exposes the sales analysis service over HTTP (fiber).
package httpserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/httpx"
	"github.com/dmitrijs2005/salesinsight/internal/logging"
	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

type Analyzer interface {
	Analyze(ctx context.Context) (string, error)
}

type analysisResponse struct {
	GeminiAnalysis string `json:"gemini_analysis"`
}

type HTTPServer struct {
	address  string
	app      *fiber.App
	analyzer Analyzer
	logger   logging.Logger
}

func NewHTTPServer(address string, l logging.Logger, a Analyzer) *HTTPServer {
	s := &HTTPServer{
		address:  address,
		analyzer: a,
		logger:   l.With("module", "http_server"),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "salesclient",
		DisableStartupMessage: true,
		ErrorHandler:          httpx.ErrorHandler(s.logger),
	})
	s.app.Use(httpx.RequestLogger(s.logger))
	s.app.Get("/healthz", s.health)
	s.app.Get("/analyze-sales", s.analyzeSales)

	return s
}

func (s *HTTPServer) App() *fiber.App {
	return s.app
}

func (s *HTTPServer) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *HTTPServer) analyzeSales(c *fiber.Ctx) error {
	text, err := s.analyzer.Analyze(c.UserContext())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUpstreamUnavailable):
			return fiber.NewError(fiber.StatusServiceUnavailable,
				"Cannot connect to data server: "+cause(err, common.ErrUpstreamUnavailable))
		case errors.Is(err, common.ErrorInternal):
			return fiber.NewError(fiber.StatusInternalServerError,
				"An error occurred while communicating with Gemini: "+cause(err, common.ErrorInternal))
		}
		return err
	}
	return c.JSON(analysisResponse{GeminiAnalysis: text})
}

// cause drops the sentinel prefix from err's message.
func cause(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
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
