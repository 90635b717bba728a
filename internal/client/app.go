// Package client wires the sales analysis service: it logs in to the sales
// data server, fetches the records, asks Gemini for an analysis and serves
// the result over HTTP.
package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/salesinsight/internal/client/client"
	"github.com/dmitrijs2005/salesinsight/internal/client/config"
	"github.com/dmitrijs2005/salesinsight/internal/client/httpserver"
	"github.com/dmitrijs2005/salesinsight/internal/client/llm"
	"github.com/dmitrijs2005/salesinsight/internal/client/services"
	"github.com/dmitrijs2005/salesinsight/internal/logging"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	analysis *services.AnalysisService
}

func NewApp(c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	data := client.NewSalesClient(c.ServerURL, c.DataRequestTimeout)
	model := llm.NewGeminiClient(llm.GeminiConfig{
		BaseURL: c.GeminiBaseURL,
		Model:   c.GeminiModel,
		APIKey:  c.GeminiAPIKey,
		Timeout: c.LLMRequestTimeout,
	})
	analysis := services.NewAnalysisService(data, model,
		services.Credentials{Username: c.Username, Password: c.Password}, logger)

	return &App{config: c, logger: logger, analysis: analysis}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpserver.NewHTTPServer(app.config.EndpointAddr, app.logger, app.analysis)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "sales_server", app.config.ServerURL, "model", app.config.GeminiModel)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(ctx, "App stopped")
}
