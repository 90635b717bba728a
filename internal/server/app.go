// Package server initializes and runs the sales data server: it validates the
// configuration, selects the credential store and sales source, and serves the
// HTTP API until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/salesinsight/internal/logging"
	"github.com/dmitrijs2005/salesinsight/internal/server/auth"
	"github.com/dmitrijs2005/salesinsight/internal/server/config"
	"github.com/dmitrijs2005/salesinsight/internal/server/httpserver"
	"github.com/dmitrijs2005/salesinsight/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/salesinsight/internal/server/repositories/users"
	"github.com/dmitrijs2005/salesinsight/internal/server/sales"
	"github.com/dmitrijs2005/salesinsight/internal/server/services"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	authService  *services.AuthService
	salesService *services.SalesService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger}

	repo, err := app.initUserRepository(ctx)
	if err != nil {
		return nil, err
	}

	source, err := app.initSalesSource(ctx)
	if err != nil {
		app.close()
		return nil, err
	}

	tc := auth.TokenConfig{
		SecretKey: []byte(c.SecretKey),
		Lifetime:  c.AccessTokenValidityDuration,
		Issuer:    c.TokenIssuer,
	}
	issuer, err := auth.NewIssuer(tc)
	if err != nil {
		app.close()
		return nil, err
	}
	verifier, err := auth.NewVerifier(tc)
	if err != nil {
		app.close()
		return nil, err
	}

	app.authService = services.NewAuthService(repo, issuer, verifier, logger)
	app.salesService = services.NewSalesService(source, logger)

	return app, nil
}

func (app *App) initUserRepository(ctx context.Context) (users.Repository, error) {
	if app.config.DatabaseDSN != "" {
		db, err := repomanager.OpenPostgres(ctx, app.config.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		m := repomanager.NewPostgresRepositoryManager()
		if err := m.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
		app.db = db
		app.logger.Info(ctx, "credential store: postgres")
		return m.Users(db), nil
	}

	repo, err := users.LoadSeedFile(app.config.UsersFile)
	if err != nil {
		return nil, fmt.Errorf("users file error: %w", err)
	}
	app.logger.Info(ctx, "credential store: users file", "path", app.config.UsersFile, "users", repo.Len())
	return repo, nil
}

func (app *App) initSalesSource(ctx context.Context) (sales.Source, error) {
	c := app.config
	switch c.DataSource {
	case config.DataSourceS3:
		src, err := sales.NewS3Source(ctx, sales.S3Config{
			Bucket:       c.S3Bucket,
			Key:          c.S3Key,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
		})
		if err != nil {
			return nil, err
		}
		app.logger.Info(ctx, "sales source: s3", "source", src.Name())
		return src, nil
	default:
		app.logger.Info(ctx, "sales source: file", "path", c.CSVPath)
		return sales.NewFileSource(c.CSVPath), nil
	}
}

func (app *App) close() {
	if app.db != nil {
		_ = app.db.Close()
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpserver.NewHTTPServer(app.config.EndpointAddr, app.logger, app.authService, app.salesService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.close()

	app.logger.Info(ctx, "Starting app...")

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
