package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/site-admin/config"
	"github.com/daniilsolovey/site-admin/internal/db"
	"github.com/daniilsolovey/site-admin/internal/mailer"
	"github.com/daniilsolovey/site-admin/internal/rest"
	"github.com/daniilsolovey/site-admin/internal/rpc"
	"github.com/daniilsolovey/site-admin/internal/siteadmin"
	"github.com/daniilsolovey/site-admin/internal/upload"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	repo := db.New(dbConnect)

	smtp := mailer.NewSMTP(cfg.Email, logger)

	processor, err := upload.NewProcessor(cfg.Upload, logger)
	if err != nil {
		return nil, fmt.Errorf("init upload processor: %w", err)
	}

	manager := siteadmin.NewManager(repo, smtp, cfg.Campaign, cfg.Email.AdminEmail, logger)

	rpcServer := rpc.New(logger, manager)
	handler := rest.NewHandler(manager, processor, cfg, logger)

	e := handler.RegisterRoutes(rpcServer)

	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN})
		if err != nil {
			return nil, fmt.Errorf("init sentry: %w", err)
		}
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
