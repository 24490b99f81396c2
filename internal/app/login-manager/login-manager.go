package loginmanager

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/login-manager/internal/cache"
	"github.com/magabrotheeeer/login-manager/internal/config"
	"github.com/magabrotheeeer/login-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/login-manager/internal/http/view"
	"github.com/magabrotheeeer/login-manager/internal/lib/session"
	"github.com/magabrotheeeer/login-manager/internal/migrations"
	authservice "github.com/magabrotheeeer/login-manager/internal/services/auth"
	"github.com/magabrotheeeer/login-manager/internal/storage"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	// Кэш необязателен: без Redis сессия разрешается напрямую через базу.
	var users middlewarectx.UserProvider = db
	if cfg.AddressRedis != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		users = cache.NewCachedUserProvider(cacheRedis, db, logger)
	}

	sessionMaker := session.NewMaker(cfg.SecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db)

	pageView, err := view.New(logger)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, pageView, authService, sessionMaker, users, cfg.TokenTTL)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
