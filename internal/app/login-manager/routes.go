// Package loginmanager собирает приложение и регистрирует маршруты сайта.
package loginmanager

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/login-manager/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/login-manager/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/login-manager/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/login-manager/internal/http/handlers/health"
	"github.com/magabrotheeeer/login-manager/internal/http/handlers/pages"
	"github.com/magabrotheeeer/login-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/login-manager/internal/http/view"
	"github.com/magabrotheeeer/login-manager/internal/lib/session"
	authservice "github.com/magabrotheeeer/login-manager/internal/services/auth"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, pageView *view.View,
	authService *authservice.AuthService, sessionMaker session.Maker,
	users middlewarectx.UserProvider, tokenTTL time.Duration) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	pagesHandler := pages.New(logger, pageView)
	registerHandler := register.New(logger, authService, pageView)
	loginHandler := login.New(logger, authService, sessionMaker, tokenTTL, pageView)

	// Страницы сайта: сессия разрешается на каждом запросе,
	// чтобы макет знал текущего пользователя.
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.Session(sessionMaker, users, logger))

		r.Get("/", pagesHandler.Index)
		r.Get("/about", pagesHandler.About)
		r.Get("/contact", pagesHandler.Contact)
		r.Get("/shop", pagesHandler.Shop)

		r.Get("/register", registerHandler.Form)
		r.Post("/register", registerHandler.Submit)
		r.Get("/login", loginHandler.Form)
		r.Post("/login", loginHandler.Submit)

		// Группа для маршрутов, требующих активной сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RequireUser(logger))
			r.Get("/logout", logout.New(logger).ServeHTTP)
		})
	})

	r.Get("/healthz", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
}
