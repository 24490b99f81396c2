// Package middlewarectx содержит HTTP middleware для работы с сессией пользователя.
//
// Session разбирает сессионную куку, проверяет подпись токена и разрешает
// идентификатор в пользователя через хранилище; найденный пользователь кладётся
// в контекст запроса. RequireUser пускает дальше только аутентифицированные
// запросы, остальных отправляет на страницу входа.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/login-manager/internal/apperr"
	"github.com/magabrotheeeer/login-manager/internal/lib/flash"
	"github.com/magabrotheeeer/login-manager/internal/lib/session"
	"github.com/magabrotheeeer/login-manager/internal/lib/sl"
	"github.com/magabrotheeeer/login-manager/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// userKey — ключ для текущего пользователя в контексте.
const userKey Key = "user"

// UserProvider описывает интерфейс разрешения идентификатора в пользователя.
type UserProvider interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Session возвращает HTTP middleware, который связывает запрос с пользователем.
//
// Запрос без куки, с невалидным токеном или с токеном удалённого пользователя
// проходит дальше анонимным; протухшая кука при этом сбрасывается. Ошибка
// хранилища завершает запрос со статусом 500.
func Session(maker session.Maker, users UserProvider, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Session"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr, ok := session.TokenFromRequest(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := maker.Parse(tokenStr)
			if err != nil {
				log.Debug("invalid or expired session token", sl.Err(err))
				session.ClearCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, apperr.ErrUserNotFound) {
					log.Debug("session user no longer exists", slog.Int64("user_id", claims.UserID))
					session.ClearCookie(w)
					next.ServeHTTP(w, r)
					return
				}
				log.Error("failed to resolve session user", sl.Err(err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireUser пропускает только запросы с установленной сессией.
// Анонимный запрос получает уведомление и редирект на /login.
func RequireUser(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireUser"

			if CurrentUser(r.Context()) == nil {
				log.Info("login required",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				flash.Set(w, "login required")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CurrentUser возвращает пользователя текущего запроса или nil для анонима.
func CurrentUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// WithUser кладёт пользователя в контекст запроса.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
