// Package logout реализует HTTP-обработчик выхода из учётной записи.
// Маршрут защищён middleware RequireUser, поэтому сюда попадают
// только запросы с активной сессией.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/login-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/login-manager/internal/lib/session"
)

// Handler обрабатывает запросы выхода.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP сбрасывает сессионную куку и перенаправляет на главную страницу.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	user := middlewarectx.CurrentUser(r.Context())
	h.log.Info("user logged out",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Int64("user_id", user.ID),
	)

	session.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
