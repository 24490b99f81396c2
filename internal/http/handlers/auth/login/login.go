// Package login реализует HTTP-обработчик страницы входа.
//
// GET отдаёт форму, POST проверяет учётные данные через сервис аутентификации.
// При успехе пользователь получает подписанную сессионную куку и редирект на
// главную; при любой ошибке учётных данных форма показывается заново с одним
// и тем же общим сообщением, не раскрывающим, существует ли пользователь.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/login-manager/internal/apperr"
	"github.com/magabrotheeeer/login-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/login-manager/internal/http/view"
	"github.com/magabrotheeeer/login-manager/internal/lib/flash"
	"github.com/magabrotheeeer/login-manager/internal/lib/session"
	"github.com/magabrotheeeer/login-manager/internal/lib/sl"
	"github.com/magabrotheeeer/login-manager/internal/models"
)

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы страницы входа.
type Handler struct {
	log      *slog.Logger
	auth     Service
	maker    session.Maker
	tokenTTL time.Duration
	view     *view.View
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, auth Service, maker session.Maker, tokenTTL time.Duration, v *view.View) *Handler {
	return &Handler{
		log:      log,
		auth:     auth,
		maker:    maker,
		tokenTTL: tokenTTL,
		view:     v,
	}
}

// Form отдаёт форму входа.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, http.StatusOK, view.PageLogin, h.pageData(w, r, nil, ""))
}

// Submit принимает отправленную форму входа.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		data := h.pageData(w, r, nil, "invalid form submission")
		h.view.Render(w, http.StatusBadRequest, view.PageLogin, data)
		return
	}

	username := r.PostFormValue("username")
	rawPassword := r.PostFormValue("password")
	form := map[string]string{"username": username}

	user, err := h.auth.Login(r.Context(), username, rawPassword)
	if err != nil {
		var authErr apperr.AuthError
		if errors.As(err, &authErr) {
			log.Info("login rejected")
			data := h.pageData(w, r, form, "invalid username or password")
			h.view.Render(w, http.StatusUnauthorized, view.PageLogin, data)
			return
		}

		log.Error("login failed", sl.Err(err))
		h.view.RenderError(w, h.pageData(w, r, nil, ""))
		return
	}

	token, err := h.maker.Issue(user.ID)
	if err != nil {
		log.Error("failed to issue session token", sl.Err(err))
		h.view.RenderError(w, h.pageData(w, r, nil, ""))
		return
	}

	log.Info("login success", slog.Int64("user_id", user.ID), slog.String("username", user.Username))
	session.WriteCookie(w, token, h.tokenTTL)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) pageData(w http.ResponseWriter, r *http.Request, form map[string]string, formErr string) view.Data {
	data := view.Data{
		Title: "Login",
		Flash: flash.Pop(w, r),
		Form:  form,
		Error: formErr,
	}
	if user := middlewarectx.CurrentUser(r.Context()); user != nil {
		data.Username = user.Username
	}
	return data
}
