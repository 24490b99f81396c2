// Package register реализует HTTP-обработчик страницы регистрации.
//
// GET отдаёт форму, POST проверяет поля, создаёт пользователя через сервис
// аутентификации и при успехе перенаправляет на страницу входа с уведомлением.
// Ошибки валидации и занятые username/email показываются рядом с полями формы.
package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/login-manager/internal/apperr"
	"github.com/magabrotheeeer/login-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/login-manager/internal/http/view"
	"github.com/magabrotheeeer/login-manager/internal/lib/flash"
	"github.com/magabrotheeeer/login-manager/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, username, email, password string) (int64, error)
}

// Handler обрабатывает HTTP-запросы страницы регистрации.
type Handler struct {
	log  *slog.Logger
	auth Service
	view *view.View
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, auth Service, v *view.View) *Handler {
	return &Handler{
		log:  log,
		auth: auth,
		view: v,
	}
}

// Form отдаёт пустую форму регистрации.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, http.StatusOK, view.PageRegister, h.pageData(w, r, nil, nil, ""))
}

// Submit принимает отправленную форму регистрации.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		data := h.pageData(w, r, nil, nil, "invalid form submission")
		h.view.Render(w, http.StatusBadRequest, view.PageRegister, data)
		return
	}

	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	rawPassword := r.PostFormValue("password")
	form := map[string]string{"username": username, "email": email}

	id, err := h.auth.Register(r.Context(), username, email, rawPassword)
	if err != nil {
		var verrs apperr.ValidationErrors
		if errors.As(err, &verrs) {
			log.Info("registration rejected", slog.String("reason", verrs.Error()))
			data := h.pageData(w, r, form, fieldErrors(verrs), "")
			h.view.Render(w, http.StatusUnprocessableEntity, view.PageRegister, data)
			return
		}

		var conflict apperr.ConflictError
		if errors.As(err, &conflict) {
			log.Info("registration conflict", slog.String("field", conflict.Field))
			fieldErrs := map[string]string{conflict.Field: conflict.Field + " taken"}
			data := h.pageData(w, r, form, fieldErrs, "")
			h.view.Render(w, http.StatusConflict, view.PageRegister, data)
			return
		}

		log.Error("registration failed", sl.Err(err))
		h.view.RenderError(w, h.pageData(w, r, nil, nil, ""))
		return
	}

	log.Info("user registered", slog.Int64("user_id", id), slog.String("username", username))
	flash.Set(w, "registration successful, please log in")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) pageData(w http.ResponseWriter, r *http.Request, form, fieldErrs map[string]string, formErr string) view.Data {
	data := view.Data{
		Title:  "Register",
		Flash:  flash.Pop(w, r),
		Form:   form,
		Errors: fieldErrs,
		Error:  formErr,
	}
	if user := middlewarectx.CurrentUser(r.Context()); user != nil {
		data.Username = user.Username
	}
	return data
}

// fieldErrors раскладывает нарушения валидации по именам полей,
// для каждого поля остаётся первое нарушение.
func fieldErrors(verrs apperr.ValidationErrors) map[string]string {
	result := make(map[string]string, len(verrs))
	for _, v := range verrs {
		if _, ok := result[v.Field]; !ok {
			result[v.Field] = v.Reason
		}
	}
	return result
}
