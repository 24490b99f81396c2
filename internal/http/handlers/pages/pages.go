// Package pages реализует обработчики статических страниц сайта:
// главная, "о нас", контакты и витрина магазина.
package pages

import (
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/login-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/login-manager/internal/http/view"
	"github.com/magabrotheeeer/login-manager/internal/lib/flash"
)

// Handler отдаёт статические страницы через общий рендерер.
type Handler struct {
	log  *slog.Logger
	view *view.View
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, v *view.View) *Handler {
	return &Handler{log: log, view: v}
}

// Index — главная страница.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.PageIndex, "Home")
}

// About — страница "о нас".
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.PageAbout, "About")
}

// Contact — страница контактов.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.PageContact, "Contact")
}

// Shop — витрина магазина.
func (h *Handler) Shop(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.PageShop, "Shop")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page, title string) {
	data := view.Data{
		Title: title,
		Flash: flash.Pop(w, r),
	}
	if user := middlewarectx.CurrentUser(r.Context()); user != nil {
		data.Username = user.Username
	}
	h.view.Render(w, http.StatusOK, page, data)
}
