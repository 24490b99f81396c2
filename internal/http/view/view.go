// Package view отвечает за серверный рендеринг HTML-страниц.
//
// Шаблоны вшиты в бинарник через embed: каждая страница определяет блок
// "content" и рисуется внутри общего макета base.html. Данные страницы
// передаются через структуру Data.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/login-manager/internal/lib/sl"
)

//go:embed templates/*.html
var templateFS embed.FS

// Имена страниц, известные рендереру.
const (
	PageIndex    = "index"
	PageAbout    = "about"
	PageContact  = "contact"
	PageShop     = "shop"
	PageLogin    = "login"
	PageRegister = "register"
	PageError    = "error"
)

var pageNames = []string{
	PageIndex, PageAbout, PageContact, PageShop, PageLogin, PageRegister, PageError,
}

// Data — данные, доступные макету и странице при рендеринге.
type Data struct {
	Title    string
	Username string            // Имя текущего пользователя, пустое для анонима
	Flash    string            // Одноразовое уведомление
	Form     map[string]string // Введённые значения для повторного показа формы
	Errors   map[string]string // Ошибки по полям формы
	Error    string            // Общая ошибка формы
}

// View хранит разобранные шаблоны страниц.
type View struct {
	log   *slog.Logger
	pages map[string]*template.Template
}

// New разбирает все шаблоны и возвращает готовый рендерер.
func New(log *slog.Logger) (*View, error) {
	const op = "view.New"

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		pages[name] = t
	}
	return &View{log: log, pages: pages}, nil
}

// Render отдаёт страницу с указанным HTTP-статусом.
// Страница сначала собирается в буфер, чтобы при ошибке шаблона
// клиент не получил обрезанный ответ.
func (v *View) Render(w http.ResponseWriter, status int, page string, data Data) {
	t, ok := v.pages[page]
	if !ok {
		v.log.Error("unknown page template", slog.String("page", page))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		v.log.Error("failed to render page", slog.String("page", page), sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		v.log.Error("failed to write response", sl.Err(err))
	}
}

// RenderError отдаёт страницу внутренней ошибки, не раскрывая деталей сбоя.
func (v *View) RenderError(w http.ResponseWriter, data Data) {
	data.Title = "Error"
	v.Render(w, http.StatusInternalServerError, PageError, data)
}
