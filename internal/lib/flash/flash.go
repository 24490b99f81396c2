// Package flash реализует одноразовые уведомления между запросами.
//
// Сообщение кладётся в короткоживущую куку при редиректе и удаляется
// при первом чтении, поэтому показывается пользователю ровно один раз.
package flash

import (
	"net/http"
	"net/url"
)

const cookieName = "lm_flash"

// Set сохраняет сообщение для показа на следующей странице.
func Set(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop возвращает отложенное сообщение и сразу удаляет куку.
// Если сообщения нет, возвращает пустую строку.
func Pop(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}
