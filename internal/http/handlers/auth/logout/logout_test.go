package logout

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/login-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/login-manager/internal/lib/session"
	"github.com/magabrotheeeer/login-manager/internal/models"
)

func TestLogoutHandler(t *testing.T) {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	handler := New(slog.New(h))

	user := &models.User{ID: 7, Username: "alice1"}
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req = req.WithContext(middlewarectx.WithUser(req.Context(), user))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "session cookie is not cleared")
	assert.Empty(t, sessionCookie.Value)
	assert.Negative(t, sessionCookie.MaxAge)
}
