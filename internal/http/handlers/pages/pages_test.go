package pages

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/login-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/login-manager/internal/http/view"
	"github.com/magabrotheeeer/login-manager/internal/models"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	v, err := view.New(log)
	require.NoError(t, err)
	return New(log, v)
}

func TestPagesHandler(t *testing.T) {
	handler := newHandler(t)

	tests := []struct {
		name     string
		path     string
		serve    http.HandlerFunc
		wantBody string
	}{
		{name: "index", path: "/", serve: handler.Index, wantBody: "<title>Home | Login Manager</title>"},
		{name: "about", path: "/about", serve: handler.About, wantBody: "<title>About | Login Manager</title>"},
		{name: "contact", path: "/contact", serve: handler.Contact, wantBody: "<title>Contact | Login Manager</title>"},
		{name: "shop", path: "/shop", serve: handler.Shop, wantBody: "<title>Shop | Login Manager</title>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			tt.serve(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

// Навигация зависит от того, вошёл ли пользователь.
func TestPagesHandler_Navigation(t *testing.T) {
	handler := newHandler(t)

	t.Run("anonymous sees login links", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.Index(rec, req)

		body := rec.Body.String()
		assert.Contains(t, body, `href="/login"`)
		assert.Contains(t, body, `href="/register"`)
		assert.NotContains(t, body, `href="/logout"`)
	})

	t.Run("authenticated user sees logout link", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(middlewarectx.WithUser(req.Context(), &models.User{ID: 1, Username: "alice1"}))
		rec := httptest.NewRecorder()
		handler.Index(rec, req)

		body := rec.Body.String()
		assert.Contains(t, body, "alice1")
		assert.Contains(t, body, `href="/logout"`)
		assert.NotContains(t, body, `href="/register"`)
	})
}
