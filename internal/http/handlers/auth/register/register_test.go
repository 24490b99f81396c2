package register

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/login-manager/internal/apperr"
	"github.com/magabrotheeeer/login-manager/internal/http/view"
)

// Мок сервиса с методом Register
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, username, email, password string) (int64, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestView(t *testing.T) *view.View {
	t.Helper()
	v, err := view.New(newNoopLogger())
	require.NoError(t, err)
	return v
}

func postForm(t *testing.T, handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterHandler_Form(t *testing.T) {
	handler := New(newNoopLogger(), new(AuthServiceMock), newTestView(t))

	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	rec := httptest.NewRecorder()
	handler.Form(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/register"`)
}

func TestRegisterHandler_Submit(t *testing.T) {
	validForm := url.Values{
		"username": {"alice1"},
		"email":    {"alice@x.com"},
		"password": {"secret1"},
	}

	tests := []struct {
		name         string
		form         url.Values
		serviceErr   error
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:         "valid registration redirects to login",
			form:         validForm,
			serviceErr:   nil,
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name: "validation error re-renders form",
			form: url.Values{
				"username": {"bob"},
				"email":    {"bob@x.com"},
				"password": {"secret1"},
			},
			serviceErr: apperr.ValidationErrors{
				{Field: "username", Reason: "must be between 4 and 20 characters"},
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "must be between 4 and 20 characters",
		},
		{
			name:       "conflict re-renders form",
			form:       validForm,
			serviceErr: apperr.ConflictError{Field: "username"},
			wantStatus: http.StatusConflict,
			wantBody:   "username taken",
		},
		{
			name:       "storage error renders error page",
			form:       validForm,
			serviceErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			var wantID int64
			if tt.serviceErr == nil {
				wantID = 1
			}
			authMock.On("Register", mock.Anything,
				tt.form.Get("username"), tt.form.Get("email"), tt.form.Get("password"),
			).Return(wantID, tt.serviceErr).Once()

			handler := New(newNoopLogger(), authMock, newTestView(t))
			rec := postForm(t, handler.Submit, tt.form)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}

			authMock.AssertExpectations(t)
		})
	}
}

// После успешной регистрации пользователь должен увидеть уведомление на странице входа.
func TestRegisterHandler_Submit_SetsFlash(t *testing.T) {
	authMock := new(AuthServiceMock)
	authMock.On("Register", mock.Anything, "alice1", "alice@x.com", "secret1").
		Return(int64(1), nil).Once()

	handler := New(newNoopLogger(), authMock, newTestView(t))
	rec := postForm(t, handler.Submit, url.Values{
		"username": {"alice1"},
		"email":    {"alice@x.com"},
		"password": {"secret1"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "lm_flash" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "flash cookie is not set")
}

// Введённые значения не должны теряться при повторном показе формы,
// кроме пароля, который никогда не возвращается клиенту.
func TestRegisterHandler_Submit_KeepsFormValues(t *testing.T) {
	authMock := new(AuthServiceMock)
	authMock.On("Register", mock.Anything, "bob", "bob@x.com", "secret1").
		Return(int64(0), apperr.ValidationErrors{
			{Field: "username", Reason: "must be between 4 and 20 characters"},
		}).Once()

	handler := New(newNoopLogger(), authMock, newTestView(t))
	rec := postForm(t, handler.Submit, url.Values{
		"username": {"bob"},
		"email":    {"bob@x.com"},
		"password": {"secret1"},
	})

	body := rec.Body.String()
	assert.Contains(t, body, `value="bob"`)
	assert.Contains(t, body, `value="bob@x.com"`)
	assert.NotContains(t, body, "secret1")
}
