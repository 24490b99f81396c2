// Package services содержит логику бизнес-уровня для регистрации и аутентификации пользователей.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/login-manager/internal/apperr"
	"github.com/magabrotheeeer/login-manager/internal/lib/password"
	"github.com/magabrotheeeer/login-manager/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	// Нарушение уникальности возвращается как apperr.ConflictError.
	CreateUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByUsername возвращает пользователя по имени
	// или apperr.ErrUserNotFound, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UsernameTaken сообщает, занято ли имя пользователя.
	UsernameTaken(ctx context.Context, username string) (bool, error)

	// EmailTaken сообщает, занята ли электронная почта.
	EmailTaken(ctx context.Context, email string) (bool, error)
}

// AuthService отвечает за регистрацию и проверку учётных данных.
type AuthService struct {
	users    UserRepository
	validate *validator.Validate
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		validate: validator.New(),
	}
}

// registrationForm задаёт правила длины полей регистрации.
type registrationForm struct {
	Username string `validate:"required,min=4,max=20"`
	Email    string `validate:"required,min=6,max=120"`
	Password string `validate:"required,min=6,max=20"`
}

// Register создает нового пользователя: проверяет поля формы, занятость
// username и email, хэширует пароль и сохраняет запись. Возвращает ID
// нового пользователя.
//
// Проверки занятости нужны только для дружелюбных ошибок формы; гонку
// между проверкой и вставкой закрывает уникальный индекс в базе,
// нарушение которого приходит из репозитория как apperr.ConflictError.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (int64, error) {
	const op = "services.auth.Register"

	if errs := s.validateRegistration(username, email, rawPassword); len(errs) > 0 {
		return 0, errs
	}

	taken, err := s.users.UsernameTaken(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return 0, apperr.ValidationErrors{{Field: "username", Reason: "username taken"}}
	}

	taken, err = s.users.EmailTaken(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return 0, apperr.ValidationErrors{{Field: "email", Reason: "email taken"}}
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		var conflict apperr.ConflictError
		if errors.As(err, &conflict) {
			return 0, conflict
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Login проверяет учётные данные и возвращает пользователя.
//
// Неизвестное имя и неверный пароль дают одну и ту же apperr.AuthError,
// чтобы по ответу нельзя было перебрать существующие имена.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (*models.User, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			return nil, apperr.AuthError{Reason: "invalid credentials"}
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, apperr.AuthError{Reason: "invalid credentials"}
	}
	return user, nil
}

// validateRegistration — чистая проверка полей формы, отделённая от рендеринга.
// Возвращает нарушение для каждого поля, не прошедшего правила длины.
func (s *AuthService) validateRegistration(username, email, rawPassword string) apperr.ValidationErrors {
	form := registrationForm{Username: username, Email: email, Password: rawPassword}
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.ValidationErrors{{Field: "form", Reason: "invalid input"}}
	}

	var result apperr.ValidationErrors
	for _, fe := range verrs {
		var field, reason string
		switch fe.Field() {
		case "Username":
			field, reason = "username", "must be between 4 and 20 characters"
		case "Email":
			field, reason = "email", "must be between 6 and 120 characters"
		case "Password":
			field, reason = "password", "must be between 6 and 20 characters"
		}
		result = append(result, apperr.ValidationError{Field: field, Reason: reason})
	}
	return result
}
