// Package apperr описывает типы ошибок уровня приложения.
//
// ValidationError и ConflictError показываются пользователю рядом с полем формы,
// AuthError — общим сообщением без уточнения причины. Остальные ошибки считаются
// ошибками хранилища и наружу не раскрываются.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUserNotFound возвращается хранилищем, если пользователь не найден.
var ErrUserNotFound = errors.New("user not found")

// ValidationError — нарушение правил формата одного поля формы.
type ValidationError struct {
	Field  string // Имя поля в нижнем регистре: username, email, password
	Reason string // Человеко-читаемая причина для вывода рядом с полем
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// ValidationErrors — список нарушений по всем полям формы за один проход.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, ", ")
}

// ConflictError — нарушение уникальности поля при записи в базу данных.
type ConflictError struct {
	Field string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s already taken", e.Field)
}

// AuthError — отказ в аутентификации или отсутствие активной сессии.
// Причина не детализируется в ответе, чтобы не раскрывать, существует ли пользователь.
type AuthError struct {
	Reason string
}

func (e AuthError) Error() string {
	return e.Reason
}
