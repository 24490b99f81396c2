// Package models содержит доменную модель пользователя сайта,
// включающую учётные данные, хэш пароля и дату создания записи.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя сайта.
type User struct {
	ID           int64     // Уникальный идентификатор, выдаётся базой данных
	Username     string    // Имя пользователя (уникальное)
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Bcrypt-хэш пароля, исходный пароль не хранится
	CreatedAt    time.Time // Дата создания учётной записи
}
