// Package session реализует выпуск и разбор подписанных сессионных токенов.
//
// Токен — это JWT (HS256), в claims которого хранится идентификатор пользователя.
// Клиент получает токен в HttpOnly-куке и предъявляет его на каждом запросе;
// подпись делает токен защищённым от подделки, а срок действия задаётся TTL.
package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims описывает данные, хранящиеся в сессионном токене.
type Claims struct {
	UserID               int64 `json:"uid"` // Идентификатор пользователя
	jwt.RegisteredClaims       // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Issue выпускает JWT с идентификатором пользователя, подписывая его секретным ключом.
//
// Время жизни сессии определяется полем tokenTTL.
func (m *MakerImpl) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// Parse разбирает сессионный токен, проверяет его подпись и срок действия,
// возвращает Claims с идентификатором пользователя, если токен корректен.
func (m *MakerImpl) Parse(tokenStr string) (*Claims, error) {
	const op = "session.Parse"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
