package session

import (
	"time"
)

// Maker описывает интерфейс для выпуска и разбора сессионных токенов.
//
// Методы позволяют создавать подписанный токен для идентификатора пользователя,
// а также разбирать токен и извлекать из него идентификатор.
type Maker interface {
	// Issue выпускает подписанный токен, привязанный к id пользователя
	Issue(userID int64) (string, error)
	// Parse возвращает *Claims с id пользователя, если подпись и срок действия корректны
	Parse(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни сессии (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни сессии.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
