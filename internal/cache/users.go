// Package cache реализует кэширование поверх Redis.
//
// CachedUserProvider снимает нагрузку с базы данных при разрешении сессии:
// пользователь по id кэшируется на короткий срок, так как каждая страница
// сайта выполняет этот запрос.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/login-manager/internal/lib/sl"
	"github.com/magabrotheeeer/login-manager/internal/models"
)

const userTTL = 30 * time.Second

// UserProvider описывает источник пользователей, который оборачивает кэш.
type UserProvider interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// CachedUserProvider кэширует ответы GetUserByID в Redis.
// Ошибки кэша не фатальны: при недоступном Redis запрос уходит в базу.
type CachedUserProvider struct {
	cache *Cache
	users UserProvider
	log   *slog.Logger
}

// NewCachedUserProvider создает новый CachedUserProvider.
func NewCachedUserProvider(cache *Cache, users UserProvider, log *slog.Logger) *CachedUserProvider {
	return &CachedUserProvider{cache: cache, users: users, log: log}
}

// GetUserByID возвращает пользователя из кэша или из базы, пополняя кэш при промахе.
func (p *CachedUserProvider) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	key := fmt.Sprintf("user:%d", id)

	var cached models.User
	hit, err := p.cache.Get(key, &cached)
	if err != nil {
		p.log.Warn("cache lookup failed", sl.Err(err))
	}
	if hit {
		return &cached, nil
	}

	user, err := p.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.cache.Set(key, user, userTTL); err != nil {
		p.log.Warn("cache store failed", sl.Err(err))
	}
	return user, nil
}
