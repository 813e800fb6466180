package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cooldownKeyPrefix = "otp:cooldown:"

// CooldownStore хранит паузу между повторными запросами OTP для телефона
type CooldownStore struct {
	rdb redis.UniversalClient
}

// NewCooldownStore создает хранилище пауз
func NewCooldownStore(rdb redis.UniversalClient) *CooldownStore {
	return &CooldownStore{rdb: rdb}
}

// Remaining возвращает оставшееся время паузы (0 - пауза не активна)
func (s *CooldownStore) Remaining(ctx context.Context, phone string) (time.Duration, error) {
	ttl, err := s.rdb.PTTL(ctx, cooldownKeyPrefix+phone).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: Remaining - pttl: %v", ErrCache, err)
	}
	// -2: ключа нет, -1: ключ без срока жизни (не должно случаться)
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

// Start запускает паузу для телефона
func (s *CooldownStore) Start(ctx context.Context, phone string, d time.Duration) error {
	if err := s.rdb.Set(ctx, cooldownKeyPrefix+phone, time.Now().Unix(), d).Err(); err != nil {
		return fmt.Errorf("%w: Start - set: %v", ErrCache, err)
	}
	return nil
}

// Clear снимает паузу (после успешного входа)
func (s *CooldownStore) Clear(ctx context.Context, phone string) error {
	if err := s.rdb.Del(ctx, cooldownKeyPrefix+phone).Err(); err != nil {
		return fmt.Errorf("%w: Clear - del: %v", ErrCache, err)
	}
	return nil
}
