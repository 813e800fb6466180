package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	clinicClient "github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
)

const (
	doctorsKey       = "doctors:list"
	doctorsCacheName = "doctors"
)

// DoctorCache кеширует список врачей внешнего API в Redis
// При недоступности Redis работает как прямой прокси к источнику
type DoctorCache struct {
	rdb     redis.UniversalClient
	source  DoctorLister
	ttl     time.Duration
	metrics MetricsRecorder
	log     Logger
}

// NewDoctorCache создает кеш списка врачей
func NewDoctorCache(rdb redis.UniversalClient, source DoctorLister, ttl time.Duration, metrics MetricsRecorder, log Logger) *DoctorCache {
	return &DoctorCache{
		rdb:     rdb,
		source:  source,
		ttl:     ttl,
		metrics: metrics,
		log:     log,
	}
}

// ListDoctors возвращает список врачей из кеша или из источника
func (c *DoctorCache) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	cached, err := c.rdb.Get(ctx, doctorsKey).Bytes()
	switch {
	case err == nil:
		var doctors []domain.Doctor
		if jsonErr := json.Unmarshal(cached, &doctors); jsonErr == nil {
			c.metrics.ObserveCacheLookup(doctorsCacheName, true)
			return doctors, nil
		}
		c.log.Warn("DoctorCache: corrupted entry, refetching")
	case errors.Is(err, redis.Nil):
		// Промах кеша
	default:
		c.log.Warn("DoctorCache: redis unavailable, falling back to clinic API: %v", err)
	}
	c.metrics.ObserveCacheLookup(doctorsCacheName, false)

	doctors, err := c.source.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(doctors)
	if err != nil {
		c.log.Error("DoctorCache: failed to encode doctors: %v", err)
		return doctors, nil
	}
	if err := c.rdb.Set(ctx, doctorsKey, payload, c.ttl).Err(); err != nil {
		c.log.Warn("DoctorCache: failed to store doctors: %v", err)
	}

	return doctors, nil
}

// GetDoctor возвращает врача по ID
func (c *DoctorCache) GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, error) {
	doctors, err := c.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	return clinicClient.FindDoctor(doctors, doctorID)
}

// Invalidate сбрасывает кеш, чтобы следующее окно слотов учло новое бронирование
func (c *DoctorCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, doctorsKey).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - del: %v", ErrCache, err)
	}
	return nil
}
