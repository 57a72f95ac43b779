package lock

import (
	"context"
	"time"

	"class-hive/biz/infrastructure/config"
	rds "class-hive/biz/infrastructure/redis"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// Mutex is a best-effort distributed lock guarding check-then-insert
// sequences (team joining) against concurrent duplicates.
type Mutex struct {
	ctx        context.Context
	lock       *redis.RedisLock
	ttl        int
	retryDelay time.Duration
	retries    int
	acquiredAt time.Time
}

// NewMutex builds a lock on key with a ttl in seconds. Lock retries a few
// times before giving up so near-simultaneous requests queue briefly instead
// of failing outright.
func NewMutex(ctx context.Context, key string, ttlSeconds int, retryDelayMillis int) *Mutex {
	l := redis.NewRedisLock(rds.GetRedis(config.GetConfig()), key)
	l.SetExpire(ttlSeconds)
	return &Mutex{
		ctx:        ctx,
		lock:       l,
		ttl:        ttlSeconds,
		retryDelay: time.Duration(retryDelayMillis) * time.Millisecond,
		retries:    3,
	}
}

func (m *Mutex) Lock() error {
	for i := 0; i <= m.retries; i++ {
		ok, err := m.lock.AcquireCtx(m.ctx)
		if err != nil {
			return err
		}
		if ok {
			m.acquiredAt = time.Now()
			return nil
		}
		time.Sleep(m.retryDelay)
	}
	return ErrLockHeld
}

func (m *Mutex) Unlock() error {
	_, err := m.lock.ReleaseCtx(m.ctx)
	return err
}

// Expired reports whether the ttl elapsed while the lock was held.
func (m *Mutex) Expired() bool {
	if m.acquiredAt.IsZero() {
		return false
	}
	return time.Since(m.acquiredAt) > time.Duration(m.ttl)*time.Second
}
