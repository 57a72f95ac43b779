package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"class-hive/biz/application/dto/classroom"
	"class-hive/biz/infrastructure/config"
	"class-hive/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	paperCachePrefix = "generated_paper"
	paperCacheExpire = 3600 // 1 hour
)

type IPaperCacheMapper interface {
	Get(ctx context.Context, id string) (*classroom.Paper, error)
	Set(ctx context.Context, id string, paper *classroom.Paper) error
	Delete(ctx context.Context, id string) error
}

// PaperCacheMapper keeps recently generated papers in Redis so repeated
// fetches don't re-deserialize the stored output.
type PaperCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewPaperCacheMapper(config *config.Config) *PaperCacheMapper {
	return &PaperCacheMapper{
		rds: redis.GetRedis(config),
	}
}

func (m *PaperCacheMapper) Get(ctx context.Context, id string) (*classroom.Paper, error) {
	cacheKey := m.buildCacheKey(id)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var paper classroom.Paper
	if err := json.Unmarshal([]byte(cachedData), &paper); err != nil {
		return nil, fmt.Errorf("unmarshal cached paper failed: %w", err)
	}

	return &paper, nil
}

func (m *PaperCacheMapper) Set(ctx context.Context, id string, paper *classroom.Paper) error {
	cacheKey := m.buildCacheKey(id)

	data, err := json.Marshal(paper)
	if err != nil {
		return fmt.Errorf("marshal paper failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, cacheKey, string(data), paperCacheExpire)
}

func (m *PaperCacheMapper) Delete(ctx context.Context, id string) error {
	cacheKey := m.buildCacheKey(id)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

func (m *PaperCacheMapper) buildCacheKey(id string) string {
	return fmt.Sprintf("%s:%s", paperCachePrefix, id)
}
