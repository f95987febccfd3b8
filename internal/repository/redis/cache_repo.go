package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	"github.com/partmatch-tech/catalog-backend/internal/cfg"
	"github.com/partmatch-tech/catalog-backend/internal/repository/redis/converter"
	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/partmatch-tech/catalog-backend/pkg/clients"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/partmatch-tech/catalog-backend/pkg/logger"
	red "github.com/redis/go-redis/v9"
)

// Ключ сводок каталогов. Строки датасета кэшируются по ключу catalog_match:<id>.
const statsCacheKey = "catalog_stats"

type CacheRepo struct {
	client    *clients.RedisClient
	matchConv converter.CatalogMatchConverter
	statConv  converter.CatalogStatConverter
	cfg       *cfg.RedisCfg
	logger    logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, matchConv converter.CatalogMatchConverter,
	statConv converter.CatalogStatConverter, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client:    client,
		matchConv: matchConv,
		statConv:  statConv,
		cfg:       cfg,
		logger:    logger,
	}
}

// GetMatch возвращает закэшированную строку датасета. Промах не является ошибкой.
func (r *CacheRepo) GetMatch(ctx context.Context, id int64) (*usecase.CatalogMatchInfo, error) {
	key := r.matchKey(id)

	data, err := r.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, red.Nil) {
			return nil, nil // cache miss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CatalogMatchRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		r.dropKey(key)
		return nil, nil
	}

	if model.ID != id {
		r.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", id, model.ID)
		r.dropKey(key)
		return nil, nil
	}

	return r.matchConv.ToUseCase(&model), nil
}

// SetMatch кэширует строку датасета с заданным TTL.
// Ошибки сериализации и записи логируются и не прерывают запрос.
func (r *CacheRepo) SetMatch(ctx context.Context, match *usecase.CatalogMatchInfo) error {
	data, err := json.Marshal(r.matchConv.ToRedisModel(match))
	if err != nil {
		r.logger.Warnf("Failed to marshal match for caching (ID: %d): %v", match.ID, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := r.client.Client.Set(ctx, r.matchKey(match.ID), data, r.cfg.MatchTTL).Err(); err != nil {
		r.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// GetStats возвращает закэшированные сводки каталогов. Промах не является ошибкой.
func (r *CacheRepo) GetStats(ctx context.Context) ([]usecase.CatalogStatInfo, error) {
	data, err := r.client.Client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, red.Nil) {
			return nil, nil // cache miss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.CatalogStatRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		r.dropKey(statsCacheKey)
		return nil, nil
	}

	return r.statConv.ToArrUseCase(models), nil
}

// SetStats кэширует сводки каталогов с заданным TTL.
func (r *CacheRepo) SetStats(ctx context.Context, stats []usecase.CatalogStatInfo) error {
	data, err := json.Marshal(r.statConv.ToArrRedisModel(stats))
	if err != nil {
		r.logger.Warnf("Failed to marshal stats for caching: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := r.client.Client.Set(ctx, statsCacheKey, data, r.cfg.StatsTTL).Err(); err != nil {
		r.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteStats сбрасывает кэш сводок после публикации новой версии датасета.
func (r *CacheRepo) DeleteStats(ctx context.Context) error {
	if err := r.client.Client.Del(ctx, statsCacheKey).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// matchKey возвращает Redis-ключ строки датасета.
func (r *CacheRepo) matchKey(id int64) string {
	return fmt.Sprintf("catalog_match:%d", id)
}

// dropKey удаляет повреждённый ключ, чтобы следующий запрос пошёл в БД.
func (r *CacheRepo) dropKey(key string) {
	if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
		r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}
