package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/shrine-functions/internal/domain"
	"github.com/shrine-functions/internal/domain/repository"
	"github.com/shrine-functions/internal/pkg/errors"
	"go.uber.org/zap"
)

// ShrineRepository хранит коллекцию святилищ в Redis:
//
//	{collection}:{id}  - hash с полями name, prefecture, lat, lng
//	{collection}:lat   - sorted set, score = широта, member = id
//
// Диапазонный запрос по широте идёт через ZRANGEBYSCORE с LIMIT.
type ShrineRepository struct {
	client     *redis.Client
	collection string
	logger     *zap.Logger
}

var (
	_ repository.ShrineRepository = (*ShrineRepository)(nil)
	_ repository.ShrineWriter     = (*ShrineRepository)(nil)
)

func NewShrineRepository(r *Redis, collection string) *ShrineRepository {
	return &ShrineRepository{
		client:     r.Client(),
		collection: collection,
		logger:     r.logger,
	}
}

func (r *ShrineRepository) docKey(id string) string {
	return fmt.Sprintf("%s:%s", r.collection, id)
}

func (r *ShrineRepository) latIndexKey() string {
	return r.collection + ":lat"
}

func (r *ShrineRepository) FindByLatitudeRange(
	ctx context.Context,
	minLat, maxLat float64,
	limit int,
) ([]*domain.Shrine, error) {
	ids, err := r.client.ZRangeByScore(ctx, r.latIndexKey(), &redis.ZRangeBy{
		Min:   formatScore(minLat),
		Max:   formatScore(maxLat),
		Count: int64(limit),
	}).Result()
	if err != nil {
		r.logger.Error("Failed to query shrine latitude index",
			zap.Float64("min_lat", minLat),
			zap.Float64("max_lat", maxLat),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	if len(ids) == 0 {
		return []*domain.Shrine{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, r.docKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to load shrine documents", zap.Int("count", len(ids)), zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	shrines := make([]*domain.Shrine, 0, len(ids))
	for i, id := range ids {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			// индекс ссылается на удалённый документ
			r.logger.Debug("Dangling shrine index entry", zap.String("id", id))
			continue
		}
		shrines = append(shrines, parseShrine(id, fields))
	}

	return shrines, nil
}

func (r *ShrineRepository) Upsert(ctx context.Context, shrines []*domain.Shrine) error {
	if len(shrines) == 0 {
		return nil
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, s := range shrines {
			key := r.docKey(s.ID)
			pipe.Del(ctx, key)

			fields := map[string]interface{}{}
			if s.Name != nil {
				fields["name"] = *s.Name
			}
			if s.Prefecture != nil {
				fields["prefecture"] = *s.Prefecture
			}
			if s.Lat != nil {
				fields["lat"] = formatScore(*s.Lat)
			}
			if s.Lng != nil {
				fields["lng"] = formatScore(*s.Lng)
			}
			// пустой hash Redis не хранит, id нужен как маркер существования
			fields["id"] = s.ID
			pipe.HSet(ctx, key, fields)

			if s.Lat != nil {
				pipe.ZAdd(ctx, r.latIndexKey(), redis.Z{Score: *s.Lat, Member: s.ID})
			} else {
				pipe.ZRem(ctx, r.latIndexKey(), s.ID)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("upsert shrines: %w", err)
	}

	r.logger.Info("Shrines upserted", zap.Int("count", len(shrines)))
	return nil
}

func (r *ShrineRepository) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func parseShrine(id string, fields map[string]string) *domain.Shrine {
	s := &domain.Shrine{ID: id}
	if v, ok := fields["name"]; ok {
		s.Name = &v
	}
	if v, ok := fields["prefecture"]; ok {
		s.Prefecture = &v
	}
	s.Lat = parseNumber(fields, "lat")
	s.Lng = parseNumber(fields, "lng")
	return s
}

// parseNumber returns nil for missing or non-numeric values so the record is
// skipped by the distance scan.
func parseNumber(fields map[string]string, key string) *float64 {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
