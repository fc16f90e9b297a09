// Package cache keeps a Redis snapshot of the active zone catalog.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pizzahouse/config"
	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/errors"
	"pizzahouse/internal/infra/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const activeZonesKey = "pizzahouse:zones:active"

// ErrCacheMiss is returned by a Store when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Store is the key-value surface the zone cache needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisStore struct {
	client *redis.Client
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}

	return value, err
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *redisStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// ZoneRepository caches FindActiveZones and invalidates the snapshot on every write.
// Cache failures fall through to the wrapped repository.
type ZoneRepository struct {
	repository.ZoneRepository

	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// Params defines the dependencies for the zone cache decorator
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Decorate wraps zones with the Redis snapshot cache when Redis is configured.
func Decorate(params Params, zones repository.ZoneRepository) repository.ZoneRepository {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return zones
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Zone cache enabled", slog.String("addr", cfg.Addr), slog.Duration("ttl", cfg.TTL))

	return NewZoneRepository(zones, &redisStore{client: client}, cfg.TTL, params.Logger)
}

func NewZoneRepository(zones repository.ZoneRepository, store Store, ttl time.Duration, logger *slog.Logger) *ZoneRepository {
	return &ZoneRepository{
		ZoneRepository: zones,
		store:          store,
		ttl:            ttl,
		logger:         logger.With(slog.String("component", "zone_cache")),
	}
}

func (r *ZoneRepository) FindActiveZones(ctx context.Context) ([]*entity.Zone, error) {
	raw, err := r.store.Get(ctx, activeZonesKey)
	switch {
	case err == nil:
		var zones []*entity.Zone
		if jsonErr := json.Unmarshal(raw, &zones); jsonErr == nil {
			metrics.ZoneCacheTotal.WithLabelValues("hit").Inc()

			return zones, nil
		}
		metrics.ZoneCacheTotal.WithLabelValues("error").Inc()
	case errors.Is(err, ErrCacheMiss):
		metrics.ZoneCacheTotal.WithLabelValues("miss").Inc()
	default:
		metrics.ZoneCacheTotal.WithLabelValues("error").Inc()
		r.logger.WarnContext(ctx, "Zone cache read failed", slog.String("error", err.Error()))
	}

	zones, err := r.ZoneRepository.FindActiveZones(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(zones); err == nil {
		if err := r.store.Set(ctx, activeZonesKey, raw, r.ttl); err != nil {
			r.logger.WarnContext(ctx, "Zone cache write failed", slog.String("error", err.Error()))
		}
	}

	return zones, nil
}

func (r *ZoneRepository) SaveZone(ctx context.Context, zone *entity.Zone) error {
	defer r.invalidate(ctx)

	return r.ZoneRepository.SaveZone(ctx, zone)
}

func (r *ZoneRepository) DeactivateZone(ctx context.Context, id uuid.UUID) error {
	defer r.invalidate(ctx)

	return r.ZoneRepository.DeactivateZone(ctx, id)
}

func (r *ZoneRepository) ReplaceAllZones(ctx context.Context, zones []*entity.Zone) error {
	defer r.invalidate(ctx)

	return r.ZoneRepository.ReplaceAllZones(ctx, zones)
}

func (r *ZoneRepository) BookSlot(ctx context.Context, zoneID, slotID uuid.UUID) error {
	defer r.invalidate(ctx)

	return r.ZoneRepository.BookSlot(ctx, zoneID, slotID)
}

func (r *ZoneRepository) ResetSlotBookings(ctx context.Context) (int64, error) {
	defer r.invalidate(ctx)

	return r.ZoneRepository.ResetSlotBookings(ctx)
}

// Invalidate drops the snapshot; callers that write through a transaction-bound
// repository use it after commit.
func (r *ZoneRepository) Invalidate(ctx context.Context) {
	r.invalidate(ctx)
}

func (r *ZoneRepository) invalidate(ctx context.Context) {
	if err := r.store.Del(ctx, activeZonesKey); err != nil {
		r.logger.WarnContext(ctx, "Zone cache invalidation failed", slog.String("error", err.Error()))
	}
}
