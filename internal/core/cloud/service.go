// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cloud

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/platform/constants"
	"github.com/taibuivan/comicindex/internal/platform/validate"
)

// Size bounds of a cloud.
const (
	DefaultSize = 50
	MaxSize     = 200
	ParamSize   = "n"
)

// Kind names one of the clouds.
type Kind string

const (
	KindTitles   Kind = "titles"
	KindCreators Kind = "creators"
	KindKeywords Kind = "keywords"
)

// # Service

// Service serves weighted popularity clouds, caching the rankings.
type Service struct {
	repo   Repository
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewService constructs a cloud [Service]. A nil cache disables caching.
func NewService(repo Repository, cache Cache, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// Titles returns the n most published titles, alphabetically.
func (service *Service) Titles(ctx context.Context, n int) ([]Weighted[catalog.Title], error) {
	ranking, err := ranked(ctx, service, KindTitles, n, service.repo.RankTitles)
	if err != nil {
		return nil, err
	}
	return Weigh(ranking, func(a, b catalog.Title) bool { return a.Name < b.Name }), nil
}

// Creators returns the n most credited creators, alphabetically.
func (service *Service) Creators(ctx context.Context, n int) ([]Weighted[catalog.Creator], error) {
	ranking, err := ranked(ctx, service, KindCreators, n, service.repo.RankCreators)
	if err != nil {
		return nil, err
	}
	return Weigh(ranking, func(a, b catalog.Creator) bool { return a.Name < b.Name }), nil
}

// Keywords returns the n most used keywords, alphabetically by display name.
func (service *Service) Keywords(ctx context.Context, n int) ([]Weighted[catalog.RefKey], error) {
	ranking, err := ranked(ctx, service, KindKeywords, n, service.repo.RankKeywords)
	if err != nil {
		return nil, err
	}
	return Weigh(ranking, func(a, b catalog.RefKey) bool { return a.Name() < b.Name() }), nil
}

// CacheKey returns the Redis key of a cached ranking.
func CacheKey(kind Kind, n int) string {
	return fmt.Sprintf("%s%s:%d", constants.RedisPrefixCloud, kind, n)
}

/*
ranked returns a count ranking from the cache or from storage.

Description: A cache failure is logged and never fails the request; the
ranking is then read from storage and written back.
*/
func ranked[T any](
	ctx context.Context,
	service *Service,
	kind Kind,
	n int,
	load func(context.Context, int) ([]Counted[T], error),
) ([]Counted[T], error) {
	if err := (&validate.Validator{}).Range(ParamSize, n, 1, MaxSize).Err(); err != nil {
		return nil, err
	}

	key := CacheKey(kind, n)

	if service.cache != nil {
		var cached []Counted[T]
		hit, err := service.cache.Get(ctx, key, &cached)
		switch {
		case err != nil:
			service.logger.WarnContext(ctx, "cloud_cache_read_failed", slog.String("key", key), slog.Any("error", err))
		case hit:
			return cached, nil
		default:
			service.logger.DebugContext(ctx, "cloud_cache_miss", slog.String("key", key))
		}
	}

	ranking, err := load(ctx, n)
	if err != nil {
		return nil, err
	}
	if ranking == nil {
		ranking = []Counted[T]{}
	}

	if service.cache != nil {
		if err := service.cache.Set(ctx, key, ranking, service.ttl); err != nil {
			service.logger.WarnContext(ctx, "cloud_cache_write_failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return ranking, nil
}
