// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cloud

import (
	"context"
	"time"

	"github.com/taibuivan/comicindex/internal/core/catalog"
)

// # Repository Interfaces

// Repository ranks catalog entities by popularity, most popular first.
// Ties are broken by name so that a ranking is deterministic.
type Repository interface {
	// RankTitles counts the episode parts published under each title.
	RankTitles(ctx context.Context, limit int) ([]Counted[catalog.Title], error)

	// RankCreators counts the distinct episodes each creator is credited on.
	RankCreators(ctx context.Context, limit int) ([]Counted[catalog.Creator], error)

	// RankKeywords counts the episodes tagged with each Key-kind refkey.
	RankKeywords(ctx context.Context, limit int) ([]Counted[catalog.RefKey], error)
}

// Cache stores JSON-encodable rankings with a TTL.
type Cache interface {
	// Get decodes the cached value into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
