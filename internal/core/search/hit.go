// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/core/ordinal"
)

// # Hits

// Hit is a ranked content result: an [EpisodeHit] or an [ArticleHit].
//
// The interface is sealed; no other package can add variants.
type Hit interface {

	// LastPublished returns the most recent issue the hit appeared in, and
	// false when it has no publications.
	LastPublished() (ordinal.Ordinal, bool)

	isHit()
}

// EpisodeHit is an episode together with its title and publication history.
type EpisodeHit struct {
	Episode   catalog.Episode   `json:"episode"`
	Title     catalog.Title     `json:"title"`
	Published []ordinal.Ordinal `json:"published"`
}

// LastPublished implements [Hit].
func (h EpisodeHit) LastPublished() (ordinal.Ordinal, bool) {
	return ordinal.Max(h.Published)
}

func (EpisodeHit) isHit() {}

// ArticleHit is an article together with its publication history.
type ArticleHit struct {
	Article   catalog.Article   `json:"article"`
	Published []ordinal.Ordinal `json:"published"`
}

// LastPublished implements [Hit].
func (h ArticleHit) LastPublished() (ordinal.Ordinal, bool) {
	return ordinal.Max(h.Published)
}

func (ArticleHit) isHit() {}
