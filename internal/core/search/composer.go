// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/platform/apperr"
)

// # Query Composition

// Sub-query names carried by storage errors.
const (
	OpSearchTitles   = "search_titles"
	OpSearchCreators = "search_creators"
	OpSearchRefKeys  = "search_refkeys"
	OpSearchEpisodes = "search_episodes"
	OpSearchArticles = "search_articles"
)

// Candidates holds the per-kind results of a composed search.
type Candidates struct {
	Titles   []catalog.Title   `json:"titles"`
	Creators []catalog.Creator `json:"creators"`
	RefKeys  []catalog.RefKey  `json:"refkeys"`
	Episodes []EpisodeHit      `json:"episodes"`
	Articles []ArticleHit      `json:"articles"`
}

// emptyCandidates returns five empty, non-nil lists.
func emptyCandidates() Candidates {
	return Candidates{
		Titles:   []catalog.Title{},
		Creators: []catalog.Creator{},
		RefKeys:  []catalog.RefKey{},
		Episodes: []EpisodeHit{},
		Articles: []ArticleHit{},
	}
}

// Composer turns a [FilterSet] into candidate lists.
//
// Every term narrows every kind; every facet narrows every kind except its
// own. Sub-queries run one after another and the first failure aborts.
type Composer struct {
	store  Store
	logger *slog.Logger
}

// NewComposer constructs a [Composer] over the store.
func NewComposer(store Store, logger *slog.Logger) *Composer {
	return &Composer{store: store, logger: logger}
}

/*
Compose runs the search described by filter.

Description: An empty filter returns five empty lists without touching the
store. Suggestion lists (titles, creators, refkeys) are only loaded when the
query has text and their own kind carries no facet. Episodes and articles are
always loaded. Every list is capped at [MaxHits].

Parameters:
  - ctx: context.Context
  - filter: FilterSet

Returns:
  - Candidates: Five lists, never nil
  - error: STORAGE_ERROR naming the failed sub-query, or the context error
*/
func (composer *Composer) Compose(ctx context.Context, filter FilterSet) (Candidates, error) {
	result := emptyCandidates()
	if filter.IsEmpty() {
		return result, nil
	}

	terms := filter.Terms()
	hasText := len(terms) > 0

	// ## Suggestions
	if hasText && len(filter.Titles) == 0 {
		query := composer.store.Titles()
		applyTerms(query, terms)
		applyFacets(query, filter, kindTitle)

		titles, err := load(ctx, composer, query, OpSearchTitles, MaxHits)
		if err != nil {
			return Candidates{}, err
		}
		result.Titles = titles
	}

	if hasText && len(filter.Creators) == 0 {
		query := composer.store.Creators()
		applyTerms(query, terms)
		applyFacets(query, filter, kindCreator)

		creators, err := load(ctx, composer, query, OpSearchCreators, MaxHits)
		if err != nil {
			return Candidates{}, err
		}
		result.Creators = creators
	}

	if hasText && len(filter.RefKeys) == 0 {
		query := composer.store.RefKeys()
		applyTerms(query, terms)
		applyFacets(query, filter, kindRefKey)

		refkeys, err := load(ctx, composer, query, OpSearchRefKeys, MaxHits)
		if err != nil {
			return Candidates{}, err
		}
		result.RefKeys = refkeys
	}

	// ## Content
	episodes, articles, err := composer.Content(ctx, filter, MaxHits)
	if err != nil {
		return Candidates{}, err
	}
	result.Episodes = episodes
	result.Articles = articles

	return result, nil
}

/*
Content loads the episode and article candidates for filter.

Description: Both lists are ordered by last publication, newest first, and
truncated to limit. Browse listings pass [NoLimit].

Parameters:
  - ctx: context.Context
  - filter: FilterSet (must not be empty)
  - limit: int

Returns:
  - []EpisodeHit: Episode candidates
  - []ArticleHit: Article candidates
  - error: STORAGE_ERROR naming the failed sub-query, or the context error
*/
func (composer *Composer) Content(ctx context.Context, filter FilterSet, limit int) ([]EpisodeHit, []ArticleHit, error) {
	terms := filter.Terms()

	episodeQuery := composer.store.Episodes()
	applyTerms(episodeQuery, terms)
	applyFacets(episodeQuery, filter, kindContent)

	episodes, err := load(ctx, composer, episodeQuery, OpSearchEpisodes, limit)
	if err != nil {
		return nil, nil, err
	}

	articleQuery := composer.store.Articles()
	applyTerms(articleQuery, terms)
	applyFacets(articleQuery, filter, kindContent)

	articles, err := load(ctx, composer, articleQuery, OpSearchArticles, limit)
	if err != nil {
		return nil, nil, err
	}

	return episodes, articles, nil
}

// # Helpers

// facetKind names the entity kind a query lists, so its own facet is skipped.
type facetKind int

const (
	kindContent facetKind = iota
	kindTitle
	kindCreator
	kindRefKey
)

func applyTerms[T any](query CandidateQuery[T], terms []string) {
	for _, term := range terms {
		query.Term(term)
	}
}

func applyFacets[T any](query CandidateQuery[T], filter FilterSet, own facetKind) {
	if own != kindTitle {
		for _, title := range filter.Titles {
			query.Title(title)
		}
	}
	if own != kindCreator {
		for _, creator := range filter.Creators {
			query.Creator(creator)
		}
	}
	if own != kindRefKey {
		for _, key := range filter.RefKeys {
			query.RefKey(key)
		}
	}
}

// load checks for cancellation, runs the query and names any failure.
func load[T any](ctx context.Context, composer *Composer, query CandidateQuery[T], op string, limit int) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := query.Load(ctx, limit)
	if err != nil {
		composer.logger.WarnContext(ctx, "search_subquery_failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return nil, storageError(op, err)
	}

	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// storageError wraps err as STORAGE_ERROR unless it is already classified.
func storageError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if apperr.IsAppError(err) {
		return err
	}
	return apperr.Storage(op, err)
}
