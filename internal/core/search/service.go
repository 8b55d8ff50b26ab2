// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search implements faceted search over the comic index.

A request runs in two phases. Facet slugs are resolved to entities first
([ParseFilterSet]); only then does the [Composer] run its narrowing
sub-queries. Episode and article candidates are merged into one [Hit] list
ranked by issue ordinal, newest first.

# Pipeline

	request -> FilterSet -> Composer -> Candidates -> Merge -> (Paginate)

Autocomplete ([Suggester]) and facet browse listings are read-only views over
the same storage.
*/
package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/pkg/pagination"
)

// # Results

// Result is the response of a composed search.
type Result struct {
	Filter   FilterSet         `json:"filter"`
	Titles   []catalog.Title   `json:"titles"`
	Creators []catalog.Creator `json:"creators"`
	RefKeys  []catalog.RefKey  `json:"refkeys"`
	Hits     []Hit             `json:"hits"`
}

// FacetKind names the entity a browse listing is anchored on.
type FacetKind string

const (
	FacetTitle   FacetKind = "title"
	FacetCreator FacetKind = "creator"
	FacetKey     FacetKind = "key"
	FacetFa      FacetKind = "fa"
)

// Facet identifies one browse anchor by kind and slug.
type Facet struct {
	Kind FacetKind
	Slug string
}

// Listing is one page of a facet browse listing.
type Listing struct {
	Filter FilterSet         `json:"filter"`
	Hits   []Hit             `json:"hits"`
	Pager  *pagination.Pager `json:"pager,omitempty"`
	Total  int               `json:"total"`
}

// # Service

// Service wires facet resolution, composition, ranking and autocomplete.
type Service struct {
	repo      Repository
	composer  *Composer
	suggester *Suggester
	logger    *slog.Logger
}

// NewService constructs a search [Service] over the repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		composer:  NewComposer(repo, logger),
		suggester: NewSuggester(repo),
		logger:    logger,
	}
}

/*
Search resolves the request facets and runs the composed search.

Parameters:
  - ctx: context.Context
  - params: url.Values (q, t, p, k, f)

Returns:
  - *Result: Suggestions plus at most [MaxHits] ranked hits
  - error: VALIDATION_ERROR, NOT_FOUND or STORAGE_ERROR
*/
func (service *Service) Search(ctx context.Context, params url.Values) (*Result, error) {
	filter, err := ParseFilterSet(ctx, params, service.repo)
	if err != nil {
		return nil, err
	}

	candidates, err := service.composer.Compose(ctx, filter)
	if err != nil {
		return nil, err
	}

	hits := Merge(candidates.Episodes, candidates.Articles)

	service.logger.DebugContext(ctx, "search_composed",
		slog.Int("terms", len(filter.Terms())),
		slog.Int("titles", len(candidates.Titles)),
		slog.Int("creators", len(candidates.Creators)),
		slog.Int("refkeys", len(candidates.RefKeys)),
		slog.Int("hits", len(hits)),
	)

	return &Result{
		Filter:   filter,
		Titles:   candidates.Titles,
		Creators: candidates.Creators,
		RefKeys:  candidates.RefKeys,
		Hits:     hits,
	}, nil
}

/*
Browse lists every hit connected to one facet, ranked newest first.

Description: Unlike [Service.Search] the hit list is not capped; long listings
are paginated instead.

Parameters:
  - ctx: context.Context
  - facet: Facet
  - page: *int (nil for the first page)

Returns:
  - *Listing: The requested page
  - error: NOT_FOUND for an unknown slug, VALIDATION_ERROR for a bad page
*/
func (service *Service) Browse(ctx context.Context, facet Facet, page *int) (*Listing, error) {
	filter, err := service.facetFilter(ctx, facet)
	if err != nil {
		return nil, err
	}

	episodes, articles, err := service.composer.Content(ctx, filter, NoLimit)
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(episodes)+len(articles))
	for _, h := range episodes {
		hits = append(hits, h)
	}
	for _, h := range articles {
		hits = append(hits, h)
	}
	ranked := Rank(hits, NoLimit)

	pageHits, pager, err := pagination.Paginate(ranked, page)
	if err != nil {
		return nil, err
	}

	return &Listing{Filter: filter, Hits: pageHits, Pager: pager, Total: len(ranked)}, nil
}

// Suggest returns autocomplete suggestions for q.
func (service *Service) Suggest(ctx context.Context, q string) ([]Completion, error) {
	return service.suggester.Suggest(ctx, q)
}

// facetFilter resolves a browse facet into a single-facet [FilterSet].
func (service *Service) facetFilter(ctx context.Context, facet Facet) (FilterSet, error) {
	var filter FilterSet

	switch facet.Kind {
	case FacetTitle:
		title, err := service.repo.ResolveTitle(ctx, facet.Slug)
		if err != nil {
			return FilterSet{}, err
		}
		filter.Titles = []catalog.Title{title}
	case FacetCreator:
		creator, err := service.repo.ResolveCreator(ctx, facet.Slug)
		if err != nil {
			return FilterSet{}, err
		}
		filter.Creators = []catalog.Creator{creator}
	case FacetKey, FacetFa:
		kind := catalog.KindKey
		if facet.Kind == FacetFa {
			kind = catalog.KindFa
		}
		key, err := service.repo.ResolveRefKey(ctx, kind, facet.Slug)
		if err != nil {
			return FilterSet{}, err
		}
		filter.RefKeys = []catalog.RefKey{key}
	default:
		return FilterSet{}, fmt.Errorf("search: unknown facet kind %q", facet.Kind)
	}

	return filter, nil
}
