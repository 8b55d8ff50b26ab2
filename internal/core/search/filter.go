// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"net/url"
	"strings"

	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/platform/validate"
	"github.com/taibuivan/comicindex/pkg/query"
	"github.com/taibuivan/comicindex/pkg/slug"
)

// # Request Parameters

const (
	// ParamQuery carries the free-text query.
	ParamQuery = "q"
	// ParamTitle carries a title slug.
	ParamTitle = "t"
	// ParamCreator carries a creator slug or an alias slug.
	ParamCreator = "p"
	// ParamKey carries a keyword refkey slug.
	ParamKey = "k"
	// ParamFa carries an in-universe identity refkey slug.
	ParamFa = "f"

	// MaxQueryLen bounds the free-text query in characters.
	MaxQueryLen = 200
)

// # Facet Filter Set

// FilterSet is the parsed form of a search request: free text plus the
// selected facets. Facets are conjunctive.
type FilterSet struct {
	Query    string            `json:"q"`
	Titles   []catalog.Title   `json:"titles"`
	Creators []catalog.Creator `json:"creators"`
	RefKeys  []catalog.RefKey  `json:"refkeys"`
}

// Terms splits the query on whitespace into lower-cased substring terms.
func (f FilterSet) Terms() []string {
	return strings.Fields(strings.ToLower(f.Query))
}

// HasText reports whether the query holds at least one term.
func (f FilterSet) HasText() bool {
	return len(f.Terms()) > 0
}

// HasFacets reports whether any facet is selected.
func (f FilterSet) HasFacets() bool {
	return len(f.Titles) > 0 || len(f.Creators) > 0 || len(f.RefKeys) > 0
}

// IsEmpty reports whether the set has neither text nor facets.
func (f FilterSet) IsEmpty() bool {
	return !f.HasText() && !f.HasFacets()
}

// Resolver turns facet slugs into canonical entities.
// Each method returns a NOT_FOUND [apperr.AppError] for an unknown slug.
type Resolver interface {
	ResolveTitle(ctx context.Context, slug string) (catalog.Title, error)
	ResolveCreator(ctx context.Context, slug string) (catalog.Creator, error)
	ResolveRefKey(ctx context.Context, kind catalog.RefKeyKind, slug string) (catalog.RefKey, error)
}

/*
ParseFilterSet reads a search request into a [FilterSet].

Description: Facet parameters may be repeated and may hold comma-separated
slugs. Every slug is resolved through the resolver before the set is returned,
so an unknown slug fails the whole request. Unknown parameters are ignored.

Parameters:
  - ctx: context.Context
  - params: url.Values (q, t, p, k, f)
  - resolver: Resolver

Returns:
  - FilterSet: The resolved filter set
  - error: VALIDATION_ERROR for an overlong query, NOT_FOUND for an unknown slug
*/
func ParseFilterSet(ctx context.Context, params url.Values, resolver Resolver) (FilterSet, error) {
	filter := FilterSet{Query: strings.TrimSpace(params.Get(ParamQuery))}

	validator := &validate.Validator{}
	if err := validator.MaxLen(ParamQuery, filter.Query, MaxQueryLen).Err(); err != nil {
		return FilterSet{}, err
	}

	for _, s := range facetSlugs(params[ParamTitle]) {
		title, err := resolver.ResolveTitle(ctx, s)
		if err != nil {
			return FilterSet{}, err
		}
		filter.Titles = append(filter.Titles, title)
	}

	for _, s := range facetSlugs(params[ParamCreator]) {
		creator, err := resolver.ResolveCreator(ctx, s)
		if err != nil {
			return FilterSet{}, err
		}
		filter.Creators = append(filter.Creators, creator)
	}

	for _, kind := range []struct {
		param string
		kind  catalog.RefKeyKind
	}{{ParamKey, catalog.KindKey}, {ParamFa, catalog.KindFa}} {
		for _, s := range facetSlugs(params[kind.param]) {
			key, err := resolver.ResolveRefKey(ctx, kind.kind, s)
			if err != nil {
				return FilterSet{}, err
			}
			filter.RefKeys = append(filter.RefKeys, key)
		}
	}

	return filter, nil
}

// facetSlugs flattens repeated and comma-separated values into distinct slugs.
func facetSlugs(values []string) []string {
	var slugs []string
	seen := make(map[string]struct{})
	for _, value := range values {
		for _, raw := range query.StringSlice(value) {
			s := slug.From(raw)
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			slugs = append(slugs, s)
		}
	}
	return slugs
}
