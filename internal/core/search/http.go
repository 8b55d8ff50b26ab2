// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/core/ordinal"
	requestutil "github.com/taibuivan/comicindex/internal/platform/request"
	"github.com/taibuivan/comicindex/internal/platform/respond"
	"github.com/taibuivan/comicindex/pkg/pagination"
	"github.com/taibuivan/comicindex/pkg/slice"
)

// # Handler Implementation

// Handler exposes search, autocomplete and facet browse listings over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new search [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the search endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/search", handler.search)
	router.Get("/search/autocomplete", handler.autocomplete)

	router.Get("/titles/{slug}/hits", handler.browse(FacetTitle))
	router.Get("/creators/{slug}/hits", handler.browse(FacetCreator))
	router.Get("/what/{slug}/hits", handler.browse(FacetKey))
	router.Get("/fa/{slug}/hits", handler.browse(FacetFa))
}

// # Views

// issueView is one publication of a hit.
type issueView struct {
	Ordinal ordinal.Ordinal `json:"ordinal"`
	Issue   string          `json:"issue"`
}

// hitView flattens the [Hit] union with an explicit type tag.
type hitView struct {
	Type      string           `json:"type"`
	Title     *catalog.Title   `json:"title,omitempty"`
	Episode   *catalog.Episode `json:"episode,omitempty"`
	Article   *catalog.Article `json:"article,omitempty"`
	Published []issueView      `json:"published"`
}

// refKeyView is a refkey with its derived display name and path.
type refKeyView struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// resultView is the body of a search response.
type resultView struct {
	Query    string            `json:"q"`
	Facets   facetsView        `json:"facets"`
	Titles   []catalog.Title   `json:"titles"`
	Creators []catalog.Creator `json:"creators"`
	RefKeys  []refKeyView      `json:"refkeys"`
	Hits     []hitView         `json:"hits"`
}

// facetsView echoes the resolved facets of the request.
type facetsView struct {
	Titles   []catalog.Title   `json:"titles"`
	Creators []catalog.Creator `json:"creators"`
	RefKeys  []refKeyView      `json:"refkeys"`
}

func toIssueViews(published []ordinal.Ordinal) []issueView {
	views := slice.Map(published, func(o ordinal.Ordinal) issueView {
		return issueView{Ordinal: o, Issue: o.String()}
	})
	if views == nil {
		views = []issueView{}
	}
	return views
}

func toHitView(hit Hit) hitView {
	switch h := hit.(type) {
	case EpisodeHit:
		return hitView{Type: "episode", Title: &h.Title, Episode: &h.Episode, Published: toIssueViews(h.Published)}
	case ArticleHit:
		return hitView{Type: "article", Article: &h.Article, Published: toIssueViews(h.Published)}
	default:
		return hitView{Type: "unknown", Published: []issueView{}}
	}
}

func toRefKeyView(key catalog.RefKey) refKeyView {
	return refKeyView{Kind: key.Kind.String(), Name: key.Name(), Slug: key.Slug, URL: key.URL()}
}

func toHitViews(hits []Hit) []hitView {
	return append([]hitView{}, slice.Map(hits, toHitView)...)
}

func toRefKeyViews(keys []catalog.RefKey) []refKeyView {
	return append([]refKeyView{}, slice.Map(keys, toRefKeyView)...)
}

// # Endpoints

/*
GET /api/v1/search.

Description: Runs a faceted search. Facet parameters may repeat or hold
comma-separated slugs.

Request:
  - q: string (free text, at most 200 characters)
  - t: []string (title slugs)
  - p: []string (creator or alias slugs)
  - k: []string (keyword slugs)
  - f: []string (in-universe identity slugs)

Response:
  - 200: resultView
  - 400: VALIDATION_ERROR
  - 404: NOT_FOUND for an unknown facet slug
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Search(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, resultView{
		Query: result.Filter.Query,
		Facets: facetsView{
			Titles:   append([]catalog.Title{}, result.Filter.Titles...),
			Creators: append([]catalog.Creator{}, result.Filter.Creators...),
			RefKeys:  toRefKeyViews(result.Filter.RefKeys),
		},
		Titles:   result.Titles,
		Creators: result.Creators,
		RefKeys:  toRefKeyViews(result.RefKeys),
		Hits:     toHitViews(result.Hits),
	})
}

/*
GET /api/v1/search/autocomplete.

Request:
  - q: string

Response:
  - 200: []Completion (at most 8, sorted by label)
*/
func (handler *Handler) autocomplete(writer http.ResponseWriter, request *http.Request) {
	completions, err := handler.service.Suggest(request.Context(), request.URL.Query().Get(ParamQuery))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, completions)
}

/*
GET /api/v1/{titles|creators|what|fa}/{slug}/hits.

Description: Lists every hit connected to one facet, newest first. Long
listings are paginated with the "p" parameter.

Response:
  - 200: []hitView with pagination metadata
  - 400: VALIDATION_ERROR for a bad page
  - 404: NOT_FOUND for an unknown slug
*/
func (handler *Handler) browse(kind FacetKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		facetSlug, err := requestutil.Slug(request, "slug")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		page, err := pagination.PageParam(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		listing, err := handler.service.Browse(request.Context(), Facet{Kind: kind, Slug: facetSlug}, page)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Paginated(writer, toHitViews(listing.Hits), pagination.NewMeta(listing.Pager, listing.Total))
	}
}
