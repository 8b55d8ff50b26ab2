// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cloud

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/platform/respond"
	"github.com/taibuivan/comicindex/pkg/convert"
	"github.com/taibuivan/comicindex/pkg/slice"
)

// # Handler Implementation

// Handler exposes the popularity clouds over HTTP.
type Handler struct {
	service     *Service
	defaultSize int
}

// NewHandler constructs a cloud [Handler]. defaultSize applies when the
// request has no usable "n" parameter.
func NewHandler(service *Service, defaultSize int) *Handler {
	if defaultSize < 1 {
		defaultSize = DefaultSize
	}
	return &Handler{service: service, defaultSize: defaultSize}
}

// RegisterRoutes mounts the cloud endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/clouds", func(r chi.Router) {
		r.Get("/titles", handler.titles)
		r.Get("/creators", handler.creators)
		r.Get("/keywords", handler.keywords)
	})
}

// entryView is one rendered cloud entry.
type entryView struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	URL    string `json:"url"`
	Count  int    `json:"count"`
	Weight int    `json:"weight"`
}

func (handler *Handler) size(request *http.Request) int {
	return convert.ToIntD(request.URL.Query().Get(ParamSize), handler.defaultSize)
}

// # Endpoints

/*
GET /api/v1/clouds/titles.

Request:
  - n: int (1..200, defaults to the configured cloud size)

Response:
  - 200: []entryView (alphabetical, weight 0..8)
  - 400: VALIDATION_ERROR for n out of range
*/
func (handler *Handler) titles(writer http.ResponseWriter, request *http.Request) {
	cloud, err := handler.service.Titles(request.Context(), handler.size(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(cloud, func(entry Weighted[catalog.Title]) entryView {
		return entryView{Name: entry.Item.Name, Slug: entry.Item.Slug, URL: entry.Item.URL(), Count: entry.Count, Weight: entry.Weight}
	}))
}

// GET /api/v1/clouds/creators.
func (handler *Handler) creators(writer http.ResponseWriter, request *http.Request) {
	cloud, err := handler.service.Creators(request.Context(), handler.size(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(cloud, func(entry Weighted[catalog.Creator]) entryView {
		return entryView{Name: entry.Item.Name, Slug: entry.Item.Slug, URL: entry.Item.URL(), Count: entry.Count, Weight: entry.Weight}
	}))
}

// GET /api/v1/clouds/keywords.
func (handler *Handler) keywords(writer http.ResponseWriter, request *http.Request) {
	cloud, err := handler.service.Keywords(request.Context(), handler.size(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(cloud, func(entry Weighted[catalog.RefKey]) entryView {
		return entryView{Name: entry.Item.Name(), Slug: entry.Item.Slug, URL: entry.Item.URL(), Count: entry.Count, Weight: entry.Weight}
	}))
}
