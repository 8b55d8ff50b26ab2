// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination slices long ordered lists into fixed-size pages.
//
// # Overview
//
// Lists are only paginated when they are long: up to three pages' worth of
// items is returned whole, without navigation, because a short list is easier
// to scan than to page through. Longer lists are cut into pages of [PageSize]
// and come with a [Pager] describing a bounded navigation window.
package pagination

import (
	"net/http"
	"strconv"

	"github.com/taibuivan/comicindex/internal/platform/apperr"
	"github.com/taibuivan/comicindex/internal/platform/validate"
	"github.com/taibuivan/comicindex/pkg/pointer"
)

const (
	// PageSize is the number of items per page.
	PageSize = 30
	// DefaultPage is the page served when none is requested (1-indexed).
	DefaultPage = 1
	// ParamPage is the query parameter carrying the requested page.
	ParamPage = "p"

	// thresholdPages is how many full pages a list may hold before paging kicks in.
	thresholdPages = 3
	// window is how many pages are linked on each side of the current page.
	window = 5
	// edgeSlack widens the window to the first/last page instead of leaving a
	// gap that would hide only one or two pages.
	edgeSlack = 2
)

// Link is one entry of the navigation window.
//
// A Gap link is the ellipsis marker between the window and a far edge page.
type Link struct {
	Page    int  `json:"page,omitempty"`
	Current bool `json:"current,omitempty"`
	Gap     bool `json:"gap,omitempty"`
}

// Pager describes the page being served and how to reach the others.
type Pager struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Links      []Link `json:"links"`
}

// Paginate returns the requested page of items.
//
// When the list holds no more than three pages' worth of items it is returned
// unchanged with a nil [Pager], whatever page was requested. Otherwise a nil
// page means the first page, and a page outside [1, TotalPages] is a
// VALIDATION_ERROR.
func Paginate[T any](items []T, page *int) ([]T, *Pager, error) {
	if len(items) <= thresholdPages*PageSize {
		return items, nil, nil
	}

	totalPages := (len(items)-1)/PageSize + 1
	current := pointer.Fallback(page, DefaultPage)

	v := &validate.Validator{}
	if err := v.Range(ParamPage, current, 1, totalPages).Err(); err != nil {
		return nil, nil, err
	}

	start := (current - 1) * PageSize
	end := min(start+PageSize, len(items))

	return items[start:end], NewPager(current, totalPages), nil
}

// NewPager builds the navigation window for page out of totalPages.
func NewPager(page, totalPages int) *Pager {
	from := 1
	if page > window+edgeSlack {
		from = page - window
	}
	to := totalPages
	if page+window+edgeSlack < totalPages {
		to = page + window
	}

	links := make([]Link, 0, to-from+5)
	if from > 1 {
		links = append(links, Link{Page: 1}, Link{Gap: true})
	}
	for p := from; p <= to; p++ {
		links = append(links, Link{Page: p, Current: p == page})
	}
	if to < totalPages {
		links = append(links, Link{Gap: true}, Link{Page: totalPages})
	}

	return &Pager{Page: page, TotalPages: totalPages, Links: links}
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Total      int    `json:"total"`
	PageSize   int    `json:"page_size"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Links      []Link `json:"links,omitempty"`
}

// NewMeta constructs response metadata for a list of total items.
//
// A nil pager means the list was served whole as a single page.
func NewMeta(pager *Pager, total int) Meta {
	if pager == nil {
		return Meta{Total: total, PageSize: total, Page: 1, TotalPages: 1}
	}
	return Meta{
		Total:      total,
		PageSize:   PageSize,
		Page:       pager.Page,
		TotalPages: pager.TotalPages,
		Links:      pager.Links,
	}
}

// PageParam parses the "p" query parameter from an HTTP request.
//
// An absent parameter yields nil (first page). A non-numeric value is a
// VALIDATION_ERROR; range checking happens in [Paginate].
func PageParam(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get(ParamPage)
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   ParamPage,
			Message: "Must be a page number",
		})
	}

	return &n, nil
}
