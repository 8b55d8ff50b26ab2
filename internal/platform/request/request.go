// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction so handlers
stay independent of chi.
*/
package requestutil

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/comicindex/internal/platform/apperr"
	"github.com/taibuivan/comicindex/pkg/slug"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Slug retrieves a named URL parameter and normalizes it to slug form.

Returns:
  - string: The normalized slug
  - error: apperr.ValidationError if nothing slug-like remains
*/
func Slug(request *http.Request, name string) (string, error) {
	normalized := slug.From(chi.URLParam(request, name))
	if normalized == "" {
		return "", apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   name,
			Message: "Must be a valid slug",
		})
	}
	return normalized, nil
}
