// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/taibuivan/comicindex/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action names the sub-query and travels with the error for logging.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		ae := apperr.NotFound("Resource")
		ae.Op = action
		ae.Cause = err
		return ae
	}

	// 2. Cancellation is the caller's decision, not a storage fault
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	// 3. Everything else is a storage failure
	return apperr.Storage(action, err)
}

// WrapNotFound is like [Wrap] but names the missing resource.
func WrapNotFound(err error, action, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		ae := apperr.NotFound(resource)
		ae.Op = action
		ae.Cause = err
		return ae
	}
	return Wrap(err, action)
}
