// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the correlation identifiers attached to every request.

Version 7 values are preferred because they sort by creation time, which keeps
log lines of one request window adjacent when grepping by id.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New returns a UUIDv7 string, or a random UUIDv4 if the v7 clock source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
