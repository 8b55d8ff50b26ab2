// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"

	"github.com/taibuivan/comicindex/internal/core/catalog"
)

// # Data Access

// NoLimit asks [CandidateQuery.Load] for every matching row.
const NoLimit = 0

// CandidateQuery is a narrowing query over one entity kind.
//
// Every method adds a constraint and returns the same query; a call can only
// shrink the set that Load returns, never grow it.
type CandidateQuery[T any] interface {

	// Term keeps rows where the term is a case-insensitive substring of at
	// least one searchable field of the kind.
	Term(term string) CandidateQuery[T]

	// Title keeps rows connected to the title.
	Title(title catalog.Title) CandidateQuery[T]

	// Creator keeps rows connected to any alias of the creator.
	Creator(creator catalog.Creator) CandidateQuery[T]

	// RefKey keeps rows connected to the key.
	RefKey(key catalog.RefKey) CandidateQuery[T]

	/*
		Load runs the query.

		Parameters:
		  - ctx: context.Context
		  - limit: int (NoLimit for every row)

		Returns:
		  - []T: Matching rows; content kinds are ordered by last publication, newest first
		  - error: STORAGE_ERROR on I/O failure
	*/
	Load(ctx context.Context, limit int) ([]T, error)
}

// Store opens a fresh [CandidateQuery] per entity kind.
type Store interface {
	Titles() CandidateQuery[catalog.Title]
	Creators() CandidateQuery[catalog.Creator]
	RefKeys() CandidateQuery[catalog.RefKey]
	Episodes() CandidateQuery[EpisodeHit]
	Articles() CandidateQuery[ArticleHit]
}

// Completer answers substring lookups for autocomplete, ordered by label.
type Completer interface {
	CompleteTitles(ctx context.Context, q string, limit int) ([]Completion, error)
	CompleteCreators(ctx context.Context, q string, limit int) ([]Completion, error)
	CompleteRefKeys(ctx context.Context, q string, limit int) ([]Completion, error)
}

// Repository is everything the search service reads from storage.
type Repository interface {
	Resolver
	Store
	Completer
}
