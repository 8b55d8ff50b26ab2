// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"slices"
	"strings"

	"github.com/taibuivan/comicindex/internal/core/catalog"
)

// # Autocomplete

const (
	// SuggestLimit is the target size of an autocomplete list.
	SuggestLimit = 8
	// reservedSlots is the minimum budget each later source is given.
	reservedSlots = 2
)

// Completion kind codes.
const (
	CompletionTitle   = "t"
	CompletionCreator = "p"
	CompletionKey     = "k"
	CompletionFa      = "f"
)

// Completion is one autocomplete suggestion tagged with its source kind.
type Completion struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// RefKeyCompletion builds the completion for a tag-like refkey.
func RefKeyCompletion(key catalog.RefKey) Completion {
	kind := CompletionKey
	if key.Kind == catalog.KindFa {
		kind = CompletionFa
	}
	return Completion{Kind: kind, Label: key.Name(), Slug: key.Slug}
}

// Suggester builds bounded autocomplete lists from titles, creators and
// tag-like refkeys, in that priority.
type Suggester struct {
	completer Completer
}

// NewSuggester constructs a [Suggester].
func NewSuggester(completer Completer) *Suggester {
	return &Suggester{completer: completer}
}

/*
Suggest returns at most [SuggestLimit] completions for q, sorted by label.

Description: Titles are fetched first with the full budget. Creators and then
refkeys are each fetched with max(2, 8 - collected), so they always keep two
slots. When the reserved slots overflow the target, surplus titles are dropped
from the tail of the title list, then surplus creators.

Parameters:
  - ctx: context.Context
  - q: string (substring to match)

Returns:
  - []Completion: Never nil; empty for a blank query
  - error: STORAGE_ERROR on I/O failure
*/
func (suggester *Suggester) Suggest(ctx context.Context, q string) ([]Completion, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []Completion{}, nil
	}

	titles, err := suggester.completer.CompleteTitles(ctx, q, SuggestLimit)
	if err != nil {
		return nil, storageError("complete_titles", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	creators, err := suggester.completer.CompleteCreators(ctx, q, budget(len(titles)))
	if err != nil {
		return nil, storageError("complete_creators", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	refkeys, err := suggester.completer.CompleteRefKeys(ctx, q, budget(len(titles)+len(creators)))
	if err != nil {
		return nil, storageError("complete_refkeys", err)
	}

	surplus := len(titles) + len(creators) + len(refkeys) - SuggestLimit
	titles, surplus = dropTail(titles, surplus)
	creators, _ = dropTail(creators, surplus)

	result := make([]Completion, 0, SuggestLimit)
	result = append(result, titles...)
	result = append(result, creators...)
	result = append(result, refkeys...)

	slices.SortStableFunc(result, func(a, b Completion) int {
		return strings.Compare(a.Label, b.Label)
	})
	return result, nil
}

// budget is the fetch limit for a source after collected suggestions.
func budget(collected int) int {
	return max(reservedSlots, SuggestLimit-collected)
}

// dropTail removes up to n items from the end of list and returns what is
// left to drop.
func dropTail(list []Completion, n int) ([]Completion, int) {
	if n <= 0 {
		return list, 0
	}
	cut := min(n, len(list))
	return list[:len(list)-cut], n - cut
}
