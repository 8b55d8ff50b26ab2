// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"cmp"
	"slices"
)

// # Ranking

// MaxHits caps every candidate list and the merged hit list.
const MaxHits = 25

// Merge combines episode and article candidates into one ranked hit list of
// at most [MaxHits] entries.
func Merge(episodes []EpisodeHit, articles []ArticleHit) []Hit {
	hits := make([]Hit, 0, len(episodes)+len(articles))
	for _, h := range episodes {
		hits = append(hits, h)
	}
	for _, h := range articles {
		hits = append(hits, h)
	}
	return Rank(hits, MaxHits)
}

// Rank orders hits by last publication, newest first, and truncates to limit
// (NoLimit keeps every hit). Ties keep their input order and hits without
// publications go last. The input slice is not modified.
func Rank(hits []Hit, limit int) []Hit {
	ranked := slices.Clone(hits)
	if ranked == nil {
		ranked = []Hit{}
	}

	slices.SortStableFunc(ranked, compareHits)

	if limit > NoLimit && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// compareHits sorts descending by last publication with unpublished hits last.
func compareHits(a, b Hit) int {
	lastA, okA := a.LastPublished()
	lastB, okB := b.LastPublished()

	switch {
	case okA && okB:
		return cmp.Compare(lastB, lastA)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}
