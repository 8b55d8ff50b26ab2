// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cloud builds popularity clouds over titles, creators and keywords.

A cloud is computed in two passes. Items are ranked by how often they occur
in the catalog and each rank is mapped onto a weight class; the weighted items
are then displayed in their natural (alphabetical) order.

Rankings are aggregate queries over the whole catalog, so the [Service] keeps
them in Redis for a configurable TTL.
*/
package cloud

import "slices"

// MaxWeight is the weight class of the most popular item.
const MaxWeight = 8

// Counted is one ranked item with its occurrence count.
type Counted[T any] struct {
	Item  T   `json:"item"`
	Count int `json:"count"`
}

// Weighted is a cloud entry with its display weight class.
type Weighted[T any] struct {
	Item   T   `json:"item"`
	Count  int `json:"count"`
	Weight int `json:"weight"`
}

/*
Weigh assigns weight classes to a count-ranked list.

Description: ranked must be sorted by count descending. The item at
zero-based rank n of N gets floor(MaxWeight*(N-n)/N), so weights never increase
down the ranking. The result is then stably re-sorted by less for display; each
item keeps the weight of its rank.

Parameters:
  - ranked: []Counted[T] (most popular first)
  - less: func(a, b T) bool (display order)

Returns:
  - []Weighted[T]: Display-ordered cloud, empty for an empty ranking
*/
func Weigh[T any](ranked []Counted[T], less func(a, b T) bool) []Weighted[T] {
	total := len(ranked)
	cloud := make([]Weighted[T], 0, total)

	for rank, entry := range ranked {
		cloud = append(cloud, Weighted[T]{
			Item:   entry.Item,
			Count:  entry.Count,
			Weight: MaxWeight * (total - rank) / total,
		})
	}

	slices.SortStableFunc(cloud, func(a, b Weighted[T]) int {
		switch {
		case less(a.Item, b.Item):
			return -1
		case less(b.Item, a.Item):
			return 1
		default:
			return 0
		}
	})

	return cloud
}
