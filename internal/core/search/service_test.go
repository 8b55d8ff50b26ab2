// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/comicindex/internal/core/search"
	"github.com/taibuivan/comicindex/internal/platform/apperr"
	"github.com/taibuivan/comicindex/pkg/pointer"
)

// bigTitleRepo holds n published episodes of one title.
func bigTitleRepo(n int) *fakeRepository {
	repo := newFixture()
	repo.episodes = nil
	for i := 0; i < n; i++ {
		repo.episodes = append(repo.episodes, fakeEpisode{
			hit: episode(100+i, titleMandrake, "Trollkarlen", issue(1950+i/60, i%60)),
		})
	}
	return repo
}

/*
TestService_Search resolves, composes and merges.
*/
func TestService_Search(t *testing.T) {
	service := search.NewService(newFixture(), discardLogger())

	result, err := service.Search(context.Background(), url.Values{"q": {"gyllene"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"e3", "e1", "a3"}, hitKeys(result.Hits))
	assert.Empty(t, result.Titles)
	assert.Equal(t, "gyllene", result.Filter.Query)
}

/*
TestService_Search_NotFound fails before composing.
*/
func TestService_Search_NotFound(t *testing.T) {
	repo := newFixture()
	_, err := search.NewService(repo, discardLogger()).Search(context.Background(), url.Values{"k": {"okänd"}})

	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.Empty(t, repo.loads)
}

/*
TestService_Search_CapsHits keeps at most MaxHits.
*/
func TestService_Search_CapsHits(t *testing.T) {
	result, err := search.NewService(bigTitleRepo(100), discardLogger()).
		Search(context.Background(), url.Values{"q": {"troll"}})
	require.NoError(t, err)
	assert.Len(t, result.Hits, search.MaxHits)
}

/*
TestService_Browse lists and paginates every hit of a facet.
*/
func TestService_Browse(t *testing.T) {
	service := search.NewService(bigTitleRepo(100), discardLogger())
	ctx := context.Background()
	facet := search.Facet{Kind: search.FacetTitle, Slug: "mandrake"}

	first, err := service.Browse(ctx, facet, nil)
	require.NoError(t, err)
	require.NotNil(t, first.Pager)
	assert.Equal(t, 100, first.Total)
	assert.Equal(t, 4, first.Pager.TotalPages)
	assert.Len(t, first.Hits, 30)
	assert.Equal(t, "e199", hitKey(first.Hits[0]))

	last, err := service.Browse(ctx, facet, pointer.To(4))
	require.NoError(t, err)
	assert.Len(t, last.Hits, 10)
	assert.Equal(t, "e100", hitKey(last.Hits[9]))

	_, err = service.Browse(ctx, facet, pointer.To(5))
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestService_Browse_Facets resolves every facet kind.
*/
func TestService_Browse_Facets(t *testing.T) {
	service := search.NewService(newFixture(), discardLogger())
	ctx := context.Background()

	tests := []struct {
		facet search.Facet
		want  []string
	}{
		{search.Facet{Kind: search.FacetTitle, Slug: "fantomen"}, []string{"e5", "e2", "a2", "e1"}},
		{search.Facet{Kind: search.FacetCreator, Slug: "lee-falk"}, []string{"a1", "e2", "e3", "e1"}},
		{search.Facet{Kind: search.FacetKey, Slug: "bandar"}, []string{"e2", "e1", "a3"}},
		{search.Facet{Kind: search.FacetFa, Slug: "22"}, []string{"e5", "e2"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.facet.Kind), func(t *testing.T) {
			listing, err := service.Browse(ctx, tt.facet, nil)
			require.NoError(t, err)
			assert.Nil(t, listing.Pager)
			assert.Equal(t, tt.want, hitKeys(listing.Hits))
		})
	}

	_, err := service.Browse(ctx, search.Facet{Kind: search.FacetFa, Slug: "bandar"}, nil)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
