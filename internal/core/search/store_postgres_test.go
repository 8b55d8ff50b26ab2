// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/core/ordinal"
	"github.com/taibuivan/comicindex/internal/core/search"
	"github.com/taibuivan/comicindex/internal/platform/apperr"
	"github.com/taibuivan/comicindex/internal/platform/migration"
)

// seedSQL mirrors the in-memory fixture closely enough to exercise every join path.
const seedSQL = `
INSERT INTO core.title (id, name, slug) VALUES
	(1, 'Fantomen', 'fantomen'), (2, 'Mandrake', 'mandrake'), (3, 'Flash Gordon', 'flash-gordon');

INSERT INTO core.creator (id, name, slug) VALUES
	(1, 'Lee Falk', 'lee-falk'), (2, 'Ray Moore', 'ray-moore'), (3, 'Sy Barry', 'sy-barry');

INSERT INTO core.creatoralias (id, creatorid, name) VALUES
	(1, 1, 'Lee Falk'), (2, 1, 'Falk'), (3, 2, 'Ray Moore'), (4, 3, 'Sy Barry'), (5, 3, 'Seymour Barry');

INSERT INTO core.refkey (id, kind, title, slug) VALUES
	(1, 1, 'Bandar', 'bandar'), (2, 1, 'Diana Palmer', 'diana-palmer'), (3, 2, NULL, '22'),
	(4, 3, 'Lee Falk', 'lee-falk'), (5, 4, 'Fantomen', 'fantomen'), (6, 1, '100%_sant', '100-sant');

INSERT INTO core.issue (id, year, number, numberstr, isdouble) VALUES
	(1, 1957, 10, '10', FALSE), (2, 1960, 3, '3', FALSE), (3, 1975, 8, '8-9', TRUE),
	(4, 1965, 1, '1', FALSE), (5, 1980, 4, '4', FALSE), (6, 1977, 5, '5', FALSE);

INSERT INTO core.episode (id, titleid, name, teaser) VALUES
	(1, 1, 'Den gyllene staden', NULL),
	(2, 1, 'Bandarernas hemlighet', 'Skallgrottan'),
	(3, 2, 'Den gyllene masken', NULL),
	(4, 1, 'Opublicerad', NULL);

INSERT INTO core.episodepart (id, episodeid, partno) VALUES
	(1, 1, NULL), (2, 2, 1), (3, 2, 2), (4, 3, NULL), (5, 4, NULL);

INSERT INTO core.episodecredit (episodeid, aliasid, role) VALUES
	(1, 1, 'text'), (2, 2, 'text'), (2, 4, 'bild'), (3, 1, 'text');

INSERT INTO core.episoderefkey (episodeid, refkeyid) VALUES (1, 1), (2, 1), (2, 3);

INSERT INTO core.article (id, title, subtitle) VALUES
	(1, 'Lee Falk berättar', NULL), (2, 'Gyllene år', 'Om skatten');

INSERT INTO core.articlerefkey (articleid, refkeyid) VALUES (1, 4), (2, 1);

INSERT INTO core.publication (issueid, episodepartid, articleid) VALUES
	(1, 1, NULL), (2, 2, NULL), (3, 3, NULL), (4, 4, NULL), (6, NULL, 1);
`

// newPostgresRepository starts a disposable PostgreSQL, migrates and seeds it.
func newPostgresRepository(t *testing.T) *search.PostgresRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("comicindex_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, migration.RunUp(dsn, "../../../data/migrations", discardLogger()))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, seedSQL)
	require.NoError(t, err)

	return search.NewPostgresRepository(pool)
}

/*
TestPostgresRepository runs the storage contract against a real database.
*/
func TestPostgresRepository(t *testing.T) {
	repo := newPostgresRepository(t)
	ctx := context.Background()

	t.Run("generated_ordinal_matches_encode", func(t *testing.T) {
		hits, err := repo.Episodes().Term("hemlighet").Load(ctx, search.NoLimit)
		require.NoError(t, err)
		require.Len(t, hits, 1)

		assert.Equal(t, []ordinal.Ordinal{
			ordinal.MustEncode(1960, 3, false),
			ordinal.MustEncode(1975, 8, true),
		}, hits[0].Published)
		assert.Equal(t, titleFantomen, hits[0].Title)
	})

	t.Run("episodes_newest_first_unpublished_last", func(t *testing.T) {
		hits, err := repo.Episodes().Title(titleFantomen).Load(ctx, search.NoLimit)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 1, 4}, episodeIDs(hits))
		assert.Empty(t, hits[2].Published)
	})

	t.Run("terms_and_facets_narrow", func(t *testing.T) {
		hits, err := repo.Episodes().Term("gyllene").Load(ctx, search.NoLimit)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1}, episodeIDs(hits))

		hits, err = repo.Episodes().Term("gyllene").Creator(creatorFalk).RefKey(keyBandar).Load(ctx, search.NoLimit)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, episodeIDs(hits))

		hits, err = repo.Episodes().Term("skallgrottan").Load(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{2}, episodeIDs(hits))
	})

	t.Run("articles_about_creator", func(t *testing.T) {
		hits, err := repo.Articles().Creator(creatorFalk).Load(ctx, search.NoLimit)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, articleIDs(hits))

		hits, err = repo.Articles().Term("skatten").Load(ctx, search.NoLimit)
		require.NoError(t, err)
		assert.Equal(t, []int{2}, articleIDs(hits))
	})

	t.Run("suggestion_lists", func(t *testing.T) {
		titles, err := repo.Titles().Term("a").Creator(creatorBarry).Load(ctx, search.MaxHits)
		require.NoError(t, err)
		assert.Equal(t, []catalog.Title{titleFantomen}, titles)

		creators, err := repo.Creators().Term("seymour").Load(ctx, search.MaxHits)
		require.NoError(t, err)
		assert.Equal(t, []catalog.Creator{creatorBarry}, creators)

		keys, err := repo.RefKeys().Title(titleFantomen).Load(ctx, search.MaxHits)
		require.NoError(t, err)
		assert.ElementsMatch(t, []catalog.RefKey{keyBandar, keyFa22}, keys)
	})

	t.Run("wildcards_are_literal", func(t *testing.T) {
		keys, err := repo.RefKeys().Term("%_").Load(ctx, search.MaxHits)
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Equal(t, "100-sant", keys[0].Slug)
	})

	t.Run("resolve", func(t *testing.T) {
		creator, err := repo.ResolveCreator(ctx, "seymour-barry")
		require.NoError(t, err)
		assert.Equal(t, creatorBarry, creator)

		key, err := repo.ResolveRefKey(ctx, catalog.KindFa, "22")
		require.NoError(t, err)
		assert.Equal(t, keyFa22, key)

		_, err = repo.ResolveRefKey(ctx, catalog.KindKey, "22")
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

		_, err = repo.ResolveTitle(ctx, "blondie")
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})

	t.Run("autocomplete", func(t *testing.T) {
		got, err := search.NewSuggester(repo).Suggest(ctx, "falk")
		require.NoError(t, err)
		assert.Equal(t, []search.Completion{
			{Kind: search.CompletionCreator, Label: "Falk", Slug: "lee-falk"},
		}, got)
	})
}
