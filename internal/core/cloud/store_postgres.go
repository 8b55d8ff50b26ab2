// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cloud

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/platform/database/schema"
	"github.com/taibuivan/comicindex/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] with grouped count queries.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed cloud ranking store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
RankTitles implements [Repository].

Description: Titles without any episode part still appear with count zero, so
every title has a place at the bottom of the cloud.
*/
func (repository *PostgresRepository) RankTitles(ctx context.Context, limit int) ([]Counted[catalog.Title], error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s, COUNT(ep.%s) AS n
		FROM %s t
		LEFT JOIN %s e ON e.%s = t.%s
		LEFT JOIN %s ep ON ep.%s = e.%s
		GROUP BY t.%s
		ORDER BY n DESC, t.%s, t.%s
		LIMIT $1`,
		schema.CoreTitle.ID, schema.CoreTitle.Name, schema.CoreTitle.Slug, schema.CoreEpisodePart.ID,
		schema.CoreTitle.Table,
		schema.CoreEpisode.Table, schema.CoreEpisode.TitleID, schema.CoreTitle.ID,
		schema.CoreEpisodePart.Table, schema.CoreEpisodePart.EpisodeID, schema.CoreEpisode.ID,
		schema.CoreTitle.ID,
		schema.CoreTitle.Name, schema.CoreTitle.ID,
	)

	rows, err := repository.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "rank_titles")
	}

	ranking, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Counted[catalog.Title], error) {
		var entry Counted[catalog.Title]
		err := row.Scan(&entry.Item.ID, &entry.Item.Name, &entry.Item.Slug, &entry.Count)
		return entry, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "rank_titles")
	}
	return ranking, nil
}

// RankCreators implements [Repository]. Credits under any alias count for the creator.
func (repository *PostgresRepository) RankCreators(ctx context.Context, limit int) ([]Counted[catalog.Creator], error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, COUNT(DISTINCT ec.%s) AS n
		FROM %s c
		JOIN %s ca ON ca.%s = c.%s
		JOIN %s ec ON ec.%s = ca.%s
		GROUP BY c.%s
		ORDER BY n DESC, c.%s, c.%s
		LIMIT $1`,
		schema.CoreCreator.ID, schema.CoreCreator.Name, schema.CoreCreator.Slug, schema.CoreEpisodeCredit.EpisodeID,
		schema.CoreCreator.Table,
		schema.CoreCreatorAlias.Table, schema.CoreCreatorAlias.CreatorID, schema.CoreCreator.ID,
		schema.CoreEpisodeCredit.Table, schema.CoreEpisodeCredit.AliasID, schema.CoreCreatorAlias.ID,
		schema.CoreCreator.ID,
		schema.CoreCreator.Name, schema.CoreCreator.ID,
	)

	rows, err := repository.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "rank_creators")
	}

	ranking, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Counted[catalog.Creator], error) {
		var entry Counted[catalog.Creator]
		err := row.Scan(&entry.Item.ID, &entry.Item.Name, &entry.Item.Slug, &entry.Count)
		return entry, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "rank_creators")
	}
	return ranking, nil
}

// RankKeywords implements [Repository]. Only Key-kind refkeys take part.
func (repository *PostgresRepository) RankKeywords(ctx context.Context, limit int) ([]Counted[catalog.RefKey], error) {
	query := fmt.Sprintf(`
		SELECT r.%s, r.%s, COALESCE(r.%s, ''), r.%s, COUNT(er.%s) AS n
		FROM %s r
		JOIN %s er ON er.%s = r.%s
		WHERE r.%s = %d
		GROUP BY r.%s
		ORDER BY n DESC, r.%s, r.%s
		LIMIT $1`,
		schema.CoreRefKey.ID, schema.CoreRefKey.Kind, schema.CoreRefKey.Title, schema.CoreRefKey.Slug,
		schema.CoreEpisodeRefKey.EpisodeID,
		schema.CoreRefKey.Table,
		schema.CoreEpisodeRefKey.Table, schema.CoreEpisodeRefKey.RefKeyID, schema.CoreRefKey.ID,
		schema.CoreRefKey.Kind, catalog.KindKey,
		schema.CoreRefKey.ID,
		schema.CoreRefKey.Title, schema.CoreRefKey.ID,
	)

	rows, err := repository.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "rank_keywords")
	}

	ranking, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Counted[catalog.RefKey], error) {
		var entry Counted[catalog.RefKey]
		err := row.Scan(&entry.Item.ID, &entry.Item.Kind, &entry.Item.Title, &entry.Item.Slug, &entry.Count)
		return entry, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "rank_keywords")
	}
	return ranking, nil
}
