// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/core/ordinal"
	"github.com/taibuivan/comicindex/internal/platform/apperr"
	"github.com/taibuivan/comicindex/internal/platform/database/schema"
	"github.com/taibuivan/comicindex/internal/platform/dberr"
	"github.com/taibuivan/comicindex/pkg/slice"
	"github.com/taibuivan/comicindex/pkg/slug"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
//
// Candidate queries are built as a WHERE clause of EXISTS / IN sub-selects,
// one per narrowing call, so each call can only shrink the result.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed search store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// # Predicate Builder

// predicates accumulates AND-ed conditions and their positional arguments.
type predicates struct {
	conditions []string
	args       []any
}

// arg registers a positional argument and returns its placeholder.
func (p *predicates) arg(value any) string {
	p.args = append(p.args, value)
	return fmt.Sprintf("$%d", len(p.args))
}

// where adds a condition.
func (p *predicates) where(format string, values ...any) {
	p.conditions = append(p.conditions, fmt.Sprintf(format, values...))
}

// clause renders the WHERE clause, or nothing without conditions.
func (p *predicates) clause() string {
	if len(p.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conditions, " AND ")
}

// limit appends a LIMIT clause unless limit is [NoLimit].
func (p *predicates) limit(builder *strings.Builder, limit int) {
	if limit > NoLimit {
		builder.WriteString(fmt.Sprintf(" LIMIT %s", p.arg(limit)))
	}
}

// likePattern escapes LIKE wildcards in term and wraps it for substring match.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}

// ilike renders "column ILIKE placeholder" with an explicit escape character.
func ilike(column, placeholder string) string {
	return fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, column, placeholder)
}

// # Shared Join Paths

// episodesCreditedTo selects episode ids credited to any alias of creator $n.
func episodesCreditedTo(placeholder string) string {
	return fmt.Sprintf(`SELECT ec.%s FROM %s ec JOIN %s ca ON ca.%s = ec.%s WHERE ca.%s = %s`,
		schema.CoreEpisodeCredit.EpisodeID,
		schema.CoreEpisodeCredit.Table, schema.CoreCreatorAlias.Table,
		schema.CoreCreatorAlias.ID, schema.CoreEpisodeCredit.AliasID,
		schema.CoreCreatorAlias.CreatorID, placeholder,
	)
}

// episodesTaggedWith selects episode ids tagged with refkey $n.
func episodesTaggedWith(placeholder string) string {
	return fmt.Sprintf(`SELECT er.%s FROM %s er WHERE er.%s = %s`,
		schema.CoreEpisodeRefKey.EpisodeID, schema.CoreEpisodeRefKey.Table,
		schema.CoreEpisodeRefKey.RefKeyID, placeholder,
	)
}

// episodesOfTitle selects episode ids of title $n.
func episodesOfTitle(placeholder string) string {
	return fmt.Sprintf(`SELECT e.%s FROM %s e WHERE e.%s = %s`,
		schema.CoreEpisode.ID, schema.CoreEpisode.Table, schema.CoreEpisode.TitleID, placeholder,
	)
}

// articlesTaggedAs selects article ids tagged with a refkey of the given kind and slug.
func articlesTaggedAs(kind catalog.RefKeyKind, slugPlaceholder string) string {
	return fmt.Sprintf(`SELECT ar.%s FROM %s ar JOIN %s r ON r.%s = ar.%s WHERE r.%s = %d AND r.%s = %s`,
		schema.CoreArticleRefKey.ArticleID,
		schema.CoreArticleRefKey.Table, schema.CoreRefKey.Table,
		schema.CoreRefKey.ID, schema.CoreArticleRefKey.RefKeyID,
		schema.CoreRefKey.Kind, kind,
		schema.CoreRefKey.Slug, slugPlaceholder,
	)
}

// # Title Candidates

type titleQuery struct {
	pool *pgxpool.Pool
	predicates
}

// Titles implements [Store].
func (repository *PostgresRepository) Titles() CandidateQuery[catalog.Title] {
	return &titleQuery{pool: repository.pool}
}

func (q *titleQuery) Term(term string) CandidateQuery[catalog.Title] {
	q.where("%s", ilike("t."+schema.CoreTitle.Name, q.arg(likePattern(term))))
	return q
}

func (q *titleQuery) Title(title catalog.Title) CandidateQuery[catalog.Title] {
	q.where("t.%s = %s", schema.CoreTitle.ID, q.arg(title.ID))
	return q
}

func (q *titleQuery) Creator(creator catalog.Creator) CandidateQuery[catalog.Title] {
	q.where("t.%s IN (SELECT e.%s FROM %s e WHERE e.%s IN (%s))",
		schema.CoreTitle.ID, schema.CoreEpisode.TitleID, schema.CoreEpisode.Table,
		schema.CoreEpisode.ID, episodesCreditedTo(q.arg(creator.ID)),
	)
	return q
}

func (q *titleQuery) RefKey(key catalog.RefKey) CandidateQuery[catalog.Title] {
	q.where("t.%s IN (SELECT e.%s FROM %s e WHERE e.%s IN (%s))",
		schema.CoreTitle.ID, schema.CoreEpisode.TitleID, schema.CoreEpisode.Table,
		schema.CoreEpisode.ID, episodesTaggedWith(q.arg(key.ID)),
	)
	return q
}

func (q *titleQuery) Load(ctx context.Context, limit int) ([]catalog.Title, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`SELECT t.%s, t.%s, t.%s FROM %s t`,
		schema.CoreTitle.ID, schema.CoreTitle.Name, schema.CoreTitle.Slug, schema.CoreTitle.Table))
	queryBuilder.WriteString(q.clause())
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY t.%s, t.%s", schema.CoreTitle.Name, schema.CoreTitle.ID))
	q.limit(&queryBuilder, limit)

	rows, err := q.pool.Query(ctx, queryBuilder.String(), q.args...)
	if err != nil {
		return nil, dberr.Wrap(err, OpSearchTitles)
	}

	titles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Title, error) {
		var title catalog.Title
		err := row.Scan(&title.ID, &title.Name, &title.Slug)
		return title, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, OpSearchTitles)
	}
	return titles, nil
}

// # Creator Candidates

type creatorQuery struct {
	pool *pgxpool.Pool
	predicates
}

// Creators implements [Store].
func (repository *PostgresRepository) Creators() CandidateQuery[catalog.Creator] {
	return &creatorQuery{pool: repository.pool}
}

// aliasExists renders an EXISTS over the creator's aliases with extra joins and condition.
func aliasExists(joins, condition string) string {
	return fmt.Sprintf(`EXISTS (SELECT 1 FROM %s ca %s WHERE ca.%s = c.%s AND %s)`,
		schema.CoreCreatorAlias.Table, joins,
		schema.CoreCreatorAlias.CreatorID, schema.CoreCreator.ID, condition,
	)
}

func (q *creatorQuery) Term(term string) CandidateQuery[catalog.Creator] {
	q.where("%s", aliasExists("", ilike("ca."+schema.CoreCreatorAlias.Name, q.arg(likePattern(term)))))
	return q
}

func (q *creatorQuery) Title(title catalog.Title) CandidateQuery[catalog.Creator] {
	joins := fmt.Sprintf(`JOIN %s ec ON ec.%s = ca.%s`,
		schema.CoreEpisodeCredit.Table, schema.CoreEpisodeCredit.AliasID, schema.CoreCreatorAlias.ID)
	condition := fmt.Sprintf(`ec.%s IN (%s)`, schema.CoreEpisodeCredit.EpisodeID, episodesOfTitle(q.arg(title.ID)))
	q.where("%s", aliasExists(joins, condition))
	return q
}

func (q *creatorQuery) Creator(creator catalog.Creator) CandidateQuery[catalog.Creator] {
	q.where("c.%s = %s", schema.CoreCreator.ID, q.arg(creator.ID))
	return q
}

func (q *creatorQuery) RefKey(key catalog.RefKey) CandidateQuery[catalog.Creator] {
	joins := fmt.Sprintf(`JOIN %s ec ON ec.%s = ca.%s`,
		schema.CoreEpisodeCredit.Table, schema.CoreEpisodeCredit.AliasID, schema.CoreCreatorAlias.ID)
	condition := fmt.Sprintf(`ec.%s IN (%s)`, schema.CoreEpisodeCredit.EpisodeID, episodesTaggedWith(q.arg(key.ID)))
	q.where("%s", aliasExists(joins, condition))
	return q
}

func (q *creatorQuery) Load(ctx context.Context, limit int) ([]catalog.Creator, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`SELECT c.%s, c.%s, c.%s FROM %s c`,
		schema.CoreCreator.ID, schema.CoreCreator.Name, schema.CoreCreator.Slug, schema.CoreCreator.Table))
	queryBuilder.WriteString(q.clause())
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY c.%s, c.%s", schema.CoreCreator.Name, schema.CoreCreator.ID))
	q.limit(&queryBuilder, limit)

	rows, err := q.pool.Query(ctx, queryBuilder.String(), q.args...)
	if err != nil {
		return nil, dberr.Wrap(err, OpSearchCreators)
	}

	creators, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Creator, error) {
		var creator catalog.Creator
		err := row.Scan(&creator.ID, &creator.Name, &creator.Slug)
		return creator, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, OpSearchCreators)
	}
	return creators, nil
}

// # RefKey Candidates

type refKeyQuery struct {
	pool *pgxpool.Pool
	predicates
}

// RefKeys implements [Store]. Only tag-like kinds are candidates.
func (repository *PostgresRepository) RefKeys() CandidateQuery[catalog.RefKey] {
	q := &refKeyQuery{pool: repository.pool}
	q.where("r.%s IN (%d, %d)", schema.CoreRefKey.Kind, catalog.KindFa, catalog.KindKey)
	return q
}

func (q *refKeyQuery) Term(term string) CandidateQuery[catalog.RefKey] {
	q.where("%s", ilike("r."+schema.CoreRefKey.Title, q.arg(likePattern(term))))
	return q
}

func (q *refKeyQuery) Title(title catalog.Title) CandidateQuery[catalog.RefKey] {
	q.where("r.%s IN (SELECT er.%s FROM %s er WHERE er.%s IN (%s))",
		schema.CoreRefKey.ID, schema.CoreEpisodeRefKey.RefKeyID, schema.CoreEpisodeRefKey.Table,
		schema.CoreEpisodeRefKey.EpisodeID, episodesOfTitle(q.arg(title.ID)),
	)
	return q
}

func (q *refKeyQuery) Creator(creator catalog.Creator) CandidateQuery[catalog.RefKey] {
	q.where("r.%s IN (SELECT er.%s FROM %s er WHERE er.%s IN (%s))",
		schema.CoreRefKey.ID, schema.CoreEpisodeRefKey.RefKeyID, schema.CoreEpisodeRefKey.Table,
		schema.CoreEpisodeRefKey.EpisodeID, episodesCreditedTo(q.arg(creator.ID)),
	)
	return q
}

func (q *refKeyQuery) RefKey(key catalog.RefKey) CandidateQuery[catalog.RefKey] {
	q.where("r.%s = %s", schema.CoreRefKey.ID, q.arg(key.ID))
	return q
}

func (q *refKeyQuery) Load(ctx context.Context, limit int) ([]catalog.RefKey, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`SELECT r.%s, r.%s, COALESCE(r.%s, ''), r.%s FROM %s r`,
		schema.CoreRefKey.ID, schema.CoreRefKey.Kind, schema.CoreRefKey.Title, schema.CoreRefKey.Slug,
		schema.CoreRefKey.Table))
	queryBuilder.WriteString(q.clause())
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY r.%s, r.%s", schema.CoreRefKey.Title, schema.CoreRefKey.Slug))
	q.limit(&queryBuilder, limit)

	rows, err := q.pool.Query(ctx, queryBuilder.String(), q.args...)
	if err != nil {
		return nil, dberr.Wrap(err, OpSearchRefKeys)
	}

	keys, err := pgx.CollectRows(rows, scanRefKey)
	if err != nil {
		return nil, dberr.Wrap(err, OpSearchRefKeys)
	}
	return keys, nil
}

func scanRefKey(row pgx.CollectableRow) (catalog.RefKey, error) {
	var key catalog.RefKey
	err := row.Scan(&key.ID, &key.Kind, &key.Title, &key.Slug)
	return key, err
}

// # Episode Candidates

type episodeQuery struct {
	pool *pgxpool.Pool
	predicates
}

// Episodes implements [Store].
func (repository *PostgresRepository) Episodes() CandidateQuery[EpisodeHit] {
	return &episodeQuery{pool: repository.pool}
}

func (q *episodeQuery) Term(term string) CandidateQuery[EpisodeHit] {
	placeholder := q.arg(likePattern(term))
	fields := []string{
		schema.CoreEpisode.Name,
		schema.CoreEpisode.OrigName,
		schema.CoreEpisode.Teaser,
		schema.CoreEpisode.Note,
		schema.CoreEpisode.Copyright,
	}
	matches := slice.Map(fields, func(field string) string { return ilike("e."+field, placeholder) })
	q.where("(%s)", strings.Join(matches, " OR "))
	return q
}

func (q *episodeQuery) Title(title catalog.Title) CandidateQuery[EpisodeHit] {
	q.where("e.%s = %s", schema.CoreEpisode.TitleID, q.arg(title.ID))
	return q
}

func (q *episodeQuery) Creator(creator catalog.Creator) CandidateQuery[EpisodeHit] {
	q.where("e.%s IN (%s)", schema.CoreEpisode.ID, episodesCreditedTo(q.arg(creator.ID)))
	return q
}

func (q *episodeQuery) RefKey(key catalog.RefKey) CandidateQuery[EpisodeHit] {
	q.where("e.%s IN (%s)", schema.CoreEpisode.ID, episodesTaggedWith(q.arg(key.ID)))
	return q
}

/*
Load returns the matching episodes with their title and publication history.

Description: A LATERAL sub-select aggregates the distinct issue ordinals each
episode was published in, through its parts. Rows are ordered by the latest
ordinal descending with unpublished episodes last.
*/
func (q *episodeQuery) Load(ctx context.Context, limit int) ([]EpisodeHit, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			e.%s, e.%s, e.%s, e.%s, e.%s, e.%s, e.%s, e.%s, e.%s, e.%s, e.%s,
			t.%s, t.%s, t.%s,
			COALESCE(pub.published, '{}')
		FROM %s e
		JOIN %s t ON t.%s = e.%s
		LEFT JOIN LATERAL (
			SELECT array_agg(DISTINCT i.%s ORDER BY i.%s) AS published, MAX(i.%s) AS last
			FROM %s p
			JOIN %s ep ON ep.%s = p.%s
			JOIN %s i ON i.%s = p.%s
			WHERE ep.%s = e.%s
		) pub ON TRUE`,
		schema.CoreEpisode.ID, schema.CoreEpisode.TitleID, schema.CoreEpisode.Name,
		schema.CoreEpisode.OrigName, schema.CoreEpisode.Teaser, schema.CoreEpisode.Note,
		schema.CoreEpisode.Copyright, schema.CoreEpisode.OrigLanguage,
		schema.CoreEpisode.OrigDateFrom, schema.CoreEpisode.OrigDateTo, schema.CoreEpisode.IsSunday,
		schema.CoreTitle.ID, schema.CoreTitle.Name, schema.CoreTitle.Slug,
		schema.CoreEpisode.Table,
		schema.CoreTitle.Table, schema.CoreTitle.ID, schema.CoreEpisode.TitleID,
		schema.CoreIssue.Ordinal, schema.CoreIssue.Ordinal, schema.CoreIssue.Ordinal,
		schema.CorePublication.Table,
		schema.CoreEpisodePart.Table, schema.CoreEpisodePart.ID, schema.CorePublication.EpisodePartID,
		schema.CoreIssue.Table, schema.CoreIssue.ID, schema.CorePublication.IssueID,
		schema.CoreEpisodePart.EpisodeID, schema.CoreEpisode.ID,
	))
	queryBuilder.WriteString(q.clause())
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY pub.last DESC NULLS LAST, e.%s", schema.CoreEpisode.ID))
	q.limit(&queryBuilder, limit)

	rows, err := q.pool.Query(ctx, queryBuilder.String(), q.args...)
	if err != nil {
		return nil, dberr.Wrap(err, OpSearchEpisodes)
	}

	hits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (EpisodeHit, error) {
		var hit EpisodeHit
		var published []int32
		err := row.Scan(
			&hit.Episode.ID, &hit.Episode.TitleID, &hit.Episode.Name,
			&hit.Episode.OrigName, &hit.Episode.Teaser, &hit.Episode.Note,
			&hit.Episode.Copyright, &hit.Episode.OrigLanguage,
			&hit.Episode.OrigDateFrom, &hit.Episode.OrigDateTo, &hit.Episode.IsSunday,
			&hit.Title.ID, &hit.Title.Name, &hit.Title.Slug,
			&published,
		)
		hit.Published = toOrdinals(published)
		return hit, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, OpSearchEpisodes)
	}
	return hits, nil
}

// # Article Candidates

type articleQuery struct {
	pool *pgxpool.Pool
	predicates
}

// Articles implements [Store].
func (repository *PostgresRepository) Articles() CandidateQuery[ArticleHit] {
	return &articleQuery{pool: repository.pool}
}

func (q *articleQuery) Term(term string) CandidateQuery[ArticleHit] {
	placeholder := q.arg(likePattern(term))
	fields := []string{schema.CoreArticle.Title, schema.CoreArticle.Subtitle, schema.CoreArticle.Note}
	matches := slice.Map(fields, func(field string) string { return ilike("a."+field, placeholder) })
	q.where("(%s)", strings.Join(matches, " OR "))
	return q
}

// Title keeps articles about the title, i.e. tagged with a Title-kind refkey of the same slug.
func (q *articleQuery) Title(title catalog.Title) CandidateQuery[ArticleHit] {
	q.where("a.%s IN (%s)", schema.CoreArticle.ID, articlesTaggedAs(catalog.KindTitle, q.arg(title.Slug)))
	return q
}

// Creator keeps articles credited to the creator or about the creator.
func (q *articleQuery) Creator(creator catalog.Creator) CandidateQuery[ArticleHit] {
	credited := fmt.Sprintf(`SELECT ac.%s FROM %s ac JOIN %s ca ON ca.%s = ac.%s WHERE ca.%s = %s`,
		schema.CoreArticleCredit.ArticleID,
		schema.CoreArticleCredit.Table, schema.CoreCreatorAlias.Table,
		schema.CoreCreatorAlias.ID, schema.CoreArticleCredit.AliasID,
		schema.CoreCreatorAlias.CreatorID, q.arg(creator.ID),
	)
	about := articlesTaggedAs(catalog.KindWho, q.arg(creator.Slug))
	q.where("(a.%s IN (%s) OR a.%s IN (%s))", schema.CoreArticle.ID, credited, schema.CoreArticle.ID, about)
	return q
}

func (q *articleQuery) RefKey(key catalog.RefKey) CandidateQuery[ArticleHit] {
	q.where("a.%s IN (SELECT ar.%s FROM %s ar WHERE ar.%s = %s)",
		schema.CoreArticle.ID, schema.CoreArticleRefKey.ArticleID, schema.CoreArticleRefKey.Table,
		schema.CoreArticleRefKey.RefKeyID, q.arg(key.ID),
	)
	return q
}

func (q *articleQuery) Load(ctx context.Context, limit int) ([]ArticleHit, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, COALESCE(pub.published, '{}')
		FROM %s a
		LEFT JOIN LATERAL (
			SELECT array_agg(DISTINCT i.%s ORDER BY i.%s) AS published, MAX(i.%s) AS last
			FROM %s p
			JOIN %s i ON i.%s = p.%s
			WHERE p.%s = a.%s
		) pub ON TRUE`,
		schema.CoreArticle.ID, schema.CoreArticle.Title, schema.CoreArticle.Subtitle, schema.CoreArticle.Note,
		schema.CoreArticle.Table,
		schema.CoreIssue.Ordinal, schema.CoreIssue.Ordinal, schema.CoreIssue.Ordinal,
		schema.CorePublication.Table,
		schema.CoreIssue.Table, schema.CoreIssue.ID, schema.CorePublication.IssueID,
		schema.CorePublication.ArticleID, schema.CoreArticle.ID,
	))
	queryBuilder.WriteString(q.clause())
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY pub.last DESC NULLS LAST, a.%s", schema.CoreArticle.ID))
	q.limit(&queryBuilder, limit)

	rows, err := q.pool.Query(ctx, queryBuilder.String(), q.args...)
	if err != nil {
		return nil, dberr.Wrap(err, OpSearchArticles)
	}

	hits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ArticleHit, error) {
		var hit ArticleHit
		var published []int32
		err := row.Scan(&hit.Article.ID, &hit.Article.Title, &hit.Article.Subtitle, &hit.Article.Note, &published)
		hit.Published = toOrdinals(published)
		return hit, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, OpSearchArticles)
	}
	return hits, nil
}

func toOrdinals(values []int32) []ordinal.Ordinal {
	return slice.Map(values, func(v int32) ordinal.Ordinal { return ordinal.Ordinal(v) })
}

// # Facet Resolution

// ResolveTitle implements [Resolver].
func (repository *PostgresRepository) ResolveTitle(ctx context.Context, titleSlug string) (catalog.Title, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CoreTitle.ID, schema.CoreTitle.Name, schema.CoreTitle.Slug,
		schema.CoreTitle.Table, schema.CoreTitle.Slug)

	var title catalog.Title
	err := repository.pool.QueryRow(ctx, query, titleSlug).Scan(&title.ID, &title.Name, &title.Slug)
	if err != nil {
		return catalog.Title{}, dberr.WrapNotFound(err, "resolve_title", "Title")
	}
	return title, nil
}

/*
ResolveCreator implements [Resolver].

Description: The slug is matched against the canonical creator slug first.
Failing that, aliases whose name could slugify to it are narrowed in SQL and
confirmed in Go with [slug.From], and the owning creator is returned.
*/
func (repository *PostgresRepository) ResolveCreator(ctx context.Context, creatorSlug string) (catalog.Creator, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CoreCreator.ID, schema.CoreCreator.Name, schema.CoreCreator.Slug,
		schema.CoreCreator.Table, schema.CoreCreator.Slug)

	var creator catalog.Creator
	err := repository.pool.QueryRow(ctx, query, creatorSlug).Scan(&creator.ID, &creator.Name, &creator.Slug)
	if err == nil {
		return creator, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return catalog.Creator{}, dberr.Wrap(err, "resolve_creator")
	}

	// Hyphens stand for any run of separators in the alias name
	pattern := strings.ReplaceAll(likePattern(creatorSlug), "-", "%")
	aliasQuery := fmt.Sprintf(`
		SELECT ca.%s, c.%s, c.%s, c.%s
		FROM %s ca
		JOIN %s c ON c.%s = ca.%s
		WHERE %s
		ORDER BY c.%s, ca.%s`,
		schema.CoreCreatorAlias.Name, schema.CoreCreator.ID, schema.CoreCreator.Name, schema.CoreCreator.Slug,
		schema.CoreCreatorAlias.Table,
		schema.CoreCreator.Table, schema.CoreCreator.ID, schema.CoreCreatorAlias.CreatorID,
		ilike("ca."+schema.CoreCreatorAlias.Name, "$1"),
		schema.CoreCreator.ID, schema.CoreCreatorAlias.ID,
	)

	rows, err := repository.pool.Query(ctx, aliasQuery, pattern)
	if err != nil {
		return catalog.Creator{}, dberr.Wrap(err, "resolve_creator_alias")
	}
	defer rows.Close()

	for rows.Next() {
		var alias string
		if err := rows.Scan(&alias, &creator.ID, &creator.Name, &creator.Slug); err != nil {
			return catalog.Creator{}, dberr.Wrap(err, "resolve_creator_alias")
		}
		if slug.From(alias) == creatorSlug {
			return creator, nil
		}
	}
	if err := rows.Err(); err != nil {
		return catalog.Creator{}, dberr.Wrap(err, "resolve_creator_alias")
	}

	ae := apperr.NotFound("Creator")
	ae.Op = "resolve_creator"
	return catalog.Creator{}, ae
}

// ResolveRefKey implements [Resolver].
func (repository *PostgresRepository) ResolveRefKey(ctx context.Context, kind catalog.RefKeyKind, keySlug string) (catalog.RefKey, error) {
	query := fmt.Sprintf(`SELECT %s, %s, COALESCE(%s, ''), %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreRefKey.ID, schema.CoreRefKey.Kind, schema.CoreRefKey.Title, schema.CoreRefKey.Slug,
		schema.CoreRefKey.Table, schema.CoreRefKey.Kind, schema.CoreRefKey.Slug)

	var key catalog.RefKey
	err := repository.pool.QueryRow(ctx, query, int16(kind), keySlug).Scan(&key.ID, &key.Kind, &key.Title, &key.Slug)
	if err != nil {
		return catalog.RefKey{}, dberr.WrapNotFound(err, "resolve_refkey", "Keyword")
	}
	return key, nil
}

// # Autocomplete

// CompleteTitles implements [Completer].
func (repository *PostgresRepository) CompleteTitles(ctx context.Context, q string, limit int) ([]Completion, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s ORDER BY %s LIMIT $2`,
		schema.CoreTitle.Name, schema.CoreTitle.Slug, schema.CoreTitle.Table,
		ilike(schema.CoreTitle.Name, "$1"), schema.CoreTitle.Name)

	rows, err := repository.pool.Query(ctx, query, likePattern(q), limit)
	if err != nil {
		return nil, dberr.Wrap(err, "complete_titles")
	}

	completions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Completion, error) {
		completion := Completion{Kind: CompletionTitle}
		err := row.Scan(&completion.Label, &completion.Slug)
		return completion, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "complete_titles")
	}
	return completions, nil
}

// CompleteCreators implements [Completer]. Each creator is listed once under
// the alphabetically first matching alias.
func (repository *PostgresRepository) CompleteCreators(ctx context.Context, q string, limit int) ([]Completion, error) {
	query := fmt.Sprintf(`
		SELECT MIN(ca.%s) AS label, c.%s
		FROM %s ca
		JOIN %s c ON c.%s = ca.%s
		WHERE %s
		GROUP BY c.%s
		ORDER BY label
		LIMIT $2`,
		schema.CoreCreatorAlias.Name, schema.CoreCreator.Slug,
		schema.CoreCreatorAlias.Table,
		schema.CoreCreator.Table, schema.CoreCreator.ID, schema.CoreCreatorAlias.CreatorID,
		ilike("ca."+schema.CoreCreatorAlias.Name, "$1"),
		schema.CoreCreator.Slug,
	)

	rows, err := repository.pool.Query(ctx, query, likePattern(q), limit)
	if err != nil {
		return nil, dberr.Wrap(err, "complete_creators")
	}

	completions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Completion, error) {
		completion := Completion{Kind: CompletionCreator}
		err := row.Scan(&completion.Label, &completion.Slug)
		return completion, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "complete_creators")
	}
	return completions, nil
}

// CompleteRefKeys implements [Completer] over the tag-like kinds.
func (repository *PostgresRepository) CompleteRefKeys(ctx context.Context, q string, limit int) ([]Completion, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, COALESCE(%s, ''), %s
		FROM %s
		WHERE %s AND %s IN (%d, %d)
		ORDER BY %s
		LIMIT $2`,
		schema.CoreRefKey.ID, schema.CoreRefKey.Kind, schema.CoreRefKey.Title, schema.CoreRefKey.Slug,
		schema.CoreRefKey.Table,
		ilike(schema.CoreRefKey.Title, "$1"), schema.CoreRefKey.Kind, catalog.KindFa, catalog.KindKey,
		schema.CoreRefKey.Title,
	)

	rows, err := repository.pool.Query(ctx, query, likePattern(q), limit)
	if err != nil {
		return nil, dberr.Wrap(err, "complete_refkeys")
	}

	keys, err := pgx.CollectRows(rows, scanRefKey)
	if err != nil {
		return nil, dberr.Wrap(err, "complete_refkeys")
	}
	return slice.Map(keys, RefKeyCompletion), nil
}
