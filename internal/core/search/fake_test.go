// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"cmp"
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/core/ordinal"
	"github.com/taibuivan/comicindex/internal/core/search"
	"github.com/taibuivan/comicindex/internal/platform/apperr"
	"github.com/taibuivan/comicindex/pkg/slug"
)

// # In-memory catalog

// errStorage is returned by the fake when a kind is set to fail.
var errStorage = errors.New("connection reset by peer")

type fakeEpisode struct {
	hit      search.EpisodeHit
	creators []int
	refkeys  []int
}

type fakeArticle struct {
	hit      search.ArticleHit
	creators []int
	refkeys  []int
}

// fakeRepository implements search.Repository with in-memory filtering that
// follows the same join paths as the SQL store.
type fakeRepository struct {
	titles   []catalog.Title
	creators []catalog.Creator
	aliases  map[int][]string
	refkeys  []catalog.RefKey
	episodes []fakeEpisode
	articles []fakeArticle

	// failKind makes Load fail for "titles", "creators", "refkeys", "episodes" or "articles".
	failKind string

	loads          []string
	completeLimits []int
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func contains(field *string, term string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), term)
}

func containsText(field, term string) bool {
	return strings.Contains(strings.ToLower(field), term)
}

func (repo *fakeRepository) refKeyByID(id int) catalog.RefKey {
	for _, key := range repo.refkeys {
		if key.ID == id {
			return key
		}
	}
	return catalog.RefKey{}
}

func (repo *fakeRepository) anyEpisode(match func(fakeEpisode) bool) bool {
	return slices.ContainsFunc(repo.episodes, match)
}

// # CandidateQuery

type fakeQuery[T any] struct {
	repo    *fakeRepository
	kind    string
	rows    []T
	preds   []func(T) bool
	term    func(T, string) bool
	title   func(T, catalog.Title) bool
	creator func(T, catalog.Creator) bool
	refkey  func(T, catalog.RefKey) bool
}

func (q *fakeQuery[T]) Term(term string) search.CandidateQuery[T] {
	q.preds = append(q.preds, func(v T) bool { return q.term(v, term) })
	return q
}

func (q *fakeQuery[T]) Title(title catalog.Title) search.CandidateQuery[T] {
	q.preds = append(q.preds, func(v T) bool { return q.title(v, title) })
	return q
}

func (q *fakeQuery[T]) Creator(creator catalog.Creator) search.CandidateQuery[T] {
	q.preds = append(q.preds, func(v T) bool { return q.creator(v, creator) })
	return q
}

func (q *fakeQuery[T]) RefKey(key catalog.RefKey) search.CandidateQuery[T] {
	q.preds = append(q.preds, func(v T) bool { return q.refkey(v, key) })
	return q
}

func (q *fakeQuery[T]) Load(_ context.Context, limit int) ([]T, error) {
	q.repo.loads = append(q.repo.loads, q.kind)
	if q.repo.failKind == q.kind {
		return nil, errStorage
	}

	var out []T
	for _, row := range q.rows {
		keep := true
		for _, pred := range q.preds {
			if !pred(row) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	if limit > search.NoLimit && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// # Store

func (repo *fakeRepository) Titles() search.CandidateQuery[catalog.Title] {
	return &fakeQuery[catalog.Title]{
		repo: repo, kind: "titles", rows: repo.titles,
		term: func(t catalog.Title, term string) bool { return containsText(t.Name, term) },
		title: func(t catalog.Title, other catalog.Title) bool {
			return t.ID == other.ID
		},
		creator: func(t catalog.Title, c catalog.Creator) bool {
			return repo.anyEpisode(func(e fakeEpisode) bool {
				return e.hit.Title.ID == t.ID && slices.Contains(e.creators, c.ID)
			})
		},
		refkey: func(t catalog.Title, k catalog.RefKey) bool {
			return repo.anyEpisode(func(e fakeEpisode) bool {
				return e.hit.Title.ID == t.ID && slices.Contains(e.refkeys, k.ID)
			})
		},
	}
}

func (repo *fakeRepository) Creators() search.CandidateQuery[catalog.Creator] {
	return &fakeQuery[catalog.Creator]{
		repo: repo, kind: "creators", rows: repo.creators,
		term: func(c catalog.Creator, term string) bool {
			return slices.ContainsFunc(repo.aliases[c.ID], func(alias string) bool { return containsText(alias, term) })
		},
		title: func(c catalog.Creator, t catalog.Title) bool {
			return repo.anyEpisode(func(e fakeEpisode) bool {
				return e.hit.Title.ID == t.ID && slices.Contains(e.creators, c.ID)
			})
		},
		creator: func(c catalog.Creator, other catalog.Creator) bool { return c.ID == other.ID },
		refkey: func(c catalog.Creator, k catalog.RefKey) bool {
			return repo.anyEpisode(func(e fakeEpisode) bool {
				return slices.Contains(e.creators, c.ID) && slices.Contains(e.refkeys, k.ID)
			})
		},
	}
}

func (repo *fakeRepository) RefKeys() search.CandidateQuery[catalog.RefKey] {
	var tagLike []catalog.RefKey
	for _, key := range repo.refkeys {
		if key.Kind.IsTagLike() {
			tagLike = append(tagLike, key)
		}
	}
	return &fakeQuery[catalog.RefKey]{
		repo: repo, kind: "refkeys", rows: tagLike,
		term: func(k catalog.RefKey, term string) bool { return containsText(k.Title, term) },
		title: func(k catalog.RefKey, t catalog.Title) bool {
			return repo.anyEpisode(func(e fakeEpisode) bool {
				return e.hit.Title.ID == t.ID && slices.Contains(e.refkeys, k.ID)
			})
		},
		creator: func(k catalog.RefKey, c catalog.Creator) bool {
			return repo.anyEpisode(func(e fakeEpisode) bool {
				return slices.Contains(e.creators, c.ID) && slices.Contains(e.refkeys, k.ID)
			})
		},
		refkey: func(k catalog.RefKey, other catalog.RefKey) bool { return k.ID == other.ID },
	}
}

func (repo *fakeRepository) Episodes() search.CandidateQuery[search.EpisodeHit] {
	rows := make([]fakeEpisode, len(repo.episodes))
	copy(rows, repo.episodes)
	slices.SortStableFunc(rows, func(a, b fakeEpisode) int { return newestFirst(a.hit, b.hit) })

	byID := make(map[int]fakeEpisode, len(rows))
	hits := make([]search.EpisodeHit, len(rows))
	for i, e := range rows {
		byID[e.hit.Episode.ID] = e
		hits[i] = e.hit
	}

	return &fakeQuery[search.EpisodeHit]{
		repo: repo, kind: "episodes", rows: hits,
		term: func(h search.EpisodeHit, term string) bool {
			ep := h.Episode
			return contains(ep.Name, term) || contains(ep.OrigName, term) || contains(ep.Teaser, term) ||
				contains(ep.Note, term) || contains(ep.Copyright, term)
		},
		title: func(h search.EpisodeHit, t catalog.Title) bool { return h.Episode.TitleID == t.ID },
		creator: func(h search.EpisodeHit, c catalog.Creator) bool {
			return slices.Contains(byID[h.Episode.ID].creators, c.ID)
		},
		refkey: func(h search.EpisodeHit, k catalog.RefKey) bool {
			return slices.Contains(byID[h.Episode.ID].refkeys, k.ID)
		},
	}
}

func (repo *fakeRepository) Articles() search.CandidateQuery[search.ArticleHit] {
	rows := make([]fakeArticle, len(repo.articles))
	copy(rows, repo.articles)
	slices.SortStableFunc(rows, func(a, b fakeArticle) int { return newestFirst(a.hit, b.hit) })

	byID := make(map[int]fakeArticle, len(rows))
	hits := make([]search.ArticleHit, len(rows))
	for i, a := range rows {
		byID[a.hit.Article.ID] = a
		hits[i] = a.hit
	}

	taggedAs := func(a fakeArticle, kind catalog.RefKeyKind, s string) bool {
		return slices.ContainsFunc(a.refkeys, func(id int) bool {
			key := repo.refKeyByID(id)
			return key.Kind == kind && key.Slug == s
		})
	}

	return &fakeQuery[search.ArticleHit]{
		repo: repo, kind: "articles", rows: hits,
		term: func(h search.ArticleHit, term string) bool {
			return containsText(h.Article.Title, term) || contains(h.Article.Subtitle, term) || contains(h.Article.Note, term)
		},
		title: func(h search.ArticleHit, t catalog.Title) bool {
			return taggedAs(byID[h.Article.ID], catalog.KindTitle, t.Slug)
		},
		creator: func(h search.ArticleHit, c catalog.Creator) bool {
			a := byID[h.Article.ID]
			return slices.Contains(a.creators, c.ID) || taggedAs(a, catalog.KindWho, c.Slug)
		},
		refkey: func(h search.ArticleHit, k catalog.RefKey) bool {
			return slices.Contains(byID[h.Article.ID].refkeys, k.ID)
		},
	}
}

// newestFirst mirrors the storage ordering: last publication descending, unpublished last.
func newestFirst(a, b search.Hit) int {
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

// # Resolver

func (repo *fakeRepository) ResolveTitle(_ context.Context, s string) (catalog.Title, error) {
	for _, title := range repo.titles {
		if title.Slug == s {
			return title, nil
		}
	}
	return catalog.Title{}, apperr.NotFound("Title")
}

func (repo *fakeRepository) ResolveCreator(_ context.Context, s string) (catalog.Creator, error) {
	for _, creator := range repo.creators {
		if creator.Slug == s {
			return creator, nil
		}
	}
	for _, creator := range repo.creators {
		for _, alias := range repo.aliases[creator.ID] {
			if slug.From(alias) == s {
				return creator, nil
			}
		}
	}
	return catalog.Creator{}, apperr.NotFound("Creator")
}

func (repo *fakeRepository) ResolveRefKey(_ context.Context, kind catalog.RefKeyKind, s string) (catalog.RefKey, error) {
	for _, key := range repo.refkeys {
		if key.Kind == kind && key.Slug == s {
			return key, nil
		}
	}
	return catalog.RefKey{}, apperr.NotFound("Keyword")
}

// # Completer

func (repo *fakeRepository) CompleteTitles(_ context.Context, q string, limit int) ([]search.Completion, error) {
	repo.completeLimits = append(repo.completeLimits, limit)
	var out []search.Completion
	for _, title := range repo.titles {
		if containsText(title.Name, strings.ToLower(q)) {
			out = append(out, search.Completion{Kind: search.CompletionTitle, Label: title.Name, Slug: title.Slug})
		}
	}
	return sortAndLimit(out, limit), nil
}

func (repo *fakeRepository) CompleteCreators(_ context.Context, q string, limit int) ([]search.Completion, error) {
	repo.completeLimits = append(repo.completeLimits, limit)
	var out []search.Completion
	for _, creator := range repo.creators {
		for _, alias := range repo.aliases[creator.ID] {
			if containsText(alias, strings.ToLower(q)) {
				out = append(out, search.Completion{Kind: search.CompletionCreator, Label: alias, Slug: creator.Slug})
				break
			}
		}
	}
	return sortAndLimit(out, limit), nil
}

func (repo *fakeRepository) CompleteRefKeys(_ context.Context, q string, limit int) ([]search.Completion, error) {
	repo.completeLimits = append(repo.completeLimits, limit)
	if repo.failKind == "complete_refkeys" {
		return nil, errStorage
	}
	var out []search.Completion
	for _, key := range repo.refkeys {
		if key.Kind.IsTagLike() && containsText(key.Title, strings.ToLower(q)) {
			out = append(out, search.RefKeyCompletion(key))
		}
	}
	return sortAndLimit(out, limit), nil
}

func sortAndLimit(list []search.Completion, limit int) []search.Completion {
	slices.SortStableFunc(list, func(a, b search.Completion) int { return strings.Compare(a.Label, b.Label) })
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// # Fixtures

func str(s string) *string { return &s }

func issue(year, number int) ordinal.Ordinal {
	return ordinal.MustEncode(year, number, false)
}

var (
	titleFantomen = catalog.Title{ID: 1, Name: "Fantomen", Slug: "fantomen"}
	titleMandrake = catalog.Title{ID: 2, Name: "Mandrake", Slug: "mandrake"}
	titleFlash    = catalog.Title{ID: 3, Name: "Flash Gordon", Slug: "flash-gordon"}

	creatorFalk  = catalog.Creator{ID: 1, Name: "Lee Falk", Slug: "lee-falk"}
	creatorMoore = catalog.Creator{ID: 2, Name: "Ray Moore", Slug: "ray-moore"}
	creatorBarry = catalog.Creator{ID: 3, Name: "Sy Barry", Slug: "sy-barry"}

	keyBandar  = catalog.RefKey{ID: 1, Kind: catalog.KindKey, Title: "Bandar", Slug: "bandar"}
	keyDiana   = catalog.RefKey{ID: 2, Kind: catalog.KindKey, Title: "Diana Palmer", Slug: "diana-palmer"}
	keyFa22    = catalog.RefKey{ID: 3, Kind: catalog.KindFa, Slug: "22"}
	keyWhoFalk = catalog.RefKey{ID: 4, Kind: catalog.KindWho, Title: "Lee Falk", Slug: "lee-falk"}
	keyTitleFa = catalog.RefKey{ID: 5, Kind: catalog.KindTitle, Title: "Fantomen", Slug: "fantomen"}
)

func episode(id int, title catalog.Title, name string, published ...ordinal.Ordinal) search.EpisodeHit {
	return search.EpisodeHit{
		Episode:   catalog.Episode{ID: id, TitleID: title.ID, Name: str(name)},
		Title:     title,
		Published: published,
	}
}

func article(id int, title string, published ...ordinal.Ordinal) search.ArticleHit {
	return search.ArticleHit{
		Article:   catalog.Article{ID: id, Title: title},
		Published: published,
	}
}

// newFixture returns a small catalog covering every join path.
func newFixture() *fakeRepository {
	return &fakeRepository{
		titles:   []catalog.Title{titleFantomen, titleMandrake, titleFlash},
		creators: []catalog.Creator{creatorFalk, creatorMoore, creatorBarry},
		aliases: map[int][]string{
			creatorFalk.ID:  {"Lee Falk", "Falk"},
			creatorMoore.ID: {"Ray Moore"},
			creatorBarry.ID: {"Sy Barry", "Seymour Barry"},
		},
		refkeys: []catalog.RefKey{keyBandar, keyDiana, keyFa22, keyWhoFalk, keyTitleFa},
		episodes: []fakeEpisode{
			{hit: episode(1, titleFantomen, "Den gyllene staden", issue(1957, 10)), creators: []int{1, 2}, refkeys: []int{1}},
			{hit: episode(2, titleFantomen, "Bandarernas hemlighet", issue(1960, 3), issue(1975, 8)), creators: []int{1, 3}, refkeys: []int{1, 3}},
			{hit: episode(3, titleMandrake, "Den gyllene masken", issue(1965, 1)), creators: []int{1}, refkeys: []int{}},
			{hit: episode(4, titleFlash, "Mongos drottning", issue(1970, 12)), creators: []int{}, refkeys: []int{2}},
			{hit: episode(5, titleFantomen, "Diana i fara", issue(1980, 4)), creators: []int{3}, refkeys: []int{2, 3}},
		},
		articles: []fakeArticle{
			{hit: article(1, "Lee Falk berättar", issue(1977, 5)), creators: []int{}, refkeys: []int{4}},
			{hit: article(2, "Fantomens historia", issue(1972, 20)), creators: []int{2}, refkeys: []int{5}},
			{hit: article(3, "Gyllene år"), creators: []int{}, refkeys: []int{1}},
		},
	}
}
