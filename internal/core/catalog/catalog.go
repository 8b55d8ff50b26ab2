// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the read-only entity model of the comic index.

Entities are created by the ingestion path and are only read here: titles own
episodes, episodes are split into parts, and parts and articles are published
into issues through publications. Creators are credited through aliases, and
refkeys tag episodes and articles.
*/
package catalog

import (
	"time"

	"github.com/taibuivan/comicindex/internal/core/ordinal"
)

// # Facet Entities

// Title is a comic series, e.g. "Fantomen".
type Title struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// URL returns the browse path of the title.
func (t Title) URL() string {
	return "/titles/" + t.Slug
}

// Creator is the canonical identity behind one or more credited aliases.
type Creator struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// URL returns the browse path of the creator.
func (c Creator) URL() string {
	return "/who/" + c.Slug
}

// # Content Entities

// Issue is a single printed magazine issue.
type Issue struct {
	ID        int             `json:"id"`
	Ordinal   ordinal.Ordinal `json:"ordinal"`
	NumberStr string          `json:"number_str"`
	Pages     *int            `json:"pages,omitempty"`
	CoverBest *int            `json:"cover_best,omitempty"`
}

// Episode is one story of a title. It may be serialized over several parts.
type Episode struct {
	ID           int        `json:"id"`
	TitleID      int        `json:"title_id"`
	Name         *string    `json:"name,omitempty"`
	OrigName     *string    `json:"orig_name,omitempty"`
	Teaser       *string    `json:"teaser,omitempty"`
	Note         *string    `json:"note,omitempty"`
	Copyright    *string    `json:"copyright,omitempty"`
	OrigLanguage *string    `json:"orig_language,omitempty"`
	OrigDateFrom *time.Time `json:"orig_date_from,omitempty"`
	OrigDateTo   *time.Time `json:"orig_date_to,omitempty"`
	IsSunday     bool       `json:"is_sunday"`
}

// EpisodePart is the unit of an episode that is published in one issue.
type EpisodePart struct {
	ID        int     `json:"id"`
	EpisodeID int     `json:"episode_id"`
	PartNo    *int    `json:"part_no,omitempty"`
	PartName  *string `json:"part_name,omitempty"`
}

// Article is a text feature published directly into issues.
type Article struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// Publication links an issue to either an episode part or an article.
type Publication struct {
	IssueID int             `json:"issue_id"`
	Ordinal ordinal.Ordinal `json:"ordinal"`
	SeqNo   *int            `json:"seq_no,omitempty"`
	Label   string          `json:"label,omitempty"`
}
