// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "fmt"

// # Reference Keys

// RefKeyKind is the fixed kind of a [RefKey]. Values match the stored
// SMALLINT codes and must never be renumbered.
type RefKeyKind int16

const (
	// KindKey is a generic keyword, e.g. "Bandar".
	KindKey RefKeyKind = 1
	// KindFa is a numbered in-universe identity, e.g. the 22nd Phantom.
	KindFa RefKeyKind = 2
	// KindWho is a creator as the subject of an article.
	KindWho RefKeyKind = 3
	// KindTitle is a title as the subject of an article.
	KindTitle RefKeyKind = 4
)

// String returns the lowercase kind name.
func (k RefKeyKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindFa:
		return "fa"
	case KindWho:
		return "who"
	case KindTitle:
		return "title"
	default:
		return fmt.Sprintf("kind(%d)", int16(k))
	}
}

// IsTagLike reports whether the kind is offered as a keyword suggestion.
func (k RefKeyKind) IsTagLike() bool {
	return k == KindKey || k == KindFa
}

// RefKey is a typed tag attached to episodes and articles.
//
// (Kind, Slug) is unique. Fa keys carry no stored title; their display
// name is derived from the slug.
type RefKey struct {
	ID    int        `json:"id"`
	Kind  RefKeyKind `json:"kind"`
	Title string     `json:"title,omitempty"`
	Slug  string     `json:"slug"`
}

// faNames lists the Fa slugs that do not follow the "Den N:e Fantomen" pattern.
var faNames = map[string]string{
	"0":   "Kapten Walker",
	"1":   "Den 1:a Fantomen",
	"17j": "Julie",
	"22h": "Heloise",
	"22k": "Kit",
}

// Name returns the display name of the key.
func (r RefKey) Name() string {
	if r.Kind != KindFa {
		return r.Title
	}
	if name, ok := faNames[r.Slug]; ok {
		return name
	}
	return fmt.Sprintf("Den %s:e Fantomen", r.Slug)
}

// URL returns the browse path of the key.
func (r RefKey) URL() string {
	switch r.Kind {
	case KindFa:
		return "/fa/" + r.Slug
	case KindWho:
		return "/who/" + r.Slug
	case KindTitle:
		return "/titles/" + r.Slug
	default:
		return "/what/" + r.Slug
	}
}
