// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ordinal encodes an issue identity into a single comparable integer.

An issue is identified by its year, its sequence number within the year and a
flag telling whether it is a double issue. The ordinal packs the triple so that
integer order equals chronological order:

	ordinal = ((year - 1950) * 64 + number) * 2 + double

The ordinal is the only ranking key used by search, browse listings and
title/keyword summaries. The same formula is computed by the database as a
generated column on core.issue, so SQL ordering and Go ordering agree.
*/
package ordinal

import (
	"fmt"
	"strconv"

	"github.com/taibuivan/comicindex/internal/platform/validate"
)

// # Domain

const (
	// BaseYear is the first year that can be encoded.
	BaseYear = 1950
	// MaxYear is the last year that can be encoded.
	MaxYear = BaseYear + 1023
	// MaxNumber is the highest issue number within a year.
	MaxNumber = 63

	numbersPerYear = MaxNumber + 1
)

// Ordinal is the packed, totally ordered form of an [Issue].
type Ordinal int

// Issue is the decoded (year, number, double) triple.
type Issue struct {
	Year   int  `json:"year"`
	Number int  `json:"number"`
	Double bool `json:"double,omitempty"`
}

// # Encoding

// Encode packs an issue triple into its ordinal.
//
// It fails with a VALIDATION_ERROR when number is outside [0, 63] or year is
// outside [1950, 2973].
func Encode(year, number int, double bool) (Ordinal, error) {
	v := &validate.Validator{}
	v.Range("year", year, BaseYear, MaxYear).
		Range("number", number, 0, MaxNumber)
	if err := v.Err(); err != nil {
		return 0, err
	}

	o := ((year-BaseYear)*numbersPerYear + number) * 2
	if double {
		o++
	}
	return Ordinal(o), nil
}

// MustEncode is like [Encode] but panics on invalid input.
// It is meant for constants and fixtures.
func MustEncode(year, number int, double bool) Ordinal {
	o, err := Encode(year, number, double)
	if err != nil {
		panic(fmt.Sprintf("ordinal: invalid issue %d/%d: %v", number, year, err))
	}
	return o
}

// Ordinal returns the packed form of the issue.
func (i Issue) Ordinal() (Ordinal, error) {
	return Encode(i.Year, i.Number, i.Double)
}

// # Decoding

// Decode unpacks the ordinal. It is total for every non-negative value.
func (o Ordinal) Decode() Issue {
	n := int(o) / 2
	return Issue{
		Year:   BaseYear + n/numbersPerYear,
		Number: n % numbersPerYear,
		Double: o%2 == 1,
	}
}

// String renders the decoded issue, e.g. "10-11/1957".
func (o Ordinal) String() string {
	return o.Decode().String()
}

// # Presentation

// Label renders the issue number, spanning two numbers for a double issue.
func (i Issue) Label() string {
	if i.Double {
		return strconv.Itoa(i.Number) + "-" + strconv.Itoa(i.Number+1)
	}
	return strconv.Itoa(i.Number)
}

// String renders the issue as "number/year".
func (i Issue) String() string {
	return i.Label() + "/" + strconv.Itoa(i.Year)
}

// Max returns the largest ordinal of the list and false if the list is empty.
func Max(ordinals []Ordinal) (Ordinal, bool) {
	if len(ordinals) == 0 {
		return 0, false
	}
	best := ordinals[0]
	for _, o := range ordinals[1:] {
		if o > best {
			best = o
		}
	}
	return best, true
}
