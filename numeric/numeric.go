// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package numeric renders real numbers as localized text and parses such
// text back, with the partial-consumption cursor semantics a composite
// formatter needs. Locale symbols come from CLDR via golang.org/x/text.
package numeric

import (
	"math"

	"golang.org/x/text/language"
)

// RoundingMode selects how a value is rounded to MaxFractionDigits.
type RoundingMode int

const (
	// RoundHalfEven rounds to the nearest neighbor, ties to the even digit.
	RoundHalfEven RoundingMode = iota
	// RoundHalfUp rounds to the nearest neighbor, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to the nearest neighbor, ties toward zero.
	RoundHalfDown
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown truncates toward zero.
	RoundDown
)

// UnboundedDigits disables an integer-digit bound.
const UnboundedDigits = math.MaxInt32

// Digits carries the digit-count, grouping and rounding settings of a
// Formatter. It is a plain value; read it with Digits(), adjust the fields
// and write it back with SetDigits().
type Digits struct {
	MinIntegerDigits  int
	MaxIntegerDigits  int // leading digits beyond the bound are dropped
	MinFractionDigits int
	MaxFractionDigits int
	GroupingUsed      bool
	Rounding          RoundingMode
	ParseIntegerOnly  bool
}

// DefaultDigits mirrors a general-purpose locale number formatter: at least
// one integer digit, up to three fraction digits, grouping on, banker's
// rounding.
func DefaultDigits() Digits {
	return Digits{
		MinIntegerDigits:  1,
		MaxIntegerDigits:  UnboundedDigits,
		MinFractionDigits: 0,
		MaxFractionDigits: 3,
		GroupingUsed:      true,
		Rounding:          RoundHalfEven,
	}
}

// Formatter formats and parses real numbers for one locale. It is a mutable
// configuration object and is not safe for concurrent mutation.
type Formatter struct {
	tag    language.Tag
	sym    symbols
	digits Digits
}

// New returns a formatter for the given locale with default digit settings.
func New(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, sym: probe(tag), digits: DefaultDigits()}
}

// Tag reports the formatter's locale.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Digits returns the current digit settings.
func (f *Formatter) Digits() Digits {
	return f.digits
}

// SetDigits replaces the digit settings.
func (f *Formatter) SetDigits(d Digits) {
	f.digits = d
}
