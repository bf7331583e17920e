// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package unitfmt formats a numeric magnitude by choosing an appropriate
// unit prefix, turning 26112 into "25.5 KiB" or 0.05 into "50 mm", and
// parses such strings back into raw magnitudes. Formatting of the scaled
// number itself is delegated to a locale-aware Numeric collaborator.
package unitfmt

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/language"

	"github.com/antgroup/unitfmt/locale"
	"github.com/antgroup/unitfmt/numeric"
)

// Numeric is the number formatting capability a UnitFormat delegates to:
// locale-aware rendering of a real number and the inverse with
// partial-consumption cursor semantics. numeric.Formatter is the production
// implementation; any substitute satisfying this contract may be injected.
type Numeric interface {
	Format(v float64) string
	Parse(s string, pos int) (v float64, next int, ok bool)
	Digits() numeric.Digits
	SetDigits(numeric.Digits)
}

var (
	ErrInterval  = errors.New("interval must be greater than 1")
	ErrThreshold = errors.New("next prefix threshold must be positive")
	ErrPrefix    = errors.New("duplicate or empty prefix")
	ErrTemplate  = errors.New("template must reference {0}, {1} and {2} exactly once")
	ErrSyntax    = errors.New("unit syntax error")
)

// DefaultTemplate lays text out as "<number> <prefix><symbol>". Slot 0 is
// the formatted number, slot 1 the prefix, slot 2 the base symbol.
const DefaultTemplate = "{0} {1}{2}"

var (
	// SI prefixes at intervals of 1000.
	siMultiples    = []string{"k", "M", "G", "T", "P", "E", "Z", "Y"}
	siSubdivisions = []string{"m", "µ", "n", "p", "f", "a", "z", "y"}

	// IEC binary prefixes at intervals of 1024.
	iecMultiples = []string{"Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"}

	// Binary intervals behind SI letters; kept only for legacy output.
	confusingMultiples = []string{"K", "M", "G", "T", "P", "E", "Z", "Y"}
)

// UnitFormat selects a unit prefix for a magnitude and scales the number
// accordingly, and parses the textual form back. It is a mutable
// configuration object; concurrent use of one instance requires external
// synchronization, distinct instances are fully independent.
type UnitFormat struct {
	num          Numeric
	symbol       string
	interval     float64
	nextPrefixAt float64
	format       string
	template     []segment
	multiples    []string
	subdivisions []string

	// derived parse grammar, rebuilt by recompile
	noPrefix   pattern
	withPrefix pattern
	scales     []choice
}

var systemTag = sync.OnceValue(func() language.Tag {
	t, err := locale.Detect()
	if err != nil {
		return language.AmericanEnglish
	}
	return t
})

// SystemLocale reports the locale the no-argument constructors use,
// detected once from the environment.
func SystemLocale() language.Tag {
	return systemTag()
}

func newUnitFormat(num Numeric, symbol string) *UnitFormat {
	segs, err := compileTemplate(DefaultTemplate)
	if err != nil {
		panic(err) // the default template always compiles
	}
	u := &UnitFormat{
		num:          num,
		symbol:       symbol,
		interval:     1000,
		nextPrefixAt: 750,
		format:       DefaultTemplate,
		template:     segs,
		multiples:    slices.Clone(siMultiples),
		subdivisions: slices.Clone(siSubdivisions),
	}
	u.recompile()
	return u
}

// NewSI returns a formatter with SI prefixes at intervals of 1000, a next
// prefix threshold of 750 and the given base symbol, using the system
// locale's number formatting.
func NewSI(symbol string) *UnitFormat {
	return NewSIFor(systemTag(), symbol)
}

// NewSIFor is NewSI for an explicit locale.
func NewSIFor(tag language.Tag, symbol string) *UnitFormat {
	return newUnitFormat(numeric.New(tag), symbol)
}

// NewSIBytes returns a byte formatter with SI prefixes at intervals of 1000
// and a next prefix threshold of 750. The symbol is the locale's byte symbol
// ("B", or "o" in French); digits are bounded to at least one integer digit
// and at most one fraction digit.
func NewSIBytes() *UnitFormat {
	return NewSIBytesFor(systemTag())
}

// NewSIBytesFor is NewSIBytes for an explicit locale.
func NewSIBytesFor(tag language.Tag) *UnitFormat {
	num := numeric.New(tag)
	d := num.Digits()
	d.MinIntegerDigits = 1
	d.MaxIntegerDigits = numeric.UnboundedDigits
	d.MinFractionDigits = 0
	d.MaxFractionDigits = 1
	num.SetDigits(d)
	return newUnitFormat(num, byteSymbol(tag))
}

// NewBytes returns a byte formatter with IEC prefixes (Ki, Mi, ...) at
// intervals of 1024 and a next prefix threshold of 768, otherwise configured
// like NewSIBytes.
func NewBytes() *UnitFormat {
	return NewBytesFor(systemTag())
}

// NewBytesFor is NewBytes for an explicit locale.
func NewBytesFor(tag language.Tag) *UnitFormat {
	u := NewSIBytesFor(tag)
	u.interval = 1024
	u.nextPrefixAt = 768
	u.multiples = slices.Clone(iecMultiples)
	u.recompile()
	return u
}

// NewConfusingBytes returns a byte formatter using binary intervals of 1024
// behind plain SI letters (K, M, ...).
//
// Deprecated: the output is indistinguishable from decimal SI sizes; it
// exists only for compatibility with legacy consumers. Use NewBytes.
func NewConfusingBytes() *UnitFormat {
	return NewConfusingBytesFor(systemTag())
}

// NewConfusingBytesFor is NewConfusingBytes for an explicit locale.
//
// Deprecated: see NewConfusingBytes.
func NewConfusingBytesFor(tag language.Tag) *UnitFormat {
	u := NewBytesFor(tag)
	u.multiples = slices.Clone(confusingMultiples)
	u.recompile()
	return u
}

// recompile rebuilds the derived parse grammar: the no-prefix and
// with-prefix patterns and the scale table. Every setter that affects
// formatting or parsing funnels through here, so a Parse call always sees
// the latest configuration.
func (u *UnitFormat) recompile() {
	u.noPrefix = buildPattern(u.template, false, u.symbol)
	u.withPrefix = buildPattern(u.template, true, u.symbol)
	u.scales = buildScales(u.multiples, u.subdivisions, u.interval)
}

// Symbol returns the base unit's symbol.
func (u *UnitFormat) Symbol() string {
	return u.symbol
}

// SetSymbol replaces the base unit's symbol.
func (u *UnitFormat) SetSymbol(symbol string) {
	u.symbol = symbol
	u.recompile()
}

// Interval returns the ratio between adjacent prefix steps, 1000 by default.
func (u *UnitFormat) Interval() float64 {
	return u.interval
}

// SetInterval replaces the ratio between adjacent prefix steps.
func (u *UnitFormat) SetInterval(interval float64) error {
	if !(interval > 1) {
		return fmt.Errorf("interval %v: %w", interval, ErrInterval)
	}
	u.interval = interval
	u.recompile()
	return nil
}

// NextPrefixAt returns the largest magnitude formatted before the next
// larger prefix is used, 750 by default.
func (u *UnitFormat) NextPrefixAt() float64 {
	return u.nextPrefixAt
}

// SetNextPrefixAt replaces the next-prefix threshold. The threshold only
// steers formatting; parsing accepts any configured prefix, so this is the
// one setter that does not rebuild the parse grammar.
func (u *UnitFormat) SetNextPrefixAt(at float64) error {
	if !(at > 0) {
		return fmt.Errorf("threshold %v: %w", at, ErrThreshold)
	}
	u.nextPrefixAt = at
	return nil
}

// Template returns the 3-slot layout pattern, DefaultTemplate by default.
func (u *UnitFormat) Template() string {
	return u.format
}

// SetTemplate replaces the layout pattern. The pattern must reference each
// of {0} (number), {1} (prefix) and {2} (symbol) exactly once; anything else
// is matched literally when parsing.
func (u *UnitFormat) SetTemplate(format string) error {
	segs, err := compileTemplate(format)
	if err != nil {
		return err
	}
	u.format = format
	u.template = segs
	u.recompile()
	return nil
}

// Multiples returns a copy of the multiple prefixes in increasing order of
// magnitude, starting at one interval.
func (u *UnitFormat) Multiples() []string {
	return slices.Clone(u.multiples)
}

// SetMultiples replaces the multiple prefixes. The list may be empty, which
// disables scaling up, but must not repeat a prefix or contain the empty
// string.
func (u *UnitFormat) SetMultiples(multiples []string) error {
	if err := validatePrefixes(multiples); err != nil {
		return err
	}
	u.multiples = slices.Clone(multiples)
	u.recompile()
	return nil
}

// Subdivisions returns a copy of the subdivision prefixes in decreasing
// order of magnitude, starting at one interval below the base unit.
func (u *UnitFormat) Subdivisions() []string {
	return slices.Clone(u.subdivisions)
}

// SetSubdivisions replaces the subdivision prefixes, under the same rules as
// SetMultiples.
func (u *UnitFormat) SetSubdivisions(subdivisions []string) error {
	if err := validatePrefixes(subdivisions); err != nil {
		return err
	}
	u.subdivisions = slices.Clone(subdivisions)
	u.recompile()
	return nil
}

func validatePrefixes(list []string) error {
	seen := make(map[string]struct{}, len(list))
	for _, p := range list {
		if p == "" {
			return fmt.Errorf("empty string: %w", ErrPrefix)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%q: %w", p, ErrPrefix)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Numeric returns the delegate number formatter.
func (u *UnitFormat) Numeric() Numeric {
	return u.num
}

// SetNumeric injects a replacement number formatter.
func (u *UnitFormat) SetNumeric(num Numeric) {
	u.num = num
	u.recompile()
}

// The digit settings below are owned by the delegate; UnitFormat only
// forwards them.

func (u *UnitFormat) MinimumIntegerDigits() int { return u.num.Digits().MinIntegerDigits }

func (u *UnitFormat) SetMinimumIntegerDigits(n int) {
	d := u.num.Digits()
	d.MinIntegerDigits = n
	u.num.SetDigits(d)
	u.recompile()
}

func (u *UnitFormat) MaximumIntegerDigits() int { return u.num.Digits().MaxIntegerDigits }

func (u *UnitFormat) SetMaximumIntegerDigits(n int) {
	d := u.num.Digits()
	d.MaxIntegerDigits = n
	u.num.SetDigits(d)
	u.recompile()
}

func (u *UnitFormat) MinimumFractionDigits() int { return u.num.Digits().MinFractionDigits }

func (u *UnitFormat) SetMinimumFractionDigits(n int) {
	d := u.num.Digits()
	d.MinFractionDigits = n
	u.num.SetDigits(d)
	u.recompile()
}

func (u *UnitFormat) MaximumFractionDigits() int { return u.num.Digits().MaxFractionDigits }

func (u *UnitFormat) SetMaximumFractionDigits(n int) {
	d := u.num.Digits()
	d.MaxFractionDigits = n
	u.num.SetDigits(d)
	u.recompile()
}

func (u *UnitFormat) GroupingUsed() bool { return u.num.Digits().GroupingUsed }

func (u *UnitFormat) SetGroupingUsed(used bool) {
	d := u.num.Digits()
	d.GroupingUsed = used
	u.num.SetDigits(d)
	u.recompile()
}

func (u *UnitFormat) RoundingMode() numeric.RoundingMode { return u.num.Digits().Rounding }

func (u *UnitFormat) SetRoundingMode(mode numeric.RoundingMode) {
	d := u.num.Digits()
	d.Rounding = mode
	u.num.SetDigits(d)
	u.recompile()
}

func (u *UnitFormat) ParseIntegerOnly() bool { return u.num.Digits().ParseIntegerOnly }

func (u *UnitFormat) SetParseIntegerOnly(only bool) {
	d := u.num.Digits()
	d.ParseIntegerOnly = only
	u.num.SetDigits(d)
	u.recompile()
}
