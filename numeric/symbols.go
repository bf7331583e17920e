// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package numeric

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// symbols holds the locale's numeric punctuation. The zero digit anchors the
// locale's decimal digit block; '0'..'9' are written and read relative to it.
type symbols struct {
	zero    rune
	group   string
	decimal string
	minus   string
}

// probe derives the symbols from rendered CLDR output instead of a
// hand-maintained table, so x/text stays the single source of truth.
func probe(tag language.Tag) symbols {
	sym := symbols{zero: '0', group: ",", decimal: ".", minus: "-"}
	p := message.NewPrinter(tag)

	if s := p.Sprintf("%v", number.Decimal(0)); s != "" {
		if r, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(r) {
			sym.zero = r
		}
	}

	// 1234567.25 renders with two grouping separators and one decimal
	// separator under the standard #,##0.### pattern; the first and last
	// inter-digit gaps identify them.
	sample := p.Sprintf("%v", number.Decimal(1234567.25))
	var gaps []string
	last := -1
	for i, r := range sample {
		if !unicode.IsDigit(r) {
			continue
		}
		if last >= 0 && i > last {
			gaps = append(gaps, sample[last:i])
		}
		last = i + utf8.RuneLen(r)
	}
	switch {
	case len(gaps) >= 2:
		sym.group = gaps[0]
		sym.decimal = gaps[len(gaps)-1]
	case len(gaps) == 1:
		sym.decimal = gaps[0]
	}

	if s := p.Sprintf("%v", number.Decimal(-1)); s != "" {
		if i := strings.IndexFunc(s, unicode.IsDigit); i > 0 {
			sym.minus = s[:i]
		}
	}
	return sym
}
