// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package numeric

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse reads a localized number from s starting at pos. It consumes the
// longest valid numeric text, returning the value and the index of the first
// unconsumed byte. ok is false when no number starts at pos; the reported
// position is then pos itself.
func (f *Formatter) Parse(s string, pos int) (float64, int, bool) {
	if pos < 0 || pos > len(s) {
		return 0, pos, false
	}
	var buf strings.Builder
	cur := pos

	neg := false
	if m := f.sym.minus; m != "" && strings.HasPrefix(s[cur:], m) {
		neg = true
		cur += len(m)
	}

	digits := 0
	cur = f.scanDigits(s, cur, &buf, &digits, true)

	if !f.digits.ParseIntegerOnly && strings.HasPrefix(s[cur:], f.sym.decimal) {
		var frac strings.Builder
		fracDigits := 0
		end := f.scanDigits(s, cur+len(f.sym.decimal), &frac, &fracDigits, false)
		if fracDigits > 0 {
			buf.WriteByte('.')
			buf.WriteString(frac.String())
			digits += fracDigits
			cur = end
		}
	}

	if digits == 0 {
		return 0, pos, false
	}
	v, err := strconv.ParseFloat(buf.String(), 64)
	if err != nil {
		return 0, pos, false
	}
	if neg {
		v = -v
	}
	return v, cur, true
}

// scanDigits appends ASCII-normalized digits to buf. In the integer part
// (grouping true) a grouping separator is consumed only when another digit
// follows, so a trailing separator is left for the surrounding grammar.
func (f *Formatter) scanDigits(s string, pos int, buf *strings.Builder, count *int, grouping bool) int {
	cur := pos
	for cur < len(s) {
		r, size := utf8.DecodeRuneInString(s[cur:])
		if d := r - f.sym.zero; d >= 0 && d <= 9 {
			buf.WriteByte(byte('0' + d))
			*count++
			cur += size
			continue
		}
		if grouping && f.digits.GroupingUsed && *count > 0 &&
			f.sym.group != "" && strings.HasPrefix(s[cur:], f.sym.group) {
			after := cur + len(f.sym.group)
			if next, _ := utf8.DecodeRuneInString(s[after:]); next-f.sym.zero >= 0 && next-f.sym.zero <= 9 {
				cur = after
				continue
			}
		}
		break
	}
	return cur
}
