// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package unitfmt

// Number is a parsed magnitude. It records whether the unscaled result is an
// exact integer, so counts such as byte sizes round-trip without spurious
// fractional artifacts.
type Number struct {
	value    float64
	integral bool
}

// Float64 returns the magnitude.
func (n Number) Float64() float64 {
	return n.value
}

// Integral reports whether the magnitude is an exact integer.
func (n Number) Integral() bool {
	return n.integral
}

// Int64 returns the magnitude as an integer when it is one exactly.
func (n Number) Int64() (int64, bool) {
	if !n.integral {
		return 0, false
	}
	return int64(n.value), true
}

const maxExactInt = float64(1 << 63)

func makeNumber(v float64) Number {
	// float64→int64 conversion is only defined inside the int64 range
	if v >= -maxExactInt && v < maxExactInt {
		if l := int64(v); float64(l) == v {
			return Number{value: v, integral: true}
		}
	}
	return Number{value: v}
}

// ParseAt reads a prefixed or unprefixed magnitude from s starting at pos
// and reports the index of the first unconsumed byte. Both grammars are
// always attempted from pos; the prefixed reading wins only by consuming
// strictly more input. On failure the cursor does not advance and ErrSyntax
// is returned.
func (u *UnitFormat) ParseAt(s string, pos int) (Number, int, error) {
	if pos < 0 || pos > len(s) {
		return Number{}, pos, ErrSyntax
	}
	var value float64
	scale := 1.0
	end := -1

	if v, _, e, ok := u.noPrefix.match(s, pos, u.num, nil); ok && e != pos {
		value, end = v, e
	}
	if v, sc, e, ok := u.withPrefix.match(s, pos, u.num, u.scales); ok && e != pos && e > end {
		value, scale, end = v, sc, e
	} else if end < 0 {
		return Number{}, pos, ErrSyntax
	}
	return makeNumber(value * scale), end, nil
}

// Parse reads a magnitude from the start of s. Trailing text after the
// match is ignored.
func (u *UnitFormat) Parse(s string) (Number, error) {
	n, _, err := u.ParseAt(s, 0)
	return n, err
}
