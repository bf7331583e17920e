// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Format renders v as localized text under the current digit settings.
// It never fails; NaN and infinities render as "NaN" and "∞".
func (f *Formatter) Format(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	neg := math.Signbit(v)
	if math.IsInf(v, 0) {
		if neg {
			return f.sym.minus + "∞"
		}
		return "∞"
	}

	intPart, fracPart := splitDecimal(strconv.FormatFloat(math.Abs(v), 'f', -1, 64))
	intPart, fracPart = roundDecimal(intPart, fracPart, f.digits.MaxFractionDigits, f.digits.Rounding, neg)

	if f.digits.MaxIntegerDigits >= 0 && len(intPart) > f.digits.MaxIntegerDigits {
		intPart = intPart[len(intPart)-f.digits.MaxIntegerDigits:]
	}
	for len(intPart) < f.digits.MinIntegerDigits {
		intPart = "0" + intPart
	}
	for len(fracPart) < f.digits.MinFractionDigits {
		fracPart += "0"
	}
	for len(fracPart) > f.digits.MinFractionDigits && fracPart[len(fracPart)-1] == '0' {
		fracPart = fracPart[:len(fracPart)-1]
	}
	if f.digits.MinIntegerDigits == 0 && allZero(intPart) && len(fracPart) > 0 {
		intPart = ""
	}
	if neg && allZero(intPart) && allZero(fracPart) {
		neg = false
	}

	var sb strings.Builder
	if neg {
		sb.WriteString(f.sym.minus)
	}
	f.writeGrouped(&sb, intPart)
	if len(fracPart) > 0 {
		sb.WriteString(f.sym.decimal)
		f.writeDigits(&sb, fracPart)
	}
	return sb.String()
}

func splitDecimal(s string) (string, string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

func allZero(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// roundDecimal rounds the decimal digits intPart.fracPart to at most maxFrac
// fraction digits. neg selects the direction for Ceiling/Floor.
func roundDecimal(intPart, fracPart string, maxFrac int, mode RoundingMode, neg bool) (string, string) {
	if maxFrac < 0 {
		maxFrac = 0
	}
	if len(fracPart) <= maxFrac {
		return intPart, fracPart
	}
	keep, rest := fracPart[:maxFrac], fracPart[maxFrac:]

	var up bool
	switch mode {
	case RoundDown:
	case RoundUp:
		up = !allZero(rest)
	case RoundCeiling:
		up = !neg && !allZero(rest)
	case RoundFloor:
		up = neg && !allZero(rest)
	default: // the half modes agree except on exact ties
		switch {
		case rest[0] > '5':
			up = true
		case rest[0] < '5':
		case !allZero(rest[1:]):
			up = true
		case mode == RoundHalfUp:
			up = true
		case mode == RoundHalfDown:
		default: // RoundHalfEven: round up off an odd digit
			last := byte('0')
			if len(keep) > 0 {
				last = keep[len(keep)-1]
			} else if len(intPart) > 0 {
				last = intPart[len(intPart)-1]
			}
			up = (last-'0')%2 == 1
		}
	}
	if !up {
		return intPart, keep
	}
	return incDecimal(intPart, keep)
}

// incDecimal adds one unit in the last place of intPart.fracPart.
func incDecimal(intPart, fracPart string) (string, string) {
	d := []byte(intPart + fracPart)
	i := len(d) - 1
	for ; i >= 0; i-- {
		if d[i] < '9' {
			d[i]++
			break
		}
		d[i] = '0'
	}
	intLen := len(intPart)
	if i < 0 {
		d = append([]byte{'1'}, d...)
		intLen++
	}
	return string(d[:intLen]), string(d[intLen:])
}

func (f *Formatter) writeGrouped(sb *strings.Builder, digits string) {
	n := len(digits)
	for i := 0; i < n; i++ {
		if f.digits.GroupingUsed && i > 0 && (n-i)%3 == 0 {
			sb.WriteString(f.sym.group)
		}
		sb.WriteRune(f.sym.zero + rune(digits[i]-'0'))
	}
}

func (f *Formatter) writeDigits(sb *strings.Builder, digits string) {
	for i := 0; i < len(digits); i++ {
		sb.WriteRune(f.sym.zero + rune(digits[i]-'0'))
	}
}
