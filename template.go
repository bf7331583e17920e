// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package unitfmt

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	slotNumber = 0
	slotPrefix = 1
	slotSymbol = 2
)

// segment is one piece of a compiled template: a slot or literal text.
type segment struct {
	arg  int // slotNumber, slotPrefix or slotSymbol; -1 for a literal
	text string
}

// compileTemplate splits a layout pattern such as "{0} {1}{2}" into
// segments. Each of the three slots must occur exactly once; a lone '{' is
// rejected rather than quoted, which keeps the same pattern usable as a
// parse grammar.
func compileTemplate(format string) ([]segment, error) {
	var segs []segment
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{arg: -1, text: lit.String()})
			lit.Reset()
		}
	}
	var seen [3]bool
	for i := 0; i < len(format); {
		if format[i] != '{' {
			lit.WriteByte(format[i])
			i++
			continue
		}
		if i+2 >= len(format) || format[i+1] < '0' || format[i+1] > '2' || format[i+2] != '}' {
			return nil, fmt.Errorf("template %q: %w", format, ErrTemplate)
		}
		arg := int(format[i+1] - '0')
		if seen[arg] {
			return nil, fmt.Errorf("template %q: %w", format, ErrTemplate)
		}
		seen[arg] = true
		flush()
		segs = append(segs, segment{arg: arg})
		i += 3
	}
	flush()
	if !seen[slotNumber] || !seen[slotPrefix] || !seen[slotSymbol] {
		return nil, fmt.Errorf("template %q: %w", format, ErrTemplate)
	}
	return segs, nil
}

func renderTemplate(segs []segment, numText, prefix, symbol string) string {
	var sb strings.Builder
	for _, seg := range segs {
		switch seg.arg {
		case slotNumber:
			sb.WriteString(numText)
		case slotPrefix:
			sb.WriteString(prefix)
		case slotSymbol:
			sb.WriteString(symbol)
		default:
			sb.WriteString(seg.text)
		}
	}
	return sb.String()
}

// pattern is a parse grammar derived from the template: the symbol is
// inlined as literal text and, for the no-prefix grammar, the prefix slot
// collapses to nothing.
type pattern struct {
	segs []segment
}

func buildPattern(template []segment, withPrefix bool, symbol string) pattern {
	var segs []segment
	lit := func(text string) {
		if text == "" {
			return
		}
		if n := len(segs); n > 0 && segs[n-1].arg == -1 {
			segs[n-1].text += text
			return
		}
		segs = append(segs, segment{arg: -1, text: text})
	}
	for _, seg := range template {
		switch seg.arg {
		case slotNumber:
			segs = append(segs, segment{arg: slotNumber})
		case slotPrefix:
			if withPrefix {
				segs = append(segs, segment{arg: slotPrefix})
			}
		case slotSymbol:
			lit(symbol)
		default:
			lit(seg.text)
		}
	}
	// Outer whitespace never takes part in matching; an empty symbol must
	// not leave a trailing space the input cannot supply.
	if n := len(segs); n > 0 && segs[0].arg == -1 {
		segs[0].text = strings.TrimLeftFunc(segs[0].text, unicode.IsSpace)
		if segs[0].text == "" {
			segs = segs[1:]
		}
	}
	if n := len(segs); n > 0 && segs[n-1].arg == -1 {
		segs[n-1].text = strings.TrimRightFunc(segs[n-1].text, unicode.IsSpace)
		if segs[n-1].text == "" {
			segs = segs[:n-1]
		}
	}
	return pattern{segs: segs}
}

// match runs the pattern against s starting at pos. scale is 1 unless a
// prefix slot matched. A failed match consumes nothing.
func (p pattern) match(s string, pos int, num Numeric, scales []choice) (value, scale float64, end int, ok bool) {
	cur := pos
	scale = 1
	for _, seg := range p.segs {
		switch seg.arg {
		case slotNumber:
			v, next, okNum := num.Parse(s, cur)
			if !okNum {
				return 0, 0, pos, false
			}
			value = v
			cur = next
		case slotPrefix:
			best := -1
			for i, c := range scales {
				if (best < 0 || len(c.prefix) > len(scales[best].prefix)) &&
					strings.HasPrefix(s[cur:], c.prefix) {
					best = i
				}
			}
			if best < 0 {
				return 0, 0, pos, false
			}
			scale = scales[best].scale
			cur += len(scales[best].prefix)
		default:
			if !strings.HasPrefix(s[cur:], seg.text) {
				return 0, 0, pos, false
			}
			cur += len(seg.text)
		}
	}
	return value, scale, cur, true
}

// choice associates a prefix with its scale factor.
type choice struct {
	scale  float64
	prefix string
}

// buildScales lays all prefixes out in ascending order of scale. The
// factors are accumulated by repeated division and multiplication, not
// computed as powers, so parsing reproduces the formatter's floating-point
// rounding bit for bit at extreme scales.
func buildScales(multiples, subdivisions []string, interval float64) []choice {
	scales := make([]choice, len(subdivisions)+len(multiples))
	limit := 1.0
	for i, p := range subdivisions {
		limit /= interval
		scales[len(subdivisions)-i-1] = choice{scale: limit, prefix: p}
	}
	limit = 1.0
	for i, p := range multiples {
		limit *= interval
		scales[len(subdivisions)+i] = choice{scale: limit, prefix: p}
	}
	return scales
}
