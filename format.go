// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package unitfmt

// Format renders the magnitude with an appropriate prefix. Formatting never
// fails; extreme magnitudes degrade with ordinary float64 precision.
//
// A magnitude exactly at the threshold keeps the current prefix; one exactly
// at threshold/interval adopts the next subdivision.
func (u *UnitFormat) Format(v float64) string {
	prefix := ""
	sign := 1.0
	if v < 0 {
		sign = -1
		v = -v
	}
	if v > u.nextPrefixAt {
		for _, p := range u.multiples {
			if v <= u.nextPrefixAt {
				break
			}
			prefix = p
			v /= u.interval
		}
	} else if v != 0 {
		// Scaling v up by one interval per adopted subdivision keeps the
		// comparison against a fixed shrunken threshold.
		next := u.nextPrefixAt / u.interval
		if v <= next {
			for _, p := range u.subdivisions {
				if v > next {
					break
				}
				prefix = p
				v *= u.interval
			}
		}
	}
	return renderTemplate(u.template, u.num.Format(v*sign), prefix, u.symbol)
}

// FormatInt renders an integer magnitude; see Format.
func (u *UnitFormat) FormatInt(n int64) string {
	return u.Format(float64(n))
}
