package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormatEnglish(t *testing.T) {
	f := New(language.AmericanEnglish)
	for give, want := range map[float64]string{
		0:           "0",
		7:           "7",
		-7:          "-7",
		25.5:        "25.5",
		1234.5:      "1,234.5",
		1234567.891: "1,234,567.891",
		0.125:       "0.125",
	} {
		assert.Equal(t, want, f.Format(give))
	}
}

func TestFormatFrench(t *testing.T) {
	f := New(language.French)
	assert.Equal(t, "25,5", f.Format(25.5))
	assert.Equal(t, "1\u00a0234,5", f.Format(1234.5))
	assert.Equal(t, "-1\u00a0024", f.Format(-1024))
}

func TestFormatDigitBounds(t *testing.T) {
	f := New(language.AmericanEnglish)
	d := f.Digits()

	d.MinIntegerDigits = 3
	f.SetDigits(d)
	assert.Equal(t, "007", f.Format(7))

	d.MinIntegerDigits = 1
	d.MinFractionDigits = 2
	f.SetDigits(d)
	assert.Equal(t, "1.50", f.Format(1.5))
	assert.Equal(t, "2.00", f.Format(2))

	d.MinFractionDigits = 0
	d.MaxFractionDigits = 1
	f.SetDigits(d)
	assert.Equal(t, "0.8", f.Format(0.7509765625))
	assert.Equal(t, "1", f.Format(1.04))

	d.MaxIntegerDigits = 2
	d.GroupingUsed = false
	f.SetDigits(d)
	// overflowing high-order digits are dropped
	assert.Equal(t, "34", f.Format(1234))
}

func TestRoundingModes(t *testing.T) {
	cases := []struct {
		mode RoundingMode
		give float64
		want string
	}{
		{RoundHalfEven, 0.25, "0.2"},
		{RoundHalfEven, 0.75, "0.8"},
		{RoundHalfEven, 0.26, "0.3"},
		{RoundHalfUp, 0.25, "0.3"},
		{RoundHalfUp, -0.25, "-0.3"},
		{RoundHalfDown, 0.25, "0.2"},
		{RoundCeiling, 0.21, "0.3"},
		{RoundCeiling, -0.29, "-0.2"},
		{RoundFloor, 0.29, "0.2"},
		{RoundFloor, -0.21, "-0.3"},
		{RoundUp, 0.91, "1"},
		{RoundDown, 0.99, "0.9"},
		{RoundDown, 12.34, "12.3"},
	}
	f := New(language.AmericanEnglish)
	for _, c := range cases {
		d := f.Digits()
		d.MaxFractionDigits = 1
		d.Rounding = c.mode
		f.SetDigits(d)
		assert.Equal(t, c.want, f.Format(c.give), "mode %v value %v", c.mode, c.give)
	}
}

func TestRoundingCarry(t *testing.T) {
	f := New(language.AmericanEnglish)
	d := f.Digits()
	d.MaxFractionDigits = 1
	f.SetDigits(d)
	assert.Equal(t, "1,000", f.Format(999.96))
	assert.Equal(t, "10", f.Format(9.96))
}

func TestFormatNonFinite(t *testing.T) {
	f := New(language.AmericanEnglish)
	assert.Equal(t, "NaN", f.Format(math.NaN()))
	assert.Equal(t, "∞", f.Format(math.Inf(1)))
	assert.Equal(t, "-∞", f.Format(math.Inf(-1)))
}

func TestParseCursor(t *testing.T) {
	f := New(language.AmericanEnglish)

	v, next, ok := f.Parse("25.5 KiB", 0)
	require.True(t, ok)
	assert.Equal(t, 25.5, v)
	assert.Equal(t, 4, next)

	v, next, ok = f.Parse("1,000 rest", 0)
	require.True(t, ok)
	assert.Equal(t, 1000.0, v)
	assert.Equal(t, 5, next)

	v, next, ok = f.Parse("-12x", 0)
	require.True(t, ok)
	assert.Equal(t, -12.0, v)
	assert.Equal(t, 3, next)

	v, next, ok = f.Parse(".5", 0)
	require.True(t, ok)
	assert.Equal(t, 0.5, v)
	assert.Equal(t, 2, next)

	// offset parsing
	v, next, ok = f.Parse("x=42;", 2)
	require.True(t, ok)
	assert.Equal(t, 42.0, v)
	assert.Equal(t, 4, next)
}

func TestParseStopsAtLoneSeparators(t *testing.T) {
	f := New(language.AmericanEnglish)

	// a grouping separator not followed by a digit stays unconsumed
	v, next, ok := f.Parse("1, KiB", 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 1, next)

	// same for a trailing decimal separator
	v, next, ok = f.Parse("7.", 0)
	require.True(t, ok)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, 1, next)
}

func TestParseFailures(t *testing.T) {
	f := New(language.AmericanEnglish)
	for _, s := range []string{"", "abc", "-", ",5", ". "} {
		_, next, ok := f.Parse(s, 0)
		assert.False(t, ok, "input %q", s)
		assert.Equal(t, 0, next, "input %q", s)
	}
}

func TestParseIntegerOnly(t *testing.T) {
	f := New(language.AmericanEnglish)
	d := f.Digits()
	d.ParseIntegerOnly = true
	f.SetDigits(d)

	v, next, ok := f.Parse("12.5", 0)
	require.True(t, ok)
	assert.Equal(t, 12.0, v)
	assert.Equal(t, 2, next)
}

func TestParseGroupingDisabled(t *testing.T) {
	f := New(language.AmericanEnglish)
	d := f.Digits()
	d.GroupingUsed = false
	f.SetDigits(d)

	v, next, ok := f.Parse("1,000", 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 1, next)
}

func TestParseFrench(t *testing.T) {
	f := New(language.French)

	v, next, ok := f.Parse("25,5 Kio", 0)
	require.True(t, ok)
	assert.Equal(t, 25.5, v)
	assert.Equal(t, 4, next)

	v, _, ok = f.Parse("1\u00a0024", 0)
	require.True(t, ok)
	assert.Equal(t, 1024.0, v)
}

func TestProbedSymbols(t *testing.T) {
	en := New(language.AmericanEnglish)
	assert.Equal(t, ",", en.sym.group)
	assert.Equal(t, ".", en.sym.decimal)
	assert.Equal(t, "-", en.sym.minus)
	assert.Equal(t, '0', en.sym.zero)

	fr := New(language.French)
	assert.Equal(t, "\u00a0", fr.sym.group)
	assert.Equal(t, ",", fr.sym.decimal)
}
