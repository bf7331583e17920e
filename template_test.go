package unitfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCompileTemplate(t *testing.T) {
	segs, err := compileTemplate(DefaultTemplate)
	require.NoError(t, err)
	assert.Equal(t, []segment{
		{arg: slotNumber},
		{arg: -1, text: " "},
		{arg: slotPrefix},
		{arg: slotSymbol},
	}, segs)
}

func TestCompileTemplateRejects(t *testing.T) {
	for _, format := range []string{
		"",
		"{0} {1}",      // missing symbol slot
		"{0} {1}{2}{1}", // duplicate slot
		"{0} {3}{2}",    // unknown slot
		"{0} {1}{2} {",  // dangling brace
		"plain text",
	} {
		_, err := compileTemplate(format)
		assert.ErrorIs(t, err, ErrTemplate, "template %q", format)
	}
}

func TestReorderedTemplate(t *testing.T) {
	u := NewBytesFor(language.AmericanEnglish)
	require.NoError(t, u.SetTemplate("{1}{2} {0}"))

	assert.Equal(t, "KiB 25.5", u.FormatInt(25*1024+512))
	assert.Equal(t, int64(25*1024+512), mustParseInt(t, u, "KiB 25.5"))
	assert.Equal(t, int64(768), mustParseInt(t, u, "B 768"))
}

func TestTemplateLiterals(t *testing.T) {
	u := NewBytesFor(language.AmericanEnglish)
	require.NoError(t, u.SetTemplate("≈{0} {1}{2}"))

	assert.Equal(t, "≈1 KiB", u.FormatInt(1024))
	assert.Equal(t, int64(1024), mustParseInt(t, u, "≈1 KiB"))
	_, err := u.Parse("1 KiB")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestEmptySymbolTrimsPattern(t *testing.T) {
	u := NewSIFor(language.AmericanEnglish, "")
	// with no symbol the grammar must not demand the trailing space
	assert.Equal(t, int64(25500), mustParseInt(t, u, "25.5 k"))
	assert.Equal(t, int64(42), mustParseInt(t, u, "42"))
}

func TestBuildScales(t *testing.T) {
	scales := buildScales([]string{"Ki", "Mi"}, []string{"m", "µ"}, 1024)
	require.Len(t, scales, 4)

	assert.Equal(t, "µ", scales[0].prefix)
	assert.Equal(t, "m", scales[1].prefix)
	assert.Equal(t, "Ki", scales[2].prefix)
	assert.Equal(t, "Mi", scales[3].prefix)

	assert.Equal(t, 1.0/1024/1024, scales[0].scale)
	assert.Equal(t, 1.0/1024, scales[1].scale)
	assert.Equal(t, 1024.0, scales[2].scale)
	assert.Equal(t, 1024.0*1024.0, scales[3].scale)

	for i := 1; i < len(scales); i++ {
		assert.Less(t, scales[i-1].scale, scales[i].scale)
	}
}
