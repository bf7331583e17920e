package unitfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestByteSymbol(t *testing.T) {
	assert.Equal(t, "B", byteSymbol(language.AmericanEnglish))
	assert.Equal(t, "B", byteSymbol(language.BritishEnglish))
	assert.Equal(t, "o", byteSymbol(language.French))
	assert.Equal(t, "o", byteSymbol(language.CanadianFrench))
	// locales without a bundle fall back to English
	assert.Equal(t, "B", byteSymbol(language.German))
}
