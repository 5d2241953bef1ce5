package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestIsWhitespace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\u00A0', '\u3000', '\u2028', '\uFEFF'} {
		assert.True(t, IsWhitespace(r), "%U", r)
	}
	for _, r := range []rune{'a', '神', '\u0085', '\u200B'} {
		assert.False(t, IsWhitespace(r), "%U", r)
	}
}

func TestTrimAndStripWhitespace(t *testing.T) {
	assert.Equal(t, "明治神宮", TrimWhitespace("\uFEFF 明治神宮\u3000"))
	assert.Equal(t, "\u0085明治神宮\u0085", TrimWhitespace("\u0085明治神宮\u0085"))
	assert.Equal(t, "伏見稲荷大社", StripWhitespace(" 伏見\u3000稲荷\uFEFF大社 "))
	assert.Equal(t, "", StripWhitespace(" \t "))
}

func TestTruncateUTF16(t *testing.T) {
	t.Run("counts surrogate pairs as two units", func(t *testing.T) {
		s := strings.Repeat("🙏", 300)
		assert.Equal(t, 600, UTF16Len(s))

		cut := TruncateUTF16(s, 280)
		assert.Equal(t, 280, UTF16Len(cut))
		assert.Equal(t, 140, utf8.RuneCountInString(cut))
	})

	t.Run("does not split a pair at the limit", func(t *testing.T) {
		cut := TruncateUTF16("ab🙏", 3)
		assert.Equal(t, "ab", cut)
		assert.True(t, utf8.ValidString(cut))
	})

	t.Run("short strings are kept", func(t *testing.T) {
		assert.Equal(t, "参拝", TruncateUTF16("参拝", 280))
		assert.Equal(t, "", TruncateUTF16("", 280))
	})
}
