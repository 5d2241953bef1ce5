package utils

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

// IsWhitespace reports whether r is whitespace for user-entered text:
// the Unicode White_Space set plus BOM (U+FEFF), without NEL (U+0085).
// This is the set JavaScript's trim() and \s use, which mobile clients
// rely on when they pre-check input.
func IsWhitespace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func TrimWhitespace(s string) string {
	return strings.TrimFunc(s, IsWhitespace)
}

// StripWhitespace removes every whitespace run from s.
func StripWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, IsWhitespace), "")
}

// UTF16Len - длина строки в кодовых единицах UTF-16, как её считают клиенты
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16Width(r)
	}
	return n
}

// TruncateUTF16 keeps at most max UTF-16 code units of s. A character that
// needs a surrogate pair is dropped whole rather than split.
func TruncateUTF16(s string, max int) string {
	n := 0
	for i, r := range s {
		w := utf16Width(r)
		if n+w > max {
			return s[:i]
		}
		n += w
	}
	return s
}

func utf16Width(r rune) int {
	if w := utf16.RuneLen(r); w > 0 {
		return w
	}
	return 1
}
