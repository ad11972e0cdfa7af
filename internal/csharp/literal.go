// Package csharp holds the bits of C# lexical grammar the generator needs:
// quoting strings as regular literals and checking identifiers.
package csharp

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote renders s as a double-quoted C# regular string literal.
// Control and non-printable characters become escape sequences; everything
// else is copied through so the generated file stays readable.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// invalid UTF-8 has no C# spelling, emit the replacement character
			b.WriteString(`\ufffd`)
			i++
			continue
		}
		i += size
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case 0:
			b.WriteString(`\0`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		default:
			if needsEscape(r) {
				writeUnicodeEscape(&b, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func needsEscape(r rune) bool {
	switch {
	case r == '\u0085', r == '\u2028', r == '\u2029':
		// line terminators in C# source
		return true
	case unicode.IsControl(r):
		return true
	case unicode.In(r, unicode.Cs, unicode.Co, unicode.Cf):
		return true
	case !unicode.IsPrint(r):
		return !unicode.IsSpace(r)
	}
	return false
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	if r > 0xFFFF {
		// C# \U takes eight hex digits
		fmt.Fprintf(b, `\U%08x`, r)
		return
	}
	fmt.Fprintf(b, `\u%04x`, r)
}
