package components

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// --------------------------------------------------------------------------------
// Literal unescaping
// --------------------------------------------------------------------------------

// UnescapeLiteral decodes the escape sequences N-Triples literals may carry:
// \t \b \n \r \f \\ plus \uXXXX and \UXXXXXXXX code point escapes. Any other
// escape, a trailing lone backslash, bad hex digits, or an invalid code
// point is an error naming the byte index and the input; a malformed escape
// must never pass through silently.
func UnescapeLiteral(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", errors.Newf("truncated escape at index %d in %q", i, s)
		}
		switch s[i+1] {
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case 'u':
			r, err := codePoint(s, i, 4)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 2 + 4
		case 'U':
			r, err := codePoint(s, i, 8)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 2 + 8
		default:
			return "", errors.Newf("invalid escape %q at index %d in %q", s[i+1], i, s)
		}
	}

	return b.String(), nil
}

// codePoint decodes the fixed-width hex code point of a \u or \U escape
// starting at index i in s.
func codePoint(s string, i, digits int) (rune, error) {
	start := i + 2
	end := start + digits
	if end > len(s) {
		return 0, errors.Newf("truncated \\%c escape at index %d in %q", s[i+1], i, s)
	}
	value, err := strconv.ParseUint(s[start:end], 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid hex escape at index %d in %q", i, s)
	}
	r := rune(value)
	if !utf8.ValidRune(r) {
		return 0, errors.Newf("invalid code point %#U at index %d in %q", r, i, s)
	}
	return r, nil
}
