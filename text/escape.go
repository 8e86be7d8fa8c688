// Package text implements the JSON string literal codec: escaping of raw
// bytes for output per RFC8259, and decoding of quoted literals back into
// raw UTF-8, including \uXXXX escapes and UTF-16 surrogate pairs.
package text

const hexDigits = "0123456789abcdef"

// NeedsEscape reports whether src contains any byte that cannot be emitted
// verbatim inside a JSON string literal: control bytes below 0x20, the
// double quote and the backslash.
func NeedsEscape(src []byte) bool {
	for _, c := range src {
		if c < 32 || c == '"' || c == '\\' {
			return true
		}
	}
	return false
}

// EscapedLen returns the exact number of bytes Escape will produce for src,
// not counting the surrounding quotes. Single-letter escapes add one byte,
// other control bytes expand to the six byte \u00XX form.
func EscapedLen(src []byte) (l int) {
	for _, c := range src {
		switch {
		case c == '"', c == '\\', c == '\b', c == '\f', c == '\n', c == '\r', c == '\t':
			l += 2
		case c < 32:
			l += 6
		default:
			l++
		}
	}
	return
}

// Escape appends the escaped form of src to dst and returns the extended
// slice. The seven single-letter escapes are used where they exist, any
// other byte under 0x20 becomes \u00XX, everything else passes verbatim.
func Escape(dst, src []byte) []byte {
	for _, c := range src {
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 32 {
				dst = append(dst, '\\', 'u', '0', '0',
					hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

// AppendQuote appends src to dst as a quoted, escaped JSON string literal.
func AppendQuote(dst, src []byte) []byte {
	dst = append(dst, '"')
	dst = Escape(dst, src)
	dst = append(dst, '"')
	return dst
}
