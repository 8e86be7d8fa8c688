package text

import (
	"errors"
)

var (
	// ErrMalformed is returned for a literal with no closing quote or with a
	// trailing backslash at the end of input.
	ErrMalformed = errors.New("malformed string literal")
	// ErrInvalidEscape is returned for an unrecognized escape letter or a
	// \u sequence with fewer than four hex digits.
	ErrInvalidEscape = errors.New("invalid escape sequence")
	// ErrInvalidSurrogate is returned for a lone or mismatched UTF-16
	// surrogate half.
	ErrInvalidSurrogate = errors.New("invalid utf-16 surrogate pair")
)

// leading byte for each UTF-8 encoded length
var firstByteMark = [5]byte{0, 0x00, 0xC0, 0xE0, 0xF0}

// hex4 decodes four hex digits to a UTF-16 code unit.
func hex4(b []byte) (u uint32, ok bool) {
	for i := 0; i < 4; i++ {
		u <<= 4
		switch c := b[i]; {
		case c >= '0' && c <= '9':
			u |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			u |= uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			u |= uint32(c-'A') + 10
		default:
			return 0, false
		}
	}
	return u, true
}

// appendRune encodes the code point u as 1-4 bytes of UTF-8: the
// continuation bytes are filled least significant first, then the leading
// byte gets the length marker.
func appendRune(dst []byte, u uint32) []byte {
	var n int
	switch {
	case u < 0x80:
		n = 1
	case u < 0x800:
		n = 2
	case u < 0x10000:
		n = 3
	default:
		n = 4
	}
	var enc [4]byte
	for i := n - 1; i > 0; i-- {
		enc[i] = byte(u&0x3F | 0x80)
		u >>= 6
	}
	enc[0] = byte(u) | firstByteMark[n]
	return append(dst, enc[:n]...)
}

// Unescape decodes the quoted JSON string literal at the start of b. The
// first pass scans to the closing quote counting bytes, which can only
// over-estimate the decoded length because escapes never expand. The second
// pass copies literal bytes through and decodes escapes, transcoding \uXXXX
// code units (and surrogate pairs) to UTF-8.
//
// On success n is the total number of bytes consumed from b including both
// quotes. On failure n is the offset within b of the offending byte.
func Unescape(b []byte) (out []byte, n int, err error) {
	if len(b) == 0 || b[0] != '"' {
		return nil, 0, ErrMalformed
	}
	// first pass: locate the closing quote
	e := 1
	var approx int
	for {
		if e >= len(b) {
			// ran off the end without a closing quote
			return nil, e, ErrMalformed
		}
		if b[e] == '"' {
			break
		}
		if b[e] == '\\' {
			if e+1 >= len(b) {
				// trailing backslash with nothing after it
				return nil, e, ErrMalformed
			}
			e++
		}
		e++
		approx++
	}
	out = make([]byte, 0, approx)
	i := 1
	for i < e {
		c := b[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		esc := i
		i++
		switch b[i] {
		case 'b':
			out = append(out, '\b')
			i++
		case 'f':
			out = append(out, '\f')
			i++
		case 'n':
			out = append(out, '\n')
			i++
		case 'r':
			out = append(out, '\r')
			i++
		case 't':
			out = append(out, '\t')
			i++
		case '"', '\\', '/':
			out = append(out, b[i])
			i++
		case 'u':
			if i+5 > e {
				return nil, esc, ErrInvalidEscape
			}
			u, ok := hex4(b[i+1 : i+5])
			if !ok {
				return nil, esc, ErrInvalidEscape
			}
			i += 5
			if u == 0 {
				return nil, esc, ErrInvalidEscape
			}
			if u >= 0xDC00 && u <= 0xDFFF {
				// low half with no preceding high half
				return nil, esc, ErrInvalidSurrogate
			}
			if u >= 0xD800 && u <= 0xDBFF {
				if i+6 > e || b[i] != '\\' || b[i+1] != 'u' {
					return nil, esc, ErrInvalidSurrogate
				}
				lo, ok := hex4(b[i+2 : i+6])
				if !ok {
					return nil, esc, ErrInvalidEscape
				}
				if lo < 0xDC00 || lo > 0xDFFF {
					return nil, esc, ErrInvalidSurrogate
				}
				i += 6
				u = 0x10000 + ((u&0x3FF)<<10 | lo&0x3FF)
			}
			out = appendRune(out, u)
		default:
			return nil, esc, ErrInvalidEscape
		}
	}
	return out, e + 1, nil
}
