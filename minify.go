package jot

// Minify strips whitespace, line comments and block comments from raw JSON
// text, rewriting b in place with separate read and write cursors and
// returning the shortened slice. String literals are copied through
// verbatim, escaped quotes included, so nothing inside them is ever
// touched.
func Minify(b []byte) []byte {
	var r, w int
	for r < len(b) {
		switch c := b[r]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			r++
		case c == '/' && r+1 < len(b) && b[r+1] == '/':
			for r < len(b) && b[r] != '\n' {
				r++
			}
		case c == '/' && r+1 < len(b) && b[r+1] == '*':
			r += 2
			for r+1 < len(b) && !(b[r] == '*' && b[r+1] == '/') {
				r++
			}
			if r+1 < len(b) {
				r += 2
			} else {
				// unterminated comment runs to the end
				r = len(b)
			}
		case c == '"':
			b[w] = b[r]
			w++
			r++
			for r < len(b) && b[r] != '"' {
				if b[r] == '\\' {
					b[w] = b[r]
					w++
					r++
					if r >= len(b) {
						break
					}
				}
				b[w] = b[r]
				w++
				r++
			}
			if r < len(b) {
				b[w] = b[r]
				w++
				r++
			}
		default:
			b[w] = c
			w++
			r++
		}
	}
	return b[:w]
}
