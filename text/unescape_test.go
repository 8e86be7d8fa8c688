package text

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"unicode/utf8"
)

func TestUnescapeShortEscapes(t *testing.T) {
	in := []byte(`"a\"b\\c\/d\b\f\n\r\t"`)
	out, n, err := Unescape(in)
	if err != nil {
		t.Fatalf("unescape failed: %v at %d", err, n)
	}
	if n != len(in) {
		t.Fatalf("consumed %d of %d", n, len(in))
	}
	want := []byte("a\"b\\c/d\b\f\n\r\t")
	if !bytes.Equal(out, want) {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestUnescapeBasicMultilingual(t *testing.T) {
	out, _, err := Unescape([]byte(`"\u00e9"`))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "é" {
		t.Fatalf("got %q", out)
	}
}

func TestUnescapeSurrogatePair(t *testing.T) {
	out, _, err := Unescape([]byte(`"\ud83d\ude00"`))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "\U0001F600" {
		t.Fatalf("got %x", out)
	}
}

func TestUnescapeConsumesOnlyTheLiteral(t *testing.T) {
	in := []byte(`"key":"value"`)
	out, n, err := Unescape(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "key" || n != 5 {
		t.Fatalf("got %q consumed %d", out, n)
	}
}

func TestUnescapeFailures(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{`"unterminated`, ErrMalformed},
		{`"trailing\`, ErrMalformed},
		{`"\q"`, ErrInvalidEscape},
		{`"\u12g4"`, ErrInvalidEscape},
		{`"\u123"`, ErrInvalidEscape},
		{"\"\\u0000\"", ErrInvalidEscape},
		{`"\udc00"`, ErrInvalidSurrogate},
		{`"\ud800"`, ErrInvalidSurrogate},
		{`"\ud800A"`, ErrInvalidSurrogate},
		{`"\ud800\ud800"`, ErrInvalidSurrogate},
	} {
		_, _, err := Unescape([]byte(tc.in))
		if !errors.Is(err, tc.want) {
			t.Fatalf("%q: got %v want %v", tc.in, err, tc.want)
		}
	}
}

// Every code point outside the surrogate range must transcode from its
// \uXXXX (or pair) form to the same UTF-8 the Go runtime produces.
func TestUnescapeAllCodePoints(t *testing.T) {
	for cp := rune(1); cp <= 0x10FFFF; cp++ {
		if cp >= 0xD800 && cp <= 0xDFFF {
			continue
		}
		var lit string
		if cp < 0x10000 {
			lit = fmt.Sprintf(`"\u%04x"`, cp)
		} else {
			v := cp - 0x10000
			hi := 0xD800 + (v >> 10)
			lo := 0xDC00 + (v & 0x3FF)
			lit = fmt.Sprintf(`"\u%04x\u%04x"`, hi, lo)
		}
		out, _, err := Unescape([]byte(lit))
		if err != nil {
			t.Fatalf("U+%04X: %v", cp, err)
		}
		want := utf8.AppendRune(nil, cp)
		if !bytes.Equal(out, want) {
			t.Fatalf("U+%04X: got %x want %x", cp, out, want)
		}
	}
}
