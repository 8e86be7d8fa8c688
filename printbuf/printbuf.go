// Package printbuf is a growable byte buffer for rendering, with amortized
// doubling growth and a committed-length cursor separating written output
// from reserved scratch space.
package printbuf

import (
	"errors"
)

// ErrTooLarge is returned when the doubling arithmetic overflows.
var ErrTooLarge = errors.New("print buffer size overflow")

// P holds the buffer and the committed cursor. Bytes in [0, Off) are
// committed output; Ensure hands out writable space at Off.
type P struct {
	Buf []byte
	Off int
}

// New returns a buffer with an initial capacity hint.
func New(prebuffer int) *P {
	if prebuffer < 0 {
		prebuffer = 0
	}
	return &P{Buf: make([]byte, prebuffer)}
}

// Ensure guarantees at least n writable bytes past the cursor, growing the
// buffer to max(len, need)*2 when it is too small, and returns the writable
// region of length n. Committed bytes are carried over across growth. On
// overflow the buffer is dropped so later calls fail the same way instead
// of writing through a stale region.
func (p *P) Ensure(n int) (b []byte, err error) {
	need := p.Off + n
	if need < p.Off {
		p.Buf = nil
		p.Off = 0
		return nil, ErrTooLarge
	}
	if need <= len(p.Buf) {
		return p.Buf[p.Off:need], nil
	}
	size := len(p.Buf)
	if need > size {
		size = need
	}
	size *= 2
	if size <= need {
		p.Buf = nil
		p.Off = 0
		return nil, ErrTooLarge
	}
	nb := make([]byte, size)
	copy(nb, p.Buf[:p.Off])
	p.Buf = nb
	return p.Buf[p.Off:need], nil
}

// Advance commits n bytes written into a region handed out by Ensure.
func (p *P) Advance(n int) {
	p.Off += n
}

// Write copies b past the cursor and commits it.
func (p *P) Write(b []byte) (err error) {
	var region []byte
	if region, err = p.Ensure(len(b)); err != nil {
		return
	}
	copy(region, b)
	p.Off += len(b)
	return
}

// Bytes returns the committed output.
func (p *P) Bytes() []byte {
	return p.Buf[:p.Off]
}
