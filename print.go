package jot

import (
	"jot.mleku.dev/num"
	"jot.mleku.dev/printbuf"
	"jot.mleku.dev/text"
)

// The two render strategies differ only in where bytes land, so one
// recursive walk emits through a sink: the buffered form writes straight
// into a growable print buffer, the fragment form collects per-write
// slices and joins them into one exact-size allocation at the end.
type sink interface {
	// write appends b to the output.
	write(b []byte) error
	// grow reserves n bytes and lets fn append into the reserved region.
	// fn must not produce more than n bytes.
	grow(n int, fn func(dst []byte) []byte) error
}

type bufSink struct {
	p *printbuf.P
}

func (s *bufSink) write(b []byte) error { return s.p.Write(b) }

func (s *bufSink) grow(n int, fn func(dst []byte) []byte) (err error) {
	var region []byte
	if region, err = s.p.Ensure(n); err != nil {
		return
	}
	b := fn(region[:0])
	s.p.Advance(len(b))
	return
}

type fragSink struct {
	frags [][]byte
	total int
}

func (s *fragSink) write(b []byte) error {
	s.frags = append(s.frags, b)
	s.total += len(b)
	return nil
}

func (s *fragSink) grow(n int, fn func(dst []byte) []byte) error {
	return s.write(fn(make([]byte, 0, n)))
}

// join concatenates the fragments into one exactly sized buffer and drops
// them.
func (s *fragSink) join() (b []byte) {
	b = make([]byte, 0, s.total)
	for _, f := range s.frags {
		b = append(b, f...)
	}
	s.frags = nil
	s.total = 0
	return
}

var (
	rawNull  = []byte("null")
	rawTrue  = []byte("true")
	rawFalse = []byte("false")
)

// Print renders the tree pretty-printed: one tab per depth before object
// keys, a space after colons and array commas, a newline after each
// member.
func Print(n *Node) (b []byte, err error) {
	s := &fragSink{}
	if err = printValue(n, 0, true, s); err != nil {
		return nil, err
	}
	return s.join(), nil
}

// PrintFlat renders the tree compact, with no whitespace at all.
func PrintFlat(n *Node) (b []byte, err error) {
	s := &fragSink{}
	if err = printValue(n, 0, false, s); err != nil {
		return nil, err
	}
	return s.join(), nil
}

// PrintBuffered renders through a single growable buffer seeded with the
// given capacity hint, which saves the per-node allocations of Print when
// the caller can guess the output size.
func PrintBuffered(n *Node, prebuffer int, pretty bool) (b []byte, err error) {
	s := &bufSink{p: printbuf.New(prebuffer)}
	if err = printValue(n, 0, pretty, s); err != nil {
		return nil, err
	}
	return s.p.Bytes(), nil
}

// Marshal appends the compact rendering of the tree to dst, so nodes can
// slot into larger hand-built messages.
func (n *Node) Marshal(dst []byte) (b []byte) {
	out, err := PrintFlat(n)
	if err != nil {
		return dst
	}
	return append(dst, out...)
}

// String renders compact, mainly for logs and tests.
func (n *Node) String() string {
	b, _ := PrintFlat(n)
	return string(b)
}

func printValue(n *Node, depth int, pretty bool, s sink) error {
	if n == nil {
		return ErrNilNode
	}
	switch n.Kind {
	case KindNull:
		return s.write(rawNull)
	case KindTrue:
		return s.write(rawTrue)
	case KindFalse:
		return s.write(rawFalse)
	case KindNumber:
		return s.grow(num.MaxLen, func(dst []byte) []byte {
			return num.Append(dst, n.Num)
		})
	case KindString:
		return printString(n.Str, s)
	case KindArray:
		return printArray(n, depth, pretty, s)
	case KindObject:
		return printObject(n, depth, pretty, s)
	}
	return ErrNilNode
}

func printString(v []byte, s sink) error {
	return s.grow(text.EscapedLen(v)+2, func(dst []byte) []byte {
		return text.AppendQuote(dst, v)
	})
}

func printTabs(depth int, s sink) error {
	return s.grow(depth, func(dst []byte) []byte {
		for i := 0; i < depth; i++ {
			dst = append(dst, '\t')
		}
		return dst
	})
}

func printArray(n *Node, depth int, pretty bool, s sink) (err error) {
	if n.Child == nil {
		return s.write([]byte{'[', ']'})
	}
	if err = s.write([]byte{'['}); err != nil {
		return
	}
	for c := n.Child; c != nil; c = c.Next {
		if err = printValue(c, depth+1, pretty, s); err != nil {
			return
		}
		if c.Next != nil {
			if pretty {
				err = s.write([]byte{',', ' '})
			} else {
				err = s.write([]byte{','})
			}
			if err != nil {
				return
			}
		}
	}
	return s.write([]byte{']'})
}

func printObject(n *Node, depth int, pretty bool, s sink) (err error) {
	if n.Child == nil {
		return s.write([]byte{'{', '}'})
	}
	if pretty {
		err = s.write([]byte{'{', '\n'})
	} else {
		err = s.write([]byte{'{'})
	}
	if err != nil {
		return
	}
	depth++
	for c := n.Child; c != nil; c = c.Next {
		if pretty {
			if err = printTabs(depth, s); err != nil {
				return
			}
		}
		if err = printString(c.Key, s); err != nil {
			return
		}
		if pretty {
			err = s.write([]byte{':', ' '})
		} else {
			err = s.write([]byte{':'})
		}
		if err != nil {
			return
		}
		if err = printValue(c, depth, pretty, s); err != nil {
			return
		}
		if c.Next != nil {
			if err = s.write([]byte{','}); err != nil {
				return
			}
		}
		if pretty {
			if err = s.write([]byte{'\n'}); err != nil {
				return
			}
		}
	}
	if pretty {
		if err = printTabs(depth-1, s); err != nil {
			return
		}
	}
	return s.write([]byte{'}'})
}
