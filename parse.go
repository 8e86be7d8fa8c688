package jot

import (
	"jot.mleku.dev/num"
	"jot.mleku.dev/text"
)

// Parse decodes the JSON document in b into a node tree. Anything after
// the top level value other than whitespace is an error. All parse
// failures are *Error values carrying the offset of the first byte that
// could not be interpreted.
func Parse(b []byte) (n *Node, err error) {
	p := parser{buf: b}
	p.skip()
	if n, err = p.value(); err != nil {
		return nil, err
	}
	p.skip()
	if p.pos < len(p.buf) {
		return nil, &Error{Offset: p.pos, Err: ErrTrailingGarbage}
	}
	return
}

// ParseSome is the permissive form of Parse: it decodes one value and
// returns whatever follows it as rem, the caller decides what trailing
// bytes mean.
func ParseSome(b []byte) (n *Node, rem []byte, err error) {
	p := parser{buf: b}
	p.skip()
	if n, err = p.value(); err != nil {
		return nil, nil, err
	}
	rem = p.buf[p.pos:]
	return
}

type parser struct {
	buf []byte
	pos int
}

// skip consumes whitespace, which for compatibility is any byte up to and
// including space, not just the four characters strict JSON names.
func (p *parser) skip() {
	for p.pos < len(p.buf) && p.buf[p.pos] <= 32 {
		p.pos++
	}
}

// literal consumes s if it appears at the cursor.
func (p *parser) literal(s string) bool {
	if len(p.buf)-p.pos >= len(s) && string(p.buf[p.pos:p.pos+len(s)]) == s {
		p.pos += len(s)
		return true
	}
	return false
}

// value dispatches on the first byte at the cursor to one of the six
// productions.
func (p *parser) value() (n *Node, err error) {
	if p.pos >= len(p.buf) {
		return nil, &Error{Offset: p.pos, Err: ErrUnexpectedToken}
	}
	switch c := p.buf[p.pos]; {
	case c == 'n' && p.literal("null"):
		return NewNull(), nil
	case c == 't' && p.literal("true"):
		return NewBool(true), nil
	case c == 'f' && p.literal("false"):
		return NewBool(false), nil
	case c == '"':
		return p.string()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.number()
	case c == '[':
		return p.array()
	case c == '{':
		return p.object()
	}
	return nil, &Error{Offset: p.pos, Err: ErrUnexpectedToken}
}

func (p *parser) number() (n *Node, err error) {
	f, l := num.Parse(p.buf[p.pos:])
	if l == 0 {
		return nil, &Error{Offset: p.pos, Err: ErrMalformed}
	}
	p.pos += l
	return NewNumber(f), nil
}

func (p *parser) string() (n *Node, err error) {
	s, l, e := text.Unescape(p.buf[p.pos:])
	if e != nil {
		return nil, &Error{Offset: p.pos + l, Err: e}
	}
	p.pos += l
	return &Node{Kind: KindString, Str: s}, nil
}

// key decodes the quoted member key at the cursor.
func (p *parser) key() (k []byte, err error) {
	if p.pos >= len(p.buf) || p.buf[p.pos] != '"' {
		return nil, &Error{Offset: p.pos, Err: ErrMalformed}
	}
	k, l, e := text.Unescape(p.buf[p.pos:])
	if e != nil {
		return nil, &Error{Offset: p.pos + l, Err: e}
	}
	p.pos += l
	return
}

func (p *parser) array() (n *Node, err error) {
	n = NewArray()
	p.pos++
	p.skip()
	if p.pos < len(p.buf) && p.buf[p.pos] == ']' {
		p.pos++
		return
	}
	var last *Node
	for {
		p.skip()
		var el *Node
		if el, err = p.value(); err != nil {
			return nil, err
		}
		if last == nil {
			n.Child = el
		} else {
			last.Next = el
		}
		last = el
		p.skip()
		if p.pos < len(p.buf) && p.buf[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if p.pos < len(p.buf) && p.buf[p.pos] == ']' {
		p.pos++
		return
	}
	return nil, &Error{Offset: p.pos, Err: ErrMalformed}
}

func (p *parser) object() (n *Node, err error) {
	n = NewObject()
	p.pos++
	p.skip()
	if p.pos < len(p.buf) && p.buf[p.pos] == '}' {
		p.pos++
		return
	}
	var last *Node
	for {
		p.skip()
		var k []byte
		if k, err = p.key(); err != nil {
			return nil, err
		}
		p.skip()
		if p.pos >= len(p.buf) || p.buf[p.pos] != ':' {
			return nil, &Error{Offset: p.pos, Err: ErrMalformed}
		}
		p.pos++
		p.skip()
		var el *Node
		if el, err = p.value(); err != nil {
			return nil, err
		}
		el.Key = k
		if last == nil {
			n.Child = el
		} else {
			last.Next = el
		}
		last = el
		p.skip()
		if p.pos < len(p.buf) && p.buf[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if p.pos < len(p.buf) && p.buf[p.pos] == '}' {
		p.pos++
		return
	}
	return nil, &Error{Offset: p.pos, Err: ErrMalformed}
}
