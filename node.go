package jot

import (
	"bytes"
)

// Node is one element of a document tree. Exactly one owner points at any
// node: its parent through Child for the first child, or the previous
// sibling through Next. There are no parent or prev links, the tree is
// walked downward and forward only.
type Node struct {
	Kind Kind
	// Ref marks a node that shares Str and Child with the node it was
	// copied from instead of owning them. Mutating shared data through a
	// reference corrupts the original.
	Ref bool
	// KeyConst marks Key as a caller-owned constant that mutation
	// operations must not replace in place.
	KeyConst bool
	// Num is the payload of a KindNumber node.
	Num float64
	// Str is the payload of a KindString node.
	Str []byte
	// Key is the member key when the node is an object child, nil for
	// array elements and roots.
	Key []byte
	// Child is the first element of a KindArray or KindObject node.
	Child *Node
	// Next is the following sibling in the same array or object.
	Next *Node
}

// NewNull allocates a null node.
func NewNull() *Node { return &Node{Kind: KindNull} }

// NewBool allocates a true or false node.
func NewBool(v bool) *Node {
	if v {
		return &Node{Kind: KindTrue}
	}
	return &Node{Kind: KindFalse}
}

// NewNumber allocates a number node.
func NewNumber(f float64) *Node { return &Node{Kind: KindNumber, Num: f} }

// NewString allocates a string node holding s.
func NewString[V string | []byte](s V) *Node {
	return &Node{Kind: KindString, Str: []byte(s)}
}

// NewArray allocates an empty array node.
func NewArray() *Node { return &Node{Kind: KindArray} }

// NewObject allocates an empty object node.
func NewObject() *Node { return &Node{Kind: KindObject} }

// NewRef shallow-copies n into a new node that shares its Str payload and
// Child subtree without owning them. The copy has no key and no sibling.
func NewRef(n *Node) *Node {
	r := *n
	r.Ref = true
	r.Key = nil
	r.KeyConst = false
	r.Next = nil
	return &r
}

// IsBool reports whether the node is true or false.
func (n *Node) IsBool() bool { return n.Kind == KindTrue || n.Kind == KindFalse }

// Bool returns the truth value of a boolean node.
func (n *Node) Bool() bool { return n.Kind == KindTrue }

// Len counts the children of an array or object.
func (n *Node) Len() (l int) {
	for c := n.Child; c != nil; c = c.Next {
		l++
	}
	return
}

// Index returns the i'th child, or nil when out of range.
func (n *Node) Index(i int) (c *Node) {
	if n == nil || i < 0 {
		return
	}
	for c = n.Child; c != nil && i > 0; c = c.Next {
		i--
	}
	return
}

// Get returns the first member of an object with the given key, or nil.
func (n *Node) Get(key string) (c *Node) {
	if n == nil {
		return
	}
	for c = n.Child; c != nil; c = c.Next {
		if bytes.Equal(c.Key, []byte(key)) {
			return
		}
	}
	return
}

// Has reports whether an object has a member with the given key.
func (n *Node) Has(key string) bool { return n.Get(key) != nil }
