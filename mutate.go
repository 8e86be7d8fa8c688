package jot

import (
	"bytes"
)

// The mutation operations are all pointer surgery on Child and Next. They
// keep the one-owner invariant: a node handed to Append or Insert must not
// still be linked anywhere else, and a node returned by Detach has its
// Next cleared so it cannot alias its old siblings.

// Append adds item as the last child of an array or object.
func (n *Node) Append(item *Node) {
	if item == nil {
		return
	}
	c := n.Child
	if c == nil {
		n.Child = item
		return
	}
	for c.Next != nil {
		c = c.Next
	}
	c.Next = item
}

// AppendKV adds item to an object under its own copy of key.
func (n *Node) AppendKV(key string, item *Node) {
	if item == nil {
		return
	}
	item.Key = []byte(key)
	item.KeyConst = false
	n.Append(item)
}

// AppendKVConst adds item to an object sharing the caller's key bytes
// rather than copying them; the key must outlive the tree and must not be
// mutated.
func (n *Node) AppendKVConst(key []byte, item *Node) {
	if item == nil {
		return
	}
	item.Key = key
	item.KeyConst = true
	n.Append(item)
}

// AppendRef adds a reference to item, leaving ownership of item's payload
// where it is.
func (n *Node) AppendRef(item *Node) {
	if item == nil {
		return
	}
	n.Append(NewRef(item))
}

// AppendRefKV adds a reference to item to an object under key.
func (n *Node) AppendRefKV(key string, item *Node) {
	if item == nil {
		return
	}
	n.AppendKV(key, NewRef(item))
}

// Insert places item at position i, shifting the rest along. Past the end
// it appends.
func (n *Node) Insert(i int, item *Node) {
	if item == nil {
		return
	}
	c := n.Child
	var prev *Node
	for c != nil && i > 0 {
		prev = c
		c = c.Next
		i--
	}
	if c == nil {
		n.Append(item)
		return
	}
	item.Next = c
	if prev == nil {
		n.Child = item
	} else {
		prev.Next = item
	}
}

// Detach unlinks and returns the i'th child, or nil when out of range.
func (n *Node) Detach(i int) (c *Node) {
	c = n.Child
	var prev *Node
	for c != nil && i > 0 {
		prev = c
		c = c.Next
		i--
	}
	if c == nil {
		return
	}
	if prev == nil {
		n.Child = c.Next
	} else {
		prev.Next = c.Next
	}
	c.Next = nil
	return
}

// DetachKey unlinks and returns the first member with the given key.
func (n *Node) DetachKey(key string) *Node {
	var i int
	for c := n.Child; c != nil; c = c.Next {
		if bytes.Equal(c.Key, []byte(key)) {
			return n.Detach(i)
		}
		i++
	}
	return nil
}

// Remove drops the i'th child.
func (n *Node) Remove(i int) { n.Detach(i) }

// RemoveKey drops the first member with the given key.
func (n *Node) RemoveKey(key string) { n.DetachKey(key) }

// Replace swaps the i'th child for item. The old child is unlinked and
// discarded; out of range is a no-op.
func (n *Node) Replace(i int, item *Node) {
	if item == nil {
		return
	}
	c := n.Child
	var prev *Node
	for c != nil && i > 0 {
		prev = c
		c = c.Next
		i--
	}
	if c == nil {
		return
	}
	item.Next = c.Next
	if prev == nil {
		n.Child = item
	} else {
		prev.Next = item
	}
	c.Next = nil
}

// ReplaceKey swaps the member under key for item, which takes over the
// key.
func (n *Node) ReplaceKey(key string, item *Node) {
	var i int
	for c := n.Child; c != nil; c = c.Next {
		if bytes.Equal(c.Key, []byte(key)) {
			if item != nil {
				item.Key = []byte(key)
				item.KeyConst = false
			}
			n.Replace(i, item)
			return
		}
		i++
	}
}

// Duplicate returns an independent copy of the node, deep when recurse is
// set. Payloads are copied, so duplicating a reference node materializes
// the shared data into owned data.
func (n *Node) Duplicate(recurse bool) (d *Node) {
	if n == nil {
		return
	}
	d = &Node{Kind: n.Kind, Num: n.Num}
	if n.Str != nil {
		d.Str = append([]byte{}, n.Str...)
	}
	if n.Key != nil {
		d.Key = append([]byte{}, n.Key...)
	}
	if !recurse {
		return
	}
	var last *Node
	for c := n.Child; c != nil; c = c.Next {
		nc := c.Duplicate(true)
		if last == nil {
			d.Child = nc
		} else {
			last.Next = nc
		}
		last = nc
	}
	return
}
