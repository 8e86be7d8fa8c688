// Package jot is a JSON document codec that parses text into a tree of
// typed nodes and renders the tree back out, either compact or
// pretty-printed. The tree is deliberately primitive: one node per value,
// children hanging off Child, siblings chained through Next, so documents
// can be picked apart and reassembled with plain pointer surgery and no
// reflection anywhere.
package jot

// Version is the current release of the library.
const Version = "v0.1.2"

// Kind is the type tag of a Node.
type Kind byte

const (
	KindNull Kind = iota
	KindFalse
	KindTrue
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = []string{
	"null",
	"false",
	"true",
	"number",
	"string",
	"array",
	"object",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}
