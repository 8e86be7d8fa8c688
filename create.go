package jot

// NewIntArray builds an array node of number children from vs.
func NewIntArray(vs []int) (n *Node) {
	n = NewArray()
	var last *Node
	for _, v := range vs {
		c := NewNumber(float64(v))
		if last == nil {
			n.Child = c
		} else {
			last.Next = c
		}
		last = c
	}
	return
}

// NewFloatArray builds an array node of number children from vs.
func NewFloatArray(vs []float64) (n *Node) {
	n = NewArray()
	var last *Node
	for _, v := range vs {
		c := NewNumber(v)
		if last == nil {
			n.Child = c
		} else {
			last.Next = c
		}
		last = c
	}
	return
}

// NewStringArray builds an array node of string children from vs.
func NewStringArray(vs []string) (n *Node) {
	n = NewArray()
	var last *Node
	for _, v := range vs {
		c := NewString(v)
		if last == nil {
			n.Child = c
		} else {
			last.Next = c
		}
		last = c
	}
	return
}
