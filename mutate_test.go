package jot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendAndIndex(t *testing.T) {
	a := NewArray()
	a.Append(NewNumber(1))
	a.Append(NewNumber(2))
	a.Append(NewString("three"))
	require.Equal(t, 3, a.Len())
	require.Equal(t, float64(2), a.Index(1).Num)
	require.Equal(t, "[1,2,\"three\"]", a.String())
}

func TestObjectBuild(t *testing.T) {
	o := NewObject()
	o.AppendKV("a", NewNumber(1))
	o.AppendKV("b", NewBool(true))
	o.AppendKVConst([]byte("c"), NewNull())
	require.True(t, o.Has("b"))
	require.True(t, o.Get("c").KeyConst)
	require.Equal(t, `{"a":1,"b":true,"c":null}`, o.String())
}

func TestInsert(t *testing.T) {
	a := NewIntArray([]int{1, 3})
	a.Insert(1, NewNumber(2))
	require.Equal(t, "[1,2,3]", a.String())
	a.Insert(0, NewNumber(0))
	require.Equal(t, "[0,1,2,3]", a.String())
	// past the end appends
	a.Insert(99, NewNumber(4))
	require.Equal(t, "[0,1,2,3,4]", a.String())
}

func TestDetach(t *testing.T) {
	a := NewIntArray([]int{1, 2, 3})
	d := a.Detach(1)
	require.NotNil(t, d)
	require.Nil(t, d.Next)
	require.Equal(t, float64(2), d.Num)
	require.Equal(t, "[1,3]", a.String())
	require.Nil(t, a.Detach(5))

	o, err := Parse([]byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	d = o.DetachKey("a")
	require.NotNil(t, d)
	require.Equal(t, `{"b":2}`, o.String())
	require.Nil(t, o.DetachKey("missing"))
}

func TestReplace(t *testing.T) {
	a := NewIntArray([]int{1, 2, 3})
	a.Replace(1, NewString("two"))
	require.Equal(t, `[1,"two",3]`, a.String())

	o, err := Parse([]byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	o.ReplaceKey("b", NewBool(false))
	require.Equal(t, `{"a":1,"b":false}`, o.String())
}

func TestRemove(t *testing.T) {
	a := NewIntArray([]int{1, 2, 3})
	a.Remove(0)
	require.Equal(t, "[2,3]", a.String())
	o, err := Parse([]byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	o.RemoveKey("b")
	require.Equal(t, `{"a":1}`, o.String())
}

func TestReferenceShares(t *testing.T) {
	orig := NewObject()
	orig.AppendKV("k", NewString("payload"))

	ref := NewRef(orig)
	require.True(t, ref.Ref)
	require.Nil(t, ref.Key)
	require.Nil(t, ref.Next)
	// the reference points at the same child list, it does not copy it
	require.Same(t, orig.Child, ref.Child)

	a := NewArray()
	a.AppendRef(orig)
	a.Remove(0)
	// dropping the reference leaves the original subtree intact
	require.Equal(t, `{"k":"payload"}`, orig.String())

	s := NewString("shared")
	sref := NewRef(s)
	require.Same(t, &s.Str[0], &sref.Str[0])
}

func TestDuplicate(t *testing.T) {
	orig, err := Parse([]byte(`{"a":[1,2],"s":"text"}`))
	require.NoError(t, err)

	deep := orig.Duplicate(true)
	require.Equal(t, orig.String(), deep.String())
	// the copy owns its own payloads
	deep.Get("s").Str[0] = 'T'
	require.Equal(t, "text", string(orig.Get("s").Str))

	shallow := orig.Duplicate(false)
	require.Nil(t, shallow.Child)
	require.Equal(t, KindObject, shallow.Kind)

	// duplicating a reference materializes owned data
	ref := NewRef(orig.Get("s"))
	dup := ref.Duplicate(true)
	require.False(t, dup.Ref)
	dup.Str[0] = 'X'
	require.Equal(t, "text", string(orig.Get("s").Str))
}

func TestCreateArrays(t *testing.T) {
	require.Equal(t, "[1,2,3]", NewIntArray([]int{1, 2, 3}).String())
	require.Equal(t, "[0.500000,2]", NewFloatArray([]float64{0.5, 2}).String())
	require.Equal(t, `["a","b"]`, NewStringArray([]string{"a", "b"}).String())
	require.Equal(t, "[]", NewIntArray(nil).String())
}
