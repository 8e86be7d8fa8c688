package ints

import (
	"math"
	"strconv"
	"testing"

	"lukechampine.com/frand"
)

func TestMarshalUnmarshal(t *testing.T) {
	b := make([]byte, 0, 20)
	var rem []byte
	var err error
	for i := 0; i < 100000; i++ {
		n := New(uint64(frand.Intn(math.MaxInt64)))
		b = n.Marshal(b)
		if got, want := string(b), strconv.FormatUint(n.N, 10); got != want {
			t.Fatalf("marshal mismatch: got %s want %s", got, want)
		}
		m := New(0)
		if rem, err = m.Unmarshal(b); err != nil {
			t.Fatal(err)
		}
		if n.N != m.N {
			t.Fatalf("failed to round trip %d: %s -> %d", n.N, b, m.N)
		}
		if len(rem) > 0 {
			t.Fatalf("leftover bytes after converting back: '%s'", rem)
		}
		b = b[:0]
	}
}

func TestMarshalEdges(t *testing.T) {
	for _, v := range []uint64{0, 1, 9, 10, 9999, 10000, 10001, math.MaxUint32, math.MaxUint64} {
		got := string(New(v).Marshal(nil))
		if want := strconv.FormatUint(v, 10); got != want {
			t.Fatalf("%d: got %s want %s", v, got, want)
		}
	}
}

func BenchmarkMarshal(bb *testing.B) {
	b := make([]byte, 0, 20)
	const nTests = 10000
	testInts := make([]*T, nTests)
	for i := 0; i < nTests; i++ {
		testInts[i] = New(frand.Intn(math.MaxInt64))
	}
	bb.ReportAllocs()
	for i := 0; i < bb.N; i++ {
		n := testInts[i%nTests]
		b = n.Marshal(b)
		b = b[:0]
	}
}
