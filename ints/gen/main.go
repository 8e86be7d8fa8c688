// Command gen writes out the base10k.txt lookup table used by the ints
// package: the numbers 0-9999 as four ASCII digits each, zero padded, no
// separators.
package main

import (
	"fmt"
	"os"

	"jot.mleku.dev/chk"
)

func main() {
	b := make([]byte, 0, 40000)
	for i := 0; i < 10000; i++ {
		b = fmt.Appendf(b, "%04d", i)
	}
	if err := os.WriteFile("base10k.txt", b, 0644); chk.F(err) {
		os.Exit(1)
	}
}
