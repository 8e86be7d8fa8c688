// Package num is the float64 text codec for JSON numbers: strtod style
// prefix parsing on the way in, and a fixed chain of formatting heuristics
// on the way out that decides between integer, fixed point and exponential
// forms.
package num

import (
	"errors"
	"math"
	"strconv"

	"jot.mleku.dev/ints"
)

// MaxLen is the most bytes Append can produce for one value; callers that
// reserve output space ahead of the write can use it as the reservation.
const MaxLen = 64

// DBL_EPSILON, the tolerance for deciding a double holds an integer.
const epsilon = 2.220446049250313e-16

// Parse reads the longest prefix of b that forms a decimal floating point
// number: optional sign, digits, optional fraction, optional exponent. The
// number of bytes consumed is returned in n; n == 0 means no number was
// found at the start of b. Out of range values saturate to ±Inf the way
// strtod does.
func Parse(b []byte) (f float64, n int) {
	i := 0
	if i < len(b) && (b[i] == '-' || b[i] == '+') {
		i++
	}
	var digits int
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
		digits++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '-' || b[j] == '+') {
			j++
		}
		k := j
		for k < len(b) && b[k] >= '0' && b[k] <= '9' {
			k++
		}
		if k > j {
			// only consume the exponent if it has digits
			i = k
		}
	}
	tok := b[:i]
	// strtod accepts a bare trailing dot, ParseFloat does not
	if tok[len(tok)-1] == '.' {
		tok = tok[:len(tok)-1]
	}
	var err error
	if f, err = strconv.ParseFloat(string(tok), 64); err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return f, i
		}
		return 0, 0
	}
	return f, i
}

// Append renders f to dst in the codec's canonical form. The heuristics run
// in a fixed order: zero, then integers that fit in 32 bits, then the NaN
// and Inf sentinels as null, then integral values below 1e60 as fixed point
// with no fraction, then very small or very large magnitudes in exponential
// form, and fixed point with six decimals for everything else.
func Append(dst []byte, f float64) []byte {
	if f == 0 {
		return append(dst, '0')
	}
	if math.Abs(math.Floor(f)-f) <= epsilon && f >= math.MinInt32 && f <= math.MaxInt32 {
		v := int64(f)
		if v < 0 {
			dst = append(dst, '-')
			v = -v
		}
		return ints.New(uint64(v)).Marshal(dst)
	}
	if (f * 0) != 0 {
		return append(dst, "null"...)
	}
	if math.Abs(math.Floor(f)-f) <= epsilon && math.Abs(f) < 1.0e60 {
		return strconv.AppendFloat(dst, f, 'f', 0, 64)
	}
	if math.Abs(f) < 1.0e-6 || math.Abs(f) > 1.0e9 {
		return strconv.AppendFloat(dst, f, 'e', 6, 64)
	}
	return strconv.AppendFloat(dst, f, 'f', 6, 64)
}
