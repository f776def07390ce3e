package obj

import (
	"math"
	"strconv"
)

// isSeparator reports the bytes that separate tokens within a line
func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// isBlank reports the bytes skipped before a number
func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// trimSeparators drops leading token separators
func trimSeparators(s []byte) []byte {
	i := 0
	for i < len(s) && isSeparator(s[i]) {
		i++
	}
	return s[i:]
}

// skipToken drops bytes up to the next separator
func skipToken(s []byte) []byte {
	i := 0
	for i < len(s) && !isSeparator(s[i]) {
		i++
	}
	return s[i:]
}

// hasPrefixFold is an ASCII case-insensitive bytes.HasPrefix
func hasPrefixFold(s []byte, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}

// scanFloat reads the longest decimal floating point prefix of s after
// leading blanks. It returns the value and the unread remainder. When s does
// not start with a number the result is 0 and s is returned unchanged, so a
// malformed token stops every later read on the same line.
//
// Accepted: [+-] digits [. digits] [(e|E) [+-] digits], hexadecimal floats
// [+-] 0x hexdigits [. hexdigits] [(p|P) [+-] digits], and inf, infinity,
// nan in any case. Magnitudes beyond float64 saturate to ±Inf or 0.
func scanFloat(s []byte) (float64, []byte) {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	start := i

	sign := 1.0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	switch {
	case hasPrefixFold(s[i:], "infinity"):
		return math.Inf(int(sign)), s[i+8:]
	case hasPrefixFold(s[i:], "inf"):
		return math.Inf(int(sign)), s[i+3:]
	case hasPrefixFold(s[i:], "nan"):
		return math.NaN(), s[i+3:]
	}

	// "0x" without a hex digit after it reads as the decimal 0 below
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		if v, n := scanHexFloat(s[i+2:]); n > 0 {
			return sign * v, s[i+2+n:]
		}
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, s
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	// The prefix is well-formed, so the only possible error is ErrRange,
	// for which ParseFloat already returns the saturated value.
	v, _ := strconv.ParseFloat(string(s[start:end]), 64)
	return v, s[end:]
}

// scanHexFloat reads the part of a hexadecimal float after "0x". It returns
// the value and the number of bytes consumed, 0 when no hex digit follows.
func scanHexFloat(s []byte) (float64, int) {
	i, digits := 0, 0
	for i < len(s) && isHexDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isHexDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0
	}

	mantissa := string(s[:i])
	exponent := "p0"
	if i < len(s) && (s[i] == 'p' || s[i] == 'P') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			exponent = string(s[i:k])
			i = k
		}
	}

	// strconv requires the binary exponent, which C makes optional
	v, _ := strconv.ParseFloat("0x"+mantissa+exponent, 64)
	return v, i
}

// scanInt reads a base-10 integer prefix of s after leading blanks.
// It returns the value, the number of bytes consumed and whether any digit
// was read. Values beyond int64 saturate.
func scanInt(s []byte) (int64, int, bool) {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	var v uint64
	saturated := false
	for i < len(s) && isDigit(s[i]) {
		d := uint64(s[i] - '0')
		if !saturated {
			if v > (math.MaxUint64-d)/10 {
				saturated = true
			} else {
				v = v*10 + d
			}
		}
		i++
	}
	if i == start {
		return 0, 0, false
	}

	switch {
	case neg && (saturated || v > 1<<63):
		return math.MinInt64, i, true
	case neg:
		return -int64(v), i, true
	case saturated || v > math.MaxInt64:
		return math.MaxInt64, i, true
	}
	return int64(v), i, true
}

// resolveIndex maps a 1-based or negative (relative) face index onto
// [0, count). ok is false when it falls outside.
func resolveIndex(a int64, count int) (int, bool) {
	if a < 0 {
		a += int64(count) + 1
	}
	if a < 1 || a > int64(count) {
		return 0, false
	}
	return int(a - 1), true
}
