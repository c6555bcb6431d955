// Package word holds the small arithmetic primitives shared by the
// assembler and the CPU: bitmasks sized to a given width, and a
// multi-radix integer parser for the `0x`/`0b`/bare-digit literals that
// appear in assembly source.
package word

import (
	"strconv"
	"strings"
)

// Bitmask returns an integer with the low n bits set.
func Bitmask(n uint) uint32 {
	return (uint32(1) << n) - 1
}

// ParseInt attempts to parse text as an integer using each radix in
// radices in order, returning the first successful parse. The second
// return value is false if no radix succeeded, distinguishing "no value"
// from a parsed zero (the Python original conflates the two, which the
// design notes flag as a latent bug downstream code must not repeat).
//
// strconv.ParseInt with base 0 already honors 0x/0b/0o prefixes, so a
// radix of 0 is passed through unchanged. A non-zero radix accepts its
// own prefix ("0x" for 16, "0b" for 2, "0o" for 8) as well as bare
// digits, so both "0x0020" and "ff" parse under radix 16.
func ParseInt(text string, radices []int) (uint32, bool) {
	for _, base := range radices {
		s := text
		prefix := ""
		switch base {
		case 2:
			prefix = "0b"
		case 8:
			prefix = "0o"
		case 16:
			prefix = "0x"
		}
		if prefix != "" && len(s) > len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = s[len(prefix):]
		}
		v, err := strconv.ParseInt(s, base, 64)
		if err == nil {
			return uint32(v), true
		}
	}
	return 0, false
}
