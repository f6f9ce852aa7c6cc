// Package strutil provides small string helpers used by the path and
// filesystem packages.
package strutil

import "strings"

// Split breaks s on any of the delimiter bytes. Empty tokens are dropped, so
// leading, trailing and repeated delimiters never produce "".
func Split(s string, dels ...byte) []string {
	var out []string
	start := -1
	for i := 0; i < len(s); i++ {
		if isDelim(s[i], dels) {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

func isDelim(c byte, dels []byte) bool {
	for _, d := range dels {
		if c == d {
			return true
		}
	}
	return false
}

// Trim removes every leading and trailing ch.
func Trim(s string, ch byte) string {
	return TrimEnd(TrimBeg(s, ch), ch)
}

// TrimBeg removes every leading ch.
func TrimBeg(s string, ch byte) string {
	for len(s) > 0 && s[0] == ch {
		s = s[1:]
	}
	return s
}

// TrimEnd removes every trailing ch.
func TrimEnd(s string, ch byte) string {
	for len(s) > 0 && s[len(s)-1] == ch {
		s = s[:len(s)-1]
	}
	return s
}

// ReplaceChar replaces every occurrence of from with to.
func ReplaceChar(s string, from, to byte) string {
	return strings.ReplaceAll(s, string(from), string(to))
}

// ReplaceAll replaces every non-overlapping old with repl, scanning left to
// right. An empty old leaves s unchanged.
func ReplaceAll(s, old, repl string) string {
	if old == "" {
		return s
	}
	return strings.ReplaceAll(s, old, repl)
}

// StripQuotes removes every single and double quote.
func StripQuotes(s string) string {
	return strings.NewReplacer(`"`, "", `'`, "").Replace(s)
}

// Enquote wraps s in double quotes.
func Enquote(s string) string {
	return `"` + s + `"`
}

// Equals reports byte-exact equality.
func Equals(a, b string) bool {
	return a == b
}

// BeginsWith reports whether s starts with prefix.
func BeginsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}
