// Package pathutil manipulates slash-separated path strings. Input may use
// either '/' or '\'; every result uses '/'.
package pathutil

import (
	"strings"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/strutil"
)

// Format converts every '\' to '/'.
func Format(p string) string {
	return strutil.ReplaceChar(p, '\\', '/')
}

// Combine joins a and b with exactly one '/'. Separators at both ends of
// each side are dropped, so Combine("/a/", "/b") is "a/b". If either side is
// empty the other is returned unchanged.
func Combine(a, b string) string {
	if a == "" || b == "" {
		return a + b
	}
	a2 := strutil.Trim(Format(a), '/')
	b2 := strutil.Trim(Format(b), '/')
	return a2 + "/" + b2
}

// FileName returns the final path segment: the text after the last '/' or
// '\', or p itself when it has no separator.
func FileName(p string) string {
	f := Format(p)
	if i := strings.LastIndexByte(f, '/'); i >= 0 {
		return f[i+1:]
	}
	return p
}

// Extension returns the file name's extension including the dot, or "".
func Extension(p string) string {
	name := FileName(p)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}

// Stem returns name without its extension. A name with no '.' is rejected.
func Stem(name string) (string, error) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", errors.ValidationWithDetails(
			"incorrect file name",
			"no extension given in "+strutil.Enquote(name),
		)
	}
	return name[:i], nil
}

// MustStem is Stem for names already known to carry an extension.
func MustStem(name string) string {
	s, err := Stem(name)
	if err != nil {
		panic(err)
	}
	return s
}

// DirName returns the formatted path without its final segment. A path with
// no separator is returned whole.
func DirName(p string) string {
	f := Format(p)
	if i := strings.LastIndexByte(f, '/'); i >= 0 {
		return f[:i]
	}
	return f
}

// Join appends name to dir with a single '/'. Unlike Combine it keeps a
// leading root separator, so absolute directories stay absolute.
func Join(dir, name string) string {
	if dir == "" {
		return name
	}
	d := strutil.TrimEnd(Format(dir), '/')
	n := strutil.TrimBeg(Format(name), '/')
	if d == "" {
		return "/" + n
	}
	return d + "/" + n
}
