// Package scan trims, cuts and splits substring views without copying.
// Every result shares the storage of its input.
package scan

import (
	"iter"

	"github.com/rawbytedev/substring"
	"github.com/rawbytedev/substring/pkg/bounds"
)

func TrimLeftFunc[C substring.Char, P bounds.Policy](v substring.View[C, P], f func(C) bool) substring.View[C, P] {
	for !v.Empty() && f(v.Front()) {
		v.PopFront()
	}
	return v
}

func TrimRightFunc[C substring.Char, P bounds.Policy](v substring.View[C, P], f func(C) bool) substring.View[C, P] {
	for !v.Empty() && f(v.Back()) {
		v.PopBack()
	}
	return v
}

func TrimFunc[C substring.Char, P bounds.Policy](v substring.View[C, P], f func(C) bool) substring.View[C, P] {
	return TrimRightFunc(TrimLeftFunc(v, f), f)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimSpace drops leading and trailing ASCII white space.
func TrimSpace[P bounds.Policy](v substring.View[byte, P]) substring.View[byte, P] {
	return TrimFunc(v, isSpace)
}

// IndexOf returns the index of the first c in v, or -1.
func IndexOf[C substring.Char, P bounds.Policy](v substring.View[C, P], c C) int {
	for i, x := range v.All() {
		if x == c {
			return i
		}
	}
	return -1
}

func HasPrefix[C substring.Char, P bounds.Policy](v, prefix substring.View[C, P]) bool {
	return v.Len() >= prefix.Len() && v.Substr(0, prefix.Len()).Equal(prefix)
}

// Cut slices v around the first sep. When sep is absent it returns v, an
// empty view and false.
func Cut[C substring.Char, P bounds.Policy](v substring.View[C, P], sep C) (before, after substring.View[C, P], found bool) {
	i := IndexOf(v, sep)
	if i < 0 {
		return v, v.Tail(v.Len()), false
	}
	return v.Substr(0, i), v.Tail(i + 1), true
}

// Split yields the fields of v separated by sep, empty fields included.
// An empty v yields one empty field.
func Split[C substring.Char, P bounds.Policy](v substring.View[C, P], sep C) iter.Seq[substring.View[C, P]] {
	return func(yield func(substring.View[C, P]) bool) {
		rest := v
		for {
			field, tail, found := Cut(rest, sep)
			if !yield(field) || !found {
				return
			}
			rest = tail
		}
	}
}
