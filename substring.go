// Package substring provides View, a read-only window onto characters that
// live somewhere else: a string, a []byte, a NUL-terminated buffer or a
// pointer plus a length. Slicing a View never copies.
//
// A View borrows its source. The garbage collector keeps the source
// allocation alive, but nothing stops the owner from overwriting it: the
// source must not be modified while a View over it is in use. A View over
// a []C that is later grown with append keeps reading the old backing
// array.
//
// Operations come in two tiers. Index, Front, Back, PopFront and PopBack
// do no checking of their own; misuse surfaces as a Go runtime panic.
// At and Substr are checked and report failures to the bounds.Policy the
// View was instantiated with.
//
// String and MarshalText of uint16 and rune views decode to UTF-8 for
// printing only; unpaired surrogates and invalid runes come out as
// U+FFFD. Copy and AppendTo return the characters themselves.
package substring

import (
	"iter"
	"math"
	"slices"
	"unsafe"

	"github.com/rawbytedev/substring/internal/common"
	"github.com/rawbytedev/substring/pkg/bounds"
)

// NPos as a length means "up to the end of the view".
// Negative lengths are read the same way.
const NPos = math.MaxInt

// Char is the set of element types a View can hold: bytes, UTF-16 code
// units and runes.
type Char interface {
	~byte | ~uint16 | ~rune
}

// View is a (start, length) window over characters of type C. P selects
// what At and Substr do when asked for an index outside the view.
//
// Views are not comparable with ==; use Equal.
type View[C Char, P bounds.Policy] struct {
	s []C
}

type (
	Substring  = View[byte, bounds.Ignore]
	WSubstring = View[rune, bounds.Ignore]
	Checked    = View[byte, bounds.Panic]
)

// Of returns a Substring over s.
func Of(s string) Substring {
	return FromString[bounds.Ignore](s)
}

// New returns a view of exactly n characters starting at p. Embedded zero
// characters are kept. p may be nil when n is 0.
func New[P bounds.Policy, C Char](p *C, n int) View[C, P] {
	return View[C, P]{s: unsafe.Slice(p, n)}
}

// FromCString returns a view over the characters at p up to, not
// including, the first zero character.
func FromCString[P bounds.Policy, C Char](p *C) View[C, P] {
	return New[P](p, common.ScanZero(p))
}

// FromLiteral returns a view over a terminated literal, dropping its
// final element.
func FromLiteral[P bounds.Policy, C Char](lit []C) View[C, P] {
	if len(lit) == 0 {
		return View[C, P]{}
	}
	n := len(lit) - 1
	return View[C, P]{s: lit[:n:n]}
}

// FromString returns a view sharing the bytes of s.
func FromString[P bounds.Policy](s string) View[byte, P] {
	return View[byte, P]{s: common.StringBytes(s)}
}

// FromSlice returns a view sharing the elements of s.
func FromSlice[P bounds.Policy, C Char](s []C) View[C, P] {
	return View[C, P]{s: slices.Clip(s)}
}

// Sub returns the view of v starting at pos, at most n characters long.
// It is the same as v.Substr(pos, n).
func Sub[C Char, P bounds.Policy](v View[C, P], pos, n int) View[C, P] {
	return v.Substr(pos, n)
}

// Substr returns the characters of v starting at pos, at most n of them.
// pos > v.Len() is reported to the policy. A length running past the end
// is clamped to the rest of the view.
func (v View[C, P]) Substr(pos, n int) View[C, P] {
	size := len(v.s)
	var p P
	p.OutOfRange(uint(pos) <= uint(size), "pos > size")
	if rest := size - pos; n < 0 || n > rest {
		n = rest
	}
	return View[C, P]{s: v.s[pos : pos+n : pos+n]}
}

// Tail returns v.Substr(pos, NPos).
func (v View[C, P]) Tail(pos int) View[C, P] {
	return v.Substr(pos, NPos)
}

func (v View[C, P]) Len() int { return len(v.s) }

// Empty reports whether the view holds no characters.
func (v View[C, P]) Empty() bool { return len(v.s) == 0 }

// At returns the character at i. i >= v.Len() is reported to the policy.
func (v View[C, P]) At(i int) C {
	var p P
	p.OutOfRange(uint(i) < uint(len(v.s)), "pos >= size")
	return v.s[i]
}

// Index returns the character at i without consulting the policy.
func (v View[C, P]) Index(i int) C { return v.s[i] }

func (v View[C, P]) Front() C { return v.s[0] }

func (v View[C, P]) Back() C { return v.s[len(v.s)-1] }

// PopFront drops the first character. The view must not be empty.
func (v *View[C, P]) PopFront() { v.s = v.s[1:] }

// PopBack drops the last character. The view must not be empty.
func (v *View[C, P]) PopBack() {
	n := len(v.s) - 1
	v.s = v.s[:n:n]
}

// Clear sets the length to zero; the start is kept.
func (v *View[C, P]) Clear() { v.s = v.s[:0:0] }

func (v *View[C, P]) Swap(o *View[C, P]) { v.s, o.s = o.s, v.s }

// Data returns the start of the view, for code that takes a pointer and
// a length. The characters behind it must not be written.
//
// Only the Data of a non-empty view identifies a position in the source.
// An empty view left by PopFront, Clear or a Substr at the end may still
// hold an earlier start, or nil.
func (v View[C, P]) Data() *C { return unsafe.SliceData(v.s) }

// Slice returns the characters of the view without copying.
// The result must not be written to.
func (v View[C, P]) Slice() []C { return v.s }

// All iterates the characters front to back with their index.
func (v View[C, P]) All() iter.Seq2[int, C] { return slices.All(v.s) }

func (v View[C, P]) Values() iter.Seq[C] { return slices.Values(v.s) }

// Backward iterates the characters back to front with their index.
func (v View[C, P]) Backward() iter.Seq2[int, C] { return slices.Backward(v.s) }

// Equal reports whether v and o hold the same characters.
func (v View[C, P]) Equal(o View[C, P]) bool { return slices.Equal(v.s, o.s) }

// Compare orders views lexicographically by character value.
func (v View[C, P]) Compare(o View[C, P]) int { return slices.Compare(v.s, o.s) }
