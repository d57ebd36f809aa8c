package substring

import (
	"io"
	"slices"
	"unicode/utf16"
	"unsafe"

	"github.com/rawbytedev/substring/internal/common"
)

// AppendTo appends the characters of v to dst and returns the extended
// buffer. The caller owns the result; how it grows is up to dst.
func (v View[C, P]) AppendTo(dst []C) []C {
	return append(dst, v.s...)
}

// Copy returns a newly allocated copy of the characters of v.
func (v View[C, P]) Copy() []C {
	return slices.Clone(v.s)
}

// String returns an owned copy of a byte view. Views of wider characters
// are decoded to UTF-8 for printing only.
func (v View[C, P]) String() string {
	if len(v.s) == 0 {
		return ""
	}
	var zero C
	switch unsafe.Sizeof(zero) {
	case 1:
		return string(common.RawBytes(v.s))
	case 2:
		units := unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(v.s))), len(v.s))
		return string(utf16.Decode(units))
	default:
		runes := unsafe.Slice((*rune)(unsafe.Pointer(unsafe.SliceData(v.s))), len(v.s))
		return string(runes)
	}
}

// WriteTo writes exactly v.Len() characters, as stored in memory, to w.
// Nothing is written for an empty view.
func (v View[C, P]) WriteTo(w io.Writer) (int64, error) {
	if len(v.s) == 0 {
		return 0, nil
	}
	n, err := w.Write(common.RawBytes(v.s))
	return int64(n), err
}

func (v View[C, P]) MarshalText() ([]byte, error) {
	var zero C
	if unsafe.Sizeof(zero) == 1 {
		return slices.Clone(common.RawBytes(v.s)), nil
	}
	return []byte(v.String()), nil
}
