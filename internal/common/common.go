package common

import (
	"unsafe"
)

// MaxVarintLen is the longest encoding of a uint64 varint.
const MaxVarintLen = 10

// StringBytes aliases the bytes of s without copying.
// The result must never be written to.
func StringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesString aliases b as a string without copying; b must not change
// while the string is in use.
func BytesString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// ScanZero counts the elements starting at p that precede the first zero
// element. p must point into an allocation that contains a zero element.
func ScanZero[C comparable](p *C) int {
	if p == nil {
		return 0
	}
	var zero C
	size := int(unsafe.Sizeof(zero))
	n := 0
	for *(*C)(unsafe.Add(unsafe.Pointer(p), n*size)) != zero {
		n++
	}
	return n
}

// RawBytes reinterprets s as the bytes that store it, in host byte order.
func RawBytes[C any](s []C) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero C
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// WriteVarUint appends a varint to buf (allocating if needed).
func WriteVarUint(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// n is 0 when b is truncated or the varint overflows 64 bits.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		if i == MaxVarintLen {
			return 0, 0
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}
