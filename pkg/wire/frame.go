// Package wire packs a list of byte views into one checksummed frame and
// decodes such a frame back into views that borrow the frame's bytes.
//
// Layout:
//
//	magic 'S' 'V' | version | flags | body | crc32 (LE, over version..body)
//	body  = varint count, then per view: varint length, raw bytes
//
// With FlagZstd the body is stored as varint raw size followed by a zstd
// block of the body.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/substring"
	"github.com/rawbytedev/substring/internal/common"
	"github.com/rawbytedev/substring/pkg/bounds"
)

const (
	Magic0  = 'S'
	Magic1  = 'V'
	Version = 1

	FlagZstd byte = 1 << 0

	headerSize = 4
	crcSize    = 4

	// MaxBodySize bounds the decompressed body of a frame.
	MaxBodySize = 64 << 20
)

var (
	ErrShortFrame = errors.New("wire: frame too short")
	ErrBadMagic   = errors.New("wire: bad magic")
	ErrVersion    = errors.New("wire: unsupported version")
	ErrChecksum   = errors.New("wire: crc mismatch")
	ErrTruncated  = errors.New("wire: truncated body")
	ErrTooLarge   = errors.New("wire: body too large")
	ErrTrailing   = errors.New("wire: trailing bytes after body")
)

// Both are safe for concurrent EncodeAll / DecodeAll.
var (
	zenc *zstd.Encoder
	zdec *zstd.Decoder
)

func init() {
	var err error
	zenc, err = zstd.NewWriter(nil)
	if err != nil {
		panic(fmt.Sprintf("wire: zstd encoder: %v", err))
	}
	zdec, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxBodySize))
	if err != nil {
		panic(fmt.Sprintf("wire: zstd decoder: %v", err))
	}
}

func appendBody[P bounds.Policy](dst []byte, views []substring.View[byte, P]) []byte {
	dst = common.WriteVarUint(dst, uint64(len(views)))
	for _, v := range views {
		dst = common.WriteVarUint(dst, uint64(v.Len()))
		dst = v.AppendTo(dst)
	}
	return dst
}

// AppendFrame appends a frame holding views to dst.
func AppendFrame[P bounds.Policy](dst []byte, flags byte, views ...substring.View[byte, P]) []byte {
	start := len(dst)
	dst = append(dst, Magic0, Magic1, Version, flags)
	if flags&FlagZstd != 0 {
		body := appendBody(nil, views)
		dst = common.WriteVarUint(dst, uint64(len(body)))
		dst = zenc.EncodeAll(body, dst)
	} else {
		dst = appendBody(dst, views)
	}
	crc := crc32.ChecksumIEEE(dst[start+2:])
	return binary.LittleEndian.AppendUint32(dst, crc)
}

// DecodeFrame parses a frame. Views of an uncompressed frame point into
// data; data must outlive them and stay unmodified.
func DecodeFrame[P bounds.Policy](data []byte) ([]substring.View[byte, P], error) {
	if len(data) < headerSize+crcSize {
		return nil, ErrShortFrame
	}
	if data[0] != Magic0 || data[1] != Magic1 {
		return nil, ErrBadMagic
	}
	if data[2] != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, data[2])
	}
	end := len(data) - crcSize
	want := binary.LittleEndian.Uint32(data[end:])
	if crc32.ChecksumIEEE(data[2:end]) != want {
		return nil, ErrChecksum
	}
	flags := data[3]
	body := data[headerSize:end]
	if flags&FlagZstd != 0 {
		size, n := common.ReadVarUint(body)
		if n == 0 {
			return nil, ErrTruncated
		}
		if size > MaxBodySize {
			return nil, ErrTooLarge
		}
		// size is untrusted; the decoder's memory limit bounds the output
		raw, err := zdec.DecodeAll(body[n:], nil)
		if err != nil {
			return nil, fmt.Errorf("wire: decompress: %w", err)
		}
		if uint64(len(raw)) != size {
			return nil, ErrTruncated
		}
		body = raw
	}
	return decodeBody[P](body)
}

func decodeBody[P bounds.Policy](body []byte) ([]substring.View[byte, P], error) {
	count, n := common.ReadVarUint(body)
	if n == 0 {
		return nil, ErrTruncated
	}
	// every entry takes at least one byte
	if count > uint64(len(body)-n) {
		return nil, ErrTruncated
	}
	src := substring.FromSlice[P](body)
	out := make([]substring.View[byte, P], 0, int(count))
	pos := n
	for i := uint64(0); i < count; i++ {
		l, m := common.ReadVarUint(body[pos:])
		if m == 0 {
			return nil, ErrTruncated
		}
		pos += m
		if l > uint64(len(body)-pos) {
			return nil, ErrTruncated
		}
		out = append(out, src.Substr(pos, int(l)))
		pos += int(l)
	}
	if pos != len(body) {
		return nil, ErrTrailing
	}
	return out, nil
}
