// Package mimeb64 implements the base64 content transfer encoding of RFC 2045 section 6.8:
// the standard alphabet, '=' padding and lines of at most 76 characters terminated by CRLF.
//
// Non-empty output always ends with CRLF. Empty input encodes to nothing.
package mimeb64

import (
	"errors"
	"fmt"
	"slices"
)

var ErrShortBuffer = errors.New("destination buffer too small")

// Encode writes the base64 encoding of src to dst.
//
// It writes exactly EncodedLen(len(src)) bytes. dst and src must not overlap.
// Encode panics without writing anything if dst is shorter than EncodedLen(len(src)).
func Encode(dst, src []byte) {
	if n := EncodedLen(len(src)); len(dst) < n {
		panic(fmt.Sprintf("[mimeb64] %v: need %d bytes, have %d", ErrShortBuffer, n, len(dst)))
	}

	encode(dst, src)
}

// encode assumes dst has already been sized by the caller.
func encode(dst, src []byte) int {
	i, p := 0, 0
	if useUnrolledEncode {
		i, p = encodeLines(src, dst)
	}

	n, col := encodeGeneric(src[i:], dst[p:], 0)
	p += n

	if col != 0 {
		dst[p] = '\r'
		dst[p+1] = '\n'
		p += 2
	}
	return p
}

// EncodeToString returns the base64 encoding of src.
func EncodeToString(src []byte) string {
	buf := make([]byte, EncodedLen(len(src)))
	encode(buf, src)
	return string(buf)
}

// AppendEncode appends the base64 encoding of src to dst and returns the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	n := EncodedLen(len(src))
	dst = slices.Grow(dst, n)
	encode(dst[len(dst):len(dst)+n], src)
	return dst[:len(dst)+n]
}
