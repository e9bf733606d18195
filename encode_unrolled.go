package mimeb64

import (
	"encoding/binary"
)

// useUnrolledEncode selects encodeLines for whole lines before falling back to encodeGeneric.
var useUnrolledEncode = true

// encodeLines encodes complete 76-character lines, each followed by CRLF, for as long as
// more than one line worth of input remains. It must start at column 0.
// Every group is read with a single 4-byte load, so the last line is always left to
// encodeGeneric which never reads past the end of src.
// Returns the number of bytes consumed from src and written to dst.
func encodeLines(src, dst []byte) (int, int) {
	i := 0 // source offset
	p := 0 // destination offset

	for len(src)-i > lineBytes {
		line := dst[p : p+lineSize]
		in := src[i : i+lineBytes+1]
		for g := 0; g < MaxLineLength/wordLen; g++ {
			putWord(line[g*wordLen:], binary.BigEndian.Uint32(in[g*groupLen:])>>8)
		}
		line[MaxLineLength] = '\r'
		line[MaxLineLength+1] = '\n'

		i += lineBytes
		p += lineSize
	}

	return i, p
}
