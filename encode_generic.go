package mimeb64

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeGeneric is the scalar encoder working one 3-byte group at a time.
// dst must hold at least EncodedLen(len(src)) bytes.
// col is the number of characters already on the current line; pass 0 for a new line.
// Returns the number of bytes written to dst and the updated column.
// The terminating CRLF is not written; that is left to the caller.
func encodeGeneric(src, dst []byte, col int) (int, int) {
	p := 0 // destination offset
	i := 0 // source offset

	for ; i+groupLen <= len(src); i += groupLen {
		group := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		putWord(dst[p:], group)
		p += wordLen

		col += wordLen
		if col == MaxLineLength {
			dst[p] = '\r'
			dst[p+1] = '\n'
			p += 2
			col = 0
		}
	}

	leftover := len(src) - i
	if leftover == 0 {
		return p, col
	}

	var group uint32
	for k := 0; k < leftover; k++ {
		group |= uint32(src[i+k]) << (16 - 8*k)
	}
	putWord(dst[p:], group)

	// 1 byte yields 2 characters, 2 bytes yield 3
	for k := leftover + 1; k < wordLen; k++ {
		dst[p+k] = '='
	}
	p += wordLen

	col += wordLen
	if col == MaxLineLength {
		dst[p] = '\r'
		dst[p+1] = '\n'
		p += 2
		col = 0
	}

	return p, col
}

// putWord writes the 4 characters for the 24 low bits of group, most significant first.
func putWord(dst []byte, group uint32) {
	_ = dst[3]
	dst[0] = alphabet[group>>18&0x3f]
	dst[1] = alphabet[group>>12&0x3f]
	dst[2] = alphabet[group>>b64Bits&0x3f]
	dst[3] = alphabet[group&0x3f]
}
