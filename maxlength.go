package mimeb64

const (
	// MaxLineLength is the longest line, excluding the CRLF, that Encode emits.
	MaxLineLength = 76

	groupLen = 3 // bytes per group
	wordLen  = 4 // characters per word
	b64Bits  = 6

	lineBytes = MaxLineLength / wordLen * groupLen // input bytes filling one line
	lineSize  = MaxLineLength + 2                  // a full line including CRLF
)

// EncodedLen returns the exact length of the base64 encoding of an input of n bytes,
// including '=' padding and every CRLF line break.
// The result only depends on n, never on the bytes themselves.
func EncodedLen(n int) int {
	if n < 0 {
		panic("mimeb64: negative length")
	}

	l := n / groupLen * wordLen
	if n%groupLen != 0 { // incomplete word, padded with '='
		l += wordLen
	}

	ret := l + l/MaxLineLength*2
	if l%MaxLineLength != 0 { // terminating CRLF
		ret += 2
	}
	return ret
}
